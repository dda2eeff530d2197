// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package turbofec

// UmtsTrellis implements BcjrDecoder for the 8-state UMTS constituent code.
// Four states share one DWord lane each: s74 holds states 7,6,5,4 in bytes
// 3,2,1,0 and s30 holds states 3,2,1,0 in bytes 3,2,1,0.
type UmtsTrellis struct{}

type umtsStateBytes struct {
	s74 DWord
	s30 DWord
}

// Decode runs the max-log-MAP forward-backward recursion over the packed
// UMTS trellis. The three input streams must carry the same number of
// elements and at least 6, enough to open and close the trellis with the
// three tail symbols.
func (UmtsTrellis) Decode(systematic, parity, apriori []Llr, terminated bool) []Llr {
	n := len(systematic)
	if len(parity) != n || len(apriori) != n {
		panic(newShapeMismatchError(n, len(parity), len(apriori)))
	}
	if n < 6 {
		panic(newBlockTooShortError(n))
	}

	gVector := make([]DWord, n)
	for i := 0; i < n; i++ {
		lu := int32(systematic[i])
		lv := int32(parity[i])
		la := int32(apriori[i])

		// Inner product of possible transmitted symbols and their received value.
		// G from state emitting u=0/v=0: 0*La + 0*Lu - 0*Lv
		// G from state emitting u=0/v=1: 0*La + 0*Lu + 1*Lv
		// G from state emitting u=1/v=0: 1*La + 1*Lu - 0*Lv
		// G from state emitting u=1/v=1: 1*La + 1*Lu + 1*Lv
		g0p1 := lv
		g1p0 := la + lu
		g1p1 := g0p1 + g1p0

		b0 := uint32(0)
		b1 := uint32(uint8(SaturateBitsSigned(g0p1, 8)))
		b2 := uint32(uint8(SaturateBitsSigned(g1p0, 8)))
		b3 := uint32(uint8(SaturateBitsSigned(g1p1, 8)))
		gVector[i] = NewDWordFromU32(b0 | b1<<8 | b2<<16 | b3<<24)
	}

	aVector := make([]umtsStateBytes, 0, n)

	forward := gVector[:n-3]
	tail := gVector[n-3:]
	fi := 0

	// Only s0 is valid.
	a74 := NewDWordFromU32(0x80808080)
	a30 := NewDWordFromU32(0x80808000)

	// Only s4 and s0 are valid.
	g := forward[fi]
	fi++
	a74us := computeA74(a74, a30, g).AndU32(0x000000FF)
	a30us := computeA30(a74, a30, g).AndU32(0x000000FF)
	coeff := scaleCoeff2(a74us.Shl(8).Or(a30us))
	a74 = a74us.SaturatingSubI8(coeff.AndU32(0x000000FF)).OrU32(0x80808000)
	a30 = a30us.SaturatingSubI8(coeff.AndU32(0x000000FF)).OrU32(0x80808000)
	aVector = append(aVector, umtsStateBytes{s74: a74, s30: a30})

	// Only s6, s4, s2 and s0 are valid.
	g = forward[fi]
	fi++
	a74us = computeA74(a74, a30, g).AndU32(0x00FF00FF)
	a30us = computeA30(a74, a30, g).AndU32(0x00FF00FF)
	coeff = scaleCoeff4(a74us.Shl(8).Or(a30us))
	a74 = a74us.SaturatingSubI8(coeff.AndU32(0x00FF00FF)).OrU32(0x80008000)
	a30 = a30us.SaturatingSubI8(coeff.AndU32(0x00FF00FF)).OrU32(0x80008000)
	aVector = append(aVector, umtsStateBytes{s74: a74, s30: a30})

	for ; fi < len(forward); fi++ {
		g = forward[fi]
		// All states are valid.
		a74us = computeA74(a74, a30, g)
		a30us = computeA30(a74, a30, g)
		coeff = scaleCoeff8(a74us, a30us)
		a74 = a74us.SaturatingSubI8(coeff)
		a30 = a30us.SaturatingSubI8(coeff)
		aVector = append(aVector, umtsStateBytes{s74: a74, s30: a30})
	}

	// Only s3, s2, s1 and s0 are valid.
	g = tail[0]
	a30us = computeA30(a74, a30, g)
	coeff = scaleCoeff4(a30us)
	a74 = NewDWordFromU32(0x80808080)
	a30 = a30us.SaturatingSubI8(coeff)
	aVector = append(aVector, umtsStateBytes{s74: a74, s30: a30})

	// Only s1 and s0 are valid.
	g = tail[1]
	a30us = computeA30(a74, a30, g).AndU32(0x0000FFFF)
	coeff = scaleCoeff2(a30us)
	a74 = NewDWordFromU32(0x80808080)
	a30 = a30us.SaturatingSubI8(coeff.AndU32(0x0000FFFF)).OrU32(0x80800000)
	aVector = append(aVector, umtsStateBytes{s74: a74, s30: a30})

	// We do not use the last value of g in the forward path.
	// Proceed with the backward path. aVector[i] pairs with gVector[i+1].
	lApp := make([]Llr, n)
	writeIdx := n - 1

	// head holds the first two (a,g) pairs of the forward pass, consumed
	// last during the backward sweep (reverse order, like the forward
	// builder above).
	type stagePair struct {
		a umtsStateBytes
		g DWord
	}
	headPairs := [2]stagePair{
		{a: aVector[0], g: gVector[1]},
		{a: aVector[1], g: gVector[2]},
	}
	middleCount := len(aVector) - 2
	backward := make([]stagePair, middleCount)
	for i := 0; i < middleCount; i++ {
		backward[i] = stagePair{a: aVector[2+i], g: gVector[3+i]}
	}
	// Reverse backward, since the original recursion walks right to left.
	for l, r := 0, len(backward)-1; l < r; l, r = l+1, r-1 {
		backward[l], backward[r] = backward[r], backward[l]
	}

	bi := 0
	var b74, b30 DWord
	if terminated {
		// Only s0 is valid.
		b74 = NewDWordFromU32(0x80808080)
		b30 = NewDWordFromU32(0x80808000)

		{
			pair := backward[bi]
			bi++
			max1 := computeMax1(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00000000, 0x0000FFFF)
			max0 := computeMax0(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00000000, 0x0000FFFF)
			lApp[writeIdx] = max1.SaturatingSub(max0)
			writeIdx--

			// Only s1 and s0 are valid.
			b30us := computeB30(b74, b30, pair.g).AndU32(0x0000FFFF)
			c := scaleCoeff2(b30us)
			// b74 remains -inf.
			b30 = b30us.SaturatingSubI8(c.AndU32(0x0000FFFF)).OrU32(0x80800000)
		}

		{
			pair := backward[bi]
			bi++
			max1 := computeMax1(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00000000, 0xFFFFFFFF)
			max0 := computeMax0(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00000000, 0xFFFFFFFF)
			lApp[writeIdx] = max1.SaturatingSub(max0)
			writeIdx--

			// Only s3, s2, s1 and s0 are valid.
			b30us := computeB30(b74, b30, pair.g)
			c := scaleCoeff4(b30us)
			// b74 remains -inf.
			b30 = b30us.SaturatingSubI8(c)
		}
	} else {
		b74 = NewDWordFromU32(0x00000000)
		b30 = NewDWordFromU32(0x00000000)
	}

	for ; bi < len(backward); bi++ {
		pair := backward[bi]
		max1 := computeMax1(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0xFFFFFFFF, 0xFFFFFFFF)
		max0 := computeMax0(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0xFFFFFFFF, 0xFFFFFFFF)
		lApp[writeIdx] = max1.SaturatingSub(max0)
		writeIdx--

		// All states are valid.
		b74us := computeB74(b74, b30, pair.g)
		b30us := computeB30(b74, b30, pair.g)
		c := scaleCoeff8(b74us, b30us)
		b74 = b74us.SaturatingSubI8(c)
		b30 = b30us.SaturatingSubI8(c)
	}

	{
		pair := headPairs[1]
		max1 := computeMax1(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00FF00FF, 0x00FF00FF)
		max0 := computeMax0(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x00FF00FF, 0x00FF00FF)
		lApp[writeIdx] = max1.SaturatingSub(max0)
		writeIdx--

		// Only s6, s4, s2 and s0 are valid.
		b74us := computeB74(b74, b30, pair.g).AndU32(0x00FF00FF)
		b30us := computeB30(b74, b30, pair.g).AndU32(0x00FF00FF)
		c := scaleCoeff4(b74us.Shl(8).Or(b30us))
		b74 = b74us.SaturatingSubI8(c.AndU32(0x00FF00FF)).OrU32(0x80008000)
		b30 = b30us.SaturatingSubI8(c.AndU32(0x00FF00FF)).OrU32(0x80008000)
	}

	{
		pair := headPairs[0]
		max1 := computeMax1(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x000000FF, 0x000000FF)
		max0 := computeMax0(pair.a.s74, pair.a.s30, pair.g, b74, b30, 0x000000FF, 0x000000FF)
		lApp[writeIdx] = max1.SaturatingSub(max0)
		writeIdx--

		// Only s4 and s0 are valid.
		b74us := computeB74(b74, b30, pair.g).AndU32(0x000000FF)
		b30us := computeB30(b74, b30, pair.g).AndU32(0x000000FF)
		c := scaleCoeff2(b74us.Shl(8).Or(b30us))
		b74 = b74us.SaturatingSubI8(c.AndU32(0x000000FF)).OrU32(0x80808000)
		b30 = b30us.SaturatingSubI8(c.AndU32(0x000000FF)).OrU32(0x80808000)
	}

	{
		a74 := NewDWordFromU32(0x80808080)
		a30 := NewDWordFromU32(0x80808000)
		g := gVector[0]

		max1 := computeMax1(a74, a30, g, b74, b30, 0x00000000, 0x000000FF)
		max0 := computeMax0(a74, a30, g, b74, b30, 0x00000000, 0x000000FF)
		lApp[writeIdx] = max1.SaturatingSub(max0)
		writeIdx--
	}

	return lApp
}

func computeA74(a74Prev, a30Prev, g DWord) DWord {
	// Case when u=0 is transmitted.
	a74 := a74Prev.AndU32(0x00FFFF00).Shl(8).Or(
		a30Prev.AndU32(0x00FFFF00).Shr(8))

	g74 := g.AndU32(0x000000FF).Shl(24).Or(
		g.AndU32(0x0000FF00).Shl(8)).Or(
		g.AndU32(0x0000FFFF))

	zero74 := a74.SaturatingAddI8(g74)

	// Case when u=1 is transmitted.
	a74 = a74Prev.AndU32(0xFF000000).Or(
		a74Prev.AndU32(0x000000FF).Shl(16)).Or(
		a30Prev.AndU32(0xFF000000).Shr(16)).Or(
		a30Prev.AndU32(0x000000FF))

	g74 = g.AndU32(0xFFFF0000).Or(
		g.AndU32(0x00FF0000).Shr(8)).Or(
		g.AndU32(0xFF000000).Shr(24))

	one74 := a74.SaturatingAddI8(g74)

	return zero74.MaxI8(one74)
}

func computeA30(a74Prev, a30Prev, g DWord) DWord {
	// Case when u=0 is transmitted.
	a30 := a74Prev.AndU32(0xFF000000).Or(
		a74Prev.AndU32(0x000000FF).Shl(16)).Or(
		a30Prev.AndU32(0xFF000000).Shr(16)).Or(
		a30Prev.AndU32(0x000000FF))

	g30 := g.AndU32(0x000000FF).Shl(24).Or(
		g.AndU32(0x0000FF00).Shl(8)).Or(
		g.AndU32(0x0000FFFF))

	zero30 := a30.SaturatingAddI8(g30)

	// Case when u=1 is transmitted.
	a30 = a74Prev.AndU32(0x00FFFF00).Shl(8).Or(
		a30Prev.AndU32(0x00FFFF00).Shr(8))

	g30 = g.AndU32(0xFFFF0000).Or(
		g.AndU32(0x00FF0000).Shr(8)).Or(
		g.AndU32(0xFF000000).Shr(24))

	one30 := a30.SaturatingAddI8(g30)

	return zero30.MaxI8(one30)
}

func computeB74(b74Next, b30Next, g DWord) DWord {
	// Case when u=0 is transmitted.
	b74 := b30Next.AndU32(0xFF000000).Or(
		b74Next.AndU32(0xFFFF0000).Shr(8)).Or(
		b30Next.AndU32(0x00FF0000).Shr(16))

	g74 := g.AndU32(0x000000FF).Shl(24).Or(
		g.AndU32(0x000000FF).Shl(16)).Or(
		g.AndU32(0x0000FF00)).Or(
		g.AndU32(0x0000FF00).Shr(8))

	zero74 := b74.SaturatingAddI8(g74)

	// Case when u=1 is transmitted.
	b74 = b74Next.AndU32(0xFF000000).Or(
		b30Next.AndU32(0xFFFF0000).Shr(8)).Or(
		b74Next.AndU32(0x00FF0000).Shr(16))

	g74 = g.AndU32(0xFF000000).Or(
		g.AndU32(0xFFFF0000).Shr(8)).Or(
		g.AndU32(0x00FF0000).Shr(16))

	one74 := b74.SaturatingAddI8(g74)

	return zero74.MaxI8(one74)
}

func computeB30(b74Next, b30Next, g DWord) DWord {
	// Case when u=0 is transmitted.
	b30 := b30Next.AndU32(0x0000FF00).Shl(16).Or(
		b74Next.AndU32(0x0000FFFF).Shl(8)).Or(
		b30Next.AndU32(0x000000FF))

	g30 := g.AndU32(0x0000FF00).Shl(16).Or(
		g.AndU32(0x0000FFFF).Shl(8)).Or(
		g.AndU32(0x000000FF))

	zero30 := b30.SaturatingAddI8(g30)

	// Case when u=1 is transmitted.
	b30 = b74Next.AndU32(0x0000FF00).Shl(16).Or(
		b30Next.AndU32(0x0000FFFF).Shl(8)).Or(
		b74Next.AndU32(0x000000FF))

	g30 = g.AndU32(0x00FF0000).Shl(8).Or(
		g.AndU32(0x00FF0000)).Or(
		g.AndU32(0xFF000000).Shr(16)).Or(
		g.AndU32(0xFF000000).Shr(24))

	one30 := b30.SaturatingAddI8(g30)

	return zero30.MaxI8(one30)
}

func computeMax0(a74, a30, g, b74, b30 DWord, a74Valid, a30Valid uint32) Llr {
	// States 7-4.
	g74 := g.AndU32(0x000000FF).Shl(24).Or(
		g.AndU32(0x000000FF).Shl(16)).Or(
		g.AndU32(0x0000FF00)).Or(
		g.AndU32(0x0000FF00).Shr(8))

	// Align B for u=0 according to A.
	bFor74 := b30.AndU32(0xFF000000).Or(
		b74.AndU32(0xFFFF0000).Shr(8)).Or(
		b30.AndU32(0x00FF0000).Shr(16))

	sum74 := a74.SaturatingAddI8(g74.SaturatingAddI8(bFor74)).AndU32(a74Valid).OrU32(0x80808080 &^ a74Valid)

	// States 3-0.
	g30 := g.AndU32(0x0000FF00).Shl(16).Or(
		g.AndU32(0x0000FFFF).Shl(8)).Or(
		g.AndU32(0x000000FF))

	// Align B for u=0 according to A.
	bFor30 := b30.AndU32(0x0000FF00).Shl(16).Or(
		b74.AndU32(0x0000FFFF).Shl(8)).Or(
		b30.AndU32(0x000000FF))

	sum30 := a30.SaturatingAddI8(g30.SaturatingAddI8(bFor30)).AndU32(a30Valid).OrU32(0x80808080 &^ a30Valid)

	max := sum74.MaxI8(sum30)
	max = max.MaxI8(max.Shr(16))
	max = max.MaxI8(max.Shr(8))
	return Llr(int8(max.U32() & 0xFF))
}

func computeMax1(a74, a30, g, b74, b30 DWord, a74Valid, a30Valid uint32) Llr {
	// States 7-4.
	g74 := g.AndU32(0xFF000000).Or(
		g.AndU32(0xFFFF0000).Shr(8)).Or(
		g.AndU32(0x00FF0000).Shr(16))

	// Align B for u=1 according to A.
	bFor74 := b74.AndU32(0xFF000000).Or(
		b30.AndU32(0xFFFF0000).Shr(8)).Or(
		b74.AndU32(0x00FF0000).Shr(16))

	sum74 := a74.SaturatingAddI8(g74.SaturatingAddI8(bFor74)).AndU32(a74Valid).OrU32(0x80808080 &^ a74Valid)

	// States 3-0.
	g30 := g.AndU32(0x00FF0000).Shl(8).Or(
		g.AndU32(0x00FF0000)).Or(
		g.AndU32(0xFF000000).Shr(16)).Or(
		g.AndU32(0xFF000000).Shr(24))

	// Align B for u=1 according to A.
	bFor30 := b74.AndU32(0x0000FF00).Shl(16).Or(
		b30.AndU32(0x0000FFFF).Shl(8)).Or(
		b74.AndU32(0x000000FF))

	sum30 := a30.SaturatingAddI8(g30.SaturatingAddI8(bFor30)).AndU32(a30Valid).OrU32(0x80808080 &^ a30Valid)

	max := sum74.MaxI8(sum30)
	max = max.MaxI8(max.Shr(16))
	max = max.MaxI8(max.Shr(8))
	return Llr(int8(max.U32() & 0xFF))
}

// scaleCoeff2 returns the coefficient so the values across two states sum
// to 0 (log(1) = 0), broadcast to both lanes.
func scaleCoeff2(values10 DWord) DWord {
	u := values10.Shl(16).Or(values10)
	return u.RotateRight(8).HalfAddI8(u)
}

// scaleCoeff4 returns the coefficient so the values across four states sum
// to 0, broadcast to all four lanes.
func scaleCoeff4(values30 DWord) DWord {
	sum := values30.RotateRight(8).HalfAddI8(values30)
	return sum.RotateRight(16).HalfAddI8(sum)
}

// scaleCoeff8 returns the coefficient so the values across eight states sum
// to 0, broadcast across both DWords.
func scaleCoeff8(values74, values30 DWord) DWord {
	sum := values74.HalfAddI8(values30)
	sum = sum.RotateRight(8).HalfAddI8(sum)
	return sum.RotateRight(16).HalfAddI8(sum)
}
