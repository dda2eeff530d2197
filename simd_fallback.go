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

//go:build !turbodsp

package turbofec

// Portable fallback backend. Each lane is carried out in a 16-bit
// intermediate so the add/sub cannot itself overflow before saturation is
// applied.

func lanes(u uint32) (a, b, c, d int8) {
	return int8(u), int8(u >> 8), int8(u >> 16), int8(u >> 24)
}

func packLanes(a, b, c, d int8) uint32 {
	return uint32(uint8(a)) | uint32(uint8(b))<<8 | uint32(uint8(c))<<16 | uint32(uint8(d))<<24
}

func satAdd8(a, b int8) int8 {
	sum := int16(a) + int16(b)
	return int8(SaturateBitsSigned(int32(sum), 8))
}

func satSub8(a, b int8) int8 {
	diff := int16(a) - int16(b)
	return int8(SaturateBitsSigned(int32(diff), 8))
}

// halfAdd8 implements floor-halving: (a+b)>=0 ? (a+b)/2 : (a+b-1)/2. This
// matches the Cortex-M4 SHADD8 instruction's arithmetic-shift-by-one
// semantics, not truncation-toward-zero.
func halfAdd8(a, b int8) int8 {
	sum := int16(a) + int16(b)
	if sum >= 0 {
		return int8(sum / 2)
	}
	return int8((sum - 1) / 2)
}

func halfSub8(a, b int8) int8 {
	diff := int16(a) - int16(b)
	if diff >= 0 {
		return int8(diff / 2)
	}
	return int8((diff - 1) / 2)
}

func max8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}

func min8(a, b int8) int8 {
	if a < b {
		return a
	}
	return b
}

// SaturatingAddI8 performs a four-lane signed saturating add.
func SaturatingAddI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(satAdd8(a0, b0), satAdd8(a1, b1), satAdd8(a2, b2), satAdd8(a3, b3))
}

// SaturatingSubI8 performs a four-lane signed saturating sub.
func SaturatingSubI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(satSub8(a0, b0), satSub8(a1, b1), satSub8(a2, b2), satSub8(a3, b3))
}

// HalfAddI8 performs a four-lane signed halving add, rounding toward
// negative infinity.
func HalfAddI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(halfAdd8(a0, b0), halfAdd8(a1, b1), halfAdd8(a2, b2), halfAdd8(a3, b3))
}

// HalfSubI8 performs a four-lane signed halving sub, rounding toward
// negative infinity.
func HalfSubI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(halfSub8(a0, b0), halfSub8(a1, b1), halfSub8(a2, b2), halfSub8(a3, b3))
}

// MaxI8 performs a four-lane signed max.
func MaxI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(max8(a0, b0), max8(a1, b1), max8(a2, b2), max8(a3, b3))
}

// MinI8 performs a four-lane signed min.
func MinI8(lhs, rhs uint32) uint32 {
	a0, a1, a2, a3 := lanes(lhs)
	b0, b1, b2, b3 := lanes(rhs)
	return packLanes(min8(a0, b0), min8(a1, b1), min8(a2, b2), min8(a3, b3))
}
