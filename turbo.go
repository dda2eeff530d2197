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

// TurboDecoder drives two passes of a BcjrDecoder per outer iteration,
// exchanging extrinsic information across a QPP interleaver. first and
// second are usually the same concrete trellis (a transmitter's two
// constituent encoders are identical), but are kept distinct so a UMTS/LTE
// mix can be driven by the same outer loop, e.g. for testing.
type TurboDecoder struct {
	first  BcjrDecoder
	second BcjrDecoder
}

// NewTurboDecoder builds a turbo engine around the given pair of
// constituent BCJR decoders.
func NewTurboDecoder(first, second BcjrDecoder) *TurboDecoder {
	return &TurboDecoder{first: first, second: second}
}

// Decode begins a stepwise decode of one block. systematic has length N;
// t1/t2 are the (possibly empty) per-decoder termination tails; p1/p2 are
// the matching parity streams of length N+len(t1) and N+len(t2). interleaver
// must have block length N. Each call to Advance on the returned
// TurboIteration performs one full outer iteration (two BCJR passes).
func (t *TurboDecoder) Decode(systematic, t1, p1, t2, p2 []Llr, interleaver Qpp) *TurboIteration {
	n := len(systematic)
	if interleaver.K() != n {
		panic(newTurboShapeMismatchError("interleaver", n, interleaver.K()))
	}
	if len(p1) != n+len(t1) {
		panic(newTurboShapeMismatchError("P1", n+len(t1), len(p1)))
	}
	if len(p2) != n+len(t2) {
		panic(newTurboShapeMismatchError("P2", n+len(t2), len(p2)))
	}

	pi := interleaver.Iter().Collect()

	return &TurboIteration{
		decoder:           t,
		systematic:        systematic,
		t1:                t1,
		p1:                p1,
		t2:                t2,
		p2:                p2,
		pi:                pi,
		lAppDeinterleaved: make([]Llr, n),
		laSecond:          make([]Llr, n),
	}
}

// TurboIteration is the stepwise handle returned by TurboDecoder.Decode. It
// owns the two buffers persisted across outer iterations: the de-interleaved
// a-posteriori LLR and the second decoder's a-priori input. Both are
// exclusively mutated by Advance; there is no reentrancy contract.
type TurboIteration struct {
	decoder    *TurboDecoder
	systematic []Llr
	t1, t2     []Llr
	p1, p2     []Llr
	pi         []int

	lAppDeinterleaved []Llr
	laSecond          []Llr
	started           bool
}

// Advance runs one full outer iteration (BCJR1, extrinsic exchange, BCJR2,
// de-interleave) and updates the persisted buffers. It always performs the
// iteration and returns true; the engine itself has no stopping criterion,
// so the caller decides when to stop pulling iterations (CRC pass, a
// maximum count, or simply dropping the handle).
func (it *TurboIteration) Advance() bool {
	n := len(it.systematic)
	if it.lAppDeinterleaved == nil {
		it.lAppDeinterleaved = make([]Llr, n)
		it.laSecond = make([]Llr, n)
	}

	// Step 1: build a-priori input La1 for decoder 1.
	la1 := make([]Llr, n+len(it.t1))
	if it.started {
		for deIndex := 0; deIndex < n; deIndex++ {
			intIndex := it.pi[deIndex]
			lu := it.systematic[intIndex]
			la1[intIndex] = it.lAppDeinterleaved[intIndex].SaturatingSub(it.laSecond[deIndex]).SaturatingSub(lu)
		}
	}
	// The len(it.t1) termination positions stay zero.

	lu1 := make([]Llr, n+len(it.t1))
	copy(lu1, it.systematic)
	copy(lu1[n:], it.t1)

	lApp1 := it.decoder.first.Decode(lu1, it.p1, la1, len(it.t1) > 0)

	// Step 3: compute La2 for decoder 2.
	la2 := make([]Llr, n+len(it.t2))
	for i := 0; i < n; i++ {
		intIndex := it.pi[i]
		la2[i] = lApp1[intIndex].SaturatingSub(la1[intIndex]).SaturatingSub(it.systematic[intIndex])
	}
	// The len(it.t2) termination positions stay zero.

	lu2 := make([]Llr, n+len(it.t2))
	for i := 0; i < n; i++ {
		lu2[i] = it.systematic[it.pi[i]]
	}
	copy(lu2[n:], it.t2)

	lApp2 := it.decoder.second.Decode(lu2, it.p2, la2, len(it.t2) > 0)

	// Step 5: de-interleave.
	for i := 0; i < n; i++ {
		it.lAppDeinterleaved[it.pi[i]] = lApp2[i]
	}

	// Step 6: persist la_second for the next iteration.
	copy(it.laSecond, la2[:n])

	it.started = true
	return true
}

// Get returns the current de-interleaved a-posteriori LLR. Before the first
// Advance, it returns an empty slice.
func (it *TurboIteration) Get() []Llr {
	if !it.started {
		return nil
	}
	out := make([]Llr, len(it.lAppDeinterleaved))
	copy(out, it.lAppDeinterleaved)
	return out
}

// Reset clears the persisted buffers, matching the contract that dropping
// the iteration handle leaves no stale extrinsic information behind for a
// subsequent decode.
func (it *TurboIteration) Reset() {
	it.lAppDeinterleaved = nil
	it.laSecond = nil
	it.started = false
}
