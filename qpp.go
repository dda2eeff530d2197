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

// Qpp is a Quadratic Polynomial Permutation interleaver:
//
//	pi(i) = (f1*i + f2*i^2) mod k
//
// The formula can be rewritten as the recursive expression:
//
//	pi(i+1) = (pi(i) + g(i)) mod k
//	g(i+1)  = (g(i) + 2*f2 mod k) mod k
//
// with `2*f2 mod k` constant across iterations. Qpp is named after, but
// unrelated to, the "Quantum Permutation Pad" object in this teacher's own
// std/qpp.go: that one is a random PRNG-driven confidentiality pad, this one
// is the deterministic LTE interleaver polynomial.
type Qpp struct {
	k, f1, f2 int
}

// NewQpp builds a QPP interleaver for block length k (number of indices) and
// polynomial coefficients f1, f2.
func NewQpp(k, f1, f2 int) Qpp {
	return Qpp{k: k, f1: f1, f2: f2}
}

// K returns the interleaver's block length.
func (q Qpp) K() int {
	return q.k
}

// Pi computes the interleaved index for i directly from the quadratic
// formula. Calling this k times is slower than iterating the whole
// permuted sequence with Iter.
func (q Qpp) Pi(i int) int {
	return (q.f1*i + q.f2*i*i) % q.k
}

// QppIterator produces the permuted sequence 0..k using the QPP recurrence.
type QppIterator struct {
	k, twoF2ModK, pi, g, i int
}

// Iter returns a fresh iterator over the permuted sequence. It produces k
// indices and is faster than invoking Pi k times. Re-invoking Iter
// restarts the sequence.
func (q Qpp) Iter() *QppIterator {
	return &QppIterator{
		k:         q.k,
		twoF2ModK: (2 * q.f2) % q.k,
		pi:        0,
		g:         (q.f1 + q.f2) % q.k,
		i:         0,
	}
}

// Next returns the next permuted index, or (0, false) once k values have
// been produced.
func (it *QppIterator) Next() (int, bool) {
	if it.i >= it.k {
		return 0, false
	}
	pi := it.pi
	g := it.g
	it.pi = (pi + g) % it.k
	it.g = (g + it.twoF2ModK) % it.k
	it.i++
	return pi, true
}

// Len reports how many values remain to be produced, matching the spec's
// ExactSizeIterator contract.
func (it *QppIterator) Len() int {
	return it.k - it.i
}

// Collect drains the iterator into a slice. The turbo engine calls this once
// per Decode, up front, and then indexes the returned permutation directly
// for the rest of the outer-iteration loop rather than driving Next per
// lookup.
func (it *QppIterator) Collect() []int {
	out := make([]int, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
