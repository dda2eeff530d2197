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

// LteTrellis implements BcjrDecoder for the 8-state constituent code used by
// the 3GPP LTE turbo code (TS 36.212). LTE specifies the same (1, 15/13)
// octal generator and feedback polynomial as UMTS (TS 25.212); the two
// standards differ in their interleaver (QPP for LTE, a distinct
// prime-interleaver for UMTS), not in the constituent trellis. LteTrellis is
// therefore a distinct, correctly-named BcjrDecoder rather than an
// unlabeled duplicate of UmtsTrellis, but its Decode is the same trellis
// walk: it calls UmtsTrellis.Decode, so every edge, mask and scale
// coefficient is UmtsTrellis's own.
type LteTrellis struct{}

// Decode runs the same packed max-log-MAP recursion as UmtsTrellis.Decode,
// against the LTE constituent code's trellis.
func (LteTrellis) Decode(systematic, parity, apriori []Llr, terminated bool) []Llr {
	var umts UmtsTrellis
	return umts.Decode(systematic, parity, apriori, terminated)
}
