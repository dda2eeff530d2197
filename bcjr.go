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

// BcjrDecoder is a MAP decoder using the BCJR forward-backward algorithm
// over some fixed constituent trellis. It is the capability interface the
// turbo engine drives; UmtsTrellis and LteTrellis are the two concrete
// trellises this package ships.
type BcjrDecoder interface {
	// Decode consumes the systematic, parity and a-priori LLR streams for
	// one block (all of equal length) and returns the a-posteriori LLR for
	// every stage, in the same order. terminated selects whether the
	// trellis is expected to end in state 0.
	Decode(systematic, parity, apriori []Llr, terminated bool) []Llr
}
