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

import "github.com/pkg/errors"

// newShapeMismatchError reports that the systematic, parity and apriori
// streams handed to a BcjrDecoder did not have matching lengths. This is a
// programming error in the caller, not a recoverable decode failure.
func newShapeMismatchError(systematicLen, parityLen, aprioriLen int) error {
	return errors.Errorf("turbofec: shape mismatch: systematic=%d parity=%d apriori=%d, all three must match",
		systematicLen, parityLen, aprioriLen)
}

// newBlockTooShortError reports a block too short to open and close the
// trellis (fewer than 6 symbols, the 3 tail symbols included).
func newBlockTooShortError(length int) error {
	return errors.Errorf("turbofec: block of %d symbols is too short to open and close the trellis (need >= 6)", length)
}

// newTurboShapeMismatchError reports that a turbo decode's parity stream
// did not have the expected systematic+tail length.
func newTurboShapeMismatchError(name string, want, got int) error {
	return errors.Errorf("turbofec: %s has length %d, want %d (systematic + tail)", name, got, want)
}
