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

// Package turbofec implements a fixed-point max-log-MAP turbo decoder for the
// UMTS/LTE family of parallel-concatenated convolutional codes, built around
// a four-lane 8-bit SIMD-within-a-register primitive layer.
//
// This file documents the simd contract. Two backends satisfy it:
//
//   - simd_fallback.go (build tag !turbodsp): portable, lane-by-lane using a
//     16-bit intermediate.
//   - simd_dsp.go (build tag turbodsp): a separate lane-by-lane scalar
//     implementation standing in for a Cortex-M4's single-instruction
//     QADD8/QSUB8/SHADD8/SHSUB8/SSAT/USAT dispatch.
//
// Selection is compile-time only (a build tag), never a runtime branch, so
// identical inputs produce bit-identical outputs regardless of which backend
// a given build was compiled with.
package turbofec

// SaturateBitsSigned saturates a signed 32-bit input to the signed range
// representable in the given number of bits: [-2^(bits-1), 2^(bits-1)-1].
// bits must be in [1,32].
func SaturateBitsSigned(x int32, bits uint) int32 {
	if bits < 1 || bits > 32 {
		panic("turbofec: SaturateBitsSigned: bits out of range [1,32]")
	}
	if bits == 32 {
		return x
	}
	maxValue := int32((uint32(1) << (bits - 1)) - 1)
	minValue := -maxValue - 1
	if x > maxValue {
		return maxValue
	}
	if x < minValue {
		return minValue
	}
	return x
}

// SaturateBitsUnsigned saturates a signed 32-bit input to the unsigned range
// representable in the given number of bits: [0, 2^bits-1]. bits must be in
// [0,31]; negative inputs saturate to 0.
func SaturateBitsUnsigned(x int32, bits uint) uint32 {
	if bits > 31 {
		panic("turbofec: SaturateBitsUnsigned: bits out of range [0,31]")
	}
	var maxValue int32
	if bits == 0 {
		maxValue = 0
	} else {
		maxValue = int32((uint32(1) << bits) - 1)
	}
	if x > maxValue {
		return uint32(maxValue)
	}
	if x < 0 {
		return 0
	}
	return uint32(x)
}
