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

//go:build turbodsp

// Package turbofec, dsp build: a backend standing in for the single-instruction
// QADD8/QSUB8/SHADD8/SHSUB8 dispatch a Cortex-M4 would use. Each operation
// extracts the four byte lanes of the 32-bit word, computes each lane with
// scalar arithmetic and repacks the results.
package turbofec

import (
	"log"

	"github.com/templexxx/cpu"
)

// dspLaneNote is computed once at init from the host's capability table and
// logged by init. It does not gate behavior -- the backend is chosen by the
// turbodsp build tag alone -- but a software emulation of a
// single-instruction Cortex-M4 dispatch is worth flagging when the host is
// plainly not ARM.
var dspLaneNote = func() string {
	if cpu.X86 {
		return "dsp backend active on an x86 host: emulating Cortex-M4 QADD8/QSUB8/SHADD8/SHSUB8 in software"
	}
	return "dsp backend active"
}()

func init() {
	log.Println(dspLaneNote)
}

func dspSignExtend(b byte) int32 {
	return int32(int8(b))
}

func dspClampToByte(v int32) byte {
	return byte(uint8(SaturateBitsSigned(v, 8)))
}

// SaturatingAddI8 performs a four-lane signed saturating add, one lane per
// lockstep lane-extract/compute/pack step.
func SaturatingAddI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		out |= uint32(dspClampToByte(a+b)) << shift
	}
	return out
}

// SaturatingSubI8 performs a four-lane signed saturating sub.
func SaturatingSubI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		out |= uint32(dspClampToByte(a-b)) << shift
	}
	return out
}

// dspHalveFloor mirrors the SHADD8/SHSUB8 arithmetic-shift-by-one
// definition: floor division, not truncation toward zero.
func dspHalveFloor(v int32) int32 {
	if v >= 0 {
		return v / 2
	}
	return (v - 1) / 2
}

// HalfAddI8 performs a four-lane signed halving add (floor semantics).
func HalfAddI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		out |= uint32(byte(int8(dspHalveFloor(a+b)))) << shift
	}
	return out
}

// HalfSubI8 performs a four-lane signed halving sub (floor semantics).
func HalfSubI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		out |= uint32(byte(int8(dspHalveFloor(a-b)))) << shift
	}
	return out
}

// MaxI8 performs a four-lane signed max, synthesised the way a Cortex-M4
// would: a bytewise signed subtract/compare followed by a lane select.
func MaxI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		sel := a
		if b > a {
			sel = b
		}
		out |= uint32(byte(int8(sel))) << shift
	}
	return out
}

// MinI8 performs a four-lane signed min.
func MinI8(lhs, rhs uint32) uint32 {
	var out uint32
	for lane := uint(0); lane < 4; lane++ {
		shift := lane * 8
		a := dspSignExtend(byte(lhs >> shift))
		b := dspSignExtend(byte(rhs >> shift))
		sel := a
		if b < a {
			sel = b
		}
		out |= uint32(byte(int8(sel))) << shift
	}
	return out
}
