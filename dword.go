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

// DWord is a 32bit value simultaneously viewable as signed/unsigned i32 and
// as four signed/unsigned bytes, in host, big-endian or little-endian byte
// order. Go has no untagged unions, so the views are all derived from one
// underlying uint32 rather than type-punned. The "host order" views
// (NewDWordFromI8H, I8H, U8H) always put the least significant byte at
// index 0: that is the host memory layout on little-endian hosts, and not
// on big-endian ones.
type DWord uint32

// NewDWordFromI32 builds a DWord from a signed 32-bit value.
func NewDWordFromI32(v int32) DWord {
	return DWord(uint32(v))
}

// NewDWordFromU32 builds a DWord from an unsigned 32-bit value.
func NewDWordFromU32(v uint32) DWord {
	return DWord(v)
}

// NewDWordFromI8H builds a DWord from four signed bytes in host order.
func NewDWordFromI8H(b [4]int8) DWord {
	return DWord(uint32(uint8(b[0])) | uint32(uint8(b[1]))<<8 | uint32(uint8(b[2]))<<16 | uint32(uint8(b[3]))<<24)
}

// I32 reads the value back as a signed 32-bit integer.
func (d DWord) I32() int32 {
	return int32(uint32(d))
}

// U32 reads the value back as an unsigned 32-bit integer.
func (d DWord) U32() uint32 {
	return uint32(d)
}

// I8H returns the four signed bytes in host order.
func (d DWord) I8H() [4]int8 {
	u := d.U8H()
	return [4]int8{int8(u[0]), int8(u[1]), int8(u[2]), int8(u[3])}
}

// U8H returns the four unsigned bytes in host order ([0] is the least
// significant byte of the underlying uint32, i.e. the byte this package
// treats as "lane 0", whatever the host's byte order).
func (d DWord) U8H() [4]uint8 {
	u := uint32(d)
	return [4]uint8{uint8(u), uint8(u >> 8), uint8(u >> 16), uint8(u >> 24)}
}

// I8BE returns the bytes such that [0] is the MSB and [3] is the LSB.
func (d DWord) I8BE() [4]int8 {
	u := d.U8BE()
	return [4]int8{int8(u[0]), int8(u[1]), int8(u[2]), int8(u[3])}
}

// U8BE returns the unsigned bytes such that [0] is the MSB and [3] is the LSB.
func (d DWord) U8BE() [4]uint8 {
	u := uint32(d)
	return [4]uint8{uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)}
}

// I8LE returns the bytes such that [0] is the LSB and [3] is the MSB.
func (d DWord) I8LE() [4]int8 {
	u := d.U8LE()
	return [4]int8{int8(u[0]), int8(u[1]), int8(u[2]), int8(u[3])}
}

// U8LE returns the unsigned bytes such that [0] is the LSB and [3] is the MSB.
func (d DWord) U8LE() [4]uint8 {
	return d.U8H()
}

// RotateLeft rotates the underlying bits left by n.
func (d DWord) RotateLeft(n uint32) DWord {
	n &= 31
	if n == 0 {
		return d
	}
	u := uint32(d)
	return DWord(u<<n | u>>(32-n))
}

// RotateRight rotates the underlying bits right by n.
func (d DWord) RotateRight(n uint32) DWord {
	n &= 31
	if n == 0 {
		return d
	}
	u := uint32(d)
	return DWord(u>>n | u<<(32-n))
}

// And computes the bitwise AND of two DWords.
func (d DWord) And(rhs DWord) DWord {
	return DWord(uint32(d) & uint32(rhs))
}

// AndU32 computes the bitwise AND of a DWord and a raw mask.
func (d DWord) AndU32(rhs uint32) DWord {
	return DWord(uint32(d) & rhs)
}

// Or computes the bitwise OR of two DWords.
func (d DWord) Or(rhs DWord) DWord {
	return DWord(uint32(d) | uint32(rhs))
}

// OrU32 computes the bitwise OR of a DWord and a raw mask.
func (d DWord) OrU32(rhs uint32) DWord {
	return DWord(uint32(d) | rhs)
}

// Shl performs a logical shift left.
func (d DWord) Shl(n uint32) DWord {
	return DWord(uint32(d) << n)
}

// Shr performs a logical shift right.
func (d DWord) Shr(n uint32) DWord {
	return DWord(uint32(d) >> n)
}

// SaturateBits saturates the signed interpretation of the DWord to the given
// bit width and returns the result packed back into a DWord.
func (d DWord) SaturateBits(bits uint) DWord {
	return NewDWordFromU32(uint32(SaturateBitsSigned(d.I32(), bits)))
}

// SaturatingAddI8 applies the active simd backend's four-lane saturating add.
func (d DWord) SaturatingAddI8(rhs DWord) DWord {
	return NewDWordFromU32(SaturatingAddI8(d.U32(), rhs.U32()))
}

// SaturatingSubI8 applies the active simd backend's four-lane saturating sub.
func (d DWord) SaturatingSubI8(rhs DWord) DWord {
	return NewDWordFromU32(SaturatingSubI8(d.U32(), rhs.U32()))
}

// HalfAddI8 applies the active simd backend's four-lane halving add.
func (d DWord) HalfAddI8(rhs DWord) DWord {
	return NewDWordFromU32(HalfAddI8(d.U32(), rhs.U32()))
}

// HalfSubI8 applies the active simd backend's four-lane halving sub.
func (d DWord) HalfSubI8(rhs DWord) DWord {
	return NewDWordFromU32(HalfSubI8(d.U32(), rhs.U32()))
}

// MaxI8 applies the active simd backend's four-lane signed max.
func (d DWord) MaxI8(rhs DWord) DWord {
	return NewDWordFromU32(MaxI8(d.U32(), rhs.U32()))
}

// MinI8 applies the active simd backend's four-lane signed min.
func (d DWord) MinI8(rhs DWord) DWord {
	return NewDWordFromU32(MinI8(d.U32(), rhs.U32()))
}
