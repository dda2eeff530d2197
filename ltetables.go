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

// qppFactors is one (f1, f2) pair from a 3GPP QPP parameter grid.
type qppFactors struct {
	f1, f2 int
}

// lteF5K64Step1 covers block lengths 40..512 bits, in steps of 8 bits.
var lteF5K64Step1 = [60]qppFactors{
	{3, 10}, {7, 12}, {19, 42}, {7, 16}, {7, 18}, {11, 20}, {5, 22}, {11, 24},
	{7, 26}, {41, 84}, {103, 90}, {15, 32}, {9, 34}, {17, 108}, {9, 38}, {21, 120},
	{101, 84}, {21, 44}, {57, 46}, {23, 48}, {13, 50}, {27, 52}, {11, 36}, {27, 56},
	{85, 58}, {29, 60}, {33, 62}, {15, 32}, {17, 198}, {33, 68}, {103, 210}, {19, 36},
	{19, 74}, {37, 76}, {19, 78}, {21, 120}, {21, 82}, {115, 84}, {193, 86}, {21, 44},
	{133, 90}, {81, 46}, {45, 94}, {23, 48}, {243, 98}, {151, 40}, {155, 102}, {25, 52},
	{51, 106}, {47, 72}, {91, 110}, {29, 168}, {29, 114}, {247, 58}, {29, 118}, {89, 180},
	{91, 122}, {157, 62}, {55, 84}, {31, 64},
}

// lteF66K128Step2 covers block lengths 528..1024 bits, in steps of 16 bits.
var lteF66K128Step2 = [32]qppFactors{
	{17, 66}, {35, 68}, {227, 420}, {65, 96}, {19, 74}, {37, 76}, {41, 234}, {39, 80},
	{185, 82}, {43, 252}, {21, 86}, {155, 44}, {79, 120}, {139, 92}, {23, 94}, {217, 48},
	{25, 98}, {17, 80}, {127, 102}, {25, 52}, {239, 106}, {17, 48}, {137, 110}, {215, 112},
	{29, 114}, {15, 58}, {147, 118}, {29, 60}, {59, 122}, {65, 124}, {55, 84}, {31, 64},
}

// lteF132K256Step4 covers block lengths 1056..2048 bits, in steps of 32 bits.
var lteF132K256Step4 = [32]qppFactors{
	{17, 66}, {171, 204}, {67, 140}, {35, 72}, {19, 74}, {39, 76}, {19, 78}, {199, 240},
	{21, 82}, {211, 252}, {21, 86}, {43, 88}, {149, 60}, {45, 92}, {49, 846}, {71, 48},
	{13, 28}, {17, 80}, {25, 102}, {183, 104}, {55, 954}, {127, 96}, {27, 110}, {29, 112},
	{29, 114}, {57, 116}, {45, 354}, {31, 120}, {59, 610}, {185, 124}, {113, 420}, {31, 64},
}

// lteF264K768Step8 covers block lengths 2112..6144 bits, in steps of 64 bits.
var lteF264K768Step8 = [64]qppFactors{
	{17, 66}, {171, 136}, {209, 420}, {253, 216}, {367, 444}, {265, 456}, {181, 468}, {39, 80},
	{27, 164}, {127, 504}, {143, 172}, {43, 88}, {29, 300}, {45, 92}, {157, 188}, {47, 96},
	{13, 28}, {111, 240}, {443, 204}, {51, 104}, {51, 212}, {451, 192}, {257, 220}, {57, 336},
	{313, 228}, {271, 232}, {179, 236}, {331, 120}, {363, 244}, {375, 248}, {127, 168}, {31, 64},
	{33, 130}, {43, 264}, {33, 134}, {477, 408}, {35, 138}, {233, 280}, {357, 142}, {337, 480},
	{37, 146}, {71, 444}, {71, 120}, {37, 152}, {39, 462}, {127, 234}, {39, 158}, {39, 80},
	{31, 96}, {113, 902}, {41, 166}, {251, 336}, {43, 170}, {21, 86}, {43, 174}, {45, 176},
	{45, 178}, {161, 120}, {89, 182}, {323, 184}, {47, 186}, {23, 94}, {47, 190}, {263, 480},
}

// LteQppGet returns the LTE QPP interleaver for a block length of kBits
// bits, or (Qpp{}, false) when kBits does not lie on any of the four 3GPP
// grids.
func LteQppGet(kBits int) (Qpp, bool) {
	f1, f2, ok := lteQppParams(kBits)
	if !ok {
		return Qpp{}, false
	}
	return NewQpp(kBits, f1, f2), true
}

func lteQppParams(kBits int) (f1, f2 int, ok bool) {
	switch {
	case kBits >= 5*8 && kBits <= 64*8:
		index := (kBits - 5*8) / 8
		if 5*8+index*8 == kBits {
			p := lteF5K64Step1[index]
			return p.f1, p.f2, true
		}
	case kBits >= 66*8 && kBits <= 128*8:
		index := (kBits - 66*8) / 16
		if 66*8+index*16 == kBits {
			p := lteF66K128Step2[index]
			return p.f1, p.f2, true
		}
	case kBits >= 132*8 && kBits <= 256*8:
		index := (kBits - 132*8) / 32
		if 132*8+index*32 == kBits {
			p := lteF132K256Step4[index]
			return p.f1, p.f2, true
		}
	case kBits >= 264*8 && kBits <= 768*8:
		index := (kBits - 264*8) / 64
		if 264*8+index*64 == kBits {
			p := lteF264K768Step8[index]
			return p.f1, p.f2, true
		}
	}
	return 0, 0, false
}
