package turbofec

import (
	"reflect"
	"testing"
)

func llrSlice(vs ...int) []Llr {
	out := make([]Llr, len(vs))
	for i, v := range vs {
		out[i] = Llr(v)
	}
	return out
}

func TestUmtsTrellisDecodeByte(t *testing.T) {
	var umts UmtsTrellis
	systematic := llrSlice(4, 4, -4, 4, 4, -4, -4, 4, -4, -4, -4)
	parity := llrSlice(4, -4, -4, 4, 4, -4, 4, 4, -4, -4, -4)
	apriori := make([]Llr, len(systematic))

	got := umts.Decode(systematic, parity, apriori, true)
	want := llrSlice(24, 24, -24, 24, 24, -24, -24, 24, -24, -24, -24)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestUmtsTrellisDecode16Bit(t *testing.T) {
	var umts UmtsTrellis
	systematic := llrSlice(-4, -4, -4, 4, -4, -4, 4, 4, -4, -4, -4, -4, -4, -4, 4, -4, 4, -4, 4)
	parity := llrSlice(-4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, 4)
	apriori := make([]Llr, len(systematic))

	got := umts.Decode(systematic, parity, apriori, true)
	want := llrSlice(-24, -24, -24, 24, -24, -24, 24, 24, -24, -24, -24, -24, -24, -24, 24, -24, 24, -24, 24)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestUmtsTrellisDecodeLength(t *testing.T) {
	var umts UmtsTrellis
	systematic := llrSlice(4, 4, -4, 4, 4, -4, -4, 4, -4, -4, -4)
	parity := llrSlice(4, -4, -4, 4, 4, -4, 4, 4, -4, -4, -4)
	apriori := make([]Llr, len(systematic))

	got := umts.Decode(systematic, parity, apriori, true)
	if len(got) != len(systematic) {
		t.Fatalf("len(Decode()) = %d, want %d", len(got), len(systematic))
	}
}

func TestUmtsTrellisNoiseFreeHardDecisionMatchesSystematic(t *testing.T) {
	var umts UmtsTrellis
	systematic := llrSlice(4, 4, -4, 4, 4, -4, -4, 4, -4, -4, -4)
	parity := llrSlice(4, -4, -4, 4, 4, -4, 4, 4, -4, -4, -4)
	apriori := make([]Llr, len(systematic))

	got := umts.Decode(systematic, parity, apriori, true)
	for i, lu := range systematic {
		if got[i].Hard() != lu.Hard() {
			t.Errorf("hard decision at %d = %v, want %v", i, got[i].Hard(), lu.Hard())
		}
	}
}

func TestUmtsTrellisPanicsOnShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on shape mismatch")
		}
	}()
	var umts UmtsTrellis
	umts.Decode(llrSlice(0, 0, 0, 0, 0, 0), llrSlice(0, 0, 0, 0, 0), llrSlice(0, 0, 0, 0, 0, 0), true)
}

func TestUmtsTrellisPanicsOnBlockTooShort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on block too short")
		}
	}()
	var umts UmtsTrellis
	umts.Decode(llrSlice(0, 0, 0, 0, 0), llrSlice(0, 0, 0, 0, 0), llrSlice(0, 0, 0, 0, 0), true)
}
