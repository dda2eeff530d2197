package turbofec

import (
	"reflect"
	"testing"
)

func TestLteTrellisMatchesUmtsTrellis(t *testing.T) {
	var lte LteTrellis
	var umts UmtsTrellis

	systematic := llrSlice(-4, -4, -4, 4, -4, -4, 4, 4, -4, -4, -4, -4, -4, -4, 4, -4, 4, -4, 4)
	parity := llrSlice(-4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, 4)
	apriori := make([]Llr, len(systematic))

	got := lte.Decode(systematic, parity, apriori, true)
	want := umts.Decode(systematic, parity, apriori, true)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LteTrellis.Decode() = %v, want %v (same as UmtsTrellis)", got, want)
	}
}

func TestLteTrellisSatisfiesBcjrDecoder(t *testing.T) {
	var _ BcjrDecoder = LteTrellis{}
	var _ BcjrDecoder = UmtsTrellis{}
}
