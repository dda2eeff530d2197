package turbofec

import (
	"reflect"
	"testing"
)

func TestTurboDecoderTwoOuterIterations(t *testing.T) {
	systematic := llrSlice(-4, -4, -4, 4, -4, -4, 4, 4, -4, -4, -4, -4, -4, -4, 4, -4)
	t1 := llrSlice(4, -4, 4)
	p1 := llrSlice(-4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, 4)
	t2 := llrSlice(-4, -4, -4)
	p2 := llrSlice(-4, -4, -4, 4, 4, 4, -4, 4, 4, -4, -4, 4, -4, 4, -4, 4, -4, -4, -4)

	interleaver := NewQpp(16, 1, 4)

	var umts UmtsTrellis
	turbo := NewTurboDecoder(umts, umts)
	it := turbo.Decode(systematic, t1, p1, t2, p2, interleaver)

	if got := it.Get(); got != nil {
		t.Fatalf("Get() before first Advance() = %v, want nil/empty", got)
	}

	it.Advance()
	want1 := llrSlice(-72, -52, -68, 44, -68, -72, 68, 68, -60, -72, -52, -60, -60, -52, 44, -52)
	if got := it.Get(); !reflect.DeepEqual(got, want1) {
		t.Errorf("after iteration 1 = %v, want %v", got, want1)
	}

	it.Advance()
	want2 := llrSlice(-108, -84, -92, 59, -92, -108, 88, 46, -76, -84, -60, -68, -76, -60, 44, -52)
	if got := it.Get(); !reflect.DeepEqual(got, want2) {
		t.Errorf("after iteration 2 = %v, want %v", got, want2)
	}
}

func TestTurboDecoderResetClearsBuffers(t *testing.T) {
	systematic := llrSlice(-4, -4, -4, 4, -4, -4, 4, 4, -4, -4, -4, -4, -4, -4, 4, -4)
	t1 := llrSlice(4, -4, 4)
	p1 := llrSlice(-4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, -4, -4, -4, 4, 4, 4, 4)
	t2 := llrSlice(-4, -4, -4)
	p2 := llrSlice(-4, -4, -4, 4, 4, 4, -4, 4, 4, -4, -4, 4, -4, 4, -4, 4, -4, -4, -4)

	var umts UmtsTrellis
	turbo := NewTurboDecoder(umts, umts)
	it := turbo.Decode(systematic, t1, p1, t2, p2, NewQpp(16, 1, 4))
	it.Advance()

	if got := it.Get(); got == nil {
		t.Fatal("expected non-nil buffer after Advance")
	}

	it.Reset()
	if got := it.Get(); got != nil {
		t.Errorf("Get() after Reset() = %v, want nil", got)
	}
}

func TestTurboDecoderPanicsOnParityShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on parity shape mismatch")
		}
	}()
	systematic := llrSlice(-4, -4, -4, 4, -4, -4, 4, 4, -4, -4, -4, -4, -4, -4, 4, -4)
	t1 := llrSlice(4, -4, 4)
	p1 := llrSlice(0, 0, 0) // too short
	t2 := llrSlice(-4, -4, -4)
	p2 := llrSlice(-4, -4, -4, 4, 4, 4, -4, 4, 4, -4, -4, 4, -4, 4, -4, 4, -4, -4, -4)

	var umts UmtsTrellis
	turbo := NewTurboDecoder(umts, umts)
	turbo.Decode(systematic, t1, p1, t2, p2, NewQpp(16, 1, 4))
}
