package turbofec

import "testing"

func TestLlrHard(t *testing.T) {
	cases := []struct {
		value Llr
		want  bool
	}{
		{Llr(1), true},
		{Llr(0), false},
		{Llr(-1), false},
		{Llr(127), true},
		{Llr(-128), false},
	}
	for _, c := range cases {
		if got := c.value.Hard(); got != c.want {
			t.Errorf("Llr(%d).Hard() = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestLlrSaturatingSub(t *testing.T) {
	cases := []struct {
		a, b, want Llr
	}{
		{10, 7, 3},
		{-10, -7, -3},
		{-10, 120, -128},
		{0, -128, 127},
		{127, -1, 127},
		{-128, 1, -128},
	}
	for _, c := range cases {
		if got := c.a.SaturatingSub(c.b); got != c.want {
			t.Errorf("%d.SaturatingSub(%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLlrZero(t *testing.T) {
	if LlrZero != 0 {
		t.Errorf("LlrZero = %d, want 0", LlrZero)
	}
	if LlrZero.Hard() {
		t.Error("LlrZero.Hard() should be false")
	}
}
