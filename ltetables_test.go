package turbofec

import "testing"

func TestLteQppGetParams(t *testing.T) {
	cases := []struct {
		kBits  int
		f1, f2 int
		ok     bool
	}{
		{4 * 8, 0, 0, false},
		{5 * 8, 3, 10, true},
		{64 * 8, 31, 64, true},
		{65 * 8, 0, 0, false},
		{66 * 8, 17, 66, true},
		{67 * 8, 0, 0, false},
		{128 * 8, 31, 64, true},
		{129 * 8, 0, 0, false},
		{131 * 8, 0, 0, false},
		{132 * 8, 17, 66, true},
		{133 * 8, 0, 0, false},
		{256 * 8, 31, 64, true},
		{257 * 8, 0, 0, false},
		{263 * 8, 0, 0, false},
		{264 * 8, 17, 66, true},
		{768 * 8, 263, 480, true},
		{769 * 8, 0, 0, false},
	}
	for _, c := range cases {
		q, ok := LteQppGet(c.kBits)
		if ok != c.ok {
			t.Errorf("LteQppGet(%d) ok = %v, want %v", c.kBits, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		f1, f2, _ := lteQppParams(c.kBits)
		if f1 != c.f1 || f2 != c.f2 {
			t.Errorf("LteQppGet(%d) = (%d,%d), want (%d,%d)", c.kBits, f1, f2, c.f1, c.f2)
		}
		if q.K() != c.kBits {
			t.Errorf("LteQppGet(%d).K() = %d, want %d", c.kBits, q.K(), c.kBits)
		}
	}
}

func TestLteQppSpecBoundaryLookups(t *testing.T) {
	cases := []struct {
		kBits  int
		f1, f2 int
	}{
		{40, 3, 10},
		{512, 31, 64},
		{528, 17, 66},
		{6144, 263, 480},
	}
	for _, c := range cases {
		q, ok := LteQppGet(c.kBits)
		if !ok {
			t.Fatalf("LteQppGet(%d) should succeed", c.kBits)
		}
		f1, f2, _ := lteQppParams(c.kBits)
		if f1 != c.f1 || f2 != c.f2 {
			t.Errorf("LteQppGet(%d) = (%d,%d), want (%d,%d)", c.kBits, f1, f2, c.f1, c.f2)
		}
		_ = q
	}

	if _, ok := LteQppGet(4 * 8); ok {
		t.Errorf("LteQppGet(%d) should fail (off grid)", 4*8)
	}
	if _, ok := LteQppGet(65 * 8); ok {
		t.Errorf("LteQppGet(%d) should fail (off grid)", 65*8)
	}
}

// TestLteQppAllGridEntriesArePermutations exercises every (k, f1, f2) in
// every grid and confirms the QPP recurrence emits a bijection on [0,k), as
// required by spec for all LTE-provided coefficients.
func TestLteQppAllGridEntriesArePermutations(t *testing.T) {
	grids := []struct {
		minK, step, count int
	}{
		{40, 8, 60},
		{528, 16, 32},
		{1056, 32, 32},
		{2112, 64, 64},
	}
	for _, g := range grids {
		for i := 0; i < g.count; i++ {
			kBits := g.minK + i*g.step
			q, ok := LteQppGet(kBits)
			if !ok {
				t.Fatalf("LteQppGet(%d) should succeed", kBits)
			}
			seen := make([]bool, kBits)
			it := q.Iter()
			for j := 0; j < kBits; j++ {
				v, ok := it.Next()
				if !ok {
					t.Fatalf("k=%d: iterator ended early at %d", kBits, j)
				}
				if v < 0 || v >= kBits || seen[v] {
					t.Fatalf("k=%d: value %d is not part of a valid permutation", kBits, v)
				}
				seen[v] = true
				if want := q.Pi(j); want != v {
					t.Fatalf("k=%d: iter[%d]=%d but Pi(%d)=%d", kBits, j, v, j, want)
				}
			}
		}
	}
}
