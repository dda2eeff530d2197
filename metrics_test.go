package turbofec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecoderStatsAddAndSnapshot(t *testing.T) {
	var s DecoderStats
	s.AddBlock()
	s.AddBlock()
	s.AddIteration(3)
	s.AddIteration(1)

	snap := s.Snapshot()
	if snap.BlocksDecoded != 2 {
		t.Errorf("BlocksDecoded = %d, want 2", snap.BlocksDecoded)
	}
	if snap.OuterIterations != 2 {
		t.Errorf("OuterIterations = %d, want 2", snap.OuterIterations)
	}
	if snap.BitFlips != 4 {
		t.Errorf("BitFlips = %d, want 4", snap.BitFlips)
	}
}

func TestDecoderStatsReset(t *testing.T) {
	var s DecoderStats
	s.AddBlock()
	s.AddIteration(5)
	s.Reset()
	snap := s.Snapshot()
	if snap.BlocksDecoded != 0 || snap.OuterIterations != 0 || snap.BitFlips != 0 {
		t.Errorf("Reset() left non-zero counters: %+v", snap)
	}
}

func TestDecoderStatsHeaderMatchesToSlice(t *testing.T) {
	var s DecoderStats
	s.AddBlock()
	if len(s.Header()) != len(s.ToSlice()) {
		t.Errorf("Header() has %d columns, ToSlice() has %d", len(s.Header()), len(s.ToSlice()))
	}
}

func TestBitFlipCount(t *testing.T) {
	prev := llrSlice(4, -4, 4, -4)
	cur := llrSlice(4, 4, 4, 4)
	if got := BitFlipCount(prev, cur); got != 2 {
		t.Errorf("BitFlipCount = %d, want 2", got)
	}
}

func TestBitFlipCountLengthMismatch(t *testing.T) {
	prev := llrSlice(4, -4)
	cur := llrSlice(4, -4, 4)
	if got := BitFlipCount(prev, cur); got != len(cur) {
		t.Errorf("BitFlipCount = %d, want %d", got, len(cur))
	}
}

func TestLogStatsWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.csv")

	var s DecoderStats
	s.AddBlock()
	if err := LogStats(path, &s); err != nil {
		t.Fatalf("LogStats: %v", err)
	}
	s.AddBlock()
	if err := LogStats(path, &s); err != nil {
		t.Fatalf("LogStats: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty csv file")
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want 3 (one header, two rows): %q", len(lines), data)
	}
	if got := strings.Count(string(data), "BlocksDecoded"); got != 1 {
		t.Errorf("header written %d times, want 1", got)
	}
}
