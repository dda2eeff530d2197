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

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// DecoderStats counts how hard a decode run worked: blocks decoded, outer
// iterations spent, and the running total of hard-decisions that flipped
// between consecutive iterations (a cheap proxy for convergence, in the
// absence of a CRC).
// Counters are atomic so a decode loop running on a worker and a logger
// reading on a timer never race, mirroring DefaultSnmp in this teacher's
// own std/snmp.go.
type DecoderStats struct {
	BlocksDecoded   uint64
	OuterIterations uint64
	BitFlips        uint64
}

// DefaultStats is the package-level counters instance, bumped by callers
// that want aggregate visibility without threading a *DecoderStats through
// every call.
var DefaultStats DecoderStats

// AddBlock records one decoded block.
func (s *DecoderStats) AddBlock() {
	atomic.AddUint64(&s.BlocksDecoded, 1)
}

// AddIteration records one outer turbo iteration, and how many hard
// decisions changed relative to the previous iteration's output (0 on the
// first iteration, since there is nothing to compare against).
func (s *DecoderStats) AddIteration(flips int) {
	atomic.AddUint64(&s.OuterIterations, 1)
	atomic.AddUint64(&s.BitFlips, uint64(flips))
}

// Snapshot returns a copy of the current counters, safe to read while a
// decode loop keeps mutating the live instance.
func (s *DecoderStats) Snapshot() DecoderStats {
	return DecoderStats{
		BlocksDecoded:   atomic.LoadUint64(&s.BlocksDecoded),
		OuterIterations: atomic.LoadUint64(&s.OuterIterations),
		BitFlips:        atomic.LoadUint64(&s.BitFlips),
	}
}

// Reset zeroes all counters.
func (s *DecoderStats) Reset() {
	atomic.StoreUint64(&s.BlocksDecoded, 0)
	atomic.StoreUint64(&s.OuterIterations, 0)
	atomic.StoreUint64(&s.BitFlips, 0)
}

// Header names the columns produced by ToSlice, in order.
func (s *DecoderStats) Header() []string {
	return []string{"BlocksDecoded", "OuterIterations", "BitFlips"}
}

// ToSlice renders the current counters as strings, for CSV logging.
func (s *DecoderStats) ToSlice() []string {
	snap := s.Snapshot()
	return []string{
		fmt.Sprint(snap.BlocksDecoded),
		fmt.Sprint(snap.OuterIterations),
		fmt.Sprint(snap.BitFlips),
	}
}

// BitFlipCount returns how many positions disagree in their hard decision
// between two equal-length LLR slices, used to feed AddIteration.
func BitFlipCount(prev, cur []Llr) int {
	if len(prev) != len(cur) {
		return len(cur)
	}
	n := 0
	for i := range cur {
		if prev[i].Hard() != cur[i].Hard() {
			n++
		}
	}
	return n
}

// LogStats appends one timestamped row of stats to a CSV file at path,
// writing a header row first if the file is new or empty. It follows the
// same open-append-flush-close shape as this teacher's SnmpLogger, without
// the background ticker: callers decide when a row is worth writing (e.g.
// once per decoded block) rather than on a fixed interval.
func LogStats(path string, stats *DecoderStats) error {
	dir, file := filepath.Split(path)
	f, err := os.OpenFile(filepath.Join(dir, file), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write(append([]string{"Unix"}, stats.Header()...)); err != nil {
			return errors.WithStack(err)
		}
	}
	if err := w.Write(append([]string{fmt.Sprint(time.Now().Unix())}, stats.ToSlice()...)); err != nil {
		return errors.WithStack(err)
	}
	w.Flush()
	return errors.WithStack(w.Error())
}
