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

// Command turbodecode is a demo front end over the turbofec library: it
// decodes one block given on the command line, either as a single BCJR pass
// or as a turbo decode over a QPP interleaver, and prints the resulting LLRs
// and hard decisions.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	turbofec "github.com/xtaci/turbofec"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "turbodecode"
	myApp.Usage = "decode a fixed-point LLR block with the turbofec library"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "systematic",
			Usage: "comma-separated systematic LLRs, e.g. 4,4,-4,4",
		},
		cli.StringFlag{
			Name:  "parity",
			Usage: "comma-separated parity LLRs (single-decoder mode: P1; turbo mode: P1, use -p2 for P2)",
		},
		cli.StringFlag{
			Name:  "p2",
			Usage: "comma-separated second-decoder parity LLRs, enables turbo mode",
		},
		cli.StringFlag{
			Name:  "t1",
			Usage: "comma-separated first-decoder tail LLRs",
		},
		cli.StringFlag{
			Name:  "t2",
			Usage: "comma-separated second-decoder tail LLRs",
		},
		cli.StringFlag{
			Name:  "trellis",
			Value: "umts",
			Usage: "umts or lte",
		},
		cli.BoolFlag{
			Name:  "terminated",
			Usage: "single-decoder mode: whether the trellis is tail-terminated",
		},
		cli.IntFlag{
			Name:  "f1",
			Value: 1,
			Usage: "turbo mode: QPP f1 coefficient",
		},
		cli.IntFlag{
			Name:  "f2",
			Value: 4,
			Usage: "turbo mode: QPP f2 coefficient",
		},
		cli.IntFlag{
			Name:  "iterations",
			Value: 1,
			Usage: "turbo mode: number of outer iterations to run",
		},
	}

	myApp.Action = func(c *cli.Context) error {
		systematic, err := parseLlrs(c.String("systematic"))
		if err != nil {
			return errors.WithMessage(err, "systematic")
		}
		if len(systematic) == 0 {
			return errors.New("-systematic is required")
		}

		trellis, err := newTrellis(c.String("trellis"))
		if err != nil {
			return err
		}

		if c.String("p2") == "" {
			return runSingle(trellis, c, systematic)
		}
		return runTurbo(trellis, c, systematic)
	}

	if err := myApp.Run(os.Args); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func newTrellis(name string) (turbofec.BcjrDecoder, error) {
	switch strings.ToLower(name) {
	case "umts":
		return turbofec.UmtsTrellis{}, nil
	case "lte":
		return turbofec.LteTrellis{}, nil
	default:
		return nil, errors.Errorf("unknown -trellis %q, want umts or lte", name)
	}
}

func runSingle(trellis turbofec.BcjrDecoder, c *cli.Context, systematic []turbofec.Llr) error {
	parity, err := parseLlrs(c.String("parity"))
	if err != nil {
		return errors.WithMessage(err, "parity")
	}
	apriori := make([]turbofec.Llr, len(systematic))

	log.Println("trellis:", c.String("trellis"))
	log.Println("terminated:", c.Bool("terminated"))
	log.Println("block length:", len(systematic))

	out := trellis.Decode(systematic, parity, apriori, c.Bool("terminated"))
	printLlrs(out)
	turbofec.DefaultStats.AddBlock()
	return nil
}

func runTurbo(trellis turbofec.BcjrDecoder, c *cli.Context, systematic []turbofec.Llr) error {
	p1, err := parseLlrs(c.String("parity"))
	if err != nil {
		return errors.WithMessage(err, "parity")
	}
	p2, err := parseLlrs(c.String("p2"))
	if err != nil {
		return errors.WithMessage(err, "p2")
	}
	t1, err := parseLlrs(c.String("t1"))
	if err != nil {
		return errors.WithMessage(err, "t1")
	}
	t2, err := parseLlrs(c.String("t2"))
	if err != nil {
		return errors.WithMessage(err, "t2")
	}

	interleaver := turbofec.NewQpp(len(systematic), c.Int("f1"), c.Int("f2"))
	log.Println("trellis:", c.String("trellis"))
	log.Println("block length:", len(systematic))
	log.Println("QPP:", interleaver)

	turbo := turbofec.NewTurboDecoder(trellis, trellis)
	it := turbo.Decode(systematic, t1, p1, t2, p2, interleaver)

	iterations := c.Int("iterations")
	if iterations < 1 {
		color.Red("iterations must be >= 1, got %d", iterations)
		iterations = 1
	}

	var prev []turbofec.Llr
	for i := 0; i < iterations; i++ {
		it.Advance()
		cur := it.Get()
		flips := 0
		if prev != nil {
			flips = turbofec.BitFlipCount(prev, cur)
		}
		turbofec.DefaultStats.AddIteration(flips)
		log.Printf("iteration %d: %d bit flips since previous iteration", i+1, flips)
		prev = cur
	}

	printLlrs(prev)
	turbofec.DefaultStats.AddBlock()
	return nil
}

func parseLlrs(s string) ([]turbofec.Llr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]turbofec.Llr, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if v < -128 || v > 127 {
			return nil, errors.Errorf("value %d out of signed-8-bit LLR range", v)
		}
		out[i] = turbofec.Llr(v)
	}
	return out, nil
}

func printLlrs(llrs []turbofec.Llr) {
	hard := make([]byte, len(llrs))
	for i, l := range llrs {
		if l.Hard() {
			hard[i] = '1'
		} else {
			hard[i] = '0'
		}
	}
	color.Green("L_app: %v", llrs)
	fmt.Println("hard decisions:", string(hard))
}
