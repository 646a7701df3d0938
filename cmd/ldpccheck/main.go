/*
 * ldpccheck - round-trip demonstration harness for the ldpc package
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// ldpccheck generates a random dataword, encodes it through a chosen CCSDS LDPC code,
// optionally corrupts a number of bits, and decodes it back, reporting
// whether the decoder converged and how many iterations it used. It is a
// demonstration and debugging harness, not part of the library.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/stratosat/ldpc"
	"github.com/stratosat/ldpc/internal/hexfmt"
	"github.com/stratosat/ldpc/internal/trace"
)

func main() {
	codeName := flag.String("code", "TC128", "code name, e.g. TC128, TM2048")
	flipBits := flag.Int("flip", 0, "number of codeword bits to flip before decoding")
	useMP := flag.Bool("mp", false, "use decode_mp instead of decode_bf")
	maxIter := flag.Int("iter", 0, "iteration cap (0 uses the library default)")
	verbose := flag.Bool("v", false, "trace per-stage buffer sizes")
	flag.Parse()

	log := trace.Logger{W: os.Stderr, Mask: trace.LevelResult}
	if *verbose {
		log.Mask |= trace.LevelIter | trace.LevelEdge
	}

	code, err := ldpc.CodeByName(*codeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ldpccheck: %s\n", err)
		os.Exit(1)
	}

	data := make([]byte, code.DataLen())
	if _, err := rand.Read(data); err != nil {
		fmt.Fprintf(os.Stderr, "ldpccheck: %s\n", err)
		os.Exit(1)
	}

	ci := make([]int, code.SparseParitycheckCiLen())
	cs := make([]int, code.SparseParitycheckCsLen())
	vi := make([]int, code.SparseParitycheckViLen())
	vs := make([]int, code.SparseParitycheckVsLen())
	if err := ldpc.InitSparseParitycheck(code, ci, cs, vi, vs); err != nil {
		fmt.Fprintf(os.Stderr, "ldpccheck: %s\n", err)
		os.Exit(1)
	}
	log.Tracef(trace.LevelEdge, "%s: %d checks, %d edges", code, code.SparseParitycheckCsLen()-1, code.ParitycheckSum())

	codeword := make([]byte, code.TransmittedLen())
	if err := ldpc.EncodeSmall(code, data, codeword); err != nil {
		fmt.Fprintf(os.Stderr, "ldpccheck: %s\n", err)
		os.Exit(1)
	}

	flipCodewordBits(codeword, *flipBits)
	log.Tracef(trace.LevelIter, "received codeword: %s", hexfmt.Bytes(codeword))

	out := make([]byte, code.OutputLen())
	var ok bool
	var iters int
	if *useMP {
		llrs := llrsFromHardBits(codeword, code.N())
		work := make([]float32, code.DecodeMPWorkingLen())
		ok, iters, err = ldpc.DecodeMP(code, ci, cs, vi, vs, llrs, out, work, *maxIter)
	} else {
		var vip, vsp []int
		if code.PuncturedBits() > 0 {
			vip, vsp = vi, vs
		}
		work := make([]int, code.DecodeBFWorkingLen())
		ok, iters, err = ldpc.DecodeBF(code, ci, cs, vip, vsp, codeword, out, work, *maxIter)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ldpccheck: %s\n", err)
		os.Exit(1)
	}

	match := string(out[:code.DataLen()]) == string(data)
	log.Tracef(trace.LevelResult, "converged=%v iters=%d dataword_match=%v", ok, iters, match)
	fmt.Printf("%s: converged=%v iters=%d dataword_match=%v\n", code, ok, iters, match)
	if !ok || !match {
		os.Exit(1)
	}
}

func flipCodewordBits(codeword []byte, n int) {
	for i := 0; i < n; i++ {
		bit := rand.Intn(len(codeword) * 8)
		codeword[bit/8] ^= 1 << (7 - uint(bit%8))
	}
}

// llrsFromHardBits turns a received hard-decision codeword into the ideal
// LLR vector decode_mp expects: +4 for a 0 bit, -4 for a 1 bit, matching
// this module's "positive means more likely 0" convention.
func llrsFromHardBits(codeword []byte, n int) []float32 {
	llrs := make([]float32, n)
	for i := range llrs {
		b := codeword[i/8] & (1 << (7 - uint(i%8)))
		if b != 0 {
			llrs[i] = -4
		} else {
			llrs[i] = 4
		}
	}
	return llrs
}
