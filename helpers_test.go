/*
 * ldpc - Shared test helpers
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

package ldpc

import (
	"math/rand"
	"testing"
)

func allCodes() []Code {
	codes := make([]Code, 0, codeCount)
	for c := Code(0); c < codeCount; c++ {
		codes = append(codes, c)
	}
	return codes
}

type sparseGraph struct {
	ci, cs, vi, vs []int
}

func buildGraph(t *testing.T, c Code) sparseGraph {
	t.Helper()
	g := sparseGraph{
		ci: make([]int, c.SparseParitycheckCiLen()),
		cs: make([]int, c.SparseParitycheckCsLen()),
		vi: make([]int, c.SparseParitycheckViLen()),
		vs: make([]int, c.SparseParitycheckVsLen()),
	}
	if err := InitSparseParitycheck(c, g.ci, g.cs, g.vi, g.vs); err != nil {
		t.Fatalf("InitSparseParitycheck(%s): %v", c, err)
	}
	return g
}

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

func getBit(data []byte, idx int) int {
	if bitSet(data, idx) {
		return 1
	}
	return 0
}

func flipBit(data []byte, idx int) {
	data[idx/8] ^= 1 << (7 - uint(idx%8))
}

// checkAllParities reports every check row of (ci,cs) that fails to
// evaluate to zero against word (an internalLen-bit, MSB-first buffer).
func checkAllParities(t *testing.T, c Code, g sparseGraph, word []byte) {
	t.Helper()
	checkRows := c.checkCount()
	for row := 0; row < checkRows; row++ {
		parity := 0
		for _, v := range g.ci[g.cs[row]:g.cs[row+1]] {
			parity ^= getBit(word, v)
		}
		if parity != 0 {
			t.Fatalf("%s: check row %d unsatisfied", c, row)
		}
	}
}

// decodeCleanBF runs decode_bf on an uncorrupted codeword and returns the
// recovered internal word, failing the test if it does not converge.
func decodeCleanBF(t *testing.T, c Code, g sparseGraph, codeword []byte) []byte {
	t.Helper()
	out := make([]byte, c.OutputLen())
	work := make([]int, c.DecodeBFWorkingLen())
	var vi, vs []int
	if c.PuncturedBits() > 0 {
		vi, vs = g.vi, g.vs
	}
	ok, iters, err := DecodeBF(c, g.ci, g.cs, vi, vs, codeword, out, work, 0)
	if err != nil {
		t.Fatalf("DecodeBF(%s): %v", c, err)
	}
	if !ok {
		t.Fatalf("DecodeBF(%s): did not converge on a clean codeword after %d iterations", c, iters)
	}
	return out
}
