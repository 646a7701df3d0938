/*
 * ldpc - Expansion tests: generator, sparse adjacency, transpose consistency
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

import "testing"

// TestSparseTransposeMatches rebuilds (vi,vs) independently from (ci,cs) for
// every code and checks it matches what InitSparseParitycheck produced.
func TestSparseTransposeMatches(t *testing.T) {
	for _, c := range allCodes() {
		g := buildGraph(t, c)

		wantVs := make([]int, len(g.vs))
		for row := 0; row < c.checkCount(); row++ {
			for _, v := range g.ci[g.cs[row]:g.cs[row+1]] {
				wantVs[v+1]++
			}
		}
		for v := 0; v < c.internalLen(); v++ {
			wantVs[v+1] += wantVs[v]
		}
		for v := range wantVs {
			if g.vs[v] != wantVs[v] {
				t.Fatalf("%s: vs[%d] = %d, want %d", c, v, g.vs[v], wantVs[v])
			}
		}

		cursor := append([]int(nil), wantVs[:c.internalLen()]...)
		wantVi := make([]int, len(g.vi))
		for row := 0; row < c.checkCount(); row++ {
			for _, v := range g.ci[g.cs[row]:g.cs[row+1]] {
				wantVi[cursor[v]] = row
				cursor[v]++
			}
		}
		for i := range wantVi {
			if g.vi[i] != wantVi[i] {
				t.Fatalf("%s: vi[%d] = %d, want %d", c, i, g.vi[i], wantVi[i])
			}
		}
	}
}

// TestGeneratorRowMatchesSingleBitEncode checks that encode_fast of a
// dataword with exactly one bit set reproduces the corresponding row of the
// expanded systematic generator.
func TestGeneratorRowMatchesSingleBitEncode(t *testing.T) {
	for _, c := range allCodes() {
		g := make([]uint32, c.GeneratorLen())
		if err := InitGenerator(c, g); err != nil {
			t.Fatalf("InitGenerator(%s): %v", c, err)
		}
		nk := c.N() - c.K()
		wordsPerRow := wordsFor(nk)

		for _, row := range []int{0, 1, c.K() / 2, c.K() - 1} {
			data := make([]byte, c.DataLen())
			flipBit(data, row)

			codeword := make([]byte, c.TransmittedLen())
			if err := EncodeFast(c, data, g, codeword); err != nil {
				t.Fatalf("EncodeFast(%s): %v", c, err)
			}

			parityBytes := make([]byte, byteLen(nk))
			wordsToBytes(g[row*wordsPerRow:(row+1)*wordsPerRow], nk, parityBytes)

			got := codeword[c.DataLen():c.TransmittedLen()]
			for i := range got {
				if got[i] != parityBytes[i] {
					t.Fatalf("%s: row %d parity byte %d = %#x, want %#x", c, row, i, got[i], parityBytes[i])
				}
			}
		}
	}
}

// TestExpandBlockDescriptorsCancel exercises the generic shifted/summed
// block walk that the production catalog tables never need: two shifted
// identities landing on the same cell must cancel mod 2.
func TestExpandBlockDescriptorsCancel(t *testing.T) {
	const m = 4
	descs := []blockDescriptor{
		{checkBlock: 0, colBlock: 0, terms: []blockTerm{
			{kind: blockIdentity},
			{kind: blockShifted, shift: 0}, // same cell as the identity term: cancels
		}},
		{checkBlock: 0, colBlock: 1, terms: []blockTerm{
			{kind: blockShifted, shift: 1},
		}},
		{checkBlock: 1, colBlock: 1, terms: []blockTerm{
			{kind: blockZero},
		}},
	}
	ci := make([]int, 2*m)
	cs := make([]int, 2*m+1)
	if err := expandBlockDescriptors(descs, m, 2, 2, ci, cs); err != nil {
		t.Fatalf("expandBlockDescriptors: %v", err)
	}
	// Block (0,0)'s two terms cancel, so check-block 0's only edges come
	// from the shifted term at colBlock 1.
	for i := 0; i < m; i++ {
		row := 0*m + i
		want := []int{1*m + (i+1)%m}
		got := ci[cs[row]:cs[row+1]]
		if len(got) != len(want) || got[0] != want[0] {
			t.Fatalf("row %d: ci = %v, want %v", row, got, want)
		}
	}
	// Check-block 1 is entirely the zero block: no edges at all.
	for i := 0; i < m; i++ {
		row := 1*m + i
		if cs[row+1] != cs[row] {
			t.Fatalf("row %d: expected zero degree, got %d", row, cs[row+1]-cs[row])
		}
	}
}
