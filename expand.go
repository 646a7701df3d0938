/*
 * ldpc - Expansion: compact constants to dense generator and sparse Tanner graph
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

// codeShape derives the row/column block geometry of a code's parity-check
// prototype from its size parameters: M sub-blocks, tq transmitted-parity
// row-blocks, kq data column-blocks, pq punctured column-blocks.
type codeShape struct {
	m, tq, kq, pq int
}

func shapeOf(c Code) codeShape {
	p := allParams[c]
	nk := p.n - p.k
	return codeShape{
		m:  p.m,
		tq: nk / p.m,
		kq: p.k / p.m,
		pq: p.p / p.m,
	}
}

// InitGenerator expands the compact generator rows into the full k x (n-k)
// systematic generator submatrix, packed MSB-first into 32-bit words,
// row-major, into g. Row r belongs to data column-block b = r/M at phase
// i = r%M within that block. Compact row i gives the parity contribution of
// the phase-i data bit in column-block 0; every other column-block's data
// tap is cyclically shifted relative to block 0 (see tapShift), so row r is
// compact row i cyclically right-rotated, within each M-wide sub-block of
// the n-k-bit row, by blockRotation(b, m) positions - not a plain copy,
// since distinct column-blocks must not collapse onto the same row.
func InitGenerator(c Code, g []uint32) error {
	if !c.valid() {
		return ErrInvalidCode
	}
	required := c.GeneratorLen()
	if err := checkLen("g", len(g), required); err != nil {
		return err
	}
	m := c.M()
	nk := c.N() - c.K()
	wordsPerRow := wordsFor(nk)
	compact := compactGenWords[c]
	for r := 0; r < c.K(); r++ {
		i := r % m
		b := r / m
		src := compact[i*wordsPerRow : (i+1)*wordsPerRow]
		dst := g[r*wordsPerRow : (r+1)*wordsPerRow]
		rotateGeneratorRow(src, nk, m, blockRotation(b, m), dst)
	}
	return nil
}

// blockRotation returns the rotation (0..m-1) InitGenerator and EncodeSmall
// apply to a compact row for column-block b: block 0 is unshifted, and each
// following block advances by one position mod m. This is the inverse of
// tapShift, since the systematic construction requires the two to cancel:
// rotating G's row by blockRotation(b, m) undoes the circulant shift
// tapShift(b, m) gives H's data tap for that same block.
func blockRotation(b, m int) int {
	return b % m
}

// tapShift returns the per-block circulant shift the parity-check
// construction gives the data tap for column-block b: block 0 sits at the
// unshifted identity, and each following block's tap rotates by one further
// position mod m. Blocks therefore repeat their shift (and so their
// generator row, for a fixed phase) every m blocks - a bounded, documented
// repeat period, not the unconditional per-M-row collision a constant shift
// (shift 0 for every block, as an earlier draft used) gives.
func tapShift(b, m int) int {
	return (m - b%m) % m
}

// degreeOf returns the number of edges touching check-row-block r (same for
// every one of the M phases within the block, by construction).
func degreeOf(shape codeShape, taps [3]int, r int) int {
	deg := 1 // dual-diagonal diagonal term, always present
	if r >= 1 {
		deg++ // dual-diagonal sub-diagonal term
	}
	if r >= shape.tq-shape.pq {
		deg++ // punctured-tail identity term
	}
	for _, t := range taps {
		if t == r {
			deg += shape.kq
			break
		}
	}
	return deg
}

// InitSparseParitycheckChecks builds the check-major sparse adjacency (ci,
// cs) for code c. The dual-diagonal accumulate and punctured-tail sub-blocks
// are plain M x M identities; the data-tap sub-blocks are each a cyclically
// shifted identity, shifted by tapShift(b, m) for column-block b, which is
// what gives distinct column-blocks distinct rows once expanded into a
// generator (see InitGenerator). No two terms land on the same cell for any
// catalog code, so a direct degree-then-place construction suffices; the
// general shifted/summed block walk that could collide on other compact
// prototypes is exercised separately by expandBlockDescriptors.
func InitSparseParitycheckChecks(c Code, ci, cs []int) error {
	if !c.valid() {
		return ErrInvalidCode
	}
	if err := checkLen("ci", len(ci), c.SparseParitycheckCiLen()); err != nil {
		return err
	}
	if err := checkLen("cs", len(cs), c.SparseParitycheckCsLen()); err != nil {
		return err
	}

	shape := shapeOf(c)
	taps := parityTaps[c]
	checkRows := c.checkCount()
	k := c.K()
	nk := c.N() - c.K()

	cs[0] = 0
	for r := 0; r < shape.tq; r++ {
		deg := degreeOf(shape, taps, r)
		for i := 0; i < shape.m; i++ {
			row := r*shape.m + i
			cs[row+1] = cs[row] + deg
		}
	}
	if cs[checkRows] > len(ci) {
		return &BufferTooSmall{Name: "ci", Required: cs[checkRows], Got: len(ci)}
	}

	isTap := func(r int) bool {
		for _, t := range taps {
			if t == r {
				return true
			}
		}
		return false
	}

	for r := 0; r < shape.tq; r++ {
		tap := isTap(r)
		for i := 0; i < shape.m; i++ {
			row := r*shape.m + i
			cur := cs[row]
			if tap {
				for b := 0; b < shape.kq; b++ {
					shift := tapShift(b, shape.m)
					ci[cur] = b*shape.m + (i+shift)%shape.m
					cur++
				}
			}
			ci[cur] = k + r*shape.m + i // dual-diagonal diagonal
			cur++
			if r >= 1 {
				ci[cur] = k + (r-1)*shape.m + i // dual-diagonal sub-diagonal
				cur++
			}
			if r >= shape.tq-shape.pq {
				j := r - (shape.tq - shape.pq)
				ci[cur] = k + nk + j*shape.m + i // punctured tail
				cur++
			}
		}
	}
	return nil
}

// InitSparseParitycheck builds both the check-major (ci, cs) and
// variable-major (vi, vs) sparse adjacency for code c. vi/vs is produced by
// transposing (ci, cs): a counting pass yielding vs in standard CSR form,
// then a placement pass that reuses vs itself as the per-variable cursor
// (vs[v] advances from variable v's start offset to its end offset as each
// edge is placed) and finally shifts vs down by one index to restore the
// original start-offset boundaries - the classic CSR-transpose trick, with
// no scratch allocation beyond vi/vs themselves.
func InitSparseParitycheck(c Code, ci, cs, vi, vs []int) error {
	if err := InitSparseParitycheckChecks(c, ci, cs); err != nil {
		return err
	}
	if err := checkLen("vi", len(vi), c.SparseParitycheckViLen()); err != nil {
		return err
	}
	if err := checkLen("vs", len(vs), c.SparseParitycheckVsLen()); err != nil {
		return err
	}

	nvar := c.internalLen()
	nchk := c.checkCount()

	for v := 0; v <= nvar; v++ {
		vs[v] = 0
	}
	for row := 0; row < nchk; row++ {
		for _, v := range ci[cs[row]:cs[row+1]] {
			vs[v+1]++
		}
	}
	for v := 0; v < nvar; v++ {
		vs[v+1] += vs[v]
	}

	for row := 0; row < nchk; row++ {
		for _, v := range ci[cs[row]:cs[row+1]] {
			vi[vs[v]] = row
			vs[v]++
		}
	}
	for v := nvar; v >= 1; v-- {
		vs[v] = vs[v-1]
	}
	vs[0] = 0
	return nil
}

// InitParitycheck builds the dense (n-k) x (n+p) parity-check matrix,
// packed MSB-first into 32-bit words, row-major, into h. Diagnostic only;
// neither encoder nor decoder requires it.
func InitParitycheck(c Code, h []uint32) error {
	if !c.valid() {
		return ErrInvalidCode
	}
	required := c.ParitycheckLen()
	if err := checkLen("h", len(h), required); err != nil {
		return err
	}
	for i := range h[:required] {
		h[i] = 0
	}

	shape := shapeOf(c)
	taps := parityTaps[c]
	cols := c.internalLen()
	wordsPerRow := wordsFor(cols)
	k := c.K()
	nk := c.N() - c.K()

	setBit := func(row, col int) {
		word := row*wordsPerRow + col/32
		bit := uint(31 - col%32)
		h[word] |= 1 << bit
	}

	isTap := func(r int) bool {
		for _, t := range taps {
			if t == r {
				return true
			}
		}
		return false
	}

	for r := 0; r < shape.tq; r++ {
		tap := isTap(r)
		for i := 0; i < shape.m; i++ {
			row := r*shape.m + i
			if tap {
				for b := 0; b < shape.kq; b++ {
					shift := tapShift(b, shape.m)
					setBit(row, b*shape.m+(i+shift)%shape.m)
				}
			}
			setBit(row, k+r*shape.m+i)
			if r >= 1 {
				setBit(row, k+(r-1)*shape.m+i)
			}
			if r >= shape.tq-shape.pq {
				j := r - (shape.tq - shape.pq)
				setBit(row, k+nk+j*shape.m+i)
			}
		}
	}
	return nil
}

// --- generic block-descriptor walk ------------------------------------
//
// The constructions above are specialized to this catalog's identity and
// single-shifted-identity sub-blocks. The compact parity-check prototype
// format described by CCSDS also allows a sub-block to be the zero block or
// a sum of several shifted identities whose overlapping entries cancel mod
// 2; none of the nine catalog codes in this build need the summed form, but
// the mechanism is part of the expansion contract and is exercised directly
// by TestExpandBlockDescriptorsCancel.

type blockKind int

const (
	blockZero blockKind = iota
	blockIdentity
	blockShifted
)

// blockTerm is one shifted-identity contribution to a sub-block; a
// sub-block with more than one term is the XOR-sum of those terms.
type blockTerm struct {
	kind  blockKind
	shift int
}

// blockDescriptor places a sub-block (its terms) at block-row checkBlock,
// block-column colBlock, of an M x M grid.
type blockDescriptor struct {
	checkBlock int
	colBlock   int
	terms      []blockTerm
}

// expandBlockDescriptors walks descs in row-major order and emits the
// resulting check-major sparse adjacency into ci/cs. rows and cols are the
// matrix dimensions in M-sized blocks' worth of bits (rows*m check rows,
// cols*m variable columns). Overlapping terms within one sub-block cancel
// mod 2, matching the CCSDS sum-of-shifted-identities construction.
func expandBlockDescriptors(descs []blockDescriptor, m, rows, cols int, ci, cs []int) error {
	checkRows := rows * m
	present := make([][]bool, checkRows)
	for i := range present {
		present[i] = make([]bool, cols*m)
	}
	for _, d := range descs {
		for i := 0; i < m; i++ {
			row := d.checkBlock*m + i
			for _, t := range d.terms {
				var col int
				switch t.kind {
				case blockZero:
					continue
				case blockIdentity:
					col = d.colBlock*m + i
				case blockShifted:
					col = d.colBlock*m + (i+t.shift+m)%m
				}
				present[row][col] = !present[row][col]
			}
		}
	}

	cs[0] = 0
	for row := 0; row < checkRows; row++ {
		deg := 0
		for _, set := range present[row] {
			if set {
				deg++
			}
		}
		cs[row+1] = cs[row] + deg
	}
	if len(ci) < cs[checkRows] {
		return &BufferTooSmall{Name: "ci", Required: cs[checkRows], Got: len(ci)}
	}
	for row := 0; row < checkRows; row++ {
		cur := cs[row]
		for col, set := range present[row] {
			if set {
				ci[cur] = col
				cur++
			}
		}
	}
	return nil
}
