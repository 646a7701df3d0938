/*
 * ldpc - Decoder: decode_mp, soft-decision modified min-sum message passing
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

import "math"

// mpClampMagnitude bounds every check-to-variable message so a degree-1
// check (a lone diagonal term with no second-minimum) cannot inject an
// infinite or NaN-producing magnitude into later arithmetic.
const mpClampMagnitude = 1e30

// mpWorkingLen returns the number of float32s the message-passing decoder's
// work buffer must hold: the check-to-variable and variable-to-check
// message arrays (one entry per Tanner graph edge, ci-ordered), the
// per-variable accumulated LLR, and a vi-to-ci edge index translation
// table stored as exact float32 integers (edge counts never approach the
// 2^24 float32 integer-precision limit for any catalog code).
func mpWorkingLen(c Code) int {
	edges := c.ParitycheckSum()
	return 3*edges + c.internalLen()
}

func mpSign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

func mpAbs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func channelLLR(llrs []float32, v, n int) float32 {
	if v >= n {
		return 0
	}
	x := llrs[v]
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return 0
	}
	return x
}

// DecodeMP runs soft-decision modified min-sum message passing. llrs holds
// n soft values, positive meaning "more likely 0"; the p punctured
// variables (TM only) receive a virtual LLR of 0. out receives the
// recovered internal word (OutputLen bytes). work must have length
// DecodeMPWorkingLen(c). maxIter <= 0 uses DefaultMaxIter.
func DecodeMP(c Code, ci, cs, vi, vs []int, llrs []float32, out []byte, work []float32, maxIter int) (ok bool, iters int, err error) {
	if !c.valid() {
		return false, 0, ErrInvalidCode
	}
	if err := checkLen("cs", len(cs), c.SparseParitycheckCsLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("ci", len(ci), c.SparseParitycheckCiLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("vs", len(vs), c.SparseParitycheckVsLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("vi", len(vi), c.SparseParitycheckViLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("llrs", len(llrs), c.N()); err != nil {
		return false, 0, err
	}
	if err := checkLen("out", len(out), c.OutputLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("work", len(work), c.DecodeMPWorkingLen()); err != nil {
		return false, 0, err
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	internalLen := c.internalLen()
	checkRows := c.checkCount()
	edges := c.ParitycheckSum()
	n := c.N()

	uCV := work[0*edges : 1*edges]
	vVC := work[1*edges : 2*edges]
	total := work[2*edges : 2*edges+internalLen]
	edgeMap := work[2*edges+internalLen : 3*edges+internalLen]

	// Build the vi-order -> ci-order edge translation. A single check-major
	// walk of ci visits each variable's edges in ascending check-row order,
	// which is exactly vi's order (vi is sorted ascending within each
	// column), so a per-variable running count taken during that walk is
	// the position within vs[v]..vs[v+1] to place each edge at. total[] is
	// reused as that running count here; the loop below overwrites it with
	// real LLR sums before it is read as anything else.
	for v := range total {
		total[v] = 0
	}
	for row := 0; row < checkRows; row++ {
		for e := cs[row]; e < cs[row+1]; e++ {
			v := ci[e]
			pos := vs[v] + int(total[v])
			edgeMap[pos] = float32(e)
			total[v]++
		}
	}

	for e := 0; e < edges; e++ {
		vVC[e] = channelLLR(llrs, ci[e], n)
	}

	for iters = 0; iters < maxIter; iters++ {
		// 1. check update (Savin's modified min-sum).
		for row := 0; row < checkRows; row++ {
			start, end := cs[row], cs[row+1]
			sign := float32(1)
			m1 := float32(mpClampMagnitude)
			m2 := float32(mpClampMagnitude)
			for e := start; e < end; e++ {
				mag := mpAbs(vVC[e])
				sign *= mpSign(vVC[e])
				switch {
				case mag < m1:
					m2 = m1
					m1 = mag
				case mag < m2:
					m2 = mag
				}
			}
			for e := start; e < end; e++ {
				mag := mpAbs(vVC[e])
				outMag := m1
				if mag == m1 {
					outMag = m2
				}
				if outMag > mpClampMagnitude {
					outMag = mpClampMagnitude
				}
				uCV[e] = sign * mpSign(vVC[e]) * outMag
			}
		}

		// 2. variable update.
		for v := 0; v < n; v++ {
			total[v] = channelLLR(llrs, v, n)
		}
		for v := n; v < internalLen; v++ {
			total[v] = 0
		}
		for e := 0; e < edges; e++ {
			total[ci[e]] += uCV[e]
		}
		for v := 0; v < internalLen; v++ {
			for pos := vs[v]; pos < vs[v+1]; pos++ {
				e := int(edgeMap[pos])
				vVC[e] = total[v] - uCV[e]
			}
		}

		// 3. parity check against the current hard decisions.
		allSatisfied := true
		for row := 0; row < checkRows; row++ {
			parity := 0
			for e := cs[row]; e < cs[row+1]; e++ {
				if total[ci[e]] < 0 {
					parity ^= 1
				}
			}
			if parity != 0 {
				allSatisfied = false
				break
			}
		}
		if allSatisfied {
			ok = true
			break
		}
	}

	packHardDecisions(total, internalLen, out)
	return ok, iters, nil
}

func packHardDecisions(total []float32, nbits int, out []byte) {
	nbytes := byteLen(nbits)
	for j := 0; j < nbytes; j++ {
		var b byte
		for i := 0; i < 8; i++ {
			idx := j*8 + i
			if idx >= nbits {
				break
			}
			if total[idx] < 0 {
				b |= 1 << (7 - uint(i))
			}
		}
		out[j] = b
	}
}
