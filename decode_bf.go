/*
 * ldpc - Decoder: decode_bf, hard-decision bit flipping with erasure prepass
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

// DefaultMaxIter is used by both decoders when the caller passes a
// non-positive iteration cap.
const DefaultMaxIter = 50

// bfWorkingLen returns the number of ints the bit-flipping decoder's work
// buffer must hold: current hard bits, erasure markers, and unsatisfied-
// neighbor counts over the full internal (n+p)-bit word, one unsatisfied
// flag per check, and one fixed variable degree per internal bit. Degree is
// part of the working area rather than recomputed each iteration so the
// main loop never allocates.
func bfWorkingLen(c Code) int {
	return 4*c.internalLen() + c.checkCount()
}

// DecodeBF runs hard-decision bit-flipping decoding with an erasure prepass
// for punctured codes. vi and vs may be nil when c.PuncturedBits() == 0; they
// are required otherwise. rx holds the received n-bit word (TransmittedLen
// bytes). out receives the recovered internal word (OutputLen bytes): the
// first K()/8 bytes are the dataword, the remainder is the recovered
// parity. work must have length DecodeBFWorkingLen(c). maxIter <= 0 uses
// DefaultMaxIter.
func DecodeBF(c Code, ci, cs, vi, vs []int, rx []byte, out []byte, work []int, maxIter int) (ok bool, iters int, err error) {
	if !c.valid() {
		return false, 0, ErrInvalidCode
	}
	if err := checkLen("cs", len(cs), c.SparseParitycheckCsLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("ci", len(ci), c.SparseParitycheckCiLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("rx", len(rx), c.TransmittedLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("out", len(out), c.OutputLen()); err != nil {
		return false, 0, err
	}
	if err := checkLen("work", len(work), c.DecodeBFWorkingLen()); err != nil {
		return false, 0, err
	}
	punctured := c.PuncturedBits() > 0
	if punctured {
		if err := checkLen("vi", len(vi), c.SparseParitycheckViLen()); err != nil {
			return false, 0, err
		}
		if err := checkLen("vs", len(vs), c.SparseParitycheckVsLen()); err != nil {
			return false, 0, err
		}
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	internalLen := c.internalLen()
	checkRows := c.checkCount()
	n := c.N()

	hard := work[0*internalLen : 1*internalLen]
	erased := work[1*internalLen : 2*internalLen]
	flip := work[2*internalLen : 3*internalLen]
	degree := work[3*internalLen : 4*internalLen]
	unsat := work[4*internalLen : 4*internalLen+checkRows]

	for v := range degree {
		degree[v] = 0
	}
	if punctured {
		for v := 0; v < internalLen; v++ {
			degree[v] = vs[v+1] - vs[v]
		}
	} else {
		for row := 0; row < checkRows; row++ {
			for _, v := range ci[cs[row]:cs[row+1]] {
				degree[v]++
			}
		}
	}

	for v := 0; v < n; v++ {
		if bitSet(rx, v) {
			hard[v] = 1
		} else {
			hard[v] = 0
		}
		erased[v] = 0
	}
	for v := n; v < internalLen; v++ {
		hard[v] = 0
		erased[v] = 1
	}

	if punctured {
		erasurePrepass(ci, cs, hard, erased, checkRows)
	}

	for iters = 0; iters < maxIter; iters++ {
		allSatisfied := true
		for row := 0; row < checkRows; row++ {
			parity := 0
			for _, v := range ci[cs[row]:cs[row+1]] {
				parity ^= hard[v]
			}
			if parity != 0 {
				unsat[row] = 1
				allSatisfied = false
			} else {
				unsat[row] = 0
			}
		}
		if allSatisfied {
			ok = true
			break
		}

		for v := range flip {
			flip[v] = 0
		}
		if punctured {
			for v := 0; v < internalLen; v++ {
				cnt := 0
				for _, row := range vi[vs[v]:vs[v+1]] {
					cnt += unsat[row]
				}
				flip[v] = cnt
			}
		} else {
			for row := 0; row < checkRows; row++ {
				if unsat[row] == 0 {
					continue
				}
				for _, v := range ci[cs[row]:cs[row+1]] {
					flip[v]++
				}
			}
		}

		maxCount := 0
		for v := 0; v < internalLen; v++ {
			if flip[v] > maxCount {
				maxCount = flip[v]
			}
		}
		if maxCount == 0 {
			ok = false
			break
		}

		flippedAny := false
		for v := 0; v < internalLen; v++ {
			if degree[v] == 0 {
				continue
			}
			threshold := degree[v]/2 + 1
			if flip[v] == maxCount && flip[v] >= threshold {
				hard[v] ^= 1
				erased[v] = 0
				flippedAny = true
			}
		}
		if !flippedAny {
			ok = false
			break
		}
	}
	if iters == maxIter {
		// ran the cap without a break; re-check final state once more
		allSatisfied := true
		for row := 0; row < checkRows; row++ {
			parity := 0
			for _, v := range ci[cs[row]:cs[row+1]] {
				parity ^= hard[v]
			}
			if parity != 0 {
				allSatisfied = false
				break
			}
		}
		ok = allSatisfied
	}

	packHardBits(hard, internalLen, out)
	return ok, iters, nil
}

// erasurePrepass resolves punctured (erased) variables whose owning check
// has exactly one unresolved neighbor, iterating until no check can make
// further progress. Unresolved erasures are left at 0 (the "don't flip
// unless forced" convention for persistent erasures).
func erasurePrepass(ci, cs, hard, erased []int, checkRows int) {
	for {
		progress := false
		for row := 0; row < checkRows; row++ {
			neighbors := ci[cs[row]:cs[row+1]]
			erasedCount := 0
			xorKnown := 0
			var erasedVar int
			for _, v := range neighbors {
				if erased[v] == 1 {
					erasedCount++
					erasedVar = v
				} else {
					xorKnown ^= hard[v]
				}
			}
			if erasedCount == 1 {
				hard[erasedVar] = xorKnown
				erased[erasedVar] = 0
				progress = true
			}
		}
		if !progress {
			return
		}
	}
}

func packHardBits(hard []int, nbits int, out []byte) {
	nbytes := byteLen(nbits)
	for j := 0; j < nbytes; j++ {
		var b byte
		for i := 0; i < 8; i++ {
			idx := j*8 + i
			if idx >= nbits {
				break
			}
			if hard[idx] != 0 {
				b |= 1 << (7 - uint(i))
			}
		}
		out[j] = b
	}
}
