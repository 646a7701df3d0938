/*
 * ldpc - CCSDS LDPC code catalog
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

// Package ldpc implements the CCSDS Telecommand short LDPC codes and the
// CCSDS Telemetry AR4JA LDPC codes: code catalog, compact compile-time
// constant tables, deterministic expansion into dense generator and sparse
// Tanner-graph adjacency, two encoders and two decoders. No component
// allocates or retains state between calls; every workspace is supplied by
// the caller.
package ldpc

// Code identifies one of the nine supported CCSDS LDPC codes.
type Code int

const (
	TC128 Code = iota
	TC256
	TC512
	TM1280
	TM1536
	TM2048
	TM5120
	TM6144
	TM8192

	codeCount
)

// codeParams holds the size parameters of one code, indexed by Code.
type codeParams struct {
	n int // codeword length, bits
	k int // dataword length, bits
	p int // punctured parity bits (0 for TC)
	m int // sub-block / circulant size
}

var allParams = [codeCount]codeParams{
	TC128:  {n: 128, k: 64, p: 0, m: 4},
	TC256:  {n: 256, k: 128, p: 0, m: 4},
	TC512:  {n: 512, k: 256, p: 0, m: 4},
	TM1280: {n: 1280, k: 1024, p: 128, m: 32},
	TM1536: {n: 1536, k: 1024, p: 256, m: 16},
	TM2048: {n: 2048, k: 1024, p: 512, m: 8},
	TM5120: {n: 5120, k: 4096, p: 512, m: 32},
	TM6144: {n: 6144, k: 4096, p: 1024, m: 16},
	TM8192: {n: 8192, k: 4096, p: 2048, m: 8},
}

var codeNames = [codeCount]string{
	TC128: "TC128", TC256: "TC256", TC512: "TC512",
	TM1280: "TM1280", TM1536: "TM1536", TM2048: "TM2048",
	TM5120: "TM5120", TM6144: "TM6144", TM8192: "TM8192",
}

func (c Code) valid() bool {
	return c >= 0 && c < codeCount
}

// String returns the code's catalog name, e.g. "TM2048". Diagnostic only;
// not used by any encode/decode path.
func (c Code) String() string {
	if !c.valid() {
		return "Code(invalid)"
	}
	return codeNames[c]
}

// CodeByName looks up a code by its catalog name (case-sensitive, e.g.
// "TC128"). Returns ErrInvalidCode if name does not match a supported code.
func CodeByName(name string) (Code, error) {
	for c := Code(0); c < codeCount; c++ {
		if codeNames[c] == name {
			return c, nil
		}
	}
	return 0, ErrInvalidCode
}

// N returns the codeword length in bits.
func (c Code) N() int { return allParams[c].n }

// K returns the dataword length in bits.
func (c Code) K() int { return allParams[c].k }

// PuncturedBits returns the number of punctured parity bits: 0 for TC codes,
// non-zero for TM codes. The decoder's internal codeword length is N()+PuncturedBits().
func (c Code) PuncturedBits() int { return allParams[c].p }

// M returns the sub-block/circulant size used by the compact constant tables.
func (c Code) M() int { return allParams[c].m }

// OutputLen returns the number of bytes an encoder or decoder output buffer
// must hold: (N()+PuncturedBits())/8 rounded up to the byte, i.e. exactly
// (n+p)/8 since n and p are always multiples of 8 after byte rounding for TM
// and n is always a multiple of 8 for all codes.
func (c Code) OutputLen() int {
	p := allParams[c]
	return byteLen(p.n + p.p)
}

// TransmittedLen returns the number of bytes in a transmitted (punctured)
// codeword: N()/8.
func (c Code) TransmittedLen() int {
	return byteLen(allParams[c].n)
}

// DataLen returns the number of bytes in a dataword: K()/8.
func (c Code) DataLen() int {
	return byteLen(allParams[c].k)
}

// GeneratorLen returns the number of 32-bit words the expanded generator
// submatrix requires: K() rows * (N()-K()) columns, packed into words.
func (c Code) GeneratorLen() int {
	p := allParams[c]
	nk := p.n - p.k
	return p.k * wordsFor(nk)
}

// ParitycheckSum returns the expected total edge count of the Tanner graph
// (sum of check degrees == sum of variable degrees == this value).
func (c Code) ParitycheckSum() int {
	return paritycheckEdgeCount[c]
}

// checkCount returns n-k, the number of parity-check rows. Per the CCSDS
// construction this does not grow with the punctured count p: puncturing
// removes transmitted symbols, not check equations.
func (c Code) checkCount() int {
	p := allParams[c]
	return p.n - p.k
}

// internalLen returns n+p, the decoder's internal (post-puncture-recovery)
// codeword length in bits.
func (c Code) internalLen() int {
	p := allParams[c]
	return p.n + p.p
}

// SparseParitycheckCiLen returns the required length of the ci array: the
// total edge count.
func (c Code) SparseParitycheckCiLen() int {
	return paritycheckEdgeCount[c]
}

// SparseParitycheckCsLen returns the required length of the cs array:
// checkCount()+1.
func (c Code) SparseParitycheckCsLen() int {
	return c.checkCount() + 1
}

// SparseParitycheckViLen returns the required length of the vi array: the
// total edge count (same multiset, transposed).
func (c Code) SparseParitycheckViLen() int {
	return paritycheckEdgeCount[c]
}

// SparseParitycheckVsLen returns the required length of the vs array:
// internalLen()+1.
func (c Code) SparseParitycheckVsLen() int {
	return c.internalLen() + 1
}

// ParitycheckLen returns the number of 32-bit words a dense (non-sparse)
// parity-check matrix would require: checkCount() rows * internalLen() columns.
// Only used by the optional InitParitycheck diagnostic.
func (c Code) ParitycheckLen() int {
	return c.checkCount() * wordsFor(c.internalLen())
}

// DecodeBFWorkingLen returns the number of ints the bit-flipping decoder's
// working area requires (see bfWorkingLen for the layout this backs).
func (c Code) DecodeBFWorkingLen() int {
	return bfWorkingLen(c)
}

// DecodeMPWorkingLen returns the number of float32s the message-passing
// decoder's working area requires (see mpWorkingLen for the layout this backs).
func (c Code) DecodeMPWorkingLen() int {
	return mpWorkingLen(c)
}

func byteLen(bits int) int {
	return (bits + 7) / 8
}

func wordsFor(bits int) int {
	return (bits + 31) / 32
}
