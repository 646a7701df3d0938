/*
 * ldpc - Encoders: encode_small and encode_fast
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

// EncodeSmall encodes data (K()/8 bytes) into codeword (N()/8 bytes) using
// the compact generator directly: for each set data bit, XOR its
// originating compact row into a parity accumulator one bit at a time.
// Trades roughly two orders of magnitude in time against EncodeFast for no
// memory beyond the accumulator, which is a small fixed-size array (never
// larger than maxNkWords words for any catalog code), not a heap
// allocation. Punctured parity bits are never part of the transmitted
// codeword and are not computed here; the decoder recovers them from the
// received word via the erasure prepass.
func EncodeSmall(c Code, data, codeword []byte) error {
	if !c.valid() {
		return ErrInvalidCode
	}
	if err := checkLen("data", len(data), c.DataLen()); err != nil {
		return err
	}
	if err := checkLen("codeword", len(codeword), c.TransmittedLen()); err != nil {
		return err
	}

	m := c.M()
	nk := c.N() - c.K()
	wordsPerRow := wordsFor(nk)
	compact := compactGenWords[c]

	var acc, rowBuf [maxNkWords]uint32
	parity := acc[:wordsPerRow]
	row := rowBuf[:wordsPerRow]
	for i := range parity {
		parity[i] = 0
	}

	for j := 0; j < c.K(); j++ {
		if !bitSet(data, j) {
			continue
		}
		i := j % m
		b := j / m
		compactRow := compact[i*wordsPerRow : (i+1)*wordsPerRow]
		rotateGeneratorRow(compactRow, nk, m, blockRotation(b, m), row)
		for w, word := range row {
			parity[w] ^= word
		}
	}

	copy(codeword[:c.DataLen()], data[:c.DataLen()])
	wordsToBytes(parity, nk, codeword[c.DataLen():c.TransmittedLen()])
	return nil
}

// EncodeFast encodes data into codeword using the expanded generator g
// (from InitGenerator): for each set data bit i, XOR row i of g into the
// parity accumulator, then copy data into the systematic prefix. g must
// have at least GeneratorLen() words.
func EncodeFast(c Code, data []byte, g []uint32, codeword []byte) error {
	if !c.valid() {
		return ErrInvalidCode
	}
	if err := checkLen("data", len(data), c.DataLen()); err != nil {
		return err
	}
	if err := checkLen("g", len(g), c.GeneratorLen()); err != nil {
		return err
	}
	if err := checkLen("codeword", len(codeword), c.TransmittedLen()); err != nil {
		return err
	}

	nk := c.N() - c.K()
	wordsPerRow := wordsFor(nk)

	var acc [maxNkWords]uint32
	parity := acc[:wordsPerRow]
	for i := range parity {
		parity[i] = 0
	}

	for j := 0; j < c.K(); j++ {
		if !bitSet(data, j) {
			continue
		}
		row := g[j*wordsPerRow : (j+1)*wordsPerRow]
		for w, word := range row {
			parity[w] ^= word
		}
	}

	copy(codeword[:c.DataLen()], data[:c.DataLen()])
	wordsToBytes(parity, nk, codeword[c.DataLen():c.TransmittedLen()])
	return nil
}
