/*
 * ldpc - MSB-first bit/word/byte packing helpers
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

// Bit i (0 <= i < 8) of byte b carries codeword bit 8b+i, i=0 being the
// most significant bit of the byte. All packed buffers in this package
// (bytes, and 32-bit words used by the generator/parity tables) share this
// MSB-first convention, so word w's bits [32w, 32w+31] align exactly with
// byte range [4w, 4w+3].

// maxNkWords bounds the widest compact-row/accumulator a production code
// needs (TM8192: (8192-4096)/32 = 128 words), so encode_small can keep its
// parity accumulator on the stack instead of allocating.
const maxNkWords = 128

// bitSet reports whether bit index idx (0-based, MSB-first) is set in data.
func bitSet(data []byte, idx int) bool {
	b := idx / 8
	i := uint(idx % 8)
	return data[b]&(1<<(7-i)) != 0
}

// wordsToBytes packs the first nbits bits (MSB-first) of words into out,
// which must hold at least (nbits+7)/8 bytes.
func wordsToBytes(words []uint32, nbits int, out []byte) {
	nbytes := byteLen(nbits)
	for j := 0; j < nbytes; j++ {
		word := words[j/4]
		shift := uint(24 - 8*(j%4))
		out[j] = byte(word >> shift)
	}
}

// bytesToWords unpacks nbits bits (MSB-first) from data into words, which
// must hold at least wordsFor(nbits) entries. Partial trailing words are
// zero-padded in their low bits.
func bytesToWords(data []byte, nbits int, words []uint32) {
	nw := wordsFor(nbits)
	for i := range words[:nw] {
		words[i] = 0
	}
	nbytes := byteLen(nbits)
	for j := 0; j < nbytes; j++ {
		words[j/4] |= uint32(data[j]) << uint(24-8*(j%4))
	}
}

// wordBit reports whether bit index idx (0-based, MSB-first) is set across a
// []uint32, word w's bits being [32w, 32w+31].
func wordBit(words []uint32, idx int) bool {
	w := idx / 32
	i := uint(idx % 32)
	return words[w]&(1<<(31-i)) != 0
}

// setWordBit sets bit index idx (0-based, MSB-first) across a []uint32.
func setWordBit(words []uint32, idx int) {
	w := idx / 32
	i := uint(idx % 32)
	words[w] |= 1 << (31 - i)
}

// rotateGeneratorRow writes into dst the compact row src cyclically
// right-rotated by shift positions within each m-wide sub-block of the
// nk-bit row (dst[blockBase+x] = src[blockBase+(x-shift mod m)]), packed
// MSB-first into 32-bit words. dst must hold wordsFor(nk) words and must not
// overlap src.
func rotateGeneratorRow(src []uint32, nk, m, shift int, dst []uint32) {
	nw := wordsFor(nk)
	for i := range dst[:nw] {
		dst[i] = 0
	}
	if shift == 0 {
		copy(dst[:nw], src[:nw])
		return
	}
	tq := nk / m
	for blk := 0; blk < tq; blk++ {
		base := blk * m
		for x := 0; x < m; x++ {
			srcIdx := base + (x-shift+m)%m
			if wordBit(src, srcIdx) {
				setWordBit(dst, base+x)
			}
		}
	}
}
