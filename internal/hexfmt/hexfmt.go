/*
 * ldpc - Hex dump helpers for codewords and packed words
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

// Package hexfmt renders codewords, packed generator words, and sparse
// adjacency arrays as hex for the ldpccheck tool.
// It is not part of the library's core and allocates freely.
package hexfmt

import "strings"

var hexMap = "0123456789abcdef"

// Words renders a slice of 32-bit words, most-significant nibble first.
func Words(w []uint32) string {
	var b strings.Builder
	for _, word := range w {
		shift := 28
		for range 8 {
			b.WriteByte(hexMap[(word>>shift)&0xf])
			shift -= 4
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Bytes renders a byte slice as paired hex digits separated by spaces.
func Bytes(data []byte) string {
	var b strings.Builder
	for _, by := range data {
		b.WriteByte(hexMap[(by>>4)&0xf])
		b.WriteByte(hexMap[by&0xf])
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Ints renders a slice of indices as decimal, comma separated; used to print
// ci/vi adjacency rows in test failures.
func Ints(v []int) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(itoa(x))
	}
	return b.String()
}

func itoa(x int) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
