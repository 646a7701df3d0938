/*
 * ldpc - Encoder tests
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
	"bytes"
	"testing"
)

// TestEncodersAgree checks encode_small and encode_fast produce
// bit-for-bit identical codewords for the same data, across every code.
func TestEncodersAgree(t *testing.T) {
	for _, c := range allCodes() {
		g := make([]uint32, c.GeneratorLen())
		if err := InitGenerator(c, g); err != nil {
			t.Fatalf("InitGenerator(%s): %v", c, err)
		}
		data := randomBytes(c.DataLen(), int64(c)+1)

		small := make([]byte, c.TransmittedLen())
		if err := EncodeSmall(c, data, small); err != nil {
			t.Fatalf("EncodeSmall(%s): %v", c, err)
		}
		fast := make([]byte, c.TransmittedLen())
		if err := EncodeFast(c, data, g, fast); err != nil {
			t.Fatalf("EncodeFast(%s): %v", c, err)
		}
		if !bytes.Equal(small, fast) {
			t.Fatalf("%s: encode_small != encode_fast\n small=%x\n  fast=%x", c, small, fast)
		}
		if !bytes.Equal(small[:c.DataLen()], data) {
			t.Fatalf("%s: systematic prefix mismatch", c)
		}
	}
}

// TestEncodedCodewordSatisfiesChecks verifies every parity check evaluates
// to zero for an encoded codeword, after recovering any punctured bits.
func TestEncodedCodewordSatisfiesChecks(t *testing.T) {
	for _, c := range allCodes() {
		g := buildGraph(t, c)
		data := randomBytes(c.DataLen(), int64(c)+100)
		codeword := make([]byte, c.TransmittedLen())
		if err := EncodeSmall(c, data, codeword); err != nil {
			t.Fatalf("EncodeSmall(%s): %v", c, err)
		}
		word := decodeCleanBF(t, c, g, codeword)
		checkAllParities(t, c, g, word)
	}
}

// TestTC128ConcreteScenario matches the worked example: both encoders agree,
// an error-free decode recovers the data, and a single corrupted byte still
// decodes correctly under decode_bf.
func TestTC128ConcreteScenario(t *testing.T) {
	c := TC128
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	g := make([]uint32, c.GeneratorLen())
	if err := InitGenerator(c, g); err != nil {
		t.Fatal(err)
	}

	small := make([]byte, c.TransmittedLen())
	fast := make([]byte, c.TransmittedLen())
	if err := EncodeSmall(c, data, small); err != nil {
		t.Fatal(err)
	}
	if err := EncodeFast(c, data, g, fast); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(small, fast) {
		t.Fatalf("encode_small != encode_fast: %x vs %x", small, fast)
	}

	graph := buildGraph(t, c)
	clean := append([]byte(nil), small...)
	out := make([]byte, c.OutputLen())
	work := make([]int, c.DecodeBFWorkingLen())
	ok, _, err := DecodeBF(c, graph.ci, graph.cs, nil, nil, clean, out, work, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !bytes.Equal(out[:c.DataLen()], data) {
		t.Fatalf("clean decode failed: ok=%v out=%x", ok, out[:c.DataLen()])
	}

	corrupted := append([]byte(nil), small...)
	corrupted[0] ^= 0x55
	ok, _, err = DecodeBF(c, graph.ci, graph.cs, nil, nil, corrupted, out, work, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !bytes.Equal(out[:c.DataLen()], data) {
		t.Fatalf("corrupted decode failed: ok=%v out=%x", ok, out[:c.DataLen()])
	}
}

// TestTM1280AllZero checks the systematic prefix and the parity region of
// the all-zero codeword, used elsewhere as a fixed reference.
func TestTM1280AllZero(t *testing.T) {
	c := TM1280
	data := make([]byte, c.DataLen())
	codeword := make([]byte, c.TransmittedLen())
	if err := EncodeSmall(c, data, codeword); err != nil {
		t.Fatal(err)
	}
	for i, b := range codeword {
		if b != 0 {
			t.Fatalf("all-zero data encoded to nonzero byte %d: %#x", i, b)
		}
	}
}
