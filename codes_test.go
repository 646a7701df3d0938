/*
 * ldpc - Code catalog tests
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

func TestCodeSizes(t *testing.T) {
	tests := []struct {
		code          Code
		n, k, p, m    int
		name          string
	}{
		{TC128, 128, 64, 0, 4, "TC128"},
		{TC256, 256, 128, 0, 4, "TC256"},
		{TC512, 512, 256, 0, 4, "TC512"},
		{TM1280, 1280, 1024, 128, 32, "TM1280"},
		{TM1536, 1536, 1024, 256, 16, "TM1536"},
		{TM2048, 2048, 1024, 512, 8, "TM2048"},
		{TM5120, 5120, 4096, 512, 32, "TM5120"},
		{TM6144, 6144, 4096, 1024, 16, "TM6144"},
		{TM8192, 8192, 4096, 2048, 8, "TM8192"},
	}
	for _, want := range tests {
		c := want.code
		if got := c.N(); got != want.n {
			t.Errorf("%s.N() = %d, want %d", want.name, got, want.n)
		}
		if got := c.K(); got != want.k {
			t.Errorf("%s.K() = %d, want %d", want.name, got, want.k)
		}
		if got := c.PuncturedBits(); got != want.p {
			t.Errorf("%s.PuncturedBits() = %d, want %d", want.name, got, want.p)
		}
		if got := c.M(); got != want.m {
			t.Errorf("%s.M() = %d, want %d", want.name, got, want.m)
		}
		if got := c.String(); got != want.name {
			t.Errorf("%s.String() = %q, want %q", want.name, got, want.name)
		}
		if got := c.checkCount(); got != want.n-want.k {
			t.Errorf("%s.checkCount() = %d, want %d", want.name, got, want.n-want.k)
		}
		if got := c.internalLen(); got != want.n+want.p {
			t.Errorf("%s.internalLen() = %d, want %d", want.name, got, want.n+want.p)
		}
		if got := c.SparseParitycheckCsLen(); got != want.n-want.k+1 {
			t.Errorf("%s.SparseParitycheckCsLen() = %d, want %d", want.name, got, want.n-want.k+1)
		}
		if got := c.SparseParitycheckVsLen(); got != want.n+want.p+1 {
			t.Errorf("%s.SparseParitycheckVsLen() = %d, want %d", want.name, got, want.n+want.p+1)
		}
	}
}

func TestCodeByName(t *testing.T) {
	for _, c := range allCodes() {
		got, err := CodeByName(c.String())
		if err != nil {
			t.Fatalf("CodeByName(%s): %v", c, err)
		}
		if got != c {
			t.Errorf("CodeByName(%s) = %s, want %s", c.String(), got, c)
		}
	}
	if _, err := CodeByName("nonsense"); err != ErrInvalidCode {
		t.Errorf("CodeByName(nonsense) error = %v, want ErrInvalidCode", err)
	}
}

func TestInvalidCode(t *testing.T) {
	bad := Code(-1)
	if bad.valid() {
		t.Fatal("Code(-1) reported valid")
	}
	if got := bad.String(); got != "Code(invalid)" {
		t.Errorf("Code(-1).String() = %q", got)
	}

	data := make([]byte, 8)
	codeword := make([]byte, 16)
	if err := EncodeSmall(bad, data, codeword); err != ErrInvalidCode {
		t.Errorf("EncodeSmall(invalid): %v, want ErrInvalidCode", err)
	}
}

func TestBufferTooSmall(t *testing.T) {
	data := make([]byte, TC128.DataLen()-1)
	codeword := make([]byte, TC128.TransmittedLen())
	err := EncodeSmall(TC128, data, codeword)
	if err == nil {
		t.Fatal("expected BufferTooSmall, got nil")
	}
	bts, ok := err.(*BufferTooSmall)
	if !ok {
		t.Fatalf("error type = %T, want *BufferTooSmall", err)
	}
	if bts.Name != "data" || bts.Required != TC128.DataLen() || bts.Got != len(data) {
		t.Errorf("BufferTooSmall = %+v", bts)
	}
}

func TestParitycheckSumMatchesEdgeCount(t *testing.T) {
	for _, c := range allCodes() {
		g := buildGraph(t, c)
		if got, want := len(g.ci), c.ParitycheckSum(); got != want {
			t.Errorf("%s: len(ci) = %d, want ParitycheckSum() = %d", c, got, want)
		}
	}
}
