/*
 * ldpc - Error types
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
	"errors"
	"fmt"
)

// ErrInvalidCode is returned by CodeByName when given a name that does not
// match any supported code.
var ErrInvalidCode = errors.New("ldpc: invalid code")

// BufferTooSmall reports that a caller-supplied slice is shorter than the
// length its operation requires. Name identifies which argument failed
// (e.g. "ci", "work", "codeword") so a caller juggling several buffers for
// several codes can tell them apart without re-deriving every *_len query.
type BufferTooSmall struct {
	Name     string
	Required int
	Got      int
}

func (e *BufferTooSmall) Error() string {
	return fmt.Sprintf("ldpc: buffer %q too small: need %d, got %d", e.Name, e.Required, e.Got)
}

func checkLen(name string, got, required int) error {
	if got < required {
		return &BufferTooSmall{Name: name, Required: required, Got: got}
	}
	return nil
}
