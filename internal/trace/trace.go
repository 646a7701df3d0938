/*
 * ldpc - Optional iteration tracing for decoder tests and tools
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

// Package trace prints decoder iteration traces to a caller-supplied writer.
// It has no package-level state: every call takes its destination
// explicitly, so the decoders themselves never import it and the core stays
// free of logging, matching the library's no-hidden-state discipline. Its
// one user is the ldpccheck command.
package trace

import (
	"fmt"
	"io"
)

// Level selects which classes of trace message a Logger emits.
type Level int

const (
	LevelIter   Level = 1 << iota // per-iteration syndrome weight / flip count
	LevelEdge                     // per-edge message values (verbose)
	LevelResult                   // final convergence summary
)

// Logger writes masked trace messages to W. A nil W discards everything.
type Logger struct {
	W    io.Writer
	Mask Level
}

// Tracef writes format to the logger if level is enabled by the mask.
func (l Logger) Tracef(level Level, format string, a ...interface{}) {
	if l.W == nil || l.Mask&level == 0 {
		return
	}
	fmt.Fprintf(l.W, format+"\n", a...)
}
