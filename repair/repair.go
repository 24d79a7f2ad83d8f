// Copyright 2026 The go-dsl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repair rewrites DSL source lines so that brackets not forming a
// balanced pair are backslash-escaped. Matched pairs and already-escaped
// brackets are left untouched. Repair decides by bracket balance alone and
// never consults tag names.
package repair

import (
	"fmt"
	"io"
	"strings"

	"github.com/lingutil/go-dsl/lines"
)

// Line rewrites one line, escaping every stray bracket. Escaping is
// idempotent: an escaped bracket is literal text on the next pass.
func Line(text string) string {
	if !strings.ContainsAny(text, "[]") {
		return text
	}

	// First pass: resolve bracket pairs, collecting offsets of strays.
	var open []int
	stray := map[int]bool{}
	var prev rune
	for i, c := range text {
		if prev == '\\' && (c == '[' || c == ']') {
			prev = c
			continue
		}
		switch c {
		case '[':
			open = append(open, i)
		case ']':
			if len(open) > 0 {
				open = open[:len(open)-1]
			} else {
				stray[i] = true
			}
		}
		prev = c
	}
	for _, i := range open {
		stray[i] = true
	}
	if len(stray) == 0 {
		return text
	}

	// Second pass: rebuild the line with strays escaped.
	var b strings.Builder
	b.Grow(len(text) + len(stray))
	for i, c := range text {
		if stray[i] {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Stream rewrites every line read from s onto w and returns the number of
// lines written. The output has exactly one line per input line. Comment
// and directive lines pass through unchanged.
func Stream(s *lines.Scanner, w io.Writer) (int, error) {
	n := 0
	for s.Scan() {
		l := s.Line()
		out := l.Text
		if l.Kind != lines.Comment && l.Kind != lines.Directive {
			out = Line(l.Text)
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return n, fmt.Errorf("writing line %d: %w", l.Num, err)
		}
		n++
	}
	if err := s.Err(); err != nil {
		return n, fmt.Errorf("reading line stream: %w", err)
	}
	return n, nil
}
