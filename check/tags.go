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

package check

import (
	"fmt"
	"strings"
)

// openTag is a named tag waiting for its closing counterpart.
type openTag struct {
	name string
	line int
}

// tagName extracts the tag name from a matched span's inner text. A leading
// "/" marks a closing tag. The name runs to the first whitespace so tags
// with arguments like [lang id=1033] have name "lang". Empty text yields an
// empty name.
func tagName(text string) (string, bool) {
	closing := strings.HasPrefix(text, "/")
	name := strings.TrimPrefix(text, "/")
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	return name, closing
}

// tagMatches reports whether the closing tag name closes the open tag name.
// The [/m] close matches any of the margin tags [m0] through [m9].
func tagMatches(open, close string) bool {
	if open == close {
		return true
	}
	if close == "m" && len(open) == 2 && open[0] == 'm' && open[1] >= '0' && open[1] <= '9' {
		return true
	}
	return false
}

// tagMatcher tracks named tag pairing across an entity's body lines. It
// consumes matched bracket spans in the order they close.
type tagMatcher struct {
	stack []openTag
}

// span consumes one matched bracket span.
func (m *tagMatcher) span(sp span, emit func(*Diagnostic)) {
	name, closing := tagName(sp.text)
	if name == "" {
		// Bracket-balanced but nameless; nothing to pair.
		return
	}

	if !closing {
		m.stack = append(m.stack, openTag{name: name, line: sp.line})
		return
	}

	if len(m.stack) == 0 {
		emit(&Diagnostic{
			Line:    sp.line,
			EndLine: sp.line,
			Kind:    UnexpectedClosingTag,
			Msg:     fmt.Sprintf("closing tag [/%s] with no open tag", name),
		})
		return
	}

	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if !tagMatches(top.name, name) {
		emit(&Diagnostic{
			Line:    sp.line,
			EndLine: sp.line,
			Kind:    MismatchedTag,
			Msg:     fmt.Sprintf("closing tag [/%s] does not match open tag [%s] from line %d", name, top.name, top.line),
		})
	}
}

// flush reports every still-open tag, outermost first, and resets the
// stack. endLine is the last line of the enclosing entity.
func (m *tagMatcher) flush(endLine int, emit func(*Diagnostic)) {
	for _, t := range m.stack {
		end := endLine
		if end < t.line {
			end = t.line
		}
		emit(&Diagnostic{
			Line:    t.line,
			EndLine: end,
			Kind:    UnclosedTag,
			Msg:     fmt.Sprintf("tag [%s] is never closed", t.name),
		})
	}
	m.stack = nil
}
