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

	"github.com/lingutil/go-dsl/lines"
)

// pos is the position of a bracket: line number and 0-based byte offset.
type pos struct {
	line int
	col  int
}

// span is a matched pair of brackets within a single line. Text is the
// content between the brackets.
type span struct {
	line        int
	open, close int
	text        string
}

// balancer tracks bracket nesting across one line or one entity. A bracket
// preceded by a backslash is literal text and never touches the stack.
type balancer struct {
	scope TagScope

	// open holds positions of pending "[" brackets.
	open []pos
}

// line consumes one body line, reporting stray close brackets as they are
// found and returning the spans matched entirely within this line, in
// closing order. With TagScopeLine remaining open brackets are reported
// before returning; with TagScopeEntity they stay pending until Flush.
func (b *balancer) line(l *lines.Line, emit func(*Diagnostic)) []span {
	var spans []span

	var prev rune
	for i, c := range l.Text {
		if prev == '\\' && (c == '[' || c == ']') {
			prev = c
			continue
		}
		switch c {
		case '[':
			b.open = append(b.open, pos{line: l.Num, col: i})
		case ']':
			if len(b.open) == 0 {
				emit(&Diagnostic{
					Line:    l.Num,
					EndLine: l.Num,
					Kind:    StrayCloseBracket,
					Msg:     fmt.Sprintf(`stray "]" at offset %d`, i),
					Snippet: l.Text,
				})
				break
			}
			p := b.open[len(b.open)-1]
			b.open = b.open[:len(b.open)-1]
			if p.line == l.Num {
				spans = append(spans, span{
					line:  l.Num,
					open:  p.col,
					close: i,
					text:  l.Text[p.col+1 : i],
				})
			}
		}
		prev = c
	}

	if b.scope == TagScopeLine {
		b.flush(emit)
	}

	return spans
}

// flush reports any still-open brackets as stray and resets the stack.
func (b *balancer) flush(emit func(*Diagnostic)) {
	for _, p := range b.open {
		emit(&Diagnostic{
			Line:    p.line,
			EndLine: p.line,
			Kind:    StrayOpenBracket,
			Msg:     fmt.Sprintf(`unmatched "[" at offset %d`, p.col),
		})
	}
	b.open = nil
}
