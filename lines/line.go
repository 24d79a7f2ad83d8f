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

// Package lines implements reading and classifying lines of a DSL
// dictionary source file.
package lines

import (
	"strings"
)

// Kind is the structural classification of a source line.
type Kind int

const (
	// Blank is a line containing only whitespace.
	Blank Kind = iota

	// Headword is an unindented line holding an entry's headword.
	Headword

	// Body is an indented line holding entry definition text.
	Body

	// Comment is a full-line {{...}} comment.
	Comment

	// Directive is a #KEY header directive line.
	Directive
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Headword:
		return "headword"
	case Body:
		return "body"
	case Comment:
		return "comment"
	case Directive:
		return "directive"
	default:
		return "unknown"
	}
}

// Line is one classified input line. Lines are immutable once classified.
type Line struct {
	// Num is the 1-based position of the line in the file.
	Num int

	// Text is the raw line text without the line terminator.
	Text string

	// Kind is the line's structural classification.
	Kind Kind

	// Indent is the first leading whitespace byte of a Body line. It is 0
	// for unindented lines.
	Indent byte

	// Headword is the trimmed headword text. It is set only for Headword
	// lines.
	Headword string
}

// Classify classifies the raw text of line num. It is a pure function of
// its inputs; no surrounding lines are consulted.
func Classify(num int, text string) *Line {
	l := &Line{
		Num:  num,
		Text: text,
	}

	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		l.Kind = Blank
	case text[0] == '#':
		l.Kind = Directive
	case strings.HasPrefix(trimmed, "{{") && strings.HasSuffix(trimmed, "}}"):
		l.Kind = Comment
	case text[0] == '\t' || text[0] == ' ':
		// Space indentation is an error but the line is still body text.
		// The indentation checker reports it.
		l.Kind = Body
		l.Indent = text[0]
	default:
		l.Kind = Headword
		l.Headword = trimmed
	}

	return l
}
