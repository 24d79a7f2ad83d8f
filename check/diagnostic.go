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

// Package check implements structural validation of DSL dictionary source
// files: entity ordering, indentation, bracket balance, tag matching, and
// duplicate headword detection.
package check

import (
	"fmt"
)

// Kind identifies a class of structural problem.
type Kind string

const (
	// OrphanBody is a body line with no preceding headword.
	OrphanBody Kind = "ORPHAN_BODY"

	// KeywordWithoutBody is a headword group with no body at end of input.
	KeywordWithoutBody Kind = "KEYWORD_WITHOUT_BODY"

	// ConsecutiveKeywords is a second headword line in single-keyword mode.
	ConsecutiveKeywords Kind = "CONSECUTIVE_KEYWORDS"

	// LeadingSpacesNotTab is a body line indented with spaces instead of a tab.
	LeadingSpacesNotTab Kind = "LEADING_SPACES_NOT_TAB"

	// StrayOpenBracket is a "[" with no matching "]".
	StrayOpenBracket Kind = "STRAY_OPEN_BRACKET"

	// StrayCloseBracket is a "]" with no matching "[".
	StrayCloseBracket Kind = "STRAY_CLOSE_BRACKET"

	// MismatchedTag is a closing tag that does not match the open tag.
	MismatchedTag Kind = "MISMATCHED_TAG"

	// UnexpectedClosingTag is a closing tag with no open tag.
	UnexpectedClosingTag Kind = "UNEXPECTED_CLOSING_TAG"

	// UnclosedTag is a tag still open at the end of an entity.
	UnclosedTag Kind = "UNCLOSED_TAG"

	// DuplicateKeyword is a headword that was already seen in the file.
	DuplicateKeyword Kind = "DUPLICATE_KEYWORD"
)

// Severity is the severity of a finding.
type Severity int

const (
	// Warning findings are tolerated by some dictionary viewers.
	Warning Severity = iota

	// Error findings cause compilers to reject the file or viewers to
	// render it incorrectly.
	Error
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Severity returns the severity of the diagnostic kind. Duplicate headwords
// are valid in some viewers and are reported as warnings; everything else
// is a hard error.
func (k Kind) Severity() Severity {
	if k == DuplicateKeyword {
		return Warning
	}
	return Error
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	// Line is the 1-based line the problem was found at.
	Line int `json:"line"`

	// EndLine is the last line of a multi-line finding. It equals Line for
	// single-line findings.
	EndLine int `json:"end_line"`

	// Kind is the problem class.
	Kind Kind `json:"kind"`

	// Msg is a human-readable description.
	Msg string `json:"msg"`

	// Snippet is the offending text, when available.
	Snippet string `json:"snippet,omitempty"`
}

// Severity returns the severity of the diagnostic.
func (d *Diagnostic) Severity() Severity {
	return d.Kind.Severity()
}

// String implements [fmt.Stringer].
func (d *Diagnostic) String() string {
	if d.EndLine > d.Line {
		return fmt.Sprintf("%d-%d: %s: %s: %s", d.Line, d.EndLine, d.Severity(), d.Kind, d.Msg)
	}
	return fmt.Sprintf("%d: %s: %s: %s", d.Line, d.Severity(), d.Kind, d.Msg)
}
