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
	"sort"

	"github.com/lingutil/go-dsl/lines"
)

// entityState is the entity-order state machine state.
type entityState int

const (
	// stateStart means no entity has been started.
	stateStart entityState = iota

	// stateKeywords means one or more headword lines are accumulated with
	// no body yet.
	stateKeywords

	// stateBody means the current entity has at least one body line.
	stateBody
)

// Validator consumes a stream of classified lines and accumulates
// diagnostics. A Validator holds the state of exactly one validation run;
// it is not safe for concurrent use and must not be reused across files.
//
// The input may be any prefix of a file. Finish flushes still-open state
// (pending headword groups, unclosed tags) as end-of-input findings.
type Validator struct {
	opts *Options

	state entityState

	// kwFirst, kwLast delimit the current headword group.
	kwFirst, kwLast int

	// lastBody is the line number of the current entity's last body line.
	lastBody int

	bal   *balancer
	tags  *tagMatcher
	reg   *registry
	diags []*Diagnostic
}

// New returns a Validator for a single run with the given options. A nil
// opts uses DefaultOptions.
func New(opts *Options) *Validator {
	if opts == nil {
		opts = DefaultOptions
	}
	return &Validator{
		opts: opts,
		bal:  &balancer{scope: opts.TagScope},
		tags: &tagMatcher{},
		reg:  newRegistry(opts.KeywordCaseSensitive),
	}
}

// Next consumes one classified line. Blank, comment, and directive lines
// are ignored for all structural checks.
func (v *Validator) Next(l *lines.Line) {
	switch l.Kind {
	case lines.Headword:
		v.headword(l)
	case lines.Body:
		v.body(l)
	case lines.Blank, lines.Comment, lines.Directive:
	}
}

// Finish flushes end-of-input state and returns the diagnostics ordered by
// line number. The Validator must not be used after Finish.
func (v *Validator) Finish() []*Diagnostic {
	if v.state == stateKeywords {
		msg := "headword has no body"
		if v.kwLast > v.kwFirst {
			msg = "headword group has no body"
		}
		v.emit(&Diagnostic{
			Line:    v.kwFirst,
			EndLine: v.kwLast,
			Kind:    KeywordWithoutBody,
			Msg:     msg,
		})
	}
	v.endEntity()

	// Boundary flushes emit findings for earlier lines after later ones;
	// restore line order for the caller.
	sort.SliceStable(v.diags, func(i, j int) bool {
		return v.diags[i].Line < v.diags[j].Line
	})
	return v.diags
}

func (v *Validator) emit(d *Diagnostic) {
	v.diags = append(v.diags, d)
}

func (v *Validator) headword(l *lines.Line) {
	switch v.state {
	case stateKeywords:
		if !v.opts.SynonymGrouping {
			v.emit(&Diagnostic{
				Line:    l.Num,
				EndLine: l.Num,
				Kind:    ConsecutiveKeywords,
				Msg:     fmt.Sprintf("headword follows headword at line %d without a body", v.kwLast),
				Snippet: l.Text,
			})
		}
		v.kwLast = l.Num
	case stateStart, stateBody:
		// A headword starts a new entity; close out the previous one.
		v.endEntity()
		v.state = stateKeywords
		v.kwFirst = l.Num
		v.kwLast = l.Num
	}

	v.reg.headword(l, v.emit)
}

func (v *Validator) body(l *lines.Line) {
	switch v.state {
	case stateStart:
		// The line is skipped for ordering purposes but is still checked
		// for indentation and tag balance below.
		v.emit(&Diagnostic{
			Line:    l.Num,
			EndLine: l.Num,
			Kind:    OrphanBody,
			Msg:     "body line with no preceding headword",
			Snippet: l.Text,
		})
	case stateKeywords, stateBody:
		v.state = stateBody
	}
	v.lastBody = l.Num

	checkIndent(l, v.emit)
	for _, sp := range v.bal.line(l, v.emit) {
		v.tags.span(sp, v.emit)
	}
}

// endEntity flushes per-entity checker state at an entity boundary.
func (v *Validator) endEntity() {
	v.tags.flush(v.lastBody, v.emit)
	if v.opts.TagScope == TagScopeEntity {
		v.bal.flush(v.emit)
	}
	v.state = stateStart
	v.lastBody = 0
}
