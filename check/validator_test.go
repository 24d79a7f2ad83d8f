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

package check_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lingutil/go-dsl/check"
	"github.com/lingutil/go-dsl/lines"
)

// runValidator feeds src through a fresh Validator and returns the findings.
func runValidator(t *testing.T, opts *check.Options, src []string) []*check.Diagnostic {
	t.Helper()

	v := check.New(opts)
	for i, text := range src {
		v.Next(lines.Classify(i+1, text))
	}
	return v.Finish()
}

// TestValidator tests the full validation pass.
func TestValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *check.Options
		src      []string
		expected []*check.Diagnostic
	}{
		{
			name: "valid entry",
			src:  []string{"cat", "\t[b]a feline[/b]"},
		},
		{
			name: "synonym headwords valid",
			src:  []string{"cat", "feline", "\tbody"},
		},
		{
			name: "consecutive headwords in single-keyword mode",
			opts: &check.Options{SynonymGrouping: false},
			src:  []string{"cat", "feline", "\tbody"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.ConsecutiveKeywords,
					Msg:     "headword follows headword at line 1 without a body",
					Snippet: "feline",
				},
			},
		},
		{
			name: "orphan body",
			src:  []string{"\tlost"},
			expected: []*check.Diagnostic{
				{
					Line:    1,
					EndLine: 1,
					Kind:    check.OrphanBody,
					Msg:     "body line with no preceding headword",
					Snippet: "\tlost",
				},
			},
		},
		{
			name: "headword without body",
			src:  []string{"cat"},
			expected: []*check.Diagnostic{
				{
					Line:    1,
					EndLine: 1,
					Kind:    check.KeywordWithoutBody,
					Msg:     "headword has no body",
				},
			},
		},
		{
			name: "headword group without body",
			src:  []string{"cat", "feline"},
			expected: []*check.Diagnostic{
				{
					Line:    1,
					EndLine: 2,
					Kind:    check.KeywordWithoutBody,
					Msg:     "headword group has no body",
				},
			},
		},
		{
			name: "leading spaces",
			src:  []string{"cat", "    word"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.LeadingSpacesNotTab,
					Msg:     "body line indented with 4 space(s), tab required",
					Snippet: "    word",
				},
			},
		},
		{
			name: "tab indent clean",
			src:  []string{"cat", "\tword"},
		},
		{
			name: "stray close bracket",
			src:  []string{"cat", "\ttext [b]bold[/b] more ] text"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.StrayCloseBracket,
					Msg:     `stray "]" at offset 23`,
					Snippet: "\ttext [b]bold[/b] more ] text",
				},
			},
		},
		{
			name: "stray open bracket",
			src:  []string{"cat", "\ttext [b"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.StrayOpenBracket,
					Msg:     `unmatched "[" at offset 6`,
				},
			},
		},
		{
			name: "mismatched tag",
			src:  []string{"cat", "\t[b]text[/i]"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.MismatchedTag,
					Msg:     "closing tag [/i] does not match open tag [b] from line 2",
				},
			},
		},
		{
			name: "unexpected closing tag",
			src:  []string{"cat", "\ttext[/b]"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.UnexpectedClosingTag,
					Msg:     "closing tag [/b] with no open tag",
				},
			},
		},
		{
			name: "unclosed tag before next entity",
			src:  []string{"cat", "\t[i]italic", "dog", "\tbark"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.UnclosedTag,
					Msg:     "tag [i] is never closed",
				},
			},
		},
		{
			name: "unclosed tag spans body lines",
			src:  []string{"cat", "\t[i]first", "\tsecond"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 3,
					Kind:    check.UnclosedTag,
					Msg:     "tag [i] is never closed",
				},
			},
		},
		{
			name: "margin close matches numbered margin tag",
			src:  []string{"cat", "\t[m1]indented[/m]"},
		},
		{
			name: "tag with argument",
			src:  []string{"cat", "\t[lang id=1033]word[/lang]"},
		},
		{
			name: "escaped brackets are literal",
			src:  []string{"cat", "\tsee \\] and \\[ here"},
		},
		{
			name: "duplicate headword",
			src:  []string{"cat", "\ta", "cat", "\tb"},
			expected: []*check.Diagnostic{
				{
					Line:    3,
					EndLine: 3,
					Kind:    check.DuplicateKeyword,
					Msg:     `headword "cat" already defined at line 1`,
					Snippet: "cat",
				},
			},
		},
		{
			name: "duplicate headword case folded",
			src:  []string{"Cat", "\ta", "cAT", "\tb"},
			expected: []*check.Diagnostic{
				{
					Line:    3,
					EndLine: 3,
					Kind:    check.DuplicateKeyword,
					Msg:     `headword "cAT" already defined at line 1`,
					Snippet: "cAT",
				},
			},
		},
		{
			name: "duplicate headword case sensitive",
			opts: &check.Options{
				SynonymGrouping:      true,
				KeywordCaseSensitive: true,
			},
			src: []string{"Cat", "\ta", "cAT", "\tb"},
		},
		{
			name: "duplicate headword whitespace folded",
			src:  []string{"big  cat", "\ta", "big cat", "\tb"},
			expected: []*check.Diagnostic{
				{
					Line:    3,
					EndLine: 3,
					Kind:    check.DuplicateKeyword,
					Msg:     `headword "big cat" already defined at line 1`,
					Snippet: "big cat",
				},
			},
		},
		{
			name: "blank and comment lines ignored",
			src:  []string{"cat", "", "{{ note }}", "\tbody"},
		},
		{
			name: "directive lines ignored",
			src:  []string{`#NAME "x"`, "cat", "\tbody"},
		},
		{
			name: "entity scope matches brackets across lines",
			opts: &check.Options{
				SynonymGrouping: true,
				TagScope:        check.TagScopeEntity,
			},
			src: []string{"cat", "\topen [", "\tclose ]"},
		},
		{
			name: "line scope resets brackets per line",
			src:  []string{"cat", "\topen [", "\tclose ]"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.StrayOpenBracket,
					Msg:     `unmatched "[" at offset 6`,
				},
				{
					Line:    3,
					EndLine: 3,
					Kind:    check.StrayCloseBracket,
					Msg:     `stray "]" at offset 7`,
					Snippet: "\tclose ]",
				},
			},
		},
		{
			name: "entity scope flushes at entity end",
			opts: &check.Options{
				SynonymGrouping: true,
				TagScope:        check.TagScopeEntity,
			},
			src: []string{"cat", "\ttext [b", "dog", "\tx"},
			expected: []*check.Diagnostic{
				{
					Line:    2,
					EndLine: 2,
					Kind:    check.StrayOpenBracket,
					Msg:     `unmatched "[" at offset 6`,
				},
			},
		},
		{
			name: "orphan body still fully checked",
			src:  []string{"    [b]text"},
			expected: []*check.Diagnostic{
				{
					Line:    1,
					EndLine: 1,
					Kind:    check.OrphanBody,
					Msg:     "body line with no preceding headword",
					Snippet: "    [b]text",
				},
				{
					Line:    1,
					EndLine: 1,
					Kind:    check.LeadingSpacesNotTab,
					Msg:     "body line indented with 4 space(s), tab required",
					Snippet: "    [b]text",
				},
				{
					Line:    1,
					EndLine: 1,
					Kind:    check.UnclosedTag,
					Msg:     "tag [b] is never closed",
				},
			},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := runValidator(t, test.opts, test.src)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("diagnostics (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestValidatorPrefix tests that a prefix of a file reports only findings
// for lines seen so far.
func TestValidatorPrefix(t *testing.T) {
	t.Parallel()

	src := []string{"cat", "\t[i]italic"}

	// The full file would close the tag on line 3; the prefix must flush
	// the open tag as an end-of-input finding.
	got := runValidator(t, nil, src)
	expected := []*check.Diagnostic{
		{
			Line:    2,
			EndLine: 2,
			Kind:    check.UnclosedTag,
			Msg:     "tag [i] is never closed",
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("diagnostics (-want, +got):\n%s", diff)
	}
}
