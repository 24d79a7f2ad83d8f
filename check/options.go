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

// TagScope selects the lifetime of the bracket-balance stack.
type TagScope int

const (
	// TagScopeLine resets bracket balance at the end of every line.
	TagScopeLine TagScope = iota

	// TagScopeEntity keeps bracket balance across an entity's body lines.
	TagScopeEntity
)

// Options are options for a validation run.
type Options struct {
	// SynonymGrouping allows consecutive headword lines to form one entity.
	// When false each headword requires its own immediate body and a second
	// headword line is reported as CONSECUTIVE_KEYWORDS.
	SynonymGrouping bool

	// TagScope selects whether bracket balance resets per line or per
	// entity.
	TagScope TagScope

	// KeywordCaseSensitive disables case folding when comparing headwords
	// for duplicates. Whitespace is folded either way.
	KeywordCaseSensitive bool
}

// DefaultOptions is the default options for a Validator. Synonym grouping
// is on because GoldenDict renders stacked headwords as one card.
var DefaultOptions = &Options{
	SynonymGrouping: true,
	TagScope:        TagScopeLine,
}
