// Copyright 2026 The go-dsl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Headword normalizes a headword for duplicate comparison. Whitespace is
// always folded; Unicode case folding is applied unless caseSensitive is
// true. The input is returned unchanged if the fold fails on invalid text.
func Headword(s string, caseSensitive bool) string {
	t := transform.Transformer(&WhitespaceFolder{})
	if !caseSensitive {
		t = transform.Chain(t, cases.Fold())
	}
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
