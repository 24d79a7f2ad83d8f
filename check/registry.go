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

	"github.com/lingutil/go-dsl/internal/folding"
	"github.com/lingutil/go-dsl/lines"
)

// registry accumulates normalized headwords seen during one validation run
// and reports repeats. It is scoped to a single run.
type registry struct {
	caseSensitive bool

	// seen maps a folded headword to the line it was first seen at.
	seen map[string]int
}

func newRegistry(caseSensitive bool) *registry {
	return &registry{
		caseSensitive: caseSensitive,
		seen:          map[string]int{},
	}
}

// headword records one headword line, reporting it if the folded headword
// was already registered.
func (r *registry) headword(l *lines.Line, emit func(*Diagnostic)) {
	folded := folding.Headword(l.Headword, r.caseSensitive)
	if first, ok := r.seen[folded]; ok {
		emit(&Diagnostic{
			Line:    l.Num,
			EndLine: l.Num,
			Kind:    DuplicateKeyword,
			Msg:     fmt.Sprintf("headword %q already defined at line %d", l.Headword, first),
			Snippet: l.Text,
		})
		return
	}
	r.seen[folded] = l.Num
}
