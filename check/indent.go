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

	"github.com/lingutil/go-dsl/lines"
)

// checkIndent reports body lines indented with spaces. Body lines must
// begin with a tab.
func checkIndent(l *lines.Line, emit func(*Diagnostic)) {
	if l.Indent != ' ' {
		return
	}
	n := len(l.Text) - len(strings.TrimLeft(l.Text, " "))
	emit(&Diagnostic{
		Line:    l.Num,
		EndLine: l.Num,
		Kind:    LeadingSpacesNotTab,
		Msg:     fmt.Sprintf("body line indented with %d space(s), tab required", n),
		Snippet: l.Text,
	})
}
