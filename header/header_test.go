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

package header

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		directives []string
		expect     func(*testing.T, *Header)
		err        error
	}{
		{
			name: "full header",
			directives: []string{
				`#NAME "My Dictionary"`,
				`#INDEX_LANGUAGE "English"`,
				`#CONTENTS_LANGUAGE "Russian"`,
			},
			expect: func(t *testing.T, h *Header) {
				t.Helper()
				if want, got := "My Dictionary", h.Name(); want != got {
					t.Fatalf("Name; want: %q, got: %q", want, got)
				}
				if want, got := "English", h.IndexLanguage(); want != got {
					t.Fatalf("IndexLanguage; want: %q, got: %q", want, got)
				}
				if want, got := "Russian", h.ContentsLanguage(); want != got {
					t.Fatalf("ContentsLanguage; want: %q, got: %q", want, got)
				}
				if diff := cmp.Diff([]string{"NAME", "INDEX_LANGUAGE", "CONTENTS_LANGUAGE"}, h.Keys()); diff != "" {
					t.Fatalf("Keys (-want, +got):\n%s", diff)
				}
			},
		},
		{
			name: "bare value",
			directives: []string{
				`#NAME MyDict`,
			},
			expect: func(t *testing.T, h *Header) {
				t.Helper()
				if want, got := "MyDict", h.Name(); want != got {
					t.Fatalf("Name; want: %q, got: %q", want, got)
				}
			},
		},
		{
			name: "unknown keys pass through",
			directives: []string{
				`#NAME "x"`,
				`#SOURCE_CODE_PAGE "Cyrillic"`,
			},
			expect: func(t *testing.T, h *Header) {
				t.Helper()
				if want, got := "Cyrillic", h.Value("SOURCE_CODE_PAGE"); want != got {
					t.Fatalf("Value; want: %q, got: %q", want, got)
				}
				if want, got := 2, h.Len(); want != got {
					t.Fatalf("Len; want: %d, got: %d", want, got)
				}
			},
		},
		{
			name:       "empty header",
			directives: nil,
			err:        ErrMissingName,
		},
		{
			name: "name not first",
			directives: []string{
				`#INDEX_LANGUAGE "English"`,
				`#NAME "x"`,
			},
			err: ErrMissingName,
		},
		{
			name: "contents before index",
			directives: []string{
				`#NAME "x"`,
				`#CONTENTS_LANGUAGE "Russian"`,
				`#INDEX_LANGUAGE "English"`,
			},
			err: ErrDirectiveOrder,
		},
		{
			name: "malformed directive",
			directives: []string{
				`#NAME "x"`,
				`#1BAD "y"`,
			},
			err: ErrBadDirective,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			h, err := Parse(test.directives)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Parse; want error %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if test.expect != nil {
				test.expect(t, h)
			}
		})
	}
}

// TestNew tests that New reads only leading directive lines.
func TestNew(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		`#NAME "My Dictionary"`,
		`#INDEX_LANGUAGE "English"`,
		"",
		"cat",
		"\ta feline",
	}, "\n")

	h, err := New(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if want, got := "My Dictionary", h.Name(); want != got {
		t.Fatalf("Name; want: %q, got: %q", want, got)
	}
	if want, got := 2, h.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}
