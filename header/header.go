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

// Package header implements reading the #KEY directive header of a DSL
// dictionary source file.
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	// ErrMissingName indicates that the #NAME directive is missing or is
	// not the first directive.
	ErrMissingName = errors.New("missing #NAME directive")

	// ErrBadDirective indicates a directive line that could not be parsed.
	ErrBadDirective = errors.New("malformed directive")

	// ErrDirectiveOrder indicates that #CONTENTS_LANGUAGE precedes
	// #INDEX_LANGUAGE.
	ErrDirectiveOrder = errors.New("misordered directives")
)

// directiveRegex matches a "#KEY value" directive line. Values are usually
// double-quoted but some tools emit them bare.
var directiveRegex = regexp.MustCompile(`^#([A-Za-z_][A-Za-z_0-9]*)(?:\s+(.*?))?\s*$`)

// Header holds the header directives of a dictionary source.
type Header struct {
	metadata map[string]string

	// keys holds directive keys in the order they were seen.
	keys []string
}

// New returns a new Header read from the leading directive lines of r.
// Reading stops at the first non-directive line.
func New(r io.Reader) (*Header, error) {
	var directives []string
	s := bufio.NewScanner(bufio.NewReader(r))
	for s.Scan() {
		if !strings.HasPrefix(s.Text(), "#") {
			break
		}
		directives = append(directives, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return Parse(directives)
}

// Parse parses leading #KEY directive lines into a Header. The #NAME
// directive is required and must come first; #INDEX_LANGUAGE and
// #CONTENTS_LANGUAGE follow it.
func Parse(directives []string) (*Header, error) {
	h := &Header{
		metadata: map[string]string{},
	}

	for i, line := range directives {
		m := directiveRegex.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadDirective, line)
		}
		key := m[1]
		value := strings.Trim(m[2], `"`)
		if i == 0 && key != "NAME" {
			return nil, fmt.Errorf("%w: first directive is #%v", ErrMissingName, key)
		}
		if key == "CONTENTS_LANGUAGE" {
			if _, ok := h.metadata["INDEX_LANGUAGE"]; !ok {
				return nil, fmt.Errorf("%w: #CONTENTS_LANGUAGE before #INDEX_LANGUAGE", ErrDirectiveOrder)
			}
		}

		h.metadata[key] = value
		h.keys = append(h.keys, key)
	}

	if len(h.keys) == 0 {
		return nil, ErrMissingName
	}

	return h, nil
}

// Name returns the dictionary name.
func (h *Header) Name() string {
	return h.metadata["NAME"]
}

// IndexLanguage returns the headword language.
func (h *Header) IndexLanguage() string {
	return h.metadata["INDEX_LANGUAGE"]
}

// ContentsLanguage returns the definition body language.
func (h *Header) ContentsLanguage() string {
	return h.metadata["CONTENTS_LANGUAGE"]
}

// Value returns the value for an arbitrary directive key.
func (h *Header) Value(key string) string {
	return h.metadata[key]
}

// Keys returns the directive keys in the order they appear in the file.
func (h *Header) Keys() []string {
	return h.keys
}

// Len returns the number of directive lines in the header.
func (h *Header) Len() int {
	return len(h.keys)
}
