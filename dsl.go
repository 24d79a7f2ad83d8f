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

package dsl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lingutil/go-dsl/check"
	"github.com/lingutil/go-dsl/header"
	"github.com/lingutil/go-dsl/lines"
	"github.com/lingutil/go-dsl/repair"
)

// ErrBadExtension indicates a path that is not a .dsl or .dsl.dz file.
var ErrBadExtension = errors.New("bad extension")

// Dsl is an opened dictionary source. The file is read and decoded eagerly
// by Open; a Dsl holds no open file handles.
type Dsl struct {
	path string

	// raw holds every decoded line of the file in order.
	raw []string

	hdr       *header.Header
	hdrErr    error
	hdrParsed bool
}

// isDslPath reports whether path has a recognized source file extension.
func isDslPath(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(name, ".dsl") || strings.HasSuffix(name, ".dsl.dz")
}

// OpenAll opens all dictionary sources under a directory. This function
// will return all successfully opened sources along with any errors that
// occurred.
func OpenAll(path string) ([]*Dsl, []error) {
	var dicts []*Dsl
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && isDslPath(info.Name()) {
			d, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens a dictionary source from the given .dsl or .dsl.dz file path,
// decompressing and decoding it into memory.
func Open(path string) (*Dsl, error) {
	if !isDslPath(path) {
		return nil, fmt.Errorf("%w: %v", ErrBadExtension, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	// DSL sources are UTF-16LE by convention but UTF-8 also occurs in the
	// wild. A byte order mark selects the encoding; text without one is
	// assumed to be UTF-8.
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	d := &Dsl{path: path}
	s := lines.NewScanner(io.NopCloser(r))
	for s.Scan() {
		d.raw = append(d.raw, s.Line().Text)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	return d, nil
}

// Path returns the path the source was opened from.
func (d *Dsl) Path() string {
	return d.path
}

// Len returns the number of lines in the source.
func (d *Dsl) Len() int {
	return len(d.raw)
}

// Header returns the source's parsed header directives. The header is
// parsed on first use.
func (d *Dsl) Header() (*header.Header, error) {
	if !d.hdrParsed {
		var directives []string
		for _, text := range d.raw {
			if !strings.HasPrefix(text, "#") {
				break
			}
			directives = append(directives, text)
		}
		d.hdr, d.hdrErr = header.Parse(directives)
		d.hdrParsed = true
	}
	return d.hdr, d.hdrErr
}

// Validate runs all structural checks over the source and returns the
// findings ordered by line number. A nil opts uses check.DefaultOptions.
func (d *Dsl) Validate(opts *check.Options) []*check.Diagnostic {
	v := check.New(opts)
	for i, text := range d.raw {
		v.Next(lines.Classify(i+1, text))
	}
	return v.Finish()
}

// FixTags writes the source to w with stray brackets escaped and returns
// the number of lines written. The output is UTF-8 with one line per input
// line regardless of the input encoding.
func (d *Dsl) FixTags(w io.Writer) (int, error) {
	n := 0
	for i, text := range d.raw {
		l := lines.Classify(i+1, text)
		out := l.Text
		if l.Kind != lines.Comment && l.Kind != lines.Directive {
			out = repair.Line(out)
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return n, fmt.Errorf("writing line %d: %w", l.Num, err)
		}
		n++
	}
	return n, nil
}
