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

// Package testutil creates DSL source file fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MakeDSLOptions are options for MakeTempDSL.
type MakeDSLOptions struct {
	// Ext is an optional file extension for the source file. Defaults to
	// ".dsl.dz" if DictZip is true. Otherwise ".dsl".
	Ext string

	// DictZip indicates that the file should be compressed with dictzip.
	DictZip bool

	// UTF16 indicates that the text should be encoded as UTF-16LE with a
	// byte order mark. Otherwise the file is written as UTF-8.
	UTF16 bool
}

func (o *MakeDSLOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".dsl.dz"
		}
	}
	return ".dsl"
}

// MakeTempDSL writes srcLines as a temporary dictionary source file using
// CRLF line terminators and returns its path. The file is removed when the
// test finishes.
func MakeTempDSL(t *testing.T, srcLines []string, opts *MakeDSLOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDSLOptions{}
	}

	b := []byte(strings.Join(srcLines, "\r\n") + "\r\n")

	if opts.UTF16 {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		encoded, _, err := transform.Bytes(enc, b)
		if err != nil {
			t.Fatal(err)
		}
		b = encoded
	}

	path := filepath.Join(t.TempDir(), "dict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()

		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
	} else {
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
