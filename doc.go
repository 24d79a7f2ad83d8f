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

// Package dsl implements validation and repair of Lingvo DSL dictionary
// source files, the plain-text format also consumed by GoldenDict.
//
// A DSL source file contains:
//  1. A header of #KEY directive lines (#NAME, #INDEX_LANGUAGE,
//     #CONTENTS_LANGUAGE, ...).
//  2. Dictionary entries: one or more unindented headword lines followed
//     by one or more tab-indented body lines. Body text carries bracketed
//     markup tags such as [b]...[/b] and [m1]...[/m].
//
// Files are conventionally encoded as UTF-16LE with a byte order mark and
// may be compressed with dictzip (.dsl.dz).
//
// Validation reports structural problems (entity ordering, indentation,
// bracket balance, tag pairing, duplicate headwords) as an ordered list of
// diagnostics without ever aborting on malformed lines. Repair rewrites the
// line stream escaping brackets that do not form a balanced pair.
package dsl
