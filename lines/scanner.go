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

package lines

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineSize is the maximum supported line length. Definition bodies can
// carry very long lines.
const maxLineSize = 1024 * 1024

// Scanner scans a line stream from start to end, classifying each line as
// it is read.
type Scanner struct {
	r io.ReadCloser
	s *bufio.Scanner

	num  int
	line *Line
}

// NewScanner returns a new line scanner reading from r. The Scanner assumes
// ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Scanner{
		r: r,
		s: s,
	}
}

// Scan advances the scanner to the next line. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.num++
	s.line = Classify(s.num, s.s.Text())
	return true
}

// Line returns the current classified line.
func (s *Scanner) Line() *Line {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing line stream: %w", err)
	}
	return nil
}
