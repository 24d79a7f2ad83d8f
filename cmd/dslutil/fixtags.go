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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	dsl "github.com/lingutil/go-dsl"
)

var fixTagsCommand = &cli.Command{
	Name:      "fix-tags",
	Usage:     "Escape stray square brackets",
	ArgsUsage: "FILE [OUT]",
	Description: "Rewrite a dictionary source escaping brackets that do not\n" +
		"form a balanced pair. The result is written to OUT, or to stdout\n" +
		"when OUT is omitted. Use only on files that otherwise check clean.",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return fmt.Errorf("%w: expected FILE [OUT] arguments", ErrFlagParse)
		}

		d, err := dsl.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDslutil, err)
		}

		var w io.Writer = c.App.Writer
		if c.NArg() == 2 {
			f, err := os.Create(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrDslutil, err)
			}
			defer f.Close()
			w = f
		}

		if _, err := d.FixTags(w); err != nil {
			return fmt.Errorf("%w: %v", ErrDslutil, err)
		}
		return nil
	},
}
