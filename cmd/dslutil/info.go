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
	"os"

	"github.com/urfave/cli/v2"

	dsl "github.com/lingutil/go-dsl"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Print dictionary header information",
	ArgsUsage: "PATH",
	Description: "Print the header directives of every .dsl and .dsl.dz file\n" +
		"under a path.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected PATH argument", ErrFlagParse)
		}

		dicts, errs := dsl.OpenAll(c.Args().Get(0))
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, d := range dicts {
			h, err := d.Header()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", d.Path(), err)
				continue
			}
			fmt.Fprintf(c.App.Writer, "Name:              %s\n", h.Name())
			fmt.Fprintf(c.App.Writer, "Index language:    %s\n", h.IndexLanguage())
			fmt.Fprintf(c.App.Writer, "Contents language: %s\n", h.ContentsLanguage())
			fmt.Fprintf(c.App.Writer, "Lines:             %d\n", d.Len())
			fmt.Fprintln(c.App.Writer)
		}

		if len(errs) > 0 {
			return cli.Exit("", ExitCodeUnknownError)
		}
		return nil
	},
}
