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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	dsl "github.com/lingutil/go-dsl"
	dslcheck "github.com/lingutil/go-dsl/check"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Validate a dictionary source file",
	ArgsUsage: "FILE",
	Description: "Check a .dsl or .dsl.dz file for structural errors: entity\n" +
		"ordering, indentation, bracket balance, tag pairing, and duplicate\n" +
		"headwords.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "single-keyword",
			Usage: "require every headword to have its own immediate body",
		},
		&cli.BoolFlag{
			Name:  "entity-tags",
			Usage: "balance brackets across an entity rather than per line",
		},
		&cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "compare headwords case-sensitively for duplicates",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print diagnostics as JSON",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected FILE argument", ErrFlagParse)
		}

		d, err := dsl.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDslutil, err)
		}

		opts := &dslcheck.Options{
			SynonymGrouping:      !c.Bool("single-keyword"),
			TagScope:             dslcheck.TagScopeLine,
			KeywordCaseSensitive: c.Bool("case-sensitive"),
		}
		if c.Bool("entity-tags") {
			opts.TagScope = dslcheck.TagScopeEntity
		}

		diags := d.Validate(opts)

		if c.Bool("json") {
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(diags); err != nil {
				return fmt.Errorf("%w: %v", ErrDslutil, err)
			}
		} else if len(diags) > 0 {
			tbl := table.New("LINE", "SEVERITY", "KIND", "MESSAGE").WithWriter(c.App.Writer)
			for _, dg := range diags {
				tbl.AddRow(lineRange(dg), dg.Severity(), dg.Kind, dg.Msg)
			}
			tbl.Print()
		}

		errs := 0
		for _, dg := range diags {
			if dg.Severity() == dslcheck.Error {
				errs++
			}
		}
		if errs > 0 {
			return cli.Exit(fmt.Sprintf("%d error(s) found", errs), ExitCodeCheckFailed)
		}
		return nil
	},
}

// lineRange formats a diagnostic's line or line range for table output.
func lineRange(d *dslcheck.Diagnostic) string {
	if d.EndLine > d.Line {
		return strconv.Itoa(d.Line) + "-" + strconv.Itoa(d.EndLine)
	}
	return strconv.Itoa(d.Line)
}
