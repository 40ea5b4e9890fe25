// astron.nl/go/sip - LOFAR LTA Submission Information Packages in Go
// Copyright (C) 2026  ASTRON (Netherlands Institute for Radio Astronomy)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"astron.nl/go/sip"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that the provenance graphs of SIPs are complete",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bad := 0
			for _, path := range args {
				doc, err := sip.ReadFile(path)
				if err != nil {
					return err
				}

				var problems []*sip.MissingReferenceError
				g := sip.NewGraph(doc)
				if all {
					problems = g.Problems()
				} else if err := g.Check(); err != nil {
					var missing *sip.MissingReferenceError
					if !errors.As(err, &missing) {
						return err
					}
					problems = []*sip.MissingReferenceError{missing}
				}

				if len(problems) == 0 {
					fmt.Fprintf(out, "%s: consistent\n", path)
					continue
				}
				bad++
				for _, p := range problems {
					fmt.Fprintf(out, "%s: %v\n", path, p)
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d SIPs are inconsistent", bad, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every missing reference instead of the first")
	return cmd
}
