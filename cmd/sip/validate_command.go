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

	"astron.nl/go/sip/internal/logging"
	"astron.nl/go/sip/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate SIPs against the LTA schema and check their consistency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if schemaPath == "" {
				schemaPath = ctx.configValue().Schema.Path
			}
			v, err := validate.New(schemaPath, validate.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Schema: %s\n", v.SchemaPath())

			var rows [][]string
			var failed []*validate.Report
			for _, path := range args {
				report, err := validate.Check(cmd.Context(), v, path)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					path,
					status(report.SchemaErr, colorize),
					status(report.ConsistencyErr, colorize),
				})
				if !report.OK() {
					failed = append(failed, report)
				}
			}
			fmt.Fprintln(out, renderTable([]string{"File", "Schema", "Consistency"}, rows))

			for _, report := range failed {
				fmt.Fprintf(out, "\n%s:\n", report.Path)
				var schemaErr *validate.SchemaError
				if errors.As(report.SchemaErr, &schemaErr) {
					for _, v := range schemaErr.Violations {
						fmt.Fprintf(out, "  %s\n", v)
					}
				} else if report.SchemaErr != nil {
					fmt.Fprintf(out, "  %v\n", report.SchemaErr)
				}
				if report.ConsistencyErr != nil {
					fmt.Fprintf(out, "  %v\n", report.ConsistencyErr)
				}
				logger.Debug("validation failed", logging.Path(report.Path))
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d SIPs are not valid", len(failed), len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Schema file (default from configuration)")
	return cmd
}
