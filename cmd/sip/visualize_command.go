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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"astron.nl/go/sip"
	"astron.nl/go/sip/dot"
)

func newVisualizeCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var format string

	cmd := &cobra.Command{
		Use:   "visualize <file>",
		Short: "Draw the provenance graph of a SIP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			format = strings.ToLower(strings.TrimSpace(format))

			doc, err := sip.ReadFile(args[0])
			if err != nil {
				return err
			}
			if outPath == "-" {
				return dot.WriteDOT(cmd.OutOrStdout(), doc, logger)
			}
			if outPath == "" {
				outPath = args[0] + ".visualize." + format
			}
			if err := dot.RenderImage(cmd.Context(), doc, format, outPath, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", `Output file, or "-" for DOT on stdout (default <file>.visualize.<format>)`)
	cmd.Flags().StringVar(&format, "format", "svg", "Output format ("+strings.Join(dot.Formats, ", ")+")")
	return cmd
}
