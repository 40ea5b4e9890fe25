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

// Command sipconst generates the enumeration constants of package sip from
// the LTA SIP schema:
//
//	sipconst --schema $LOFARROOT/etc/lta/LTA-SIP.xsd --output constants.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"astron.nl/go/sip/internal/logging"
)

func newRootCommand() *cobra.Command {
	var schemaPath string
	var outPath string
	var pkg string

	cmd := &cobra.Command{
		Use:           "sipconst",
		Short:         "Generate Go constants from the enumerations of LTA-SIP.xsd",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{Output: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}

			file, err := os.Open(schemaPath)
			if err != nil {
				return err
			}
			defer file.Close()

			enums, err := parseEnums(file, logger)
			if err != nil {
				return err
			}
			src, err := generate(enums, pkg, filepath.Base(schemaPath))
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				return err
			}
			logger.Info("constants written",
				logging.Path(outPath), logging.Int("types", len(enums)))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "LTA-SIP.xsd", "Schema file")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&pkg, "package", "sip", "Package name of the generated file")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sipconst:", err)
		os.Exit(1)
	}
}
