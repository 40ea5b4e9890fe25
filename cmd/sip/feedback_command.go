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
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"astron.nl/go/sip"
	"astron.nl/go/sip/feedback"
	"astron.nl/go/sip/idservice"
	"astron.nl/go/sip/internal/logging"
)

func newFeedbackCommand(ctx *commandContext) *cobra.Command {
	var prefix string
	var outDir string
	var source string
	var offline bool

	cmd := &cobra.Command{
		Use:   "feedback <file>",
		Short: "Create one SIP per data product listed in observation feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			cfg := ctx.configValue()

			stations, err := sip.LoadStationTable(cfg.Stations.CoordinatesPath)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			fb, err := feedback.Parse(file, logger)
			file.Close()
			if err != nil {
				return err
			}

			run := func(issuer sip.IDIssuer) error {
				opts := &feedback.Options{
					Prefix:   prefix,
					Source:   source,
					Issuer:   issuer,
					Stations: stations,
				}
				callCtx, cancel := ctx.withTimeout(cmd.Context())
				defer cancel()
				sips, err := fb.DataProductSIPs(callCtx, opts)
				if err != nil {
					return err
				}
				if len(sips) == 0 {
					return fmt.Errorf("no data products found in %s", args[0])
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				for _, name := range sortedKeys(sips) {
					path, err := outputPath(outDir, name)
					if err != nil {
						return err
					}
					if err := sips[name].WriteFile(path); err != nil {
						return err
					}
					logger.Info("SIP written", logging.Path(path))
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
				return nil
			}

			if offline {
				return run(sip.NewLocalIssuer())
			}
			return ctx.withIDService(logger, func(c *idservice.Client) error {
				return run(c)
			})
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", feedback.DefaultDataProductPrefix, "Key prefix of the data product entries")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for the generated SIPs")
	cmd.Flags().StringVar(&source, "source", feedback.DefaultSource, "Identifier source for new identifiers")
	cmd.Flags().BoolVar(&offline, "offline", false, "Create identifiers locally instead of asking the LTA")
	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// outputPath returns the file written for the data product file name
// name.  Only the last element of name is used, so that a file name taken
// from a feedback file cannot point outside of dir.
func outputPath(dir, name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(name))
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("invalid data product file name %q", name)
	}
	return filepath.Join(dir, base+".xml"), nil
}
