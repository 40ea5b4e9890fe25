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
	"time"

	"github.com/spf13/cobra"

	"astron.nl/go/sip/idservice"
)

func newIDCommand(ctx *commandContext) *cobra.Command {
	idCmd := &cobra.Command{
		Use:   "id",
		Short: "Query the LTA identifier service",
	}

	idCmd.AddCommand(newIDCreateCommand(ctx))
	idCmd.AddCommand(newIDLookupCommand(ctx))
	idCmd.AddCommand(newIDSIPCommand(ctx))
	idCmd.AddCommand(newIDDataProductsCommand(ctx))
	idCmd.AddCommand(newIDCacheCommand(ctx))

	return idCmd
}

// idRunner returns a RunE function which calls fn with a connected client.
func idRunner(ctx *commandContext, fn func(cmd *cobra.Command, c *idservice.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := ctx.logger(cmd)
		if err != nil {
			return err
		}
		return ctx.withIDService(logger, func(c *idservice.Client) error {
			return fn(cmd, c, args)
		})
	}
}

func newIDCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <source> [label]",
		Short: "Create a new unique identifier",
		Args:  cobra.RangeArgs(1, 2),
		RunE: idRunner(ctx, func(cmd *cobra.Command, c *idservice.Client, args []string) error {
			label := ""
			if len(args) > 1 {
				label = args[1]
			}
			callCtx, cancel := ctx.withTimeout(cmd.Context())
			defer cancel()
			id, err := c.CreateID(callCtx, args[0], label)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		}),
	}
}

func newIDLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <source> <label>",
		Short: "Look up the identifier registered for a label",
		Args:  cobra.ExactArgs(2),
		RunE: idRunner(ctx, func(cmd *cobra.Command, c *idservice.Client, args []string) error {
			callCtx, cancel := ctx.withTimeout(cmd.Context())
			defer cancel()
			id, err := c.LookupID(callCtx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		}),
	}
}

func newIDSIPCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sip <project> <data-product-id>",
		Short: "Print the archived SIP of a data product",
		Args:  cobra.ExactArgs(2),
		RunE: idRunner(ctx, func(cmd *cobra.Command, c *idservice.Client, args []string) error {
			callCtx, cancel := ctx.withTimeout(cmd.Context())
			defer cancel()
			body, err := c.GetSIP(callCtx, args[0], args[1])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		}),
	}
}

func newIDDataProductsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dataproducts <project> <sas-id>",
		Short: "List the data products created by an observation or pipeline",
		Args:  cobra.ExactArgs(2),
		RunE: idRunner(ctx, func(cmd *cobra.Command, c *idservice.Client, args []string) error {
			callCtx, cancel := ctx.withTimeout(cmd.Context())
			defer cancel()
			ids, err := c.DataProductIDs(callCtx, args[0], args[1])
			if err != nil {
				return err
			}
			if len(ids) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, "\n"))
			}
			return nil
		}),
	}
}

func newIDCacheCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "List the identifiers in the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.configValue().IDService.CachePath
			if path == "" {
				return fmt.Errorf("no identifier cache configured; set idservice.cache_path")
			}
			cache, err := idservice.OpenCache(path)
			if err != nil {
				return err
			}
			defer cache.Close()

			entries, err := cache.Entries(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Source, e.Label, e.Identifier, e.CreatedAt.Format(time.DateTime)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache: %s\n", cache.Path())
			fmt.Fprintln(out, renderTable([]string{"Source", "Label", "Identifier", "Created"}, rows))
			return nil
		},
	}
}
