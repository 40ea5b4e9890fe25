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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"astron.nl/go/sip/idservice"
	"astron.nl/go/sip/internal/config"
	"astron.nl/go/sip/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		def := config.Default()
		return &def
	}
	return cfg
}

// logger returns a logger writing to the error stream of cmd.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg := c.configValue()
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
}

// withTimeout bounds calls to the identifier service.
func (c *commandContext) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	seconds := c.configValue().IDService.TimeoutSeconds
	if seconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
}

// withIDService connects to the identifier service and calls fn.
func (c *commandContext) withIDService(logger *slog.Logger, fn func(*idservice.Client) error) error {
	cfg := c.configValue()

	url := cfg.IDService.URL
	if url == "" {
		creds, err := config.LoadCredentials(cfg.IDService.CredentialsFile)
		if err != nil {
			return err
		}
		if creds.User == "" {
			return fmt.Errorf("no user name in %s; add user= and password= lines", cfg.IDService.CredentialsFile)
		}
		url = idservice.URLFromCredentials(creds.User, creds.Password, creds.Host)
	}

	var cache *idservice.Cache
	if cfg.IDService.CachePath != "" {
		var err error
		cache, err = idservice.OpenCache(cfg.IDService.CachePath)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	client, err := idservice.New(idservice.Options{URL: url, Cache: cache, Logger: logger})
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
