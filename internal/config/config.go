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

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Schema locates the LTA SIP schema.
type Schema struct {
	Path string `toml:"path"`
}

// IDService contains the settings of the LTA ID service client.
type IDService struct {
	// URL overrides the URL built from the credentials file.
	URL             string `toml:"url"`
	CredentialsFile string `toml:"credentials_file"`
	CachePath       string `toml:"cache_path"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

// Stations locates the station coordinates table.
type Stations struct {
	CoordinatesPath string `toml:"coordinates_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config holds all settings of the sip command.
type Config struct {
	Schema    Schema    `toml:"schema"`
	IDService IDService `toml:"idservice"`
	Stations  Stations  `toml:"stations"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the default configuration
// file.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads the configuration file at path, or the default configuration
// file if path is empty.  A missing file is not an error: the defaults are
// returned and exists is false.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	c := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := c.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}
	return &c, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return expanded, false, nil
	case err != nil:
		return "", false, fmt.Errorf("stat config: %w", err)
	case info.IsDir():
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Schema.Path, err = expandPath(strings.TrimSpace(c.Schema.Path)); err != nil {
		return fmt.Errorf("schema.path: %w", err)
	}
	if c.IDService.CredentialsFile, err = expandPath(strings.TrimSpace(c.IDService.CredentialsFile)); err != nil {
		return fmt.Errorf("idservice.credentials_file: %w", err)
	}
	if c.IDService.CachePath, err = expandPath(strings.TrimSpace(c.IDService.CachePath)); err != nil {
		return fmt.Errorf("idservice.cache_path: %w", err)
	}
	if c.Stations.CoordinatesPath, err = expandPath(strings.TrimSpace(c.Stations.CoordinatesPath)); err != nil {
		return fmt.Errorf("stations.coordinates_path: %w", err)
	}
	c.IDService.URL = strings.TrimSpace(c.IDService.URL)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// Validate checks the values which cannot be fixed up by normalization.
func (c *Config) Validate() error {
	if c.IDService.TimeoutSeconds < 0 {
		return fmt.Errorf("idservice.timeout_seconds: must not be negative, got %d", c.IDService.TimeoutSeconds)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// CreateSample writes the commented sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath applies the path expansion rules of the configuration file.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
