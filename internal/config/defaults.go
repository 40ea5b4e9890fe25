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
	"os"
	"path/filepath"
)

const (
	defaultConfigPath      = "~/.config/sip/config.toml"
	defaultCredentialsFile = "~/.siplibrc"
	defaultCachePath       = "~/.cache/sip/identifiers.db"
	defaultTimeoutSeconds  = 60
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLOFARRoot       = "/opt/lofar"
)

// LOFARRoot returns the LOFAR installation directory, taken from the
// LOFARROOT environment variable.
func LOFARRoot() string {
	if root := os.Getenv("LOFARROOT"); root != "" {
		return root
	}
	return defaultLOFARRoot
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	root := LOFARRoot()
	return Config{
		Schema: Schema{
			Path: filepath.Join(root, "etc", "lta", "LTA-SIP.xsd"),
		},
		IDService: IDService{
			CredentialsFile: defaultCredentialsFile,
			CachePath:       defaultCachePath,
			TimeoutSeconds:  defaultTimeoutSeconds,
		},
		Stations: Stations{
			CoordinatesPath: filepath.Join(root, "etc", "lta", "station_coordinates.conf"),
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
