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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIDServiceHost is used when the credentials file names no host.
const DefaultIDServiceHost = "lofar-ingest.target.rug.nl:9443"

// Credentials are the login details for the LTA ID service.
type Credentials struct {
	User     string
	Password string
	Host     string
}

// LoadCredentials reads a siplibrc file, which holds "user=", "password="
// and "host=" lines.  If the file does not exist, a template with empty
// values is written to path and empty credentials are returned.
func LoadCredentials(path string) (*Credentials, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	creds := &Credentials{Host: DefaultIDServiceHost}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeCredentialsTemplate(path); err != nil {
			return nil, err
		}
		return creds, nil
	} else if err != nil {
		return nil, fmt.Errorf("open credentials: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "user":
			creds.User = value
		case "password":
			creds.Password = value
		case "host":
			if value != "" {
				creds.Host = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", path, err)
	}
	return creds, nil
}

func writeCredentialsTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	err := os.WriteFile(path, []byte("user=\npassword=\nhost=\n"), 0o600)
	if err != nil {
		return fmt.Errorf("write credentials template: %w", err)
	}
	return nil
}
