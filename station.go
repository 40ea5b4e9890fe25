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

package sip

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// StationTable holds the antenna field positions of the LOFAR stations.
type StationTable struct {
	fields []fieldPosition
}

type fieldPosition struct {
	name    string // for example "CS001_HBA0"
	system  CoordinateSystem
	x, y, z float64
}

// LoadStationTable reads a station coordinates file.
func LoadStationTable(filename string) (*StationTable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ParseStationTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// ParseStationTable reads station coordinates from r.  Each non-empty line
// describes one antenna field, in the form
//
//	name="CS001_HBA0",coordinate_system="ITRF2005",x=3826923.9,y=460915.4,z=5064643.4
//
// Lines starting with "#" are ignored.
func ParseStationTable(r io.Reader) (*StationTable, error) {
	t := &StationTable{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pos, err := parseFieldPosition(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.fields = append(t.fields, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseFieldPosition(line string) (fieldPosition, error) {
	var pos fieldPosition
	var seen [5]bool
	for _, item := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return pos, fmt.Errorf("malformed entry %q", strings.TrimSpace(item))
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		var err error
		switch key {
		case "name":
			pos.name = value
			seen[0] = true
		case "coordinate_system":
			pos.system = CoordinateSystem(value)
			seen[1] = true
		case "x":
			pos.x, err = strconv.ParseFloat(value, 64)
			seen[2] = true
		case "y":
			pos.y, err = strconv.ParseFloat(value, 64)
			seen[3] = true
		case "z":
			pos.z, err = strconv.ParseFloat(value, 64)
			seen[4] = true
		default:
			return pos, fmt.Errorf("unknown key %q", key)
		}
		if err != nil {
			return pos, fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}
	for i, key := range []string{"name", "coordinate_system", "x", "y", "z"} {
		if !seen[i] {
			return pos, fmt.Errorf("missing %s", key)
		}
	}
	return pos, nil
}

// Preconfigured returns the description of the named station, with the
// positions of the given antenna fields taken from the table.  One or two
// antenna fields must be given.  The antenna fields are listed in table
// order.
func (t *StationTable) Preconfigured(name string, fieldTypes ...AntennaFieldType) (Station, error) {
	if len(fieldTypes) == 0 || len(fieldTypes) > 2 {
		return Station{}, fmt.Errorf("station %s: need one or two antenna field types, got %d",
			name, len(fieldTypes))
	}

	var fields []AntennaField
	for _, pos := range t.fields {
		for _, ft := range fieldTypes {
			if pos.name != name+"_"+string(ft) || len(fields) == 2 {
				continue
			}
			fields = append(fields, AntennaField{
				Name:     ft,
				Location: CoordinatesXYZ(pos.system, pos.x, pos.y, pos.z),
			})
		}
	}
	if len(fields) == 0 {
		return Station{}, fmt.Errorf("station %s: no coordinates found for antenna fields %v",
			name, fieldTypes)
	}

	return Station{
		Name:          name,
		Type:          StationTypeOf(name),
		AntennaFields: fields,
	}, nil
}

// StationTypeOf returns the type of a station, derived from its name.
func StationTypeOf(name string) StationType {
	switch {
	case strings.HasPrefix(name, "CS"):
		return StationCore
	case strings.HasPrefix(name, "RS"):
		return StationRemote
	default:
		return StationInternational
	}
}
