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
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MarshalXML implements the xml.Marshaler interface.  The name in start is
// ignored; SIPs are always written as a sip:ltaSip element.
func (d *Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if d.DataProduct == nil {
		return ErrNoDataProduct
	}
	if d.Project.Code == "" {
		return errNoProject
	}

	x := &documentXML{
		GeneratorVersion:     d.GeneratorVersion,
		Project:              &d.Project,
		DataProduct:          dataProductList{d.DataProduct},
		Observations:         d.Observations,
		PipelineRuns:         d.PipelineRuns,
		UnspecifiedProcesses: d.UnspecifiedProcesses,
		RelatedDataProducts:  d.RelatedDataProducts,
		Parsets:              d.Parsets,
	}
	root := xml.StartElement{
		Name: prefixedName(Namespace, "ltaSip"),
		Attr: rootAttrs(),
	}
	return e.EncodeElement(x, root)
}

// Write writes the SIP to w, as an indented XML document.
func (d *Document) Write(w io.Writer) error {
	_, err := io.WriteString(w, xml.Header)
	if err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err = enc.Encode(d)
	if err != nil {
		return err
	}
	err = enc.Close()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "\n")
	return err
}

// Bytes returns the XML representation of the SIP.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := d.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the SIP to a file.  A leading "~" in the file name is
// replaced by the home directory of the current user.
func (d *Document) WriteFile(filename string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	filename, err = expandHome(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
