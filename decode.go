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
	"errors"
	"fmt"
	"io"
	"os"
)

// documentXML is the wire form of a Document.
type documentXML struct {
	XMLName              xml.Name              `xml:"http://www.astron.nl/SIP-Lofar ltaSip"`
	GeneratorVersion     string                `xml:"sipGeneratorVersion"`
	Project              *Project              `xml:"project"`
	DataProduct          dataProductList       `xml:"dataProduct"`
	Observations         []*Observation        `xml:"observation"`
	PipelineRuns         pipelineRunList       `xml:"pipelineRun"`
	UnspecifiedProcesses []*UnspecifiedProcess `xml:"unspecifiedProcess"`
	RelatedDataProducts  dataProductList       `xml:"relatedDataProduct"`
	Parsets              []*Parset             `xml:"parset"`
}

var errNoProject = errors.New("no project")

// UnmarshalXML implements the xml.Unmarshaler interface.
func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var x documentXML
	err := dec.DecodeElement(&x, &start)
	if err != nil {
		return err
	}

	if x.Project == nil {
		return errNoProject
	}
	switch len(x.DataProduct) {
	case 0:
		return ErrNoDataProduct
	case 1:
		// pass
	default:
		return fmt.Errorf("%d described data products", len(x.DataProduct))
	}

	*d = Document{
		GeneratorVersion:     x.GeneratorVersion,
		Project:              *x.Project,
		DataProduct:          x.DataProduct[0],
		Observations:         x.Observations,
		PipelineRuns:         x.PipelineRuns,
		UnspecifiedProcesses: x.UnspecifiedProcesses,
		RelatedDataProducts:  x.RelatedDataProducts,
		Parsets:              x.Parsets,
	}
	ns, _ := splitDeclarations(start.Attr)
	resolveRaw(d, ns)
	return nil
}

// Read reads a SIP from r.
func Read(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	err := dec.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("sip: %w", err)
	}
	return doc, nil
}

// ReadFile reads a SIP from a file.
func ReadFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Parse decodes a SIP held in memory.
func Parse(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}
