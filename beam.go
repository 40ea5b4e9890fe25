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
	"encoding/xml"
)

// ArrayBeam is implemented by all tied-array beam types.
type ArrayBeam interface {
	// Beam returns the fields common to all beams.
	Beam() *ArrayBeamInfo

	// SchemaType returns the name of the schema type of the beam.
	SchemaType() string
}

// ArrayBeamInfo holds the fields shared by all array beams.
type ArrayBeamInfo struct {
	SubArrayPointingIdentifier Identifier        `xml:"subArrayPointingIdentifier"`
	BeamNumber                 int               `xml:"beamNumber"`
	DispersionMeasure          float64           `xml:"dispersionMeasure"`
	NumberOfSubbands           int               `xml:"numberOfSubbands"`
	StationSubbands            IntList           `xml:"stationSubbands"`
	SamplingTime               Time              `xml:"samplingTime"`
	CentralFrequencies         ListOfFrequencies `xml:"centralFrequencies"`
	ChannelWidth               Frequency         `xml:"channelWidth"`
	ChannelsPerSubband         int               `xml:"channelsPerSubband"`
	Stokes                     []Stokes          `xml:"stokes"`
}

// Beam implements the ArrayBeam interface.
func (b *ArrayBeamInfo) Beam() *ArrayBeamInfo {
	return b
}

// SimpleArrayBeam is an array beam without type-specific fields.
type SimpleArrayBeam struct {
	ArrayBeamInfo
}

func (*SimpleArrayBeam) SchemaType() string { return "ArrayBeam" }

// CoherentStokesBeam is a tied-array beam formed from the coherent sum of
// the stations.
type CoherentStokesBeam struct {
	ArrayBeamInfo
	Pointing Pointing `xml:"pointing"`
	Offset   Pointing `xml:"offset"`
}

func (*CoherentStokesBeam) SchemaType() string { return "CoherentStokesBeam" }

// IncoherentStokesBeam is formed from the incoherent sum of the stations.
type IncoherentStokesBeam struct {
	ArrayBeamInfo
}

func (*IncoherentStokesBeam) SchemaType() string { return "IncoherentStokesBeam" }

// FlysEyeBeam is the beam of a single station.
type FlysEyeBeam struct {
	ArrayBeamInfo
	Station Station `xml:"station"`
}

func (*FlysEyeBeam) SchemaType() string { return "FlysEyeBeam" }

var arrayBeams = &family[ArrayBeam]{
	base: "ArrayBeam",
	types: map[string]func() ArrayBeam{
		"ArrayBeam":            func() ArrayBeam { return &SimpleArrayBeam{} },
		"CoherentStokesBeam":   func() ArrayBeam { return &CoherentStokesBeam{} },
		"IncoherentStokesBeam": func() ArrayBeam { return &IncoherentStokesBeam{} },
		"FlysEyeBeam":          func() ArrayBeam { return &FlysEyeBeam{} },
	},
}

// ArrayBeamList is a sequence of array beam elements.
type ArrayBeamList []ArrayBeam

func (l ArrayBeamList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	for _, b := range l {
		err := arrayBeams.encode(e, start, b)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *ArrayBeamList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	b, err := arrayBeams.decode(d, start)
	if err != nil {
		return err
	}
	*l = append(*l, b)
	return nil
}

// ArrayBeams is the list of beams of a beam formed data product.  It is
// written as a "beams" element with one "arrayBeam" child per beam.
type ArrayBeams []ArrayBeam

func (l ArrayBeams) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}
	child := xml.StartElement{Name: xml.Name{Local: "arrayBeam"}}
	err = ArrayBeamList(l).MarshalXML(e, child)
	if err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func (l *ArrayBeams) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var wrapper struct {
		Beams ArrayBeamList `xml:"arrayBeam"`
	}
	err := d.DecodeElement(&wrapper, &start)
	if err != nil {
		return err
	}
	*l = ArrayBeams(wrapper.Beams)
	return nil
}
