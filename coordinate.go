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

import "encoding/xml"

// Coordinate is implemented by the coordinate types of pixel maps.
type Coordinate interface {
	SchemaType() string
}

// LinearAxis is an image axis with regularly spaced values.
type LinearAxis struct {
	Number         int     `xml:"number"`
	Name           string  `xml:"name"`
	Units          string  `xml:"units"`
	Length         int     `xml:"length"`
	Increment      float64 `xml:"increment"`
	ReferencePixel float64 `xml:"referencePixel"`
	ReferenceValue float64 `xml:"referenceValue"`
}

// TabularAxis is an image axis whose values are listed explicitly.
type TabularAxis struct {
	Number int    `xml:"number"`
	Name   string `xml:"name"`
	Units  string `xml:"units"`
	Length int    `xml:"length"`
}

// SpectralQuantity names the quantity along a spectral axis.
type SpectralQuantity struct {
	Type  SpectralQuantityType `xml:"type,attr"`
	Value float64              `xml:",chardata"`
}

// SpectralCoordinate is a frequency-like coordinate.  Exactly one of
// LinearAxis and TabularAxis must be set.
type SpectralCoordinate struct {
	LinearAxis  *LinearAxis      `xml:"spectralLinearAxis,omitempty"`
	TabularAxis *TabularAxis     `xml:"spectralTabularAxis,omitempty"`
	Quantity    SpectralQuantity `xml:"spectralQuantity"`
}

func (*SpectralCoordinate) SchemaType() string { return "SpectralCoordinate" }

// TimeCoordinate is a time coordinate.  Exactly one of LinearAxis and
// TabularAxis must be set.
type TimeCoordinate struct {
	LinearAxis  *LinearAxis  `xml:"timeLinearAxis,omitempty"`
	TabularAxis *TabularAxis `xml:"timeTabularAxis,omitempty"`
	Equinox     EquinoxType  `xml:"equinox"`
}

func (*TimeCoordinate) SchemaType() string { return "TimeCoordinate" }

// PolarizationCoordinate lists the polarizations along an image axis.
type PolarizationCoordinate struct {
	TabularAxis   TabularAxis        `xml:"polarizationTabularAxis"`
	Polarizations []PolarizationType `xml:"polarization"`
}

func (*PolarizationCoordinate) SchemaType() string { return "PolarizationCoordinate" }

// DirectionCoordinate maps two image axes onto the sky.
type DirectionCoordinate struct {
	// LinearAxes holds exactly two axes.
	LinearAxes []LinearAxis `xml:"directionLinearAxis"`

	PC00                 float64     `xml:"PC0_0"`
	PC01                 float64     `xml:"PC0_1"`
	PC10                 float64     `xml:"PC1_0"`
	PC11                 float64     `xml:"PC1_1"`
	Equinox              EquinoxType `xml:"equinox"`
	RaDecSystem          RaDecSystem `xml:"raDecSystem"`
	Projection           string      `xml:"projection"`
	ProjectionParameters DoubleList  `xml:"projectionParameters"`
	LongitudePole        Angle       `xml:"longitudePole"`
	LatitudePole         Angle       `xml:"latitudePole"`
}

func (*DirectionCoordinate) SchemaType() string { return "DirectionCoordinate" }

var coordinates = &family[Coordinate]{
	types: map[string]func() Coordinate{
		"SpectralCoordinate":     func() Coordinate { return &SpectralCoordinate{} },
		"TimeCoordinate":         func() Coordinate { return &TimeCoordinate{} },
		"PolarizationCoordinate": func() Coordinate { return &PolarizationCoordinate{} },
		"DirectionCoordinate":    func() Coordinate { return &DirectionCoordinate{} },
	},
}

// CoordinateList is the sequence of coordinate elements of a pixel map.
type CoordinateList []Coordinate

func (l CoordinateList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	for _, c := range l {
		err := coordinates.encode(e, start, c)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *CoordinateList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	c, err := coordinates.decode(d, start)
	if err != nil {
		return err
	}
	*l = append(*l, c)
	return nil
}
