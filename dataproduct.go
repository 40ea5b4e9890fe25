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

// DataProduct is implemented by all data product types.  Use a type switch
// to access the fields specific to a product type.
type DataProduct interface {
	// Info returns the fields common to all data products.
	Info() *DataProductInfo

	// SchemaType returns the name of the schema type of the product.
	SchemaType() string
}

// DataProductInfo holds the fields shared by all data products.
type DataProductInfo struct {
	Type              DataProductType `xml:"dataProductType"`
	Identifier        Identifier      `xml:"dataProductIdentifier"`
	StorageTicket     string          `xml:"storageTicket,omitempty"`
	Size              int64           `xml:"size"`
	Checksums         []Checksum      `xml:"checksum"`
	FileName          string          `xml:"fileName"`
	FileFormat        FileFormat      `xml:"fileFormat"`
	ProcessIdentifier Identifier      `xml:"processIdentifier"`
}

// Info implements the DataProduct interface.
func (dp *DataProductInfo) Info() *DataProductInfo {
	return dp
}

// Checksum is the checksum of a data product file.
type Checksum struct {
	Algorithm ChecksumAlgorithm `xml:"algorithm"`
	Value     string            `xml:"value"`
}

// Checksums returns the checksum list for a file.  Empty arguments are
// left out.
func Checksums(md5, adler32 string) []Checksum {
	var res []Checksum
	if md5 != "" {
		res = append(res, Checksum{Algorithm: ChecksumAlgorithmMD5, Value: md5})
	}
	if adler32 != "" {
		res = append(res, Checksum{Algorithm: ChecksumAlgorithmAdler32, Value: adler32})
	}
	return res
}

// SimpleDataProduct is a data product without type-specific fields.
type SimpleDataProduct struct {
	DataProductInfo
}

func (*SimpleDataProduct) SchemaType() string { return "DataProduct" }

// SkyModelDataProduct describes a sky model.
type SkyModelDataProduct struct {
	DataProductInfo
}

func (*SkyModelDataProduct) SchemaType() string { return "SkyModelDataProduct" }

// GenericDataProduct is a data product of a type not otherwise covered.
type GenericDataProduct struct {
	DataProductInfo
}

func (*GenericDataProduct) SchemaType() string { return "GenericDataProduct" }

// UnspecifiedDataProduct is a data product of unknown content.
type UnspecifiedDataProduct struct {
	DataProductInfo
}

func (*UnspecifiedDataProduct) SchemaType() string { return "UnspecifiedDataProduct" }

// InstrumentModelDataProduct describes a calibration instrument model.
type InstrumentModelDataProduct struct {
	DataProductInfo
}

func (*InstrumentModelDataProduct) SchemaType() string { return "InstrumentModelDataProduct" }

// CorrelatedDataProduct holds the visibilities of one subband.
type CorrelatedDataProduct struct {
	DataProductInfo
	SubArrayPointingIdentifier Identifier `xml:"subArrayPointingIdentifier"`
	Subband                    int        `xml:"subband"`
	StationSubband             *int       `xml:"stationSubband,omitempty"`
	StartTime                  DateTime   `xml:"startTime"`
	Duration                   Duration   `xml:"duration"`
	IntegrationInterval        Time       `xml:"integrationInterval"`
	CentralFrequency           Frequency  `xml:"centralFrequency"`
	ChannelWidth               Frequency  `xml:"channelWidth"`
	ChannelsPerSubband         int        `xml:"channelsPerSubband"`
}

func (*CorrelatedDataProduct) SchemaType() string { return "CorrelatedDataProduct" }

// PixelMapDataProduct is an image with generic coordinate axes.
type PixelMapDataProduct struct {
	DataProductInfo
	NumberOfAxes        int            `xml:"numberOfAxes"`
	NumberOfCoordinates int            `xml:"numberOfCoordinates"`
	Coordinates         CoordinateList `xml:"coordinate"`
}

func (*PixelMapDataProduct) SchemaType() string { return "PixelMapDataProduct" }

// NewPixelMapDataProduct returns a pixel map with the given coordinates.
func NewPixelMapDataProduct(info DataProductInfo, axes int, coords ...Coordinate) *PixelMapDataProduct {
	return &PixelMapDataProduct{
		DataProductInfo:     info,
		NumberOfAxes:        axes,
		NumberOfCoordinates: len(coords),
		Coordinates:         coords,
	}
}

// SkyImageDataProduct is a pixel map of the sky.
type SkyImageDataProduct struct {
	PixelMapDataProduct
	LocationFrame       LocationFrame `xml:"locationFrame"`
	TimeFrame           string        `xml:"timeFrame"`
	ObservationPointing Pointing      `xml:"observationPointing"`
	RestoringBeamMajor  Angle         `xml:"restoringBeamMajor"`
	RestoringBeamMinor  Angle         `xml:"restoringBeamMinor"`
	RMSNoise            Pixel         `xml:"rmsNoise"`
}

func (*SkyImageDataProduct) SchemaType() string { return "SkyImageDataProduct" }

// SkyImage holds the fields of a sky image which are not shared with
// pixel maps.
type SkyImage struct {
	LocationFrame       LocationFrame
	TimeFrame           string
	ObservationPointing Pointing
	RestoringBeamMajor  Angle
	RestoringBeamMinor  Angle

	// RMSNoise is given in Jy/beam.
	RMSNoise float64
}

// NewSkyImageDataProduct returns a sky image with the given coordinates.
func NewSkyImageDataProduct(info DataProductInfo, axes int, img SkyImage, coords ...Coordinate) *SkyImageDataProduct {
	return &SkyImageDataProduct{
		PixelMapDataProduct: *NewPixelMapDataProduct(info, axes, coords...),
		LocationFrame:       img.LocationFrame,
		TimeFrame:           img.TimeFrame,
		ObservationPointing: img.ObservationPointing,
		RestoringBeamMajor:  img.RestoringBeamMajor,
		RestoringBeamMinor:  img.RestoringBeamMinor,
		RMSNoise:            Pixel{Value: img.RMSNoise, Units: PixelUnitJyBeam},
	}
}

// TransientBufferBoardDataProduct holds a dump of the transient buffer
// boards of a station.
type TransientBufferBoardDataProduct struct {
	DataProductInfo
	NumberOfSamples   int        `xml:"numberOfSamples"`
	TimeStamp         int        `xml:"timeStamp"`
	TriggerParameters TBBTrigger `xml:"triggerParameters"`
}

func (*TransientBufferBoardDataProduct) SchemaType() string {
	return "TransientBufferBoardDataProduct"
}

// TBBTrigger describes what caused a transient buffer board dump.
type TBBTrigger struct {
	Type  string `xml:"type"`
	Value int    `xml:"value"`
}

// PulpSummaryDataProduct is the summary output of the pulsar pipeline.
type PulpSummaryDataProduct struct {
	DataProductInfo
	FileContent StringList             `xml:"fileContent"`
	DataType    PulsarPipelineDataType `xml:"dataType"`
}

func (*PulpSummaryDataProduct) SchemaType() string { return "PulpSummaryDataProduct" }

// PulpDataProduct is the output of the pulsar pipeline for one beam.
type PulpDataProduct struct {
	DataProductInfo
	FileContent StringList             `xml:"fileContent"`
	DataType    PulsarPipelineDataType `xml:"dataType"`

	// ArrayBeam must hold exactly one beam.
	ArrayBeam ArrayBeamList `xml:"arrayBeam"`
}

func (*PulpDataProduct) SchemaType() string { return "PulpDataProduct" }

// BeamFormedDataProduct holds the output of one or more tied-array beams.
type BeamFormedDataProduct struct {
	DataProductInfo
	NumberOfBeams int        `xml:"numberOfBeams"`
	Beams         ArrayBeams `xml:"beams,omitempty"`
}

func (*BeamFormedDataProduct) SchemaType() string { return "BeamFormedDataProduct" }

// NewBeamFormedDataProduct returns a beam formed data product holding the
// given beams.
func NewBeamFormedDataProduct(info DataProductInfo, beams ...ArrayBeam) *BeamFormedDataProduct {
	return &BeamFormedDataProduct{
		DataProductInfo: info,
		NumberOfBeams:   len(beams),
		Beams:           beams,
	}
}

var dataProducts = &family[DataProduct]{
	base: "DataProduct",
	types: map[string]func() DataProduct{
		"DataProduct":                     func() DataProduct { return &SimpleDataProduct{} },
		"SkyModelDataProduct":             func() DataProduct { return &SkyModelDataProduct{} },
		"GenericDataProduct":              func() DataProduct { return &GenericDataProduct{} },
		"UnspecifiedDataProduct":          func() DataProduct { return &UnspecifiedDataProduct{} },
		"InstrumentModelDataProduct":      func() DataProduct { return &InstrumentModelDataProduct{} },
		"CorrelatedDataProduct":           func() DataProduct { return &CorrelatedDataProduct{} },
		"PixelMapDataProduct":             func() DataProduct { return &PixelMapDataProduct{} },
		"SkyImageDataProduct":             func() DataProduct { return &SkyImageDataProduct{} },
		"TransientBufferBoardDataProduct": func() DataProduct { return &TransientBufferBoardDataProduct{} },
		"PulpSummaryDataProduct":          func() DataProduct { return &PulpSummaryDataProduct{} },
		"PulpDataProduct":                 func() DataProduct { return &PulpDataProduct{} },
		"BeamFormedDataProduct":           func() DataProduct { return &BeamFormedDataProduct{} },
	},
	other: func(t string) DataProduct { return &OtherDataProduct{TypeName: t} },
}

// dataProductList is the sequence of dataProduct or relatedDataProduct
// elements of a SIP.
type dataProductList []DataProduct

func (l dataProductList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	for _, dp := range l {
		err := dataProducts.encode(e, start, dp)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *dataProductList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	dp, err := dataProducts.decode(d, start)
	if err != nil {
		return err
	}
	*l = append(*l, dp)
	return nil
}
