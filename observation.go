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

// Observation is a LOFAR observation.
type Observation struct {
	ProcessInfo
	ObservingMode                  ObservingModeType          `xml:"observingMode"`
	Description                    string                     `xml:"observationDescription,omitempty"`
	InstrumentFilter               FilterSelectionType        `xml:"instrumentFilter"`
	Clock                          Clock                      `xml:"clock"`
	StationSelection               StationSelectionType       `xml:"stationSelection"`
	AntennaSet                     AntennaSetType             `xml:"antennaSet"`
	TimeSystem                     TimeSystemType             `xml:"timeSystem"`
	ChannelWidth                   *Frequency                 `xml:"channelWidth,omitempty"`
	ChannelsPerSubband             *int                       `xml:"channelsPerSubband,omitempty"`
	NumberOfStations               int                        `xml:"numberOfStations"`
	Stations                       []Station                  `xml:"stations>station"`
	NumberOfSubArrayPointings      int                        `xml:"numberOfSubArrayPointings"`
	SubArrayPointings              SubArrayPointings          `xml:"subArrayPointings,omitempty"`
	NumberOfTBBEvents              int                        `xml:"numberOftransientBufferBoardEvents"`
	TBBEvents                      TransientBufferBoardEvents `xml:"transientBufferBoardEvents,omitempty"`
	NumberOfCorrelatedDataProducts int                        `xml:"numberOfCorrelatedDataProducts"`
	NumberOfBeamFormedDataProducts int                        `xml:"numberOfBeamFormedDataProducts"`
	NumberOfBitsPerSample          int                        `xml:"numberOfBitsPerSample"`
}

// UpdateCounts sets the station, sub-array pointing and TBB event counts
// from the corresponding lists.
func (o *Observation) UpdateCounts() {
	o.NumberOfStations = len(o.Stations)
	o.NumberOfSubArrayPointings = len(o.SubArrayPointings)
	o.NumberOfTBBEvents = len(o.TBBEvents)
}

// ClockMHz returns the station clock setting f.
func ClockMHz(f ClockFrequency) Clock {
	return Clock{Value: f, Units: FrequencyUnitMHz}
}

// Station is a LOFAR station taking part in an observation.
type Station struct {
	Name string      `xml:"name"`
	Type StationType `xml:"stationType"`

	// AntennaFields holds one or two entries.
	AntennaFields []AntennaField `xml:"antennaField"`
}

// AntennaField is the position of one antenna field of a station.
type AntennaField struct {
	Name     AntennaFieldType `xml:"name"`
	Location Coordinates      `xml:"location"`
}

// Coordinates is a position on earth, either as cartesian coordinates or
// as radius, longitude and latitude.
type Coordinates struct {
	CoordinateSystem CoordinateSystem `xml:"coordinateSystem"`

	X *Length `xml:"x,omitempty"`
	Y *Length `xml:"y,omitempty"`
	Z *Length `xml:"z,omitempty"`

	Radius    *Length `xml:"radius,omitempty"`
	Longitude *Angle  `xml:"longitude,omitempty"`
	Latitude  *Angle  `xml:"latitude,omitempty"`
}

// CoordinatesXYZ returns cartesian coordinates in meters.
func CoordinatesXYZ(system CoordinateSystem, x, y, z float64) Coordinates {
	lx, ly, lz := Meters(x), Meters(y), Meters(z)
	return Coordinates{CoordinateSystem: system, X: &lx, Y: &ly, Z: &lz}
}

// CoordinatesRadLonLat returns polar coordinates.
func CoordinatesRadLonLat(system CoordinateSystem, radius Length, lon, lat Angle) Coordinates {
	return Coordinates{CoordinateSystem: system, Radius: &radius, Longitude: &lon, Latitude: &lat}
}

// Pointing is a direction on the sky, either as right ascension and
// declination or as azimuth and altitude.
type Pointing struct {
	RightAscension *Angle      `xml:"rightAscension,omitempty"`
	Declination    *Angle      `xml:"declination,omitempty"`
	Azimuth        *Angle      `xml:"azimuth,omitempty"`
	Altitude       *Angle      `xml:"altitude,omitempty"`
	Equinox        EquinoxType `xml:"equinox"`
}

// PointingRaDec returns an equatorial pointing.
func PointingRaDec(ra, dec Angle, equinox EquinoxType) Pointing {
	return Pointing{RightAscension: &ra, Declination: &dec, Equinox: equinox}
}

// PointingAzAlt returns a horizontal pointing.
func PointingAzAlt(az, alt Angle, equinox EquinoxType) Pointing {
	return Pointing{Azimuth: &az, Altitude: &alt, Equinox: equinox}
}

// SubArrayPointing describes one station beam of an observation.
type SubArrayPointing struct {
	Pointing                       Pointing          `xml:"pointing"`
	BeamNumber                     int               `xml:"beamNumber"`
	MeasurementDescription         string            `xml:"measurementDescription,omitempty"`
	Identifier                     Identifier        `xml:"subArrayPointingIdentifier"`
	MeasurementType                MeasurementType   `xml:"measurementType"`
	TargetName                     string            `xml:"targetName"`
	StartTime                      DateTime          `xml:"startTime"`
	Duration                       Duration          `xml:"duration"`
	NumberOfProcessing             int               `xml:"numberOfProcessing"`
	Processing                     *Processing       `xml:"processing,omitempty"`
	NumberOfCorrelatedDataProducts int               `xml:"numberOfCorrelatedDataProducts"`
	NumberOfBeamFormedDataProducts int               `xml:"numberOfBeamFormedDataProducts"`
	Relations                      []ProcessRelation `xml:"relations>relation"`
}

// Processing lists the online processing steps applied to a sub-array
// pointing.
type Processing struct {
	Correlator       *Correlator       `xml:"correlator,omitempty"`
	CoherentStokes   *CoherentStokes   `xml:"coherentStokes,omitempty"`
	IncoherentStokes *IncoherentStokes `xml:"incoherentStokes,omitempty"`
	FlysEye          *FlysEye          `xml:"flysEye,omitempty"`
	NonStandard      *NonStandard      `xml:"nonStandard,omitempty"`
}

// Count returns the number of processing steps present.
func (p *Processing) Count() int {
	if p == nil {
		return 0
	}
	n := 0
	if p.Correlator != nil {
		n++
	}
	if p.CoherentStokes != nil {
		n++
	}
	if p.IncoherentStokes != nil {
		n++
	}
	if p.FlysEye != nil {
		n++
	}
	if p.NonStandard != nil {
		n++
	}
	return n
}

// RealTimeProcess holds the fields shared by all online processing steps.
type RealTimeProcess struct {
	ProcessingType     ProcessingType `xml:"processingType"`
	ChannelWidth       *Frequency     `xml:"channelWidth,omitempty"`
	ChannelsPerSubband *int           `xml:"channelsPerSubband,omitempty"`
}

// Correlator is the online correlator.
type Correlator struct {
	RealTimeProcess
	IntegrationInterval Time `xml:"integrationInterval"`
}

// StokesProcessing holds the fields of the coherent and incoherent Stokes
// beam formers.
type StokesProcessing struct {
	RealTimeProcess
	RawSamplingTime             Time      `xml:"rawSamplingTime"`
	TimeDownsamplingFactor      int       `xml:"timeDownsamplingFactor"`
	SamplingTime                Time      `xml:"samplingTime"`
	FrequencyDownsamplingFactor *int      `xml:"frequencyDownsamplingFactor,omitempty"`
	NumberOfCollapsedChannels   *int      `xml:"numberOfCollapsedChannels,omitempty"`
	Stokes                      []Stokes  `xml:"stokes"`
	NumberOfStations            int       `xml:"numberOfStations"`
	Stations                    []Station `xml:"stations>station"`
}

// CoherentStokes is the coherent (tied-array) beam former.
type CoherentStokes struct {
	StokesProcessing
}

// IncoherentStokes is the incoherent beam former.
type IncoherentStokes struct {
	StokesProcessing
}

// FlysEye records the beams of the individual stations.
type FlysEye struct {
	RealTimeProcess
	RawSamplingTime        Time     `xml:"rawSamplingTime"`
	TimeDownsamplingFactor int      `xml:"timeDownsamplingFactor"`
	SamplingTime           Time     `xml:"samplingTime"`
	Stokes                 []Stokes `xml:"stokes"`
}

// NonStandard is an online processing step of no standard type.
type NonStandard struct {
	RealTimeProcess
}

// TransientBufferBoardEvent is the source of one TBB trigger.
type TransientBufferBoardEvent struct {
	EventSource string `xml:"eventSource"`
}

// SubArrayPointings is the optional list of sub-array pointings of an
// observation.
type SubArrayPointings []SubArrayPointing

func (l SubArrayPointings) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, "subArrayPointing", l)
}

func (l *SubArrayPointings) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	items, err := decodeWrapped[SubArrayPointing](d, start, "subArrayPointing")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// TransientBufferBoardEvents is the optional list of TBB events of an
// observation.
type TransientBufferBoardEvents []TransientBufferBoardEvent

func (l TransientBufferBoardEvents) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, "transientBufferBoardEvent", l)
}

func (l *TransientBufferBoardEvents) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	items, err := decodeWrapped[TransientBufferBoardEvent](d, start, "transientBufferBoardEvent")
	if err != nil {
		return err
	}
	*l = items
	return nil
}
