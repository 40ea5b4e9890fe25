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

// PipelineRun is implemented by all pipeline types.
type PipelineRun interface {
	Process

	// Pipeline returns the fields common to all pipeline runs.
	Pipeline() *PipelineInfo

	// SchemaType returns the name of the schema type of the pipeline.
	SchemaType() string
}

// PipelineInfo holds the fields shared by all pipeline runs.
type PipelineInfo struct {
	ProcessInfo
	Name    string `xml:"pipelineName"`
	Version string `xml:"pipelineVersion"`

	// SourceData lists the identifiers of the input data products.
	SourceData []Identifier `xml:"sourceData>dataProductIdentifier"`
}

// Pipeline implements the PipelineRun interface.
func (p *PipelineInfo) Pipeline() *PipelineInfo {
	return p
}

// SimplePipeline is a pipeline run without type-specific fields.
type SimplePipeline struct {
	PipelineInfo
}

func (*SimplePipeline) SchemaType() string { return "PipelineRun" }

// ImagingPipeline is a run of the imaging pipeline.
type ImagingPipeline struct {
	PipelineInfo
	FrequencyIntegrationStep       *int   `xml:"frequencyIntegrationStep,omitempty"`
	TimeIntegrationStep            *int   `xml:"timeIntegrationStep,omitempty"`
	SkyModelDatabase               string `xml:"skyModelDatabase,omitempty"`
	Demixing                       *bool  `xml:"demixing,omitempty"`
	ImagerIntegrationTime          Time   `xml:"imagerIntegrationTime"`
	NumberOfMajorCycles            int    `xml:"numberOfMajorCycles"`
	NumberOfInstrumentModels       int    `xml:"numberOfInstrumentModels"`
	NumberOfCorrelatedDataProducts int    `xml:"numberOfCorrelatedDataProducts"`
	NumberOfSkyImages              int    `xml:"numberOfSkyImages"`
}

func (*ImagingPipeline) SchemaType() string { return "ImagingPipeline" }

// CalibrationPipeline is a run of the calibration pipeline.
type CalibrationPipeline struct {
	PipelineInfo
	FrequencyIntegrationStep       *int   `xml:"frequencyIntegrationStep,omitempty"`
	TimeIntegrationStep            *int   `xml:"timeIntegrationStep,omitempty"`
	FlagAutoCorrelations           *bool  `xml:"flagAutoCorrelations,omitempty"`
	Demixing                       *bool  `xml:"demixing,omitempty"`
	SkyModelDatabase               string `xml:"skyModelDatabase"`
	NumberOfInstrumentModels       int    `xml:"numberOfInstrumentModels"`
	NumberOfCorrelatedDataProducts int    `xml:"numberOfCorrelatedDataProducts"`
}

func (*CalibrationPipeline) SchemaType() string { return "CalibrationPipeline" }

// AveragingPipeline is a run of the averaging (preprocessing) pipeline.
type AveragingPipeline struct {
	PipelineInfo
	FrequencyIntegrationStep       int  `xml:"frequencyIntegrationStep"`
	TimeIntegrationStep            int  `xml:"timeIntegrationStep"`
	FlagAutoCorrelations           bool `xml:"flagAutoCorrelations"`
	Demixing                       bool `xml:"demixing"`
	NumberOfCorrelatedDataProducts int  `xml:"numberOfCorrelatedDataProducts"`
}

func (*AveragingPipeline) SchemaType() string { return "AveragingPipeline" }

// PulsarPipeline is a run of the pulsar pipeline.
type PulsarPipeline struct {
	PipelineInfo
	PulsarSelection                      PulsarSelectionType `xml:"pulsarSelection"`
	Pulsars                              StringList          `xml:"pulsars"`
	DoSinglePulseAnalysis                bool                `xml:"doSinglePulseAnalysis"`
	ConvertRawTo8bit                     bool                `xml:"convertRawTo8bit"`
	SubintegrationLength                 Time                `xml:"subintegrationLength"`
	SkipRFIExcision                      bool                `xml:"skipRFIExcision"`
	SkipDataFolding                      bool                `xml:"skipDataFolding"`
	SkipOptimizePulsarProfile            bool                `xml:"skipOptimizePulsarProfile"`
	SkipConvertRawIntoFoldedPSRFITS      bool                `xml:"skipConvertRawIntoFoldedPSRFITS"`
	RunRotationalRadioTransientsAnalysis bool                `xml:"runRotationalRAdioTransientsAnalysis"`
	SkipDynamicSpectrum                  bool                `xml:"skipDynamicSpectrum"`
	SkipPreFold                          bool                `xml:"skipPreFold"`
}

func (*PulsarPipeline) SchemaType() string { return "PulsarPipeline" }

// CosmicRayPipeline is a run of the cosmic ray pipeline.
type CosmicRayPipeline struct {
	PipelineInfo
}

func (*CosmicRayPipeline) SchemaType() string { return "CosmicRayPipeline" }

// LongBaselinePipeline is a run of the long baseline pipeline.
type LongBaselinePipeline struct {
	PipelineInfo
	SubbandsPerSubbandGroup int `xml:"subbandsPerSubbandGroup"`
	SubbandGroupsPerMS      int `xml:"subbandGroupsPerMS"`
}

func (*LongBaselinePipeline) SchemaType() string { return "LongBaselinePipeline" }

// GenericPipeline is a pipeline run of a type not otherwise covered.
type GenericPipeline struct {
	PipelineInfo
}

func (*GenericPipeline) SchemaType() string { return "GenericPipeline" }

var pipelineRuns = &family[PipelineRun]{
	base: "PipelineRun",
	types: map[string]func() PipelineRun{
		"PipelineRun":          func() PipelineRun { return &SimplePipeline{} },
		"ImagingPipeline":      func() PipelineRun { return &ImagingPipeline{} },
		"CalibrationPipeline":  func() PipelineRun { return &CalibrationPipeline{} },
		"AveragingPipeline":    func() PipelineRun { return &AveragingPipeline{} },
		"PulsarPipeline":       func() PipelineRun { return &PulsarPipeline{} },
		"CosmicRayPipeline":    func() PipelineRun { return &CosmicRayPipeline{} },
		"LongBaselinePipeline": func() PipelineRun { return &LongBaselinePipeline{} },
		"GenericPipeline":      func() PipelineRun { return &GenericPipeline{} },
	},
	other: func(t string) PipelineRun { return &OtherPipeline{TypeName: t} },
}

type pipelineRunList []PipelineRun

func (l pipelineRunList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	for _, p := range l {
		err := pipelineRuns.encode(e, start, p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *pipelineRunList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p, err := pipelineRuns.decode(d, start)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}
