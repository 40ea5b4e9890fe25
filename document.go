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
	"errors"
	"log/slog"
)

// GeneratorVersion is written to the sipGeneratorVersion element of new
// documents.
const GeneratorVersion = "SIPlib 0.4"

var (
	// ErrNoDataProduct is returned when a document has no described data
	// product.
	ErrNoDataProduct = errors.New("no described data product")

	// ErrNotCorrelated is returned by SubArrayPointingIdentifier if the
	// described data product is not a correlated data product.
	ErrNotCorrelated = errors.New("described data product is not a correlated data product")
)

// Document is a Submission Information Package.  The described data
// product is the product being ingested into the archive.  The remaining
// fields describe its history.
type Document struct {
	GeneratorVersion     string
	Project              Project
	DataProduct          DataProduct
	Observations         []*Observation
	PipelineRuns         []PipelineRun
	UnspecifiedProcesses []*UnspecifiedProcess
	RelatedDataProducts  []DataProduct
	Parsets              []*Parset
}

// Project identifies the LOFAR project which owns the data.
type Project struct {
	Code                string    `xml:"projectCode"`
	PrimaryInvestigator string    `xml:"primaryInvestigator"`
	CoInvestigators     []string  `xml:"coInvestigator"`
	ContactAuthor       string    `xml:"contactAuthor"`
	Telescope           Telescope `xml:"telescope"`
	Description         string    `xml:"projectDescription"`
}

// NewDocument returns a SIP describing dp.  The telescope of the project is
// set to LOFAR.
func NewDocument(project Project, dp DataProduct) *Document {
	project.Telescope = TelescopeLOFAR
	return &Document{
		GeneratorVersion: GeneratorVersion,
		Project:          project,
		DataProduct:      dp,
	}
}

// AddRelatedDataProduct adds a data product from the history of the
// described data product.
func (d *Document) AddRelatedDataProduct(dp DataProduct) {
	d.RelatedDataProducts = append(d.RelatedDataProducts, dp)
}

// AddObservation adds an observation.
func (d *Document) AddObservation(obs *Observation) {
	d.Observations = append(d.Observations, obs)
}

// AddPipelineRun adds a pipeline run.
func (d *Document) AddPipelineRun(p PipelineRun) {
	d.PipelineRuns = append(d.PipelineRuns, p)
}

// AddUnspecifiedProcess adds a process about which only the observing mode
// and a description are known.
func (d *Document) AddUnspecifiedProcess(mode ObservingModeType, description string, process ProcessInfo) *UnspecifiedProcess {
	up := &UnspecifiedProcess{
		ProcessInfo:   process,
		ObservingMode: mode,
		Description:   description,
	}
	d.UnspecifiedProcesses = append(d.UnspecifiedProcesses, up)
	return up
}

// AddParset adds a parameter set.
func (d *Document) AddParset(id Identifier, contents string) {
	d.Parsets = append(d.Parsets, &Parset{Identifier: id, Contents: contents})
}

// AddRelatedDataProductWithHistory merges the SIP of an input data product
// into d.  The data product described by other becomes a related data
// product of d, and the history recorded in other is copied over.  Items
// whose identifier is already present in d are not added again.
//
// If the data product described by other is already present, a warning is
// logged and merging continues with the history.  A nil logger means
// slog.Default().
func (d *Document) AddRelatedDataProductWithHistory(other *Document, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	dpSeen := make(map[string]bool)
	for _, dp := range d.RelatedDataProducts {
		dpSeen[dp.Info().Identifier.Identifier] = true
	}
	addDP := func(dp DataProduct) bool {
		id := dp.Info().Identifier.Identifier
		if dpSeen[id] {
			return false
		}
		dpSeen[id] = true
		d.RelatedDataProducts = append(d.RelatedDataProducts, dp)
		return true
	}

	if other.DataProduct != nil && !addDP(other.DataProduct) {
		logger.Warn("data product already present, adding related items anyway",
			slog.String("data_product_id", other.DataProduct.Info().Identifier.Identifier))
	}
	for _, dp := range other.RelatedDataProducts {
		addDP(dp)
	}

	d.Observations = mergeByID(d.Observations, other.Observations, processID[*Observation])
	d.PipelineRuns = mergeByID(d.PipelineRuns, other.PipelineRuns, processID[PipelineRun])
	d.UnspecifiedProcesses = mergeByID(d.UnspecifiedProcesses, other.UnspecifiedProcesses, processID[*UnspecifiedProcess])
	d.Parsets = mergeByID(d.Parsets, other.Parsets, func(p *Parset) string {
		return p.Identifier.Identifier
	})
}

func processID[P Process](p P) string {
	return p.Process().Identifier.Identifier
}

// mergeByID appends the elements of add to list, skipping elements whose
// identifier is already present.
func mergeByID[T any](list, add []T, id func(T) string) []T {
	seen := make(map[string]bool, len(list))
	for _, x := range list {
		seen[id(x)] = true
	}
	for _, x := range add {
		key := id(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, x)
	}
	return list
}

// DataProductIdentifier returns the identifier of the described data
// product, for use as a pipeline input in another SIP.
func (d *Document) DataProductIdentifier() (Identifier, error) {
	if d.DataProduct == nil {
		return Identifier{}, ErrNoDataProduct
	}
	return d.DataProduct.Info().Identifier, nil
}

// SubArrayPointingIdentifier returns the sub-array pointing identifier of
// the described data product.  This is only available for correlated data
// products.
func (d *Document) SubArrayPointingIdentifier() (Identifier, error) {
	dp, ok := d.DataProduct.(*CorrelatedDataProduct)
	if !ok {
		return Identifier{}, ErrNotCorrelated
	}
	return dp.SubArrayPointingIdentifier, nil
}
