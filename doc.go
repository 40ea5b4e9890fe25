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

// Package sip reads and writes Submission Information Packages (SIPs) for
// the LOFAR Long Term Archive.
//
// # Documents
//
// A SIP describes one data product together with its history: the
// observations, pipeline runs and intermediate data products which led to
// it.  The main type in this package is the [Document] type.  New SIPs are
// created using [NewDocument] and extended with the Add methods, for
// example [Document.AddObservation] and [Document.AddPipelineRun].  SIPs
// can be read using [Read] or [ReadFile] and written using
// [Document.Write] or [Document.WriteFile].
//
// The history of an input data product can be copied from its own SIP
// using [Document.AddRelatedDataProductWithHistory].
//
// # Data Products and Processes
//
// Data products implement the [DataProduct] interface.  The fields common
// to all data products are in [DataProductInfo]; the remaining fields
// depend on the product type:
//
//   - [CorrelatedDataProduct] holds visibilities.
//   - [BeamFormedDataProduct] holds tied-array beam data.
//   - [PixelMapDataProduct] and [SkyImageDataProduct] hold images.
//   - [PulpDataProduct] and [PulpSummaryDataProduct] are pulsar pipeline
//     output.
//   - [TransientBufferBoardDataProduct] holds a TBB dump.
//   - [SimpleDataProduct], [GenericDataProduct], [UnspecifiedDataProduct],
//     [InstrumentModelDataProduct] and [SkyModelDataProduct] carry no
//     extra fields.
//
// Data products of schema types not listed here are read as
// [OtherDataProduct].  Pipeline runs implement [PipelineRun] in the same
// way.
//
// # Consistency
//
// Every data product in a SIP names the process which created it, and every
// pipeline run names its inputs.  [CheckConsistency] verifies that all
// these references can be resolved within the document.  [NewGraph]
// exposes the underlying provenance graph.
//
// Validation against the XML schema is done by the validate subpackage.
package sip

//go:generate go run ./cmd/sipconst --schema $LOFARROOT/etc/lta/LTA-SIP.xsd --output constants.go
