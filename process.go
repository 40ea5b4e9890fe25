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

// Process is implemented by observations, pipeline runs and unspecified
// processes.
type Process interface {
	// Process returns the fields common to all processes.
	Process() *ProcessInfo
}

// ProcessInfo holds the fields shared by all processes.
type ProcessInfo struct {
	Identifier          Identifier        `xml:"processIdentifier"`
	ObservationID       Identifier        `xml:"observationId"`
	Parset              *Identifier       `xml:"parset,omitempty"`
	StrategyName        string            `xml:"strategyName"`
	StrategyDescription string            `xml:"strategyDescription"`
	StartTime           DateTime          `xml:"startTime"`
	Duration            Duration          `xml:"duration"`
	Relations           []ProcessRelation `xml:"relations>relation"`
}

// Process implements the Process interface.
func (p *ProcessInfo) Process() *ProcessInfo {
	return p
}

// ProcessRelation links a process to a group of related processes.
type ProcessRelation struct {
	RelationType ProcessRelationType `xml:"relationType"`
	Identifier   Identifier          `xml:"identifier"`
	Name         string              `xml:"name,omitempty"`
}

// NewProcessRelation returns a GroupID relation to id.
func NewProcessRelation(id Identifier) ProcessRelation {
	return ProcessRelation{RelationType: ProcessRelationGroupID, Identifier: id}
}

// UnspecifiedProcess is a process about which nothing is known except its
// observing mode.
type UnspecifiedProcess struct {
	ProcessInfo
	ObservingMode ObservingModeType `xml:"observingMode"`
	Description   string            `xml:"description"`
}

// Parset holds the parameter set used to configure a process.
type Parset struct {
	Identifier Identifier `xml:"identifier"`
	Contents   string     `xml:"contents"`
}
