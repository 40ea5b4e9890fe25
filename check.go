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
	"fmt"
)

var (
	// ErrMissingProcess indicates that the process which created a data
	// product is not part of the SIP.
	ErrMissingProcess = errors.New("creating process is missing")

	// ErrMissingInput indicates that an input data product of a pipeline
	// run is not part of the SIP.
	ErrMissingInput = errors.New("input data product is missing")
)

// MissingReferenceError reports a dangling reference in the provenance
// graph of a SIP.
type MissingReferenceError struct {
	// Err is ErrMissingProcess or ErrMissingInput.
	Err error

	// Subject is the id of the data product or process holding the
	// reference.
	Subject string

	// Missing is the id which could not be resolved.
	Missing string
}

func (e *MissingReferenceError) Error() string {
	switch e.Err {
	case ErrMissingProcess:
		return fmt.Sprintf("the pipeline or observation that created data product %q is missing: %s",
			e.Subject, e.Missing)
	case ErrMissingInput:
		return fmt.Sprintf("the input data product for pipeline %q is missing: %s",
			e.Subject, e.Missing)
	default:
		return fmt.Sprintf("%s: %v: %s", e.Subject, e.Err, e.Missing)
	}
}

func (e *MissingReferenceError) Unwrap() error {
	return e.Err
}

// CheckConsistency checks that the processes which created the data
// products of doc, and the inputs of these processes, are all described in
// doc.  The first problem found is returned as a *MissingReferenceError.
func CheckConsistency(doc *Document) error {
	return NewGraph(doc).Check()
}

// Check returns the first problem reported by Problems, or nil if the
// graph is consistent.
func (g *Graph) Check() error {
	problems := g.problems(true)
	if len(problems) > 0 {
		return problems[0]
	}
	return nil
}

// Problems returns all dangling references in the graph.  Missing creating
// processes are listed before missing inputs, each group in document
// order.
func (g *Graph) Problems() []*MissingReferenceError {
	return g.problems(false)
}

func (g *Graph) problems(firstOnly bool) []*MissingReferenceError {
	var res []*MissingReferenceError
	for _, dpID := range g.dpOrder {
		for _, procID := range g.producedBy[dpID] {
			if _, ok := g.procIndex[procID]; ok {
				continue
			}
			res = append(res, &MissingReferenceError{
				Err:     ErrMissingProcess,
				Subject: dpID,
				Missing: procID,
			})
			if firstOnly {
				return res
			}
		}
	}
	for _, procID := range g.procOrder {
		for _, list := range g.inputs[procID] {
			for _, dpID := range list {
				if _, ok := g.dpIndex[dpID]; ok {
					continue
				}
				res = append(res, &MissingReferenceError{
					Err:     ErrMissingInput,
					Subject: procID,
					Missing: dpID,
				})
				if firstOnly {
					return res
				}
			}
		}
	}
	return res
}
