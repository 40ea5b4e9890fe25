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
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Identifier identifies an entity (data product, process, parset, ...) in
// the LTA catalog.
type Identifier struct {
	Source     string `xml:"source"`
	Identifier string `xml:"identifier"`
	Name       string `xml:"name"`
	Label      string `xml:"label,omitempty"`
}

// String returns the identifier as "source:identifier".
func (id Identifier) String() string {
	return id.Source + ":" + id.Identifier
}

// IsZero reports whether the identifier is unset.
func (id Identifier) IsZero() bool {
	return id.Source == "" && id.Identifier == ""
}

var (
	// ErrIDExists is returned by an IDIssuer when a new identifier is
	// requested for a label which is already in use.
	ErrIDExists = errors.New("identifier already exists")

	// ErrIDNotFound is returned by an IDIssuer when no identifier is
	// registered for a label.
	ErrIDNotFound = errors.New("identifier does not exist")
)

// An IDIssuer hands out unique identifiers.  The label is optional for
// CreateID; if it is given, the identifier can later be found with
// LookupID.
type IDIssuer interface {
	CreateID(ctx context.Context, source, label string) (string, error)
	LookupID(ctx context.Context, source, label string) (string, error)
}

// NewIdentifier allocates a new unique identifier in the namespace source.
// It fails if label is non-empty and already in use.
func NewIdentifier(ctx context.Context, issuer IDIssuer, source, label string) (Identifier, error) {
	id, err := issuer.CreateID(ctx, source, label)
	if err != nil {
		return Identifier{}, fmt.Errorf("create identifier in %q: %w", source, err)
	}
	return Identifier{Source: source, Identifier: id, Label: label}, nil
}

// LookupIdentifier returns the identifier previously created for label.
func LookupIdentifier(ctx context.Context, issuer IDIssuer, source, label string) (Identifier, error) {
	id, err := issuer.LookupID(ctx, source, label)
	if err != nil {
		return Identifier{}, fmt.Errorf("look up identifier %q in %q: %w", label, source, err)
	}
	return Identifier{Source: source, Identifier: id, Label: label}, nil
}

// LocalIssuer issues identifiers without contacting the LTA.  The
// identifiers are derived from random UUIDs and are only unique with high
// probability.  This is meant for tests and dry runs.
type LocalIssuer struct {
	mu     sync.Mutex
	labels map[[2]string]string
}

// NewLocalIssuer returns an empty LocalIssuer.
func NewLocalIssuer() *LocalIssuer {
	return &LocalIssuer{labels: make(map[[2]string]string)}
}

// CreateID implements the IDIssuer interface.
func (l *LocalIssuer) CreateID(ctx context.Context, source, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := [2]string{source, label}
	if label != "" {
		if _, exists := l.labels[key]; exists {
			return "", ErrIDExists
		}
	}

	u := uuid.New()
	var hi uint64
	for _, b := range u[:8] {
		hi = hi<<8 | uint64(b)
	}
	id := strconv.FormatUint(hi, 10)

	if label != "" {
		if l.labels == nil {
			l.labels = make(map[[2]string]string)
		}
		l.labels[key] = id
	}
	return id, nil
}

// LookupID implements the IDIssuer interface.
func (l *LocalIssuer) LookupID(ctx context.Context, source, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id, ok := l.labels[[2]string{source, label}]
	if !ok {
		return "", ErrIDNotFound
	}
	return id, nil
}
