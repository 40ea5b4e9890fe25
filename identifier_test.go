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
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocalIssuer(t *testing.T) {
	ctx := context.Background()
	issuer := NewLocalIssuer()

	id, err := NewIdentifier(ctx, issuer, "SAS", "obs-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := strconv.ParseUint(id.Identifier, 10, 64); err != nil {
		t.Errorf("identifier %q is not a decimal number", id.Identifier)
	}

	_, err = NewIdentifier(ctx, issuer, "SAS", "obs-1")
	if !errors.Is(err, ErrIDExists) {
		t.Errorf("duplicate label: got error %v, want %v", err, ErrIDExists)
	}

	// the same label in another source is a different identifier
	_, err = NewIdentifier(ctx, issuer, "MoM", "obs-1")
	if err != nil {
		t.Error(err)
	}

	found, err := LookupIdentifier(ctx, issuer, "SAS", "obs-1")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(id, found); d != "" {
		t.Errorf("lookup (-want +got):\n%s", d)
	}

	_, err = LookupIdentifier(ctx, issuer, "SAS", "obs-2")
	if !errors.Is(err, ErrIDNotFound) {
		t.Errorf("unknown label: got error %v, want %v", err, ErrIDNotFound)
	}
}

func TestLocalIssuerUnlabelled(t *testing.T) {
	ctx := context.Background()
	var issuer LocalIssuer // the zero value is ready to use

	seen := make(map[string]bool)
	for range 100 {
		id, err := issuer.CreateID(ctx, "test", "")
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = true
	}

	_, err := issuer.LookupID(ctx, "test", "")
	if !errors.Is(err, ErrIDNotFound) {
		t.Errorf("got error %v, want %v", err, ErrIDNotFound)
	}
}

func TestLocalIssuerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalIssuer().CreateID(ctx, "SAS", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestIdentifierString(t *testing.T) {
	id := Identifier{Source: "SAS", Identifier: "123"}
	if s := id.String(); s != "SAS:123" {
		t.Errorf("got %q", s)
	}
	if id.IsZero() {
		t.Error("non-zero identifier reported as zero")
	}
	if !(Identifier{}).IsZero() {
		t.Error("zero identifier not reported as zero")
	}
}
