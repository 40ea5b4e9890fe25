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

package idservice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "identifiers.db")

	cache, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	if cache.Path() != path {
		t.Errorf("Path() = %q, want %q", cache.Path(), path)
	}

	if _, found, err := cache.Lookup(ctx, "SAS", "L1"); err != nil || found {
		t.Fatalf("Lookup on empty cache: found=%t, err=%v", found, err)
	}

	for _, e := range []Entry{
		{Source: "SAS", Label: "L2", Identifier: "20"},
		{Source: "SAS", Label: "L1", Identifier: "10"},
		{Source: "MoM", Label: "L1", Identifier: "30"},
		{Source: "SAS", Label: "L2", Identifier: "21"},
	} {
		if err := cache.Store(ctx, e.Source, e.Label, e.Identifier); err != nil {
			t.Fatal(err)
		}
	}

	id, found, err := cache.Lookup(ctx, "SAS", "L2")
	if err != nil {
		t.Fatal(err)
	}
	if !found || id != "21" {
		t.Errorf("Lookup(SAS, L2) = %q, %t, want %q, true", id, found, "21")
	}
	if err := cache.Close(); err != nil {
		t.Fatal(err)
	}

	// the entries survive reopening
	cache, err = OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	got, err := cache.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Source: "MoM", Label: "L1", Identifier: "30"},
		{Source: "SAS", Label: "L1", Identifier: "10"},
		{Source: "SAS", Label: "L2", Identifier: "21"},
	}
	if d := cmp.Diff(want, got, cmpopts.IgnoreFields(Entry{}, "CreatedAt")); d != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", d)
	}
	for _, e := range got {
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %s/%s has no creation time", e.Source, e.Label)
		}
	}
}

func TestCacheLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identifiers.db")
	a, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	unlock, err := a.lock(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if _, err := b.lock(ctx); err == nil {
		t.Error("second lock acquired while the first is held")
	}

	unlock()
	unlockB, err := b.lock(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	unlockB()
}
