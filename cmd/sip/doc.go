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

// Command sip works with LOFAR LTA Submission Information Packages.
//
// It validates SIPs against the LTA schema, checks that their provenance
// graphs are complete, draws them with Graphviz, builds SIPs from
// observation feedback, and talks to the LTA identifier service.
// Settings are read from ~/.config/sip/config.toml; "sip config init"
// writes a commented sample.
package main
