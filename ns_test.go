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
	"encoding/xml"
	"testing"
)

// TestDefaultPrefix ensures that the prefixes in the defaultPrefix table are
// unique and non-empty.
func TestDefaultPrefix(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range defaultPrefix {
		if seen[p] {
			t.Errorf("prefix %q is not unique", p)
		}
		if p == "" {
			t.Errorf("prefix %q is empty", p)
		}
		seen[p] = true
	}
}

func TestSchemaTypeOf(t *testing.T) {
	cases := []struct {
		desc string
		attr []xml.Attr
		want string
	}{
		{"none", nil, ""},
		{
			desc: "declared prefix",
			attr: []xml.Attr{{Name: xml.Name{Space: xsiNamespace, Local: "type"}, Value: "sip:CorrelatedDataProduct"}},
			want: "CorrelatedDataProduct",
		},
		{
			desc: "undeclared prefix",
			attr: []xml.Attr{{Name: xml.Name{Space: "xsi", Local: "type"}, Value: "ns1:AveragingPipeline"}},
			want: "AveragingPipeline",
		},
		{
			desc: "no value prefix",
			attr: []xml.Attr{{Name: xml.Name{Space: xsiNamespace, Local: "type"}, Value: "FlysEyeBeam"}},
			want: "FlysEyeBeam",
		},
		{
			desc: "other namespace",
			attr: []xml.Attr{{Name: xml.Name{Space: "urn:x", Local: "type"}, Value: "sip:Foo"}},
			want: "",
		},
	}
	for _, c := range cases {
		got := schemaTypeOf(xml.StartElement{Attr: c.attr})
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.desc, got, c.want)
		}
	}
}

func TestTypeAttr(t *testing.T) {
	a := typeAttr("PulsarPipeline")
	if a.Name.Local != "xsi:type" || a.Value != "sip:PulsarPipeline" {
		t.Errorf("unexpected attribute %v", a)
	}
}
