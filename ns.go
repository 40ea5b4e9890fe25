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
	"strings"
)

const (
	// Namespace is the XML namespace of LTA SIP documents.
	Namespace = "http://www.astron.nl/SIP-Lofar"

	// SchemaFile is the schema document named in the xsi:schemaLocation
	// attribute of written SIPs.
	SchemaFile = "LTA-SIP-2.7.0.xsd"

	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

var defaultPrefix = map[string]string{
	Namespace:    "sip",
	xsiNamespace: "xsi",
}

// prefixedName returns a name which encoding/xml writes verbatim as
// "prefix:local".  The prefix must be declared on an enclosing element.
func prefixedName(ns, local string) xml.Name {
	return xml.Name{Local: defaultPrefix[ns] + ":" + local}
}

// rootAttrs returns the namespace declarations and the schema location
// hint written on the ltaSip element.
func rootAttrs() []xml.Attr {
	return []xml.Attr{
		{Name: xml.Name{Local: "xmlns:" + defaultPrefix[Namespace]}, Value: Namespace},
		{Name: xml.Name{Local: "xmlns:" + defaultPrefix[xsiNamespace]}, Value: xsiNamespace},
		{Name: prefixedName(xsiNamespace, "schemaLocation"), Value: Namespace + " " + SchemaFile},
	}
}

// typeAttr returns the xsi:type attribute selecting the SIP schema type
// with the given local name.
func typeAttr(schemaType string) xml.Attr {
	return xml.Attr{
		Name:  prefixedName(xsiNamespace, "type"),
		Value: defaultPrefix[Namespace] + ":" + schemaType,
	}
}

// schemaTypeOf returns the local part of the xsi:type attribute of start,
// or the empty string if the attribute is absent.
func schemaTypeOf(start xml.StartElement) string {
	for _, a := range start.Attr {
		if a.Name.Local != "type" {
			continue
		}
		// An undeclared xsi prefix is left in Space by the decoder.
		if a.Name.Space != xsiNamespace && a.Name.Space != defaultPrefix[xsiNamespace] {
			continue
		}
		if _, local, found := strings.Cut(a.Value, ":"); found {
			return local
		}
		return a.Value
	}
	return ""
}
