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
	"strconv"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// RawElement is an XML element which this package does not interpret.
// The element is kept as a token stream with resolved names, so that it can
// be written under namespace prefixes different from the ones it was read
// with.  Values of xsi:type attributes are resolved in the same way.
type RawElement struct {
	Tokens []xml.Token
}

// Name returns the name of the element.
func (r RawElement) Name() xml.Name {
	if len(r.Tokens) == 0 {
		return xml.Name{}
	}
	if start, ok := r.Tokens[0].(xml.StartElement); ok {
		return start.Name
	}
	return xml.Name{}
}

// Text returns the character data directly inside the element.
func (r RawElement) Text() string {
	var b strings.Builder
	depth := 0
	for _, t := range r.Tokens {
		switch t := t.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				b.Write(t)
			}
		}
	}
	return b.String()
}

// UnmarshalXML implements the xml.Unmarshaler interface.
func (r *RawElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var tokens []xml.Token
	var scopes []map[string]string

	var t xml.Token = start
	for {
		switch t := t.(type) {
		case xml.StartElement:
			decls, attrs := splitDeclarations(t.Attr)
			scopes = append(scopes, decls)
			for i, a := range attrs {
				if isTypeAttr(a.Name) {
					attrs[i].Value = resolveQName(a.Value, scopes)
				}
			}
			tokens = append(tokens, xml.StartElement{Name: t.Name, Attr: attrs})
		case xml.EndElement:
			scopes = scopes[:len(scopes)-1]
			tokens = append(tokens, t)
			if len(scopes) == 0 {
				r.Tokens = tokens
				return nil
			}
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				tokens = append(tokens, t.Copy())
			}
		case xml.Comment:
			tokens = append(tokens, t.Copy())
		}

		var err error
		t, err = d.Token()
		if err != nil {
			return err
		}
	}
}

// resolve resolves the xsi:type values which were left with a prefix
// declared outside the element.
func (r *RawElement) resolve(ns map[string]string) {
	scopes := []map[string]string{ns}
	for i, t := range r.Tokens {
		start, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		for j, a := range start.Attr {
			if isTypeAttr(a.Name) {
				start.Attr[j].Value = resolveQName(a.Value, scopes)
			}
		}
		r.Tokens[i] = start
	}
}

// MarshalXML implements the xml.Marshaler interface.  The name in start
// is ignored.
func (r RawElement) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	prefixes := make(map[string]string)
	var decls []xml.Attr
	foreign := func(ns string) {
		if ns == "" || ns == xmlNamespace || defaultPrefix[ns] != "" || prefixes[ns] != "" {
			return
		}
		p := "ns" + strconv.Itoa(len(prefixes)+1)
		prefixes[ns] = p
		decls = append(decls, xml.Attr{Name: xml.Name{Local: "xmlns:" + p}, Value: ns})
	}
	for _, t := range r.Tokens {
		if start, ok := t.(xml.StartElement); ok {
			foreign(start.Name.Space)
			for _, a := range start.Attr {
				foreign(a.Name.Space)
				if isTypeAttr(a.Name) {
					ns, _, _ := splitQName(a.Value)
					foreign(ns)
				}
			}
		}
	}

	qualify := func(n xml.Name) xml.Name {
		switch {
		case n.Space == "":
			return n
		case n.Space == xmlNamespace:
			return xml.Name{Local: "xml:" + n.Local}
		case defaultPrefix[n.Space] != "":
			return prefixedName(n.Space, n.Local)
		default:
			return xml.Name{Local: prefixes[n.Space] + ":" + n.Local}
		}
	}

	first := true
	for _, t := range r.Tokens {
		switch t := t.(type) {
		case xml.StartElement:
			out := xml.StartElement{Name: qualify(t.Name)}
			if first {
				out.Attr = append(out.Attr, decls...)
				first = false
			}
			for _, a := range t.Attr {
				if isTypeAttr(a.Name) {
					ns, local, ok := splitQName(a.Value)
					if ok {
						a.Value = qualify(xml.Name{Space: ns, Local: local}).Local
					}
				}
				out.Attr = append(out.Attr, xml.Attr{Name: qualify(a.Name), Value: a.Value})
			}
			if err := e.EncodeToken(out); err != nil {
				return err
			}
		case xml.EndElement:
			if err := e.EncodeToken(xml.EndElement{Name: qualify(t.Name)}); err != nil {
				return err
			}
		default:
			if err := e.EncodeToken(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func isTypeAttr(n xml.Name) bool {
	return n.Local == "type" && (n.Space == xsiNamespace || n.Space == defaultPrefix[xsiNamespace])
}

// splitDeclarations separates namespace declarations from the other
// attributes.  The declarations are returned as a prefix to namespace
// map, with "" standing for the default namespace.
func splitDeclarations(attrs []xml.Attr) (map[string]string, []xml.Attr) {
	decls := make(map[string]string)
	var rest []xml.Attr
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			decls[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			decls[""] = a.Value
		default:
			rest = append(rest, a)
		}
	}
	return decls, rest
}

// resolveQName turns a prefixed name into the form "{namespace}local",
// looking up the prefix from the innermost scope outwards.  Names with an
// unknown prefix are returned unchanged.
func resolveQName(value string, scopes []map[string]string) string {
	if strings.HasPrefix(value, "{") {
		return value
	}
	prefix, local, found := strings.Cut(value, ":")
	if !found {
		prefix, local = "", value
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		if ns, ok := scopes[i][prefix]; ok {
			if ns == "" {
				return local
			}
			return "{" + ns + "}" + local
		}
	}
	return value
}

// splitQName splits a name produced by resolveQName.  A name whose prefix
// could not be resolved is taken to be in the SIP namespace, which is how
// schemaTypeOf reads xsi:type values.
func splitQName(value string) (ns, local string, ok bool) {
	if rest, found := strings.CutPrefix(value, "{"); found {
		ns, local, ok = strings.Cut(rest, "}")
		return ns, local, ok
	}
	if _, local, found := strings.Cut(value, ":"); found {
		return Namespace, local, true
	}
	return "", value, false
}

// OtherDataProduct is a data product of a schema type which this package
// does not know.  The type-specific child elements are kept as raw XML, so
// that such products survive being read and written again.
type OtherDataProduct struct {
	DataProductInfo
	TypeName string       `xml:"-"`
	Extra    []RawElement `xml:",any"`
}

func (dp *OtherDataProduct) SchemaType() string { return dp.TypeName }

// OtherPipeline is a pipeline run of a schema type which this package does
// not know.
type OtherPipeline struct {
	PipelineInfo
	TypeName string       `xml:"-"`
	Extra    []RawElement `xml:",any"`
}

func (p *OtherPipeline) SchemaType() string { return p.TypeName }

// resolveRaw resolves the xsi:type values of the raw elements in doc
// against the namespace declarations of the root element.
func resolveRaw(doc *Document, ns map[string]string) {
	var extras [][]RawElement
	dps := append([]DataProduct{doc.DataProduct}, doc.RelatedDataProducts...)
	for _, dp := range dps {
		if o, ok := dp.(*OtherDataProduct); ok {
			extras = append(extras, o.Extra)
		}
	}
	for _, p := range doc.PipelineRuns {
		if o, ok := p.(*OtherPipeline); ok {
			extras = append(extras, o.Extra)
		}
	}
	for _, list := range extras {
		for i := range list {
			list[i].resolve(ns)
		}
	}
}
