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

package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"astron.nl/go/sip/internal/logging"
)

// node is an element of the schema document.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// enum is an enumerated simple type of the schema.
type enum struct {
	// Name is the schema name of the type.  Anonymous types are named
	// after the element or attribute they belong to.
	Name   string
	Values []string
}

// goType returns the name of the Go type for e.
func (e *enum) goType() string {
	if name, ok := typeNames[e.Name]; ok {
		return name
	}
	name := exported(e.Name)
	if strings.HasSuffix(name, "TypeType") {
		name = strings.TrimSuffix(name, "Type")
	}
	return name
}

// prefix returns the common prefix of the constant names.
func (e *enum) prefix() string {
	return strings.TrimSuffix(e.goType(), "Type")
}

// typeNames overrides the Go names of schema types whose names would
// otherwise be unclear.
var typeNames = map[string]string{
	"clock": "ClockFrequency",
}

func exported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

var title = cases.Title(language.Und, cases.NoLower)

// constName returns the Go identifier for one enumeration value.  Words
// are capitalized and joined; an underscore separates adjacent numbers.
func constName(prefix, value string) string {
	value = strings.ReplaceAll(value, "'", "")
	words := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	b.WriteString(prefix)
	prevDigit := false
	for i, w := range words {
		first := []rune(w)[0]
		if i > 0 && prevDigit && unicode.IsDigit(first) {
			b.WriteByte('_')
		}
		b.WriteString(title.String(w))
		last := []rune(w)[len([]rune(w))-1]
		prevDigit = unicode.IsDigit(last)
	}
	return b.String()
}

const xsdNamespace = "http://www.w3.org/2001/XMLSchema"

// parseEnums returns the enumerations of the schema read from r, sorted by
// Go type name.  Values keep their schema order.
func parseEnums(r io.Reader, logger *slog.Logger) ([]*enum, error) {
	logger = logging.OrNop(logger)

	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if root.XMLName.Space != xsdNamespace || root.XMLName.Local != "schema" {
		return nil, fmt.Errorf("parse schema: root element is %s, not xs:schema", root.XMLName.Local)
	}

	found := make(map[string]*enum)
	var walk func(n *node, owner string)
	walk = func(n *node, owner string) {
		if n.XMLName.Space != xsdNamespace {
			return
		}
		switch n.XMLName.Local {
		case "element", "attribute":
			if name := n.attr("name"); name != "" {
				owner = name
			}
		case "simpleType":
			name := n.attr("name")
			if name == "" {
				name = owner
			}
			if values := enumValues(n); len(values) > 0 && name != "" {
				if prev, dup := found[name]; dup {
					if !slices.Equal(prev.Values, values) {
						logger.Warn("conflicting enumerations, keeping the first",
							logging.String("type", name))
					}
					return
				}
				found[name] = &enum{Name: name, Values: values}
			}
			return
		}
		for i := range n.Children {
			walk(&n.Children[i], owner)
		}
	}
	walk(&root, "")

	names := maps.Keys(found)
	slices.Sort(names)

	enums := make([]*enum, 0, len(found))
	for _, name := range names {
		enums = append(enums, found[name])
	}
	slices.SortStableFunc(enums, func(a, b *enum) int {
		return strings.Compare(a.goType(), b.goType())
	})
	return enums, nil
}

func enumValues(simpleType *node) []string {
	var values []string
	for _, restriction := range simpleType.Children {
		if restriction.XMLName.Local != "restriction" {
			continue
		}
		for _, facet := range restriction.Children {
			if facet.XMLName.Local == "enumeration" {
				values = append(values, facet.attr("value"))
			}
		}
	}
	return values
}

// generate returns the Go source declaring the enumerations.
func generate(enums []*enum, pkg, schemaName string) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by sipconst from %s; DO NOT EDIT.\n\n", schemaName)
	fmt.Fprintf(buf, "package %s\n", pkg)

	seen := make(map[string]string)
	for _, e := range enums {
		typ := e.goType()
		fmt.Fprintf(buf, "\n// %s is the %s enumeration of the SIP schema.\n", typ, e.Name)
		fmt.Fprintf(buf, "type %s string\n\n", typ)
		fmt.Fprintf(buf, "// Values of %s.\nconst (\n", typ)
		for _, v := range e.Values {
			name := constName(e.prefix(), v)
			if other, dup := seen[name]; dup {
				return nil, fmt.Errorf("%s: value %q maps to %s, which is already used by %s",
					e.Name, v, name, other)
			}
			seen[name] = e.Name + " " + v
			fmt.Fprintf(buf, "\t%s %s = %q\n", name, typ, v)
		}
		buf.WriteString(")\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
