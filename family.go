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
	"errors"
	"fmt"
)

// typed is implemented by all values which correspond to one of several
// schema types derived from a common base.
type typed interface {
	SchemaType() string
}

// family describes a group of Go types which all stand for subtypes of one
// schema type.  Instances are selected by the xsi:type attribute.
type family[T typed] struct {
	// base is the declared schema type of elements holding family members.
	// Members of any other type are written with an xsi:type attribute.
	// If base is empty, xsi:type is always written.
	base string

	types map[string]func() T

	// other, if set, constructs a value for unknown schema types.
	other func(schemaType string) T
}

var errNilElement = errors.New("nil element")

func (f *family[T]) encode(e *xml.Encoder, start xml.StartElement, v T) error {
	if any(v) == nil {
		return fmt.Errorf("%s: %w", start.Name.Local, errNilElement)
	}

	start.Attr = append([]xml.Attr(nil), start.Attr...)
	if t := v.SchemaType(); f.base == "" || t != f.base {
		start.Attr = append(start.Attr, typeAttr(t))
	}
	return e.EncodeElement(v, start)
}

func (f *family[T]) decode(d *xml.Decoder, start xml.StartElement) (T, error) {
	var zero T

	t := schemaTypeOf(start)
	if t == "" {
		t = f.base
	}

	var v T
	if mk, ok := f.types[t]; ok {
		v = mk()
	} else if f.other != nil && t != "" {
		v = f.other(t)
	} else {
		return zero, fmt.Errorf("%s: unsupported schema type %q", start.Name.Local, t)
	}

	err := d.DecodeElement(v, &start)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// encodeWrapped writes items as child elements of start.
func encodeWrapped[T any](e *xml.Encoder, start xml.StartElement, child string, items []T) error {
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}
	name := xml.StartElement{Name: xml.Name{Local: child}}
	for i := range items {
		err = e.EncodeElement(&items[i], name)
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// decodeWrapped reads the child elements of the element opened by start.
// Children with other names are skipped.
func decodeWrapped[T any](d *xml.Decoder, start xml.StartElement, child string) ([]T, error) {
	var items []T
	for {
		t, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := t.(type) {
		case xml.StartElement:
			if t.Name.Local != child {
				err = d.Skip()
				if err != nil {
					return nil, err
				}
				continue
			}
			var v T
			err = d.DecodeElement(&v, &t)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		case xml.EndElement:
			return items, nil
		}
	}
}
