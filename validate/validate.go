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

// Package validate checks SIP documents against the LTA SIP XML schema and
// combines schema validation with the consistency check of the provenance
// graph.
package validate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"

	"astron.nl/go/sip"
	"astron.nl/go/sip/internal/logging"
)

// DefaultSchemaPath returns the location of the installed LTA SIP schema,
// $LOFARROOT/etc/lta/LTA-SIP.xsd.  LOFARROOT defaults to /opt/lofar.
func DefaultSchemaPath() string {
	root := os.Getenv("LOFARROOT")
	if root == "" {
		root = "/opt/lofar"
	}
	return filepath.Join(root, "etc", "lta", "LTA-SIP.xsd")
}

// Validator validates documents against a compiled schema.  A Validator
// can be used concurrently.
type Validator struct {
	schema     *xsd.Schema
	schemaPath string
	logger     *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to report validation results.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New loads and compiles the schema at schemaPath.  If schemaPath is empty,
// DefaultSchemaPath is used.
func New(schemaPath string, opts ...Option) (*Validator, error) {
	if schemaPath == "" {
		schemaPath = DefaultSchemaPath()
	}

	v := &Validator{schemaPath: schemaPath}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = logging.NewComponentLogger(v.logger, "validate")

	schema, err := xsd.LoadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", schemaPath, err)
	}
	v.schema = schema
	v.logger.Debug("schema loaded", logging.Path(schemaPath))
	return v, nil
}

// SchemaPath returns the file name of the schema.
func (v *Validator) SchemaPath() string {
	return v.schemaPath
}

// Validate reads an XML document from r and checks it against the schema.
// If the document is well-formed but not valid, the error is a
// *SchemaError.
func (v *Validator) Validate(r io.Reader) error {
	return v.validate("<input>", r)
}

// ValidateFile checks the XML document in the named file.
func (v *Validator) ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return v.validate(path, f)
}

// ValidateDocument encodes doc and checks the result against the schema.
func (v *Validator) ValidateDocument(doc *sip.Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return v.validate("<document>", bytes.NewReader(data))
}

func (v *Validator) validate(name string, r io.Reader) error {
	err := v.schema.Validate(r)
	if err == nil {
		v.logger.Debug("document is valid", logging.Path(name))
		return nil
	}

	list, ok := xsderrors.AsValidations(err)
	if !ok {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	se := &SchemaError{Document: name}
	for _, x := range list {
		switch xsderrors.ErrorCode(x.Code) {
		case xsderrors.ErrXMLParse, xsderrors.ErrSchemaNotLoaded:
			return fmt.Errorf("validate %s: %w", name, err)
		}
		se.Violations = append(se.Violations, Violation{
			Code:    x.Code,
			Message: x.Message,
			Path:    x.Path,
			Line:    x.Line,
			Column:  x.Column,
		})
	}
	v.logger.Info("document is not valid",
		logging.Path(name), logging.Int("violations", len(se.Violations)))
	return se
}

// Violation is a single schema constraint broken by a document.
type Violation struct {
	Code    string
	Message string
	Path    string
	Line    int
	Column  int
}

func (x Violation) String() string {
	var b strings.Builder
	if x.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", x.Line, x.Column)
	}
	fmt.Fprintf(&b, "[%s] %s", x.Code, x.Message)
	if x.Path != "" {
		fmt.Fprintf(&b, " at %s", x.Path)
	}
	return b.String()
}

// SchemaError lists the schema violations of a document.
type SchemaError struct {
	Document   string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	switch len(e.Violations) {
	case 0:
		return e.Document + ": not valid"
	case 1:
		return fmt.Sprintf("%s: %s", e.Document, e.Violations[0])
	default:
		return fmt.Sprintf("%s: %s (and %d more)", e.Document, e.Violations[0], len(e.Violations)-1)
	}
}

// Report is the outcome of Check for one file.
type Report struct {
	Path string

	// SchemaErr is the result of schema validation.
	SchemaErr error

	// ConsistencyErr is the result of the consistency check.  If the file
	// could not be decoded, it holds the decoding error.
	ConsistencyErr error
}

// OK reports whether the file passed both checks.
func (r *Report) OK() bool {
	return r.SchemaErr == nil && r.ConsistencyErr == nil
}

// Check validates the SIP in the named file against the schema, decodes it
// and checks the consistency of its provenance graph.  The returned error
// is non-nil only if the file cannot be read; findings about the document
// are recorded in the report.
func Check(ctx context.Context, v *Validator, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	report := &Report{Path: path}
	report.SchemaErr = v.validate(path, bytes.NewReader(data))

	doc, err := sip.Parse(data)
	if err != nil {
		report.ConsistencyErr = err
	} else {
		report.ConsistencyErr = sip.CheckConsistency(doc)
	}

	if report.OK() {
		v.logger.Info("SIP is valid and consistent", logging.Path(path))
	}
	return report, nil
}
