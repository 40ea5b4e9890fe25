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

package feedback

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"astron.nl/go/sip"
	"astron.nl/go/sip/internal/logging"
)

const (
	// DefaultPrefix is where observation settings are found in feedback
	// written by the online system.
	DefaultPrefix = "ObsSW.Observation"

	// DefaultDataProductPrefix is where the output data products are
	// listed.
	DefaultDataProductPrefix = DefaultPrefix + ".DataProducts"

	// DefaultSource is the identifier source used when none is given.
	DefaultSource = "SIPlib"
)

// Options controls the conversion of feedback entries into SIP records.
type Options struct {
	// Prefix locates the data product entries.  The default is
	// DefaultPrefix for DataProducts and DefaultDataProductPrefix for
	// DataProductSIPs.
	Prefix string

	// ObservationPrefix locates the observation settings used by
	// DataProductSIPs.  The default is DefaultPrefix.
	ObservationPrefix string

	// Source is the identifier source of new identifiers.
	Source string

	// Issuer hands out new identifiers.  The default is a
	// sip.LocalIssuer.
	Issuer sip.IDIssuer

	// ProcessIdentifier and SubArrayPointingIdentifier are assigned to
	// the data products.  New identifiers are created if they are unset.
	ProcessIdentifier          sip.Identifier
	SubArrayPointingIdentifier sip.Identifier

	// Stations gives the antenna field positions needed by
	// DataProductSIPs.
	Stations *sip.StationTable
}

func (o *Options) withDefaults(prefix string) Options {
	res := Options{}
	if o != nil {
		res = *o
	}
	if res.Prefix == "" {
		res.Prefix = prefix
	}
	if res.ObservationPrefix == "" {
		res.ObservationPrefix = DefaultPrefix
	}
	if res.Source == "" {
		res.Source = DefaultSource
	}
	if res.Issuer == nil {
		res.Issuer = sip.NewLocalIssuer()
	}
	return res
}

type outputKind int

const (
	correlatedOutput outputKind = iota
	beamFormedOutput
	otherOutput
)

// outputKey is the key of a data product entry, such as
// "Output_Correlated_[12]".
type outputKey struct {
	key   string
	kind  outputKind
	index int
}

func parseOutputKey(key string) outputKey {
	k := outputKey{key: key, kind: otherOutput, index: -1}
	switch {
	case strings.HasPrefix(key, "Output_Correlated_["):
		k.kind = correlatedOutput
	case strings.HasPrefix(key, "Output_Beamformed_["):
		k.kind = beamFormedOutput
	}
	if _, rest, ok := strings.Cut(key, "["); ok {
		if idx, _, ok := strings.Cut(rest, "]"); ok {
			if n, err := strconv.Atoi(idx); err == nil {
				k.index = n
			}
		}
	}
	return k
}

// outputKeys returns the data product entries of t, ordered by kind and
// index.
func outputKeys(t Tree) []outputKey {
	names := maps.Keys(t)
	slices.Sort(names)

	var keys []outputKey
	for _, key := range names {
		if !strings.HasPrefix(key, "Output_") {
			continue
		}
		if _, isTree := t[key].(Tree); !isTree {
			continue
		}
		keys = append(keys, parseOutputKey(key))
	}
	slices.SortStableFunc(keys, func(a, b outputKey) int {
		return cmp.Or(cmp.Compare(a.kind, b.kind), cmp.Compare(a.index, b.index))
	})
	return keys
}

// DataProducts converts the "Output_..." entries below opts.Prefix into
// data products.  Correlated and beam formed outputs are supported; other
// entries, and entries which cannot be converted, are logged and skipped.
func (f *Feedback) DataProducts(ctx context.Context, opts *Options) ([]sip.DataProduct, error) {
	o := opts.withDefaults(DefaultPrefix)
	return f.dataProducts(ctx, o)
}

func (f *Feedback) dataProducts(ctx context.Context, o Options) ([]sip.DataProduct, error) {
	var err error
	if o.ProcessIdentifier.IsZero() {
		o.ProcessIdentifier, err = sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
		if err != nil {
			return nil, err
		}
	}
	if o.SubArrayPointingIdentifier.IsZero() {
		o.SubArrayPointingIdentifier, err = sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
		if err != nil {
			return nil, err
		}
	}

	entries := f.Get(o.Prefix)
	var res []sip.DataProduct
	for _, key := range outputKeys(entries) {
		if key.kind == otherOutput {
			f.logger.Info("skipping unsupported data product", logging.String("key", key.key))
			continue
		}
		f.logger.Debug("parsing data product", logging.String("key", key.key))

		id, err := sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
		if err != nil {
			return nil, err
		}

		entry := entries.Sub(key.key)
		var dp sip.DataProduct
		switch key.kind {
		case correlatedOutput:
			dp, err = correlatedDataProduct(entry, id, o)
		case beamFormedOutput:
			dp, err = beamFormedDataProduct(entry, id, o)
		}
		if err != nil {
			f.logger.Warn("skipping data product",
				logging.String("key", key.key), logging.Error(err))
			continue
		}
		res = append(res, dp)
	}
	return res, nil
}

func dataProductInfo(entry Tree, id sip.Identifier, o Options) (sip.DataProductInfo, error) {
	size, err := strconv.ParseInt(entry.String("size"), 10, 64)
	if err != nil {
		return sip.DataProductInfo{}, fmt.Errorf("size: %w", err)
	}
	filename := entry.String("filename")
	if filename == "" {
		return sip.DataProductInfo{}, fmt.Errorf("no file name")
	}
	id.Name = filename

	return sip.DataProductInfo{
		Type:              sip.DataProductCorrelatorData,
		Identifier:        id,
		Size:              size,
		FileName:          filename,
		FileFormat:        sip.FileFormat(entry.String("fileFormat")),
		ProcessIdentifier: o.ProcessIdentifier,
	}, nil
}

// fieldParser collects the first error of a series of conversions.
type fieldParser struct {
	entry Tree
	err   error
}

func (p *fieldParser) float(key string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.entry.String(key)), 64)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
	return v
}

func (p *fieldParser) int(key string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(p.entry.String(key)))
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
	return v
}

func (p *fieldParser) dateTime(key string) sip.DateTime {
	if p.err != nil {
		return sip.DateTime{}
	}
	// the date and the time are separated by a space in feedback
	v, err := sip.ParseDateTime(strings.Replace(p.entry.String(key), " ", "T", 1))
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
	return v
}

func correlatedDataProduct(entry Tree, id sip.Identifier, o Options) (sip.DataProduct, error) {
	info, err := dataProductInfo(entry, id, o)
	if err != nil {
		return nil, err
	}

	p := &fieldParser{entry: entry}
	dp := &sip.CorrelatedDataProduct{
		DataProductInfo:            info,
		SubArrayPointingIdentifier: o.SubArrayPointingIdentifier,
		Subband:                    p.int("subband"),
		StartTime:                  p.dateTime("startTime"),
		Duration:                   sip.FormatSeconds(p.float("duration")),
		IntegrationInterval:        sip.Seconds(p.float("integrationInterval")),
		CentralFrequency:           sip.Hz(p.float("centralFrequency")),
		ChannelWidth:               sip.Hz(p.float("channelWidth")),
		ChannelsPerSubband:         p.int("channelsPerSubband"),
	}
	if entry.String("stationSubband") != "" {
		sb := p.int("stationSubband")
		dp.StationSubband = &sb
	}
	if p.err != nil {
		return nil, p.err
	}
	return dp, nil
}

// beamFormedDataProduct converts a beam formed output.  Feedback does not
// describe the beams, so the product is written without beams.
func beamFormedDataProduct(entry Tree, id sip.Identifier, o Options) (sip.DataProduct, error) {
	info, err := dataProductInfo(entry, id, o)
	if err != nil {
		return nil, err
	}
	info.Type = sip.DataProductBeamFormedData
	return sip.NewBeamFormedDataProduct(info), nil
}
