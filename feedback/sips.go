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
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"astron.nl/go/sip"
	"astron.nl/go/sip/internal/logging"
)

// feedbackTimeLayout is the format of the observation start and stop times.
const feedbackTimeLayout = "2006-01-02 15:04:05"

var errNoStations = errors.New("no station table")

// DataProductSIPs creates one SIP per data product found in the feedback.
// Each SIP describes the data product, the observation which created it
// and the project from the "Campaign" settings.  The result maps file
// names to documents.
func (f *Feedback) DataProductSIPs(ctx context.Context, opts *Options) (map[string]*sip.Document, error) {
	o := opts.withDefaults(DefaultDataProductPrefix)
	if o.Stations == nil {
		return nil, errNoStations
	}

	obs := f.Get(o.ObservationPrefix)
	project := projectOf(obs.Sub("Campaign"))

	observation, err := f.observation(ctx, obs, f.Get(o.Prefix), o)
	if err != nil {
		return nil, err
	}
	o.ProcessIdentifier = observation.Identifier
	if len(observation.SubArrayPointings) > 0 && o.SubArrayPointingIdentifier.IsZero() {
		o.SubArrayPointingIdentifier = observation.SubArrayPointings[0].Identifier
	}

	dps, err := f.dataProducts(ctx, o)
	if err != nil {
		return nil, err
	}

	sips := make(map[string]*sip.Document, len(dps))
	for _, dp := range dps {
		name := dp.Info().FileName
		f.logger.Info("creating SIP", logging.String("file", name))

		doc := sip.NewDocument(project, dp)
		doc.AddObservation(observation)
		sips[name] = doc
	}
	return sips, nil
}

func projectOf(campaign Tree) sip.Project {
	p := sip.Project{
		Code:                campaign.String("name"),
		PrimaryInvestigator: campaign.String("PI"),
		ContactAuthor:       campaign.String("contact"),
		Description:         campaign.String("title"),
	}
	if coI := campaign.String("CO_I"); coI != "" {
		p.CoInvestigators = []string{coI}
	}
	return p
}

// antennaSet converts the antenna set names used by the online system, for
// example "HBA_DUAL_INNER", to the names used in SIPs ("HBA Dual Inner").
func antennaSet(s string) sip.AntennaSetType {
	parts := strings.Split(s, "_")
	title := cases.Title(language.English)
	for i := 1; i < len(parts); i++ {
		parts[i] = title.String(parts[i])
	}
	return sip.AntennaSetType(strings.Join(parts, " "))
}

// instrumentFilter converts a band filter name like "HBA_110_190" to the
// form "110-190 MHz".
func instrumentFilter(s string) (sip.FilterSelectionType, error) {
	if len(s) < 5 {
		return "", fmt.Errorf("invalid band filter %q", s)
	}
	return sip.FilterSelectionType(strings.ReplaceAll(s[4:], "_", "-") + " MHz"), nil
}

func stationNames(list string) []string {
	list = strings.Trim(strings.TrimSpace(list), "[]")
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (f *Feedback) observation(ctx context.Context, obs, dps Tree, o Options) (*sip.Observation, error) {
	start, err := time.Parse(feedbackTimeLayout, obs.String("startTime"))
	if err != nil {
		return nil, fmt.Errorf("observation start time: %w", err)
	}
	stop, err := time.Parse(feedbackTimeLayout, obs.String("stopTime"))
	if err != nil {
		return nil, fmt.Errorf("observation stop time: %w", err)
	}
	duration := sip.FormatDuration(stop.Sub(start))

	filter, err := instrumentFilter(obs.String("bandFilter"))
	if err != nil {
		return nil, err
	}

	var fieldTypes []sip.AntennaFieldType
	for _, name := range strings.Split(obs.String("antennaArray"), ";") {
		if name = strings.TrimSpace(name); name != "" {
			fieldTypes = append(fieldTypes, sip.AntennaFieldType(name))
		}
	}
	var stations []sip.Station
	for _, name := range stationNames(obs.String("VirtualInstrument.stationList")) {
		st, err := o.Stations.Preconfigured(name, fieldTypes...)
		if err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}

	pointings, err := f.pointings(ctx, obs, sip.DateTime{Time: start}, duration, o)
	if err != nil {
		return nil, err
	}

	procID, err := sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
	if err != nil {
		return nil, err
	}
	obsID, err := sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
	if err != nil {
		return nil, err
	}

	bits := 16
	if s := obs.String("nrBitsPerSample"); s != "" {
		if bits, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("nrBitsPerSample: %w", err)
		}
	}
	count := func(key string) int {
		n, _ := strconv.Atoi(dps.String(key))
		return n
	}

	res := &sip.Observation{
		ProcessInfo: sip.ProcessInfo{
			Identifier:          procID,
			ObservationID:       obsID,
			StrategyName:        obs.String("strategy"),
			StrategyDescription: obs.String("strategy"),
			StartTime:           sip.DateTime{Time: start},
			Duration:            duration,
		},
		ObservingMode:                  sip.ObservingModeType(obs.String("processSubtype")),
		Description:                    obs.String("Campaign.title"),
		InstrumentFilter:               filter,
		Clock:                          sip.ClockMHz(sip.ClockFrequency(obs.String("sampleClock"))),
		StationSelection:               sip.StationSelectionCore,
		AntennaSet:                     antennaSet(obs.String("antennaSet")),
		TimeSystem:                     sip.TimeSystemUTC,
		Stations:                       stations,
		SubArrayPointings:              pointings,
		NumberOfCorrelatedDataProducts: count("nrOfOutput_Correlated_"),
		NumberOfBeamFormedDataProducts: count("nrOfOutput_Beamformed_"),
		NumberOfBitsPerSample:          bits,
	}
	res.UpdateCounts()
	return res, nil
}

// pointings converts the "Beam[n]" entries of the observation.  Beam
// directions are taken to be azimuth and altitude in radians.
func (f *Feedback) pointings(ctx context.Context, obs Tree, start sip.DateTime, duration sip.Duration, o Options) ([]sip.SubArrayPointing, error) {
	type beam struct {
		number int
		tree   Tree
	}
	keys := maps.Keys(obs)
	slices.Sort(keys)

	var beams []beam
	for _, key := range keys {
		k := parseOutputKey(key)
		if !strings.HasPrefix(key, "Beam[") || k.index < 0 {
			continue
		}
		if sub := obs.Sub(key); sub != nil {
			beams = append(beams, beam{number: k.index, tree: sub})
		}
	}
	slices.SortFunc(beams, func(a, b beam) int { return a.number - b.number })

	var res []sip.SubArrayPointing
	for _, b := range beams {
		p := &fieldParser{entry: b.tree}
		az := p.float("angle1")
		alt := p.float("angle2")
		if p.err != nil {
			return nil, fmt.Errorf("beam %d: %w", b.number, p.err)
		}

		sapStart := start
		if b.tree.String("startTime") != "" {
			sapStart = p.dateTime("startTime")
		}
		sapDuration := duration
		if d := b.tree.String("duration"); d != "" && d != "0" {
			sapDuration = sip.FormatSeconds(p.float("duration"))
		}
		if p.err != nil {
			return nil, fmt.Errorf("beam %d: %w", b.number, p.err)
		}

		id, err := sip.NewIdentifier(ctx, o.Issuer, o.Source, "")
		if err != nil {
			return nil, err
		}
		res = append(res, sip.SubArrayPointing{
			Pointing:        sip.PointingAzAlt(sip.Radians(az), sip.Radians(alt), sip.EquinoxJ2000),
			BeamNumber:      b.number,
			Identifier:      id,
			MeasurementType: sip.MeasurementTarget,
			TargetName:      b.tree.String("target"),
			StartTime:       sapStart,
			Duration:        sapDuration,
		})
	}
	return res, nil
}
