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
	"bytes"
	"context"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/maps"

	"astron.nl/go/sip"
)

// seqIssuer hands out the identifiers "1", "2", ...
type seqIssuer struct {
	n int
}

func (s *seqIssuer) CreateID(ctx context.Context, source, label string) (string, error) {
	s.n++
	return strconv.Itoa(s.n), nil
}

func (s *seqIssuer) LookupID(ctx context.Context, source, label string) (string, error) {
	return "", sip.ErrIDNotFound
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func readTestFeedback(t *testing.T, logger *slog.Logger) *Feedback {
	t.Helper()
	fd, err := os.Open("testdata/L123456.feedback")
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	f, err := Parse(fd, logger)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func testStations(t *testing.T) *sip.StationTable {
	t.Helper()
	stations, err := sip.LoadStationTable("testdata/station_coordinates.conf")
	if err != nil {
		t.Fatal(err)
	}
	return stations
}

func TestParse(t *testing.T) {
	in := `a.b.c=1
a.b.d = "two"
a.e=

# comment
x=3
`
	f, err := Parse(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := Tree{
		"a": Tree{
			"b": Tree{"c": "1", "d": "two"},
		},
		"x": "3",
	}
	if d := cmp.Diff(want, f.Tree()); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
	if got := f.Tree().String("a.b.d"); got != "two" {
		t.Errorf("String(a.b.d) = %q, want %q", got, "two")
	}
	for _, path := range []string{"a.b", "a.b.c.d", "missing", "x.y"} {
		if got := f.Tree().String(path); got != "" {
			t.Errorf("String(%s) = %q, want empty", path, got)
		}
	}
}

func TestParseSkipsBadLines(t *testing.T) {
	in := `a.b=1
no equals sign here
c=d=e
a.b.c=2
a=3
a.f=4
`
	logger, buf := testLogger()
	f, err := Parse(strings.NewReader(in), logger)
	if err != nil {
		t.Fatal(err)
	}

	want := Tree{"a": Tree{"b": "1", "f": "4"}}
	if d := cmp.Diff(want, f.Tree()); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
	if n := strings.Count(buf.String(), "skipping line"); n != 4 {
		t.Errorf("got %d warnings, want 4:\n%s", n, buf.String())
	}
}

func TestGet(t *testing.T) {
	logger, buf := testLogger()
	f, err := Parse(strings.NewReader("a.b.c=1\na.b.d=2\n"), logger)
	if err != nil {
		t.Fatal(err)
	}

	want := Tree{"c": "1", "d": "2"}
	if d := cmp.Diff(want, f.Get("a.b")); d != "" {
		t.Errorf("Get(a.b) mismatch (-want +got):\n%s", d)
	}
	if strings.Contains(buf.String(), "not found") {
		t.Errorf("unexpected warning:\n%s", buf.String())
	}

	// a missing component keeps the deepest subtree found
	if d := cmp.Diff(want, f.Get("a.x.b")); d != "" {
		t.Errorf("Get(a.x.b) mismatch (-want +got):\n%s", d)
	}
	if !strings.Contains(buf.String(), "prefix component not found") {
		t.Errorf("missing warning:\n%s", buf.String())
	}
}

func TestAntennaSet(t *testing.T) {
	cases := []struct {
		in   string
		want sip.AntennaSetType
	}{
		{"HBA_DUAL_INNER", sip.AntennaSetHBADualInner},
		{"HBA_DUAL", sip.AntennaSetType("HBA Dual")},
		{"LBA_OUTER", sip.AntennaSetType("LBA Outer")},
		{"HBA_ZERO_INNER", sip.AntennaSetType("HBA Zero Inner")},
	}
	for _, c := range cases {
		if got := antennaSet(c.in); got != c.want {
			t.Errorf("antennaSet(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInstrumentFilter(t *testing.T) {
	got, err := instrumentFilter("HBA_110_190")
	if err != nil {
		t.Fatal(err)
	}
	if got != sip.FilterSelection110_190MHz {
		t.Errorf("got %q, want %q", got, sip.FilterSelection110_190MHz)
	}
	if _, err := instrumentFilter("HBA"); err == nil {
		t.Error("short filter name accepted")
	}
}

func TestOutputKeys(t *testing.T) {
	tree := Tree{
		"Output_Correlated_[10]": Tree{},
		"Output_Correlated_[2]":  Tree{},
		"Output_Beamformed_[0]":  Tree{},
		"Output_Other_[1]":       Tree{},
		"Output_Correlated_[1]":  "not a tree",
		"nrOfOutput_Correlated_": "2",
	}
	var got []string
	for _, k := range outputKeys(tree) {
		got = append(got, k.key)
	}
	want := []string{
		"Output_Correlated_[2]",
		"Output_Correlated_[10]",
		"Output_Beamformed_[0]",
		"Output_Other_[1]",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
}

func TestDataProducts(t *testing.T) {
	logger, buf := testLogger()
	f := readTestFeedback(t, logger)

	proc := sip.Identifier{Source: "test", Identifier: "proc"}
	sap := sip.Identifier{Source: "test", Identifier: "sap"}
	got, err := f.DataProducts(context.Background(), &Options{
		Prefix:                     DefaultDataProductPrefix,
		Source:                     "test",
		Issuer:                     &seqIssuer{},
		ProcessIdentifier:          proc,
		SubArrayPointingIdentifier: sap,
	})
	if err != nil {
		t.Fatal(err)
	}

	stationSubband := 100
	want := []sip.DataProduct{
		&sip.CorrelatedDataProduct{
			DataProductInfo: sip.DataProductInfo{
				Type: sip.DataProductCorrelatorData,
				Identifier: sip.Identifier{
					Source:     "test",
					Identifier: "1",
					Name:       "L123456_SAP000_SB000_uv.MS",
				},
				Size:              1048576,
				FileName:          "L123456_SAP000_SB000_uv.MS",
				FileFormat:        sip.FileFormatAIPSCASA,
				ProcessIdentifier: proc,
			},
			SubArrayPointingIdentifier: sap,
			Subband:                    0,
			StationSubband:             &stationSubband,
			StartTime:                  sip.DateTime{Time: time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)},
			Duration:                   "PT1H30M",
			IntegrationInterval:        sip.Seconds(1.00139),
			CentralFrequency:           sip.Hz(119531250),
			ChannelWidth:               sip.Hz(3051.7578125),
			ChannelsPerSubband:         64,
		},
		sip.NewBeamFormedDataProduct(sip.DataProductInfo{
			Type: sip.DataProductBeamFormedData,
			Identifier: sip.Identifier{
				Source:     "test",
				Identifier: "3",
				Name:       "L123456_SAP000_B000_S0_P000_bf.h5",
			},
			Size:              2097152,
			FileName:          "L123456_SAP000_B000_S0_P000_bf.h5",
			FileFormat:        sip.FileFormatHDF5,
			ProcessIdentifier: proc,
		}),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("data products mismatch (-want +got):\n%s", d)
	}

	log := buf.String()
	for _, msg := range []string{
		"skipping data product",
		"skipping unsupported data product",
		"Output_InstrumentModel_[0]",
	} {
		if !strings.Contains(log, msg) {
			t.Errorf("log does not contain %q:\n%s", msg, log)
		}
	}
}

func TestDataProductsNewIdentifiers(t *testing.T) {
	f, err := Parse(strings.NewReader(
		"ObsSW.Observation.Output_Beamformed_[0].size=1\n"+
			"ObsSW.Observation.Output_Beamformed_[0].filename=a.h5\n"), nil)
	if err != nil {
		t.Fatal(err)
	}

	dps, err := f.DataProducts(context.Background(), &Options{Issuer: &seqIssuer{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(dps) != 1 {
		t.Fatalf("got %d data products, want 1", len(dps))
	}
	info := dps[0].Info()
	want := sip.Identifier{Source: DefaultSource, Identifier: "1"}
	if d := cmp.Diff(want, info.ProcessIdentifier); d != "" {
		t.Errorf("process identifier mismatch (-want +got):\n%s", d)
	}
	if info.Identifier.Identifier != "3" {
		t.Errorf("data product identifier = %q, want %q", info.Identifier.Identifier, "3")
	}
}

func TestDataProductsCanceled(t *testing.T) {
	f := readTestFeedback(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.DataProducts(ctx, nil); err == nil {
		t.Error("canceled context accepted")
	}
}

func TestDataProductSIPs(t *testing.T) {
	f := readTestFeedback(t, nil)
	sips, err := f.DataProductSIPs(context.Background(), &Options{
		Source:   "test",
		Issuer:   &seqIssuer{},
		Stations: testStations(t),
	})
	if err != nil {
		t.Fatal(err)
	}

	names := maps.Keys(sips)
	slices.Sort(names)
	wantNames := []string{
		"L123456_SAP000_B000_S0_P000_bf.h5",
		"L123456_SAP000_SB000_uv.MS",
	}
	if d := cmp.Diff(wantNames, names); d != "" {
		t.Fatalf("SIP names mismatch (-want +got):\n%s", d)
	}

	doc := sips["L123456_SAP000_SB000_uv.MS"]
	wantProject := sip.Project{
		Code:                "LC7_001",
		PrimaryInvestigator: "J. Doe",
		CoInvestigators:     []string{"B. Jones"},
		ContactAuthor:       "A. Smith",
		Telescope:           sip.TelescopeLOFAR,
		Description:         "Deep field survey",
	}
	if d := cmp.Diff(wantProject, doc.Project); d != "" {
		t.Errorf("project mismatch (-want +got):\n%s", d)
	}

	if len(doc.Observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(doc.Observations))
	}
	obs := doc.Observations[0]
	start := sip.DateTime{Time: time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)}
	stations := testStations(t)
	cs001, err := stations.Preconfigured("CS001", sip.AntennaFieldHBA0, sip.AntennaFieldHBA1)
	if err != nil {
		t.Fatal(err)
	}
	wantObs := &sip.Observation{
		ProcessInfo: sip.ProcessInfo{
			Identifier:          sip.Identifier{Source: "test", Identifier: "2"},
			ObservationID:       sip.Identifier{Source: "test", Identifier: "3"},
			StrategyName:        "HBA Dual Inner",
			StrategyDescription: "HBA Dual Inner",
			StartTime:           start,
			Duration:            "PT1H30M",
		},
		ObservingMode:             sip.ObservingModeInterferometer,
		Description:               "Deep field survey",
		InstrumentFilter:          sip.FilterSelection110_190MHz,
		Clock:                     sip.ClockMHz(sip.ClockFrequency200),
		StationSelection:          sip.StationSelectionCore,
		AntennaSet:                sip.AntennaSetHBADualInner,
		TimeSystem:                sip.TimeSystemUTC,
		NumberOfStations:          1,
		Stations:                  []sip.Station{cs001},
		NumberOfSubArrayPointings: 1,
		SubArrayPointings: sip.SubArrayPointings{{
			Pointing:        sip.PointingAzAlt(sip.Radians(1.2), sip.Radians(0.7), sip.EquinoxJ2000),
			BeamNumber:      0,
			Identifier:      sip.Identifier{Source: "test", Identifier: "1"},
			MeasurementType: sip.MeasurementTarget,
			TargetName:      "3C196",
			StartTime:       start,
			Duration:        "PT1H30M",
		}},
		NumberOfCorrelatedDataProducts: 2,
		NumberOfBeamFormedDataProducts: 1,
		NumberOfBitsPerSample:          8,
	}
	if d := cmp.Diff(wantObs, obs); d != "" {
		t.Errorf("observation mismatch (-want +got):\n%s", d)
	}

	dp, ok := doc.DataProduct.(*sip.CorrelatedDataProduct)
	if !ok {
		t.Fatalf("data product has type %T", doc.DataProduct)
	}
	if d := cmp.Diff(obs.Identifier, dp.ProcessIdentifier); d != "" {
		t.Errorf("process identifier mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(obs.SubArrayPointings[0].Identifier, dp.SubArrayPointingIdentifier); d != "" {
		t.Errorf("sub-array pointing identifier mismatch (-want +got):\n%s", d)
	}
	if err := sip.CheckConsistency(doc); err != nil {
		t.Errorf("generated SIP is inconsistent: %v", err)
	}
}

func TestDataProductSIPsNoStations(t *testing.T) {
	f := readTestFeedback(t, nil)
	if _, err := f.DataProductSIPs(context.Background(), nil); err == nil {
		t.Error("missing station table accepted")
	}
}
