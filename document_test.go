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
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ident(source, id string) Identifier {
	return Identifier{Source: source, Identifier: id}
}

func ptr[T any](v T) *T {
	return &v
}

var testStart = DateTime{time.Date(2016, 11, 23, 14, 10, 0, 0, time.UTC)}

func testProcess(id string) ProcessInfo {
	return ProcessInfo{
		Identifier:          ident("SAS", id),
		ObservationID:       ident("SAS", "obs-"+id),
		StrategyName:        "strategy",
		StrategyDescription: "a strategy",
		StartTime:           testStart,
		Duration:            "PT1H",
		Relations:           []ProcessRelation{NewProcessRelation(ident("MoM", "group-1"))},
	}
}

func testDataProductInfo(id, procID string) DataProductInfo {
	return DataProductInfo{
		Type:              DataProductCorrelatorData,
		Identifier:        ident("SAS", id),
		Size:              1024,
		Checksums:         Checksums("d41d8cd98f00b204e9800998ecf8427e", "00000001"),
		FileName:          "L" + id + "_SB000_uv.MS",
		FileFormat:        FileFormatAIPSCASA,
		ProcessIdentifier: ident("SAS", procID),
	}
}

func testStation() Station {
	return Station{
		Name: "CS001",
		Type: StationCore,
		AntennaFields: []AntennaField{
			{Name: AntennaFieldHBA0, Location: CoordinatesXYZ(CoordinateSystemITRF2005, 1, 2, 3)},
			{Name: AntennaFieldHBA1, Location: CoordinatesRadLonLat(CoordinateSystemWGS84,
				Meters(6.4e6), Angle{0.1, AngleUnitDegrees}, Angle{52.9, AngleUnitDegrees})},
		},
	}
}

func testBeamInfo() ArrayBeamInfo {
	return ArrayBeamInfo{
		SubArrayPointingIdentifier: ident("SAS", "sap-0"),
		BeamNumber:                 1,
		DispersionMeasure:          26.76,
		NumberOfSubbands:           2,
		StationSubbands:            IntList{100, 101},
		SamplingTime:               Time{5.12, TimeUnitMs},
		CentralFrequencies: ListOfFrequencies{
			Frequencies: DoubleList{119.3, 119.5},
			Unit:        FrequencyUnitMHz,
		},
		ChannelWidth:       Hz(12207.03125),
		ChannelsPerSubband: 16,
		Stokes:             []Stokes{StokesI, StokesQ},
	}
}

// testDocument returns a SIP which uses most of the record types.
func testDocument() *Document {
	described := &CorrelatedDataProduct{
		DataProductInfo:            testDataProductInfo("dp-out", "pipe-1"),
		SubArrayPointingIdentifier: ident("SAS", "sap-0"),
		Subband:                    0,
		StationSubband:             ptr(156),
		StartTime:                  testStart,
		Duration:                   "PT1H",
		IntegrationInterval:        Seconds(1),
		CentralFrequency:           Hz(1.5e8),
		ChannelWidth:               Hz(3051.7578125),
		ChannelsPerSubband:         64,
	}

	doc := NewDocument(Project{
		Code:                "LC0_001",
		PrimaryInvestigator: "A. Astronomer",
		CoInvestigators:     []string{"B. Helper", "C. Helper"},
		ContactAuthor:       "A. Astronomer",
		Telescope:           "ignored",
		Description:         "A test project",
	}, described)

	obs := &Observation{
		ProcessInfo:      testProcess("obs-proc"),
		ObservingMode:    ObservingModeInterferometer,
		Description:      "test observation",
		InstrumentFilter: FilterSelection110_190MHz,
		Clock:            ClockMHz(ClockFrequency200),
		StationSelection: StationSelectionCore,
		AntennaSet:       AntennaSetHBADual,
		TimeSystem:       TimeSystemUTC,
		ChannelWidth:     ptr(Hz(3051.7578125)),
		Stations:         []Station{testStation()},
		SubArrayPointings: SubArrayPointings{
			{
				Pointing:        PointingRaDec(Radians(1.2), Radians(0.9), EquinoxJ2000),
				BeamNumber:      0,
				Identifier:      ident("SAS", "sap-0"),
				MeasurementType: MeasurementTarget,
				TargetName:      "3C196",
				StartTime:       testStart,
				Duration:        "PT1H",
				Processing: &Processing{
					Correlator: &Correlator{
						RealTimeProcess:     RealTimeProcess{ProcessingType: ProcessingCorrelator},
						IntegrationInterval: Seconds(1),
					},
					CoherentStokes: &CoherentStokes{StokesProcessing{
						RealTimeProcess: RealTimeProcess{
							ProcessingType:     ProcessingCoherentStokes,
							ChannelsPerSubband: ptr(16),
						},
						RawSamplingTime:        Time{5.12, TimeUnitUs},
						TimeDownsamplingFactor: 1,
						SamplingTime:           Time{5.12, TimeUnitUs},
						Stokes:                 []Stokes{StokesI},
						NumberOfStations:       1,
						Stations:               []Station{testStation()},
					}},
				},
				NumberOfCorrelatedDataProducts: 1,
			},
		},
		TBBEvents:                      TransientBufferBoardEvents{{EventSource: "lightning"}},
		NumberOfCorrelatedDataProducts: 1,
		NumberOfBitsPerSample:          16,
	}
	obs.SubArrayPointings[0].NumberOfProcessing = obs.SubArrayPointings[0].Processing.Count()
	obs.UpdateCounts()
	doc.AddObservation(obs)

	doc.AddPipelineRun(&AveragingPipeline{
		PipelineInfo: PipelineInfo{
			ProcessInfo: testProcess("pipe-1"),
			Name:        "averaging",
			Version:     "1.0",
			SourceData:  []Identifier{ident("SAS", "dp-raw")},
		},
		FrequencyIntegrationStep:       4,
		TimeIntegrationStep:            2,
		Demixing:                       true,
		NumberOfCorrelatedDataProducts: 1,
	})
	doc.AddPipelineRun(&SimplePipeline{PipelineInfo{
		ProcessInfo: testProcess("pipe-2"),
		Name:        "simple",
		Version:     "0.1",
	}})
	doc.AddUnspecifiedProcess(ObservingModeUnknown, "something happened", testProcess("unspec-1"))

	raw := testDataProductInfo("dp-raw", "obs-proc")
	doc.AddRelatedDataProduct(&SimpleDataProduct{DataProductInfo: raw})

	image := testDataProductInfo("dp-img", "unspec-1")
	image.Type = DataProductSkyImage
	image.FileFormat = FileFormatFITS
	doc.AddRelatedDataProduct(NewSkyImageDataProduct(image, 4, SkyImage{
		LocationFrame:       LocationFrameGEOCENTER,
		TimeFrame:           "UTC",
		ObservationPointing: PointingAzAlt(Radians(0.5), Radians(1), EquinoxJ2000),
		RestoringBeamMajor:  Angle{10, AngleUnitArcsec},
		RestoringBeamMinor:  Angle{8, AngleUnitArcsec},
		RMSNoise:            0.001,
	},
		&SpectralCoordinate{
			LinearAxis: &LinearAxis{Number: 3, Name: "FREQ", Units: "Hz", Length: 1,
				Increment: 1e6, ReferencePixel: 1, ReferenceValue: 1.5e8},
			Quantity: SpectralQuantity{Type: SpectralQuantityFrequency, Value: 1.5e8},
		},
		&TimeCoordinate{
			TabularAxis: &TabularAxis{Number: 4, Name: "TIME", Units: "s", Length: 1},
			Equinox:     EquinoxJ2000,
		},
		&PolarizationCoordinate{
			TabularAxis:   TabularAxis{Number: 2, Name: "STOKES", Units: "", Length: 1},
			Polarizations: []PolarizationType{PolarizationI},
		},
		&DirectionCoordinate{
			LinearAxes: []LinearAxis{
				{Number: 0, Name: "RA", Units: "deg", Length: 1024, Increment: -0.001},
				{Number: 1, Name: "DEC", Units: "deg", Length: 1024, Increment: 0.001},
			},
			PC00:                 1,
			PC11:                 1,
			Equinox:              EquinoxJ2000,
			RaDecSystem:          RaDecSystemICRS,
			Projection:           "SIN",
			ProjectionParameters: DoubleList{0, 0},
			LongitudePole:        Angle{180, AngleUnitDegrees},
			LatitudePole:         Angle{52, AngleUnitDegrees},
		},
	))

	tab := testDataProductInfo("dp-bf", "obs-proc")
	tab.Type = DataProductBeamFormedData
	tab.FileFormat = FileFormatHDF5
	tab.StorageTicket = "ticket-1"
	doc.AddRelatedDataProduct(NewBeamFormedDataProduct(tab,
		&CoherentStokesBeam{
			ArrayBeamInfo: testBeamInfo(),
			Pointing:      PointingRaDec(Radians(1.2), Radians(0.9), EquinoxJ2000),
			Offset:        PointingRaDec(Radians(0), Radians(0), EquinoxJ2000),
		},
		&FlysEyeBeam{ArrayBeamInfo: testBeamInfo(), Station: testStation()},
		&SimpleArrayBeam{ArrayBeamInfo: testBeamInfo()},
	))

	pulp := testDataProductInfo("dp-pulp", "obs-proc")
	pulp.Type = DataProductPulsarPipelineOutput
	pulp.FileFormat = FileFormatPULP
	doc.AddRelatedDataProduct(&PulpDataProduct{
		DataProductInfo: pulp,
		FileContent:     StringList{"a.ar", "b.ar"},
		DataType:        PulsarPipelineDataCoherentStokes,
		ArrayBeam:       ArrayBeamList{&IncoherentStokesBeam{ArrayBeamInfo: testBeamInfo()}},
	})

	doc.AddParset(ident("SAS", "parset-1"), "ObsSW.Observation.nrBeams=1\n")
	return doc
}

func TestNewDocument(t *testing.T) {
	doc := testDocument()
	if doc.GeneratorVersion != GeneratorVersion {
		t.Errorf("generator version %q", doc.GeneratorVersion)
	}
	if doc.Project.Telescope != TelescopeLOFAR {
		t.Errorf("telescope %q", doc.Project.Telescope)
	}
	obs := doc.Observations[0]
	if obs.NumberOfStations != 1 || obs.NumberOfSubArrayPointings != 1 || obs.NumberOfTBBEvents != 1 {
		t.Errorf("wrong counts: %d %d %d",
			obs.NumberOfStations, obs.NumberOfSubArrayPointings, obs.NumberOfTBBEvents)
	}
	if n := obs.SubArrayPointings[0].NumberOfProcessing; n != 2 {
		t.Errorf("numberOfProcessing = %d, want 2", n)
	}
}

func TestRoundTrip(t *testing.T) {
	in := testDocument()

	data, err := in.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, data)
	}

	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}

	// writing again gives the same bytes
	again, err := out.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("second encoding differs:\n%s\n---\n%s", data, again)
	}
}

func TestWriteFormat(t *testing.T) {
	data, err := testDocument().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	mustContain := []string{
		`<?xml version="1.0" encoding="UTF-8"?>` + "\n<sip:ltaSip ",
		`xmlns:sip="http://www.astron.nl/SIP-Lofar"`,
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`,
		`xsi:schemaLocation="http://www.astron.nl/SIP-Lofar LTA-SIP-2.7.0.xsd"`,
		"\n  <sipGeneratorVersion>SIPlib 0.4</sipGeneratorVersion>\n",
		`<dataProduct xsi:type="sip:CorrelatedDataProduct">`,
		`<pipelineRun xsi:type="sip:AveragingPipeline">`,
		`<relatedDataProduct xsi:type="sip:SkyImageDataProduct">`,
		`<coordinate xsi:type="sip:SpectralCoordinate">`,
		`<arrayBeam xsi:type="sip:CoherentStokesBeam">`,
		`<spectralQuantity type="Frequency">1.5e+08</spectralQuantity>`,
		`<stationSubbands>100 101</stationSubbands>`,
		`<startTime>2016-11-23T14:10:00</startTime>`,
		"<relations>\n",
		"</sip:ltaSip>\n",
	}
	for _, s := range mustContain {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q", s)
		}
	}

	mustNotContain := []string{
		`xsi:type="sip:PipelineRun"`,
		`xsi:type="sip:DataProduct"`,
		`xsi:type="sip:ArrayBeam"`,
		"<beams></beams>",
		"<storageTicket></storageTicket>",
	}
	for _, s := range mustNotContain {
		if strings.Contains(out, s) {
			t.Errorf("output contains %q", s)
		}
	}

	// the elements of an observation are written in schema order
	order := []string{"<observingMode>", "<observationDescription>", "<instrumentFilter>",
		"<clock ", "<stationSelection>", "<antennaSet>", "<timeSystem>", "<numberOfStations>",
		"<stations>", "<numberOfSubArrayPointings>", "<subArrayPointings>",
		"<numberOftransientBufferBoardEvents>", "<transientBufferBoardEvents>",
		"<numberOfBitsPerSample>"}
	obsStart := strings.Index(out, "<observation>")
	last := obsStart
	for _, s := range order {
		pos := strings.Index(out[obsStart:], s)
		if pos < 0 {
			t.Errorf("%s missing", s)
			continue
		}
		if obsStart+pos < last {
			t.Errorf("%s is out of order", s)
		}
		last = obsStart + pos
	}
}

func TestWriteIncomplete(t *testing.T) {
	doc := NewDocument(Project{Code: "LC0_001"}, nil)
	_, err := doc.Bytes()
	if !errors.Is(err, ErrNoDataProduct) {
		t.Errorf("got error %v, want %v", err, ErrNoDataProduct)
	}

	doc = NewDocument(Project{}, &SimpleDataProduct{})
	_, err = doc.Bytes()
	if err == nil {
		t.Error("document without project code accepted")
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		want error
	}{
		{
			desc: "wrong root element",
			in:   `<sip:other xmlns:sip="http://www.astron.nl/SIP-Lofar"/>`,
		},
		{
			desc: "wrong namespace",
			in:   `<x:ltaSip xmlns:x="http://example.com/"/>`,
		},
		{
			desc: "missing data product",
			in: `<sip:ltaSip xmlns:sip="http://www.astron.nl/SIP-Lofar">
				<sipGeneratorVersion>x</sipGeneratorVersion>
				<project><projectCode>LC0_001</projectCode></project>
			</sip:ltaSip>`,
			want: ErrNoDataProduct,
		},
		{
			desc: "unsupported array beam type",
			in: `<sip:ltaSip xmlns:sip="http://www.astron.nl/SIP-Lofar"
				xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
				<project><projectCode>LC0_001</projectCode></project>
				<dataProduct xsi:type="sip:BeamFormedDataProduct">
					<beams><arrayBeam xsi:type="sip:NoSuchBeam"/></beams>
				</dataProduct>
			</sip:ltaSip>`,
		},
		{
			desc: "not XML",
			in:   "SIMPLE  =                    T",
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			if err == nil {
				t.Fatal("no error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestReadUnknownType(t *testing.T) {
	in := `<?xml version="1.0"?>
<sip:ltaSip xmlns:sip="http://www.astron.nl/SIP-Lofar" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <sipGeneratorVersion>test</sipGeneratorVersion>
  <project><projectCode>LC0_001</projectCode><telescope>LOFAR</telescope></project>
  <dataProduct xsi:type="sip:FutureDataProduct">
    <dataProductType>Unknown</dataProductType>
    <dataProductIdentifier><source>SAS</source><identifier>1</identifier><name></name></dataProductIdentifier>
    <size>10</size>
    <fileName>x.dat</fileName>
    <fileFormat>UNDOCUMENTED</fileFormat>
    <processIdentifier><source>SAS</source><identifier>2</identifier><name></name></processIdentifier>
    <futureField>42</futureField>
  </dataProduct>
  <pipelineRun xsi:type="sip:FuturePipeline">
    <processIdentifier><source>SAS</source><identifier>2</identifier><name></name></processIdentifier>
    <pipelineName>future</pipelineName>
    <sourceData></sourceData>
    <futureSetting>on</futureSetting>
  </pipelineRun>
</sip:ltaSip>`

	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}

	dp, ok := doc.DataProduct.(*OtherDataProduct)
	if !ok {
		t.Fatalf("got %T, want *OtherDataProduct", doc.DataProduct)
	}
	if dp.TypeName != "FutureDataProduct" || dp.FileName != "x.dat" {
		t.Errorf("wrong data product %q %q", dp.TypeName, dp.FileName)
	}
	if len(dp.Extra) != 1 || dp.Extra[0].Name().Local != "futureField" || dp.Extra[0].Text() != "42" {
		t.Errorf("wrong extra elements %v", dp.Extra)
	}

	p, ok := doc.PipelineRuns[0].(*OtherPipeline)
	if !ok {
		t.Fatalf("got %T, want *OtherPipeline", doc.PipelineRuns[0])
	}
	if p.TypeName != "FuturePipeline" || p.Name != "future" {
		t.Errorf("wrong pipeline %q %q", p.TypeName, p.Name)
	}

	// unknown types are written back with their extension elements
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		`<dataProduct xsi:type="sip:FutureDataProduct">`,
		"<futureField>42</futureField>",
		`<pipelineRun xsi:type="sip:FuturePipeline">`,
		"<futureSetting>on</futureSetting>",
	} {
		if !bytes.Contains(data, []byte(s)) {
			t.Errorf("output does not contain %q", s)
		}
	}
}

func TestReadUnknownTypeOtherPrefixes(t *testing.T) {
	in := `<?xml version="1.0"?>
<lta:ltaSip xmlns:lta="http://www.astron.nl/SIP-Lofar" xmlns:x="http://www.w3.org/2001/XMLSchema-instance">
  <sipGeneratorVersion>test</sipGeneratorVersion>
  <project><projectCode>LC0_001</projectCode><telescope>LOFAR</telescope></project>
  <dataProduct x:type="lta:FutureDataProduct">
    <dataProductType>Unknown</dataProductType>
    <dataProductIdentifier><source>SAS</source><identifier>1</identifier><name></name></dataProductIdentifier>
    <size>10</size>
    <fileName>x.dat</fileName>
    <fileFormat>UNDOCUMENTED</fileFormat>
    <processIdentifier><source>SAS</source><identifier>2</identifier><name></name></processIdentifier>
    <extra kind="k"><inner x:type="lta:Foo">v</inner></extra>
    <ext:note xmlns:ext="urn:example" ext:lang="nl">hallo</ext:note>
  </dataProduct>
</lta:ltaSip>`

	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"lta:", "x:type", "ext:"} {
		if bytes.Contains(data, []byte(s)) {
			t.Errorf("output contains undeclared prefix %q:\n%s", s, data)
		}
	}
	for _, s := range []string{
		`<dataProduct xsi:type="sip:FutureDataProduct">`,
		`<extra kind="k">`,
		`<inner xsi:type="sip:Foo">v</inner>`,
		`<ns1:note xmlns:ns1="urn:example" ns1:lang="nl">hallo</ns1:note>`,
	} {
		if !bytes.Contains(data, []byte(s)) {
			t.Errorf("output does not contain %q:\n%s", s, data)
		}
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(doc, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestAddRelatedDataProductWithHistory(t *testing.T) {
	input := testDocument()

	out := &SimpleDataProduct{DataProductInfo: testDataProductInfo("dp-final", "pipe-final")}
	doc := NewDocument(input.Project, out)
	doc.AddRelatedDataProduct(&SimpleDataProduct{DataProductInfo: testDataProductInfo("dp-raw", "obs-proc")})
	doc.AddParset(ident("SAS", "parset-1"), "already here")

	logBuf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logBuf, nil))
	doc.AddRelatedDataProductWithHistory(input, logger)

	var dpIDs []string
	for _, dp := range doc.RelatedDataProducts {
		dpIDs = append(dpIDs, dp.Info().Identifier.Identifier)
	}
	wantDPs := []string{"dp-raw", "dp-out", "dp-img", "dp-bf", "dp-pulp"}
	if d := cmp.Diff(wantDPs, dpIDs); d != "" {
		t.Errorf("related data products (-want +got):\n%s", d)
	}
	if len(doc.Observations) != 1 || len(doc.PipelineRuns) != 2 || len(doc.UnspecifiedProcesses) != 1 {
		t.Errorf("wrong number of processes: %d %d %d",
			len(doc.Observations), len(doc.PipelineRuns), len(doc.UnspecifiedProcesses))
	}
	if len(doc.Parsets) != 1 || doc.Parsets[0].Contents != "already here" {
		t.Errorf("parsets not merged correctly: %v", doc.Parsets)
	}
	if logBuf.Len() != 0 {
		t.Errorf("unexpected log output %q", logBuf.String())
	}

	// merging again adds nothing, but warns about the described product
	doc.AddRelatedDataProductWithHistory(input, logger)
	if n := len(doc.RelatedDataProducts); n != len(wantDPs) {
		t.Errorf("%d related data products after second merge", n)
	}
	if len(doc.PipelineRuns) != 2 {
		t.Errorf("%d pipeline runs after second merge", len(doc.PipelineRuns))
	}
	if !strings.Contains(logBuf.String(), "level=WARN") || !strings.Contains(logBuf.String(), "dp-out") {
		t.Errorf("missing warning, log is %q", logBuf.String())
	}
}

func TestSubArrayPointingIdentifier(t *testing.T) {
	doc := testDocument()

	id, err := doc.DataProductIdentifier()
	if err != nil {
		t.Fatal(err)
	}
	if id.Identifier != "dp-out" {
		t.Errorf("data product identifier %v", id)
	}

	sap, err := doc.SubArrayPointingIdentifier()
	if err != nil {
		t.Fatal(err)
	}
	if sap.Identifier != "sap-0" {
		t.Errorf("sub-array pointing identifier %v", sap)
	}

	doc.DataProduct = &SimpleDataProduct{}
	_, err = doc.SubArrayPointingIdentifier()
	if !errors.Is(err, ErrNotCorrelated) {
		t.Errorf("got error %v, want %v", err, ErrNotCorrelated)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	doc := testDocument()
	err := doc.WriteFile("~/test.xml")
	if err != nil {
		t.Fatal(err)
	}

	back, err := ReadFile(filepath.Join(dir, "test.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(doc, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}

	_, err = os.Stat(filepath.Join(dir, "~"))
	if err == nil {
		t.Error("tilde was not expanded")
	}
}

func TestHelperCounts(t *testing.T) {
	info := testDataProductInfo("dp-map", "pipe-1")

	pm := NewPixelMapDataProduct(info, 3,
		&SpectralCoordinate{Quantity: SpectralQuantity{Type: SpectralQuantityFrequency, Value: 150e6}},
		&PolarizationCoordinate{Polarizations: []PolarizationType{PolarizationI}})
	if pm.NumberOfAxes != 3 || pm.NumberOfCoordinates != 2 {
		t.Errorf("pixel map has %d axes and %d coordinates, want 3 and 2",
			pm.NumberOfAxes, pm.NumberOfCoordinates)
	}

	bf := NewBeamFormedDataProduct(info)
	if bf.NumberOfBeams != 0 || bf.Beams != nil {
		t.Errorf("empty beam formed data product has %d beams", bf.NumberOfBeams)
	}
}
