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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Length is a distance with its unit.
type Length struct {
	Value float64    `xml:",chardata"`
	Units LengthUnit `xml:"units,attr"`
}

// Angle is an angle with its unit.
type Angle struct {
	Value float64   `xml:",chardata"`
	Units AngleUnit `xml:"units,attr"`
}

// Frequency is a frequency with its unit.
type Frequency struct {
	Value float64       `xml:",chardata"`
	Units FrequencyUnit `xml:"units,attr"`
}

// Time is a time interval with its unit.
type Time struct {
	Value float64  `xml:",chardata"`
	Units TimeUnit `xml:"units,attr"`
}

// Pixel is a pixel value, for example the RMS noise of a sky image.
type Pixel struct {
	Value float64   `xml:",chardata"`
	Units PixelUnit `xml:"units,attr"`
}

// Clock is the station sample clock.  The unit is always MHz.
type Clock struct {
	Value ClockFrequency `xml:",chardata"`
	Units FrequencyUnit  `xml:"units,attr"`
}

// Radians returns the angle v, given in radians.
func Radians(v float64) Angle { return Angle{Value: v, Units: AngleUnitRadians} }

// Hz returns the frequency v, given in Hz.
func Hz(v float64) Frequency { return Frequency{Value: v, Units: FrequencyUnitHz} }

// MHz returns the frequency v, given in MHz.
func MHz(v float64) Frequency { return Frequency{Value: v, Units: FrequencyUnitMHz} }

// Seconds returns the time interval v, given in seconds.
func Seconds(v float64) Time { return Time{Value: v, Units: TimeUnitS} }

// Meters returns the length v, given in meters.
func Meters(v float64) Length { return Length{Value: v, Units: LengthUnitM} }

// ListOfFrequencies is a list of frequencies sharing one unit.
type ListOfFrequencies struct {
	Frequencies DoubleList    `xml:"frequencies"`
	Unit        FrequencyUnit `xml:"unit"`
}

// DoubleList is an xs:list of doubles.
type DoubleList []float64

func (l DoubleList) MarshalText() ([]byte, error) {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return []byte(strings.Join(parts, " ")), nil
}

func (l *DoubleList) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) == 0 {
		*l = nil
		return nil
	}
	res := make(DoubleList, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("invalid list item %q: %w", f, err)
		}
		res = append(res, v)
	}
	*l = res
	return nil
}

// IntList is an xs:list of integers.
type IntList []int

func (l IntList) MarshalText() ([]byte, error) {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}
	return []byte(strings.Join(parts, " ")), nil
}

func (l *IntList) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) == 0 {
		*l = nil
		return nil
	}
	res := make(IntList, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("invalid list item %q: %w", f, err)
		}
		res = append(res, v)
	}
	*l = res
	return nil
}

// StringList is an xs:list of strings.  Items cannot contain white space.
type StringList []string

func (l StringList) MarshalText() ([]byte, error) {
	for _, s := range l {
		if s == "" || strings.ContainsAny(s, " \t\r\n") {
			return nil, fmt.Errorf("invalid list item %q", s)
		}
	}
	return []byte(strings.Join(l, " ")), nil
}

func (l *StringList) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) == 0 {
		fields = nil
	}
	*l = fields
	return nil
}

// DateTime is an xs:dateTime.  Values are written in UTC, without a zone
// designator.
type DateTime struct {
	time.Time
}

const dateTimeLayout = "2006-01-02T15:04:05.999999999"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	dateTimeLayout,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseDateTime parses s in the ISO 8601 form used by SIPs.  The date and
// the time may be separated by "T" or by a space.  Times without a zone are
// taken to be UTC.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateTime{t.UTC()}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date/time %q", s)
}

// String returns the value in the format written to SIPs.
func (t DateTime) String() string {
	return t.UTC().Format(dateTimeLayout)
}

func (t DateTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *DateTime) UnmarshalText(text []byte) error {
	v, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Duration is an xs:duration, for example "PT1H30M".
type Duration string

// FormatDuration returns d as an ISO 8601 duration with days as the
// largest unit.  Zero components are omitted.
func FormatDuration(d time.Duration) Duration {
	if d == 0 {
		return "PT0S"
	}

	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteByte('P')

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute

	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours > 0 || minutes > 0 || d > 0 {
		b.WriteByte('T')
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if d > 0 {
		b.WriteString(strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
		b.WriteByte('S')
	}
	return Duration(b.String())
}

// FormatSeconds is like FormatDuration, but takes the length of the
// interval in seconds.
func FormatSeconds(sec float64) Duration {
	return FormatDuration(time.Duration(sec * float64(time.Second)))
}
