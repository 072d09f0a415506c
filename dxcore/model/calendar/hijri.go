/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package calendar

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"github.com/carlosjhr64/jd"
	"gopkg.in/yaml.v3"
)

// MinHijriGregorianYear is the earliest Gregorian year accepted by
// GregorianToHijri. The civil-to-JDN formula relies on truncating division
// and is only exact from the start of the Julian Period onward.
const MinHijriGregorianYear = -4712

// Tabular Islamic calendar constants.
const (
	hijriEpochJDN    = 1948440
	daysPer30Years   = 10631
	hijriYearAdjust  = 354
	hijriCycleOffset = 10632
)

// GregorianToHijri converts a Gregorian date to the tabular Islamic (Hijri)
// calendar.
//
// The conversion goes through the Julian Day Number and uses the arithmetic
// 30-year cycle, so the result can differ by a day or two from an
// observational calendar. There is no inverse.
//
//	h, _ := GregorianToHijri(2025, 3, 21) // 1446/09/21 (Ramadan)
func GregorianToHijri(gy, gm, gd int) (HijriDate, error) {
	g := GregorianDate{Year: gy, Month: gm, Day: gd}
	if err := g.Validate(); err != nil {
		return HijriDate{}, err
	}
	if gy < MinHijriGregorianYear {
		return HijriDate{}, &errors.ValidationError{
			Type:   g.TypeName(),
			Field:  "Year",
			Reason: fmt.Sprintf("must not be before %d for Hijri conversion", MinHijriGregorianYear),
			Value:  gy,
		}
	}
	return g.Hijri(), nil
}

// JulianDayNumber returns the Julian Day Number of d. d must be valid.
func (d GregorianDate) JulianDayNumber() int {
	return jd.YMD2J(d.Year, d.Month, d.Day)
}

// Hijri converts d to the tabular Islamic calendar. d must be valid and not
// earlier than MinHijriGregorianYear.
func (d GregorianDate) Hijri() HijriDate {
	return hijriFromJDN(d.JulianDayNumber())
}

// hijriFromJDN is the closed-form JDN → tabular Islamic reduction.
func hijriFromJDN(jdn int) HijriDate {
	l := jdn - hijriEpochJDN + hijriCycleOffset
	n := floorDiv(l-1, daysPer30Years)
	l = l - daysPer30Years*n + hijriYearAdjust

	j := floorDiv(10985-l, 5316)*floorDiv(50*l, 17719) + floorDiv(l, 5670)*floorDiv(43*l, 15238)
	l = l - floorDiv(30-j, 15)*floorDiv(17719*j, 50) - floorDiv(j, 16)*floorDiv(15238*j, 43) + 29

	month := floorDiv(24*l, 709)
	day := l - floorDiv(709*month, 24)
	year := 30*n + j - 30

	return HijriDate{Year: year, Month: month, Day: day}
}

// HijriDate is a date in the tabular Islamic calendar. It is only ever
// derived from a Gregorian date.
//
// The canonical text form is "YYYY/MM/DD".
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

var _ model.Model = (*HijriDate)(nil)

// ParseHijriDate parses "YYYY/MM/DD" into a HijriDate with Month in [1,12]
// and Day in [1,30].
func ParseHijriDate(s string) (HijriDate, error) {
	y, m, d, ok := parseTriple(s)
	if !ok {
		return HijriDate{}, &errors.ParseError{Type: "HijriDate", Value: s}
	}
	date := HijriDate{Year: y, Month: m, Day: d}
	if err := date.Validate(); err != nil {
		return HijriDate{}, &errors.ParseError{Type: "HijriDate", Value: s, Err: err}
	}
	return date, nil
}

// String returns the date as "YYYY/MM/DD".
func (d HijriDate) String() string {
	return formatTriple(d.Year, d.Month, d.Day, '/')
}

// Redacted returns the same representation as String.
func (d HijriDate) Redacted() string {
	return d.String()
}

// TypeName returns "HijriDate".
func (d HijriDate) TypeName() string {
	return "HijriDate"
}

// IsZero reports whether d is the zero value.
func (d HijriDate) IsZero() bool {
	return d == HijriDate{}
}

// Equal reports whether d and other are the same date.
func (d HijriDate) Equal(other HijriDate) bool {
	return d == other
}

// Validate checks Month in [1,12] and Day in [1,30].
func (d HijriDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return monthRangeError(d.TypeName(), d.Month)
	}
	if d.Day < 1 || d.Day > 30 {
		return &errors.ValidationError{
			Type:   d.TypeName(),
			Field:  "Day",
			Reason: "must be between 1 and 30",
			Value:  d.Day,
		}
	}
	return nil
}

// MarshalJSON encodes d as a JSON string "YYYY/MM/DD".
func (d HijriDate) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string via ParseHijriDate.
func (d *HijriDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "HijriDate", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseHijriDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a scalar "YYYY/MM/DD".
func (d HijriDate) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseHijriDate.
func (d *HijriDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "HijriDate", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseHijriDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
