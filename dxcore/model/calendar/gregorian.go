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
	"time"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"gopkg.in/yaml.v3"
)

// IsGregorianLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar: divisible by 4, and not by 100 unless also by 400.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInGregorianMonth returns the length of a Gregorian month, or 0 for a
// month outside [1,12].
func DaysInGregorianMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return gregorianMonthLengths(IsGregorianLeapYear(year))[month]
}

// GregorianDate is a date in the proleptic Gregorian calendar.
//
// The canonical text form is "YYYY-MM-DD", matching the date part of
// ISO 8601.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

var _ model.Model = (*GregorianDate)(nil)

// NewGregorianDate returns a validated GregorianDate.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	d := GregorianDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return d, nil
}

// GregorianDateOf returns the wall-clock date of t in its own location.
func GregorianDateOf(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// ParseGregorianDate parses "YYYY-MM-DD" (or "YYYY/MM/DD") into a validated
// GregorianDate.
func ParseGregorianDate(s string) (GregorianDate, error) {
	y, m, d, ok := parseTriple(s)
	if !ok {
		return GregorianDate{}, &errors.ParseError{Type: "GregorianDate", Value: s}
	}
	date, err := NewGregorianDate(y, m, d)
	if err != nil {
		return GregorianDate{}, &errors.ParseError{Type: "GregorianDate", Value: s, Err: err}
	}
	return date, nil
}

// Jalali converts d to the Jalali calendar. d must be valid.
func (d GregorianDate) Jalali() JalaliDate {
	jy, jm, jd := gregorianToJalali(d.Year, d.Month, d.Day)
	return JalaliDate{Year: jy, Month: jm, Day: jd}
}

// Time returns midnight of d in loc. A nil loc means UTC.
func (d GregorianDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the weekday of d (Sunday = 0).
func (d GregorianDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d GregorianDate) Compare(other GregorianDate) int {
	return compareTriples(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day)
}

// Equal reports whether d and other are the same date.
func (d GregorianDate) Equal(other GregorianDate) bool {
	return d == other
}

// String returns the date as "YYYY-MM-DD".
func (d GregorianDate) String() string {
	return formatTriple(d.Year, d.Month, d.Day, '-')
}

// Redacted returns the same representation as String.
func (d GregorianDate) Redacted() string {
	return d.String()
}

// TypeName returns "GregorianDate".
func (d GregorianDate) TypeName() string {
	return "GregorianDate"
}

// IsZero reports whether d is the zero value.
func (d GregorianDate) IsZero() bool {
	return d == GregorianDate{}
}

// Validate checks the month range and the day against the month length,
// including leap-year February.
func (d GregorianDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return monthRangeError(d.TypeName(), d.Month)
	}
	if n := DaysInGregorianMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &errors.ValidationError{
			Type:   d.TypeName(),
			Field:  "Day",
			Reason: fmt.Sprintf("must be between 1 and %d for %04d-%02d", n, d.Year, d.Month),
			Value:  d.Day,
		}
	}
	return nil
}

// MarshalJSON encodes d as a JSON string "YYYY-MM-DD".
func (d GregorianDate) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string via ParseGregorianDate.
func (d *GregorianDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "GregorianDate", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseGregorianDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a scalar "YYYY-MM-DD".
func (d GregorianDate) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseGregorianDate.
func (d *GregorianDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "GregorianDate", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseGregorianDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
