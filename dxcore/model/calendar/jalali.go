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

// jalaliBreaks are the break points, relative to the start of a 33-year
// block, used by IsJalaliLeapYear.
var jalaliBreaks = [...]int{1, 5, 9, 13, 17, 22, 26, 30}

// IsJalaliLeapYear reports whether year has a 30-day Esfand according to the
// 33-year break-point table.
//
// The year is located between two break points, its offset n from the lower
// one is folded into the next block when fewer than six years remain in the
// interval, and the year is leap when ((n+1) mod 33 − 1) mod 4 == 0 using
// truncated remainders. This is an approximation valid across the practical
// calendar range; it is not astronomically exact.
//
//	IsJalaliLeapYear(1399) // true
//	IsJalaliLeapYear(1403) // true
//	IsJalaliLeapYear(1404) // false
func IsJalaliLeapYear(year int) bool {
	jp := jalaliBreaks[0]
	jump := 0
	for _, jm := range jalaliBreaks[1:] {
		jump = jm - jp
		if year < jm {
			break
		}
		jp = jm
	}

	n := year - jp
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}

	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap == 0
}

// DaysInJalaliMonth returns the length of a Jalali month: 31 for months 1–6,
// 30 for months 7–11, and 30 or 29 for month 12 depending on
// IsJalaliLeapYear. It returns 0 for a month outside [1,12].
func DaysInJalaliMonth(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsJalaliLeapYear(year):
		return 30
	default:
		return 29
	}
}

// IsJalaliCycleLeapYear reports whether the converters give year a 30-day
// Esfand.
//
// The converters count years in 33-year cycles aligned on year 979, and the
// years at offsets 0, 4, ..., 28 of a cycle are leap. This agrees with
// IsJalaliLeapYear on most years but not all of them: 1407 is leap only in
// the table and 1408 only in the cycle.
func IsJalaliCycleLeapYear(year int) bool {
	r := floorMod(year-modernJalaliAnchor, 33)
	return r%4 == 0 && r < 32
}

// JalaliMonthLength returns the number of days the converters place in a
// Jalali month. It equals DaysInJalaliMonth except for Esfand, which follows
// IsJalaliCycleLeapYear. It returns 0 for a month outside [1,12].
func JalaliMonthLength(year, month int) int {
	if month == 12 {
		if IsJalaliCycleLeapYear(year) {
			return 30
		}
		return 29
	}
	return DaysInJalaliMonth(year, month)
}

// maxJalaliDay is the last day accepted by Validate: the table length, or 30
// for an Esfand the converters produce.
func maxJalaliDay(year, month int) int {
	return max(DaysInJalaliMonth(year, month), JalaliMonthLength(year, month))
}

// JalaliDate is a date in the Solar Hijri (Jalali) calendar.
//
// A valid JalaliDate has Month in [1,12] and Day in
// [1, DaysInJalaliMonth(Year, Month)]. Esfand 30 is also valid when
// IsJalaliCycleLeapYear reports it, so every date the converters return can
// be parsed and validated again. Year is unrestricted; years before 1 are
// proleptic. The zero value is not a valid date.
//
// An Esfand 30 accepted only by the leap table has no day of its own in the
// converters: its Gregorian date is that of Farvardin 1 of the next year.
//
// The canonical text form is "YYYY/MM/DD" ("1404/01/01"), used by String and
// by the JSON, YAML and text codecs.
type JalaliDate struct {
	Year  int
	Month int
	Day   int
}

var _ model.Model = (*JalaliDate)(nil)

// NewJalaliDate returns a validated JalaliDate.
func NewJalaliDate(year, month, day int) (JalaliDate, error) {
	d := JalaliDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return JalaliDate{}, err
	}
	return d, nil
}

// ParseJalaliDate parses "YYYY/MM/DD" (or "YYYY-MM-DD") into a validated
// JalaliDate. Persian and Arabic-Indic digits are accepted.
//
// Malformed text yields a *errors.ParseError; well-formed text with fields
// out of range yields a *errors.ParseError wrapping a *errors.ValidationError.
func ParseJalaliDate(s string) (JalaliDate, error) {
	y, m, d, ok := parseTriple(s)
	if !ok {
		return JalaliDate{}, &errors.ParseError{Type: "JalaliDate", Value: s}
	}
	date, err := NewJalaliDate(y, m, d)
	if err != nil {
		return JalaliDate{}, &errors.ParseError{Type: "JalaliDate", Value: s, Err: err}
	}
	return date, nil
}

// Gregorian converts d to the proleptic Gregorian calendar. d must be valid.
func (d JalaliDate) Gregorian() GregorianDate {
	gy, gm, gd := jalaliToGregorian(d.Year, d.Month, d.Day)
	return GregorianDate{Year: gy, Month: gm, Day: gd}
}

// Hijri converts d to the tabular Islamic calendar. d must be valid.
func (d JalaliDate) Hijri() HijriDate {
	return d.Gregorian().Hijri()
}

// Weekday returns the native weekday of d (Sunday = 0).
func (d JalaliDate) Weekday() time.Weekday {
	return d.Gregorian().Weekday()
}

// DaysInMonth returns the length of the month containing d.
func (d JalaliDate) DaysInMonth() int {
	return DaysInJalaliMonth(d.Year, d.Month)
}

// IsLeapYear reports whether the year of d is a Jalali leap year.
func (d JalaliDate) IsLeapYear() bool {
	return IsJalaliLeapYear(d.Year)
}

// MonthIndex returns Year*12 + Month, a running month count used for
// calendar-month differences.
func (d JalaliDate) MonthIndex() int {
	return d.Year*12 + d.Month
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d JalaliDate) Compare(other JalaliDate) int {
	return compareTriples(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day)
}

// Before reports whether d is strictly before other.
func (d JalaliDate) Before(other JalaliDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d JalaliDate) After(other JalaliDate) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same date.
func (d JalaliDate) Equal(other JalaliDate) bool {
	return d == other
}

// String returns the date as "YYYY/MM/DD".
func (d JalaliDate) String() string {
	return formatTriple(d.Year, d.Month, d.Day, '/')
}

// Redacted returns the same representation as String.
func (d JalaliDate) Redacted() string {
	return d.String()
}

// TypeName returns "JalaliDate".
func (d JalaliDate) TypeName() string {
	return "JalaliDate"
}

// IsZero reports whether d is the zero value.
func (d JalaliDate) IsZero() bool {
	return d == JalaliDate{}
}

// Validate checks the month range and the day against DaysInJalaliMonth,
// allowing Esfand 30 in the converters' leap years.
func (d JalaliDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return monthRangeError(d.TypeName(), d.Month)
	}
	if n := maxJalaliDay(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &errors.ValidationError{
			Type:   d.TypeName(),
			Field:  "Day",
			Reason: fmt.Sprintf("must be between 1 and %d for %04d/%02d", n, d.Year, d.Month),
			Value:  d.Day,
		}
	}
	return nil
}

// MarshalJSON encodes d as a JSON string "YYYY/MM/DD".
func (d JalaliDate) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string via ParseJalaliDate.
func (d *JalaliDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "JalaliDate", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseJalaliDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a scalar "YYYY/MM/DD".
func (d JalaliDate) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return d.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseJalaliDate.
func (d *JalaliDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "JalaliDate", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseJalaliDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d JalaliDate) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *JalaliDate) UnmarshalText(text []byte) error {
	parsed, err := ParseJalaliDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
