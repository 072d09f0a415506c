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

// Package moment provides Moment, an immutable pairing of an instant with its
// Jalali calendar date, and the operations built on it: parsing from the
// layouts used by Persian date pickers, differences with automatic unit
// selection, day arithmetic, templated formatting and picker output values.
//
// A Moment is always computed, never mutated:
//
//	a, _ := moment.Parse("1404/01/02", moment.LayoutJalali)
//	b, _ := moment.Parse("1403/12/30", moment.LayoutJalali)
//	d := moment.Diff(a, b, moment.UnitAuto) // {Value: 2, Unit: UnitDay}
//	d.Format(moment.DiffEnglishText)        // "2 days"
//
//	next, _ := a.Add(10, moment.UnitJDay)
//	next.Format(moment.FormatJalaliLong)    // "۱۲ فروردین ۱۴۰۴"
//
// The Jalali date of a Moment is the date of its wall clock in the Moment's
// own location.
package moment

import (
	"encoding/json"
	"fmt"
	"time"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"dirpx.dev/dxcal/dxcore/model/calendar"
	"gopkg.in/yaml.v3"
)

// Moment is an instant together with the Jalali date of its wall clock.
//
// The zero Moment has no instant and is not valid. Moments are small values
// and are passed by value.
type Moment struct {
	t    time.Time
	date calendar.JalaliDate
	raw  string
}

var _ model.Model = (*Moment)(nil)

// FromTime returns the Moment for t, keeping t's location.
func FromTime(t time.Time) Moment {
	return Moment{t: t, date: calendar.GregorianDateOf(t).Jalali()}
}

// Now returns the current instant in loc. A nil loc means time.Local.
func Now(loc *time.Location) Moment {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

// FromJalali returns midnight of d in loc. A nil loc means time.Local.
//
// d is validated first. The stored Jalali date is derived back from the
// resulting instant, which can differ from d for an Esfand 30 that the
// leap-year table allows but the day count does not.
func FromJalali(d calendar.JalaliDate, loc *time.Location) (Moment, error) {
	if err := d.Validate(); err != nil {
		return Moment{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return FromTime(d.Gregorian().Time(loc)), nil
}

// Time returns the instant.
func (m Moment) Time() time.Time {
	return m.t
}

// Jalali returns the Jalali date of the wall clock.
func (m Moment) Jalali() calendar.JalaliDate {
	return m.date
}

// Gregorian returns the Gregorian date of the wall clock.
func (m Moment) Gregorian() calendar.GregorianDate {
	return calendar.GregorianDateOf(m.t)
}

// Hijri returns the tabular Hijri date of the wall clock.
func (m Moment) Hijri() calendar.HijriDate {
	return m.Gregorian().Hijri()
}

// Raw returns the text the Moment was parsed from, or "" when it was built
// some other way.
func (m Moment) Raw() string {
	return m.raw
}

// Weekday returns the native weekday of the wall clock (Sunday = 0).
func (m Moment) Weekday() time.Weekday {
	return m.t.Weekday()
}

// Location returns the location of the wall clock.
func (m Moment) Location() *time.Location {
	return m.t.Location()
}

// In returns the same instant with its wall clock in loc.
func (m Moment) In(loc *time.Location) Moment {
	out := FromTime(m.t.In(loc))
	out.raw = m.raw
	return out
}

// Compare returns -1, 0 or +1 depending on whether m is before, at or after
// other.
func (m Moment) Compare(other Moment) int {
	return m.t.Compare(other.t)
}

// Equal reports whether m and other are the same instant, regardless of
// location.
func (m Moment) Equal(other Moment) bool {
	return m.t.Equal(other.t)
}

// Before reports whether m is before other.
func (m Moment) Before(other Moment) bool {
	return m.t.Before(other.t)
}

// After reports whether m is after other.
func (m Moment) After(other Moment) bool {
	return m.t.After(other.t)
}

// String returns the Jalali date and the wall clock with its offset, for
// example "1404/01/01 10:30:00 +03:30".
func (m Moment) String() string {
	return fmt.Sprintf("%s %s", m.date, m.t.Format("15:04:05 -07:00"))
}

// Redacted returns the same representation as String.
func (m Moment) Redacted() string {
	return m.String()
}

// TypeName returns "Moment".
func (m Moment) TypeName() string {
	return "Moment"
}

// IsZero reports whether m has no instant.
func (m Moment) IsZero() bool {
	return m.t.IsZero() && m.date.IsZero()
}

// Validate checks that m has an instant and that its Jalali date is the one
// derived from that instant.
func (m Moment) Validate() error {
	if m.t.IsZero() {
		return &errors.ValidationError{Type: "Moment", Field: "Time", Reason: "must be set"}
	}
	if want := calendar.GregorianDateOf(m.t).Jalali(); m.date != want {
		return &errors.ValidationError{
			Type:   "Moment",
			Field:  "Jalali",
			Reason: fmt.Sprintf("does not match the instant (want %s)", want),
			Value:  m.date,
		}
	}
	return nil
}

// MarshalJSON encodes m as an RFC 3339 string.
func (m Moment) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes an RFC 3339 string. The offset in the text becomes
// the Moment's location.
func (m *Moment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Moment", Data: data, Reason: err.Error()}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return &errors.UnmarshalError{Type: "Moment", Data: data, Reason: err.Error()}
	}
	*m = FromTime(t)
	return nil
}

// MarshalYAML encodes m as an RFC 3339 scalar.
func (m Moment) MarshalYAML() (any, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return m.t.Format(time.RFC3339Nano), nil
}

// UnmarshalYAML decodes an RFC 3339 scalar.
func (m *Moment) UnmarshalYAML(node *yaml.Node) error {
	t, err := time.Parse(time.RFC3339Nano, node.Value)
	if err != nil {
		return &errors.UnmarshalError{Type: "Moment", Data: []byte(node.Value), Reason: err.Error()}
	}
	*m = FromTime(t)
	return nil
}
