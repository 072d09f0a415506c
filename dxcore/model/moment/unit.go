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

package moment

import (
	"encoding/json"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Unit selects the granularity of a difference between two moments, or the
// step of Add.
//
// UnitDay and UnitJDay are synonyms: both count elapsed days. UnitJMonth and
// UnitJYear count calendar months and years of the Jalali calendar, not
// elapsed time. UnitAuto is only meaningful for Diff, which replaces it with
// the coarsest unit that still reads naturally.
type Unit int

const (
	// UnitAuto lets Diff pick the unit from the magnitude of the difference.
	UnitAuto Unit = iota

	// UnitMinute counts elapsed minutes, rounded to the nearest minute.
	UnitMinute

	// UnitHour counts elapsed hours, rounded to the nearest hour.
	UnitHour

	// UnitDay counts elapsed days, rounded to the nearest day.
	UnitDay

	// UnitJDay is UnitDay under its Jalali name.
	UnitJDay

	// UnitWeek counts whole weeks of rounded days.
	UnitWeek

	// UnitJMonth is the difference of Jalali year*12+month values.
	UnitJMonth

	// UnitJYear is the difference of Jalali years.
	UnitJYear
)

// String constants for Unit values. They are the keys accepted on the command
// line and in configuration files.
const (
	UnitAutoStr   = "auto"
	UnitMinuteStr = "minute"
	UnitHourStr   = "hour"
	UnitDayStr    = "day"
	UnitJDayStr   = "jDay"
	UnitWeekStr   = "week"
	UnitJMonthStr = "jMonth"
	UnitJYearStr  = "jYear"
)

// ParseUnit converts a unit key into a Unit.
//
// Each key is accepted as written above, in lowercase and in uppercase
// ("jMonth", "jmonth", "JMONTH"). Any other input yields a
// *errors.ParseError.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case UnitAutoStr, "Auto", "AUTO":
		return UnitAuto, nil
	case UnitMinuteStr, "Minute", "MINUTE":
		return UnitMinute, nil
	case UnitHourStr, "Hour", "HOUR":
		return UnitHour, nil
	case UnitDayStr, "Day", "DAY":
		return UnitDay, nil
	case UnitJDayStr, "jday", "JDAY":
		return UnitJDay, nil
	case UnitWeekStr, "Week", "WEEK":
		return UnitWeek, nil
	case UnitJMonthStr, "jmonth", "JMONTH":
		return UnitJMonth, nil
	case UnitJYearStr, "jyear", "JYEAR":
		return UnitJYear, nil
	default:
		return UnitAuto, &errors.ParseError{Type: "Unit", Value: s}
	}
}

// String returns the canonical key, or "unknown" for an invalid value.
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return UnitAutoStr
	case UnitMinute:
		return UnitMinuteStr
	case UnitHour:
		return UnitHourStr
	case UnitDay:
		return UnitDayStr
	case UnitJDay:
		return UnitJDayStr
	case UnitWeek:
		return UnitWeekStr
	case UnitJMonth:
		return UnitJMonthStr
	case UnitJYear:
		return UnitJYearStr
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of the defined constants.
func (u Unit) Valid() bool {
	return u >= UnitAuto && u <= UnitJYear
}

// TypeName returns "Unit".
func (u Unit) TypeName() string {
	return "Unit"
}

// Redacted returns the same representation as String.
func (u Unit) Redacted() string {
	return u.String()
}

// IsZero reports whether u is UnitAuto.
func (u Unit) IsZero() bool {
	return u == UnitAuto
}

// Equal reports whether other is a Unit or *Unit with the same value.
func (u Unit) Equal(other any) bool {
	switch v := other.(type) {
	case Unit:
		return u == v
	case *Unit:
		if v == nil {
			return false
		}
		return u == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError for an undefined value.
func (u Unit) Validate() error {
	if !u.Valid() {
		return &errors.ValidationError{
			Type:   "Unit",
			Reason: "invalid Unit value",
			Value:  int(u),
		}
	}
	return nil
}

// persianName is the unit label used by the Persian diff formats.
func (u Unit) persianName() string {
	switch u {
	case UnitMinute:
		return "دقیقه"
	case UnitHour:
		return "ساعت"
	case UnitDay, UnitJDay:
		return "روز"
	case UnitWeek:
		return "هفته"
	case UnitJMonth:
		return "ماه"
	case UnitJYear:
		return "سال"
	default:
		return "واحد"
	}
}

// englishName is the singular unit label used by DiffEnglishText.
func (u Unit) englishName() string {
	switch u {
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay, UnitJDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitJMonth:
		return "month"
	case UnitJYear:
		return "year"
	default:
		return "unit"
	}
}

// MarshalJSON encodes u as its key.
func (u Unit) MarshalJSON() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Unit", Value: int(u)}
	}
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts a key understood by ParseUnit or the numeric
// constant.
func (u *Unit) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Unit", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Unit", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseUnit(s)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Unit", Data: data, Reason: err.Error()}
	}
	*u = Unit(i)
	if !u.Valid() {
		return &errors.UnmarshalError{Type: "Unit", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML encodes u as its key.
func (u Unit) MarshalYAML() (any, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Unit", Value: int(u)}
	}
	return u.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseUnit.
func (u *Unit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Unit", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Unit", Value: int(u)}
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

var _ model.Model = (*Unit)(nil)
