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

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"gopkg.in/yaml.v3"
)

// System identifies one of the supported calendars.
//
// It is used to tag records whose anchor date is defined in a particular
// calendar, for example a holiday that recurs on a fixed Hijri date.
type System int

const (
	// SystemPersian is the Solar Hijri (Jalali, Shamsi) calendar.
	SystemPersian System = iota

	// SystemGregorian is the proleptic Gregorian calendar.
	SystemGregorian

	// SystemHijri is the tabular Islamic calendar.
	SystemHijri
)

// String constants for System values.
const (
	SystemPersianStr   = "persian"
	SystemGregorianStr = "gregorian"
	SystemHijriStr     = "hijri"
)

// ParseSystem converts text into a System. "jalali" and "shamsi" are
// accepted as aliases of "persian"; each name is accepted in lowercase,
// title case and uppercase.
func ParseSystem(s string) (System, error) {
	switch s {
	case SystemPersianStr, "Persian", "PERSIAN",
		"jalali", "Jalali", "JALALI",
		"shamsi", "Shamsi", "SHAMSI":
		return SystemPersian, nil
	case SystemGregorianStr, "Gregorian", "GREGORIAN":
		return SystemGregorian, nil
	case SystemHijriStr, "Hijri", "HIJRI":
		return SystemHijri, nil
	default:
		return SystemPersian, &errors.ParseError{Type: "System", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown" for an invalid
// value.
func (s System) String() string {
	switch s {
	case SystemPersian:
		return SystemPersianStr
	case SystemGregorian:
		return SystemGregorianStr
	case SystemHijri:
		return SystemHijriStr
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined constants.
func (s System) Valid() bool {
	return s == SystemPersian || s == SystemGregorian || s == SystemHijri
}

// TypeName returns "System".
func (s System) TypeName() string {
	return "System"
}

// Redacted returns the same representation as String.
func (s System) Redacted() string {
	return s.String()
}

// IsZero reports whether s is SystemPersian, the zero value.
func (s System) IsZero() bool {
	return s == SystemPersian
}

// Equal reports whether other is a System or *System with the same value.
func (s System) Equal(other any) bool {
	switch v := other.(type) {
	case System:
		return s == v
	case *System:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError when s is not a defined
// constant.
func (s System) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "System",
			Reason: "invalid System value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON encodes s as its canonical string.
func (s System) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "System", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts a string understood by ParseSystem or the numeric
// constant.
func (s *System) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "System", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "System", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSystem(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "System", Data: data, Reason: err.Error()}
	}
	*s = System(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "System", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML encodes s as its canonical string.
func (s System) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "System", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseSystem.
func (s *System) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "System", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSystem(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "System", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var _ model.Model = (*System)(nil)
