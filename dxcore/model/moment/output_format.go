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

// OutputFormat selects the value a date picker hands back for a chosen
// moment. See Moment.Output for the exact templates.
type OutputFormat int

const (
	// OutputISO renders "YYYY-MM-DDTHH:mm:00" from the Gregorian wall clock.
	OutputISO OutputFormat = iota

	// OutputShamsi renders "YYYY/MM/DD HH:mm" with Jalali date fields.
	OutputShamsi

	// OutputGregorian renders "YYYY/MM/DD HH:mm" with Gregorian date fields.
	OutputGregorian

	// OutputHijri renders "YYYY/MM/DD HH:mm" with tabular Hijri date fields.
	OutputHijri

	// OutputTimestamp renders Unix epoch milliseconds.
	OutputTimestamp
)

// String constants for OutputFormat values.
const (
	OutputISOStr       = "iso"
	OutputShamsiStr    = "shamsi"
	OutputGregorianStr = "gregorian"
	OutputHijriStr     = "hijri"
	OutputTimestampStr = "timestamp"
)

// ParseOutputFormat converts a format key into an OutputFormat. Keys are
// accepted in lowercase, title case and uppercase; "jalali" and "persian"
// are aliases of "shamsi".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case OutputISOStr, "Iso", "ISO":
		return OutputISO, nil
	case OutputShamsiStr, "Shamsi", "SHAMSI",
		"jalali", "Jalali", "JALALI",
		"persian", "Persian", "PERSIAN":
		return OutputShamsi, nil
	case OutputGregorianStr, "Gregorian", "GREGORIAN":
		return OutputGregorian, nil
	case OutputHijriStr, "Hijri", "HIJRI":
		return OutputHijri, nil
	case OutputTimestampStr, "Timestamp", "TIMESTAMP":
		return OutputTimestamp, nil
	default:
		return OutputISO, &errors.ParseError{Type: "OutputFormat", Value: s}
	}
}

// String returns the canonical key, or "unknown" for an invalid value.
func (f OutputFormat) String() string {
	switch f {
	case OutputISO:
		return OutputISOStr
	case OutputShamsi:
		return OutputShamsiStr
	case OutputGregorian:
		return OutputGregorianStr
	case OutputHijri:
		return OutputHijriStr
	case OutputTimestamp:
		return OutputTimestampStr
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the defined constants.
func (f OutputFormat) Valid() bool {
	return f >= OutputISO && f <= OutputTimestamp
}

// TypeName returns "OutputFormat".
func (f OutputFormat) TypeName() string {
	return "OutputFormat"
}

// Redacted returns the same representation as String.
func (f OutputFormat) Redacted() string {
	return f.String()
}

// IsZero reports whether f is OutputISO.
func (f OutputFormat) IsZero() bool {
	return f == OutputISO
}

// Equal reports whether other is an OutputFormat or *OutputFormat with the
// same value.
func (f OutputFormat) Equal(other any) bool {
	switch v := other.(type) {
	case OutputFormat:
		return f == v
	case *OutputFormat:
		if v == nil {
			return false
		}
		return f == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError for an undefined value.
func (f OutputFormat) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{
			Type:   "OutputFormat",
			Reason: "invalid OutputFormat value",
			Value:  int(f),
		}
	}
	return nil
}

// MarshalJSON encodes f as its key.
func (f OutputFormat) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "OutputFormat", Value: int(f)}
	}
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON accepts a key understood by ParseOutputFormat or the numeric
// constant.
func (f *OutputFormat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "OutputFormat", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "OutputFormat", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseOutputFormat(s)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "OutputFormat", Data: data, Reason: err.Error()}
	}
	*f = OutputFormat(i)
	if !f.Valid() {
		return &errors.UnmarshalError{Type: "OutputFormat", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML encodes f as its key.
func (f OutputFormat) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "OutputFormat", Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseOutputFormat.
func (f *OutputFormat) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "OutputFormat", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f OutputFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "OutputFormat", Value: int(f)}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

var _ model.Model = (*OutputFormat)(nil)
