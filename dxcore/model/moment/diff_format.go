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

// DiffFormat selects how a Difference is rendered as text.
type DiffFormat int

const (
	// DiffNumber renders the magnitude in Persian digits followed by the
	// Persian unit name, with "قبل" (ago) appended for negative values:
	// "۳ روز قبل".
	DiffNumber DiffFormat = iota

	// DiffPersian renders the bare magnitude in Persian digits: "۳".
	DiffPersian

	// DiffPersianText renders the same text as DiffNumber.
	DiffPersianText

	// DiffEnglishText renders the signed value with an English unit name,
	// pluralized unless the magnitude is 1: "-3 days".
	DiffEnglishText
)

// String constants for DiffFormat values.
const (
	DiffNumberStr      = "number"
	DiffPersianStr     = "persian"
	DiffPersianTextStr = "persian-text"
	DiffEnglishTextStr = "english-text"
)

// ParseDiffFormat converts a format key into a DiffFormat. Keys are accepted
// in lowercase, title case and uppercase.
func ParseDiffFormat(s string) (DiffFormat, error) {
	switch s {
	case DiffNumberStr, "Number", "NUMBER":
		return DiffNumber, nil
	case DiffPersianStr, "Persian", "PERSIAN":
		return DiffPersian, nil
	case DiffPersianTextStr, "Persian-Text", "PERSIAN-TEXT":
		return DiffPersianText, nil
	case DiffEnglishTextStr, "English-Text", "ENGLISH-TEXT":
		return DiffEnglishText, nil
	default:
		return DiffNumber, &errors.ParseError{Type: "DiffFormat", Value: s}
	}
}

// String returns the canonical key, or "unknown" for an invalid value.
func (f DiffFormat) String() string {
	switch f {
	case DiffNumber:
		return DiffNumberStr
	case DiffPersian:
		return DiffPersianStr
	case DiffPersianText:
		return DiffPersianTextStr
	case DiffEnglishText:
		return DiffEnglishTextStr
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the defined constants.
func (f DiffFormat) Valid() bool {
	return f >= DiffNumber && f <= DiffEnglishText
}

// TypeName returns "DiffFormat".
func (f DiffFormat) TypeName() string {
	return "DiffFormat"
}

// Redacted returns the same representation as String.
func (f DiffFormat) Redacted() string {
	return f.String()
}

// IsZero reports whether f is DiffNumber.
func (f DiffFormat) IsZero() bool {
	return f == DiffNumber
}

// Equal reports whether other is a DiffFormat or *DiffFormat with the same
// value.
func (f DiffFormat) Equal(other any) bool {
	switch v := other.(type) {
	case DiffFormat:
		return f == v
	case *DiffFormat:
		if v == nil {
			return false
		}
		return f == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError for an undefined value.
func (f DiffFormat) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{
			Type:   "DiffFormat",
			Reason: "invalid DiffFormat value",
			Value:  int(f),
		}
	}
	return nil
}

// MarshalJSON encodes f as its key.
func (f DiffFormat) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "DiffFormat", Value: int(f)}
	}
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON accepts a key understood by ParseDiffFormat or the numeric
// constant.
func (f *DiffFormat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DiffFormat", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "DiffFormat", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDiffFormat(s)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "DiffFormat", Data: data, Reason: err.Error()}
	}
	*f = DiffFormat(i)
	if !f.Valid() {
		return &errors.UnmarshalError{Type: "DiffFormat", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML encodes f as its key.
func (f DiffFormat) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "DiffFormat", Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseDiffFormat.
func (f *DiffFormat) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "DiffFormat", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDiffFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f DiffFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "DiffFormat", Value: int(f)}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DiffFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseDiffFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

var _ model.Model = (*DiffFormat)(nil)
