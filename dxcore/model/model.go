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

// Package model defines the contracts shared by every dxcal value type.
//
// Calendar dates (JalaliDate, GregorianDate, HijriDate), moments, holiday
// records and the enum-like selectors (Unit, DiffFormat, OutputFormat,
// System) all implement Model. The contract gives each of them the same
// baseline: self-validation, JSON and YAML encoding that refuses invalid
// state, a log-safe string form, a canonical type name and zero-value
// detection.
//
// All dxcal values are immutable. Methods never mutate the receiver except
// for the Unmarshal family, which callers MUST NOT run concurrently on the
// same instance.
//
// Types implementing Model can be used with the generic helpers of this
// package: ValidateAll, FilterZero, MustValidate, ToJSON, ToYAML, FromJSON,
// FromYAML and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxcal value types.
//
// Example implementation:
//
//	type Month struct {
//	    Year, Number int
//	}
//
//	func (m Month) Validate() error {
//	    if m.Number < 1 || m.Number > 12 {
//	        return &errors.ValidationError{Type: "Month", Field: "Number", Reason: "must be between 1 and 12"}
//	    }
//	    return nil
//	}
//
//	func (m Month) TypeName() string { return "Month" }
//	func (m Month) IsZero() bool     { return m == Month{} }
//	func (m Month) Redacted() string { return m.String() }
//	func (m Month) String() string   { return fmt.Sprintf("%04d/%02d", m.Year, m.Number) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Month)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by values that can check their own invariants.
//
// Validate returns nil if and only if the value is fully valid. For calendar
// dates this means the month is in [1,12] and the day fits the month length
// of that calendar. Validate MUST be fast, deterministic and free of side
// effects; it MUST NOT mutate the receiver.
//
// Callers SHOULD validate at boundaries: after decoding JSON or YAML, after
// building a value from user input, and before handing it to the unchecked
// converter methods.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable is implemented by values with JSON and YAML codecs.
//
// Marshal methods MUST call Validate first and refuse to encode invalid
// state. Unmarshal methods MUST call Validate after decoding and return the
// failure as an error; the receiver MUST NOT be used in that case.
//
// Calendar dates encode as their canonical text form ("1404/01/01" for a
// JalaliDate) rather than as objects, so that YAML documents written by hand
// stay readable. Structured values (holiday records) use the type alias
// pattern to avoid recursion:
//
//	func (h Holiday) MarshalJSON() ([]byte, error) {
//	    if err := h.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", h.TypeName(), err)
//	    }
//	    type holiday Holiday
//	    return json.Marshal(holiday(h))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by values with a log-safe string form.
//
// Calendar values carry nothing sensitive, so Redacted is usually identical
// to String. Holiday descriptions are free text supplied by an external feed
// and are elided by Redacted.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable is implemented by values with a canonical type name.
//
// The name is used in error messages (errors.ValidationError.Type) and in
// aggregated diagnostics produced by ValidateAll.
type Identifiable interface {
	// TypeName returns the constant CamelCase name of the type.
	TypeName() string
}

// ZeroCheckable is implemented by values that can report whether they hold
// their zero value.
//
// The zero value of a calendar date (0/00/00) is never a valid date; IsZero
// lets callers treat it as "unset" without running full validation.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable is implemented by values with a notion of equality.
type Comparable[T any] interface {
	// Equal reports whether this instance represents the same value as other.
	Equal(other T) bool
}
