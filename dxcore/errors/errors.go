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

// Package errors provides the error value types shared by every dxcal
// package.
//
// Calendar dates, moments, holidays and the enum-like selectors (units,
// output formats, calendar systems) all report failures through the same
// four types, so callers can recognize a failure class with errors.As no
// matter which package produced it:
//
//   - ParseError
//     Returned when text (a date string, a unit key, a layout) cannot be
//     interpreted. It MAY wrap the underlying cause, typically a
//     ValidationError for a date whose fields are out of range.
//
//   - MarshalError
//     Returned when an invalid enum-like value is about to be encoded.
//
//   - UnmarshalError
//     Returned when JSON or YAML input cannot be decoded into a value type.
//
//   - ValidationError
//     Returned by Validate methods and by the checked converter entry points
//     (for example, a Gregorian month of 13 or a Jalali day of 32).
//
// Messages are stable and prefixed with "dxcal:".
//
// # Usage
//
//	func ParseUnit(s string) (Unit, error) {
//	    switch s {
//	    case "day":
//	        return UnitDay, nil
//	    default:
//	        return UnitAuto, &errors.ParseError{Type: "Unit", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing text into a dxcal value fails.
//
// Type identifies the logical type being parsed (for example, "Moment",
// "JalaliDate", "Unit"), and Value contains the exact text that could not be
// interpreted. Err optionally carries the underlying cause; it is exposed
// through Unwrap so callers can reach a wrapped *ValidationError:
//
//	m, err := moment.Parse("1403/13/01", moment.LayoutJalali)
//	var verr *errors.ValidationError
//	if stderrors.As(err, &verr) {
//	    // verr.Field == "Month"
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Moment").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxcal: invalid {Type} value: {Value}"
//	"dxcal: invalid {Type} value: {Value}: {Err}" (when Err is set)
func (e *ParseError) Error() string {
	msg := "dxcal: invalid " + e.Type + " value: " + e.Value
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Unit"), and
// Value contains the underlying numeric value that was deemed invalid. In most
// cases a MarshalError indicates a programming error, such as a numeric cast
// that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxcal: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxcal: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason describes what went wrong. Data is kept
// out of the formatted message; log it separately when needed.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxcal: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxcal: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a value fails.
//
// Type identifies the value being validated (for example, "JalaliDate"),
// Field optionally names the offending field, Reason explains the failure
// and Value optionally carries the rejected value.
//
// # Example
//
//	func (d JalaliDate) Validate() error {
//	    if d.Month < 1 || d.Month > 12 {
//	        return &errors.ValidationError{
//	            Type:   "JalaliDate",
//	            Field:  "Month",
//	            Reason: "must be between 1 and 12",
//	            Value:  d.Month,
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxcal: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxcal: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxcal: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxcal: invalid " + e.Type + ": " + e.Reason
}
