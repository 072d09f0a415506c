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

// Package holiday holds calendar events supplied by an external holiday feed
// and answers date queries over them.
//
// The package never fetches anything. Records arrive as a YAML or JSON
// document, usually exported from a public Iranian calendar feed, and are
// validated and indexed by their Jalali date:
//
//	holidays:
//	  - date: 1404/01/01
//	    title: Nowruz
//	    off: true
//	  - date: 1404/01/13
//	    title: Sizdah Bedar
//	    off: true
//
// A Set is immutable once built and safe for concurrent reads.
package holiday

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model"
	"dirpx.dev/dxcal/dxcore/model/calendar"
	"gopkg.in/yaml.v3"
)

const (
	// TitleMaxLen is the maximum number of runes in a Holiday title.
	TitleMaxLen = 256

	// DescriptionMaxLen is the maximum number of runes in a Holiday
	// description. Feeds publish longer HTML bodies; CleanDescription cuts
	// them down to this length.
	DescriptionMaxLen = 200
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// CleanDescription strips HTML tags from s, trims surrounding whitespace and
// truncates the result to DescriptionMaxLen runes.
func CleanDescription(s string) string {
	s = strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
	if utf8.RuneCountInString(s) <= DescriptionMaxLen {
		return s
	}
	return string([]rune(s)[:DescriptionMaxLen])
}

// Holiday is a single calendar event on a Jalali date.
//
// Off marks an official day off; events with Off false are observances that
// are shown on a calendar but do not close offices. System records the
// calendar the event is fixed in, so a Hijri holiday moves across Jalali
// years while a Persian one does not.
type Holiday struct {
	Date        calendar.JalaliDate `json:"date" yaml:"date"`
	Title       string              `json:"title" yaml:"title"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Off         bool                `json:"off" yaml:"off"`
	System      calendar.System     `json:"system" yaml:"system"`
}

var _ model.Model = (*Holiday)(nil)

// Gregorian returns the Gregorian date of h as "YYYY-MM-DD", the form
// calendar widgets expect for event dates.
func (h Holiday) Gregorian() string {
	return h.Date.Gregorian().String()
}

// String returns "YYYY/MM/DD title", with " (off)" appended for days off.
func (h Holiday) String() string {
	s := h.Date.String() + " " + h.Title
	if h.Off {
		s += " (off)"
	}
	return s
}

// Redacted returns the same representation as String. Holidays are public.
func (h Holiday) Redacted() string {
	return h.String()
}

// TypeName returns "Holiday".
func (h Holiday) TypeName() string {
	return "Holiday"
}

// IsZero reports whether h has no date and no title.
func (h Holiday) IsZero() bool {
	return h.Date.IsZero() && h.Title == "" && h.Description == "" && !h.Off && h.System.IsZero()
}

// Equal reports whether h and other are the same record.
func (h Holiday) Equal(other Holiday) bool {
	return h == other
}

// Validate checks the date, the title and description lengths and the
// calendar system.
func (h Holiday) Validate() error {
	if err := h.Date.Validate(); err != nil {
		return fmt.Errorf("invalid %s date: %w", h.TypeName(), err)
	}

	title := strings.TrimSpace(h.Title)
	if title == "" {
		return &errors.ValidationError{Type: h.TypeName(), Field: "Title", Reason: "must not be empty"}
	}
	if title != h.Title {
		return &errors.ValidationError{
			Type:   h.TypeName(),
			Field:  "Title",
			Reason: "must not have leading or trailing whitespace",
			Value:  h.Title,
		}
	}
	if n := utf8.RuneCountInString(h.Title); n > TitleMaxLen {
		return &errors.ValidationError{
			Type:   h.TypeName(),
			Field:  "Title",
			Reason: fmt.Sprintf("is %d runes long (maximum %d)", n, TitleMaxLen),
		}
	}

	if n := utf8.RuneCountInString(h.Description); n > DescriptionMaxLen {
		return &errors.ValidationError{
			Type:   h.TypeName(),
			Field:  "Description",
			Reason: fmt.Sprintf("is %d runes long (maximum %d)", n, DescriptionMaxLen),
		}
	}

	if err := h.System.Validate(); err != nil {
		return fmt.Errorf("invalid %s system: %w", h.TypeName(), err)
	}

	return nil
}

// MarshalJSON validates h and encodes it as a JSON object.
func (h Holiday) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", h.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type holiday Holiday
	return json.Marshal(holiday(h))
}

// UnmarshalJSON decodes a JSON object and validates the result.
func (h *Holiday) UnmarshalJSON(data []byte) error {
	type holiday Holiday
	if err := json.Unmarshal(data, (*holiday)(h)); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", h.TypeName(), err)
	}

	if err := h.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", h.TypeName(), err)
	}

	return nil
}

// MarshalYAML validates h and encodes it as a YAML mapping.
func (h Holiday) MarshalYAML() (any, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", h.TypeName(), err)
	}

	type holiday Holiday
	return holiday(h), nil
}

// UnmarshalYAML decodes a YAML mapping and validates the result.
func (h *Holiday) UnmarshalYAML(node *yaml.Node) error {
	type holiday Holiday
	if err := node.Decode((*holiday)(h)); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", h.TypeName(), err)
	}

	if err := h.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", h.TypeName(), err)
	}

	return nil
}
