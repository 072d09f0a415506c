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

package holiday

import (
	"fmt"
	"io"
	"sort"

	"dirpx.dev/dxcal/dxcore/model"
	"dirpx.dev/dxcal/dxcore/model/calendar"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Set is an immutable collection of holidays indexed by Jalali date.
type Set struct {
	byDate map[calendar.JalaliDate][]Holiday
	count  int
}

// NewSet validates every record and indexes them by date. All invalid
// records are reported together; no Set is returned in that case.
//
// Several holidays may share a date. They are kept in input order.
func NewSet(records ...Holiday) (*Set, error) {
	ptrs := make([]*Holiday, len(records))
	for i := range records {
		ptrs[i] = &records[i]
	}
	if err := model.ValidateAll(ptrs); err != nil {
		return nil, err
	}

	s := &Set{byDate: make(map[calendar.JalaliDate][]Holiday, len(records))}
	for _, h := range records {
		s.byDate[h.Date] = append(s.byDate[h.Date], h)
	}
	s.count = len(records)

	return s, nil
}

// document is the on-disk layout read by Load. Dates and systems are kept
// as text so that a bad one is reported with the other record errors
// instead of aborting the decode.
type document struct {
	Holidays []record `yaml:"holidays"`
}

type record struct {
	Date        string `yaml:"date"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Off         bool   `yaml:"off"`
	System      string `yaml:"system"`
}

// holiday converts r, parsing its date and system. An empty system means
// SystemPersian.
func (r record) holiday() (Holiday, error) {
	date, err := calendar.ParseJalaliDate(r.Date)
	if err != nil {
		return Holiday{}, err
	}
	system := calendar.SystemPersian
	if r.System != "" {
		if system, err = calendar.ParseSystem(r.System); err != nil {
			return Holiday{}, err
		}
	}
	return Holiday{
		Date:        date,
		Title:       r.Title,
		Description: CleanDescription(r.Description),
		Off:         r.Off,
		System:      system,
	}, nil
}

// Load reads a YAML document of the form {holidays: [...]} and builds a Set
// from it. JSON input is accepted as well, being a subset of YAML.
//
// Descriptions pass through CleanDescription before validation, so feed
// bodies with HTML markup load as plain text. Every bad record is reported,
// whether its date, its system or its other fields are at fault.
func Load(r io.Reader) (*Set, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot decode holiday document: %w", err)
	}

	c := rxmerr.NewCollector()
	records := make([]Holiday, 0, len(doc.Holidays))
	for i, rec := range doc.Holidays {
		h, err := rec.holiday()
		if err == nil {
			err = h.Validate()
		}
		if err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, h.TypeName(), err))
			continue
		}
		records = append(records, h)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	return NewSet(records...)
}

// Len returns the number of holidays in s.
func (s *Set) Len() int {
	return s.count
}

// On returns the holidays on d, or nil if there are none. The result is a
// copy and may be modified by the caller.
func (s *Set) On(d calendar.JalaliDate) []Holiday {
	hs := s.byDate[d]
	if len(hs) == 0 {
		return nil
	}
	out := make([]Holiday, len(hs))
	copy(out, hs)
	return out
}

// IsOff reports whether any holiday on d is a day off.
func (s *Set) IsOff(d calendar.JalaliDate) bool {
	for _, h := range s.byDate[d] {
		if h.Off {
			return true
		}
	}
	return false
}

// InMonth returns the holidays of a Jalali month ordered by day. Holidays
// on the same day keep their input order.
func (s *Set) InMonth(year, month int) []Holiday {
	var out []Holiday
	for d, hs := range s.byDate {
		if d.Year == year && d.Month == month {
			out = append(out, hs...)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Day < out[j].Date.Day
	})

	return out
}
