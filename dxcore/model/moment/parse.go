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
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model/calendar"
)

// Input layouts understood by Parse. Any other layout, including "", selects
// free-form parsing.
const (
	LayoutJalali    = "jYYYY/jMM/jDD"
	LayoutGregorian = "YYYY/MM/DD"
)

// freeFormLayouts are tried in order for free-form input. Layouts without a
// zone are read in the caller's location.
var freeFormLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

var errUnrecognized = stderrors.New("unrecognized date format")

// Parse parses input in the local time zone. See ParseInLocation.
func Parse(input, layout string) (Moment, error) {
	return ParseInLocation(input, layout, time.Local)
}

// ParseInLocation parses input according to layout and returns the Moment
// with its wall clock in loc. A nil loc means time.Local.
//
// With LayoutJalali the input is a Jalali "YYYY/MM/DD" date; with
// LayoutGregorian it is a Gregorian "YYYY/MM/DD" date. Both give midnight in
// loc. Any other layout parses free-form text: RFC 3339 and the common ISO
// 8601 variants, "YYYY-MM-DD" dates, or signed Unix epoch milliseconds.
// Persian and Arabic-Indic digits are accepted everywhere. Empty input means
// the current instant.
//
// Failures are reported as a *errors.ParseError whose cause is reachable
// through errors.As. Under LayoutJalali and LayoutGregorian a date with
// fields out of range wraps a *errors.ValidationError.
func ParseInLocation(input, layout string, loc *time.Location) (Moment, error) {
	if loc == nil {
		loc = time.Local
	}
	text := strings.TrimSpace(calendar.FromLocalDigits(input))
	if text == "" {
		return Now(loc), nil
	}

	var (
		m   Moment
		err error
	)
	switch layout {
	case LayoutJalali:
		var d calendar.JalaliDate
		if d, err = calendar.ParseJalaliDate(text); err == nil {
			m, err = FromJalali(d, loc)
		}
	case LayoutGregorian:
		var g calendar.GregorianDate
		if g, err = calendar.ParseGregorianDate(text); err == nil {
			m = FromTime(g.Time(loc))
		}
	default:
		m, err = parseFreeForm(text, loc)
	}
	if err != nil {
		// A date ParseError is re-typed rather than nested so the value
		// appears once in the message.
		var perr *errors.ParseError
		if stderrors.As(err, &perr) {
			err = perr.Err
		}
		return Moment{}, &errors.ParseError{Type: "Moment", Value: input, Err: err}
	}

	m.raw = input
	return m, nil
}

func parseFreeForm(text string, loc *time.Location) (Moment, error) {
	if ms, err := strconv.ParseInt(text, 10, 64); err == nil {
		return FromTime(time.UnixMilli(ms).In(loc)), nil
	}

	for _, layout := range freeFormLayouts {
		t, err := time.ParseInLocation(layout, text, loc)
		if err == nil {
			return FromTime(t.In(loc)), nil
		}
	}
	return Moment{}, errUnrecognized
}
