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
	"fmt"
	"strconv"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model/calendar"
)

// Output renders m the way a date-time picker reports a selection:
//
//	OutputISO        2025-03-21T10:30:00
//	OutputShamsi     1404/01/01 10:30
//	OutputGregorian  2025/03/21 10:30
//	OutputHijri      1446/09/21 10:30
//	OutputTimestamp  1742540400000
//
// Seconds are always dropped. An undefined format returns the text m was
// parsed from, or the OutputISO form when there is none.
func (m Moment) Output(format OutputFormat) string {
	hh, mm, _ := m.t.Clock()

	switch format {
	case OutputISO:
		g := m.Gregorian()
		return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:00", g.Year, g.Month, g.Day, hh, mm)
	case OutputShamsi:
		return dateClock(m.date.Year, m.date.Month, m.date.Day, hh, mm)
	case OutputGregorian:
		g := m.Gregorian()
		return dateClock(g.Year, g.Month, g.Day, hh, mm)
	case OutputHijri:
		h := m.Hijri()
		return dateClock(h.Year, h.Month, h.Day, hh, mm)
	case OutputTimestamp:
		return strconv.FormatInt(m.t.UnixMilli(), 10)
	default:
		if m.raw != "" {
			return m.raw
		}
		return m.Output(OutputISO)
	}
}

// OutputRange renders a start/end pair the way a range picker reports a
// selection. Shamsi, Gregorian and Hijri give date-only "YYYY/MM/DD" values
// and OutputTimestamp gives epoch milliseconds. Every other format,
// OutputISO included, passes the parsed text through, falling back to the
// UTC ISO 8601 instant.
//
// An end before start yields a *errors.ValidationError.
func OutputRange(start, end Moment, format OutputFormat) ([2]string, error) {
	if end.Before(start) {
		return [2]string{}, &errors.ValidationError{
			Type:   "Range",
			Field:  "End",
			Reason: "must not be before the start",
			Value:  end.String(),
		}
	}
	return [2]string{start.rangeOutput(format), end.rangeOutput(format)}, nil
}

func (m Moment) rangeOutput(format OutputFormat) string {
	switch format {
	case OutputShamsi:
		return dateOnly(m.date.Year, m.date.Month, m.date.Day)
	case OutputGregorian:
		g := m.Gregorian()
		return dateOnly(g.Year, g.Month, g.Day)
	case OutputHijri:
		h := m.Hijri()
		return dateOnly(h.Year, h.Month, h.Day)
	case OutputTimestamp:
		return strconv.FormatInt(m.t.UnixMilli(), 10)
	default:
		if m.raw != "" {
			return m.raw
		}
		return m.Format(FormatISO)
	}
}

// InRange reports whether d lies between start and end, both inclusive.
func InRange(d, start, end calendar.JalaliDate) bool {
	return d.Compare(start) >= 0 && d.Compare(end) <= 0
}

func dateOnly(y, m, d int) string {
	return fmt.Sprintf("%d/%02d/%02d", y, m, d)
}

func dateClock(y, m, d, hh, mm int) string {
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d", y, m, d, hh, mm)
}
