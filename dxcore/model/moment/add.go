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
	"time"

	"dirpx.dev/dxcal/dxcore/errors"
	"dirpx.dev/dxcal/dxcore/model/calendar"
)

// Add returns m moved by amount units. Only UnitDay and UnitJDay are
// supported; any other unit yields a *errors.ValidationError.
func (m Moment) Add(amount int, unit Unit) (Moment, error) {
	if unit != UnitDay && unit != UnitJDay {
		return Moment{}, &errors.ValidationError{
			Type:   "Unit",
			Reason: "only day and jDay can be added, got " + unit.String(),
			Value:  int(unit),
		}
	}
	return m.AddDays(amount), nil
}

// AddDays returns m moved by n Jalali calendar days.
//
// The day field is shifted and carried across months until it fits its
// month. Month lengths come from calendar.JalaliMonthLength, the lengths the
// converters use, so every step is exactly one elapsed day even in years
// where the leap table disagrees with the converters. The instant is then rebuilt from the normalized
// date with the same wall clock and location, and the Jalali date is derived
// again from that instant.
func (m Moment) AddDays(n int) Moment {
	y, mo, d := m.date.Year, m.date.Month, m.date.Day+n

	for d > calendar.JalaliMonthLength(y, mo) {
		d -= calendar.JalaliMonthLength(y, mo)
		mo++
		if mo > 12 {
			mo = 1
			y++
		}
	}
	for d < 1 {
		mo--
		if mo < 1 {
			mo = 12
			y--
		}
		d += calendar.JalaliMonthLength(y, mo)
	}

	g := calendar.JalaliDate{Year: y, Month: mo, Day: d}.Gregorian()
	hh, mm, ss := m.t.Clock()
	t := time.Date(g.Year, time.Month(g.Month), g.Day, hh, mm, ss, m.t.Nanosecond(), m.t.Location())
	return FromTime(t)
}
