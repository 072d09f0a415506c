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
	"math"
	"strconv"

	"dirpx.dev/dxcal/dxcore/model/calendar"
)

const (
	msPerMinute = 60 * 1000
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Difference is a signed amount of some Unit. It is never UnitAuto when
// produced by Diff.
type Difference struct {
	Value int
	Unit  Unit
}

// Diff returns a − b in unit.
//
// Minutes, hours and days are elapsed time rounded to the nearest whole
// unit, halves away from zero. Weeks are rounded days divided by seven and
// rounded again. UnitJMonth and UnitJYear compare Jalali calendar fields
// only: 1404/01/01 is one month after 1403/12/30.
//
// UnitAuto picks the first of these that applies: minutes under an hour,
// hours under a day, days under a week, weeks under 28 days, months when the
// month difference is between 1 and 11, and years otherwise.
//
// An invalid unit counts days and is reported as UnitDay.
func Diff(a, b Moment, unit Unit) Difference {
	ms := a.t.UnixMilli() - b.t.UnixMilli()

	minutes := roundDiv(ms, msPerMinute)
	hours := roundDiv(ms, msPerHour)
	days := roundDiv(ms, msPerDay)
	weeks := int(math.Round(float64(days) / 7))
	months := a.date.MonthIndex() - b.date.MonthIndex()
	years := a.date.Year - b.date.Year

	switch unit {
	case UnitAuto:
		switch {
		case abs(minutes) < 60:
			return Difference{Value: minutes, Unit: UnitMinute}
		case abs(hours) < 24:
			return Difference{Value: hours, Unit: UnitHour}
		case abs(days) < 7:
			return Difference{Value: days, Unit: UnitDay}
		case abs(days) < 28:
			return Difference{Value: weeks, Unit: UnitWeek}
		case months != 0 && abs(months) < 12:
			return Difference{Value: months, Unit: UnitJMonth}
		default:
			return Difference{Value: years, Unit: UnitJYear}
		}
	case UnitMinute:
		return Difference{Value: minutes, Unit: unit}
	case UnitHour:
		return Difference{Value: hours, Unit: unit}
	case UnitDay, UnitJDay:
		return Difference{Value: days, Unit: unit}
	case UnitWeek:
		return Difference{Value: weeks, Unit: unit}
	case UnitJMonth:
		return Difference{Value: months, Unit: unit}
	case UnitJYear:
		return Difference{Value: years, Unit: unit}
	default:
		return Difference{Value: days, Unit: UnitDay}
	}
}

// Diff returns m − other in unit. See the package-level Diff.
func (m Moment) Diff(other Moment, unit Unit) Difference {
	return Diff(m, other, unit)
}

// DiffString is Diff followed by Difference.Format.
func DiffString(a, b Moment, unit Unit, format DiffFormat) string {
	return Diff(a, b, unit).Format(format)
}

// Format renders d according to format. An undefined format renders the
// plain decimal value.
//
//	Difference{-3, UnitDay}.Format(DiffNumber)      // "۳ روز قبل"
//	Difference{-3, UnitDay}.Format(DiffPersian)     // "۳"
//	Difference{1, UnitWeek}.Format(DiffEnglishText) // "1 week"
func (d Difference) Format(format DiffFormat) string {
	magnitude := calendar.ToPersianDigits(strconv.Itoa(abs(d.Value)))

	switch format {
	case DiffNumber, DiffPersianText:
		text := magnitude + " " + d.Unit.persianName()
		if d.Value < 0 {
			text += " قبل"
		}
		return text
	case DiffPersian:
		return magnitude
	case DiffEnglishText:
		plural := "s"
		if abs(d.Value) == 1 {
			plural = ""
		}
		return fmt.Sprintf("%d %s%s", d.Value, d.Unit.englishName(), plural)
	default:
		return strconv.Itoa(d.Value)
	}
}

// String renders d as English text.
func (d Difference) String() string {
	return d.Format(DiffEnglishText)
}

// Negate returns the difference with the opposite sign.
func (d Difference) Negate() Difference {
	return Difference{Value: -d.Value, Unit: d.Unit}
}

// roundDiv divides and rounds to the nearest integer, halves away from zero.
func roundDiv(n, d int64) int {
	return int(math.Round(float64(n) / float64(d)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
