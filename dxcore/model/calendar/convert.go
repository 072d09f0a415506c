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

// Package calendar converts dates between the Solar Hijri (Jalali, Shamsi)
// calendar, the proleptic Gregorian calendar and the tabular Islamic (Hijri)
// calendar, and answers metadata questions about Jalali months.
//
// The package exposes two layers:
//
//   - Checked entry points (GregorianToJalali, JalaliToGregorian,
//     GregorianToHijri, FirstWeekdayOfJalaliMonth, JalaliMonthGrid) validate
//     their integer arguments and return a *errors.ValidationError for
//     structurally invalid input such as month 13 or day 32.
//
//   - Value methods (GregorianDate.Jalali, JalaliDate.Gregorian,
//     GregorianDate.Hijri) run the arithmetic directly and assume the
//     receiver is valid. Call Validate first when the value comes from
//     outside the program.
//
// Jalali↔Gregorian conversion uses the 33-year arithmetic cycle: grand cycles
// of 12053 days split into 4-year sub-cycles of 1461 days. Months 1–6 have 31
// days, months 7–11 have 30 and month 12 has 29 or 30. The day count is
// anchored at Jalali 979 / Gregorian 1600 for modern dates and at an absolute
// epoch for earlier ones; both anchors agree on every date and the conversion
// round-trips for every Gregorian day of years 1 through 9999.
//
// IsJalaliLeapYear implements the break-point table approximation and
// DaysInJalaliMonth follows it. The converters use the 33-year arithmetic
// cycle instead, reported by IsJalaliCycleLeapYear and JalaliMonthLength.
// The two agree on 1399 and 1403 but not on every year of a cycle, so
// JalaliDate.Validate accepts an Esfand 30 that either one allows.
//
// Everything in this package is pure and safe for concurrent use.
package calendar

import "dirpx.dev/dxcal/dxcore/errors"

const (
	// modernGregorianAnchor is the last Gregorian year handled by the
	// historical anchor; later years count days from 1600.
	modernGregorianAnchor = 1600

	// modernJalaliAnchor is the Jalali year matching modernGregorianAnchor.
	modernJalaliAnchor = 979

	daysPer33Years  = 12053
	daysPer4Years   = 1461
	daysPer400Years = 146097
	daysPer100Years = 36524

	// firstHalfDays is the number of days in Jalali months 1–6.
	firstHalfDays = 186
)

// gregorianDaysBefore[m] is the number of days before month m+1 in a common
// Gregorian year.
var gregorianDaysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; it has the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// GregorianToJalali converts a proleptic Gregorian date to the Jalali
// calendar.
//
// The Gregorian month must be in [1,12] and the day must fit the month;
// otherwise a *errors.ValidationError is returned. Any year is accepted.
//
//	d, _ := GregorianToJalali(2025, 3, 21) // 1404/01/01
func GregorianToJalali(gy, gm, gd int) (JalaliDate, error) {
	g := GregorianDate{Year: gy, Month: gm, Day: gd}
	if err := g.Validate(); err != nil {
		return JalaliDate{}, err
	}
	return g.Jalali(), nil
}

// JalaliToGregorian converts a Jalali date to the proleptic Gregorian
// calendar.
//
// The date must pass JalaliDate.Validate; otherwise a
// *errors.ValidationError is returned.
//
//	d, _ := JalaliToGregorian(1403, 12, 30) // 2025-03-20
//	d, _ = JalaliToGregorian(1408, 12, 30)  // 2030-03-20
func JalaliToGregorian(jy, jm, jd int) (GregorianDate, error) {
	j := JalaliDate{Year: jy, Month: jm, Day: jd}
	if err := j.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return j.Gregorian(), nil
}

// gregorianToJalali is the unchecked Gregorian → Jalali reduction.
func gregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	gy2 := gy
	if gm > 2 {
		gy2++
	}

	var days int
	if gy > modernGregorianAnchor {
		gy -= modernGregorianAnchor
		gy2 -= modernGregorianAnchor
		jy = modernJalaliAnchor
		days = 365*gy + floorDiv(gy2+3, 4) - floorDiv(gy2+99, 100) + floorDiv(gy2+399, 400) - 80 +
			gd + gregorianDaysBefore[gm-1]
	} else {
		// Absolute epoch: day 0 sits 1595 Jalali years before year 0.
		jy = -1595
		days = 355666 + 365*gy + floorDiv(gy2+3, 4) - floorDiv(gy2+99, 100) + floorDiv(gy2+399, 400) +
			gd + gregorianDaysBefore[gm-1]
	}

	jy += 33 * floorDiv(days, daysPer33Years)
	days = floorMod(days, daysPer33Years)

	jy += 4 * (days / daysPer4Years)
	days %= daysPer4Years

	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < firstHalfDays {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-firstHalfDays)/30
		jd = 1 + (days-firstHalfDays)%30
	}
	return jy, jm, jd
}

// jalaliDaysBefore returns the number of days before day 1 of month jm.
func jalaliDaysBefore(jm int) int {
	if jm < 7 {
		return (jm - 1) * 31
	}
	return (jm-7)*30 + firstHalfDays
}

// jalaliToGregorian is the unchecked Jalali → Gregorian reduction.
func jalaliToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	if jy > modernJalaliAnchor {
		return jalaliToGregorianModern(jy, jm, jd)
	}

	jy += 1595
	days := -355668 + 365*jy + floorDiv(jy, 33)*8 + (floorMod(jy, 33)+3)/4 + jd + jalaliDaysBefore(jm)

	gy = 400 * floorDiv(days, daysPer400Years)
	days = floorMod(days, daysPer400Years)

	if days > daysPer100Years {
		days--
		gy += 100 * (days / daysPer100Years)
		days %= daysPer100Years
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / daysPer4Years)
	days %= daysPer4Years

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd = days + 1
	lengths := gregorianMonthLengths(IsGregorianLeapYear(gy))
	for gm = 0; gm < 13 && gd > lengths[gm]; gm++ {
		gd -= lengths[gm]
	}
	return gy, gm, gd
}

// jalaliToGregorianModern counts days from the 979/1600 anchor.
func jalaliToGregorianModern(jy, jm, jd int) (gy, gm, gd int) {
	gy = modernGregorianAnchor
	jy -= modernJalaliAnchor

	days := 365*jy + floorDiv(jy, 33)*8 + (floorMod(jy, 33)+3)/4 + 78 + jd + jalaliDaysBefore(jm)

	gy += 400 * floorDiv(days, daysPer400Years)
	days = floorMod(days, daysPer400Years)

	// leap tracks whether the remaining span starts in a leap year of the
	// current century block.
	leap := true
	if days >= daysPer100Years+1 {
		days--
		gy += 100 * (days / daysPer100Years)
		days %= daysPer100Years
		if days >= 365 {
			days++
		} else {
			leap = false
		}
	}

	gy += 4 * (days / daysPer4Years)
	days %= daysPer4Years

	if days >= 366 {
		leap = false
		days--
		gy += days / 365
		days %= 365
	}

	lengths := gregorianMonthLengths(leap || IsGregorianLeapYear(gy))
	for gm = 0; gm < 13 && days >= lengths[gm]; gm++ {
		days -= lengths[gm]
	}
	return gy, gm, days + 1
}

// gregorianMonthLengths returns month lengths indexed 1..12 with a leading 0
// so the month loops above can start at index 0.
func gregorianMonthLengths(leap bool) [13]int {
	feb := 28
	if leap {
		feb = 29
	}
	return [13]int{0, 31, feb, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
}

// monthRangeError reports a month outside [1,12].
func monthRangeError(typeName string, month int) error {
	return &errors.ValidationError{
		Type:   typeName,
		Field:  "Month",
		Reason: "must be between 1 and 12",
		Value:  month,
	}
}
