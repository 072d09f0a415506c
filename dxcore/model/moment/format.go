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

	"dirpx.dev/dxcal/dxcore/model/calendar"
)

// Format specifiers accepted by Moment.Format. The set is closed; any other
// specifier renders the UTC ISO 8601 instant.
const (
	FormatJalali             = "jYYYY/jMM/jDD"
	FormatGregorian          = "YYYY/MM/DD"
	FormatJalaliLong         = "jDD jMMMM jYYYY"
	FormatJalaliFull         = "jDDDD jDD jMMMM jYYYY"
	FormatJalaliWeekdayMonth = "jDDDD jDD jMMM"
	FormatJalaliDayMonth     = "jDD jMMMM"
	FormatJalaliMonthYear    = "jMMMM jYYYY"
	FormatJalaliWeekday      = "jDDDD"
	FormatJalaliMonth        = "jMMMM"
	FormatGregorianLong      = "DD MMMM YYYY"
	FormatGregorianFull      = "DDDD DD MMMM YYYY"
	FormatPersianNumbers     = "persian-numbers"
	FormatISO                = "iso"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatSpec describes one specifier for listings.
type FormatSpec struct {
	Spec    string
	Label   string
	Example string
}

// JalaliFormats, GregorianFormats and DiffFormats list the supported
// specifiers with a sample rendering each, in display order.
var (
	JalaliFormats = []FormatSpec{
		{FormatJalali, "Basic Jalali", "1404/09/20"},
		{FormatPersianNumbers, "Persian Digits", "۱۴۰۳/۰۹/۲۰"},
		{FormatJalaliLong, "Day Month Year", "۲۰ آذر ۱۴۰۳"},
		{FormatJalaliFull, "Full Date", "جمعه ۲۰ آذر ۱۴۰۳"},
		{FormatJalaliWeekdayMonth, "Day Date Month", "جمعه ۲۰ آذر"},
		{FormatJalaliDayMonth, "Day Month", "۲۰ آذر"},
		{FormatJalaliMonthYear, "Month Year", "آذر ۱۴۰۳"},
		{FormatJalaliWeekday, "Day Name", "جمعه"},
		{FormatJalaliMonth, "Month Name", "آذر"},
	}

	GregorianFormats = []FormatSpec{
		{FormatGregorian, "Basic Gregorian", "2025/12/10"},
		{FormatGregorianLong, "Day Month Year", "10 December 2025"},
		{FormatGregorianFull, "Full Date", "Friday 10 December 2025"},
		{FormatISO, "ISO Format", "2025-12-10T00:00:00.000Z"},
	}

	DiffFormats = []FormatSpec{
		{DiffNumberStr, "Number", "5"},
		{DiffPersianStr, "Persian Digits", "۵"},
		{DiffPersianTextStr, "Persian Text", "۵ روز"},
		{DiffEnglishTextStr, "English Text", "5 days"},
	}
)

// Format renders m with one of the Format* specifiers.
//
// Persian digits are used for the day and year of the named Jalali forms.
// Weekday names are taken from Saturday-first tables at the position of the
// native weekday (Sunday = 0), so a Friday is named "پنج‌شنبه" and
// "Thursday". Displays built on these strings depend on that mapping;
// use calendar.PersianWeekday for the Saturday-first index instead.
func (m Moment) Format(spec string) string {
	j := m.date
	g := m.Gregorian()
	weekday := int(m.t.Weekday())
	fa := func(n int) string { return calendar.ToPersianDigits(strconv.Itoa(n)) }

	switch spec {
	case FormatJalali:
		return fmt.Sprintf("%d/%02d/%02d", j.Year, j.Month, j.Day)
	case FormatGregorian:
		return fmt.Sprintf("%d/%02d/%02d", g.Year, g.Month, g.Day)
	case FormatJalaliLong:
		return fa(j.Day) + " " + calendar.JalaliMonthName(j.Month) + " " + fa(j.Year)
	case FormatJalaliFull:
		return calendar.PersianWeekdayName(weekday) + " " + fa(j.Day) + " " +
			calendar.JalaliMonthName(j.Month) + " " + fa(j.Year)
	case FormatJalaliWeekdayMonth:
		return calendar.PersianWeekdayName(weekday) + " " + fa(j.Day) + " " + calendar.JalaliMonthName(j.Month)
	case FormatJalaliDayMonth:
		return fa(j.Day) + " " + calendar.JalaliMonthName(j.Month)
	case FormatJalaliMonthYear:
		return calendar.JalaliMonthName(j.Month) + " " + fa(j.Year)
	case FormatJalaliWeekday:
		return calendar.PersianWeekdayName(weekday)
	case FormatJalaliMonth:
		return calendar.JalaliMonthName(j.Month)
	case FormatGregorianLong:
		return fmt.Sprintf("%d %s %d", g.Day, calendar.GregorianMonthName(g.Month), g.Year)
	case FormatGregorianFull:
		return fmt.Sprintf("%s %d %s %d", calendar.EnglishWeekdayName(weekday), g.Day,
			calendar.GregorianMonthName(g.Month), g.Year)
	case FormatPersianNumbers:
		return calendar.ToPersianDigits(fmt.Sprintf("%d/%02d/%02d", j.Year, j.Month, j.Day))
	default:
		return m.t.UTC().Format(isoLayout)
	}
}
