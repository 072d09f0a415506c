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

package calendar

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var jalaliMonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

var gregorianMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Weekday tables start on Saturday.
var (
	persianWeekdayNames = [7]string{"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه"}
	englishWeekdayNames = [7]string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

// JalaliMonthName returns the Persian name of Jalali month m (1 = Farvardin),
// or "" when m is outside [1,12].
func JalaliMonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return jalaliMonthNames[m-1]
}

// GregorianMonthName returns the English name of Gregorian month m, or "" when
// m is outside [1,12].
func GregorianMonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return gregorianMonthNames[m-1]
}

// PersianWeekdayName returns the Persian weekday name at index i of the
// Saturday-first table, or "" when i is outside [0,6].
func PersianWeekdayName(i int) string {
	if i < 0 || i > 6 {
		return ""
	}
	return persianWeekdayNames[i]
}

// EnglishWeekdayName returns the English weekday name at index i of the
// Saturday-first table, or "" when i is outside [0,6].
func EnglishWeekdayName(i int) string {
	if i < 0 || i > 6 {
		return ""
	}
	return englishWeekdayNames[i]
}

const (
	persianZero = '۰'
	arabicZero  = '٠'
)

var (
	toPersian = runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + (r - '0')
		}
		return r
	})

	fromLocal = runes.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			return '0' + (r - arabicZero)
		}
		return r
	})
)

// ToPersianDigits replaces ASCII digits in s with Extended Arabic-Indic
// (Persian) digits. Other runes are kept.
//
//	ToPersianDigits("1404/01/01") // "۱۴۰۴/۰۱/۰۱"
func ToPersianDigits(s string) string {
	out, _, err := transform.String(toPersian, s)
	if err != nil {
		return s
	}
	return out
}

// FromLocalDigits replaces Persian and Arabic-Indic digits in s with ASCII
// digits. Other runes are kept.
func FromLocalDigits(s string) string {
	out, _, err := transform.String(fromLocal, s)
	if err != nil {
		return s
	}
	return out
}
