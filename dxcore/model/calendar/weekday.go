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

import "time"

// PersianWeekday rotates a native weekday (Sunday = 0) into the Persian week
// where Saturday = 0 and Friday = 6.
func PersianWeekday(w time.Weekday) int {
	return (int(w) + 1) % 7
}

// FirstWeekdayOfJalaliMonth returns the weekday of day 1 of the given Jalali
// month, with Saturday = 0. A month outside [1,12] yields a
// *errors.ValidationError.
//
//	FirstWeekdayOfJalaliMonth(1404, 1) // 6 (Friday)
func FirstWeekdayOfJalaliMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, monthRangeError("JalaliDate", month)
	}
	first := JalaliDate{Year: year, Month: month, Day: 1}
	return PersianWeekday(first.Weekday()), nil
}

// JalaliMonthGrid lays out a Jalali month as Saturday-first week rows. Cells
// before day 1 and after the last day are 0.
func JalaliMonthGrid(year, month int) ([][7]int, error) {
	offset, err := FirstWeekdayOfJalaliMonth(year, month)
	if err != nil {
		return nil, err
	}
	days := DaysInJalaliMonth(year, month)

	rows := make([][7]int, (offset+days+6)/7)
	for day := 1; day <= days; day++ {
		cell := offset + day - 1
		rows[cell/7][cell%7] = day
	}
	return rows, nil
}
