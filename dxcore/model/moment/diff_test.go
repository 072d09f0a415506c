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
	"testing"
	"time"
)

func TestDiff_Auto(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Difference
	}{
		{"two days across Nowruz", "1404/01/02", "1403/12/30", Difference{2, UnitDay}},
		{"two days back", "1403/12/30", "1404/01/02", Difference{-2, UnitDay}},
		{"same day", "1404/01/01", "1404/01/01", Difference{0, UnitMinute}},
		{"six days", "1404/01/07", "1404/01/01", Difference{6, UnitDay}},
		{"twenty days rounds to three weeks", "1404/01/21", "1404/01/01", Difference{3, UnitWeek}},
		{"four months", "1404/05/01", "1404/01/01", Difference{4, UnitJMonth}},
		{"eleven months back", "1403/02/01", "1404/01/01", Difference{-11, UnitJMonth}},
		{"twelve months is a year", "1405/01/01", "1404/01/01", Difference{1, UnitJYear}},
		{"two years", "1406/01/01", "1404/01/01", Difference{2, UnitJYear}},
		{"thirty days in the same month", "1404/01/31", "1404/01/01", Difference{0, UnitJYear}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a, LayoutJalali)
			b := mustParse(t, tt.b, LayoutJalali)
			if got := Diff(a, b, UnitAuto); got != tt.want {
				t.Errorf("Diff(%s, %s, auto) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiff_AutoClock(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		want   Difference
	}{
		{"thirty minutes", 30 * time.Minute, Difference{30, UnitMinute}},
		{"thirty minutes back", -30 * time.Minute, Difference{-30, UnitMinute}},
		{"fifty nine and a half minutes", 59*time.Minute + 30*time.Second, Difference{1, UnitHour}},
		{"five hours", 5 * time.Hour, Difference{5, UnitHour}},
		{"twenty three hours", 23 * time.Hour, Difference{23, UnitHour}},
		{"twenty four hours", 24 * time.Hour, Difference{1, UnitDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromTime(nowruz.Time().Add(tt.offset))
			if got := a.Diff(nowruz, UnitAuto); got != tt.want {
				t.Errorf("Diff(auto) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiff_ExplicitUnits(t *testing.T) {
	a := mustParse(t, "1404/01/01", LayoutJalali)
	b := mustParse(t, "1403/12/30", LayoutJalali)

	tests := []struct {
		unit Unit
		want Difference
	}{
		{UnitMinute, Difference{1440, UnitMinute}},
		{UnitHour, Difference{24, UnitHour}},
		{UnitDay, Difference{1, UnitDay}},
		{UnitJDay, Difference{1, UnitJDay}},
		{UnitWeek, Difference{0, UnitWeek}},
		{UnitJMonth, Difference{1, UnitJMonth}},
		{UnitJYear, Difference{1, UnitJYear}},
		{Unit(99), Difference{1, UnitDay}},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			if got := Diff(a, b, tt.unit); got != tt.want {
				t.Errorf("Diff(%v) = %+v, want %+v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestDiff_Antisymmetric(t *testing.T) {
	offsets := []time.Duration{
		0,
		90 * time.Second,
		12 * time.Hour,
		36 * time.Hour,
		60 * time.Hour,
		-84 * time.Hour,
		400 * 24 * time.Hour,
		-3*24*time.Hour - 12*time.Hour,
	}
	units := []Unit{UnitMinute, UnitHour, UnitDay, UnitJDay, UnitWeek, UnitJMonth, UnitJYear}

	for _, off := range offsets {
		a := FromTime(nowruz.Time().Add(off))
		for _, u := range units {
			ab := Diff(a, nowruz, u)
			ba := Diff(nowruz, a, u)
			if ab.Value != -ba.Value {
				t.Errorf("offset %v unit %v: Diff(a,b) = %d, Diff(b,a) = %d", off, u, ab.Value, ba.Value)
			}
		}
	}
}

func TestDiff_LongSpans(t *testing.T) {
	a := mustParse(t, "1404/01/01", LayoutJalali)
	b := mustParse(t, "0404/01/01", LayoutJalali)

	if got := Diff(a, b, UnitJYear); got.Value != 1000 {
		t.Errorf("Diff(jYear) = %d, want 1000", got.Value)
	}
	if got := Diff(a, b, UnitDay); got.Value < 365242 || got.Value > 365243 {
		t.Errorf("Diff(day) = %d, want about 365242", got.Value)
	}
}

func TestDifference_Format(t *testing.T) {
	tests := []struct {
		name   string
		diff   Difference
		format DiffFormat
		want   string
	}{
		{"number past", Difference{-3, UnitDay}, DiffNumber, "۳ روز قبل"},
		{"number future", Difference{3, UnitDay}, DiffNumber, "۳ روز"},
		{"number jDay", Difference{12, UnitJDay}, DiffNumber, "۱۲ روز"},
		{"number month", Difference{-1, UnitJMonth}, DiffNumber, "۱ ماه قبل"},
		{"persian text", Difference{5, UnitWeek}, DiffPersianText, "۵ هفته"},
		{"persian text year", Difference{-10, UnitJYear}, DiffPersianText, "۱۰ سال قبل"},
		{"persian text minute", Difference{45, UnitMinute}, DiffPersianText, "۴۵ دقیقه"},
		{"persian text hour", Difference{2, UnitHour}, DiffPersianText, "۲ ساعت"},
		{"persian bare", Difference{-3, UnitDay}, DiffPersian, "۳"},
		{"english plural", Difference{5, UnitDay}, DiffEnglishText, "5 days"},
		{"english signed", Difference{-3, UnitDay}, DiffEnglishText, "-3 days"},
		{"english singular", Difference{1, UnitWeek}, DiffEnglishText, "1 week"},
		{"english negative singular", Difference{-1, UnitJMonth}, DiffEnglishText, "-1 month"},
		{"english zero", Difference{0, UnitMinute}, DiffEnglishText, "0 minutes"},
		{"english year", Difference{2, UnitJYear}, DiffEnglishText, "2 years"},
		{"english hour", Difference{1, UnitHour}, DiffEnglishText, "1 hour"},
		{"unknown unit persian", Difference{2, UnitAuto}, DiffNumber, "۲ واحد"},
		{"unknown unit english", Difference{2, Unit(42)}, DiffEnglishText, "2 units"},
		{"unknown format", Difference{-3, UnitDay}, DiffFormat(42), "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diff.Format(tt.format); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestDifference_StringAndNegate(t *testing.T) {
	d := Difference{3, UnitDay}
	if got := d.String(); got != "3 days" {
		t.Errorf("String() = %q, want \"3 days\"", got)
	}
	if got := d.Negate(); got != (Difference{-3, UnitDay}) {
		t.Errorf("Negate() = %+v, want {-3 day}", got)
	}
}

func TestDiffString(t *testing.T) {
	a := mustParse(t, "1404/01/02", LayoutJalali)
	b := mustParse(t, "1403/12/30", LayoutJalali)

	if got := DiffString(b, a, UnitAuto, DiffNumber); got != "۲ روز قبل" {
		t.Errorf("DiffString() = %q, want \"۲ روز قبل\"", got)
	}
	if got := DiffString(a, b, UnitDay, DiffEnglishText); got != "2 days" {
		t.Errorf("DiffString() = %q, want \"2 days\"", got)
	}
}
