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
	"encoding/json"
	"testing"
	"time"
)

func TestGregorianToHijri(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
		want       HijriDate
	}{
		{"Ramadan 1446", 2025, 3, 21, HijriDate{1446, 9, 21}},
		{"first of Ramadan 1445", 2024, 3, 11, HijriDate{1445, 9, 1}},
		{"millennium", 2000, 1, 1, HijriDate{1420, 9, 24}},
		{"Dhu al-Hijjah", 2023, 7, 5, HijriDate{1444, 12, 16}},
		{"Unix epoch", 1970, 1, 1, HijriDate{1389, 10, 22}},
		{"Rajab", 2025, 1, 15, HijriDate{1446, 7, 15}},
		{"Hijri epoch", 622, 7, 19, HijriDate{1, 1, 1}},
		{"day before epoch", 622, 7, 16, HijriDate{0, 12, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GregorianToHijri(tt.gy, tt.gm, tt.gd)
			if err != nil {
				t.Fatalf("GregorianToHijri() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GregorianToHijri(%d, %d, %d) = %v, want %v", tt.gy, tt.gm, tt.gd, got, tt.want)
			}
		})
	}
}

func TestGregorianToHijri_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
	}{
		{"month 13", 2025, 13, 1},
		{"day 0", 2025, 3, 0},
		{"before the Julian Period", MinHijriGregorianYear - 1, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GregorianToHijri(tt.gy, tt.gm, tt.gd); err == nil {
				t.Errorf("GregorianToHijri(%d, %d, %d) error = nil, want error", tt.gy, tt.gm, tt.gd)
			}
		})
	}
}

func TestGregorianDate_JulianDayNumber(t *testing.T) {
	tests := []struct {
		date GregorianDate
		want int
	}{
		{GregorianDate{2000, 1, 1}, 2451545},
		{GregorianDate{1970, 1, 1}, 2440588},
		{GregorianDate{2025, 3, 21}, 2460756},
	}

	for _, tt := range tests {
		if got := tt.date.JulianDayNumber(); got != tt.want {
			t.Errorf("%v.JulianDayNumber() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

// Every day of a few decades yields a valid Hijri date, and consecutive
// days either advance the day or start a new month.
func TestHijri_Continuity(t *testing.T) {
	day := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2050, 12, 31, 0, 0, 0, 0, time.UTC)

	prev := GregorianDateOf(day).Hijri()
	for day = day.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		cur := GregorianDateOf(day).Hijri()
		if err := cur.Validate(); err != nil {
			t.Fatalf("%v -> %v: %v", GregorianDateOf(day), cur, err)
		}

		sameMonth := cur.Year == prev.Year && cur.Month == prev.Month && cur.Day == prev.Day+1
		nextMonth := cur.Day == 1 && (cur.Year == prev.Year && cur.Month == prev.Month+1 ||
			cur.Year == prev.Year+1 && cur.Month == 1 && prev.Month == 12)
		if !sameMonth && !nextMonth {
			t.Fatalf("%v -> %v does not follow %v", GregorianDateOf(day), cur, prev)
		}
		prev = cur
	}
}

func TestHijriDate_Methods(t *testing.T) {
	d := HijriDate{1446, 9, 21}

	if got := d.String(); got != "1446/09/21" {
		t.Errorf("String() = %q, want 1446/09/21", got)
	}
	if got := d.TypeName(); got != "HijriDate" {
		t.Errorf("TypeName() = %q, want HijriDate", got)
	}
	if d.IsZero() || !(HijriDate{}).IsZero() {
		t.Error("IsZero() returned the wrong result")
	}
	if err := (HijriDate{1446, 9, 31}).Validate(); err == nil {
		t.Error("Validate() accepted day 31")
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var got HijriDate
	if err := json.Unmarshal(data, &got); err != nil || got != d {
		t.Errorf("json round trip = %v, %v; want %v", got, err, d)
	}

	parsed, err := ParseHijriDate("۱۴۴۶/۰۹/۲۱")
	if err != nil || parsed != d {
		t.Errorf("ParseHijriDate() = %v, %v; want %v", parsed, err, d)
	}
}
