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
	"encoding/json"
	"testing"
	"time"

	"dirpx.dev/dxcal/dxcore/model/calendar"
	"gopkg.in/yaml.v3"
)

// tehran is a fixed +03:30 zone so tests do not depend on the tz database.
var tehran = time.FixedZone("IRST", 3*3600+30*60)

// nowruz is 1404/01/01 10:30 in Tehran, a Friday.
var nowruz = FromTime(time.Date(2025, 3, 21, 10, 30, 0, 0, tehran))

func mustParse(t *testing.T, input, layout string) Moment {
	t.Helper()
	m, err := ParseInLocation(input, layout, tehran)
	if err != nil {
		t.Fatalf("ParseInLocation(%q, %q) error = %v", input, layout, err)
	}
	return m
}

func TestFromTime(t *testing.T) {
	if got := nowruz.Jalali(); got != (calendar.JalaliDate{Year: 1404, Month: 1, Day: 1}) {
		t.Errorf("Jalali() = %v, want 1404/01/01", got)
	}
	if got := nowruz.Gregorian(); got != (calendar.GregorianDate{Year: 2025, Month: 3, Day: 21}) {
		t.Errorf("Gregorian() = %v, want 2025-03-21", got)
	}
	if got := nowruz.Hijri(); got != (calendar.HijriDate{Year: 1446, Month: 9, Day: 21}) {
		t.Errorf("Hijri() = %v, want 1446/09/21", got)
	}
	if got := nowruz.Weekday(); got != time.Friday {
		t.Errorf("Weekday() = %v, want Friday", got)
	}
	if got := nowruz.Location(); got != tehran {
		t.Errorf("Location() = %v, want IRST", got)
	}
	if got := nowruz.Raw(); got != "" {
		t.Errorf("Raw() = %q, want empty", got)
	}
}

func TestFromTime_UsesWallClockDate(t *testing.T) {
	// 01:00 in Tehran is still the previous day in UTC.
	early := FromTime(time.Date(2025, 3, 21, 1, 0, 0, 0, tehran))

	if got := early.Jalali(); got != (calendar.JalaliDate{Year: 1404, Month: 1, Day: 1}) {
		t.Errorf("Jalali() = %v, want 1404/01/01", got)
	}
	utc := early.In(time.UTC)
	if got := utc.Jalali(); got != (calendar.JalaliDate{Year: 1403, Month: 12, Day: 30}) {
		t.Errorf("In(UTC).Jalali() = %v, want 1403/12/30", got)
	}
	if !utc.Equal(early) {
		t.Error("In() changed the instant")
	}
}

func TestFromJalali(t *testing.T) {
	m, err := FromJalali(calendar.JalaliDate{Year: 1403, Month: 12, Day: 30}, tehran)
	if err != nil {
		t.Fatalf("FromJalali() error = %v", err)
	}
	want := time.Date(2025, 3, 20, 0, 0, 0, 0, tehran)
	if !m.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", m.Time(), want)
	}

	if _, err := FromJalali(calendar.JalaliDate{Year: 1404, Month: 12, Day: 30}, tehran); err == nil {
		t.Error("FromJalali() accepted Esfand 30 of a common year")
	}
}

// The leap table and the converters disagree on 1407 and 1408.
func TestFromJalali_DisputedEsfand30(t *testing.T) {
	tests := []struct {
		name       string
		date       calendar.JalaliDate
		wantTime   time.Time
		wantJalali calendar.JalaliDate
	}{
		{
			name:       "converters' Esfand 30",
			date:       calendar.JalaliDate{Year: 1408, Month: 12, Day: 30},
			wantTime:   time.Date(2030, 3, 20, 0, 0, 0, 0, tehran),
			wantJalali: calendar.JalaliDate{Year: 1408, Month: 12, Day: 30},
		},
		{
			name:       "leap table's Esfand 30",
			date:       calendar.JalaliDate{Year: 1407, Month: 12, Day: 30},
			wantTime:   time.Date(2029, 3, 20, 0, 0, 0, 0, tehran),
			wantJalali: calendar.JalaliDate{Year: 1408, Month: 1, Day: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromJalali(tt.date, tehran)
			if err != nil {
				t.Fatalf("FromJalali() error = %v", err)
			}
			if !m.Time().Equal(tt.wantTime) {
				t.Errorf("Time() = %v, want %v", m.Time(), tt.wantTime)
			}
			if m.Jalali() != tt.wantJalali {
				t.Errorf("Jalali() = %v, want %v", m.Jalali(), tt.wantJalali)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

// Whatever date a moment derives from its instant parses back to the same day.
func TestParseInLocation_ReentersDerivedDates(t *testing.T) {
	day := time.Date(2028, 3, 1, 12, 0, 0, 0, tehran)
	end := time.Date(2036, 3, 31, 12, 0, 0, 0, tehran)

	for ; !day.After(end); day = day.AddDate(0, 0, 1) {
		j := FromTime(day).Jalali()
		m, err := ParseInLocation(j.String(), LayoutJalali, tehran)
		if err != nil {
			t.Fatalf("ParseInLocation(%q) error = %v", j, err)
		}
		if m.Jalali() != j {
			t.Fatalf("ParseInLocation(%q).Jalali() = %v", j, m.Jalali())
		}
		if y, mo, d := m.Time().Date(); y != day.Year() || mo != day.Month() || d != day.Day() {
			t.Fatalf("ParseInLocation(%q) = %v, want %v", j, m.Time(), day)
		}
	}
}

func TestNow(t *testing.T) {
	before := time.Now()
	m := Now(tehran)
	after := time.Now()

	if m.Time().Before(before.Add(-time.Second)) || m.Time().After(after.Add(time.Second)) {
		t.Errorf("Now() = %v, want between %v and %v", m.Time(), before, after)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Now().Validate() error = %v", err)
	}
}

func TestMoment_Compare(t *testing.T) {
	later := FromTime(nowruz.Time().Add(time.Minute))
	sameInUTC := nowruz.In(time.UTC)

	if got := nowruz.Compare(later); got != -1 {
		t.Errorf("Compare() = %d, want -1", got)
	}
	if got := later.Compare(nowruz); got != 1 {
		t.Errorf("Compare() = %d, want 1", got)
	}
	if !nowruz.Equal(sameInUTC) || nowruz.Compare(sameInUTC) != 0 {
		t.Error("moments at the same instant in different zones are not equal")
	}
	if !nowruz.Before(later) || !later.After(nowruz) {
		t.Error("Before/After disagree with Compare")
	}
}

func TestMoment_ModelMethods(t *testing.T) {
	if got := nowruz.String(); got != "1404/01/01 10:30:00 +03:30" {
		t.Errorf("String() = %q", got)
	}
	if got := nowruz.Redacted(); got != nowruz.String() {
		t.Errorf("Redacted() = %q, want %q", got, nowruz.String())
	}
	if got := nowruz.TypeName(); got != "Moment" {
		t.Errorf("TypeName() = %q, want Moment", got)
	}
	if nowruz.IsZero() {
		t.Error("IsZero() = true for a set moment")
	}
	if !(Moment{}).IsZero() {
		t.Error("IsZero() = false for the zero value")
	}
	if err := nowruz.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (Moment{}).Validate(); err == nil {
		t.Error("Validate() accepted the zero value")
	}

	mismatched := nowruz
	mismatched.date = calendar.JalaliDate{Year: 1404, Month: 1, Day: 2}
	if err := mismatched.Validate(); err == nil {
		t.Error("Validate() accepted a date that does not match the instant")
	}
}

func TestMoment_JSON(t *testing.T) {
	data, err := json.Marshal(nowruz)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"2025-03-21T10:30:00+03:30"` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var got Moment
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !got.Equal(nowruz) || got.Jalali() != nowruz.Jalali() {
		t.Errorf("json.Unmarshal() = %v, want %v", got, nowruz)
	}

	if err := json.Unmarshal([]byte(`"1404/01/01"`), &got); err == nil {
		t.Error("json.Unmarshal() accepted a non RFC 3339 value")
	}
	if _, err := json.Marshal(Moment{}); err == nil {
		t.Error("json.Marshal() of the zero value succeeded")
	}
}

func TestMoment_YAML(t *testing.T) {
	type event struct {
		At Moment `yaml:"at"`
	}

	data, err := yaml.Marshal(event{At: nowruz})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var got event
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !got.At.Equal(nowruz) {
		t.Errorf("yaml round trip = %v, want %v", got.At, nowruz)
	}
}
