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
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/dxcal/dxcore/errors"
	"gopkg.in/yaml.v3"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"auto", UnitAuto, false},
		{"AUTO", UnitAuto, false},
		{"minute", UnitMinute, false},
		{"Hour", UnitHour, false},
		{"day", UnitDay, false},
		{"jDay", UnitJDay, false},
		{"jday", UnitJDay, false},
		{"WEEK", UnitWeek, false},
		{"jMonth", UnitJMonth, false},
		{"JMONTH", UnitJMonth, false},
		{"jYear", UnitJYear, false},
		{"jyear", UnitJYear, false},
		{"month", UnitAuto, true},
		{"days", UnitAuto, true},
		{"", UnitAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var perr *errors.ParseError
				if !stderrors.As(err, &perr) {
					t.Errorf("ParseUnit(%q) error type = %T, want *errors.ParseError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnit_Methods(t *testing.T) {
	for u := UnitAuto; u <= UnitJYear; u++ {
		if !u.Valid() {
			t.Errorf("%d.Valid() = false", u)
		}
		if err := u.Validate(); err != nil {
			t.Errorf("%v.Validate() error = %v", u, err)
		}
		parsed, err := ParseUnit(u.String())
		if err != nil || parsed != u {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v", u.String(), parsed, err, u)
		}
		if u.Redacted() != u.String() {
			t.Errorf("%v.Redacted() = %q", u, u.Redacted())
		}
		if !u.Equal(u) || !u.Equal(&u) {
			t.Errorf("%v.Equal(self) = false", u)
		}
	}

	bad := Unit(99)
	if bad.Valid() || bad.String() != "unknown" || bad.Validate() == nil {
		t.Error("Unit(99) is treated as defined")
	}
	if UnitDay.Equal(UnitJDay) || UnitDay.Equal(3) || UnitDay.Equal((*Unit)(nil)) {
		t.Error("Equal() matched a different value")
	}
	if !UnitAuto.IsZero() || UnitDay.IsZero() {
		t.Error("IsZero() disagrees with UnitAuto")
	}
	if UnitDay.TypeName() != "Unit" {
		t.Errorf("TypeName() = %q", UnitDay.TypeName())
	}
}

func TestUnit_Codecs(t *testing.T) {
	data, err := json.Marshal(UnitJMonth)
	if err != nil || string(data) != `"jMonth"` {
		t.Fatalf("json.Marshal() = %s, %v", data, err)
	}

	var u Unit
	for _, in := range []string{`"jMonth"`, `"JMONTH"`, `6`} {
		if err := json.Unmarshal([]byte(in), &u); err != nil || u != UnitJMonth {
			t.Errorf("json.Unmarshal(%s) = %v, %v", in, u, err)
		}
	}
	for _, in := range []string{`"fortnight"`, `42`, `true`} {
		if err := json.Unmarshal([]byte(in), &u); err == nil {
			t.Errorf("json.Unmarshal(%s) succeeded", in)
		}
	}
	if _, err := json.Marshal(Unit(99)); err == nil {
		t.Error("json.Marshal(Unit(99)) succeeded")
	}

	type cfg struct {
		Unit Unit `yaml:"unit"`
	}
	out, err := yaml.Marshal(cfg{Unit: UnitWeek})
	if err != nil || strings.TrimSpace(string(out)) != "unit: week" {
		t.Fatalf("yaml.Marshal() = %q, %v", out, err)
	}
	var c cfg
	if err := yaml.Unmarshal([]byte("unit: jYear"), &c); err != nil || c.Unit != UnitJYear {
		t.Errorf("yaml.Unmarshal() = %v, %v", c.Unit, err)
	}
	if err := yaml.Unmarshal([]byte("unit: decade"), &c); err == nil {
		t.Error("yaml.Unmarshal() accepted an unknown unit")
	}

	text, err := UnitHour.MarshalText()
	if err != nil || string(text) != "hour" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if err := u.UnmarshalText([]byte("minute")); err != nil || u != UnitMinute {
		t.Errorf("UnmarshalText() = %v, %v", u, err)
	}
}

func TestParseDiffFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    DiffFormat
		wantErr bool
	}{
		{"number", DiffNumber, false},
		{"NUMBER", DiffNumber, false},
		{"persian", DiffPersian, false},
		{"Persian", DiffPersian, false},
		{"persian-text", DiffPersianText, false},
		{"PERSIAN-TEXT", DiffPersianText, false},
		{"english-text", DiffEnglishText, false},
		{"English-Text", DiffEnglishText, false},
		{"english", DiffNumber, true},
		{"", DiffNumber, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDiffFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDiffFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDiffFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDiffFormat_MethodsAndCodecs(t *testing.T) {
	for f := DiffNumber; f <= DiffEnglishText; f++ {
		if !f.Valid() || f.Validate() != nil {
			t.Errorf("%v is not valid", f)
		}
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("json.Marshal(%v) error = %v", f, err)
		}
		var got DiffFormat
		if err := json.Unmarshal(data, &got); err != nil || got != f {
			t.Errorf("json round trip of %v = %v, %v", f, got, err)
		}
	}

	bad := DiffFormat(-1)
	if bad.Valid() || bad.String() != "unknown" || bad.Validate() == nil {
		t.Error("DiffFormat(-1) is treated as defined")
	}
	if _, err := bad.MarshalText(); err == nil {
		t.Error("MarshalText() of an undefined value succeeded")
	}
	if !DiffNumber.IsZero() || DiffPersian.IsZero() {
		t.Error("IsZero() disagrees with DiffNumber")
	}
	if DiffPersian.TypeName() != "DiffFormat" {
		t.Errorf("TypeName() = %q", DiffPersian.TypeName())
	}

	type cfg struct {
		Format DiffFormat `yaml:"format"`
	}
	var c cfg
	if err := yaml.Unmarshal([]byte("format: english-text"), &c); err != nil || c.Format != DiffEnglishText {
		t.Errorf("yaml.Unmarshal() = %v, %v", c.Format, err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"iso", OutputISO, false},
		{"ISO", OutputISO, false},
		{"shamsi", OutputShamsi, false},
		{"jalali", OutputShamsi, false},
		{"Persian", OutputShamsi, false},
		{"gregorian", OutputGregorian, false},
		{"HIJRI", OutputHijri, false},
		{"timestamp", OutputTimestamp, false},
		{"unix", OutputISO, true},
		{"", OutputISO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputFormat_MethodsAndCodecs(t *testing.T) {
	for f := OutputISO; f <= OutputTimestamp; f++ {
		if !f.Valid() || f.Validate() != nil {
			t.Errorf("%v is not valid", f)
		}
		text, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", f, err)
		}
		var got OutputFormat
		if err := got.UnmarshalText(text); err != nil || got != f {
			t.Errorf("text round trip of %v = %v, %v", f, got, err)
		}
	}

	if data, err := json.Marshal(OutputHijri); err != nil || string(data) != `"hijri"` {
		t.Errorf("json.Marshal() = %s, %v", data, err)
	}
	var f OutputFormat
	if err := json.Unmarshal([]byte(`"jalali"`), &f); err != nil || f != OutputShamsi {
		t.Errorf("json.Unmarshal(jalali) = %v, %v", f, err)
	}
	if err := json.Unmarshal([]byte(`7`), &f); err == nil {
		t.Error("json.Unmarshal(7) succeeded")
	}

	bad := OutputFormat(9)
	if bad.Valid() || bad.String() != "unknown" || bad.Validate() == nil {
		t.Error("OutputFormat(9) is treated as defined")
	}
	if !OutputISO.IsZero() || OutputShamsi.IsZero() {
		t.Error("IsZero() disagrees with OutputISO")
	}
	if !OutputShamsi.Equal(OutputShamsi) || OutputShamsi.Equal(OutputHijri) {
		t.Error("Equal() is wrong")
	}
}
