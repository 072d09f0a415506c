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

	"gopkg.in/yaml.v3"
)

func TestSystem_String(t *testing.T) {
	tests := []struct {
		name   string
		system System
		want   string
	}{
		{"SystemPersian", SystemPersian, "persian"},
		{"SystemGregorian", SystemGregorian, "gregorian"},
		{"SystemHijri", SystemHijri, "hijri"},
		{"Unknown", System(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.system.String(); got != tt.want {
				t.Errorf("System.String() = %v, want %v", got, tt.want)
			}
			if got := tt.system.Redacted(); got != tt.want {
				t.Errorf("System.Redacted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSystem(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    System
		wantErr bool
	}{
		{"persian", "persian", SystemPersian, false},
		{"Persian", "Persian", SystemPersian, false},
		{"jalali alias", "jalali", SystemPersian, false},
		{"SHAMSI alias", "SHAMSI", SystemPersian, false},
		{"gregorian", "gregorian", SystemGregorian, false},
		{"GREGORIAN", "GREGORIAN", SystemGregorian, false},
		{"hijri", "hijri", SystemHijri, false},
		{"Hijri", "Hijri", SystemHijri, false},

		{"empty", "", SystemPersian, true},
		{"lunar", "lunar", SystemPersian, true},
		{"number", "1", SystemPersian, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSystem(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSystem() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSystem() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		system  System
		wantErr bool
	}{
		{"SystemPersian", SystemPersian, false},
		{"SystemHijri", SystemHijri, false},
		{"negative", System(-1), true},
		{"too large", System(3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.system.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.system.Valid() == tt.wantErr {
				t.Errorf("Valid() = %v, want %v", tt.system.Valid(), !tt.wantErr)
			}
		})
	}
}

func TestSystem_Equal(t *testing.T) {
	hijri := SystemHijri
	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{"same value", SystemHijri, true},
		{"different value", SystemGregorian, false},
		{"pointer", &hijri, true},
		{"nil pointer", (*System)(nil), false},
		{"string", "hijri", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SystemHijri.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystem_IsZero(t *testing.T) {
	if !SystemPersian.IsZero() {
		t.Error("SystemPersian.IsZero() = false, want true")
	}
	if SystemHijri.IsZero() {
		t.Error("SystemHijri.IsZero() = true, want false")
	}
	if got := SystemHijri.TypeName(); got != "System" {
		t.Errorf("TypeName() = %v, want System", got)
	}
}

func TestSystem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    System
		wantErr bool
	}{
		{"string", `"gregorian"`, SystemGregorian, false},
		{"alias", `"shamsi"`, SystemPersian, false},
		{"numeric", `2`, SystemHijri, false},
		{"invalid string", `"lunar"`, SystemPersian, true},
		{"invalid number", `7`, SystemPersian, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got System
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("System.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("System.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystem_RoundTrip(t *testing.T) {
	for _, original := range []System{SystemPersian, SystemGregorian, SystemHijri} {
		t.Run(original.String(), func(t *testing.T) {
			jsonData, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("JSON Marshal error: %v", err)
			}
			var fromJSON System
			if err := json.Unmarshal(jsonData, &fromJSON); err != nil || fromJSON != original {
				t.Errorf("JSON round-trip: got %v (%v), want %v", fromJSON, err, original)
			}

			yamlData, err := yaml.Marshal(original)
			if err != nil {
				t.Fatalf("YAML Marshal error: %v", err)
			}
			if string(yamlData) != original.String()+"\n" {
				t.Errorf("yaml.Marshal() = %q, want %q", yamlData, original.String()+"\n")
			}
			var fromYAML System
			if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil || fromYAML != original {
				t.Errorf("YAML round-trip: got %v (%v), want %v", fromYAML, err, original)
			}

			text, err := original.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText error: %v", err)
			}
			var fromText System
			if err := fromText.UnmarshalText(text); err != nil || fromText != original {
				t.Errorf("Text round-trip: got %v (%v), want %v", fromText, err, original)
			}
		})
	}

	if _, err := json.Marshal(System(9)); err == nil {
		t.Error("json.Marshal(System(9)) error = nil, want error")
	}
}
