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

// Package semver provides the release version model of dxcal.
//
// The version stamped into the dxcal binary at build time is parsed into a
// Version so the CLI can report it and tell release builds from
// pre-release ones. Parsing and precedence follow Semantic Versioning 2.0.0
// through github.com/blang/semver/v4.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxcal/dxcore/errors"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a release version of the form Major.Minor.Patch[-Prerelease][+Metadata].
//
// The zero value is 0.0.0, which dxcal uses for a binary built without a
// version stamp. Metadata never affects precedence.
type Version struct {
	Major int
	Minor int
	Patch int

	// Prerelease holds the dot-separated identifiers after '-', such as "rc.1".
	Prerelease string

	// Metadata holds the dot-separated identifiers after '+', usually a
	// commit hash or build date.
	Metadata string
}

// ParseVersion parses s into a Version. Surrounding whitespace and a
// leading "v" are ignored, so "v1.2.0" and " 1.2.0\n" both parse.
func ParseVersion(s string) (Version, error) {
	text := strings.TrimPrefix(strings.TrimSpace(s), "v")
	bv, err := bsemver.Parse(text)
	if err != nil {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s, Err: err}
	}
	return fromBlang(bv), nil
}

// MustParseVersion is like ParseVersion but panics on error. It is meant for
// version constants known to be valid.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical SemVer text of v.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Redacted returns String; a version carries nothing sensitive.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether v is exactly 0.0.0 without prerelease or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// IsPrerelease reports whether v carries prerelease identifiers.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// Core returns v without prerelease and metadata.
func (v Version) Core() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// Validate reports whether v is a well-formed SemVer 2.0.0 version.
func (v Version) Validate() error {
	switch {
	case v.Major < 0:
		return &dxerrors.ValidationError{Type: "Version", Field: "Major", Reason: "must be non-negative", Value: v.Major}
	case v.Minor < 0:
		return &dxerrors.ValidationError{Type: "Version", Field: "Minor", Reason: "must be non-negative", Value: v.Minor}
	case v.Patch < 0:
		return &dxerrors.ValidationError{Type: "Version", Field: "Patch", Reason: "must be non-negative", Value: v.Patch}
	}

	if v.Prerelease != "" {
		for _, id := range strings.Split(v.Prerelease, ".") {
			if _, err := bsemver.NewPRVersion(id); err != nil {
				return &dxerrors.ValidationError{Type: "Version", Field: "Prerelease", Reason: err.Error(), Value: v.Prerelease}
			}
		}
	}
	if v.Metadata != "" {
		for _, id := range strings.Split(v.Metadata, ".") {
			if _, err := bsemver.NewBuildVersion(id); err != nil {
				return &dxerrors.ValidationError{Type: "Version", Field: "Metadata", Reason: err.Error(), Value: v.Metadata}
			}
		}
	}
	return nil
}

// Compare returns -1, 0 or +1 as v has lower, equal or higher precedence
// than other. Both versions must be valid; an invalid operand compares by
// its numeric core only.
func (v Version) Compare(other Version) int {
	a, errA := v.toBlang()
	b, errB := other.toBlang()
	if errA != nil || errB != nil {
		a = bsemver.Version{Major: clamp(v.Major), Minor: clamp(v.Minor), Patch: clamp(v.Patch)}
		b = bsemver.Version{Major: clamp(other.Major), Minor: clamp(other.Minor), Patch: clamp(other.Patch)}
	}
	return a.Compare(b)
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence. Metadata is
// ignored, so 1.0.0+a equals 1.0.0+b.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Greater reports whether v has higher precedence than other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

func (v Version) toBlang() (bsemver.Version, error) {
	if err := v.Validate(); err != nil {
		return bsemver.Version{}, err
	}
	return bsemver.Parse(v.String())
}

func fromBlang(bv bsemver.Version) Version {
	pre := make([]string, len(bv.Pre))
	for i, p := range bv.Pre {
		pre[i] = p.String()
	}
	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: strings.Join(pre, "."),
		Metadata:   strings.Join(bv.Build, "."),
	}
}

func clamp(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string such as "1.2.0" or "v1.2.0".
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML scalar.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar such as 1.2.0 or v1.2.0.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(value.Value), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
