// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package version parses the version strings printed by external tools.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNoVersionFound    = errors.New("no version found in output")
)

// Version represents a semantic version number with Major, Minor, and Patch components.
// Precision records how many components were present in the parsed string and
// Extras keeps build metadata such as "+gc309b6f".
type Version struct {
	Major     int    `json:"major" yaml:"major"`
	Minor     int    `json:"minor" yaml:"minor"`
	Patch     int    `json:"patch" yaml:"patch"`
	Precision int    `json:"precision,omitempty" yaml:"precision,omitempty"`
	Extras    string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the version respecting its precision, with a "v" prefix.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return fmt.Sprintf("v%d", v.Major)
	case 2:
		return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseVersion parses "1", "1.2", "1.2.3", "v1.2.3", "1.2.3-rc.1" or "1.2.3+meta".
// Metadata after '-' or '+' is preserved in Extras.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	mainPart := s
	if i := strings.IndexAny(s, "-+"); i > 0 {
		mainPart = s[:i]
		v.Extras = s[i:]
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

var semverPattern = regexp.MustCompile(`v?\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.+-]*)?`)

// ParseToolOutput extracts the first version-looking token from a tool's
// version output. It understands both `helm version --short` ("v3.14.2+gc309b6f")
// and the long form (`version.BuildInfo{Version:"v3.14.2", ...}`).
func ParseToolOutput(output string) (Version, error) {
	token := semverPattern.FindString(output)
	if token == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrNoVersionFound, strings.TrimSpace(output))
	}
	return ParseVersion(token)
}

// AtLeastMajor reports whether v's major version is major or newer.
func (v Version) AtLeastMajor(major int) bool {
	return v.Major >= major
}

// Compare returns -1, 0 or 1 comparing v with other on all three components.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
