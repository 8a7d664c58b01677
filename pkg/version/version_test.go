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

package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr error
	}{
		{"major only", "3", Version{Major: 3, Precision: 1}, nil},
		{"major minor", "v3.14", Version{Major: 3, Minor: 14, Precision: 2}, nil},
		{"full", "v3.14.2", Version{Major: 3, Minor: 14, Patch: 2, Precision: 3}, nil},
		{"build metadata", "v3.14.2+gc309b6f", Version{Major: 3, Minor: 14, Patch: 2, Precision: 3, Extras: "+gc309b6f"}, nil},
		{"prerelease", "2.17.0-rc.1", Version{Major: 2, Minor: 17, Precision: 3, Extras: "-rc.1"}, nil},
		{"empty", "", Version{}, ErrEmptyVersion},
		{"too many", "1.2.3.4", Version{}, ErrTooManyComponents},
		{"non numeric", "v3.x", Version{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToolOutput(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantMajor int
		wantMinor int
		wantErr   bool
	}{
		{"helm short", "v3.14.2+gc309b6f\n", 3, 14, false},
		{"helm long", `version.BuildInfo{Version:"v3.16.1", GitCommit:"5a5449d", GoVersion:"go1.22.7"}`, 3, 16, false},
		{"helm v2 client", `Client: &version.Version{SemVer:"v2.17.0", GitCommit:"a690bad"}`, 2, 17, false},
		{"garbage", "command not found", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseToolOutput(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoVersionFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMajor, v.Major)
			assert.Equal(t, tt.wantMinor, v.Minor)
		})
	}
}

func TestAtLeastMajor(t *testing.T) {
	assert.True(t, Version{Major: 3}.AtLeastMajor(3))
	assert.True(t, Version{Major: 4}.AtLeastMajor(3))
	assert.False(t, Version{Major: 2, Minor: 17}.AtLeastMajor(3))
}

func TestCompare(t *testing.T) {
	a := Version{Major: 3, Minor: 14, Patch: 2}
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(Version{Major: 3, Minor: 15}))
	assert.Equal(t, 1, a.Compare(Version{Major: 3, Minor: 14, Patch: 1}))
	assert.Equal(t, -1, a.Compare(Version{Major: 4}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "v3", Version{Major: 3, Precision: 1}.String())
	assert.Equal(t, "v3.14", Version{Major: 3, Minor: 14, Precision: 2}.String())
	assert.Equal(t, "v3.14.2", Version{Major: 3, Minor: 14, Patch: 2, Precision: 3}.String())
}

func FuzzParseToolOutput(f *testing.F) {
	f.Add("v3.14.2+gc309b6f")
	f.Add(`version.BuildInfo{Version:"v3.16.1"}`)
	f.Add("")
	f.Add("1.2.3.4.5")
	f.Add("v-1.0")

	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseToolOutput(s)
		if err != nil {
			return
		}
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Errorf("negative component parsed from %q: %+v", s, v)
		}
	})
}
