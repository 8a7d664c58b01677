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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestJSONLoggerAttachesModuleAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "kubeprov", "v1.2.3", "info")

	logger.Info("applied manifest", "file", "myapp-deployment.yaml")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "applied manifest", rec["msg"])
	assert.Equal(t, "kubeprov", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "myapp-deployment.yaml", rec["file"])
	assert.NotContains(t, rec, "source")
}

func TestCLILoggerLevels(t *testing.T) {
	t.Run("info hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewCLILogger(&buf, "kubeprov", "dev", "info")
		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.NotContains(t, buf.String(), "module=")
	})

	t.Run("debug adds module and source", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewCLILogger(&buf, "kubeprov", "dev", "debug")
		logger.Debug("probe")
		assert.Contains(t, buf.String(), "module=kubeprov")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestLevelFromEnvironment(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	var buf bytes.Buffer
	logger := NewCLILogger(&buf, "kubeprov", "dev", "")
	logger.Warn("suppressed")
	logger.Error("kept")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "kept")
}
