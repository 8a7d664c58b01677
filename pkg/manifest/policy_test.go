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

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPolicy_JSON(t *testing.T) {
	path := writeFile(t, "keda.json", `{
  "min_replicas": 2,
  "max_replicas": 20,
  "triggers": [{"type": "cpu", "metadata": {"type": "Utilization", "value": "50"}}],
  "comment": "unknown keys are ignored"
}`)

	p, err := LoadPolicy(context.Background(), path)
	require.NoError(t, err)
	minReplicas, maxReplicas := p.Bounds()
	assert.Equal(t, int32(2), minReplicas)
	assert.Equal(t, int32(20), maxReplicas)
	require.Len(t, p.Triggers, 1)
	assert.Equal(t, "cpu", p.Triggers[0]["type"])
}

func TestLoadPolicy_YAMLDefaults(t *testing.T) {
	path := writeFile(t, "keda.yaml", `triggers:
  - type: cron
    metadata:
      timezone: UTC
      start: "0 8 * * *"
      end: "0 18 * * *"
      desiredReplicas: 5
`)

	p, err := LoadPolicy(context.Background(), path)
	require.NoError(t, err)
	minReplicas, maxReplicas := p.Bounds()
	assert.Equal(t, int32(1), minReplicas)
	assert.Equal(t, int32(10), maxReplicas)

	m, err := Builder{AutoscalerInstalled: true}.Build(testSpec(), p)
	require.NoError(t, err)
	require.NotNil(t, m.ScaledObject)
	_, err = Render(m.ScaledObject)
	require.NoError(t, err)
}

func TestLoadPolicy_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "missing", path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") }},
		{name: "malformed", path: func(t *testing.T) string { return writeFile(t, "keda.json", "{not json") }},
		{name: "wrong type", path: func(t *testing.T) string { return writeFile(t, "keda.json", `{"min_replicas": "two"}`) }},
		{name: "min above max", path: func(t *testing.T) string {
			return writeFile(t, "keda.json", `{"min_replicas": 8, "max_replicas": 3}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPolicy(context.Background(), tt.path(t))
			require.Error(t, err)
			assert.Equal(t, cerrors.ErrCodeInvalidConfig, cerrors.CodeOf(err))
		})
	}
}
