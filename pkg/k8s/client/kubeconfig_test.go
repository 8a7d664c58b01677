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

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
clusters:
- name: dev-cluster
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-user
    namespace: apps
users:
- name: dev-user
  user:
    token: abc
`

func writeKubeconfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveContext(t *testing.T) {
	info, err := ResolveContext(writeKubeconfig(t, testKubeconfig))
	require.NoError(t, err)
	assert.Equal(t, "dev", info.Name)
	assert.Equal(t, "dev-cluster", info.Cluster)
	assert.Equal(t, "https://127.0.0.1:6443", info.Server)
	assert.Equal(t, "apps", info.Namespace)
}

func TestResolveContext_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
		},
		{
			name: "malformed file",
			path: func(t *testing.T) string { return writeKubeconfig(t, "current-context: [unterminated") },
		},
		{
			name: "undefined current context",
			path: func(t *testing.T) string {
				return writeKubeconfig(t, "apiVersion: v1\nkind: Config\ncurrent-context: ghost\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveContext(tt.path(t))
			require.Error(t, err)
			assert.True(t, cerrors.Is(err, cerrors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestResolveContext_NoKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "absent"))
	t.Setenv("HOME", t.TempDir())

	info, err := ResolveContext("")
	require.NoError(t, err)
	assert.Empty(t, info.Name)
}
