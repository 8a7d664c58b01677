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

package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
)

func TestRecorder_Runner(t *testing.T) {
	fake := client.NewFakeRunner().
		OnStdout("kubectl cluster-info", "ok").
		OnFailure("kubectl get deployment", `Error from server (NotFound): deployments.apps "x" not found`).
		OnError("/usr/local/bin/helm", cerrors.New(cerrors.ErrCodeToolNotFound, "missing"))

	rec := NewRecorder()
	runner := rec.Runner(fake)
	ctx := context.Background()

	_, err := runner.Run(ctx, "kubectl", "cluster-info")
	require.NoError(t, err)
	_, err = runner.Run(ctx, "kubectl", "cluster-info")
	require.NoError(t, err)
	_, err = runner.Run(ctx, "kubectl", "get", "deployment", "x")
	require.Error(t, err)
	_, err = runner.Run(ctx, "/usr/local/bin/helm", "version")
	require.Error(t, err)

	assert.Len(t, fake.Calls(), 4, "calls pass through")

	counts := gatherCounters(t, rec, "kubeprov_commands_total")
	assert.Equal(t, map[string]float64{
		"kubectl/success":     2,
		"kubectl/not_found":   1,
		"helm/tool_not_found": 1,
	}, counts)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveAction("deploy", nil)
	rec.ObserveAction("status", assert.AnError)

	path := filepath.Join(t.TempDir(), "kubeprov.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `kubeprov_action_success{action="deploy"} 1`)
	assert.Contains(t, out, `kubeprov_action_success{action="status"} 0`)
	assert.Contains(t, out, "kubeprov_action_last_run_timestamp_seconds")
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	err := NewRecorder().WriteTextfile(filepath.Join(t.TempDir(), "missing", "kubeprov.prom"))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeIO, cerrors.CodeOf(err))
}

// gatherCounters returns counter values keyed by "tool/result".
func gatherCounters(t *testing.T, rec *Recorder, name string) map[string]float64 {
	t.Helper()
	families, err := rec.Gatherer().Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			out[labels["tool"]+"/"+labels["result"]] = m.GetCounter().GetValue()
		}
	}
	return out
}
