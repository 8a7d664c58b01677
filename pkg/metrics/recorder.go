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
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
)

const resultSuccess = "success"

// Recorder collects the metrics of a single invocation.
type Recorder struct {
	registry *prometheus.Registry

	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	actionSuccess   *prometheus.GaugeVec
	actionLastRun   *prometheus.GaugeVec
}

// NewRecorder returns a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kubeprov_commands_total",
				Help: "Total number of external commands run",
			},
			[]string{"tool", "result"}, // result is success or a lower-case error code
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kubeprov_command_duration_seconds",
				Help:    "Time taken by external commands",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"tool"},
		),
		actionSuccess: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "kubeprov_action_success",
				Help: "Whether the last run of an action succeeded (1) or failed (0)",
			},
			[]string{"action"},
		),
		actionLastRun: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "kubeprov_action_last_run_timestamp_seconds",
				Help: "Unix time the action last finished",
			},
			[]string{"action"},
		),
	}
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Runner wraps next so every invocation is counted and timed.
func (r *Recorder) Runner(next client.Runner) client.Runner {
	return &instrumentedRunner{next: next, recorder: r}
}

// ObserveAction records the outcome of a subcommand.
func (r *Recorder) ObserveAction(action string, err error) {
	success := 1.0
	if err != nil {
		success = 0
	}
	r.actionSuccess.WithLabelValues(action).Set(success)
	r.actionLastRun.WithLabelValues(action).SetToCurrentTime()
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeIO, "failed to write metrics file", err,
			map[string]any{"path": path})
	}
	return nil
}

type instrumentedRunner struct {
	next     client.Runner
	recorder *Recorder
}

func (i *instrumentedRunner) Run(ctx context.Context, name string, args ...string) (client.Result, error) {
	tool := filepath.Base(name)
	start := time.Now()

	res, err := i.next.Run(ctx, name, args...)

	i.recorder.commandDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	i.recorder.commandsTotal.WithLabelValues(tool, result(err)).Inc()
	return res, err
}

func result(err error) string {
	if err == nil {
		return resultSuccess
	}
	return strings.ToLower(string(cerrors.CodeOf(err)))
}
