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

// Package metrics records what one kubeprov invocation did in Prometheus
// form.
//
// A Recorder owns a private registry. Wrapping the process Runner with
// Recorder.Runner counts and times every kubectl, helm and shell invocation;
// ObserveAction records the outcome of the subcommand. The registry is
// written once at exit with WriteTextfile, for the node exporter textfile
// collector:
//
//	kubeprov --metrics-file /var/lib/node_exporter/kubeprov.prom status myapp
//
// Metrics:
//
//	kubeprov_commands_total{tool,result}          external commands run
//	kubeprov_command_duration_seconds{tool}       external command latency
//	kubeprov_action_success{action}               1 when the last action succeeded
//	kubeprov_action_last_run_timestamp_seconds{action}
package metrics
