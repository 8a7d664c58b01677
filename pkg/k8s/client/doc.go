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

// Package client adapts the kubectl and helm command-line tools.
//
// # Overview
//
// A Client runs one named operation at a time ("apply manifest", "list pods
// matching label", "install chart") against the configured cluster context:
// an optional kubeconfig path and a namespace. It returns the tool's raw
// output. Any non-zero exit surfaces as an error carrying the captured stderr;
// the client never retries.
//
// # Process Execution
//
// Processes are started through the Runner interface:
//
//   - ExecRunner: runs the binary with os/exec and captures stdout/stderr
//   - FakeRunner: canned results keyed by command-line prefix, for tests
//
// Tool locations are explicit configuration (Config.KubectlPath,
// Config.HelmPath); a bare name is resolved through PATH by os/exec.
//
// # Errors
//
// Errors are *errors.StructuredError values:
//
//   - TOOL_NOT_FOUND: the binary could not be located
//   - COMMAND_FAILED: non-zero exit; Context["stderr"] holds the error stream
//   - NOT_FOUND / UNAUTHORIZED: non-zero exit whose stderr names those causes
//   - INVALID_CONFIG: the kubeconfig file is missing or malformed
//
// # Kubeconfig
//
// ResolveContext loads the kubeconfig with client-go's clientcmd to report the
// current context and API server before any command runs.
package client
