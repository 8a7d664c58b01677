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

// Package defaults provides centralized configuration constants for kubeprov.
//
// This package defines flag defaults, well-known names of the resources kubeprov
// creates or inspects, and the platform-specific commands used to bootstrap
// Helm. Centralizing these values keeps the CLI, the manifest builder and the
// installers consistent with each other.
//
// # Categories
//
//   - Cluster defaults: namespace and external tool names
//   - Deployment defaults: image tag, replicas, resource requests/limits, ports
//   - Autoscaling defaults: ScaledObject replica bounds
//   - KEDA: chart repository, release, namespace and required CRDs
//   - Helm bootstrap: install command and shell per operating system
//   - HTTP client timeouts: for fetching remote policy files
//
// # Usage
//
//	import "github.com/NVIDIA/kubeprov/pkg/defaults"
//
//	spec.Replicas = defaults.Replicas
//	shell := defaults.Shell(runtime.GOOS)
package defaults
