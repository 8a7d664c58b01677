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

// Package cli implements the kubeprov command-line interface.
//
// # Commands
//
// connect - Verify cluster connectivity:
//
//	kubeprov connect
//
// Resolves the kubeconfig context and runs `kubectl cluster-info`.
//
// install - Install tooling:
//
//	kubeprov install --helm --keda [--keda-version 2.14.0] [--verify]
//
// Bootstraps Helm v3 when missing (the install command is chosen per operating
// system and can be replaced with --helm-installer), then installs the
// kedacore/keda chart. --verify checks the KEDA operator and CRDs.
//
// deploy - Create a workload:
//
//	kubeprov deploy myapp nginx --tag 1.25 --replicas 3 --ports 8080 [--keda-config keda.json]
//
// Writes myapp-deployment.yaml, myapp-service.yaml and, with an autoscaling
// policy and KEDA installed, myapp-scaledobject.yaml, then applies them in
// that order.
//
// status - Report health:
//
//	kubeprov status myapp [--format json|yaml|table]
//
// # Global Flags
//
//	--kubeconfig, -k   Path to kubeconfig file
//	--namespace, -n    Namespace (default: default)
//	--kubectl-path     kubectl binary (env KUBEPROV_KUBECTL_PATH)
//	--helm-path        helm binary (env KUBEPROV_HELM_PATH)
//	--log-level        debug, info, warn, error (env LOG_LEVEL)
//	--log-json         Structured JSON logs on stderr
//
// # Exit Codes
//
//	0  Success
//	1  Any failure, including a failed cluster connectivity check
//
// Every command runs the connectivity check before doing anything else; when
// it fails no manifests are written and nothing is applied.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/kubeprov/pkg/cli.version=1.0.0'"
package cli
