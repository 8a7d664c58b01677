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

// Package provisioner sequences the kubeprov actions against a cluster.
//
// Four independent actions are supported:
//
//   - Connect: resolve the kubeconfig context and run `kubectl cluster-info`
//   - Install: bootstrap Helm and/or install KEDA, returning the updated Environment
//   - Deploy: build manifests, write them to disk and apply them in order
//   - Status: summarize a deployment and its pods
//
// Tool availability is captured once in an immutable Environment that is
// passed into each action; actions that change it return a new value.
//
// Every action is synchronous and stops at the first failing step. Nothing
// is rolled back.
package provisioner
