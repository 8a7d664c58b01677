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

// Package status reports the health of a deployed workload.
//
// The Aggregator queries the Deployment and the pods selected by
// app=<name>, decodes the kubectl JSON into k8s.io/api types, and folds the
// result into a DeploymentStatus. A pod is ready when every one of its
// containers is ready; a pod with no container statuses counts as ready.
// Restart counts are summed across containers.
//
// DeploymentStatus implements serializer.Tabular, so it renders as JSON,
// YAML or a table.
package status
