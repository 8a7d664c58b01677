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

// Package manifest builds the Kubernetes documents kubeprov applies for a
// workload.
//
// A DeploymentSpec, plus an optional AutoscalingPolicy, becomes up to three
// documents:
//
//   - an apps/v1 Deployment named after the workload
//   - a v1 ClusterIP Service named <name>-service, when ports are exposed
//   - a keda.sh/v1alpha1 ScaledObject named <name>-scaled, when a policy is
//     given and KEDA is installed
//
// Building is pure: identical input yields byte-identical YAML. Resource
// quantities are passed through verbatim; the cluster API is the authority
// on their validity.
//
// Usage:
//
//	b := manifest.Builder{Namespace: "default", AutoscalerInstalled: env.KedaInstalled}
//	m, err := b.Build(spec, policy)
//	if err != nil {
//	    return err
//	}
//	files, err := m.WriteFiles(outputDir)
package manifest
