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

// Package installer bootstraps Helm and installs KEDA through it.
//
// Helm is detected with `helm version --short` and must be v3 or newer. When
// it is missing, a platform-specific install command (choco, brew or the
// upstream get-helm-3 script by default) runs through the platform shell and
// Helm is probed again.
//
// KEDA is installed from the kedacore chart repository into the keda
// namespace with `helm upgrade --install`, so re-running is safe. Install
// checks that a keda-operator pod exists; Verify additionally requires the
// operator to be running and ready and the KEDA CRDs to be registered.
package installer
