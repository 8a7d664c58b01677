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

// Package serializer provides encoding and decoding of kubeprov data in multiple formats.
//
// # Overview
//
// The serializer package converts command results (such as a deployment status
// report) into JSON, YAML, or a human-readable table, and loads configuration
// documents (such as autoscaling policies) from JSON or YAML files.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, two-space indented
//   - Default output format of the status command
//
// YAML:
//   - Human-readable, two-space indented (gopkg.in/yaml.v3)
//
// Table:
//   - Columnar text for terminals
//   - Only available for values implementing Tabular
//
// # Writing
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, status); err != nil {
//	    return err
//	}
//
// # Reading
//
// FromFile detects the format from the file extension (.json, .yaml, .yml) and
// accepts http:// and https:// URLs:
//
//	policy, err := serializer.FromFile[manifest.AutoscalingPolicy]("keda.json")
package serializer
