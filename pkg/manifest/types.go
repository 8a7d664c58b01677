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

package manifest

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// Resources holds container requests and limits as quantity strings.
type Resources struct {
	CPURequest    string
	CPULimit      string
	MemoryRequest string
	MemoryLimit   string
}

// DefaultResources returns the resources used when none are given.
func DefaultResources() Resources {
	return Resources{
		CPURequest:    defaults.CPURequest,
		CPULimit:      defaults.CPULimit,
		MemoryRequest: defaults.MemoryRequest,
		MemoryLimit:   defaults.MemoryLimit,
	}
}

// DeploymentSpec describes one workload.
type DeploymentSpec struct {
	Name      string
	Image     string
	Tag       string
	Replicas  int32
	Resources Resources
	Ports     []int32
}

// AutoscalingPolicy bounds the replica count of a workload and lists the
// KEDA triggers that drive it. Triggers are opaque to kubeprov.
type AutoscalingPolicy struct {
	MinReplicas *int32           `json:"min_replicas,omitempty" yaml:"min_replicas,omitempty"`
	MaxReplicas *int32           `json:"max_replicas,omitempty" yaml:"max_replicas,omitempty"`
	Triggers    []map[string]any `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// Bounds returns the replica bounds with defaults applied.
func (p *AutoscalingPolicy) Bounds() (minReplicas, maxReplicas int32) {
	minReplicas, maxReplicas = defaults.MinReplicas, defaults.MaxReplicas
	if p.MinReplicas != nil {
		minReplicas = *p.MinReplicas
	}
	if p.MaxReplicas != nil {
		maxReplicas = *p.MaxReplicas
	}
	return minReplicas, maxReplicas
}

// Validate checks the replica bounds.
func (p *AutoscalingPolicy) Validate() error {
	minReplicas, maxReplicas := p.Bounds()
	if minReplicas < 0 || maxReplicas < 0 {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidConfig, "replica bounds must not be negative",
			map[string]any{"min_replicas": minReplicas, "max_replicas": maxReplicas})
	}
	if minReplicas > maxReplicas {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidConfig,
			fmt.Sprintf("min_replicas (%d) exceeds max_replicas (%d)", minReplicas, maxReplicas),
			map[string]any{"min_replicas": minReplicas, "max_replicas": maxReplicas})
	}
	return nil
}

// Document is one rendered manifest and the file it is written to.
type Document struct {
	Filename string
	Object   *unstructured.Unstructured
}

// Manifests is the output of Build. Service and ScaledObject are nil when
// omitted.
type Manifests struct {
	Name         string
	Deployment   *unstructured.Unstructured
	Service      *unstructured.Unstructured
	ScaledObject *unstructured.Unstructured

	// TagIgnored is set when the image already carried a tag or digest and a
	// non-default tag was given.
	TagIgnored bool
	// AutoscalingSkipped is set when a policy was given but the autoscaler
	// is not installed.
	AutoscalingSkipped bool
}

// Documents returns the present documents in apply order:
// Deployment, Service, ScaledObject.
func (m *Manifests) Documents() []Document {
	docs := []Document{{Filename: m.Name + defaults.DeploymentFileSuffix, Object: m.Deployment}}
	if m.Service != nil {
		docs = append(docs, Document{Filename: m.Name + defaults.ServiceFileSuffix, Object: m.Service})
	}
	if m.ScaledObject != nil {
		docs = append(docs, Document{Filename: m.Name + defaults.ScaledObjectFileSuffix, Object: m.ScaledObject})
	}
	return docs
}
