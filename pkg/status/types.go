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

package status

import (
	"fmt"
	"strconv"
)

// DeploymentStatus is a point-in-time summary of a workload.
type DeploymentStatus struct {
	Name                string      `json:"name" yaml:"name"`
	Namespace           string      `json:"namespace" yaml:"namespace"`
	Replicas            int32       `json:"replicas" yaml:"replicas"`
	ReadyReplicas       int32       `json:"ready_replicas" yaml:"ready_replicas"`
	AvailableReplicas   int32       `json:"available_replicas" yaml:"available_replicas"`
	UnavailableReplicas int32       `json:"unavailable_replicas" yaml:"unavailable_replicas"`
	Ready               bool        `json:"ready" yaml:"ready"`
	Restarts            int32       `json:"restarts" yaml:"restarts"`
	Conditions          []Condition `json:"conditions" yaml:"conditions"`
	Pods                []PodStatus `json:"pods" yaml:"pods"`
}

// Condition mirrors a Deployment condition with timestamps as RFC 3339 strings.
type Condition struct {
	Type               string `json:"type" yaml:"type"`
	Status             string `json:"status" yaml:"status"`
	Reason             string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message            string `json:"message,omitempty" yaml:"message,omitempty"`
	LastUpdateTime     string `json:"last_update_time,omitempty" yaml:"last_update_time,omitempty"`
	LastTransitionTime string `json:"last_transition_time,omitempty" yaml:"last_transition_time,omitempty"`
}

// PodStatus summarizes one pod.
type PodStatus struct {
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	Ready    bool   `json:"ready" yaml:"ready"`
	Restarts int32  `json:"restarts" yaml:"restarts"`
}

// Header implements serializer.Tabular.
func (s *DeploymentStatus) Header() []string {
	return []string{"NAME", "STATUS", "READY", "RESTARTS"}
}

// Rows implements serializer.Tabular. The first row is the deployment,
// followed by one row per pod.
func (s *DeploymentStatus) Rows() [][]string {
	rows := make([][]string, 0, len(s.Pods)+1)
	rows = append(rows, []string{
		"deployment/" + s.Name,
		s.summary(),
		fmt.Sprintf("%d/%d", s.ReadyReplicas, s.Replicas),
		strconv.Itoa(int(s.Restarts)),
	})
	for _, p := range s.Pods {
		rows = append(rows, []string{
			"pod/" + p.Name,
			p.Status,
			strconv.FormatBool(p.Ready),
			strconv.Itoa(int(p.Restarts)),
		})
	}
	return rows
}

// summary also weighs the replica counts, since Ready alone holds for no pods.
func (s *DeploymentStatus) summary() string {
	switch {
	case s.Ready && s.ReadyReplicas >= s.Replicas && s.UnavailableReplicas == 0:
		return "Ready"
	case s.ReadyReplicas > 0:
		return "Degraded"
	default:
		return "NotReady"
	}
}
