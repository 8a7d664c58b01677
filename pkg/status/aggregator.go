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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// Source returns raw kubectl JSON. *client.Client implements it.
type Source interface {
	GetDeployment(ctx context.Context, name string) ([]byte, error)
	ListPods(ctx context.Context, selector string) ([]byte, error)
}

// Aggregator builds DeploymentStatus records.
type Aggregator struct {
	source    Source
	namespace string
}

// NewAggregator returns an Aggregator querying source in namespace.
func NewAggregator(source Source, namespace string) *Aggregator {
	return &Aggregator{source: source, namespace: namespace}
}

// Get fetches the current status of the named deployment. On any query or
// decode failure the cause is logged and no status is returned.
func (a *Aggregator) Get(ctx context.Context, name string) (*DeploymentStatus, error) {
	st, err := a.get(ctx, name)
	if err != nil {
		slog.Error("failed to get deployment status", "name", name, "namespace", a.namespace, "error", err)
		return nil, err
	}
	return st, nil
}

func (a *Aggregator) get(ctx context.Context, name string) (*DeploymentStatus, error) {
	raw, err := a.source.GetDeployment(ctx, name)
	if err != nil {
		if cerrors.Is(err, cerrors.ErrCodeNotFound) {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeNotFound,
				fmt.Sprintf("deployment %q not found in namespace %q", name, a.namespace), err,
				map[string]any{"name": name, "namespace": a.namespace})
		}
		return nil, err
	}
	var dep appsv1.Deployment
	if err := decode(raw, &dep, "deployment"); err != nil {
		return nil, err
	}

	selector := fmt.Sprintf("%s=%s", defaults.AppLabel, name)
	raw, err = a.source.ListPods(ctx, selector)
	if err != nil {
		return nil, err
	}
	var pods corev1.PodList
	if err := decode(raw, &pods, "pod list"); err != nil {
		return nil, err
	}

	st := Summarize(&dep, pods.Items)
	st.Name = name
	st.Namespace = a.namespace
	slog.Debug("deployment status collected",
		"name", name, "pods", len(st.Pods), "ready", st.Ready, "restarts", st.Restarts)
	return st, nil
}

func decode(raw []byte, v any, what string) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeMalformedResponse,
			fmt.Sprintf("failed to parse %s JSON", what), err, map[string]any{"bytes": len(raw)})
	}
	return nil
}

// Summarize folds a Deployment and its pods into a DeploymentStatus.
// Ready is true iff every matched pod is ready, so it holds for no pods.
func Summarize(dep *appsv1.Deployment, pods []corev1.Pod) *DeploymentStatus {
	st := &DeploymentStatus{
		Name:                dep.Name,
		Namespace:           dep.Namespace,
		ReadyReplicas:       dep.Status.ReadyReplicas,
		AvailableReplicas:   dep.Status.AvailableReplicas,
		UnavailableReplicas: dep.Status.UnavailableReplicas,
		Conditions:          make([]Condition, 0, len(dep.Status.Conditions)),
		Pods:                make([]PodStatus, 0, len(pods)),
		Ready:               true,
	}
	if dep.Spec.Replicas != nil {
		st.Replicas = *dep.Spec.Replicas
	}

	for _, c := range dep.Status.Conditions {
		st.Conditions = append(st.Conditions, Condition{
			Type:               string(c.Type),
			Status:             string(c.Status),
			Reason:             c.Reason,
			Message:            c.Message,
			LastUpdateTime:     formatTime(c.LastUpdateTime),
			LastTransitionTime: formatTime(c.LastTransitionTime),
		})
	}

	for i := range pods {
		ps := SummarizePod(&pods[i])
		st.Pods = append(st.Pods, ps)
		st.Ready = st.Ready && ps.Ready
		st.Restarts += ps.Restarts
	}
	return st
}

// SummarizePod reports a pod's phase, readiness and total restarts. A pod
// without container statuses is ready.
func SummarizePod(pod *corev1.Pod) PodStatus {
	ps := PodStatus{
		Name:   pod.Name,
		Status: string(pod.Status.Phase),
		Ready:  true,
	}
	for _, cs := range pod.Status.ContainerStatuses {
		ps.Ready = ps.Ready && cs.Ready
		ps.Restarts += cs.RestartCount
	}
	return ps
}

func formatTime(t metav1.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
