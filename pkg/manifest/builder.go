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
	"slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

const maxPort = 65535

// Builder renders the documents for one namespace.
type Builder struct {
	// Namespace is set on every document.
	Namespace string
	// AutoscalerInstalled gates the ScaledObject document.
	AutoscalerInstalled bool
}

// Build validates spec and policy and renders the documents. It has no side
// effects; facts worth reporting are set on the returned Manifests.
func (b Builder) Build(spec DeploymentSpec, policy *AutoscalingPolicy) (*Manifests, error) {
	if spec.Name == "" {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "deployment name is required")
	}
	if spec.Replicas < 0 {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "replicas must not be negative",
			map[string]any{"replicas": spec.Replicas})
	}

	ports, err := normalizePorts(spec.Ports)
	if err != nil {
		return nil, err
	}

	image, pinned, err := ImageReference(spec.Image, spec.Tag)
	if err != nil {
		return nil, err
	}

	namespace := b.Namespace
	if namespace == "" {
		namespace = defaults.Namespace
	}

	m := &Manifests{
		Name:       spec.Name,
		TagIgnored: pinned && spec.Tag != "" && spec.Tag != defaults.ImageTag,
	}

	m.Deployment, err = buildDeployment(spec, namespace, image, ports)
	if err != nil {
		return nil, err
	}

	if len(ports) > 0 {
		m.Service, err = buildService(spec.Name, namespace, ports)
		if err != nil {
			return nil, err
		}
	}

	if policy != nil {
		if err := policy.Validate(); err != nil {
			return nil, err
		}
		if b.AutoscalerInstalled {
			m.ScaledObject, err = buildScaledObject(spec.Name, namespace, policy)
			if err != nil {
				return nil, err
			}
		} else {
			m.AutoscalingSkipped = true
		}
	}

	return m, nil
}

// normalizePorts range-checks ports and drops duplicates, keeping first occurrences.
func normalizePorts(ports []int32) ([]int32, error) {
	out := make([]int32, 0, len(ports))
	for _, p := range ports {
		if p < 1 || p > maxPort {
			return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("port %d out of range 1-%d", p, maxPort), map[string]any{"port": p})
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func appLabels(name string) map[string]string {
	return map[string]string{defaults.AppLabel: name}
}

func buildDeployment(spec DeploymentSpec, namespace, image string, ports []int32) (*unstructured.Unstructured, error) {
	containerPorts := make([]corev1.ContainerPort, 0, len(ports))
	for _, p := range ports {
		containerPorts = append(containerPorts, corev1.ContainerPort{ContainerPort: p})
	}

	dep := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1.SchemeGroupVersion.String(),
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: namespace,
			Labels:    appLabels(spec.Name),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(spec.Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: appLabels(spec.Name),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: appLabels(spec.Name),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  spec.Name,
							Image: image,
							Ports: containerPorts,
						},
					},
				},
			},
		},
	}

	u, err := toUnstructured(dep)
	if err != nil {
		return nil, err
	}
	unstructured.RemoveNestedField(u.Object, "spec", "template", "metadata", "creationTimestamp")

	// Quantities go in as strings so the API server, not kubeprov, validates them.
	containers, _, _ := unstructured.NestedFieldNoCopy(u.Object, "spec", "template", "spec", "containers")
	if list, ok := containers.([]any); ok && len(list) > 0 {
		if c, ok := list[0].(map[string]any); ok {
			c["resources"] = resourcesObject(spec.Resources)
		}
	}
	return u, nil
}

func resourcesObject(r Resources) map[string]any {
	out := map[string]any{}
	if q := quantities(r.CPURequest, r.MemoryRequest); len(q) > 0 {
		out["requests"] = q
	}
	if q := quantities(r.CPULimit, r.MemoryLimit); len(q) > 0 {
		out["limits"] = q
	}
	return out
}

func quantities(cpu, memory string) map[string]any {
	q := map[string]any{}
	if cpu != "" {
		q[string(corev1.ResourceCPU)] = cpu
	}
	if memory != "" {
		q[string(corev1.ResourceMemory)] = memory
	}
	return q
}

func buildService(name, namespace string, ports []int32) (*unstructured.Unstructured, error) {
	servicePorts := make([]corev1.ServicePort, 0, len(ports))
	for _, p := range ports {
		sp := corev1.ServicePort{
			Port:       p,
			TargetPort: intstr.FromInt32(p),
		}
		// Multi-port services require named ports.
		if len(ports) > 1 {
			sp.Name = fmt.Sprintf("port-%d", p)
		}
		servicePorts = append(servicePorts, sp)
	}

	svc := &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name + defaults.ServiceNameSuffix,
			Namespace: namespace,
			Labels:    appLabels(name),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: appLabels(name),
			Ports:    servicePorts,
		},
	}
	return toUnstructured(svc)
}

func buildScaledObject(name, namespace string, policy *AutoscalingPolicy) (*unstructured.Unstructured, error) {
	minReplicas, maxReplicas := policy.Bounds()

	triggers, err := normalizeTriggers(policy.Triggers)
	if err != nil {
		return nil, err
	}

	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": defaults.KedaAPIVersion,
		"kind":       defaults.KedaKind,
		"metadata": map[string]any{
			"name":      name + defaults.ScaledObjectNameSuffix,
			"namespace": namespace,
			"labels":    map[string]any{defaults.AppLabel: name},
		},
		"spec": map[string]any{
			"scaleTargetRef": map[string]any{
				"apiVersion": appsv1.SchemeGroupVersion.String(),
				"kind":       "Deployment",
				"name":       name,
			},
			"minReplicaCount": int64(minReplicas),
			"maxReplicaCount": int64(maxReplicas),
			"triggers":        triggers,
		},
	}}, nil
}

// toUnstructured converts a typed object and strips the fields the API server owns.
func toUnstructured(obj runtime.Object) (*unstructured.Unstructured, error) {
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal,
			fmt.Sprintf("failed to convert %s", obj.GetObjectKind().GroupVersionKind().Kind), err)
	}
	unstructured.RemoveNestedField(content, "status")
	unstructured.RemoveNestedField(content, "metadata", "creationTimestamp")
	return &unstructured.Unstructured{Object: content}, nil
}
