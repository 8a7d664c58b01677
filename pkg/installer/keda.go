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

package installer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
)

const metricsServerPrefix = defaults.KedaOperator + "-metrics-apiserver"

// Keda installs and verifies the KEDA controller.
type Keda struct {
	client  *client.Client
	version string
}

// NewKeda returns a KEDA installer. An empty chartVersion installs the latest chart.
func NewKeda(c *client.Client, chartVersion string) *Keda {
	return &Keda{client: c, version: chartVersion}
}

// Install adds the kedacore repository, installs or upgrades the keda
// release and checks that an operator pod was created. The caller must
// ensure Helm is available.
func (k *Keda) Install(ctx context.Context) error {
	slog.Info("adding KEDA helm repository", "repo", defaults.KedaRepoURL)
	if err := k.client.HelmRepoAdd(ctx, defaults.KedaRepoName, defaults.KedaRepoURL); err != nil {
		return err
	}
	if err := k.client.HelmRepoUpdate(ctx); err != nil {
		return err
	}

	slog.Info("installing KEDA", "chart", defaults.KedaChart, "namespace", defaults.KedaNamespace, "version", k.version)
	if _, err := k.client.HelmUpgradeInstall(ctx, client.Release{
		Name:            defaults.KedaRelease,
		Chart:           defaults.KedaChart,
		Namespace:       defaults.KedaNamespace,
		Version:         k.version,
		CreateNamespace: true,
	}); err != nil {
		return err
	}

	pods, err := k.operatorPods(ctx)
	if err != nil {
		return err
	}
	if len(pods) == 0 {
		return cerrors.NewWithContext(cerrors.ErrCodeUnavailable,
			"KEDA installation verification failed: no keda-operator pod found",
			map[string]any{"namespace": defaults.KedaNamespace})
	}
	slog.Info("KEDA installed successfully", "operatorPods", len(pods))
	return nil
}

// Installed reports whether the ScaledObject CRD is registered.
func (k *Keda) Installed(ctx context.Context) (bool, error) {
	crds, err := k.client.ListCRDs(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(crds, defaults.ScaledObjectCRD), nil
}

// Report is the outcome of a full KEDA verification.
type Report struct {
	OperatorRunning bool     `json:"operator_running" yaml:"operator_running"`
	OperatorReady   bool     `json:"operator_ready" yaml:"operator_ready"`
	MissingCRDs     []string `json:"missing_crds" yaml:"missing_crds"`
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	return r.OperatorRunning && r.OperatorReady && len(r.MissingCRDs) == 0
}

// Verify checks that the operator pod is running, the operator deployment
// is fully ready and the required CRDs exist. Checks stop at the first
// failure. The report is returned alongside any error.
func (k *Keda) Verify(ctx context.Context) (*Report, error) {
	report := &Report{MissingCRDs: []string{}}

	pods, err := k.operatorPods(ctx)
	if err != nil {
		return report, err
	}
	report.OperatorRunning = slices.ContainsFunc(pods, func(p corev1.Pod) bool {
		return p.Status.Phase == corev1.PodRunning
	})
	if !report.OperatorRunning {
		return report, unhealthy("KEDA operator pod not running")
	}

	report.OperatorReady, err = k.operatorReady(ctx)
	if err != nil {
		return report, err
	}
	if !report.OperatorReady {
		return report, unhealthy("KEDA operator deployment not ready")
	}

	crds, err := k.client.ListCRDs(ctx)
	if err != nil {
		return report, err
	}
	for _, crd := range defaults.KedaRequiredCRDs() {
		if !slices.Contains(crds, crd) {
			report.MissingCRDs = append(report.MissingCRDs, crd)
		}
	}
	if len(report.MissingCRDs) > 0 {
		return report, cerrors.NewWithContext(cerrors.ErrCodeUnavailable,
			fmt.Sprintf("missing required CRDs: %s", strings.Join(report.MissingCRDs, ", ")),
			map[string]any{"missing": report.MissingCRDs})
	}

	slog.Info("KEDA is properly installed and running")
	return report, nil
}

func unhealthy(msg string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeUnavailable, msg,
		map[string]any{"namespace": defaults.KedaNamespace})
}

// operatorPods lists the keda-operator pods, excluding the metrics API server.
func (k *Keda) operatorPods(ctx context.Context) ([]corev1.Pod, error) {
	raw, err := k.client.ListPodsIn(ctx, defaults.KedaNamespace)
	if err != nil {
		return nil, err
	}
	var list corev1.PodList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeMalformedResponse, "failed to parse KEDA pod list", err)
	}

	var pods []corev1.Pod
	for _, p := range list.Items {
		if strings.HasPrefix(p.Name, defaults.KedaOperator+"-") && !strings.HasPrefix(p.Name, metricsServerPrefix) {
			pods = append(pods, p)
		}
	}
	return pods, nil
}

func (k *Keda) operatorReady(ctx context.Context) (bool, error) {
	raw, err := k.client.ListDeploymentsIn(ctx, defaults.KedaNamespace)
	if err != nil {
		return false, err
	}
	var list appsv1.DeploymentList
	if err := json.Unmarshal(raw, &list); err != nil {
		return false, cerrors.Wrap(cerrors.ErrCodeMalformedResponse, "failed to parse KEDA deployment list", err)
	}

	for _, d := range list.Items {
		if d.Name != defaults.KedaOperator {
			continue
		}
		want := int32(1)
		if d.Spec.Replicas != nil {
			want = *d.Spec.Replicas
		}
		return d.Status.ReadyReplicas > 0 && d.Status.ReadyReplicas >= want, nil
	}
	return false, nil
}
