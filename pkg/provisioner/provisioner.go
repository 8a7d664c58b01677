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

package provisioner

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/installer"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
	"github.com/NVIDIA/kubeprov/pkg/manifest"
	"github.com/NVIDIA/kubeprov/pkg/status"
)

// Provisioner runs actions against the cluster context of its client.
type Provisioner struct {
	client        *client.Client
	goos          string
	helmInstaller string
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithGOOS overrides the operating system used to pick the Helm install
// command and shell.
func WithGOOS(goos string) Option {
	return func(p *Provisioner) {
		p.goos = goos
	}
}

// WithHelmInstaller sets the shell command that installs Helm.
func WithHelmInstaller(command string) Option {
	return func(p *Provisioner) {
		p.helmInstaller = command
	}
}

// New returns a Provisioner using c for every cluster and tool invocation.
func New(c *client.Client, opts ...Option) *Provisioner {
	p := &Provisioner{
		client: c,
		goos:   runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provisioner) helm() *installer.Helm {
	return installer.NewHelm(p.client, p.helmInstaller, p.goos)
}

// ConnectResult describes the reachable cluster.
type ConnectResult struct {
	Context     *client.ContextInfo
	ClusterInfo string
}

// Connect verifies the cluster is reachable. Every other action is gated on it.
func (p *Provisioner) Connect(ctx context.Context) (*ConnectResult, error) {
	cfg := p.client.Config()

	info, err := client.ResolveContext(cfg.Kubeconfig)
	if err != nil {
		slog.Error("failed to load kubeconfig", "kubeconfig", cfg.Kubeconfig, "error", err)
		return nil, err
	}

	out, err := p.client.ClusterInfo(ctx)
	if err != nil {
		slog.Error("failed to connect to cluster", "context", info.Name, "error", err)
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeUnavailable,
			"failed to connect to cluster", err, map[string]any{"context": info.Name})
	}

	slog.Info("connected to cluster", "context", info.Name, "server", info.Server, "namespace", cfg.Namespace)
	return &ConnectResult{Context: info, ClusterInfo: strings.TrimSpace(out)}, nil
}

// InstallOptions selects what Install does.
type InstallOptions struct {
	Helm        bool
	Keda        bool
	KedaVersion string
	Verify      bool
}

// Install bootstraps Helm and installs KEDA as requested, in that order,
// returning env updated with what is now installed. KEDA requires Helm to
// be in env or installed by this call. Requesting nothing is a no-op.
func (p *Provisioner) Install(ctx context.Context, env Environment, opts InstallOptions) (Environment, error) {
	if !opts.Helm && !opts.Keda && !opts.Verify {
		slog.Warn("nothing to install, specify --helm, --keda or --verify")
		return env, nil
	}

	if opts.Helm {
		v, _, err := p.helm().Ensure(ctx)
		if err != nil {
			slog.Error("failed to install helm", "error", err)
			return env, err
		}
		env = env.WithHelm(v.String())
	}

	keda := installer.NewKeda(p.client, opts.KedaVersion)
	if opts.Keda {
		if !env.HelmInstalled {
			err := cerrors.New(cerrors.ErrCodeToolNotFound, "helm is required to install KEDA")
			slog.Error("failed to install keda", "error", err)
			return env, err
		}
		if err := keda.Install(ctx); err != nil {
			slog.Error("failed to install keda", "error", err)
			return env, err
		}
		env = env.WithKeda()
	}

	if opts.Verify {
		report, err := keda.Verify(ctx)
		if err != nil {
			slog.Error("keda verification failed",
				"operatorRunning", report.OperatorRunning, "operatorReady", report.OperatorReady,
				"missingCRDs", report.MissingCRDs, "error", err)
			return env, err
		}
		env = env.WithKeda()
	}

	return env, nil
}

// DeployRequest describes one deploy action.
type DeployRequest struct {
	Spec manifest.DeploymentSpec
	// PolicyPath is an optional autoscaling policy file or URL.
	PolicyPath string
	// OutputDir receives the manifest files.
	OutputDir string
}

// DeployResult lists what Deploy wrote and applied.
type DeployResult struct {
	Files   []string
	Applied []string
	// AutoscalingSkipped reports a policy that was ignored because KEDA is
	// not installed.
	AutoscalingSkipped bool
}

// Deploy builds the manifests, writes them to OutputDir and applies them in
// order Deployment, Service, ScaledObject, stopping at the first failure.
// The result is returned alongside any apply error.
func (p *Provisioner) Deploy(ctx context.Context, env Environment, req DeployRequest) (*DeployResult, error) {
	var policy *manifest.AutoscalingPolicy
	if req.PolicyPath != "" {
		var err error
		if policy, err = manifest.LoadPolicy(ctx, req.PolicyPath); err != nil {
			slog.Error("failed to load autoscaling policy", "path", req.PolicyPath, "error", err)
			return nil, err
		}
	}

	b := manifest.Builder{Namespace: p.client.Namespace(), AutoscalerInstalled: env.KedaInstalled}
	m, err := b.Build(req.Spec, policy)
	if err != nil {
		slog.Error("failed to build manifests", "name", req.Spec.Name, "error", err)
		return nil, err
	}
	if m.TagIgnored {
		slog.Warn("image already carries a tag or digest, ignoring tag", "image", req.Spec.Image, "tag", req.Spec.Tag)
	}
	if m.AutoscalingSkipped {
		slog.Warn("autoscaling policy given but KEDA is not installed, skipping ScaledObject",
			"name", req.Spec.Name, "policy", req.PolicyPath)
	}

	files, err := m.WriteFiles(req.OutputDir)
	if err != nil {
		slog.Error("failed to write manifests", "dir", req.OutputDir, "error", err)
		return nil, err
	}

	result := &DeployResult{
		Files:              files,
		Applied:            make([]string, 0, len(files)),
		AutoscalingSkipped: m.AutoscalingSkipped,
	}
	for _, f := range files {
		if _, err := p.client.Apply(ctx, f); err != nil {
			slog.Error("failed to apply manifest", "file", f, "error", err)
			return result, err
		}
		slog.Info("applied manifest", "file", f)
		result.Applied = append(result.Applied, f)
	}

	slog.Info("deployment created", "name", req.Spec.Name, "namespace", p.client.Namespace(),
		"autoscaled", m.ScaledObject != nil)
	return result, nil
}

// Status returns the current status of the named deployment.
func (p *Provisioner) Status(ctx context.Context, name string) (*status.DeploymentStatus, error) {
	if name == "" {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "deployment name is required")
	}
	return status.NewAggregator(p.client, p.client.Namespace()).Get(ctx, name)
}

// DefaultSpec returns a DeploymentSpec with the CLI defaults applied.
func DefaultSpec(name, image string) manifest.DeploymentSpec {
	return manifest.DeploymentSpec{
		Name:      name,
		Image:     image,
		Tag:       defaults.ImageTag,
		Replicas:  defaults.Replicas,
		Resources: manifest.DefaultResources(),
		Ports:     []int32{defaults.Port},
	}
}
