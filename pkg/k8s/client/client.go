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

package client

import (
	"context"
	"strings"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
)

// Config holds the cluster context every operation is scoped to.
type Config struct {
	// Kubeconfig is an optional path to a kubeconfig file.
	Kubeconfig string
	// Namespace scopes namespaced queries.
	Namespace string
	// KubectlPath is the kubectl binary to run.
	KubectlPath string
	// HelmPath is the helm binary to run.
	HelmPath string
}

// Client runs kubectl and helm operations against one cluster context.
// The configuration is fixed at construction.
type Client struct {
	runner Runner
	config Config
}

// New creates a Client. Empty configuration values take their defaults.
func New(runner Runner, config Config) *Client {
	if config.Namespace == "" {
		config.Namespace = defaults.Namespace
	}
	if config.KubectlPath == "" {
		config.KubectlPath = defaults.KubectlPath
	}
	if config.HelmPath == "" {
		config.HelmPath = defaults.HelmPath
	}
	return &Client{
		runner: runner,
		config: config,
	}
}

// Config returns the client's cluster context.
func (c *Client) Config() Config {
	return c.config
}

// Namespace returns the namespace operations are scoped to.
func (c *Client) Namespace() string {
	return c.config.Namespace
}

// Runner returns the process runner used by the client.
func (c *Client) Runner() Runner {
	return c.runner
}

// Kubectl runs kubectl with args, appending --kubeconfig when configured.
func (c *Client) Kubectl(ctx context.Context, args ...string) (Result, error) {
	return c.runner.Run(ctx, c.config.KubectlPath, c.withKubeconfig(args)...)
}

// Helm runs helm with args exactly as given.
func (c *Client) Helm(ctx context.Context, args ...string) (Result, error) {
	return c.runner.Run(ctx, c.config.HelmPath, args...)
}

func (c *Client) withKubeconfig(args []string) []string {
	if c.config.Kubeconfig == "" {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args...)
	return append(out, "--kubeconfig="+c.config.Kubeconfig)
}

// ClusterInfo returns the output of `kubectl cluster-info`.
func (c *Client) ClusterInfo(ctx context.Context) (string, error) {
	res, err := c.Kubectl(ctx, "cluster-info")
	return res.Stdout, err
}

// Apply applies the manifest file at path.
func (c *Client) Apply(ctx context.Context, path string) (string, error) {
	res, err := c.Kubectl(ctx, "apply", "-f", path)
	return res.Stdout, err
}

// GetDeployment returns the JSON document of the named Deployment.
func (c *Client) GetDeployment(ctx context.Context, name string) ([]byte, error) {
	res, err := c.Kubectl(ctx, "get", "deployment", name, "-n", c.config.Namespace, "-o", "json")
	return []byte(res.Stdout), err
}

// ListPods returns the JSON pod list matching selector in the client namespace.
func (c *Client) ListPods(ctx context.Context, selector string) ([]byte, error) {
	res, err := c.Kubectl(ctx, "get", "pods", "-n", c.config.Namespace, "-l", selector, "-o", "json")
	return []byte(res.Stdout), err
}

// ListPodsIn returns the JSON pod list of another namespace.
func (c *Client) ListPodsIn(ctx context.Context, namespace string) ([]byte, error) {
	res, err := c.Kubectl(ctx, "get", "pods", "-n", namespace, "-o", "json")
	return []byte(res.Stdout), err
}

// ListDeploymentsIn returns the JSON deployment list of namespace.
func (c *Client) ListDeploymentsIn(ctx context.Context, namespace string) ([]byte, error) {
	res, err := c.Kubectl(ctx, "get", "deployments", "-n", namespace, "-o", "json")
	return []byte(res.Stdout), err
}

// ListCRDs returns the names of all CustomResourceDefinitions in the cluster.
func (c *Client) ListCRDs(ctx context.Context) ([]string, error) {
	res, err := c.Kubectl(ctx, "get", "crd", "-o", "name")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i := strings.LastIndexByte(line, '/'); i >= 0 {
			line = line[i+1:]
		}
		names = append(names, line)
	}
	return names, nil
}

// HelmVersion returns the output of `helm version --short`.
func (c *Client) HelmVersion(ctx context.Context) (string, error) {
	res, err := c.Helm(ctx, "version", "--short")
	return strings.TrimSpace(res.Stdout), err
}

// HelmRepoAdd registers a chart repository, replacing an existing entry of the same name.
func (c *Client) HelmRepoAdd(ctx context.Context, name, url string) error {
	_, err := c.Helm(ctx, "repo", "add", name, url, "--force-update")
	return err
}

// HelmRepoUpdate refreshes the local chart repository indexes.
func (c *Client) HelmRepoUpdate(ctx context.Context) error {
	_, err := c.Helm(ctx, "repo", "update")
	return err
}

// Release describes a chart installation.
type Release struct {
	Name            string
	Chart           string
	Namespace       string
	Version         string
	CreateNamespace bool
}

// HelmUpgradeInstall installs the release, or upgrades it when it already exists.
func (c *Client) HelmUpgradeInstall(ctx context.Context, rel Release) (string, error) {
	args := []string{"upgrade", "--install", rel.Name, rel.Chart, "--namespace", rel.Namespace}
	if rel.CreateNamespace {
		args = append(args, "--create-namespace")
	}
	if rel.Version != "" {
		args = append(args, "--version", rel.Version)
	}
	res, err := c.Helm(ctx, c.withKubeconfig(args)...)
	return res.Stdout, err
}
