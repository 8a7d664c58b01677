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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

func TestNew_Defaults(t *testing.T) {
	c := New(NewFakeRunner(), Config{})
	cfg := c.Config()
	assert.Equal(t, "default", cfg.Namespace)
	assert.Equal(t, "kubectl", cfg.KubectlPath)
	assert.Equal(t, "helm", cfg.HelmPath)
}

func TestClient_CommandLines(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  Config
		call func(c *Client) error
		want string
	}{
		{
			name: "cluster-info without kubeconfig",
			call: func(c *Client) error { _, err := c.ClusterInfo(ctx); return err },
			want: "kubectl cluster-info",
		},
		{
			name: "cluster-info with kubeconfig",
			cfg:  Config{Kubeconfig: "/tmp/kc"},
			call: func(c *Client) error { _, err := c.ClusterInfo(ctx); return err },
			want: "kubectl cluster-info --kubeconfig=/tmp/kc",
		},
		{
			name: "apply",
			call: func(c *Client) error { _, err := c.Apply(ctx, "out/myapp-deployment.yaml"); return err },
			want: "kubectl apply -f out/myapp-deployment.yaml",
		},
		{
			name: "get deployment in namespace",
			cfg:  Config{Namespace: "apps"},
			call: func(c *Client) error { _, err := c.GetDeployment(ctx, "myapp"); return err },
			want: "kubectl get deployment myapp -n apps -o json",
		},
		{
			name: "list pods by selector",
			cfg:  Config{Namespace: "apps", Kubeconfig: "kc"},
			call: func(c *Client) error { _, err := c.ListPods(ctx, "app=myapp"); return err },
			want: "kubectl get pods -n apps -l app=myapp -o json --kubeconfig=kc",
		},
		{
			name: "custom kubectl path",
			cfg:  Config{KubectlPath: "/opt/bin/kubectl"},
			call: func(c *Client) error { _, err := c.ListPodsIn(ctx, "keda"); return err },
			want: "/opt/bin/kubectl get pods -n keda -o json",
		},
		{
			name: "helm version ignores kubeconfig",
			cfg:  Config{Kubeconfig: "kc"},
			call: func(c *Client) error { _, err := c.HelmVersion(ctx); return err },
			want: "helm version --short",
		},
		{
			name: "helm repo add",
			call: func(c *Client) error { return c.HelmRepoAdd(ctx, "kedacore", "https://kedacore.github.io/charts") },
			want: "helm repo add kedacore https://kedacore.github.io/charts --force-update",
		},
		{
			name: "helm upgrade install",
			cfg:  Config{Kubeconfig: "kc", HelmPath: "/usr/local/bin/helm"},
			call: func(c *Client) error {
				_, err := c.HelmUpgradeInstall(ctx, Release{
					Name: "keda", Chart: "kedacore/keda", Namespace: "keda", CreateNamespace: true, Version: "2.14.0",
				})
				return err
			},
			want: "/usr/local/bin/helm upgrade --install keda kedacore/keda --namespace keda --create-namespace --version 2.14.0 --kubeconfig=kc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewFakeRunner()
			c := New(runner, tt.cfg)
			require.NoError(t, tt.call(c))
			assert.Equal(t, []string{tt.want}, runner.Calls())
		})
	}
}

func TestClient_ListCRDs(t *testing.T) {
	runner := NewFakeRunner().OnStdout("kubectl get crd",
		"customresourcedefinition.apiextensions.k8s.io/scaledobjects.keda.sh\n"+
			"customresourcedefinition.apiextensions.k8s.io/triggerauthentications.keda.sh\n\n")

	names, err := New(runner, Config{}).ListCRDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"scaledobjects.keda.sh", "triggerauthentications.keda.sh"}, names)
}

func TestClient_FailureCarriesStderr(t *testing.T) {
	runner := NewFakeRunner().OnFailure("kubectl cluster-info", "Unable to connect to the server: dial tcp: i/o timeout")

	_, err := New(runner, Config{}).ClusterInfo(context.Background())
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeCommandFailed))
	assert.Contains(t, err.Error(), "i/o timeout")
}

func TestFakeRunner_LastMatchWins(t *testing.T) {
	runner := NewFakeRunner().
		OnStdout("kubectl get", "general").
		OnStdout("kubectl get pods", "specific")

	res, err := runner.Run(context.Background(), "kubectl", "get", "pods")
	require.NoError(t, err)
	assert.Equal(t, "specific", res.Stdout)

	res, err = runner.Run(context.Background(), "kubectl", "get", "deployments")
	require.NoError(t, err)
	assert.Equal(t, "general", res.Stdout)

	assert.Len(t, runner.CallsWithPrefix("kubectl get"), 2)
}
