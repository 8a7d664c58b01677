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
	"fmt"
	"os"

	"k8s.io/client-go/tools/clientcmd"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// ContextInfo describes the kubeconfig context commands will target.
type ContextInfo struct {
	Name      string
	Cluster   string
	Server    string
	Namespace string
}

// ResolveContext loads the kubeconfig and returns its current context.
//
// With an explicit path the file must exist and parse. Without one the usual
// discovery applies (KUBECONFIG, then ~/.kube/config); finding no kubeconfig
// at all is not an error and yields an empty ContextInfo, since kubectl may
// still reach a cluster in-cluster.
func ResolveContext(kubeconfig string) (*ContextInfo, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		if _, err := os.Stat(kubeconfig); err != nil {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig,
				"kubeconfig is not readable", err, map[string]any{"path": kubeconfig})
		}
		rules.ExplicitPath = kubeconfig
	}

	raw, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).RawConfig()
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig,
			"failed to load kubeconfig", err, map[string]any{"path": kubeconfig})
	}

	info := &ContextInfo{Name: raw.CurrentContext}
	if raw.CurrentContext == "" {
		return info, nil
	}

	kctx, ok := raw.Contexts[raw.CurrentContext]
	if !ok {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig,
			fmt.Sprintf("current context %q is not defined in kubeconfig", raw.CurrentContext))
	}
	info.Cluster = kctx.Cluster
	info.Namespace = kctx.Namespace
	if cluster, ok := raw.Clusters[kctx.Cluster]; ok {
		info.Server = cluster.Server
	}
	return info, nil
}
