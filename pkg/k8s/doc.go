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

// Package k8s groups kubeprov's Kubernetes integration.
//
// # Sub-packages
//
// client: adapter around the kubectl and helm command-line tools
//
//	c := client.New(client.ExecRunner{}, client.Config{
//	    Kubeconfig: "/home/me/.kube/config",
//	    Namespace:  "apps",
//	})
//	out, err := c.ClusterInfo(ctx)
//
// kubeprov deliberately drives the cluster through the same tools an operator
// would use by hand, so every action can be reproduced from the logged command
// lines. The only in-process use of client-go is reading the kubeconfig to
// report which context a command targets.
package k8s
