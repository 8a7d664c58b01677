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

package defaults

import "time"

// Cluster defaults.
const (
	// Namespace is the namespace used when --namespace is not given.
	Namespace = "default"

	// KubectlPath is the kubectl binary resolved through PATH by default.
	KubectlPath = "kubectl"

	// HelmPath is the helm binary resolved through PATH by default.
	HelmPath = "helm"

	// AppLabel is the label key tying a Deployment, its pods and its Service together.
	AppLabel = "app"
)

// Deployment defaults.
const (
	ImageTag      = "latest"
	Replicas      = 1
	CPURequest    = "100m"
	CPULimit      = "500m"
	MemoryRequest = "128Mi"
	MemoryLimit   = "512Mi"
	Port          = 80
)

// Autoscaling defaults applied when a policy omits its bounds.
const (
	MinReplicas = 1
	MaxReplicas = 10
)

// Manifest file and object name suffixes.
const (
	DeploymentFileSuffix   = "-deployment.yaml"
	ServiceFileSuffix      = "-service.yaml"
	ScaledObjectFileSuffix = "-scaledobject.yaml"

	ServiceNameSuffix      = "-service"
	ScaledObjectNameSuffix = "-scaled"
)

// KEDA installation.
const (
	KedaRepoName    = "kedacore"
	KedaRepoURL     = "https://kedacore.github.io/charts"
	KedaChart       = "kedacore/keda"
	KedaRelease     = "keda"
	KedaNamespace   = "keda"
	KedaOperator    = "keda-operator"
	KedaAPIVersion  = "keda.sh/v1alpha1"
	KedaKind        = "ScaledObject"
	ScaledObjectCRD = "scaledobjects.keda.sh"
	TriggerAuthCRD  = "triggerauthentications.keda.sh"
)

// KedaRequiredCRDs lists the CRDs a working KEDA installation registers.
func KedaRequiredCRDs() []string {
	return []string{ScaledObjectCRD, TriggerAuthCRD}
}

// MinHelmMajor is the oldest Helm major version able to install the KEDA chart.
const MinHelmMajor = 3

// Helm bootstrap commands per operating system. Windows falls back to
// winget when choco is missing or fails.
const (
	HelmInstallWindows = "choco install kubernetes-helm -y; if (-not $?) { winget install helm.helm }"
	HelmInstallDarwin  = "brew install helm"
	HelmInstallLinux   = "curl -fsSL https://raw.githubusercontent.com/helm/helm/main/scripts/get-helm-3 | bash"
)

// HelmInstallCommand returns the shell command that installs Helm on goos.
func HelmInstallCommand(goos string) string {
	switch goos {
	case "windows":
		return HelmInstallWindows
	case "darwin":
		return HelmInstallDarwin
	default:
		return HelmInstallLinux
	}
}

// Shell returns the interpreter and flag used to run a command string on goos.
func Shell(goos string) []string {
	if goos == "windows" {
		return []string{"powershell", "-Command"}
	}
	return []string{"sh", "-c"}
}

// HTTP client timeouts for fetching remote policy files.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second
)
