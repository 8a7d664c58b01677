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

	"github.com/NVIDIA/kubeprov/pkg/installer"
)

// Environment records which tools are available to the actions.
type Environment struct {
	HelmInstalled bool   `json:"helm_installed" yaml:"helm_installed"`
	HelmVersion   string `json:"helm_version,omitempty" yaml:"helm_version,omitempty"`
	KedaInstalled bool   `json:"keda_installed" yaml:"keda_installed"`
}

// WithHelm returns a copy of e with Helm marked installed at version.
func (e Environment) WithHelm(version string) Environment {
	e.HelmInstalled = true
	e.HelmVersion = version
	return e
}

// WithKeda returns a copy of e with KEDA marked installed.
func (e Environment) WithKeda() Environment {
	e.KedaInstalled = true
	return e
}

// DetectOptions selects which tools DetectEnvironment probes.
type DetectOptions struct {
	Helm bool
	Keda bool
}

// DetectEnvironment probes the requested tools. Probe failures mean "not
// installed" and are logged, never returned.
func (p *Provisioner) DetectEnvironment(ctx context.Context, opts DetectOptions) Environment {
	var env Environment

	if opts.Helm {
		v, err := p.helm().Probe(ctx)
		if err != nil {
			slog.Debug("helm not detected", "error", err)
		} else {
			env = env.WithHelm(v.String())
		}
	}

	if opts.Keda {
		ok, err := installer.NewKeda(p.client, "").Installed(ctx)
		switch {
		case err != nil:
			slog.Debug("keda not detected", "error", err)
		case ok:
			env = env.WithKeda()
		}
	}

	slog.Debug("environment detected",
		"helmInstalled", env.HelmInstalled, "helmVersion", env.HelmVersion, "kedaInstalled", env.KedaInstalled)
	return env
}
