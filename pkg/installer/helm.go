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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
	"github.com/NVIDIA/kubeprov/pkg/version"
)

// Helm detects and bootstraps the helm binary.
type Helm struct {
	client  *client.Client
	command string
	goos    string
}

// NewHelm returns a Helm installer. An empty command selects the default
// install command for goos.
func NewHelm(c *client.Client, command, goos string) *Helm {
	if command == "" {
		command = defaults.HelmInstallCommand(goos)
	}
	return &Helm{client: c, command: command, goos: goos}
}

// Probe returns the installed Helm version. It fails with TOOL_NOT_FOUND
// when helm is absent, broken, or older than v3.
func (h *Helm) Probe(ctx context.Context) (version.Version, error) {
	out, err := h.client.HelmVersion(ctx)
	if err != nil {
		return version.Version{}, cerrors.Wrap(cerrors.ErrCodeToolNotFound, "helm is not available", err)
	}

	v, err := version.ParseToolOutput(out)
	if err != nil {
		return version.Version{}, cerrors.WrapWithContext(cerrors.ErrCodeMalformedResponse,
			"unrecognized helm version output", err, map[string]any{"output": out})
	}
	if !v.AtLeastMajor(defaults.MinHelmMajor) {
		return v, cerrors.NewWithContext(cerrors.ErrCodeToolNotFound,
			fmt.Sprintf("helm %s is too old, v%d or newer is required", v, defaults.MinHelmMajor),
			map[string]any{"version": v.String()})
	}
	return v, nil
}

// Ensure returns the Helm version, installing Helm first when the probe
// fails. installed reports whether the install command ran.
func (h *Helm) Ensure(ctx context.Context) (v version.Version, installed bool, err error) {
	v, err = h.Probe(ctx)
	if err == nil {
		slog.Info("helm is already installed", "version", v.String())
		return v, false, nil
	}
	slog.Info("helm not usable, installing", "reason", err, "command", h.command)

	shell := defaults.Shell(h.goos)
	if _, err := h.client.Runner().Run(ctx, shell[0], shell[1], h.command); err != nil {
		return version.Version{}, true, cerrors.WrapWithContext(cerrors.ErrCodeCommandFailed,
			"helm install command failed", err, map[string]any{"command": h.command})
	}

	v, err = h.Probe(ctx)
	if err != nil {
		return version.Version{}, true, fmt.Errorf("helm still unavailable after install: %w", err)
	}
	slog.Info("helm installed successfully", "version", v.String())
	return v, true, nil
}
