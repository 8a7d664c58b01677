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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/kubeprov/pkg/provisioner"
)

func (a *app) installCmd() *cli.Command {
	return &cli.Command{
		Name:   "install",
		Usage:  "Install Helm and the KEDA autoscaler",
		Before: initLogger,
		Description: `Install tooling into the cluster. Steps run in order and stop at the first failure:

  --helm    probe for Helm v3+, running the platform install command if missing
  --keda    install the kedacore/keda chart into the keda namespace (requires Helm)
  --verify  check the KEDA operator is running and ready and its CRDs exist`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "helm",
				Usage: "Install Helm",
			},
			&cli.BoolFlag{
				Name:  "keda",
				Usage: "Install KEDA",
			},
			&cli.StringFlag{
				Name:  "keda-version",
				Usage: "KEDA chart version (default: latest)",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Verify the KEDA installation",
			},
			&cli.StringFlag{
				Name:    "helm-installer",
				Usage:   "Shell command that installs Helm (default depends on the operating system)",
				Sources: cli.EnvVars("KUBEPROV_HELM_INSTALLER"),
			},
		},
		Action: a.action("install", func(ctx context.Context, cmd *cli.Command) error {
			opts := provisioner.InstallOptions{
				Helm:        cmd.Bool("helm"),
				Keda:        cmd.Bool("keda"),
				KedaVersion: cmd.String("keda-version"),
				Verify:      cmd.Bool("verify"),
			}

			p := a.newProvisioner(cmd, provisioner.WithHelmInstaller(cmd.String("helm-installer")))
			if _, err := preflight(ctx, p); err != nil {
				return err
			}

			// Helm is installed by this run when requested; otherwise it must already exist.
			env := p.DetectEnvironment(ctx, provisioner.DetectOptions{Helm: opts.Keda && !opts.Helm})

			env, err := p.Install(ctx, env, opts)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if opts.Helm {
				fmt.Fprintf(w, "Helm %s is installed\n", env.HelmVersion)
			}
			if opts.Keda {
				fmt.Fprintln(w, "KEDA installed successfully")
			}
			if opts.Verify {
				fmt.Fprintln(w, "KEDA is properly installed and running")
			}
			return nil
		}),
	}
}
