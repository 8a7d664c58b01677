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
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/manifest"
	"github.com/NVIDIA/kubeprov/pkg/provisioner"
)

func (a *app) deployCmd() *cli.Command {
	return &cli.Command{
		Name:      "deploy",
		Usage:     "Create a deployment, its service and optional autoscaling",
		ArgsUsage: "<name> <image>",
		Before:    initLogger,
		Description: `Generate <name>-deployment.yaml, <name>-service.yaml and, when --keda-config is
given and KEDA is installed, <name>-scaledobject.yaml, then apply them in that order.

Ports may be repeated, comma separated or space separated:
--ports 80 --ports 443, --ports 80,443, --ports 80 443.
The autoscaling policy is JSON (or YAML by extension) with min_replicas,
max_replicas and triggers; it may be a local file or an http(s) URL.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tag",
				Value: defaults.ImageTag,
				Usage: "Image tag",
			},
			&cli.Int32Flag{
				Name:  "replicas",
				Value: defaults.Replicas,
				Usage: "Initial replicas",
			},
			&cli.StringFlag{
				Name:  "cpu-request",
				Value: defaults.CPURequest,
				Usage: "CPU request",
			},
			&cli.StringFlag{
				Name:  "cpu-limit",
				Value: defaults.CPULimit,
				Usage: "CPU limit",
			},
			&cli.StringFlag{
				Name:  "memory-request",
				Value: defaults.MemoryRequest,
				Usage: "Memory request",
			},
			&cli.StringFlag{
				Name:  "memory-limit",
				Value: defaults.MemoryLimit,
				Usage: "Memory limit",
			},
			&cli.Int32SliceFlag{
				Name:  "ports",
				Value: []int32{defaults.Port},
				Usage: "Ports to expose",
			},
			&cli.StringFlag{
				Name:  "keda-config",
				Usage: "Path or URL of the KEDA autoscaling policy",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: ".",
				Usage: "Directory the manifest files are written to",
			},
		},
		Action: a.action("deploy", func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 2 {
				return cerrors.New(cerrors.ErrCodeInvalidRequest,
					fmt.Sprintf("deploy requires <name> and <image>, got %d argument(s)", cmd.NArg()))
			}
			ports, err := portsFromArgs(cmd)
			if err != nil {
				return err
			}

			req := provisioner.DeployRequest{
				Spec: manifest.DeploymentSpec{
					Name:     cmd.Args().Get(0),
					Image:    cmd.Args().Get(1),
					Tag:      cmd.String("tag"),
					Replicas: cmd.Int32("replicas"),
					Resources: manifest.Resources{
						CPURequest:    cmd.String("cpu-request"),
						CPULimit:      cmd.String("cpu-limit"),
						MemoryRequest: cmd.String("memory-request"),
						MemoryLimit:   cmd.String("memory-limit"),
					},
					Ports: ports,
				},
				PolicyPath: cmd.String("keda-config"),
				OutputDir:  cmd.String("output-dir"),
			}

			p := a.newProvisioner(cmd)
			if _, err := preflight(ctx, p); err != nil {
				return err
			}

			env := p.DetectEnvironment(ctx, provisioner.DetectOptions{Keda: req.PolicyPath != ""})

			res, err := p.Deploy(ctx, env, req)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, f := range res.Applied {
				fmt.Fprintf(w, "Applied %s\n", f)
			}
			fmt.Fprintf(w, "Deployment %s created successfully\n", req.Spec.Name)
			return nil
		}),
	}
}

// portsFromArgs returns the --ports values plus any arguments after <name>
// and <image>, which belong to a space separated --ports list.
func portsFromArgs(cmd *cli.Command) ([]int32, error) {
	ports := cmd.Int32Slice("ports")
	extra := cmd.Args().Slice()[2:]
	if len(extra) == 0 {
		return ports, nil
	}
	if !cmd.IsSet("ports") {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected argument %q after <name> <image>", extra[0]),
			map[string]any{"arguments": extra})
	}

	out := append([]int32{}, ports...)
	for _, a := range extra {
		p, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid port %q", a), err, map[string]any{"argument": a})
		}
		out = append(out, int32(p))
	}
	return out, nil
}
