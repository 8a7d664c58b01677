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
)

func (a *app) connectCmd() *cli.Command {
	return &cli.Command{
		Name:   "connect",
		Usage:  "Verify connectivity to the Kubernetes cluster",
		Before: initLogger,
		Action: a.action("connect", func(ctx context.Context, cmd *cli.Command) error {
			res, err := preflight(ctx, a.newProvisioner(cmd))
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			fmt.Fprintln(w, "Successfully connected to Kubernetes cluster")
			if res.Context.Name != "" {
				fmt.Fprintf(w, "Context: %s (%s)\n", res.Context.Name, res.Context.Server)
			}
			if res.ClusterInfo != "" {
				fmt.Fprintln(w, res.ClusterInfo)
			}
			return nil
		}),
	}
}
