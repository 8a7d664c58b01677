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

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/serializer"
)

func (a *app) statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Get deployment status",
		ArgsUsage: "<name>",
		Before:    initLogger,
		Flags: []cli.Flag{
			newFormatFlag(),
		},
		Action: a.action("status", func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cerrors.New(cerrors.ErrCodeInvalidRequest,
					fmt.Sprintf("status requires <name>, got %d argument(s)", cmd.NArg()))
			}
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			p := a.newProvisioner(cmd)
			if _, err := preflight(ctx, p); err != nil {
				return err
			}

			st, err := p.Status(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			return serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(ctx, st)
		}),
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(formatFlag))
	if f.IsUnknown() {
		return "", cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", f),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return f, nil
}
