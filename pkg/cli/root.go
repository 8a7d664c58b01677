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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	"github.com/NVIDIA/kubeprov/pkg/k8s/client"
	"github.com/NVIDIA/kubeprov/pkg/logging"
	"github.com/NVIDIA/kubeprov/pkg/metrics"
	"github.com/NVIDIA/kubeprov/pkg/provisioner"
	"github.com/NVIDIA/kubeprov/pkg/serializer"
)

const (
	name           = "kubeprov"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Global flag names.
const (
	kubeconfigFlag  = "kubeconfig"
	namespaceFlag   = "namespace"
	kubectlPathFlag = "kubectl-path"
	helmPathFlag    = "helm-path"
	logLevelFlag    = "log-level"
	logJSONFlag     = "log-json"
	metricsFileFlag = "metrics-file"
	formatFlag      = "format"
)

// globalFlags are built per command tree; flag values are stateful.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    kubeconfigFlag,
			Aliases: []string{"k"},
			Usage:   "Path to kubeconfig file (kubectl falls back to $KUBECONFIG or ~/.kube/config)",
		},
		&cli.StringFlag{
			Name:    namespaceFlag,
			Aliases: []string{"n"},
			Value:   defaults.Namespace,
			Usage:   "Kubernetes namespace to use",
			Sources: cli.EnvVars("KUBEPROV_NAMESPACE"),
		},
		&cli.StringFlag{
			Name:    kubectlPathFlag,
			Value:   defaults.KubectlPath,
			Usage:   "kubectl binary to run",
			Sources: cli.EnvVars("KUBEPROV_KUBECTL_PATH"),
		},
		&cli.StringFlag{
			Name:    helmPathFlag,
			Value:   defaults.HelmPath,
			Usage:   "helm binary to run",
			Sources: cli.EnvVars("KUBEPROV_HELM_PATH"),
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.BoolFlag{
			Name:  logJSONFlag,
			Usage: "Emit structured JSON logs",
		},
		&cli.StringFlag{
			Name:    metricsFileFlag,
			Usage:   "Write Prometheus metrics for this run to the given .prom file",
			Sources: cli.EnvVars("KUBEPROV_METRICS_FILE"),
		},
	}
}

func newFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    formatFlag,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// Execute runs the CLI against the real kubectl and helm binaries and exits
// non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(client.ExecRunner{}).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs to reach the cluster.
type app struct {
	runner  client.Runner
	metrics *metrics.Recorder
}

func newRootCmd(runner client.Runner) *cli.Command {
	rec := metrics.NewRecorder()
	a := &app{runner: rec.Runner(runner), metrics: rec}

	return &cli.Command{
		Name:                  name,
		Usage:                 "Provision workloads on a Kubernetes cluster",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Description: `kubeprov drives kubectl and helm to:

  connect - verify the cluster is reachable
  install - install Helm and the KEDA autoscaler
  deploy  - generate and apply Deployment, Service and ScaledObject manifests
  status  - report deployment and pod health

Every command checks cluster connectivity first.`,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			a.connectCmd(),
			a.installCmd(),
			a.deployCmd(),
			a.statusCmd(),
		},
	}
}

// initLogger configures slog. It runs as each subcommand's Before hook so
// global flags given after the subcommand name are honored.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String(logLevelFlag)
	if cmd.Bool(logJSONFlag) {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	} else {
		logging.SetDefaultCLILogger(name, version, level)
	}
	slog.SetDefault(slog.Default().With("invocation", uuid.NewString()))

	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"namespace", cmd.String(namespaceFlag))
	return ctx, nil
}

// action records the outcome of fn and writes the metrics file when one is
// configured. A metrics write failure never changes the exit code.
func (a *app) action(name string, fn cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		err := fn(ctx, cmd)
		a.metrics.ObserveAction(name, err)

		if path := cmd.String(metricsFileFlag); path != "" {
			if werr := a.metrics.WriteTextfile(path); werr != nil {
				slog.Warn("failed to write metrics file", "path", path, "error", werr)
			}
		}
		return err
	}
}

// newProvisioner builds a Provisioner for the cluster context in the global flags.
func (a *app) newProvisioner(cmd *cli.Command, opts ...provisioner.Option) *provisioner.Provisioner {
	c := client.New(a.runner, client.Config{
		Kubeconfig:  cmd.String(kubeconfigFlag),
		Namespace:   cmd.String(namespaceFlag),
		KubectlPath: cmd.String(kubectlPathFlag),
		HelmPath:    cmd.String(helmPathFlag),
	})
	return provisioner.New(c, opts...)
}

// preflight gates every action on cluster connectivity.
func preflight(ctx context.Context, p *provisioner.Provisioner) (*provisioner.ConnectResult, error) {
	res, err := p.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("cluster connectivity check failed: %w", err)
	}
	return res, nil
}
