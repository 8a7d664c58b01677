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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// Result is the captured outcome of one process invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts an external process and waits for it to exit.
// Implementations must return a non-nil error for any non-zero exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct{}

// Run executes name with args, blocking until the process exits.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	line := CommandLine(name, args)
	slog.Debug("running command", "command", line)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return res, cerrors.WrapWithContext(cerrors.ErrCodeToolNotFound,
			fmt.Sprintf("%s not found", name), err, map[string]any{"command": line})
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, commandError(name, args, res, err)
	default:
		return res, cerrors.WrapWithContext(cerrors.ErrCodeInternal,
			fmt.Sprintf("failed to run %s", name), err, map[string]any{"command": line})
	}
}

// CommandLine renders a command for logs and error messages.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// commandError builds the error for a non-zero exit, classifying well-known
// kubectl failures by their stderr.
func commandError(name string, args []string, res Result, cause error) error {
	stderr := strings.TrimSpace(res.Stderr)
	code := cerrors.ErrCodeCommandFailed
	switch {
	case strings.Contains(stderr, "(NotFound)"):
		code = cerrors.ErrCodeNotFound
	case strings.Contains(stderr, "(Unauthorized)"), strings.Contains(stderr, "(Forbidden)"):
		code = cerrors.ErrCodeUnauthorized
	}

	msg := fmt.Sprintf("%s exited with status %d", CommandLine(name, firstArg(args)), res.ExitCode)
	if line := firstLine(stderr); line != "" {
		msg += ": " + line
	}

	return cerrors.WrapWithContext(code, msg, cause, map[string]any{
		"command":  CommandLine(name, args),
		"exitCode": res.ExitCode,
		"stderr":   stderr,
	})
}

func firstArg(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[:1]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
