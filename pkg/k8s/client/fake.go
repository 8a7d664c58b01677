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
	"context"
	"fmt"
	"strings"
)

// FakeRunner is a Runner returning canned results, for tests.
// Results are matched by command-line prefix; the most recently registered
// matching stub wins. Unmatched commands succeed with empty output.
type FakeRunner struct {
	stubs []stub
	calls []string
}

type stub struct {
	prefix string
	result Result
	err    error
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// On registers a result for commands starting with prefix. A non-zero
// ExitCode produces the same error ExecRunner would return.
func (f *FakeRunner) On(prefix string, result Result) *FakeRunner {
	f.stubs = append(f.stubs, stub{prefix: prefix, result: result})
	return f
}

// OnStdout registers a successful result with the given stdout.
func (f *FakeRunner) OnStdout(prefix, stdout string) *FakeRunner {
	return f.On(prefix, Result{Stdout: stdout})
}

// OnFailure registers a non-zero exit with the given stderr.
func (f *FakeRunner) OnFailure(prefix, stderr string) *FakeRunner {
	return f.On(prefix, Result{Stderr: stderr, ExitCode: 1})
}

// OnError registers an error returned as-is, such as a missing binary.
func (f *FakeRunner) OnError(prefix string, err error) *FakeRunner {
	f.stubs = append(f.stubs, stub{prefix: prefix, err: err})
	return f
}

// Run records the command and returns the matching stub.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	line := CommandLine(name, args)
	f.calls = append(f.calls, line)

	for i := len(f.stubs) - 1; i >= 0; i-- {
		s := f.stubs[i]
		if !strings.HasPrefix(line, s.prefix) {
			continue
		}
		if s.err != nil {
			return s.result, s.err
		}
		if s.result.ExitCode != 0 {
			return s.result, commandError(name, args, s.result, fmt.Errorf("exit status %d", s.result.ExitCode))
		}
		return s.result, nil
	}
	return Result{}, nil
}

// Calls returns every command line run so far, in order.
func (f *FakeRunner) Calls() []string {
	return append([]string(nil), f.calls...)
}

// CallsWithPrefix returns the recorded command lines starting with prefix.
func (f *FakeRunner) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
