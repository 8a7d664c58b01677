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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "deployment not found")

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "deployment not found" {
		t.Errorf("expected message 'deployment not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeCommandFailed, "kubectl apply failed", cause)

	if err.Code != ErrCodeCommandFailed {
		t.Errorf("expected code %s, got %s", ErrCodeCommandFailed, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("exit status 1")
	ctx := map[string]any{
		"command": "kubectl cluster-info",
		"stderr":  "connection refused",
	}

	err := WrapWithContext(ErrCodeCommandFailed, "cluster-info failed", cause, ctx)

	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["stderr"] != "connection refused" {
		t.Errorf("expected stderr to be carried in context")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidConfig, "policy file missing"),
			expected: "[INVALID_CONFIG] policy file missing",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "write failed", errors.New("disk full")),
			expected: "[IO] write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeToolNotFound, "helm"), ErrCodeToolNotFound},
		{"wrapped by fmt", fmt.Errorf("install: %w", New(ErrCodeCommandFailed, "helm")), ErrCodeCommandFailed},
		{"outermost wins", Wrap(ErrCodeUnavailable, "connect", New(ErrCodeCommandFailed, "kubectl")), ErrCodeUnavailable},
		{"plain error", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeCommandFailed, "kubectl exited 1")
	outer := fmt.Errorf("deploy: %w", Wrap(ErrCodeUnavailable, "cluster unreachable", inner))

	if !Is(outer, ErrCodeUnavailable) {
		t.Error("expected outer code to match")
	}
	if !Is(outer, ErrCodeCommandFailed) {
		t.Error("expected inner code to match")
	}
	if Is(outer, ErrCodeIO) {
		t.Error("unexpected match for IO")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("nil error must not match")
	}
}
