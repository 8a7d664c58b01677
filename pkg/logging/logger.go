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

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable consulted when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// ParseLogLevel converts a level name into a slog.Level.
// Unknown or empty names map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelOrEnv returns level, or the LOG_LEVEL value when level is empty.
func levelOrEnv(level string) string {
	if level != "" {
		return level
	}
	return os.Getenv(EnvLogLevel)
}

func handlerOptions(lvl slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}
}

// NewStructuredLogger returns a JSON logger writing to stderr with module and
// version attached to every record.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newJSONLogger(os.Stderr, module, version, level)
}

func newJSONLogger(w io.Writer, module, version, level string) *slog.Logger {
	h := slog.NewJSONHandler(w, handlerOptions(ParseLogLevel(levelOrEnv(level))))
	return slog.New(h).With("module", module, "version", version)
}

// NewCLILogger returns a text logger writing to w. Module and version are
// only attached at debug level to keep operator output short.
func NewCLILogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLogLevel(levelOrEnv(level))
	logger := slog.New(slog.NewTextHandler(w, handlerOptions(lvl)))
	if lvl <= slog.LevelDebug {
		logger = logger.With("module", module, "version", version)
	}
	return logger
}

// SetDefaultStructuredLogger installs a JSON logger as the slog default,
// taking the level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, "")
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger with an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// SetDefaultCLILogger installs a text logger on stderr as the slog default.
func SetDefaultCLILogger(module, version, level string) {
	slog.SetDefault(NewCLILogger(os.Stderr, module, version, level))
}
