/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging configures the logr logger used across the converter.
//
// Code logs through a logr.Logger backed by zap. Verbosity follows logr conventions:
// Info is V(INFO), debugging detail is V(DEBUG), per-symbol tracing is V(TRACE).
package logging

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Log is the process-wide fallback logger. It discards until SetLogger is called.
var Log = logr.Discard()

// SetLogger replaces the fallback logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// ParseLevel maps a level name to a zap level. logr verbosity V(n) is zap level -n.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", DefaultLevel:
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger builds a console logger writing to stderr at the given level.
func NewLogger(level string) (logr.Logger, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.Sampling = nil

	zapLog, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building zap logger: %w", err)
	}
	return zapr.NewLogger(zapLog), nil
}

// NewTestLogger installs a development logger that writes to the Ginkgo writer at
// trace verbosity, so output only shows for failing specs.
func NewTestLogger() logr.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(ginkgo.GinkgoWriter),
		zapcore.Level(-TRACE),
	)
	l := zapr.NewLogger(zap.New(core))
	SetLogger(l)
	return l
}

// IntoContext returns a copy of ctx carrying l.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// FromContext returns the logger stored in ctx, or Log.
func FromContext(ctx context.Context) logr.Logger {
	if l, err := logr.FromContext(ctx); err == nil {
		return l
	}
	return Log
}
