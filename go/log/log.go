/*
Copyright 2026 The Vitess Authors.

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

// Package log routes logging through glog, or through slog once --log-fmt
// is given on the command line.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

var (
	flagFormat string
	flagLevel  string

	// structured is the slog logger in use. Nil means glog.
	structured atomic.Pointer[slog.Logger]
)

var handlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"json": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewJSONHandler(w, opts)
	},
	"logfmt": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewTextHandler(w, opts)
	},
}

// RegisterFlags installs --log-fmt and --log-level on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagFormat, "log-fmt", "json", "structured log output format: json or logfmt")
	fs.StringVar(&flagLevel, "log-level", "info", "minimum structured log level: debug, info, warn or error")
}

// Init switches to structured logging on stderr if --log-fmt was set on fs.
// Otherwise glog stays in charge and --log-level is ignored.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}

	logger, err := newLogger(os.Stderr, flagFormat, flagLevel)
	if err != nil {
		return err
	}
	structured.Store(logger)
	return nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", level, err)
	}

	newHandler, ok := handlers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
	}
	return slog.New(newHandler(w, &slog.HandlerOptions{AddSource: true, Level: lvl})), nil
}

// emit must be called directly from an exported logging function so that
// the reported source is that function's caller.
func emit(level slog.Level, msg string, args []any) {
	logger := structured.Load()
	if logger == nil {
		toGlog(level, msg, args)
		return
	}

	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}

func toGlog(level slog.Level, msg string, args []any) {
	const depth = 3
	switch {
	case level >= slog.LevelError:
		glog.ErrorDepth(depth, glogLine(msg, args))
	case level >= slog.LevelWarn:
		glog.WarningDepth(depth, glogLine(msg, args))
	case level >= slog.LevelInfo, bool(glog.V(1)):
		glog.InfoDepth(depth, glogLine(msg, args))
	}
}

// glogLine renders args as space separated key=value pairs after msg.
func glogLine(msg string, args []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fmt.Fprintf(&b, " %v", args[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	return b.String()
}

// InfoS logs msg and key/value args at the Info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, msg, args) }

// WarnS logs msg and key/value args at the Warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, msg, args) }

// DebugS logs msg and key/value args at the Debug level. Under glog it needs
// -v=1 or higher.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, msg, args) }

// ErrorS logs msg and key/value args at the Error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, msg, args) }

// SetLogger makes logger the structured logger and returns a function that
// puts the previous one back. Meant for tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}
	prev := structured.Swap(logger)
	return func() { structured.Store(prev) }
}
