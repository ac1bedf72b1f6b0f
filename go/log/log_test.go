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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		format, level string
		enabled       slog.Level
		disabled      slog.Level
		wantErr       bool
	}{
		{format: "json", level: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1},
		{format: "LOGFMT", level: " INFO ", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{format: "json", level: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{format: "json", level: "Error", enabled: slog.LevelError, disabled: slog.LevelWarn},
		{format: "json", level: "trace", wantErr: true},
		{format: "xml", level: "info", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.format+"/"+tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tc.format, tc.level)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Enabled(t.Context(), tc.enabled))
			assert.False(t, logger.Enabled(t.Context(), tc.disabled))
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "json", "info")
	require.NoError(t, err)
	logger.Info("resolved", "backend", "charmap")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "resolved", got["msg"])
	assert.Equal(t, "charmap", got["backend"])
	assert.Contains(t, got, "source")
}

func TestGlogLine(t *testing.T) {
	assert.Equal(t, "serving", glogLine("serving", nil))
	assert.Equal(t, "serving addr=:15999", glogLine("serving", []any{"addr", ":15999"}))
	assert.Equal(t, "failed n=2 dangling", glogLine("failed", []any{"n", 2, "dangling"}))
}

func TestInitWithoutFormatFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Init(fs))
	assert.Nil(t, structured.Load())

	require.NoError(t, Init(nil))
}

func TestInitRejectsBadLevel(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=logfmt", "--log-level=loud"}))
	assert.Error(t, Init(fs))
	assert.Nil(t, structured.Load())
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	InfoS("hidden")
	WarnS("resolve failed", "encodings", "UTF-16")
	ErrorS("command failed", "error", "boom")
	restore()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "resolve failed")
	assert.Contains(t, buf.String(), "encodings=UTF-16")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
	assert.Nil(t, structured.Load())

	assert.NotPanics(t, func() { SetLogger(nil)() })
}
