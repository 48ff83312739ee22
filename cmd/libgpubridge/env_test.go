// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gpubridge"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings(env(nil))
	if err != nil {
		t.Fatalf("loadSettings() = %v", err)
	}
	if s.surface != gpubridge.DefaultConfig().Surface {
		t.Errorf("surface = %+v, want defaults", s.surface)
	}
	if len(s.options) == 0 {
		t.Error("no options derived from the default config")
	}
}

func TestLoadSettingsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpubridge.toml")
	data := "driver = \"native\"\n[surface]\nformat = \"rgba8unorm\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(env(map[string]string{envConfig: path}))
	if err != nil {
		t.Fatalf("loadSettings() = %v", err)
	}
	if s.surface.Format != "rgba8unorm" {
		t.Errorf("surface format = %q, want rgba8unorm", s.surface.Format)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte(`power-preference = "turbo"`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSettings(env(map[string]string{envConfig: bad})); !errors.Is(err, gpubridge.ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, want ErrInvalidConfig", err)
	}
	if _, err := loadSettings(env(map[string]string{envLog: "loud"})); err == nil {
		t.Error("unknown log level accepted")
	}
}

func TestLoadSettingsEnablesLogging(t *testing.T) {
	orig := gpubridge.Logger()
	t.Cleanup(func() { gpubridge.SetLogger(orig) })

	if _, err := loadSettings(env(map[string]string{envLog: "debug"})); err != nil {
		t.Fatalf("loadSettings() = %v", err)
	}
	if !gpubridge.Logger().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("GPUBRIDGE_LOG=debug did not enable debug logging")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"1", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}
