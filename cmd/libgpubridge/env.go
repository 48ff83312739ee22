// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gpubridge"
)

// Environment variables read when the first instance is created.
const (
	// envConfig names a TOML file in gpubridge.Config format.
	envConfig = "GPUBRIDGE_CONFIG"
	// envLog enables logging to stderr at the given level
	// (debug, info, warn, error).
	envLog = "GPUBRIDGE_LOG"
)

// settings is the library configuration derived from the environment.
type settings struct {
	options []gpubridge.Option
	surface gpubridge.SurfaceConfig
}

// loadSettings configures logging and reads the config file named by the
// environment. getenv is os.Getenv outside of tests.
func loadSettings(getenv func(string) string) (settings, error) {
	if lvl := getenv(envLog); lvl != "" {
		level, err := parseLevel(lvl)
		if err != nil {
			return settings{}, err
		}
		gpubridge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	cfg := gpubridge.DefaultConfig()
	if path := getenv(envConfig); path != "" {
		var err error
		if cfg, err = gpubridge.LoadConfig(path); err != nil {
			return settings{}, err
		}
		gpubridge.Logger().Info("libgpubridge: config loaded", "path", path)
	}

	opts, err := cfg.Options()
	if err != nil {
		return settings{}, err
	}
	return settings{options: opts, surface: cfg.Surface}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "1", "true":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("libgpubridge: %s: unknown log level %q", envLog, s)
}
