// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import "errors"

// Package errors.
var (
	// ErrNoDriver is returned when no driver is registered or the
	// requested one is not compiled in.
	ErrNoDriver = errors.New("gpubridge: no driver available")

	// ErrDestroyed is returned by operations on a destroyed Instance.
	ErrDestroyed = errors.New("gpubridge: instance destroyed")

	// ErrNoAdapter is returned by CreateDevice when discovery found no adapter
	// (or was never run).
	ErrNoAdapter = errors.New("gpubridge: no adapter discovered")

	// ErrDeviceCreationFailed is returned when the driver fails to create a device.
	ErrDeviceCreationFailed = errors.New("gpubridge: device creation failed")

	// ErrNilSurface is returned when a nil surface is configured.
	ErrNilSurface = errors.New("gpubridge: nil surface")

	// ErrInvalidConfig is returned for unusable configuration values.
	ErrInvalidConfig = errors.New("gpubridge: invalid config")
)
