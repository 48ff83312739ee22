// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "errors"

// Common driver errors.
var (
	// ErrNotAvailable is returned when a requested driver is not available.
	ErrNotAvailable = errors.New("driver: not available")

	// ErrNoBackend is returned when none of the requested graphics APIs
	// can be loaded.
	ErrNoBackend = errors.New("driver: no graphics backend available")

	// ErrUnsupportedWindow is returned when a surface cannot be created
	// for the given window type on this platform.
	ErrUnsupportedWindow = errors.New("driver: unsupported window")

	// ErrUnsupportedFormat is returned when a texture format has no
	// equivalent in the native library.
	ErrUnsupportedFormat = errors.New("driver: unsupported texture format")

	// ErrInvalidConfiguration is returned for unusable surface configurations.
	ErrInvalidConfiguration = errors.New("driver: invalid surface configuration")

	// ErrForeignObject is returned when an object created by one driver
	// is passed to another.
	ErrForeignObject = errors.New("driver: object belongs to a different driver")

	// ErrDeviceDestroyed is returned when a surface is configured for a
	// device that has already been destroyed.
	ErrDeviceDestroyed = errors.New("driver: device destroyed")
)
