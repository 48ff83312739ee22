// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build rust

package rust

import "errors"

// Package errors for the rust driver.
var (
	// ErrLibraryNotFound is returned when wgpu-native cannot create an instance.
	ErrLibraryNotFound = errors.New("rust: wgpu-native instance creation failed")

	// ErrSurfaceCreation is returned when wgpu-native returns no surface.
	ErrSurfaceCreation = errors.New("rust: surface creation failed")
)
