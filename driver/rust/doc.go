// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rust provides the gpubridge driver backed by wgpu-native, the
// Rust WebGPU implementation, through the cgo bindings of
// cogentcore/webgpu.
//
// The driver is opt-in because it needs cgo and links the native library:
//
//	go build -tags rust
//
// and import the package for its side effect:
//
//	import _ "github.com/gogpu/gpubridge/driver/rust"
//
// Without the rust tag the package registers a factory returning nil, so
// driver.Default() falls back to the native driver.
//
// # Windows
//
// Surfaces are created for GLFW windows only (see package window), using
// the platform surface descriptor built by wgpuglfw.
//
// # Device limits
//
// Devices are requested with the library's default limits and no optional
// features; RequiredFeatures and RequiredLimits of the descriptor are not
// forwarded.
package rust
