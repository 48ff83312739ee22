// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the seam between gpubridge and the native GPU
// library that actually enumerates adapters, creates devices and configures
// surfaces.
//
// # Driver Registration
//
// Drivers register themselves from init() functions and are selected at
// runtime. Import the driver packages you want linked in:
//
//	import _ "github.com/gogpu/gpubridge/driver/native" // Pure Go (gogpu/wgpu)
//	import _ "github.com/gogpu/gpubridge/driver/rust"   // wgpu-native, -tags rust
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request a
// specific one by name:
//
//	d := driver.Default()
//	d := driver.Get(driver.NameNative)
//
// The priority order is rust, then native: wgpu-native is the reference
// implementation, the Pure Go driver is the portable fallback.
//
// # Ownership
//
// Objects returned by a driver are owned by the caller and must be released
// exactly once. Adapters are released by their Instance when the adapter
// list is replaced; devices and surfaces are released explicitly.
package driver
