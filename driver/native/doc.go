// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides the Pure Go gpubridge driver, built on the
// hardware abstraction layer of gogpu/wgpu.
//
// Import it for its side effect of registering the "native" driver:
//
//	import _ "github.com/gogpu/gpubridge/driver/native"
//
// The Vulkan HAL backend is linked in by this package. Other HAL backends
// (Metal, DX12, GL) are used when their packages are imported and
// registered with hal.
//
// Building with -tags nogpu replaces the driver with a stub whose factory
// returns nil.
package native
