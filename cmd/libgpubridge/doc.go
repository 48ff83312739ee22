// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command libgpubridge builds gpubridge as a C shared library:
//
//	go build -tags rust -buildmode=c-shared -o libgpubridge.so ./cmd/libgpubridge
//
// A shared library needs cgo. The native driver calls into the system
// libraries through goffi, which refuses cgo builds outside Windows, so on
// Linux, macOS and FreeBSD the library links the rust driver only and must
// be built with -tags rust. Windows builds link both drivers.
//
// Objects cross the boundary as opaque handles; 0 is the null handle.
// The library keeps one current instance, the last one created, which the
// calls without an instance argument operate on. Destroying it clears the
// current adapter list and surface.
//
// GPUBRIDGE_CONFIG names a TOML configuration file and GPUBRIDGE_LOG
// enables logging to stderr; both are read when the first instance is
// created.
package main
