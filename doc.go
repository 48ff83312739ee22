// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpubridge exposes the instance, adapter, device and surface
// lifecycle of a native WebGPU implementation.
//
// # Overview
//
// gpubridge does not render and does not implement any GPU semantics. It
// forwards to a driver (package driver) that links the real GPU library,
// and keeps just enough state to make the lifecycle usable from a foreign
// caller: the adapters found by the last discovery and a current surface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpubridge"
//	    _ "github.com/gogpu/gpubridge/driver/native"
//	)
//
//	inst, err := gpubridge.New()
//	if err != nil {
//	    return err
//	}
//	defer inst.Destroy()
//
//	if err := inst.DiscoverDefaultAdapters(); err != nil {
//	    return err
//	}
//	dev, err := inst.CreateDevice(nil)
//	if err != nil {
//	    return err
//	}
//	defer dev.Release()
//
// # Surfaces
//
// A surface is created for a platform window with CreateSurfaceForWindow
// (see package window) or handed in with SetSurface. The current surface
// is used as the compatibility hint of the next DiscoverDefaultAdapters,
// so create the surface first when the device will present to it.
//
// # C Linkage
//
// cmd/libgpubridge builds the same lifecycle as a C shared library.
//
// # Logging
//
// gpubridge is silent by default; see SetLogger.
package gpubridge
