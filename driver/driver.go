// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"github.com/gogpu/gputypes"
)

// Driver is the entry point of a native GPU library.
// It plays the role of the library's procedure table: everything gpubridge
// does is forwarded through it.
type Driver interface {
	// Name returns the driver identifier (e.g., "native", "rust").
	Name() string

	// CreateInstance creates a new library instance.
	CreateInstance(desc *InstanceDescriptor) (Instance, error)
}

// Instance is one instance of the native GPU library.
type Instance interface {
	// EnumerateAdapters returns every adapter that satisfies opts.
	// A nil opts matches all adapters. The returned order is the
	// library's; callers apply their own preference ordering.
	EnumerateAdapters(opts *RequestAdapterOptions) ([]Adapter, error)

	// CreateSurface creates a presentable surface for a platform window.
	CreateSurface(w Window) (Surface, error)

	// Release destroys the instance. Adapters and surfaces created
	// from it must be released first.
	Release()
}

// Adapter is a physical or virtual GPU exposed by an Instance.
type Adapter interface {
	// Info describes the adapter.
	Info() AdapterInfo

	// RequestDevice creates a logical device on this adapter.
	RequestDevice(desc *DeviceDescriptor) (Device, error)

	// Release drops the adapter.
	Release()
}

// Device is a logical GPU context created from an Adapter.
//
// gpucontext.Device is an opaque value, so a Device can be handed to gogpu
// hosts directly; they reach Poll through a type assertion.
type Device interface {
	// Queue returns the device's command queue.
	Queue() Queue

	// Poll processes pending device callbacks. If wait is true it blocks
	// until submitted work has completed.
	Poll(wait bool)

	// Destroy releases the device and its queue.
	Destroy()
}

// Queue is the command queue of a Device.
// Drivers return their native queue value; gpubridge never submits work.
type Queue any

// Surface is a drawable target bound to a platform window.
type Surface interface {
	// Configure (re)configures the swapchain of the surface.
	Configure(cfg *SurfaceConfiguration) error

	// Unconfigure drops the current configuration, if any.
	Unconfigure()

	// Release destroys the surface.
	Release()
}

// Window is a platform window that a Surface can be created for.
type Window interface {
	// NativeHandles returns the platform display handle (X11 Display*,
	// Win32 HINSTANCE, ...) and the window handle (X11 Window, HWND, ...).
	NativeHandles() (display, window uintptr, err error)
}

// AdapterInfo describes an Adapter.
type AdapterInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// Driver is the driver version string.
	Driver string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
}
