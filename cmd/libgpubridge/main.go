// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef uintptr_t GpuBridgeInstance;
typedef uintptr_t GpuBridgeLibraryInstance;
typedef uintptr_t GpuBridgeAdapter;
typedef uintptr_t GpuBridgeDevice;
typedef uintptr_t GpuBridgeSurface;

typedef enum GpuBridgeStatus {
	GPUBRIDGE_STATUS_OK = 0,
	GPUBRIDGE_STATUS_ERROR = 1,
	GPUBRIDGE_STATUS_INVALID_HANDLE = 2,
} GpuBridgeStatus;

typedef enum GpuBridgePresentMode {
	GPUBRIDGE_PRESENT_MODE_FIFO = 0,
	GPUBRIDGE_PRESENT_MODE_FIFO_RELAXED = 1,
	GPUBRIDGE_PRESENT_MODE_IMMEDIATE = 2,
	GPUBRIDGE_PRESENT_MODE_MAILBOX = 3,
} GpuBridgePresentMode;

typedef enum GpuBridgeAlphaMode {
	GPUBRIDGE_ALPHA_MODE_AUTO = 0,
	GPUBRIDGE_ALPHA_MODE_OPAQUE = 1,
	GPUBRIDGE_ALPHA_MODE_PREMULTIPLIED = 2,
	GPUBRIDGE_ALPHA_MODE_POSTMULTIPLIED = 3,
	GPUBRIDGE_ALPHA_MODE_INHERIT = 4,
} GpuBridgeAlphaMode;

typedef struct GpuBridgeDeviceDescriptor {
	const char* label;
} GpuBridgeDeviceDescriptor;

// format is a name such as "bgra8unorm-srgb"; NULL selects the configured
// default. usage 0 selects render attachment.
typedef struct GpuBridgeSurfaceConfiguration {
	GpuBridgeDevice device;
	const char* format;
	uint32_t usage;
	uint32_t width;
	uint32_t height;
	GpuBridgePresentMode presentMode;
	GpuBridgeAlphaMode alphaMode;
} GpuBridgeSurfaceConfiguration;
*/
import "C"

import (
	"errors"
	"os"
	"sync"
	"unsafe"

	"github.com/gogpu/gpubridge/driver"
	"github.com/gogpu/gpubridge/window"
)

var lib = newLibrary(os.Getenv)

// status maps a library error to the C status code.
func status(err error) C.GpuBridgeStatus {
	switch {
	case err == nil:
		return C.GPUBRIDGE_STATUS_OK
	case errors.Is(err, errInvalidHandle):
		return C.GPUBRIDGE_STATUS_INVALID_HANDLE
	default:
		return C.GPUBRIDGE_STATUS_ERROR
	}
}

//export gpubridgeCreate
func gpubridgeCreate() C.GpuBridgeInstance {
	h, _ := lib.create()
	return C.GpuBridgeInstance(h)
}

//export gpubridgeDestroy
func gpubridgeDestroy(h C.GpuBridgeInstance) {
	_ = lib.destroy(uintptr(h))
}

// gpubridgeGetInstance returns the handle of the driver-level instance
// wrapped by h, stable until h is destroyed.
//
//export gpubridgeGetInstance
func gpubridgeGetInstance(h C.GpuBridgeInstance) C.GpuBridgeLibraryInstance {
	raw, _ := lib.rawInstance(uintptr(h))
	return C.GpuBridgeLibraryInstance(raw)
}

//export gpubridgeDiscoverDefaultAdapters
func gpubridgeDiscoverDefaultAdapters(h C.GpuBridgeInstance) C.GpuBridgeStatus {
	return status(lib.discover(uintptr(h)))
}

// gpubridgeSetSurface makes s the current surface of the current
// instance; 0 clears it.
//
//export gpubridgeSetSurface
func gpubridgeSetSurface(s C.GpuBridgeSurface) {
	_ = lib.setSurface(uintptr(s))
}

//export gpubridgeGetSurface
func gpubridgeGetSurface() C.GpuBridgeSurface {
	return C.GpuBridgeSurface(lib.currentSurface())
}

// gpubridgeCreateSurfaceForWindow creates a surface for a GLFWwindow* and
// makes it the current surface.
//
//export gpubridgeCreateSurfaceForWindow
func gpubridgeCreateSurfaceForWindow(h C.GpuBridgeInstance, glfwWindow unsafe.Pointer) C.GpuBridgeSurface {
	var w driver.Window
	if g := window.FromPointer(glfwWindow); g != nil {
		w = g
	}
	s, _ := lib.createSurface(uintptr(h), w)
	return C.GpuBridgeSurface(s)
}

// gpubridgeGetAdapter returns the first adapter of the current instance,
// or 0 when discovery found none.
//
//export gpubridgeGetAdapter
func gpubridgeGetAdapter() C.GpuBridgeAdapter {
	return C.GpuBridgeAdapter(lib.adapter())
}

// gpubridgeCreateDevice creates a device on the first adapter of the
// current instance. desc may be NULL.
//
//export gpubridgeCreateDevice
func gpubridgeCreateDevice(desc *C.GpuBridgeDeviceDescriptor) C.GpuBridgeDevice {
	var d *driver.DeviceDescriptor
	if desc != nil && desc.label != nil {
		d = &driver.DeviceDescriptor{Label: C.GoString(desc.label)}
	}
	h, _ := lib.createDevice(d)
	return C.GpuBridgeDevice(h)
}

//export gpubridgeReleaseDevice
func gpubridgeReleaseDevice(h C.GpuBridgeDevice) {
	_ = lib.releaseDevice(uintptr(h))
}

//export gpubridgeConfigureSurface
func gpubridgeConfigureSurface(s C.GpuBridgeSurface, config *C.GpuBridgeSurfaceConfiguration) C.GpuBridgeStatus {
	var p *surfaceParams
	if config != nil {
		p = &surfaceParams{
			device:      uintptr(config.device),
			usage:       uint32(config.usage),
			width:       uint32(config.width),
			height:      uint32(config.height),
			presentMode: driver.PresentMode(config.presentMode),
			alphaMode:   driver.AlphaMode(config.alphaMode),
		}
		if config.format != nil {
			p.format = C.GoString(config.format)
		}
	}
	return status(lib.configureSurface(uintptr(s), p))
}

// gpubridgeDriverName returns the name of the driver behind h. The string
// is owned by the library.
//
//export gpubridgeDriverName
func gpubridgeDriverName(h C.GpuBridgeInstance) *C.char {
	name, err := lib.driverName(uintptr(h))
	if err != nil {
		return nil
	}
	return cstrings.intern(name)
}

// gpubridgeGetLastError returns the message of the last failed call, or
// NULL. The string is owned by the library and stays valid until the
// next call to gpubridgeGetLastError.
//
//export gpubridgeGetLastError
func gpubridgeGetLastError() *C.char {
	return cstrings.lastError(lib.lastError())
}

// cstrings keeps the C strings handed out by the library alive.
var cstrings = &cstringCache{names: make(map[string]*C.char)}

type cstringCache struct {
	mu sync.Mutex

	// names lives as long as the process.
	names map[string]*C.char

	lastMsg string
	last    *C.char
}

func (c *cstringCache) intern(name string) *C.char {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.names[name]; ok {
		return s
	}
	s := C.CString(name)
	c.names[name] = s
	return s
}

// lastError returns msg as a C string, reusing the previous copy when the
// message has not changed.
func (c *cstringCache) lastError(msg string) *C.char {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg == "" {
		return nil
	}
	if c.last != nil && msg == c.lastMsg {
		return c.last
	}
	if c.last != nil {
		C.free(unsafe.Pointer(c.last))
	}
	c.lastMsg, c.last = msg, C.CString(msg)
	return c.last
}
