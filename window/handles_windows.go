// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo && windows

package window

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"
)

// nativeHandles returns the HINSTANCE of the executable and the HWND.
func nativeHandles(w *glfw.Window) (uintptr, uintptr, error) {
	hwnd := uintptr(unsafe.Pointer(w.GetWin32Window()))
	if hwnd == 0 {
		return 0, 0, ErrNoHandle
	}

	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, 0, fmt.Errorf("window: module handle: %w", err)
	}
	return uintptr(module), hwnd, nil
}
