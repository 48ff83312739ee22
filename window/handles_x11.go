// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo && (linux || freebsd || netbsd || openbsd) && !wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles returns the X11 Display* and Window XID.
func nativeHandles(w *glfw.Window) (uintptr, uintptr, error) {
	display := uintptr(unsafe.Pointer(glfw.GetX11Display()))
	xid := uintptr(w.GetX11Window())
	if display == 0 || xid == 0 {
		return 0, 0, ErrNoHandle
	}
	return display, xid, nil
}
