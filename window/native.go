// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"errors"
)

// ErrNoHandle is returned when a window has no native handle.
var ErrNoHandle = errors.New("window: no native window handle")

// Native is a platform window given by its raw handles.
//
// On X11, Display is the Display* and Handle the Window XID.
// On Windows, Display is the HINSTANCE and Handle the HWND.
type Native struct {
	Display uintptr
	Handle  uintptr
}

// NativeHandles returns the display and window handles.
func (n Native) NativeHandles() (display, window uintptr, err error) {
	if n.Handle == 0 {
		return 0, 0, ErrNoHandle
	}
	return n.Display, n.Handle, nil
}
