// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo && !windows && (!(linux || freebsd || netbsd || openbsd) || wayland)

package window

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// errNoRawHandles is returned where a surface needs more than a window
// handle (a CAMetalLayer on macOS, a wl_surface on Wayland). The rust
// driver builds those surfaces from the GLFW window itself.
var errNoRawHandles = errors.New("window: raw handles unsupported on this platform, use the rust driver")

func nativeHandles(*glfw.Window) (uintptr, uintptr, error) {
	return 0, 0, errNoRawHandles
}
