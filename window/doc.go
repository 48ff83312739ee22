// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window is the windowing-surface helper of gpubridge: it turns
// platform windows into values that drivers can create surfaces for.
//
// Two kinds of windows are supported:
//
//   - Native wraps raw platform handles obtained elsewhere (an X11
//     Display*/Window pair, a Win32 HINSTANCE/HWND pair).
//   - GLFW wraps a GLFW window, either created here with Open or handed
//     over from C as a GLFWwindow* with FromPointer.
//
// Example:
//
//	w, err := window.Open(window.Config{Title: "gpubridge", Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	surface, err := inst.CreateSurfaceForWindow(w)
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before calling Open.
package window
