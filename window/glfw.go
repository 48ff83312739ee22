// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package window

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes a window created by Open.
type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// GLFW is a window managed by GLFW.
type GLFW struct {
	w *glfw.Window

	// owned is set for windows created by Open; Close then also
	// terminates GLFW.
	owned bool
	once  sync.Once
}

// FromGLFW wraps an existing GLFW window. Close destroys only the window.
func FromGLFW(w *glfw.Window) *GLFW {
	return &GLFW{w: w}
}

// FromPointer wraps a C GLFWwindow* created outside of Go, for example
// by the host of the gpubridge shared library.
// Returns nil for a nil pointer.
func FromPointer(p unsafe.Pointer) *GLFW {
	if p == nil {
		return nil
	}
	return &GLFW{w: glfw.GoWindow(p)}
}

// Open initializes GLFW and creates a window without a client API, ready
// for a WebGPU surface.
// IMPORTANT: must be called on the main OS thread.
func Open(cfg Config) (*GLFW, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}
	return &GLFW{w: w, owned: true}, nil
}

// GLFW returns the underlying GLFW window.
func (g *GLFW) GLFW() *glfw.Window { return g.w }

// NativeHandles returns the platform handles of the window.
func (g *GLFW) NativeHandles() (display, window uintptr, err error) {
	if g == nil || g.w == nil {
		return 0, 0, ErrNoHandle
	}
	return nativeHandles(g.w)
}

// Size returns the framebuffer size in pixels.
func (g *GLFW) Size() image.Point {
	w, h := g.w.GetFramebufferSize()
	return image.Point{X: w, Y: h}
}

// OnResize registers fn to be called with the new framebuffer size.
func (g *GLFW) OnResize(fn func(size image.Point)) {
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(image.Point{X: width, Y: height})
	})
}

// ShouldClose reports whether the user asked to close the window.
func (g *GLFW) ShouldClose() bool { return g.w.ShouldClose() }

// PollEvents processes pending events and reports whether the window
// is still open.
func (g *GLFW) PollEvents() bool {
	if g.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return !g.ShouldClose()
}

// Close destroys the window, and terminates GLFW if Open created it.
// Safe to call more than once.
func (g *GLFW) Close() {
	g.once.Do(func() {
		g.w.Destroy()
		if g.owned {
			glfw.Terminate()
		}
	})
}
