// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// InstanceDescriptor describes a library instance.
type InstanceDescriptor struct {
	// Backends restricts the graphics APIs the instance may use.
	// Empty means any backend the driver supports.
	Backends []gputypes.Backend
}

// RequestAdapterOptions selects adapters during enumeration.
type RequestAdapterOptions struct {
	// PowerPreference orders adapters; HighPerformance puts discrete GPUs
	// first, LowPower puts integrated GPUs first.
	PowerPreference gputypes.PowerPreference

	// Backends restricts adapters to the given graphics APIs.
	// Empty means any backend.
	Backends []gputypes.Backend

	// ForceFallbackAdapter keeps only software (CPU) adapters.
	ForceFallbackAdapter bool

	// CompatibleSurface, if set, keeps only adapters that can present to it.
	CompatibleSurface Surface
}

// DeviceDescriptor describes a logical device.
type DeviceDescriptor struct {
	// Label is an optional debug label.
	Label string

	// RequiredFeatures lists features the device must enable.
	RequiredFeatures gputypes.Features

	// RequiredLimits, if set, replaces the default limits.
	RequiredLimits *gputypes.Limits
}

// Limits returns the limits to request: RequiredLimits if set,
// gputypes.DefaultLimits otherwise.
func (d *DeviceDescriptor) Limits() gputypes.Limits {
	if d == nil || d.RequiredLimits == nil {
		return gputypes.DefaultLimits()
	}
	return *d.RequiredLimits
}

// PresentMode controls how frames are presented to a surface.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota
	// PresentModeFifoRelaxed is Fifo, but late frames are presented immediately.
	PresentModeFifoRelaxed
	// PresentModeImmediate presents without waiting; may tear.
	PresentModeImmediate
	// PresentModeMailbox replaces the pending frame; no tearing, low latency.
	PresentModeMailbox
)

// String returns the present mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(m))
	}
}

// AlphaMode controls how a surface is composited with the desktop.
type AlphaMode uint8

const (
	// AlphaModeAuto lets the library pick Opaque or Inherit.
	AlphaModeAuto AlphaMode = iota
	AlphaModeOpaque
	AlphaModePreMultiplied
	AlphaModePostMultiplied
	AlphaModeInherit
)

// String returns the alpha mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaModeAuto:
		return "auto"
	case AlphaModeOpaque:
		return "opaque"
	case AlphaModePreMultiplied:
		return "premultiplied"
	case AlphaModePostMultiplied:
		return "postmultiplied"
	case AlphaModeInherit:
		return "inherit"
	default:
		return fmt.Sprintf("AlphaMode(%d)", uint8(m))
	}
}

// SurfaceConfiguration describes the swapchain of a Surface.
type SurfaceConfiguration struct {
	// Device presents to the surface. Required.
	Device Device

	// Format is the texture format of the swapchain images.
	Format gputypes.TextureFormat

	// Usage of the swapchain images. Zero means RenderAttachment.
	Usage gputypes.TextureUsage

	// Width and Height of the swapchain in pixels. Both must be non-zero.
	Width  uint32
	Height uint32

	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// Validate reports whether the configuration can be passed to a driver.
func (c *SurfaceConfiguration) Validate() error {
	switch {
	case c == nil:
		return fmt.Errorf("%w: nil configuration", ErrInvalidConfiguration)
	case c.Device == nil:
		return fmt.Errorf("%w: nil device", ErrInvalidConfiguration)
	case c.Width == 0 || c.Height == 0:
		return fmt.Errorf("%w: invalid size %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	case c.Format == gputypes.TextureFormatUndefined:
		return fmt.Errorf("%w: undefined format", ErrInvalidConfiguration)
	}
	return nil
}

// TextureUsage returns Usage, defaulting to RenderAttachment.
func (c *SurfaceConfiguration) TextureUsage() gputypes.TextureUsage {
	if c.Usage == 0 {
		return gputypes.TextureUsageRenderAttachment
	}
	return c.Usage
}
