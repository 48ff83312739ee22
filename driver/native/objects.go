// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gpubridge/driver"
)

// Instance wraps a hal.Instance.
type Instance struct {
	raw hal.Instance
}

// Raw returns the underlying HAL instance.
func (i *Instance) Raw() hal.Instance { return i.raw }

// EnumerateAdapters lists the HAL adapters accepted by opts.
// When opts.CompatibleSurface is set it is passed to HAL as the surface
// hint, so only adapters able to present to it are returned.
func (i *Instance) EnumerateAdapters(opts *driver.RequestAdapterOptions) ([]driver.Adapter, error) {
	var hint hal.Surface
	if opts != nil && opts.CompatibleSurface != nil {
		s, ok := opts.CompatibleSurface.(*Surface)
		if !ok {
			return nil, fmt.Errorf("native: compatible surface: %w", driver.ErrForeignObject)
		}
		hint = s.raw
	}

	exposed := i.raw.EnumerateAdapters(hint)
	adapters := make([]driver.Adapter, 0, len(exposed))
	for idx := range exposed {
		adapters = append(adapters, &Adapter{exposed: exposed[idx]})
	}
	return driver.Filter(adapters, opts), nil
}

// CreateSurface creates a HAL surface from the window's native handles.
func (i *Instance) CreateSurface(w driver.Window) (driver.Surface, error) {
	if w == nil {
		return nil, driver.ErrUnsupportedWindow
	}
	display, window, err := w.NativeHandles()
	if err != nil {
		return nil, err
	}
	raw, err := i.raw.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("native: create surface: %w", err)
	}
	return &Surface{raw: raw}, nil
}

// Release destroys the HAL instance.
func (i *Instance) Release() {
	i.raw.Destroy()
}

// Adapter wraps a hal.ExposedAdapter.
type Adapter struct {
	exposed hal.ExposedAdapter
}

// Raw returns the underlying HAL adapter.
func (a *Adapter) Raw() hal.Adapter { return a.exposed.Adapter }

// Info describes the adapter.
func (a *Adapter) Info() driver.AdapterInfo {
	info := a.exposed.Info
	return driver.AdapterInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		Driver:     info.Driver,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
	}
}

// RequestDevice opens a logical device on the adapter.
func (a *Adapter) RequestDevice(desc *driver.DeviceDescriptor) (driver.Device, error) {
	features := gputypes.Features(0)
	if desc != nil {
		features = desc.RequiredFeatures
	}

	open, err := a.exposed.Adapter.Open(features, desc.Limits())
	if err != nil {
		return nil, fmt.Errorf("native: open device: %w", err)
	}
	return &Device{raw: open.Device, queue: open.Queue}, nil
}

// Release is a no-op: HAL adapters are owned by their instance.
func (a *Adapter) Release() {}

// Device wraps a hal.Device and its queue.
type Device struct {
	raw   hal.Device
	queue hal.Queue
	once  sync.Once

	mu        sync.Mutex
	surfaces  map[*Surface]struct{}
	destroyed bool
}

// Raw returns the underlying HAL device.
func (d *Device) Raw() hal.Device { return d.raw }

// Queue returns the device queue as a hal.Queue.
func (d *Device) Queue() driver.Queue { return d.queue }

// Poll is a no-op: HAL queue submissions complete through fences, there is
// no callback queue to drain.
func (d *Device) Poll(bool) {}

// Destroy unconfigures every surface still configured for the device, then
// releases it. Safe to call more than once.
func (d *Device) Destroy() {
	d.once.Do(func() {
		d.mu.Lock()
		d.destroyed = true
		surfaces := d.surfaces
		d.surfaces = nil
		d.mu.Unlock()

		for s := range surfaces {
			s.detach(d)
		}
		d.raw.Destroy()
	})
}

// track records s as configured for d. It reports false once d is destroyed.
func (d *Device) track(s *Surface) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return false
	}
	if d.surfaces == nil {
		d.surfaces = make(map[*Surface]struct{})
	}
	d.surfaces[s] = struct{}{}
	return true
}

func (d *Device) untrack(s *Surface) {
	d.mu.Lock()
	delete(d.surfaces, s)
	d.mu.Unlock()
}

// Surface wraps a hal.Surface.
//
// Lock order is Surface.mu before Device.mu.
type Surface struct {
	mu         sync.Mutex
	raw        hal.Surface
	configured *Device
	release    sync.Once
}

// Raw returns the underlying HAL surface.
func (s *Surface) Raw() hal.Surface { return s.raw }

// Configure configures the swapchain for cfg.Device.
func (s *Surface) Configure(cfg *driver.SurfaceConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dev, ok := cfg.Device.(*Device)
	if !ok {
		return fmt.Errorf("native: configure surface: %w", driver.ErrForeignObject)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.configured != nil && s.configured != dev {
		s.configured.untrack(s)
		s.raw.Unconfigure(s.configured.raw)
		s.configured = nil
	}
	if !dev.track(s) {
		return fmt.Errorf("native: configure surface: %w", driver.ErrDeviceDestroyed)
	}

	err := s.raw.Configure(dev.raw, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       cfg.TextureUsage(),
		PresentMode: presentMode(cfg.PresentMode),
		AlphaMode:   alphaMode(cfg.AlphaMode),
	})
	if err != nil {
		if s.configured == nil {
			dev.untrack(s)
		}
		return fmt.Errorf("native: configure surface: %w", err)
	}
	s.configured = dev
	return nil
}

// Unconfigure drops the swapchain, if configured.
func (s *Surface) Unconfigure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.configured == nil {
		return
	}
	s.configured.untrack(s)
	s.raw.Unconfigure(s.configured.raw)
	s.configured = nil
}

// detach unconfigures s if it is still configured for d, which is being
// destroyed and no longer tracks s.
func (s *Surface) detach(d *Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.configured != d {
		return
	}
	s.raw.Unconfigure(d.raw)
	s.configured = nil
}

// Release unconfigures and destroys the surface. Safe to call more than once.
func (s *Surface) Release() {
	s.release.Do(func() {
		s.Unconfigure()
		s.raw.Destroy()
	})
}

func presentMode(m driver.PresentMode) hal.PresentMode {
	switch m {
	case driver.PresentModeFifoRelaxed:
		return hal.PresentModeFifoRelaxed
	case driver.PresentModeImmediate:
		return hal.PresentModeImmediate
	case driver.PresentModeMailbox:
		return hal.PresentModeMailbox
	default:
		return hal.PresentModeFifo
	}
}

// alphaMode maps PostMultiplied to HAL's Unpremultiplied; unknown modes
// fall back to Opaque.
func alphaMode(m driver.AlphaMode) hal.CompositeAlphaMode {
	switch m {
	case driver.AlphaModeAuto:
		return hal.CompositeAlphaModeAuto
	case driver.AlphaModePreMultiplied:
		return hal.CompositeAlphaModePremultiplied
	case driver.AlphaModePostMultiplied:
		return hal.CompositeAlphaModeUnpremultiplied
	case driver.AlphaModeInherit:
		return hal.CompositeAlphaModeInherit
	default:
		return hal.CompositeAlphaModeOpaque
	}
}
