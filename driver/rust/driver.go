// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build rust

package rust

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge/driver"
)

// init registers the rust driver on package import.
func init() {
	driver.Register(driver.NameRust, func() driver.Driver {
		return &Driver{}
	})
}

// Driver is the wgpu-native driver.
// It implements the driver.Driver interface.
type Driver struct{}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return driver.NameRust
}

// CreateInstance creates a wgpu-native instance.
// wgpu-native picks its backends itself; desc.Backends is applied as an
// adapter filter instead.
func (d *Driver) CreateInstance(desc *driver.InstanceDescriptor) (driver.Instance, error) {
	raw := wgpu.CreateInstance(nil)
	if raw == nil {
		return nil, ErrLibraryNotFound
	}
	inst := &Instance{raw: raw}
	if desc != nil {
		inst.backends = desc.Backends
	}
	return inst, nil
}

// glfwWindow is implemented by windows backed by GLFW (see package window).
type glfwWindow interface {
	GLFW() *glfw.Window
}

// Instance wraps a *wgpu.Instance.
type Instance struct {
	raw      *wgpu.Instance
	backends []gputypes.Backend
}

// Raw returns the underlying wgpu-native instance.
func (i *Instance) Raw() *wgpu.Instance { return i.raw }

// EnumerateAdapters lists the wgpu-native adapters accepted by opts.
// A compatible surface is checked through the surface capabilities each
// adapter reports for it.
func (i *Instance) EnumerateAdapters(opts *driver.RequestAdapterOptions) ([]driver.Adapter, error) {
	var surface *Surface
	if opts != nil && opts.CompatibleSurface != nil {
		s, ok := opts.CompatibleSurface.(*Surface)
		if !ok {
			return nil, fmt.Errorf("rust: compatible surface: %w", driver.ErrForeignObject)
		}
		surface = s
	}

	raws := i.raw.EnumerateAdapters(nil)
	adapters := make([]driver.Adapter, 0, len(raws))
	for _, raw := range raws {
		a := newAdapter(raw)
		if surface != nil && len(surface.raw.GetCapabilities(raw).Formats) == 0 {
			driver.Logger().Debug("rust: adapter cannot present to surface", "adapter", a.info.Name)
			a.Release()
			continue
		}
		adapters = append(adapters, a)
	}

	adapters = driver.Filter(adapters, &driver.RequestAdapterOptions{Backends: i.backends})
	return driver.Filter(adapters, opts), nil
}

// CreateSurface creates a surface for a GLFW window.
func (i *Instance) CreateSurface(w driver.Window) (driver.Surface, error) {
	g, ok := w.(glfwWindow)
	if !ok || g.GLFW() == nil {
		return nil, fmt.Errorf("rust: %w: %T", driver.ErrUnsupportedWindow, w)
	}
	raw := i.raw.CreateSurface(wgpuglfw.GetSurfaceDescriptor(g.GLFW()))
	if raw == nil {
		return nil, ErrSurfaceCreation
	}
	return &Surface{raw: raw}, nil
}

// Release releases the instance.
func (i *Instance) Release() {
	i.raw.Release()
}

// Adapter wraps a *wgpu.Adapter. It is reference counted: devices created
// from it keep it alive, since surface configuration needs the adapter.
type Adapter struct {
	raw  *wgpu.Adapter
	info driver.AdapterInfo
	refs atomic.Int32
}

func newAdapter(raw *wgpu.Adapter) *Adapter {
	a := &Adapter{raw: raw, info: adapterInfo(raw.GetInfo())}
	a.refs.Store(1)
	return a
}

// Raw returns the underlying wgpu-native adapter.
func (a *Adapter) Raw() *wgpu.Adapter { return a.raw }

// Info describes the adapter.
func (a *Adapter) Info() driver.AdapterInfo { return a.info }

// RequestDevice creates a device with the library's default limits.
func (a *Adapter) RequestDevice(desc *driver.DeviceDescriptor) (driver.Device, error) {
	var label string
	if desc != nil {
		label = desc.Label
		if desc.RequiredLimits != nil || desc.RequiredFeatures != 0 {
			driver.Logger().Debug("rust: required features and limits are not forwarded", "label", label)
		}
	}

	raw, err := a.raw.RequestDevice(&wgpu.DeviceDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("rust: request device: %w", err)
	}
	queue := raw.GetQueue()
	if queue == nil {
		raw.Release()
		return nil, fmt.Errorf("rust: request device: queue retrieval failed")
	}

	a.refs.Add(1)
	return &Device{raw: raw, queue: queue, adapter: a}, nil
}

// Release drops one reference; the native adapter is released with the last.
func (a *Adapter) Release() {
	if a.refs.Add(-1) == 0 {
		a.raw.Release()
	}
}

// Device wraps a *wgpu.Device and its queue.
type Device struct {
	raw     *wgpu.Device
	queue   *wgpu.Queue
	adapter *Adapter
	once    sync.Once
}

// Raw returns the underlying wgpu-native device.
func (d *Device) Raw() *wgpu.Device { return d.raw }

// Queue returns the device queue as a *wgpu.Queue.
func (d *Device) Queue() driver.Queue { return d.queue }

// Poll drives device callbacks, blocking for submitted work if wait is set.
func (d *Device) Poll(wait bool) {
	d.raw.Poll(wait, nil)
}

// Destroy releases the queue and device, in reverse order of creation.
// Safe to call more than once.
func (d *Device) Destroy() {
	d.once.Do(func() {
		d.queue.Release()
		d.raw.Release()
		d.adapter.Release()
	})
}

// Surface wraps a *wgpu.Surface.
type Surface struct {
	mu         sync.Mutex
	raw        *wgpu.Surface
	configured bool
	release    sync.Once
}

// Raw returns the underlying wgpu-native surface.
func (s *Surface) Raw() *wgpu.Surface { return s.raw }

// Configure configures the swapchain for cfg.Device.
func (s *Surface) Configure(cfg *driver.SurfaceConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dev, ok := cfg.Device.(*Device)
	if !ok {
		return fmt.Errorf("rust: configure surface: %w", driver.ErrForeignObject)
	}
	format, err := textureFormat(cfg.Format)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw.Configure(dev.adapter.raw, dev.raw, &wgpu.SurfaceConfiguration{
		Usage:       textureUsage(cfg.TextureUsage()),
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: presentMode(cfg.PresentMode),
		AlphaMode:   alphaMode(cfg.AlphaMode),
	})
	s.configured = true
	return nil
}

// Unconfigure forgets the configuration. wgpu-native drops the swapchain
// when the surface is reconfigured or released.
func (s *Surface) Unconfigure() {
	s.mu.Lock()
	s.configured = false
	s.mu.Unlock()
}

// Release releases the surface. Safe to call more than once.
func (s *Surface) Release() {
	s.release.Do(func() {
		s.Unconfigure()
		s.raw.Release()
	})
}
