// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpubridge/driver"
)

// AdapterInfo describes a discovered adapter.
type AdapterInfo = driver.AdapterInfo

// Instance is one instance of the native GPU library together with the
// adapters found by the last discovery and the current surface.
//
// Instance is safe for concurrent use from multiple goroutines.
type Instance struct {
	mu sync.RWMutex

	drv  driver.Driver
	raw  driver.Instance
	opts options

	// adapters holds the result of the last discovery, best first.
	adapters []driver.Adapter

	// surface is the current surface: the compatibility hint for discovery.
	surface driver.Surface

	// owned are the surfaces created by CreateSurfaceForWindow; they are
	// released by Destroy. Surfaces passed to SetSurface are not.
	owned []driver.Surface

	// devices maps live driver devices to their Device, so surface
	// configuration can record the presentation format.
	devices map[driver.Device]*Device

	destroyed bool
}

// New creates an Instance on the driver selected by opts.
func New(opts ...Option) (*Instance, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	drv, err := o.resolveDriver()
	if err != nil {
		return nil, err
	}

	raw, err := drv.CreateInstance(&driver.InstanceDescriptor{Backends: o.adapter.Backends})
	if err != nil {
		return nil, fmt.Errorf("gpubridge: %s: %w", drv.Name(), err)
	}

	Logger().Info("gpubridge: instance created", "driver", drv.Name())
	return &Instance{
		drv:     drv,
		raw:     raw,
		opts:    o,
		devices: make(map[driver.Device]*Device),
	}, nil
}

// Destroy releases the adapters, the surfaces created by the instance and
// the library instance, and clears the adapter list and current surface.
// Devices are owned by the caller and must be released before Destroy.
// Destroy is idempotent.
func (i *Instance) Destroy() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return
	}

	// Release resources in reverse order of creation.
	i.releaseAdapters()
	for _, s := range i.owned {
		s.Release()
	}
	i.owned = nil
	i.surface = nil
	if len(i.devices) > 0 {
		Logger().Warn("gpubridge: instance destroyed with live devices", "count", len(i.devices))
	}
	i.raw.Release()
	i.raw = nil
	i.destroyed = true

	Logger().Info("gpubridge: instance destroyed", "driver", i.drv.Name())
}

// Raw returns the underlying driver instance, or nil after Destroy.
func (i *Instance) Raw() driver.Instance {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.raw
}

// Driver returns the driver the instance forwards to.
func (i *Instance) Driver() driver.Driver {
	return i.drv
}

// DiscoverDefaultAdapters enumerates the adapters matching the instance
// options, using the current surface as compatibility hint, and replaces
// the adapter list with them, best first.
//
// On error the previous list is kept. An empty result is not an error:
// Adapter then returns nil and CreateDevice returns ErrNoAdapter.
func (i *Instance) DiscoverDefaultAdapters() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return ErrDestroyed
	}

	req := i.opts.adapter
	req.CompatibleSurface = i.surface
	adapters, err := i.raw.EnumerateAdapters(&req)
	if err != nil {
		return fmt.Errorf("gpubridge: discover adapters: %w", err)
	}
	driver.SortAdapters(adapters, req.PowerPreference)

	i.releaseAdapters()
	i.adapters = adapters

	if len(adapters) == 0 {
		Logger().Warn("gpubridge: no adapter found", "driver", i.drv.Name())
		return nil
	}
	Logger().Info("gpubridge: adapters discovered",
		"count", len(adapters), "selected", adapters[0].Info().String())
	for idx, a := range adapters {
		Logger().Debug("gpubridge: adapter", "index", idx, "info", a.Info().String())
	}
	return nil
}

// releaseAdapters releases and forgets the adapter list.
// Caller must hold i.mu.
func (i *Instance) releaseAdapters() {
	for _, a := range i.adapters {
		a.Release()
	}
	i.adapters = nil
}

// SetSurface replaces the current surface. A nil surface clears it.
// The instance does not take ownership of s. It is a no-op after Destroy.
func (i *Instance) SetSurface(s driver.Surface) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed {
		return
	}
	i.surface = s
}

// Surface returns the current surface, or nil.
func (i *Instance) Surface() driver.Surface {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.surface
}

// CreateSurfaceForWindow creates a surface for w, makes it the current
// surface and returns it. The instance owns the surface and releases it
// in Destroy.
func (i *Instance) CreateSurfaceForWindow(w driver.Window) (driver.Surface, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return nil, ErrDestroyed
	}

	s, err := i.raw.CreateSurface(w)
	if err != nil {
		return nil, fmt.Errorf("gpubridge: create surface: %w", err)
	}
	i.owned = append(i.owned, s)
	i.surface = s

	Logger().Debug("gpubridge: surface created", "window", fmt.Sprintf("%T", w))
	return s, nil
}

// Adapter returns the first discovered adapter, or nil when the adapter
// list is empty.
func (i *Instance) Adapter() driver.Adapter {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.adapters) == 0 {
		return nil
	}
	return i.adapters[0]
}

// Adapters describes every discovered adapter, best first.
func (i *Instance) Adapters() []AdapterInfo {
	i.mu.RLock()
	defer i.mu.RUnlock()

	infos := make([]AdapterInfo, len(i.adapters))
	for idx, a := range i.adapters {
		infos[idx] = a.Info()
	}
	return infos
}

// CreateDevice creates a logical device on the first discovered adapter.
// A nil desc requests default limits, no features and the label set with
// WithDeviceLabel.
func (i *Instance) CreateDevice(desc *driver.DeviceDescriptor) (*Device, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return nil, ErrDestroyed
	}
	if len(i.adapters) == 0 {
		return nil, ErrNoAdapter
	}

	if desc == nil {
		desc = &driver.DeviceDescriptor{Label: i.opts.deviceLabel}
	}
	adapter := i.adapters[0]
	raw, err := adapter.RequestDevice(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}

	dev := newDevice(raw, adapter, i.forget)
	i.devices[raw] = dev

	Logger().Info("gpubridge: device created", "label", desc.Label, "adapter", dev.info.Name)
	return dev, nil
}

// forget drops a released device from the device map.
func (i *Instance) forget(raw driver.Device) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.devices, raw)
}

// ConfigureSurface forwards the swapchain configuration of s to the driver.
// cfg.Device is the driver device, see Device.Raw.
func (i *Instance) ConfigureSurface(s driver.Surface, cfg *driver.SurfaceConfiguration) error {
	if s == nil {
		return ErrNilSurface
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	i.mu.RLock()
	destroyed := i.destroyed
	dev := i.devices[cfg.Device]
	i.mu.RUnlock()

	if destroyed {
		return ErrDestroyed
	}

	Logger().Debug("gpubridge: configure surface",
		"width", cfg.Width, "height", cfg.Height,
		"present", cfg.PresentMode.String(), "alpha", cfg.AlphaMode.String())
	if err := s.Configure(cfg); err != nil {
		return fmt.Errorf("gpubridge: configure surface: %w", err)
	}
	if dev != nil {
		dev.setSurfaceFormat(cfg.Format)
	}
	return nil
}
