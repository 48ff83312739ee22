// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import (
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge/driver"
)

// Device is a logical device created by Instance.CreateDevice.
//
// Device implements gpucontext.DeviceProvider, so it can be handed to
// gogpu hosts and gg canvases that share a GPU device.
type Device struct {
	raw     driver.Device
	adapter driver.Adapter
	info    AdapterInfo

	mu     sync.RWMutex
	format gputypes.TextureFormat

	forget func(driver.Device)
	once   sync.Once
}

var _ gpucontext.DeviceProvider = (*Device)(nil)

func newDevice(raw driver.Device, adapter driver.Adapter, forget func(driver.Device)) *Device {
	return &Device{
		raw:     raw,
		adapter: adapter,
		info:    adapter.Info(),
		format:  gputypes.TextureFormatBGRA8Unorm,
		forget:  forget,
	}
}

// Raw returns the driver device, for use in driver.SurfaceConfiguration.
func (d *Device) Raw() driver.Device { return d.raw }

// Info describes the adapter the device was created on.
func (d *Device) Info() AdapterInfo { return d.info }

// Device returns the device as a gpucontext.Device.
func (d *Device) Device() gpucontext.Device { return d.raw }

// Queue returns the device queue.
func (d *Device) Queue() gpucontext.Queue { return d.raw.Queue() }

// Adapter returns the adapter the device was created on.
func (d *Device) Adapter() gpucontext.Adapter { return d.adapter }

// AdapterInfo reports the adapter name and class in gpucontext terms.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: d.info.Name, Type: adapterType(d.info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// SurfaceFormat returns the format of the last surface configured for this
// device through Instance.ConfigureSurface, BGRA8Unorm before that.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.format
}

func (d *Device) setSurfaceFormat(f gputypes.TextureFormat) {
	d.mu.Lock()
	d.format = f
	d.mu.Unlock()
}

// Release destroys the device. Safe to call more than once.
func (d *Device) Release() {
	d.once.Do(func() {
		d.forget(d.raw)
		d.raw.Destroy()
		Logger().Debug("gpubridge: device released", "adapter", d.info.Name)
	})
}
