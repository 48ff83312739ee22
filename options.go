// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge/driver"
)

// DefaultDeviceLabel is the label of devices created without a descriptor.
const DefaultDeviceLabel = "gpubridge-device"

// Option configures an Instance during creation.
//
// Example:
//
//	// Best available driver, high-performance adapters first
//	inst, err := gpubridge.New()
//
//	// Pure Go driver, Vulkan only, integrated GPUs first
//	inst, err := gpubridge.New(
//	    gpubridge.WithDriverName(driver.NameNative),
//	    gpubridge.WithBackends(gputypes.BackendVulkan),
//	    gpubridge.WithPowerPreference(gputypes.PowerPreferenceLowPower),
//	)
type Option func(*options)

// options holds optional configuration for Instance creation.
type options struct {
	driver      driver.Driver
	driverName  string
	adapter     driver.RequestAdapterOptions
	deviceLabel string
}

// defaultOptions returns the default instance options: the registry's
// default driver, high-performance adapters first, any backend, no
// forced fallback.
func defaultOptions() options {
	return options{
		adapter: driver.RequestAdapterOptions{
			PowerPreference: gputypes.PowerPreferenceHighPerformance,
		},
		deviceLabel: DefaultDeviceLabel,
	}
}

// WithDriver sets the driver directly, bypassing the registry.
// Use this for dependency injection of custom or test drivers.
func WithDriver(d driver.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithDriverName selects a registered driver by name.
// An empty name selects the registry default.
func WithDriverName(name string) Option {
	return func(o *options) {
		o.driverName = name
	}
}

// WithPowerPreference sets the adapter ordering used by discovery.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.adapter.PowerPreference = p
	}
}

// WithBackends restricts the instance and its adapters to the given
// graphics APIs. No arguments means any backend.
func WithBackends(backends ...gputypes.Backend) Option {
	return func(o *options) {
		o.adapter.Backends = backends
	}
}

// WithForceFallbackAdapter makes discovery keep only software adapters.
func WithForceFallbackAdapter(force bool) Option {
	return func(o *options) {
		o.adapter.ForceFallbackAdapter = force
	}
}

// WithDeviceLabel sets the label of devices created with a nil descriptor.
func WithDeviceLabel(label string) Option {
	return func(o *options) {
		o.deviceLabel = label
	}
}

// resolveDriver returns the driver selected by the options.
func (o *options) resolveDriver() (driver.Driver, error) {
	if o.driver != nil {
		return o.driver, nil
	}
	if o.driverName != "" {
		if d := driver.Get(o.driverName); d != nil {
			return d, nil
		}
		return nil, ErrNoDriver
	}
	if d := driver.Default(); d != nil {
		return d, nil
	}
	return nil, ErrNoDriver
}
