// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // registers the Vulkan HAL backend

	"github.com/gogpu/gpubridge/driver"
)

// init registers the native driver on package import.
func init() {
	driver.Register(driver.NameNative, func() driver.Driver {
		return NewDefault()
	})
}

// backendPriority is the order in which HAL backends are tried when the
// instance descriptor does not restrict them.
var backendPriority = []gputypes.Backend{
	gputypes.BackendVulkan,
	gputypes.BackendMetal,
	gputypes.BackendDX12,
	gputypes.BackendGL,
}

// Driver is the Pure Go driver built on gogpu/wgpu's HAL.
// It implements the driver.Driver interface.
type Driver struct {
	// api is the HAL backend to use. When nil, the backend is looked up
	// with hal.GetBackend at instance creation.
	api hal.Backend
}

// New creates a driver bound to a specific HAL backend.
// Tests use this with hal/noop.
func New(api hal.Backend) *Driver {
	return &Driver{api: api}
}

// NewDefault creates a driver that picks the first registered HAL backend
// in priority order: Vulkan, Metal, DX12, GL.
func NewDefault() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return driver.NameNative
}

// CreateInstance creates a HAL instance.
func (d *Driver) CreateInstance(desc *driver.InstanceDescriptor) (driver.Instance, error) {
	api, err := d.backend(desc)
	if err != nil {
		return nil, err
	}

	raw, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}
	return &Instance{raw: raw}, nil
}

// backend resolves the HAL backend for desc.
func (d *Driver) backend(desc *driver.InstanceDescriptor) (hal.Backend, error) {
	if d.api != nil {
		return d.api, nil
	}

	candidates := backendPriority
	if desc != nil && len(desc.Backends) > 0 {
		candidates = desc.Backends
	}
	for _, b := range candidates {
		if !slices.Contains(backendPriority, b) {
			continue
		}
		if api, ok := hal.GetBackend(b); ok {
			driver.Logger().Debug("native: using HAL backend", "backend", driver.BackendName(b))
			return api, nil
		}
	}
	return nil, driver.ErrNoBackend
}
