// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"sort"
	"sync"
)

// Driver name constants.
const (
	// NameNative is the name of the Pure Go driver (gogpu/wgpu HAL).
	NameNative = "native"
	// NameRust is the name of the wgpu-native driver (cogentcore/webgpu cgo).
	NameRust = "rust"
)

// Factory creates a new driver.
// A factory may return nil when the driver was not compiled in.
type Factory func() Driver

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
	// Priority order for driver selection (first available wins).
	driverPriority = []string{NameRust, NameNative}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the sorted names of registered drivers.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a driver by name.
// Returns nil if the driver is not registered or not compiled in.
func Get(name string) Driver {
	registryMu.RLock()
	factory, ok := drivers[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available driver based on priority.
// Priority order: rust > native, then any other registered driver
// in name order. Returns nil if no driver is available.
func Default() Driver {
	for _, name := range driverPriority {
		if d := Get(name); d != nil {
			return d
		}
	}

	for _, name := range Available() {
		if d := Get(name); d != nil {
			return d
		}
	}

	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("driver: no driver available")
	}
	return d
}
