// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/gputypes"
)

// String returns a human-readable description of the adapter.
func (a AdapterInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Name, DeviceTypeName(a.DeviceType), BackendName(a.Backend))
}

// BackendName returns the display name of a graphics API.
func BackendName(b gputypes.Backend) string {
	switch b {
	case gputypes.BackendVulkan:
		return "Vulkan"
	case gputypes.BackendMetal:
		return "Metal"
	case gputypes.BackendDX12:
		return "D3D12"
	case gputypes.BackendGL:
		return "OpenGL"
	default:
		return "Unknown"
	}
}

// DeviceTypeName returns the display name of an adapter type.
func DeviceTypeName(t gputypes.DeviceType) string {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return "DiscreteGPU"
	case gputypes.DeviceTypeIntegratedGPU:
		return "IntegratedGPU"
	case gputypes.DeviceTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Accepts reports whether an adapter with the given info satisfies the
// backend and fallback constraints of opts. CompatibleSurface is not
// checked here; only the native library can answer that.
func (opts *RequestAdapterOptions) Accepts(info AdapterInfo) bool {
	if opts == nil {
		return true
	}
	if len(opts.Backends) > 0 && !slices.Contains(opts.Backends, info.Backend) {
		return false
	}
	if opts.ForceFallbackAdapter && info.DeviceType != gputypes.DeviceTypeCPU {
		return false
	}
	return true
}

// Filter keeps the adapters accepted by opts and releases the others.
func Filter(adapters []Adapter, opts *RequestAdapterOptions) []Adapter {
	kept := adapters[:0]
	for _, a := range adapters {
		if opts.Accepts(a.Info()) {
			kept = append(kept, a)
			continue
		}
		a.Release()
	}
	return kept
}

// SortAdapters orders adapters by power preference. The sort is stable,
// so adapters of equal rank keep the library's order.
func SortAdapters(adapters []Adapter, pref gputypes.PowerPreference) {
	sort.SliceStable(adapters, func(i, j int) bool {
		return powerRank(adapters[i].Info().DeviceType, pref) < powerRank(adapters[j].Info().DeviceType, pref)
	})
}

// powerRank returns the sort key of a device type; lower is preferred.
func powerRank(t gputypes.DeviceType, pref gputypes.PowerPreference) int {
	switch pref {
	case gputypes.PowerPreferenceHighPerformance:
		switch t {
		case gputypes.DeviceTypeDiscreteGPU:
			return 0
		case gputypes.DeviceTypeIntegratedGPU:
			return 1
		}
	case gputypes.PowerPreferenceLowPower:
		switch t {
		case gputypes.DeviceTypeIntegratedGPU:
			return 0
		case gputypes.DeviceTypeDiscreteGPU:
			return 1
		}
	default:
		return 0
	}
	if t == gputypes.DeviceTypeCPU {
		return 3
	}
	return 2
}
