// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build rust

package rust

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge/driver"
)

// adapterInfo converts wgpu-native adapter info.
func adapterInfo(info wgpu.AdapterInfo) driver.AdapterInfo {
	return driver.AdapterInfo{
		Name:       info.Name,
		Vendor:     info.VendorName,
		Driver:     info.DriverDescription,
		DeviceType: deviceType(info.AdapterType),
		Backend:    backend(info.BackendType),
	}
}

// deviceType converts a wgpu adapter type.
func deviceType(at wgpu.AdapterType) gputypes.DeviceType {
	switch at {
	case wgpu.AdapterTypeDiscreteGPU:
		return gputypes.DeviceTypeDiscreteGPU
	case wgpu.AdapterTypeIntegratedGPU:
		return gputypes.DeviceTypeIntegratedGPU
	case wgpu.AdapterTypeCPU:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}

// backend converts a wgpu backend type. D3D11, WebGPU and Null have no
// gputypes equivalent and map to the zero Backend.
func backend(bt wgpu.BackendType) gputypes.Backend {
	switch bt {
	case wgpu.BackendTypeVulkan:
		return gputypes.BackendVulkan
	case wgpu.BackendTypeMetal:
		return gputypes.BackendMetal
	case wgpu.BackendTypeD3D12:
		return gputypes.BackendDX12
	case wgpu.BackendTypeOpenGL, wgpu.BackendTypeOpenGLES:
		return gputypes.BackendGL
	default:
		var zero gputypes.Backend
		return zero
	}
}

// textureFormat converts the swapchain formats wgpu-native can present.
func textureFormat(f gputypes.TextureFormat) (wgpu.TextureFormat, error) {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8Unorm, nil
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return wgpu.TextureFormatBGRA8UnormSrgb, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8Unorm, nil
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return wgpu.TextureFormatRGBA8UnormSrgb, nil
	default:
		return wgpu.TextureFormatUndefined, fmt.Errorf("rust: %w: %v", driver.ErrUnsupportedFormat, f)
	}
}

// textureUsage converts the usage bits meaningful for swapchain images.
func textureUsage(u gputypes.TextureUsage) wgpu.TextureUsage {
	var out wgpu.TextureUsage
	if u&gputypes.TextureUsageRenderAttachment != 0 {
		out |= wgpu.TextureUsageRenderAttachment
	}
	if u&gputypes.TextureUsageCopySrc != 0 {
		out |= wgpu.TextureUsageCopySrc
	}
	if u&gputypes.TextureUsageCopyDst != 0 {
		out |= wgpu.TextureUsageCopyDst
	}
	if u&gputypes.TextureUsageTextureBinding != 0 {
		out |= wgpu.TextureUsageTextureBinding
	}
	return out
}

func presentMode(m driver.PresentMode) wgpu.PresentMode {
	switch m {
	case driver.PresentModeFifoRelaxed:
		return wgpu.PresentModeFifoRelaxed
	case driver.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	case driver.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	default:
		return wgpu.PresentModeFifo
	}
}

func alphaMode(m driver.AlphaMode) wgpu.CompositeAlphaMode {
	switch m {
	case driver.AlphaModeOpaque:
		return wgpu.CompositeAlphaModeOpaque
	case driver.AlphaModePreMultiplied:
		return wgpu.CompositeAlphaModePreMultiplied
	case driver.AlphaModePostMultiplied:
		return wgpu.CompositeAlphaModePostMultiplied
	case driver.AlphaModeInherit:
		return wgpu.CompositeAlphaModeInherit
	default:
		return wgpu.CompositeAlphaModeAuto
	}
}
