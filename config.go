// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/gpubridge/driver"
)

// Config is the file form of the instance options and the default surface
// configuration. Empty fields keep their defaults.
//
// Example gpubridge.toml:
//
//	driver = "native"
//	power-preference = "low-power"
//	backends = ["vulkan"]
//	device-label = "viewer"
//
//	[surface]
//	format = "bgra8unorm-srgb"
//	present-mode = "mailbox"
type Config struct {
	Driver               string        `toml:"driver"`
	PowerPreference      string        `toml:"power-preference"`
	Backends             []string      `toml:"backends"`
	ForceFallbackAdapter bool          `toml:"force-fallback-adapter"`
	DeviceLabel          string        `toml:"device-label"`
	Surface              SurfaceConfig `toml:"surface"`
}

// SurfaceConfig holds the swapchain settings applied by SurfaceConfig.Apply.
type SurfaceConfig struct {
	Format      string `toml:"format"`
	PresentMode string `toml:"present-mode"`
	AlphaMode   string `toml:"alpha-mode"`
}

// DefaultConfig returns the configuration equivalent to New with no options.
func DefaultConfig() Config {
	return Config{
		PowerPreference: "high-performance",
		DeviceLabel:     DefaultDeviceLabel,
		Surface: SurfaceConfig{
			Format:      "bgra8unorm",
			PresentMode: driver.PresentModeFifo.String(),
			AlphaMode:   driver.AlphaModeAuto.String(),
		},
	}
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gpubridge: load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML configuration on top of DefaultConfig and
// checks every value. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	if err := cfg.Surface.Apply(&driver.SurfaceConfiguration{}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configuration into instance options.
func (c Config) Options() ([]Option, error) {
	pref, err := ParsePowerPreference(c.PowerPreference)
	if err != nil {
		return nil, err
	}
	backends := make([]gputypes.Backend, 0, len(c.Backends))
	for _, name := range c.Backends {
		b, err := ParseBackend(name)
		if err != nil {
			return nil, err
		}
		backends = append(backends, b)
	}

	opts := []Option{
		WithDriverName(c.Driver),
		WithPowerPreference(pref),
		WithForceFallbackAdapter(c.ForceFallbackAdapter),
	}
	if len(backends) > 0 {
		opts = append(opts, WithBackends(backends...))
	}
	if c.DeviceLabel != "" {
		opts = append(opts, WithDeviceLabel(c.DeviceLabel))
	}
	return opts, nil
}

// Apply sets the format, present mode and alpha mode of cfg from the
// configuration. Empty fields leave cfg unchanged.
func (s SurfaceConfig) Apply(cfg *driver.SurfaceConfiguration) error {
	if s.Format != "" {
		f, err := ParseTextureFormat(s.Format)
		if err != nil {
			return err
		}
		cfg.Format = f
	}
	if s.PresentMode != "" {
		m, err := ParsePresentMode(s.PresentMode)
		if err != nil {
			return err
		}
		cfg.PresentMode = m
	}
	if s.AlphaMode != "" {
		m, err := ParseAlphaMode(s.AlphaMode)
		if err != nil {
			return err
		}
		cfg.AlphaMode = m
	}
	return nil
}

// ParsePowerPreference parses "none", "low-power" or "high-performance".
// The empty string is "none".
func ParsePowerPreference(s string) (gputypes.PowerPreference, error) {
	switch normalize(s) {
	case "", "none":
		return gputypes.PowerPreferenceNone, nil
	case "low-power":
		return gputypes.PowerPreferenceLowPower, nil
	case "high-performance":
		return gputypes.PowerPreferenceHighPerformance, nil
	}
	return 0, fmt.Errorf("%w: power preference %q", ErrInvalidConfig, s)
}

// ParseBackend parses a graphics API name.
func ParseBackend(s string) (gputypes.Backend, error) {
	switch normalize(s) {
	case "vulkan":
		return gputypes.BackendVulkan, nil
	case "metal":
		return gputypes.BackendMetal, nil
	case "dx12", "d3d12":
		return gputypes.BackendDX12, nil
	case "gl", "opengl", "gles":
		return gputypes.BackendGL, nil
	}
	return 0, fmt.Errorf("%w: backend %q", ErrInvalidConfig, s)
}

// ParseTextureFormat parses the swapchain formats every driver accepts.
func ParseTextureFormat(s string) (gputypes.TextureFormat, error) {
	switch normalize(s) {
	case "bgra8unorm":
		return gputypes.TextureFormatBGRA8Unorm, nil
	case "bgra8unorm-srgb":
		return gputypes.TextureFormatBGRA8UnormSrgb, nil
	case "rgba8unorm":
		return gputypes.TextureFormatRGBA8Unorm, nil
	case "rgba8unorm-srgb":
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: texture format %q", ErrInvalidConfig, s)
}

// ParsePresentMode parses a name returned by driver.PresentMode.String.
func ParsePresentMode(s string) (driver.PresentMode, error) {
	n := normalize(s)
	for m := driver.PresentModeFifo; m <= driver.PresentModeMailbox; m++ {
		if m.String() == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: present mode %q", ErrInvalidConfig, s)
}

// ParseAlphaMode parses a name returned by driver.AlphaMode.String.
func ParseAlphaMode(s string) (driver.AlphaMode, error) {
	n := normalize(s)
	for m := driver.AlphaModeAuto; m <= driver.AlphaModeInherit; m++ {
		if m.String() == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: alpha mode %q", ErrInvalidConfig, s)
}

// normalize lowercases s and accepts '_' for '-'.
func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
