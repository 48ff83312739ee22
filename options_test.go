// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpubridge

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge/driver"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.driver != nil || o.driverName != "" {
		t.Error("default options select a driver")
	}
	if o.adapter.PowerPreference != gputypes.PowerPreferenceHighPerformance {
		t.Errorf("PowerPreference = %v, want HighPerformance", o.adapter.PowerPreference)
	}
	if len(o.adapter.Backends) != 0 {
		t.Errorf("Backends = %v, want any", o.adapter.Backends)
	}
	if o.adapter.ForceFallbackAdapter {
		t.Error("ForceFallbackAdapter = true, want false")
	}
	if o.deviceLabel != DefaultDeviceLabel {
		t.Errorf("deviceLabel = %q, want %q", o.deviceLabel, DefaultDeviceLabel)
	}
}

func TestOptions(t *testing.T) {
	drv := newMockDriver()
	o := defaultOptions()
	for _, opt := range []Option{
		WithDriver(drv),
		WithDriverName(driver.NameNative),
		WithPowerPreference(gputypes.PowerPreferenceLowPower),
		WithBackends(gputypes.BackendVulkan, gputypes.BackendGL),
		WithForceFallbackAdapter(true),
		WithDeviceLabel("label"),
	} {
		opt(&o)
	}

	if o.driver != drv {
		t.Error("WithDriver not applied")
	}
	if o.driverName != driver.NameNative {
		t.Errorf("driverName = %q, want %q", o.driverName, driver.NameNative)
	}
	if o.adapter.PowerPreference != gputypes.PowerPreferenceLowPower {
		t.Errorf("PowerPreference = %v, want LowPower", o.adapter.PowerPreference)
	}
	if !slices.Equal(o.adapter.Backends, []gputypes.Backend{gputypes.BackendVulkan, gputypes.BackendGL}) {
		t.Errorf("Backends = %v", o.adapter.Backends)
	}
	if !o.adapter.ForceFallbackAdapter {
		t.Error("WithForceFallbackAdapter not applied")
	}
	if o.deviceLabel != "label" {
		t.Errorf("deviceLabel = %q, want label", o.deviceLabel)
	}
}

func TestResolveDriver(t *testing.T) {
	injected := newMockDriver()
	registered := newMockDriver()
	driver.Register("mock-resolve", func() driver.Driver { return registered })
	t.Cleanup(func() { driver.Unregister("mock-resolve") })

	tests := []struct {
		name    string
		opts    []Option
		want    driver.Driver
		wantErr error
	}{
		{"injected wins", []Option{WithDriver(injected), WithDriverName("mock-resolve")}, injected, nil},
		{"by name", []Option{WithDriverName("mock-resolve")}, registered, nil},
		{"unknown name", []Option{WithDriverName("missing")}, nil, ErrNoDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			got, err := o.resolveDriver()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveDriver() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveDriver() = %v, want %v", got, tt.want)
			}
		})
	}
}
