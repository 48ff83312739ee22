// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge"
	"github.com/gogpu/gpubridge/driver"
)

// fakeDriver implements driver.Driver with a fixed adapter list.
type fakeDriver struct{ infos []driver.AdapterInfo }

func (d fakeDriver) Name() string { return "fake" }

func (d fakeDriver) CreateInstance(*driver.InstanceDescriptor) (driver.Instance, error) {
	return fakeInstance(d), nil
}

type fakeInstance struct{ infos []driver.AdapterInfo }

func (i fakeInstance) EnumerateAdapters(opts *driver.RequestAdapterOptions) ([]driver.Adapter, error) {
	adapters := make([]driver.Adapter, len(i.infos))
	for idx, info := range i.infos {
		adapters[idx] = fakeAdapter{info}
	}
	return driver.Filter(adapters, opts), nil
}

func (fakeInstance) CreateSurface(driver.Window) (driver.Surface, error) {
	return nil, driver.ErrUnsupportedWindow
}

func (fakeInstance) Release() {}

type fakeAdapter struct{ info driver.AdapterInfo }

func (a fakeAdapter) Info() driver.AdapterInfo { return a.info }
func (fakeAdapter) Release()                   {}

func (fakeAdapter) RequestDevice(*driver.DeviceDescriptor) (driver.Device, error) {
	return nil, driver.ErrNotAvailable
}

func registerFake(t *testing.T, infos ...driver.AdapterInfo) {
	t.Helper()
	driver.Register("fake", func() driver.Driver { return fakeDriver{infos} })
	t.Cleanup(func() { driver.Unregister("fake") })
}

func TestRunListsAdapters(t *testing.T) {
	registerFake(t,
		driver.AdapterInfo{Name: "iGPU", Vendor: "Intel", DeviceType: gputypes.DeviceTypeIntegratedGPU, Backend: gputypes.BackendVulkan},
		driver.AdapterInfo{Name: "dGPU", Vendor: "AMD", DeviceType: gputypes.DeviceTypeDiscreteGPU, Backend: gputypes.BackendVulkan},
	)

	cfg := gpubridge.DefaultConfig()
	cfg.Driver = "fake"

	var out bytes.Buffer
	if err := run(cfg, false, 0, &out); err != nil {
		t.Fatalf("run() = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("output has %d lines, want 4:\n%s", len(lines), out.String())
	}
	if lines[0] != "driver: fake" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "dGPU") || !strings.Contains(lines[2], "DiscreteGPU") {
		t.Errorf("discrete adapter not listed first: %q", lines[2])
	}
	if !strings.Contains(lines[3], "iGPU") {
		t.Errorf("integrated adapter not listed second: %q", lines[3])
	}
}

func TestRunNoAdapters(t *testing.T) {
	registerFake(t)

	cfg := gpubridge.DefaultConfig()
	cfg.Driver = "fake"

	var out bytes.Buffer
	if err := run(cfg, false, 0, &out); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(out.String(), "no adapters") {
		t.Errorf("output = %q, want no adapters", out.String())
	}
}

func TestRunUnknownDriver(t *testing.T) {
	cfg := gpubridge.DefaultConfig()
	cfg.Driver = "missing"

	err := run(cfg, false, 0, &bytes.Buffer{})
	if !errors.Is(err, gpubridge.ErrNoDriver) {
		t.Errorf("run() error = %v, want ErrNoDriver", err)
	}
}
