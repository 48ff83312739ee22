// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"slices"
	"testing"
)

// stubDriver is a minimal Driver for registry tests.
type stubDriver struct{ name string }

func (d *stubDriver) Name() string { return d.name }
func (d *stubDriver) CreateInstance(*InstanceDescriptor) (Instance, error) {
	return nil, ErrNotAvailable
}

// withRegistry swaps in an empty registry for the duration of the test.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := drivers
	drivers = make(map[string]Factory)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		drivers = saved
		registryMu.Unlock()
	})
}

func TestRegistryRegisterAndGet(t *testing.T) {
	withRegistry(t)
	Register("stub", func() Driver { return &stubDriver{name: "stub"} })

	if !IsRegistered("stub") {
		t.Error("stub driver should be registered")
	}

	d := Get("stub")
	if d == nil {
		t.Fatal("Get(stub) returned nil")
	}
	if d.Name() != "stub" {
		t.Errorf("Get(stub).Name() = %q, want %q", d.Name(), "stub")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	withRegistry(t)
	if d := Get("nonexistent"); d != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryUnregister(t *testing.T) {
	withRegistry(t)
	Register("temp", func() Driver { return &stubDriver{name: "temp"} })
	Unregister("temp")

	if IsRegistered("temp") {
		t.Error("temp driver should not be registered after Unregister")
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	withRegistry(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		Register(name, func() Driver { return &stubDriver{name: name} })
	}

	got := Available()
	want := []string{"alpha", "mid", "zeta"}
	if !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	tests := []struct {
		name       string
		registered map[string]bool // name -> factory returns non-nil
		want       string
	}{
		{"rust wins", map[string]bool{NameRust: true, NameNative: true}, NameRust},
		{"nil rust falls back to native", map[string]bool{NameRust: false, NameNative: true}, NameNative},
		{"unknown driver as last resort", map[string]bool{NameRust: false, "custom": true}, "custom"},
		{"nothing available", map[string]bool{NameRust: false}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			for name, ok := range tt.registered {
				Register(name, func() Driver {
					if !ok {
						return nil
					}
					return &stubDriver{name: name}
				})
			}

			d := Default()
			if tt.want == "" {
				if d != nil {
					t.Errorf("Default() = %q, want nil", d.Name())
				}
				return
			}
			if d == nil {
				t.Fatalf("Default() = nil, want %q", tt.want)
			}
			if d.Name() != tt.want {
				t.Errorf("Default() = %q, want %q", d.Name(), tt.want)
			}
		})
	}
}

func TestMustDefaultPanics(t *testing.T) {
	withRegistry(t)
	defer func() {
		if recover() == nil {
			t.Error("MustDefault() should panic with an empty registry")
		}
	}()
	MustDefault()
}
