// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"errors"
	"testing"

	"github.com/gogpu/gpubridge/driver"
)

var _ driver.Window = Native{}

func TestNativeHandles(t *testing.T) {
	tests := []struct {
		name    string
		in      Native
		wantErr error
	}{
		{"x11 pair", Native{Display: 0x1000, Handle: 0x2a}, nil},
		{"handle only", Native{Handle: 0x2a}, nil},
		{"missing handle", Native{Display: 0x1000}, ErrNoHandle},
		{"zero", Native{}, ErrNoHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, window, err := tt.in.NativeHandles()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NativeHandles() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if display != tt.in.Display || window != tt.in.Handle {
				t.Errorf("NativeHandles() = (%#x, %#x), want (%#x, %#x)",
					display, window, tt.in.Display, tt.in.Handle)
			}
		})
	}
}
