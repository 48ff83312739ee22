// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo && !windows

package main

import (
	"testing"

	"github.com/gogpu/gpubridge/driver"
)

func TestNativeDriverNotLinkedWithCgo(t *testing.T) {
	if driver.IsRegistered(driver.NameNative) {
		t.Error("native driver linked into a cgo build outside Windows")
	}
}
