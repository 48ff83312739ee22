// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build (!cgo || windows) && !nogpu

package main

import (
	"testing"

	"github.com/gogpu/gpubridge/driver"
)

func TestNativeDriverLinked(t *testing.T) {
	if d := driver.Get(driver.NameNative); d == nil {
		t.Fatalf("native driver not linked (registered: %v)", driver.Available())
	}
}
