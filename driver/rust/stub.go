// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !rust

package rust

import "github.com/gogpu/gpubridge/driver"

// init registers a nil-returning factory when the rust tag is not set.
// This allows code to compile without the rust driver while still
// allowing driver.Get(driver.NameRust) to return nil gracefully.
func init() {
	driver.Register(driver.NameRust, func() driver.Driver {
		return nil
	})
}
