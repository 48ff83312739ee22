// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogpu

package native

import "github.com/gogpu/gpubridge/driver"

// init registers a nil-returning factory when GPU support is disabled.
// driver.Get(driver.NameNative) then returns nil gracefully.
func init() {
	driver.Register(driver.NameNative, func() driver.Driver {
		return nil
	})
}
