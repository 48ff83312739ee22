// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !cgo || windows

package main

// goffi, which the native driver loads system libraries with, does not
// build with cgo outside Windows.
import _ "github.com/gogpu/gpubridge/driver/native"
