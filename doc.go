// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dxrt bootstraps a graphics translation runtime: it negotiates
// instance extensions with the installed driver stack, creates the instance
// and discovers the physical devices ("adapters") it can run on.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/dxrt"
//		_ "github.com/gogpu/dxrt/loader/halloader"
//		_ "github.com/gogpu/wgpu/hal/allbackends"
//	)
//
//	rt, err := dxrt.New()
//	if err != nil {
//		// errors.Is(err, dxrt.ErrExtensionUnsatisfiable): cannot run here
//		// errors.Is(err, dxrt.ErrEnumeration): driver failed mid-query
//	}
//	defer rt.Close()
//
//	if a := rt.DefaultAdapter(); a != nil {
//		fmt.Println(a)
//	}
//
// # Adapter Order
//
// Adapters rejected by the DeviceFilter are dropped. The rest are sorted
// stably: the adapter whose name equals DXRT_DEFAULT_ADAPTER comes first,
// then discrete GPUs, then everything else in enumeration order.
//
// # Logging
//
// dxrt is silent by default. Use SetLogger to route its slog output.
package dxrt
