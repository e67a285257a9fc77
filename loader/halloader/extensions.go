// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halloader

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
)

// extensionsFor lists the instance extensions a HAL backend can honor on goos.
//
// Every HAL instance can query extended device properties and create
// surfaces, so properties2 and the generic surface extension are always
// present. The platform surface follows the window system of goos.
func extensionsFor(variant gputypes.Backend, goos string) []loader.ExtensionProperties {
	props := []loader.ExtensionProperties{
		{Name: ext.KHRGetPhysicalDeviceProperties2Name, SpecVersion: 2},
		{Name: ext.KHRSurfaceName, SpecVersion: 25},
	}
	if variant == gputypes.BackendBrowserWebGPU {
		return props
	}
	switch goos {
	case "windows":
		props = append(props, loader.ExtensionProperties{Name: ext.KHRWin32SurfaceName, SpecVersion: 6})
	case "darwin", "ios":
		props = append(props, loader.ExtensionProperties{Name: ext.EXTMetalSurfaceName, SpecVersion: 1})
	default:
		props = append(props,
			loader.ExtensionProperties{Name: ext.KHRXlibSurfaceName, SpecVersion: 6},
			loader.ExtensionProperties{Name: ext.KHRWaylandSurfaceName, SpecVersion: 6},
		)
	}
	return props
}
