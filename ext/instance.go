// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ext

import (
	"runtime"

	"github.com/gogpu/dxrt/loader"
)

// Instance extension names.
const (
	KHRGetPhysicalDeviceProperties2Name = "VK_KHR_get_physical_device_properties2"
	KHRSurfaceName                      = "VK_KHR_surface"
	KHRWin32SurfaceName                 = "VK_KHR_win32_surface"
	KHRXlibSurfaceName                  = "VK_KHR_xlib_surface"
	KHRWaylandSurfaceName               = "VK_KHR_wayland_surface"
	EXTMetalSurfaceName                 = "VK_EXT_metal_surface"
)

// InstanceExtensions holds the instance extensions the runtime asks for.
// A fresh value must be used for every negotiation since descriptors record
// whether they were enabled.
type InstanceExtensions struct {
	KHRGetPhysicalDeviceProperties2 *Extension
	KHRSurface                      *Extension
	PlatformSurfaces                []*Extension
}

// NewInstanceExtensions returns the instance extensions for the current OS.
func NewInstanceExtensions() *InstanceExtensions {
	return NewInstanceExtensionsFor(runtime.GOOS)
}

// NewInstanceExtensionsFor returns the instance extensions for goos.
//
// Windows and darwin have exactly one surface extension, which is required.
// Other systems may run under X11 or Wayland, so both are optional there.
func NewInstanceExtensionsFor(goos string) *InstanceExtensions {
	e := &InstanceExtensions{
		KHRGetPhysicalDeviceProperties2: NewExtension(KHRGetPhysicalDeviceProperties2Name, ModeRequired).
			WithPromotion(loader.APIVersion11),
		KHRSurface: NewExtension(KHRSurfaceName, ModeRequired),
	}
	switch goos {
	case "windows":
		e.PlatformSurfaces = []*Extension{NewExtension(KHRWin32SurfaceName, ModeRequired)}
	case "darwin", "ios":
		e.PlatformSurfaces = []*Extension{NewExtension(EXTMetalSurfaceName, ModeRequired)}
	default:
		e.PlatformSurfaces = []*Extension{
			NewExtension(KHRXlibSurfaceName, ModeOptional),
			NewExtension(KHRWaylandSurfaceName, ModeOptional),
		}
	}
	return e
}

// List returns every descriptor in negotiation order.
func (e *InstanceExtensions) List() []*Extension {
	list := []*Extension{e.KHRGetPhysicalDeviceProperties2, e.KHRSurface}
	return append(list, e.PlatformSurfaces...)
}

// FromProperties builds the driver-supported set from a property query.
func FromProperties(props []loader.ExtensionProperties) NameSet {
	var s NameSet
	for _, p := range props {
		s.Add(p.Name, p.SpecVersion)
	}
	return s
}
