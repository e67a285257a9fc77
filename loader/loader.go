// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package loader defines the contract between dxrt and the layer that talks
// to the installed driver stack.
//
// A Loader answers four questions: which instance extensions the driver
// supports, how to create an instance, which physical devices an instance
// sees (two calls: count, then fetch), and what the properties of a device
// are. The real implementation lives in loader/halloader; tests use
// loader/loadertest.
package loader

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// InstanceHandle is an opaque handle to a live instance. Zero is the null handle.
type InstanceHandle uintptr

// PhysicalDevice is an opaque handle to a physical device. Zero is the null handle.
type PhysicalDevice uintptr

// MaxPhysicalDeviceNameSize is the size of the fixed device name field,
// including the terminating NUL.
const MaxPhysicalDeviceNameSize = 256

// MakeVersion packs a major.minor.patch version the same way drivers report
// API and engine versions.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// VersionMajor extracts the major component of a packed version.
func VersionMajor(v uint32) uint32 { return v >> 22 }

// VersionMinor extracts the minor component of a packed version.
func VersionMinor(v uint32) uint32 { return (v >> 12) & 0x3ff }

// VersionPatch extracts the patch component of a packed version.
func VersionPatch(v uint32) uint32 { return v & 0xfff }

// FormatVersion renders a packed version as "major.minor.patch".
func FormatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor(v), VersionMinor(v), VersionPatch(v))
}

// API versions referenced by extension promotion and device filtering.
var (
	APIVersion10 = MakeVersion(1, 0, 0)
	APIVersion11 = MakeVersion(1, 1, 0)
	APIVersion12 = MakeVersion(1, 2, 0)
	APIVersion13 = MakeVersion(1, 3, 0)
)

// ExtensionProperties describes one instance extension offered by the driver.
type ExtensionProperties struct {
	Name        string
	SpecVersion uint32
}

// ApplicationInfo carries static identity metadata embedded in the instance.
// It never influences negotiation.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	// APIVersion is the highest API version the application uses.
	// Zero is treated as 1.0.0 by drivers.
	APIVersion uint32
}

// InstanceCreateInfo is passed to Loader.CreateInstance.
type InstanceCreateInfo struct {
	Application           ApplicationInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
	Flags                 gputypes.InstanceFlags
}

// PhysicalDeviceProperties is the snapshot returned by a property query.
type PhysicalDeviceProperties struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    gputypes.DeviceType
	Backend       gputypes.Backend
	DeviceName    [MaxPhysicalDeviceNameSize]byte
}

// Name returns DeviceName up to the first NUL byte.
func (p *PhysicalDeviceProperties) Name() string {
	for i, b := range p.DeviceName {
		if b == 0 {
			return string(p.DeviceName[:i])
		}
	}
	return string(p.DeviceName[:])
}

// SetName stores name in DeviceName, truncating it so that a terminating NUL
// always fits.
func (p *PhysicalDeviceProperties) SetName(name string) {
	p.DeviceName = [MaxPhysicalDeviceNameSize]byte{}
	copy(p.DeviceName[:MaxPhysicalDeviceNameSize-1], name)
}

// Loader is the opaque capability-query and object-creation provider.
//
// Calls are made sequentially from the initializing goroutine; implementations
// need not be safe for concurrent use during bootstrap.
type Loader interface {
	// InstanceExtensionProperties lists the instance extensions supported by
	// the installed driver stack. An error means no usable driver is present.
	InstanceExtensionProperties() ([]ExtensionProperties, error)

	// CreateInstance creates an instance with the given extensions enabled.
	CreateInstance(info *InstanceCreateInfo) (InstanceHandle, Result)

	// EnumeratePhysicalDevices implements the two-call protocol. With a nil
	// devices slice it stores the number of devices in *count. Otherwise it
	// fills at most len(devices) entries, stores the number written in *count
	// and returns Incomplete if more devices exist.
	EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDevice) Result

	// PhysicalDeviceProperties returns the properties of a device.
	PhysicalDeviceProperties(device PhysicalDevice) PhysicalDeviceProperties

	// DestroyInstance releases an instance and every device enumerated from it.
	DestroyInstance(instance InstanceHandle)
}
