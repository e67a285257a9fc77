// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package loadertest provides a scriptable loader.Loader for tests.
package loadertest

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/loader"
)

// Device describes a physical device exposed by a Loader.
type Device struct {
	Name       string
	Type       gputypes.DeviceType
	APIVersion uint32
	VendorID   uint32
	DeviceID   uint32
}

// Discrete returns a discrete device with the given name.
func Discrete(name string) Device {
	return Device{Name: name, Type: gputypes.DeviceTypeDiscreteGPU, APIVersion: loader.APIVersion13}
}

// Integrated returns an integrated device with the given name.
func Integrated(name string) Device {
	return Device{Name: name, Type: gputypes.DeviceTypeIntegratedGPU, APIVersion: loader.APIVersion13}
}

// CPU returns a software device with the given name.
func CPU(name string) Device {
	return Device{Name: name, Type: gputypes.DeviceTypeCPU, APIVersion: loader.APIVersion13}
}

// Loader is an in-memory loader.Loader.
//
// Zero-valued result fields mean Success. Every call is recorded so tests can
// assert on the protocol.
type Loader struct {
	// Extensions is the set reported by InstanceExtensionProperties.
	Extensions []string
	// QueryErr is returned by InstanceExtensionProperties when non-nil.
	QueryErr error
	// Devices is the list of devices exposed by the fetch phase.
	Devices []Device

	// CreateResult is returned by CreateInstance.
	CreateResult loader.Result
	// CountResult is returned by the counting call.
	CountResult loader.Result
	// FetchResult is returned by the fetching call.
	FetchResult loader.Result
	// CountOverride, when non-nil, replaces the count reported by the
	// counting call.
	CountOverride *uint32

	// Recorded calls.
	CreateInfo     *loader.InstanceCreateInfo
	CountCalls     int
	FetchCalls     int
	PropertyCalls  int
	DestroyedCalls int
}

var _ loader.Loader = (*Loader)(nil)

// instanceHandle is the handle returned by a successful CreateInstance.
const instanceHandle loader.InstanceHandle = 0x1000

// WithExtensions returns a Loader reporting the given extensions.
func WithExtensions(names ...string) *Loader {
	return &Loader{Extensions: names}
}

// InstanceExtensionProperties implements loader.Loader.
func (l *Loader) InstanceExtensionProperties() ([]loader.ExtensionProperties, error) {
	if l.QueryErr != nil {
		return nil, l.QueryErr
	}
	props := make([]loader.ExtensionProperties, len(l.Extensions))
	for i, n := range l.Extensions {
		props[i] = loader.ExtensionProperties{Name: n, SpecVersion: 1}
	}
	return props, nil
}

// CreateInstance implements loader.Loader.
func (l *Loader) CreateInstance(info *loader.InstanceCreateInfo) (loader.InstanceHandle, loader.Result) {
	c := *info
	c.EnabledExtensionNames = append([]string(nil), info.EnabledExtensionNames...)
	l.CreateInfo = &c
	if l.CreateResult != loader.Success {
		return 0, l.CreateResult
	}
	return instanceHandle, loader.Success
}

// EnumeratePhysicalDevices implements loader.Loader.
func (l *Loader) EnumeratePhysicalDevices(instance loader.InstanceHandle, count *uint32, devices []loader.PhysicalDevice) loader.Result {
	if instance != instanceHandle {
		return loader.ErrorInitializationFailed
	}
	if devices == nil {
		l.CountCalls++
		if l.CountResult != loader.Success {
			return l.CountResult
		}
		if l.CountOverride != nil {
			*count = *l.CountOverride
		} else {
			*count = uint32(len(l.Devices))
		}
		return loader.Success
	}

	l.FetchCalls++
	n := min(len(devices), int(*count), len(l.Devices))
	for i := range n {
		devices[i] = deviceHandle(i)
	}
	*count = uint32(n)
	if l.FetchResult != loader.Success {
		return l.FetchResult
	}
	if n < len(l.Devices) {
		return loader.Incomplete
	}
	return loader.Success
}

// PhysicalDeviceProperties implements loader.Loader.
func (l *Loader) PhysicalDeviceProperties(device loader.PhysicalDevice) loader.PhysicalDeviceProperties {
	l.PropertyCalls++
	var p loader.PhysicalDeviceProperties
	i := int(device) - 1
	if i < 0 || i >= len(l.Devices) {
		return p
	}
	d := l.Devices[i]
	p.SetName(d.Name)
	p.DeviceType = d.Type
	p.APIVersion = d.APIVersion
	p.VendorID = d.VendorID
	p.DeviceID = d.DeviceID
	return p
}

// DestroyInstance implements loader.Loader.
func (l *Loader) DestroyInstance(loader.InstanceHandle) {
	l.DestroyedCalls++
}

// deviceHandle maps a device index to a non-null handle.
func deviceHandle(i int) loader.PhysicalDevice {
	return loader.PhysicalDevice(i + 1)
}
