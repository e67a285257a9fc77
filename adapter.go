// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/loader"
)

// Adapter is a physical device discovered by the runtime.
//
// Adapters are created during enumeration and never modified, so a single
// *Adapter may be shared freely between the runtime and any consumer.
// An adapter is only meaningful while the instance it came from is alive.
type Adapter struct {
	instance *Instance
	handle   loader.PhysicalDevice
	props    loader.PhysicalDeviceProperties
}

// newAdapter wraps device and snapshots its properties.
func newAdapter(inst *Instance, device loader.PhysicalDevice) *Adapter {
	return &Adapter{
		instance: inst,
		handle:   device,
		props:    inst.loader.PhysicalDeviceProperties(device),
	}
}

// Instance returns the instance the adapter was enumerated from.
func (a *Adapter) Instance() *Instance { return a.instance }

// Handle returns the loader handle of the device.
func (a *Adapter) Handle() loader.PhysicalDevice { return a.handle }

// DeviceProperties returns a copy of the properties captured at enumeration.
func (a *Adapter) DeviceProperties() loader.PhysicalDeviceProperties { return a.props }

// Name returns the device name.
func (a *Adapter) Name() string { return a.props.Name() }

// DeviceType returns the device class.
func (a *Adapter) DeviceType() gputypes.DeviceType { return a.props.DeviceType }

// IsDiscrete reports whether the adapter is a discrete GPU.
func (a *Adapter) IsDiscrete() bool {
	return a.props.DeviceType == gputypes.DeviceTypeDiscreteGPU
}

// AdapterInfo returns the adapter description in gputypes form.
func (a *Adapter) AdapterInfo() gputypes.AdapterInfo {
	return gputypes.AdapterInfo{
		Name:       a.Name(),
		VendorID:   a.props.VendorID,
		DeviceID:   a.props.DeviceID,
		DeviceType: a.props.DeviceType,
		Backend:    a.props.Backend,
	}
}

// ContextInfo returns the adapter description consumed by gpucontext users
// for render mode selection.
func (a *Adapter) ContextInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: a.Name(),
		Type: contextAdapterType(a.props.DeviceType),
	}
}

// String returns a human-readable description of the adapter.
func (a *Adapter) String() string {
	return fmt.Sprintf("%s (%s, api %s)", a.Name(), a.props.DeviceType, loader.FormatVersion(a.props.APIVersion))
}

// contextAdapterType maps a device class onto gpucontext's coarser scheme.
func contextAdapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
