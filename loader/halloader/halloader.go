// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halloader implements loader.Loader on top of gogpu/wgpu HAL backends.
//
// Backends are discovered through the HAL registry, so at least one backend
// package must be imported for side effects:
//
//	import (
//		_ "github.com/gogpu/wgpu/hal/allbackends"
//		_ "github.com/gogpu/dxrt/loader/halloader"
//	)
//
// Importing this package registers it under loader.NameHAL.
package halloader

import (
	"runtime"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxrt/loader"
)

// DefaultVariants is the backend probe order used when New is called without
// explicit variants. BackendEmpty is the CPU fallback slot.
var DefaultVariants = []gputypes.Backend{
	gputypes.BackendVulkan,
	gputypes.BackendMetal,
	gputypes.BackendDX12,
	gputypes.BackendGL,
	gputypes.BackendEmpty,
}

// apiVersion is the API version reported for every HAL adapter.
var apiVersion = loader.APIVersion13

func init() {
	loader.Register(loader.NameHAL, func() loader.Loader { return New() })
}

// instanceState is everything owned by one instance handle.
type instanceState struct {
	instances []hal.Instance
	adapters  []hal.ExposedAdapter
	devices   []loader.PhysicalDevice
	// enumerated is set once adapters has been captured.
	enumerated bool
}

// Loader is a loader.Loader backed by the HAL registry.
type Loader struct {
	variants []gputypes.Backend

	mu         sync.Mutex
	nextHandle uintptr
	instances  map[loader.InstanceHandle]*instanceState
	devices    map[loader.PhysicalDevice]*hal.ExposedAdapter
}

var _ loader.Loader = (*Loader)(nil)

// New returns a loader probing the given backend variants in order.
// With no variants, DefaultVariants is used.
func New(variants ...gputypes.Backend) *Loader {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	return &Loader{
		variants:  append([]gputypes.Backend(nil), variants...),
		instances: make(map[loader.InstanceHandle]*instanceState),
		devices:   make(map[loader.PhysicalDevice]*hal.ExposedAdapter),
	}
}

// backends returns the registered HAL backends in probe order.
func (l *Loader) backends() []hal.Backend {
	var out []hal.Backend
	for _, v := range l.variants {
		if b, ok := hal.GetBackend(v); ok {
			out = append(out, b)
		}
	}
	return out
}

// InstanceExtensionProperties reports the union of the extensions each
// registered backend can serve. It fails when no backend is registered.
func (l *Loader) InstanceExtensionProperties() ([]loader.ExtensionProperties, error) {
	backends := l.backends()
	if len(backends) == 0 {
		return nil, loader.ErrorInitializationFailed
	}
	seen := make(map[string]bool)
	var props []loader.ExtensionProperties
	for _, b := range backends {
		for _, p := range extensionsFor(b.Variant(), runtime.GOOS) {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			props = append(props, p)
		}
	}
	return props, nil
}

// CreateInstance creates one HAL instance per registered backend. Requested
// extensions no backend supports fail with ErrorExtensionNotPresent.
func (l *Loader) CreateInstance(info *loader.InstanceCreateInfo) (loader.InstanceHandle, loader.Result) {
	supported, err := l.InstanceExtensionProperties()
	if err != nil {
		return 0, loader.ErrorInitializationFailed
	}
	names := make(map[string]bool, len(supported))
	for _, p := range supported {
		names[p.Name] = true
	}
	for _, n := range info.EnabledExtensionNames {
		if !names[n] {
			return 0, loader.ErrorExtensionNotPresent
		}
	}
	if len(info.EnabledLayerNames) > 0 {
		return 0, loader.ErrorLayerNotPresent
	}

	state := &instanceState{}
	for _, b := range l.backends() {
		inst, err := b.CreateInstance(&hal.InstanceDescriptor{
			Backends: backendsMask(l.variants),
			Flags:    info.Flags,
		})
		if err != nil {
			continue
		}
		state.instances = append(state.instances, inst)
	}
	if len(state.instances) == 0 {
		return 0, loader.ErrorIncompatibleDriver
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextHandle++
	h := loader.InstanceHandle(l.nextHandle)
	l.instances[h] = state
	return h, loader.Success
}

// EnumeratePhysicalDevices implements the count/fetch protocol over a
// snapshot taken on the first call for each instance.
func (l *Loader) EnumeratePhysicalDevices(instance loader.InstanceHandle, count *uint32, devices []loader.PhysicalDevice) loader.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.instances[instance]
	if !ok {
		return loader.ErrorInitializationFailed
	}
	if !state.enumerated {
		for _, inst := range state.instances {
			state.adapters = append(state.adapters, inst.EnumerateAdapters(nil)...)
		}
		state.devices = make([]loader.PhysicalDevice, len(state.adapters))
		for i := range state.adapters {
			l.nextHandle++
			h := loader.PhysicalDevice(l.nextHandle)
			state.devices[i] = h
			l.devices[h] = &state.adapters[i]
		}
		state.enumerated = true
	}

	if devices == nil {
		*count = uint32(len(state.devices))
		return loader.Success
	}
	n := copy(devices[:min(len(devices), int(*count))], state.devices)
	*count = uint32(n)
	if n < len(state.devices) {
		return loader.Incomplete
	}
	return loader.Success
}

// PhysicalDeviceProperties converts the HAL adapter info of device.
// Unknown handles yield zero properties.
func (l *Loader) PhysicalDeviceProperties(device loader.PhysicalDevice) loader.PhysicalDeviceProperties {
	l.mu.Lock()
	a, ok := l.devices[device]
	l.mu.Unlock()

	var p loader.PhysicalDeviceProperties
	if !ok {
		return p
	}
	p.APIVersion = apiVersion
	p.VendorID = a.Info.VendorID
	p.DeviceID = a.Info.DeviceID
	p.DeviceType = a.Info.DeviceType
	p.Backend = a.Info.Backend
	p.SetName(a.Info.Name)
	return p
}

// DestroyInstance destroys the adapters and HAL instances behind instance.
func (l *Loader) DestroyInstance(instance loader.InstanceHandle) {
	l.mu.Lock()
	state, ok := l.instances[instance]
	if ok {
		delete(l.instances, instance)
		for _, d := range state.devices {
			delete(l.devices, d)
		}
	}
	l.mu.Unlock()

	if !ok {
		return
	}
	for i := range state.adapters {
		state.adapters[i].Adapter.Destroy()
	}
	for _, inst := range state.instances {
		inst.Destroy()
	}
}

// backendsMask converts a variant list into a backend set.
func backendsMask(variants []gputypes.Backend) gputypes.Backends {
	var mask gputypes.Backends
	for _, v := range variants {
		if v != gputypes.BackendEmpty {
			mask |= 1 << v
		}
	}
	return mask
}
