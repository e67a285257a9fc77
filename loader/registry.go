// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"errors"
	"slices"

	"github.com/gogpu/gpucontext"
)

// Registered loader names.
const (
	// NameHAL is the loader backed by gogpu/wgpu HAL backends.
	NameHAL = "hal"
)

// ErrNoLoader is returned when no loader has been registered.
var ErrNoLoader = errors.New("loader: no loader registered")

// registry holds loader factories. HAL is preferred; anything else registered
// is used only when HAL is absent.
var registry = gpucontext.NewRegistry[Loader](
	gpucontext.WithPriority(NameHAL),
)

// Register registers a loader factory with the given name.
// This is typically called from init() functions in loader packages.
// Registering an existing name replaces the previous factory.
func Register(name string, factory func() Loader) {
	registry.Register(name, factory)
}

// Unregister removes a loader from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered loader names in sorted order.
func Available() []string {
	names := registry.Available()
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a loader with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a new loader by name, or nil if it is not registered.
func Get(name string) Loader {
	return registry.Get(name)
}

// Default returns the highest-priority registered loader. HAL wins when
// registered; otherwise the first name in sorted order is used.
func Default() (Loader, error) {
	name := registry.BestName()
	if name != NameHAL {
		names := Available()
		if len(names) == 0 {
			return nil, ErrNoLoader
		}
		name = names[0]
	}
	l := registry.Get(name)
	if l == nil {
		return nil, ErrNoLoader
	}
	return l, nil
}
