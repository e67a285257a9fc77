// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package companion provides dxrt.Companion implementations for integrations
// that need extra extensions, such as VR compositors.
package companion

import (
	"strings"
	"sync"

	"github.com/gogpu/dxrt"
	"github.com/gogpu/dxrt/ext"
)

// ParseNames splits a space-separated extension list, the format VR
// compositors use to report their requirements. Empty fields are dropped.
func ParseNames(list string) []string {
	return strings.Fields(list)
}

// Static is a companion with a fixed set of requirements.
//
// Device extensions are recorded for every adapter of the runtime passed to
// InitDeviceExtensions and can then be queried per adapter.
type Static struct {
	instance []string
	device   []string

	mu      sync.RWMutex
	devices map[*dxrt.Adapter]ext.NameSet
}

var _ dxrt.Companion = (*Static)(nil)

// NewStatic returns a companion requiring the given instance and device
// extensions.
func NewStatic(instance, device []string) *Static {
	return &Static{
		instance: append([]string(nil), instance...),
		device:   append([]string(nil), device...),
		devices:  make(map[*dxrt.Adapter]ext.NameSet),
	}
}

// InstanceExtensions implements dxrt.Companion.
func (s *Static) InstanceExtensions() ext.NameSet {
	return ext.NewNameSet(s.instance...)
}

// InitDeviceExtensions implements dxrt.Companion.
func (s *Static) InitDeviceExtensions(rt *dxrt.Runtime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range rt.Adapters() {
		s.devices[a] = ext.NewNameSet(s.device...)
	}
	dxrt.Logger().Debug("companion: device extensions initialized",
		"adapters", len(s.devices), "extensions", len(s.device))
}

// DeviceExtensions returns the device extensions required on a, and whether
// a was known when InitDeviceExtensions ran.
func (s *Static) DeviceExtensions(a *dxrt.Adapter) (ext.NameSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.devices[a]
	if !ok {
		return ext.NameSet{}, false
	}
	return set.Clone(), true
}
