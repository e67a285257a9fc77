// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/loader"
)

// DeviceFilter decides whether an adapter is usable at all.
// Implementations must not have side effects that depend on call order.
type DeviceFilter interface {
	TestAdapter(a *Adapter) bool
}

// FilterFunc adapts a function to DeviceFilter.
type FilterFunc func(a *Adapter) bool

// TestAdapter calls f(a).
func (f FilterFunc) TestAdapter(a *Adapter) bool { return f(a) }

// AcceptAll is a DeviceFilter that keeps every adapter.
var AcceptAll DeviceFilter = FilterFunc(func(*Adapter) bool { return true })

// FilterFlags select the checks done by the default device filter.
type FilterFlags uint32

const (
	// SkipCPUDevices rejects software adapters.
	SkipCPUDevices FilterFlags = 1 << iota
	// MatchDeviceName keeps only adapters whose name contains MatchName.
	MatchDeviceName
)

// MinAPIVersion is the oldest adapter API version the default filter accepts.
var MinAPIVersion = loader.MakeVersion(1, 0, 68)

// DefaultFilter is the filter used when none is configured.
type DefaultFilter struct {
	Flags     FilterFlags
	MatchName string
}

// NewDeviceFilter returns the default filter. CPU adapters are skipped, and
// when the DXRT_FILTER_DEVICE_NAME variable is set only adapters whose name
// contains its value are kept.
func NewDeviceFilter(lookupEnv func(string) string) *DefaultFilter {
	f := &DefaultFilter{Flags: SkipCPUDevices}
	if lookupEnv != nil {
		if name := lookupEnv(EnvFilterDeviceName); name != "" {
			f.Flags |= MatchDeviceName
			f.MatchName = name
		}
	}
	return f
}

// TestAdapter implements DeviceFilter.
func (f *DefaultFilter) TestAdapter(a *Adapter) bool {
	log := Logger()
	props := a.DeviceProperties()

	if props.APIVersion < MinAPIVersion {
		log.Warn("dxrt: skipping adapter with outdated API version",
			"adapter", a.Name(), "api", loader.FormatVersion(props.APIVersion))
		return false
	}
	if f.Flags&MatchDeviceName != 0 && !strings.Contains(a.Name(), f.MatchName) {
		log.Debug("dxrt: skipping adapter not matching filter", "adapter", a.Name(), "match", f.MatchName)
		return false
	}
	if f.Flags&SkipCPUDevices != 0 && props.DeviceType == gputypes.DeviceTypeCPU {
		log.Warn("dxrt: skipping CPU adapter", "adapter", a.Name())
		return false
	}
	return true
}
