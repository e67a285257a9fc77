// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"fmt"
	"sync"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
)

// Companion is an optional integration with requirements of its own, such as
// a VR compositor. It contributes instance extensions before the instance is
// created and is handed the runtime once adapters are known.
type Companion interface {
	// InstanceExtensions returns extra instance extensions to enable.
	// They are trusted and not checked against the driver.
	InstanceExtensions() ext.NameSet

	// InitDeviceExtensions is called once after adapters are ranked.
	InitDeviceExtensions(rt *Runtime)
}

// Runtime owns the instance and the ranked adapter list.
//
// New must be called once per runtime; there is no way to re-create the
// instance of an existing Runtime. After New returns, a Runtime is safe for
// concurrent use.
type Runtime struct {
	instance *Instance
	adapters []*Adapter

	closeOnce sync.Once
}

// New creates the instance, enumerates adapters, filters and ranks them.
//
// Failures are returned as ErrInstanceCreation (with ErrExtensionUnsatisfiable
// when a required extension is missing) or ErrEnumeration. Finding no usable
// adapter is not an error: the runtime is returned with an empty list.
func New(opts ...Option) (*Runtime, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	log.Info("dxrt: engine", "name", o.app.EngineName, "version", loader.FormatVersion(o.app.EngineVersion))
	if o.app.ApplicationName != "" {
		log.Info("dxrt: application", "name", o.app.ApplicationName,
			"version", loader.FormatVersion(o.app.ApplicationVersion))
	}

	l := o.loader
	if l == nil {
		var err error
		if l, err = loader.Default(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInstanceCreation, err)
		}
	}

	inst, err := createInstance(l, &o)
	if err != nil {
		return nil, err
	}

	raw, err := queryAdapters(inst)
	if err != nil {
		inst.destroy()
		return nil, err
	}

	filter := o.filter
	if filter == nil {
		filter = NewDeviceFilter(o.lookupEnv)
	}

	rt := &Runtime{
		instance: inst,
		adapters: selectAdapters(raw, filter, o.lookupEnv),
	}
	for i, a := range rt.adapters {
		log.Info("dxrt: adapter", "index", i, "name", a.Name(), "type", a.DeviceType())
	}

	if o.companion != nil {
		o.companion.InitDeviceExtensions(rt)
	}
	return rt, nil
}

// Instance returns the instance owned by the runtime.
func (r *Runtime) Instance() *Instance { return r.instance }

// Adapters returns the ranked adapters. The slice is a copy; the adapters
// are shared.
func (r *Runtime) Adapters() []*Adapter {
	return append([]*Adapter(nil), r.adapters...)
}

// EnumAdapters returns the adapter at index, or nil if index is out of range.
func (r *Runtime) EnumAdapters(index int) *Adapter {
	if index < 0 || index >= len(r.adapters) {
		return nil
	}
	return r.adapters[index]
}

// DefaultAdapter returns the best ranked adapter, or nil if there is none.
func (r *Runtime) DefaultAdapter() *Adapter {
	return r.EnumAdapters(0)
}

// Close destroys the instance. Adapters must not be used afterwards.
// Close may be called more than once.
func (r *Runtime) Close() {
	r.closeOnce.Do(func() {
		r.instance.destroy()
	})
}
