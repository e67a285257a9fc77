// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"fmt"
	"sync"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
)

// Instance is the live connection to the driver stack.
//
// An Instance is created once by New and owned by its Runtime, which
// destroys it on Close. It is immutable after creation and safe for
// concurrent read-only use. Adapters keep a non-owning reference to it.
type Instance struct {
	loader     loader.Loader
	handle     loader.InstanceHandle
	extensions ext.NameList
	app        loader.ApplicationInfo

	destroyOnce sync.Once
}

// Handle returns the loader handle of the instance.
func (i *Instance) Handle() loader.InstanceHandle { return i.handle }

// Loader returns the loader the instance was created with.
func (i *Instance) Loader() loader.Loader { return i.loader }

// Extensions returns the names of the enabled instance extensions.
func (i *Instance) Extensions() ext.NameList {
	return append(ext.NameList(nil), i.extensions...)
}

// Application returns the identity metadata embedded at creation.
func (i *Instance) Application() loader.ApplicationInfo { return i.app }

// destroy releases the handle. Later calls do nothing.
func (i *Instance) destroy() {
	i.destroyOnce.Do(func() {
		i.loader.DestroyInstance(i.handle)
	})
}

// negotiateExtensions computes the instance extensions to enable.
//
// Required extensions must be offered by the driver unless apiVersion
// already includes them. Companion extensions are merged afterwards without
// being checked; the loader rejects them at creation if they are bogus.
func negotiateExtensions(l loader.Loader, apiVersion uint32, wanted []*ext.Extension, companion Companion) (ext.NameList, error) {
	props, err := l.InstanceExtensionProperties()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstanceCreation, err)
	}
	available := ext.FromProperties(props)

	var enabled ext.NameSet
	if !available.EnableAt(apiVersion, wanted, &enabled) {
		return nil, &ExtensionError{Missing: available.Missing(apiVersion, wanted)}
	}

	if companion != nil {
		enabled.Merge(companion.InstanceExtensions())
	}
	return enabled.ToNameList(), nil
}

// createInstance negotiates extensions and creates the instance.
func createInstance(l loader.Loader, o *options) (*Instance, error) {
	names, err := negotiateExtensions(l, o.app.APIVersion, o.extensions(), o.companion)
	if err != nil {
		return nil, err
	}

	log := Logger()
	log.Info("dxrt: enabled instance extensions", "count", names.Count())
	for _, n := range names {
		log.Info("dxrt: instance extension", "name", n)
	}

	info := &loader.InstanceCreateInfo{
		Application:           o.app,
		EnabledExtensionNames: names,
	}
	handle, res := l.CreateInstance(info)
	if res != loader.Success {
		return nil, fmt.Errorf("%w: %w", ErrInstanceCreation, res)
	}

	return &Instance{
		loader:     l,
		handle:     handle,
		extensions: names,
		app:        o.app,
	}, nil
}
