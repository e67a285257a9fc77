// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"os"
	"path/filepath"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
)

// Environment variables read by the runtime.
const (
	// EnvDefaultAdapter names the adapter that ranks first when present.
	EnvDefaultAdapter = "DXRT_DEFAULT_ADAPTER"
	// EnvFilterDeviceName restricts the default filter to adapters whose
	// name contains the value.
	EnvFilterDeviceName = "DXRT_FILTER_DEVICE_NAME"
)

// Engine identity embedded in every instance.
const (
	EngineName = "DXRT"
)

// EngineVersion is the packed engine version embedded in every instance.
var EngineVersion = loader.MakeVersion(0, 7, 2)

// Option configures a Runtime during creation.
//
// Example:
//
//	// Default HAL loader and device filter
//	rt, err := dxrt.New()
//
//	// Explicit loader and a custom filter
//	rt, err := dxrt.New(
//	    dxrt.WithLoader(l),
//	    dxrt.WithFilter(dxrt.FilterFunc(func(a *dxrt.Adapter) bool { return a.IsDiscrete() })),
//	)
type Option func(*options)

// options holds optional configuration for Runtime creation.
type options struct {
	loader     loader.Loader
	filter     DeviceFilter
	companion  Companion
	lookupEnv  func(string) string
	app        loader.ApplicationInfo
	extensions func() []*ext.Extension
}

// defaultOptions returns the default runtime options.
func defaultOptions() options {
	return options{
		loader:    nil, // Resolved from the loader registry if nil
		filter:    nil, // Set to NewDeviceFilter(lookupEnv) if nil
		lookupEnv: os.Getenv,
		app: loader.ApplicationInfo{
			ApplicationName: exeName(),
			EngineName:    EngineName,
			EngineVersion: EngineVersion,
		},
		extensions: func() []*ext.Extension { return ext.NewInstanceExtensions().List() },
	}
}

// exeName returns the base name of the running executable.
func exeName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// WithLoader sets the loader used to talk to the driver stack.
// Without it, the highest-priority registered loader is used.
func WithLoader(l loader.Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithFilter sets the suitability predicate applied to every adapter.
// Without it, NewDeviceFilter is used with the runtime's environment lookup.
func WithFilter(f DeviceFilter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithCompanion sets an auxiliary integration that may add instance
// extensions and inspect adapters after enumeration.
func WithCompanion(c Companion) Option {
	return func(o *options) {
		o.companion = c
	}
}

// WithEnv replaces os.Getenv as the source of environment overrides.
// A nil lookup is ignored.
func WithEnv(lookup func(string) string) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}

// WithEngine overrides the engine name and packed version embedded in the
// instance.
func WithEngine(name string, version uint32) Option {
	return func(o *options) {
		o.app.EngineName = name
		o.app.EngineVersion = version
	}
}

// WithApplication sets the application name and packed version embedded in
// the instance. The name defaults to the executable name.
func WithApplication(name string, version uint32) Option {
	return func(o *options) {
		o.app.ApplicationName = name
		o.app.ApplicationVersion = version
	}
}

// WithAPIVersion sets the API version requested at instance creation.
// Required extensions promoted into this version need not be offered by the
// driver.
func WithAPIVersion(version uint32) Option {
	return func(o *options) {
		o.app.APIVersion = version
	}
}

// WithInstanceExtensions replaces the default instance extension list.
// The constructor is called once per negotiation so descriptor state is
// never shared between runtimes.
func WithInstanceExtensions(newList func() []*ext.Extension) Option {
	return func(o *options) {
		if newList != nil {
			o.extensions = newList
		}
	}
}
