// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.loader != nil || o.filter != nil || o.companion != nil {
		t.Errorf("defaults should leave loader, filter and companion unset: %+v", o)
	}
	if o.lookupEnv == nil {
		t.Error("lookupEnv is nil")
	}
	if o.app.EngineName != EngineName || o.app.EngineVersion != EngineVersion {
		t.Errorf("engine = %s %d", o.app.EngineName, o.app.EngineVersion)
	}
	if want := filepath.Base(os.Args[0]); o.app.ApplicationName != want {
		t.Errorf("ApplicationName = %q, want executable name %q", o.app.ApplicationName, want)
	}
	if o.app.APIVersion != 0 {
		t.Errorf("APIVersion = %s, want unset", loader.FormatVersion(o.app.APIVersion))
	}
}

func TestDefaultOptions_FreshExtensionList(t *testing.T) {
	o := defaultOptions()
	first := o.extensions()
	second := o.extensions()
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("extension lists: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] == second[i] {
			t.Errorf("descriptor %s shared between calls", first[i].Name())
		}
	}
}

func TestOptions(t *testing.T) {
	l := newFakeLoader()
	c := &extraCompanion{}
	env := envMap(map[string]string{"K": "v"})
	list := func() []*ext.Extension { return nil }
	filter := &DefaultFilter{Flags: MatchDeviceName, MatchName: "Radeon"}

	o := defaultOptions()
	for _, opt := range []Option{
		WithLoader(l),
		WithFilter(filter),
		WithCompanion(c),
		WithEnv(env),
		WithEngine("Other", 7),
		WithApplication("app", 3),
		WithAPIVersion(loader.APIVersion12),
		WithInstanceExtensions(list),
	} {
		opt(&o)
	}

	if o.loader != l || o.filter != DeviceFilter(filter) || o.companion != c {
		t.Error("loader, filter or companion not applied")
	}
	if o.filter.TestAdapter(testAdapter("GeForce", gputypes.DeviceTypeDiscreteGPU)) {
		t.Error("configured filter not in effect")
	}
	if o.lookupEnv("K") != "v" {
		t.Error("WithEnv not applied")
	}
	if o.app.EngineName != "Other" || o.app.EngineVersion != 7 {
		t.Errorf("engine = %s %d", o.app.EngineName, o.app.EngineVersion)
	}
	if o.app.ApplicationName != "app" || o.app.ApplicationVersion != 3 {
		t.Errorf("application = %s %d", o.app.ApplicationName, o.app.ApplicationVersion)
	}
	if o.app.APIVersion != loader.APIVersion12 {
		t.Errorf("APIVersion = %s", loader.FormatVersion(o.app.APIVersion))
	}
	if o.extensions() != nil {
		t.Error("WithInstanceExtensions not applied")
	}
}

func TestOptions_NilIgnored(t *testing.T) {
	o := defaultOptions()
	WithEnv(nil)(&o)
	WithInstanceExtensions(nil)(&o)
	if o.lookupEnv == nil || o.extensions == nil {
		t.Error("nil option arguments replaced defaults")
	}
}
