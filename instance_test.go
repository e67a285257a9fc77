// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
	"github.com/gogpu/dxrt/loader/loadertest"
)

// extraCompanion contributes fixed instance extensions.
type extraCompanion struct {
	names    []string
	initWith *Runtime
	inits    int
}

func (c *extraCompanion) InstanceExtensions() ext.NameSet { return ext.NewNameSet(c.names...) }

func (c *extraCompanion) InitDeviceExtensions(rt *Runtime) {
	c.initWith = rt
	c.inits++
}

func requiredExts(names ...string) func() []*ext.Extension {
	return func() []*ext.Extension {
		exts := make([]*ext.Extension, len(names))
		for i, n := range names {
			exts[i] = ext.NewExtension(n, ext.ModeRequired)
		}
		return exts
	}
}

func TestCreateInstance_EnablesRequestedSubset(t *testing.T) {
	l := loadertest.WithExtensions("Ext1", "Ext2", "Ext3")
	o := testOptions(l, WithInstanceExtensions(requiredExts("Ext1", "Ext2")))

	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	want := []string{"Ext1", "Ext2"}
	if got := []string(inst.Extensions()); !slices.Equal(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
	if got := l.CreateInfo.EnabledExtensionNames; !slices.Equal(got, want) {
		t.Errorf("passed to loader = %v, want %v", got, want)
	}
	if inst.Handle() == 0 {
		t.Error("Handle() is null")
	}
}

func TestCreateInstance_MissingRequiredExtension(t *testing.T) {
	l := loadertest.WithExtensions("Ext1")
	o := testOptions(l, WithInstanceExtensions(requiredExts("Ext1", "Ext2")))

	_, err := createInstance(l, &o)
	if !errors.Is(err, ErrExtensionUnsatisfiable) {
		t.Fatalf("error = %v, want ErrExtensionUnsatisfiable", err)
	}
	if !errors.Is(err, ErrInstanceCreation) {
		t.Errorf("error = %v, want it to match ErrInstanceCreation", err)
	}
	var extErr *ExtensionError
	if !errors.As(err, &extErr) || !slices.Equal(extErr.Missing, []string{"Ext2"}) {
		t.Errorf("ExtensionError = %+v, want Missing [Ext2]", extErr)
	}
	if l.CreateInfo != nil {
		t.Error("CreateInstance called despite failed negotiation")
	}
}

func TestCreateInstance_QueryFailure(t *testing.T) {
	l := &loadertest.Loader{QueryErr: loader.ErrorInitializationFailed}
	o := testOptions(l)

	_, err := createInstance(l, &o)
	if !errors.Is(err, ErrInstanceCreation) {
		t.Fatalf("error = %v, want ErrInstanceCreation", err)
	}
	if errors.Is(err, ErrExtensionUnsatisfiable) {
		t.Error("missing driver reported as unsatisfiable extension")
	}
	if !errors.Is(err, loader.ErrorInitializationFailed) {
		t.Errorf("error = %v, want loader cause", err)
	}
}

func TestCreateInstance_LoaderRefuses(t *testing.T) {
	l := newFakeLoader()
	l.CreateResult = loader.ErrorIncompatibleDriver
	o := testOptions(l)

	_, err := createInstance(l, &o)
	if !errors.Is(err, ErrInstanceCreation) {
		t.Fatalf("error = %v, want ErrInstanceCreation", err)
	}
	if !errors.Is(err, loader.ErrorIncompatibleDriver) {
		t.Errorf("error = %v, want ErrorIncompatibleDriver cause", err)
	}
}

func TestCreateInstance_MergesCompanionUnchecked(t *testing.T) {
	l := loadertest.WithExtensions("Ext1")
	c := &extraCompanion{names: []string{"VR1", "Ext1"}}
	o := testOptions(l, WithInstanceExtensions(requiredExts("Ext1")), WithCompanion(c))

	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	if got, want := []string(inst.Extensions()), []string{"Ext1", "VR1"}; !slices.Equal(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
}

func TestCreateInstance_PromotedExtension(t *testing.T) {
	l := loadertest.WithExtensions(ext.KHRSurfaceName)
	newList := func() []*ext.Extension {
		return []*ext.Extension{
			ext.NewExtension(ext.KHRGetPhysicalDeviceProperties2Name, ext.ModeRequired).WithPromotion(loader.APIVersion11),
			ext.NewExtension(ext.KHRSurfaceName, ext.ModeRequired),
		}
	}

	o := testOptions(l, WithInstanceExtensions(newList))
	if _, err := createInstance(l, &o); !errors.Is(err, ErrExtensionUnsatisfiable) {
		t.Errorf("API 1.0: error = %v, want ErrExtensionUnsatisfiable", err)
	}

	o = testOptions(l, WithInstanceExtensions(newList), WithAPIVersion(loader.APIVersion11))
	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("API 1.1: error = %v", err)
	}
	if got := []string(inst.Extensions()); !slices.Equal(got, []string{ext.KHRSurfaceName}) {
		t.Errorf("Extensions() = %v", got)
	}
	if l.CreateInfo.Application.APIVersion != loader.APIVersion11 {
		t.Errorf("APIVersion = %s", loader.FormatVersion(l.CreateInfo.Application.APIVersion))
	}
}

func TestCreateInstance_EmbedsIdentity(t *testing.T) {
	l := newFakeLoader()
	o := testOptions(l, WithApplication("game.exe", loader.MakeVersion(2, 0, 0)))

	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	app := l.CreateInfo.Application
	if app.EngineName != "DXRT" || app.EngineVersion != loader.MakeVersion(0, 7, 2) {
		t.Errorf("engine = %s %s", app.EngineName, loader.FormatVersion(app.EngineVersion))
	}
	if app.ApplicationName != "game.exe" {
		t.Errorf("application = %q", app.ApplicationName)
	}
	if inst.Application() != app {
		t.Errorf("Application() = %+v, want %+v", inst.Application(), app)
	}
}

func TestCreateInstance_LogsEnabledExtensions(t *testing.T) {
	logs := captureLogs(t)
	l := loadertest.WithExtensions("Ext1", "Ext2")
	o := testOptions(l, WithInstanceExtensions(requiredExts("Ext1", "Ext2")))

	if _, err := createInstance(l, &o); err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	out := logs.String()
	for _, want := range []string{"enabled instance extensions", "name=Ext1", "name=Ext2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestInstance_DestroyOnce(t *testing.T) {
	l := newFakeLoader()
	o := testOptions(l)
	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	inst.destroy()
	inst.destroy()
	if l.DestroyedCalls != 1 {
		t.Errorf("DestroyInstance called %d times, want 1", l.DestroyedCalls)
	}
}

func TestInstance_ExtensionsIsCopy(t *testing.T) {
	l := newFakeLoader()
	o := testOptions(l)
	inst, err := createInstance(l, &o)
	if err != nil {
		t.Fatalf("createInstance() error = %v", err)
	}
	names := inst.Extensions()
	names[0] = "changed"
	if inst.Extensions()[0] == "changed" {
		t.Error("Extensions() exposes internal storage")
	}
}
