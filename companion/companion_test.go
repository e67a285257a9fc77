// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package companion_test

import (
	"slices"
	"testing"

	"github.com/gogpu/dxrt"
	"github.com/gogpu/dxrt/companion"
	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader/loadertest"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"VK_KHR_external_memory_capabilities", []string{"VK_KHR_external_memory_capabilities"}},
		{" A  B\tC ", []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		if got := companion.ParseNames(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("ParseNames(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatic_InstanceExtensions(t *testing.T) {
	names := []string{"VR1", "VR2", "VR1"}
	c := companion.NewStatic(names, nil)
	names[0] = "changed"

	got := c.InstanceExtensions()
	if !slices.Equal(got.Names(), []string{"VR1", "VR2"}) {
		t.Errorf("InstanceExtensions() = %v", got.Names())
	}
}

func TestStatic_WithRuntime(t *testing.T) {
	extensions := []string{
		ext.KHRGetPhysicalDeviceProperties2Name,
		ext.KHRSurfaceName,
		ext.KHRWin32SurfaceName,
		ext.KHRXlibSurfaceName,
		ext.KHRWaylandSurfaceName,
		ext.EXTMetalSurfaceName,
	}
	l := loadertest.WithExtensions(extensions...)
	l.Devices = []loadertest.Device{loadertest.Discrete("A"), loadertest.Integrated("B")}

	c := companion.NewStatic([]string{"VR_instance"}, []string{"VR_device"})
	rt, err := dxrt.New(
		dxrt.WithLoader(l),
		dxrt.WithEnv(func(string) string { return "" }),
		dxrt.WithCompanion(c),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer rt.Close()

	if !slices.Contains(rt.Instance().Extensions(), "VR_instance") {
		t.Errorf("companion instance extension not enabled: %v", rt.Instance().Extensions())
	}
	if !slices.Contains(l.CreateInfo.EnabledExtensionNames, "VR_instance") {
		t.Error("companion instance extension not passed to the loader")
	}

	for _, a := range rt.Adapters() {
		set, ok := c.DeviceExtensions(a)
		if !ok || !set.Has("VR_device") {
			t.Errorf("DeviceExtensions(%s) = %v, %v", a.Name(), set.Names(), ok)
		}
		set.Add("mutated", 0)
		again, _ := c.DeviceExtensions(a)
		if again.Has("mutated") {
			t.Error("DeviceExtensions exposes internal state")
		}
	}

	if _, ok := c.DeviceExtensions(&dxrt.Adapter{}); ok {
		t.Error("unknown adapter reported as known")
	}
}
