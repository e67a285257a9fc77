// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxrt/ext"
	"github.com/gogpu/dxrt/loader"
	"github.com/gogpu/dxrt/loader/loadertest"
)

// allInstanceExtensions is every extension the runtime may ask for on any OS.
var allInstanceExtensions = []string{
	ext.KHRGetPhysicalDeviceProperties2Name,
	ext.KHRSurfaceName,
	ext.KHRWin32SurfaceName,
	ext.KHRXlibSurfaceName,
	ext.KHRWaylandSurfaceName,
	ext.EXTMetalSurfaceName,
}

// newFakeLoader returns a loader offering every instance extension and the
// given devices.
func newFakeLoader(devices ...loadertest.Device) *loadertest.Loader {
	l := loadertest.WithExtensions(allInstanceExtensions...)
	l.Devices = devices
	return l
}

// envMap returns an environment lookup backed by m.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// syncBuffer is a bytes.Buffer safe for concurrent writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs routes dxrt logging into a buffer for the duration of the test.
func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	buf := &syncBuffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return buf
}

// testAdapter builds an adapter record without an instance.
func testAdapter(name string, typ gputypes.DeviceType) *Adapter {
	a := &Adapter{handle: loader.PhysicalDevice(len(name) + 1)}
	a.props.SetName(name)
	a.props.DeviceType = typ
	a.props.APIVersion = loader.APIVersion13
	return a
}

// adapterNames returns the names of adapters in order.
func adapterNames(adapters []*Adapter) []string {
	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Name()
	}
	return names
}

// testOptions returns default options with a fake loader and an empty env.
func testOptions(l loader.Loader, opts ...Option) options {
	o := defaultOptions()
	o.loader = l
	o.lookupEnv = envMap(nil)
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
