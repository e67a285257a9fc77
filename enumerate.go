// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"fmt"

	"github.com/gogpu/dxrt/loader"
)

// enumeratePhysicalDevices runs the count/fetch protocol against inst.
//
// Any status other than Success fails the whole enumeration, including
// Incomplete, which means the device list grew between the two calls.
// A second call that reports fewer devices with Success is a hot-unplug and
// the shorter list is returned.
func enumeratePhysicalDevices(inst *Instance) ([]loader.PhysicalDevice, error) {
	l := inst.loader

	var count uint32
	if res := l.EnumeratePhysicalDevices(inst.handle, &count, nil); res != loader.Success {
		return nil, fmt.Errorf("%w: count: %w", ErrEnumeration, res)
	}
	Logger().Debug("dxrt: physical device count", "count", count)
	if count == 0 {
		return nil, nil
	}

	devices := make([]loader.PhysicalDevice, count)
	fetched := count
	if res := l.EnumeratePhysicalDevices(inst.handle, &fetched, devices); res != loader.Success {
		return nil, fmt.Errorf("%w: fetch: %w", ErrEnumeration, res)
	}
	if fetched < count {
		Logger().Debug("dxrt: physical device count shrank", "counted", count, "fetched", fetched)
		devices = devices[:fetched]
	}
	return devices, nil
}

// queryAdapters enumerates inst and snapshots the properties of each device.
func queryAdapters(inst *Instance) ([]*Adapter, error) {
	devices, err := enumeratePhysicalDevices(inst)
	if err != nil {
		return nil, err
	}
	adapters := make([]*Adapter, len(devices))
	for i, d := range devices {
		adapters[i] = newAdapter(inst, d)
	}
	return adapters, nil
}
