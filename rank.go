// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import "slices"

// rankKey is the sort key of an adapter. Preferred beats discrete.
type rankKey struct {
	preferred bool
	discrete  bool
}

// rankKeyOf computes the key of a for the given override name.
// An empty override never matches.
func rankKeyOf(a *Adapter, override string) rankKey {
	return rankKey{
		preferred: override != "" && a.Name() == override,
		discrete:  a.IsDiscrete(),
	}
}

// compareKeys orders a before b when a ranks higher.
func compareKeys(a, b rankKey) int {
	if a.preferred != b.preferred {
		if a.preferred {
			return -1
		}
		return 1
	}
	if a.discrete != b.discrete {
		if a.discrete {
			return -1
		}
		return 1
	}
	return 0
}

// filterAdapters keeps the adapters accepted by f, in input order.
func filterAdapters(adapters []*Adapter, f DeviceFilter) []*Adapter {
	result := make([]*Adapter, 0, len(adapters))
	for _, a := range adapters {
		if f.TestAdapter(a) {
			result = append(result, a)
		}
	}
	return result
}

// rankAdapters sorts adapters in place: the override match first, then
// discrete GPUs. Ties keep enumeration order.
func rankAdapters(adapters []*Adapter, override string) {
	keys := make(map[*Adapter]rankKey, len(adapters))
	for _, a := range adapters {
		keys[a] = rankKeyOf(a, override)
	}
	slices.SortStableFunc(adapters, func(a, b *Adapter) int {
		return compareKeys(keys[a], keys[b])
	})
}

// selectAdapters filters raw and ranks the survivors. The override is read
// once from lookupEnv. An empty result is logged, not returned as an error.
func selectAdapters(raw []*Adapter, f DeviceFilter, lookupEnv func(string) string) []*Adapter {
	result := filterAdapters(raw, f)

	override := lookupEnv(EnvDefaultAdapter)
	Logger().Info("dxrt: default adapter override", "name", override)
	rankAdapters(result, override)

	if len(result) == 0 {
		Logger().Warn("dxrt: no adapters found, check the device filter settings and driver setup")
	}
	return result
}
