// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ext

// entry is a single named member of a NameSet.
type entry struct {
	name     string
	revision uint32
}

// NameSet is an ordered set of extension names.
//
// Names are unique and iterate in insertion order. The set reported by the
// driver and the set enabled by negotiation are always separate values.
// The zero value is an empty set ready to use. A NameSet refers to its
// contents, so copies made after the first Add see the same names; use Clone
// for an independent set.
type NameSet struct {
	p *nameSet
}

// nameSet is the storage shared by copies of a NameSet.
type nameSet struct {
	entries []entry
	index   map[string]int
}

// NewNameSet returns a set containing names with revision zero.
func NewNameSet(names ...string) NameSet {
	var s NameSet
	for _, n := range names {
		s.Add(n, 0)
	}
	return s
}

// Clone returns an independent copy of s.
func (s NameSet) Clone() NameSet {
	var c NameSet
	c.Merge(s)
	return c
}

// Add inserts name with the given extension revision. Adding an existing
// name keeps its position and the higher of the two revisions.
func (s *NameSet) Add(name string, revision uint32) {
	if s.p == nil {
		s.p = &nameSet{index: make(map[string]int)}
	}
	p := s.p
	if i, ok := p.index[name]; ok {
		if revision > p.entries[i].revision {
			p.entries[i].revision = revision
		}
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, entry{name: name, revision: revision})
}

// lookup returns the position of name.
func (s NameSet) lookup(name string) (int, bool) {
	if s.p == nil {
		return 0, false
	}
	i, ok := s.p.index[name]
	return i, ok
}

// all returns the entries in insertion order.
func (s NameSet) all() []entry {
	if s.p == nil {
		return nil
	}
	return s.p.entries
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// Revision returns the extension revision recorded for name.
func (s NameSet) Revision(name string) (uint32, bool) {
	i, ok := s.lookup(name)
	if !ok {
		return 0, false
	}
	return s.p.entries[i].revision, true
}

// Len returns the number of names.
func (s NameSet) Len() int { return len(s.all()) }

// Names returns the names in insertion order.
func (s NameSet) Names() []string {
	entries := s.all()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// SupportsAll reports whether every extension in exts is present.
func (s NameSet) SupportsAll(exts []*Extension) bool {
	for _, e := range exts {
		if !s.Has(e.name) {
			return false
		}
	}
	return true
}

// Enable enables every extension of exts that is present in s and copies it
// into out. It returns false if a required extension is missing.
//
// Enable is EnableAt with a core version that has promoted nothing.
func (s NameSet) Enable(exts []*Extension, out *NameSet) bool {
	return s.EnableAt(0, exts, out)
}

// EnableAt is like Enable, but a missing required extension that apiVersion
// already includes does not fail the call. Processing continues past a
// failure, so out may hold a partial result when false is returned.
func (s NameSet) EnableAt(apiVersion uint32, exts []*Extension, out *NameSet) bool {
	ok := true
	for _, e := range exts {
		if e.mode == ModeDisabled {
			continue
		}
		i, present := s.lookup(e.name)
		if !present {
			if e.mode == ModeRequired && !e.IsPromoted(apiVersion) {
				ok = false
			}
			continue
		}
		e.enable()
		out.Add(e.name, s.p.entries[i].revision)
	}
	return ok
}

// Missing returns the names of required extensions in exts that s lacks and
// apiVersion does not include.
func (s NameSet) Missing(apiVersion uint32, exts []*Extension) []string {
	var missing []string
	for _, e := range exts {
		if e.mode != ModeRequired || s.Has(e.name) || e.IsPromoted(apiVersion) {
			continue
		}
		missing = append(missing, e.name)
	}
	return missing
}

// Merge adds every name of other to s.
func (s *NameSet) Merge(other NameSet) {
	for _, e := range other.all() {
		s.Add(e.name, e.revision)
	}
}

// ToNameList returns the names of s in insertion order.
func (s NameSet) ToNameList() NameList {
	return NameList(s.Names())
}
