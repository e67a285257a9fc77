// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ext implements extension sets and the enable/merge operations used
// during instance negotiation.
//
// A NameSet reported by the driver is asked to enable a list of Extension
// descriptors into a second, initially empty NameSet:
//
//	supported := ext.FromProperties(props)
//	var enabled ext.NameSet
//	if !supported.Enable(exts.List(), &enabled) {
//	    // a required extension is missing
//	}
//	enabled.Merge(extra)
//	names := enabled.ToNameList()
package ext
