// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ext

// Mode controls how an extension participates in negotiation.
type Mode uint8

const (
	// ModeDisabled never enables the extension, even when available.
	ModeDisabled Mode = iota
	// ModeOptional enables the extension when available and skips it otherwise.
	ModeOptional
	// ModeRequired enables the extension and fails negotiation when it is missing.
	ModeRequired
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "Disabled"
	case ModeOptional:
		return "Optional"
	case ModeRequired:
		return "Required"
	default:
		return "Unknown"
	}
}

// Extension describes a single named extension and its negotiation state.
//
// The enabled flag is the only mutable part. Descriptors live for one
// negotiation and are discarded once the instance has been created.
type Extension struct {
	name       string
	mode       Mode
	promotedIn uint32
	enabled    bool
}

// NewExtension creates an extension descriptor with the given mode.
func NewExtension(name string, mode Mode) *Extension {
	return &Extension{name: name, mode: mode}
}

// WithPromotion records the packed API version in which the extension became
// part of the core API. Zero means the extension was never promoted.
func (e *Extension) WithPromotion(version uint32) *Extension {
	e.promotedIn = version
	return e
}

// Name returns the extension name.
func (e *Extension) Name() string { return e.name }

// Mode returns the negotiation mode.
func (e *Extension) Mode() Mode { return e.mode }

// PromotedIn returns the packed core API version that subsumes the extension,
// or zero.
func (e *Extension) PromotedIn() uint32 { return e.promotedIn }

// IsPromoted reports whether apiVersion already includes the extension.
func (e *Extension) IsPromoted(apiVersion uint32) bool {
	return e.promotedIn != 0 && apiVersion >= e.promotedIn
}

// Enabled reports whether negotiation enabled the extension.
func (e *Extension) Enabled() bool { return e.enabled }

func (e *Extension) enable() { e.enabled = true }

// NameList is an ordered list of extension names, as passed to instance
// creation.
type NameList []string

// Count returns the number of names.
func (l NameList) Count() int { return len(l) }

// Name returns the name at index i.
func (l NameList) Name(i int) string { return l[i] }
