// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxrt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInstanceCreation is returned when no instance could be created,
	// either because negotiation failed or because the loader refused.
	ErrInstanceCreation = errors.New("dxrt: failed to create instance")

	// ErrExtensionUnsatisfiable is returned when a required instance
	// extension is not supported by the driver. It always accompanies
	// ErrInstanceCreation.
	ErrExtensionUnsatisfiable = errors.New("dxrt: required extension not supported")

	// ErrEnumeration is returned when either phase of physical device
	// enumeration reports a failure.
	ErrEnumeration = errors.New("dxrt: failed to enumerate adapters")
)

// ExtensionError lists the required extensions a driver did not offer.
// It matches both ErrExtensionUnsatisfiable and ErrInstanceCreation.
type ExtensionError struct {
	Missing []string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrExtensionUnsatisfiable, strings.Join(e.Missing, ", "))
}

// Is reports whether target is one of the sentinels this error stands for.
func (e *ExtensionError) Is(target error) bool {
	return target == ErrExtensionUnsatisfiable || target == ErrInstanceCreation
}
