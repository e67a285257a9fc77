// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import "fmt"

// Result is the status code returned by loader calls.
//
// Success is the only code that callers treat as success. Result implements
// error so that a failing code can be wrapped directly.
type Result int32

// Status codes. Values follow the driver API so they read the same in logs.
const (
	Success                   Result = 0
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorIncompatibleDriver   Result = -9
)

// String returns the status name.
func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Incomplete:
		return "Incomplete"
	case ErrorOutOfHostMemory:
		return "ErrorOutOfHostMemory"
	case ErrorOutOfDeviceMemory:
		return "ErrorOutOfDeviceMemory"
	case ErrorInitializationFailed:
		return "ErrorInitializationFailed"
	case ErrorDeviceLost:
		return "ErrorDeviceLost"
	case ErrorLayerNotPresent:
		return "ErrorLayerNotPresent"
	case ErrorExtensionNotPresent:
		return "ErrorExtensionNotPresent"
	case ErrorIncompatibleDriver:
		return "ErrorIncompatibleDriver"
	default:
		return fmt.Sprintf("Result(%d)", int32(r))
	}
}

// Error implements the error interface.
func (r Result) Error() string {
	return "loader: " + r.String()
}

// Succeeded reports whether r is Success.
func (r Result) Succeeded() bool { return r == Success }
