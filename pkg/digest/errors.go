// Copyright 2025 The u-code Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digest

import (
	"errors"
	"fmt"
)

// Kind categorizes digest computation failures.
type Kind int

const (
	// KindUnknown indicates an unclassified failure.
	KindUnknown Kind = iota

	// KindUnsupportedAlgorithm indicates the requested algorithm is not in
	// this build's catalog.
	KindUnsupportedAlgorithm

	// KindInvalidInput indicates a caller-supplied argument was unusable,
	// such as a negative chunk size.
	KindInvalidInput

	// KindFileAccess indicates the target file could not be opened or read.
	KindFileAccess

	// KindComputation indicates the hash engine itself failed.
	KindComputation
)

// String returns a human-readable name for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedAlgorithm:
		return "UnsupportedAlgorithm"
	case KindInvalidInput:
		return "InvalidInput"
	case KindFileAccess:
		return "FileAccess"
	case KindComputation:
		return "Computation"
	default:
		return "Unknown"
	}
}

// Error is the structured error returned by digest operations.
//
// Kind supports programmatic handling, Algorithm and Path identify the
// failing request, and Cause carries the underlying error for chain
// unwrapping:
//
//	if digest.IsKind(err, digest.KindFileAccess) {
//	    // the file could not be opened or read
//	}
//	if errors.Is(err, os.ErrNotExist) {
//	    // the file does not exist
//	}
type Error struct {
	// Kind categorizes the failure.
	Kind Kind

	// Algorithm is the requested algorithm name, when known.
	Algorithm string

	// Path is the file involved in the failure, if any.
	Path string

	// Message is a short human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Algorithm != "" {
		msg += fmt.Sprintf(" (algorithm: %s)", e.Algorithm)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is, or wraps, an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
