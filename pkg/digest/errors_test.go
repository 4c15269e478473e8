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
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind and message only",
			err:  &Error{Kind: KindComputation, Message: "create hash engine"},
			want: "Computation: create hash engine",
		},
		{
			name: "with algorithm",
			err:  &Error{Kind: KindUnsupportedAlgorithm, Algorithm: "whirlpool", Message: "unsupported hash algorithm"},
			want: "UnsupportedAlgorithm: unsupported hash algorithm (algorithm: whirlpool)",
		},
		{
			name: "with algorithm, path and cause",
			err:  &Error{Kind: KindFileAccess, Algorithm: "md5", Path: "/tmp/x", Message: "open file", Cause: cause},
			want: "FileAccess: open file (algorithm: md5) (path: /tmp/x): permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{Kind: KindFileAccess, Message: "read file", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := &Error{Kind: KindFileAccess, Message: "open file"}
	wrapped := fmt.Errorf("hashing input: %w", inner)

	if !IsKind(wrapped, KindFileAccess) {
		t.Error("IsKind(wrapped, KindFileAccess) = false, want true")
	}
	if IsKind(wrapped, KindComputation) {
		t.Error("IsKind(wrapped, KindComputation) = true, want false")
	}
	if IsKind(nil, KindFileAccess) {
		t.Error("IsKind(nil, KindFileAccess) = true, want false")
	}
	if IsKind(errors.New("plain"), KindFileAccess) {
		t.Error("IsKind(plain error, KindFileAccess) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindUnknown, want: "Unknown"},
		{kind: KindUnsupportedAlgorithm, want: "UnsupportedAlgorithm"},
		{kind: KindInvalidInput, want: "InvalidInput"},
		{kind: KindFileAccess, want: "FileAccess"},
		{kind: KindComputation, want: "Computation"},
		{kind: Kind(99), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
