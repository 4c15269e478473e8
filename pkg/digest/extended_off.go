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

//go:build !extended

// This file provides the default catalog without the extended algorithms.
// When the package is built with -tags=extended, extended.go is compiled
// instead and adds md2, md4, sha384 and sha512.

package digest

// Extended reports whether this binary carries the extended algorithm set.
// In the default build (without -tags=extended), this always returns false.
func Extended() bool {
	return false
}

// extendedDescriptors returns no descriptors in default builds.
func extendedDescriptors() []*Descriptor {
	return nil
}
