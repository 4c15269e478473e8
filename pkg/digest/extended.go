//go:build extended

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

// When built with -tags=extended, this file adds the legacy and
// wide-digest algorithms (md2, md4, sha384, sha512) to the catalog.

package digest

import (
	"crypto/sha512"
	"hash"

	md2 "github.com/htruong/go-md2"
	"golang.org/x/crypto/md4"
)

// Extended reports whether this binary carries the extended algorithm set.
func Extended() bool {
	return true
}

// extendedDescriptors returns the additional algorithms of extended
// builds, in catalog order.
func extendedDescriptors() []*Descriptor {
	return []*Descriptor{
		newDescriptor("md2", md2.Size, func() (hash.Hash, error) { return md2.New(), nil }),
		newDescriptor("md4", md4.Size, func() (hash.Hash, error) { return md4.New(), nil }),
		newDescriptor("sha384", sha512.Size384, func() (hash.Hash, error) { return sha512.New384(), nil }),
		newDescriptor("sha512", sha512.Size, func() (hash.Hash, error) { return sha512.New(), nil }),
	}
}
