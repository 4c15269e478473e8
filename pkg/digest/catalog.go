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
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
)

// catalog is the process-wide algorithm table. It is populated once during
// package initialization and never mutated afterwards, which is what makes
// the lock-free lookups below safe under concurrent use.
var catalog = newCatalog()

// algorithmCatalog holds the descriptors by name plus their declaration
// order, so Algorithms can report a stable listing.
type algorithmCatalog struct {
	byName map[string]*Descriptor
	names  []string
}

func newCatalog() *algorithmCatalog {
	c := &algorithmCatalog{byName: make(map[string]*Descriptor)}

	for _, d := range coreDescriptors() {
		c.add(d)
	}
	for _, d := range extendedDescriptors() {
		c.add(d)
	}

	return c
}

func (c *algorithmCatalog) add(d *Descriptor) {
	if _, exists := c.byName[d.name]; exists {
		panic(fmt.Sprintf("duplicate hash algorithm %q", d.name))
	}
	c.byName[d.name] = d
	c.names = append(c.names, d.name)
}

// coreDescriptors returns the algorithms present in every build.
func coreDescriptors() []*Descriptor {
	return []*Descriptor{
		newDescriptor("md5", md5.Size, func() (hash.Hash, error) { return md5.New(), nil }),
		newDescriptor("sha1", sha1.Size, func() (hash.Hash, error) { return sha1.New(), nil }),
		newDescriptor("sha256", sha256.Size, func() (hash.Hash, error) { return sha256.New(), nil }),
	}
}

// Lookup returns the descriptor registered under name and whether the name
// is present in this build's catalog.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := catalog.byName[name]
	return d, ok
}

// IsSupported reports whether the algorithm is available in this build.
func IsSupported(name string) bool {
	_, ok := catalog.byName[name]
	return ok
}

// Algorithms returns this build's algorithm names in declaration order:
// md5, sha1, sha256, then the extended set when compiled in. The returned
// slice is a copy.
func Algorithms() []string {
	names := make([]string, len(catalog.names))
	copy(names, catalog.names)
	return names
}

// HashData computes the named algorithm's digest of data.
//
// Unknown algorithm names yield an Error of KindUnsupportedAlgorithm.
func HashData(algorithm string, data []byte) (Digest, error) {
	d, ok := Lookup(algorithm)
	if !ok {
		return Digest{}, unsupported(algorithm)
	}
	return d.HashData(data)
}

// HashFile computes the named algorithm's digest of the file at path,
// streaming it in DefaultChunkSize reads.
func HashFile(algorithm, path string) (Digest, error) {
	d, ok := Lookup(algorithm)
	if !ok {
		return Digest{}, unsupported(algorithm)
	}
	return d.HashFile(path)
}

// HashFileChunked is HashFile with a caller-controlled chunk size. A chunk
// size of 0 reads the whole file at once.
func HashFileChunked(algorithm, path string, chunkSize int) (Digest, error) {
	d, ok := Lookup(algorithm)
	if !ok {
		return Digest{}, unsupported(algorithm)
	}
	return d.HashFileChunked(path, chunkSize)
}

func unsupported(algorithm string) error {
	return &Error{
		Kind:      KindUnsupportedAlgorithm,
		Algorithm: algorithm,
		Message:   fmt.Sprintf("unsupported hash algorithm (supported: %v)", Algorithms()),
	}
}
