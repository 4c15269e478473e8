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
	"fmt"
	"hash"
	"io"
	"os"
)

// DefaultChunkSize is the number of bytes read per chunk when streaming a
// file through a hash engine.
const DefaultChunkSize = 8192

// engineFactory creates a fresh hash engine for a single computation.
// Factories must return a new instance on every call so that concurrent
// computations never share state.
type engineFactory func() (hash.Hash, error)

// Descriptor binds an algorithm name to its digest size and to the engine
// that computes it.
//
// Descriptors are created during package initialization and never modified
// afterwards; the catalog hands out the same *Descriptor to every caller,
// and all per-computation state lives in engine instances created on
// demand. Descriptor methods are therefore safe for concurrent use.
type Descriptor struct {
	name    string
	size    int
	factory engineFactory
}

func newDescriptor(name string, size int, factory engineFactory) *Descriptor {
	return &Descriptor{
		name:    name,
		size:    size,
		factory: factory,
	}
}

// Name returns the public algorithm identifier, e.g. "sha256".
func (d *Descriptor) Name() string {
	return d.name
}

// Size returns the length in bytes of digests produced by this algorithm.
// The Hex form of a digest is twice this many characters.
func (d *Descriptor) Size() int {
	return d.size
}

// HashData computes the digest of data in a single pass.
//
// Exactly len(data) bytes are hashed; embedded NUL bytes carry no special
// meaning. The input slice is never modified. Equal inputs always produce
// equal digests.
func (d *Descriptor) HashData(data []byte) (Digest, error) {
	h, err := d.newEngine()
	if err != nil {
		return Digest{}, err
	}

	// hash.Hash.Write never returns an error per the interface contract.
	_, _ = h.Write(data)

	return NewDigest(d.name, h.Sum(nil)), nil
}

// HashFile computes the digest of the file at path, streaming it in
// DefaultChunkSize reads. See HashFileChunked for control over the chunk
// size.
func (d *Descriptor) HashFile(path string) (Digest, error) {
	return d.HashFileChunked(path, DefaultChunkSize)
}

// HashFileChunked computes the digest of the file at path, reading at most
// chunkSize bytes at a time so memory use stays bounded regardless of file
// size. A chunkSize of 0 reads the whole file at once.
//
// The file is opened read-only and closed before returning; it is never
// created, modified or deleted. Open and read failures are reported as
// KindFileAccess errors wrapping the underlying cause.
func (d *Descriptor) HashFileChunked(path string, chunkSize int) (Digest, error) {
	if chunkSize < 0 {
		return Digest{}, &Error{
			Kind:      KindInvalidInput,
			Algorithm: d.name,
			Path:      path,
			Message:   fmt.Sprintf("chunk size must be non-negative, got %d", chunkSize),
		}
	}

	h, err := d.newEngine()
	if err != nil {
		return Digest{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Digest{}, &Error{
			Kind:      KindFileAccess,
			Algorithm: d.name,
			Path:      path,
			Message:   "open file",
			Cause:     err,
		}
	}
	defer f.Close()

	if chunkSize == 0 {
		// Read everything in one go.
		data, err := io.ReadAll(f)
		if err != nil {
			return Digest{}, &Error{
				Kind:      KindFileAccess,
				Algorithm: d.name,
				Path:      path,
				Message:   "read file",
				Cause:     err,
			}
		}
		_, _ = h.Write(data)
	} else {
		// Stream in fixed-size chunks.
		buf := make([]byte, chunkSize)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				_, _ = h.Write(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					break
				}
				return Digest{}, &Error{
					Kind:      KindFileAccess,
					Algorithm: d.name,
					Path:      path,
					Message:   "read file",
					Cause:     err,
				}
			}
		}
	}

	return NewDigest(d.name, h.Sum(nil)), nil
}

// newEngine creates a fresh engine instance, classifying factory failures.
func (d *Descriptor) newEngine() (hash.Hash, error) {
	h, err := d.factory()
	if err != nil {
		return nil, &Error{
			Kind:      KindComputation,
			Algorithm: d.name,
			Message:   "create hash engine",
			Cause:     err,
		}
	}
	return h, nil
}
