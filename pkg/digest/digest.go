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

// Package digest computes cryptographic digests of in-memory data and of
// files.
//
// The package exposes a fixed catalog of hash algorithms. Every build
// provides md5, sha1 and sha256; compiling with the "extended" build tag
// adds md2, md4, sha384 and sha512. Callers either go through the
// catalog-level helpers (HashData, HashFile) or fetch a *Descriptor via
// Lookup and use it directly. Functions exposes the same operations as a
// name-to-operation table for embedding hosts, where every failure
// collapses to an absent result.
//
// The algorithms here exist for checksums and interoperability with
// established digest formats, not for new security designs.
package digest

import (
	"encoding/hex"
	"fmt"
)

// Digest is a computed hash value together with the name of the algorithm
// that produced it.
//
// Digest is effectively immutable: both fields are unexported and every
// constructor and accessor copies the underlying bytes, so values can be
// shared freely across goroutines.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest builds a Digest from an algorithm name and raw digest bytes.
// The value slice is defensively copied, so later mutation of the caller's
// slice does not affect the returned Digest.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// ParseHex builds a Digest from a hexadecimal string as produced by Hex.
// Upper case input is accepted; the stored value is the decoded raw bytes,
// so Hex on the result is always canonical lower case.
func ParseHex(algorithm, s string) (Digest, error) {
	value, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("decode %s digest %q: %w", algorithm, s, err)
	}

	return Digest{
		algorithm: algorithm,
		value:     value,
	}, nil
}

// Algorithm returns the name of the algorithm that produced this digest,
// for example "sha256".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the canonical text form of the digest: lowercase
// hexadecimal, two characters per digest byte, without separators or
// prefix.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns a human-readable "algorithm:hex" form of the digest,
// for example "sha256:ba7816bf...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests carry the same algorithm name and
// identical value bytes.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}

	if len(d.value) != len(other.value) {
		return false
	}

	for i := range d.value {
		if d.value[i] != other.value[i] {
			return false
		}
	}

	return true
}
