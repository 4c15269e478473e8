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

package digest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalog(t *testing.T) {
	if Extended() {
		t.Error("Extended() = true, want false")
	}

	want := []string{"md5", "sha1", "sha256"}
	if diff := cmp.Diff(want, Algorithms()); diff != "" {
		t.Errorf("Algorithms() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedNamesAbsentByDefault(t *testing.T) {
	for _, name := range []string{"md2", "md4", "sha384", "sha512"} {
		if IsSupported(name) {
			t.Errorf("IsSupported(%q) = true, want false in default builds", name)
		}
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) = _, true, want false in default builds", name)
		}
	}

	fns := Functions()
	names := []string{
		"md2", "md4", "sha384", "sha512",
		"md2_file", "md4_file", "sha384_file", "sha512_file",
	}
	for _, name := range names {
		if _, ok := fns[name]; ok {
			t.Errorf("Functions() contains %q, want absent in default builds", name)
		}
	}
}

func TestExtendedAlgorithmsUnsupportedByDefault(t *testing.T) {
	for _, name := range []string{"md2", "md4", "sha384", "sha512"} {
		_, err := HashData(name, []byte("abc"))
		if !IsKind(err, KindUnsupportedAlgorithm) {
			t.Errorf("HashData(%q) error = %v, want KindUnsupportedAlgorithm", name, err)
		}
	}
}
