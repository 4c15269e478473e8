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

// Func is a single digest operation in the form an embedding host binds
// into its environment: one dynamically typed argument in, a hex string or
// an absent result out.
//
// A non-nil result is always the complete canonical lowercase hex digest.
// A nil result means the input was not hashable: wrong argument type, an
// unreadable file, or an engine failure. Func reports no distinction
// between these cases; use HashData and HashFile for structured errors.
type Func func(arg interface{}) *string

// Functions returns the name-to-operation table for embedding hosts.
//
// For every catalog algorithm NAME the table holds two entries: NAME,
// which hashes in-memory data passed as a string or []byte, and NAME_file,
// which hashes the contents of the file named by a string argument.
// Extended algorithms appear only in binaries built with -tags=extended;
// in default builds their names are absent rather than present but
// failing.
//
// The returned map is a fresh copy on every call, so hosts may take
// ownership of it.
func Functions() map[string]Func {
	fns := make(map[string]Func, 2*len(catalog.names))
	for _, name := range catalog.names {
		d := catalog.byName[name]
		fns[name] = dataFunc(d)
		fns[name+"_file"] = fileFunc(d)
	}
	return fns
}

// dataFunc adapts d.HashData to the Func calling convention. Arguments
// that are neither string nor []byte produce nil without hashing anything.
func dataFunc(d *Descriptor) Func {
	return func(arg interface{}) *string {
		var data []byte
		switch v := arg.(type) {
		case string:
			data = []byte(v)
		case []byte:
			data = v
		default:
			return nil
		}

		dg, err := d.HashData(data)
		if err != nil {
			return nil
		}

		s := dg.Hex()
		return &s
	}
}

// fileFunc adapts d.HashFile to the Func calling convention. Only a string
// argument names a file; anything else produces nil without touching the
// filesystem.
func fileFunc(d *Descriptor) Func {
	return func(arg interface{}) *string {
		path, ok := arg.(string)
		if !ok {
			return nil
		}

		dg, err := d.HashFile(path)
		if err != nil {
			return nil
		}

		s := dg.Hex()
		return &s
	}
}
