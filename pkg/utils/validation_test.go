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

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileExists(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(tmpFile, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	tests := []struct {
		name      string
		fieldName string
		path      string
		wantErr   bool
	}{
		{
			name:      "valid file",
			fieldName: "input",
			path:      tmpFile,
			wantErr:   false,
		},
		{
			name:      "empty path",
			fieldName: "input",
			path:      "",
			wantErr:   true,
		},
		{
			name:      "non-existent file",
			fieldName: "input",
			path:      "/nonexistent/file.txt",
			wantErr:   true,
		},
		{
			name:      "directory instead of file",
			fieldName: "input",
			path:      os.TempDir(),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileExists(tt.fieldName, tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileExists() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilesExist(t *testing.T) {
	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "file1.txt")
	file2 := filepath.Join(tmpDir, "file2.txt")
	if err := os.WriteFile(file1, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to write file1: %v", err)
	}
	if err := os.WriteFile(file2, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to write file2: %v", err)
	}

	tests := []struct {
		name      string
		fieldName string
		paths     []string
		wantErr   bool
	}{
		{
			name:      "all valid files",
			fieldName: "files",
			paths:     []string{file1, file2},
			wantErr:   false,
		},
		{
			name:      "empty path in slice",
			fieldName: "files",
			paths:     []string{file1, "", file2},
			wantErr:   true,
		},
		{
			name:      "non-existent file",
			fieldName: "files",
			paths:     []string{file1, "/nonexistent.txt"},
			wantErr:   true,
		},
		{
			name:      "empty slice",
			fieldName: "files",
			paths:     []string{},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilesExist(tt.fieldName, tt.paths)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilesExist() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
