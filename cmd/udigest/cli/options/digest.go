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

package options

import (
	"github.com/ecochard/u-code/pkg/digest"
	"github.com/spf13/cobra"
)

// AlgorithmFlags selects the hash algorithms a command operates on.
// These flags are shared by the data and file commands.
type AlgorithmFlags struct {
	// Algorithms lists the hash algorithm names to compute.
	Algorithms []string
}

// AddFlags adds algorithm selection flags to the cobra command.
func (o *AlgorithmFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.Algorithms, "algorithm", "a", []string{"sha256"},
		"Hash algorithm to compute. Repeat for multiple algorithms.")
}

// ChunkFlags controls how file contents are read during hashing.
type ChunkFlags struct {
	// ChunkSize is the number of bytes read per chunk; 0 reads the whole file at once.
	ChunkSize int
}

// AddFlags adds file chunking flags to the cobra command.
func (o *ChunkFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", digest.DefaultChunkSize,
		"Number of bytes to read per chunk when hashing files. 0 reads the whole file at once.")
}

// ExpectedDigestFlags holds the expected digest for the check command.
type ExpectedDigestFlags struct {
	// Algorithm names the hash algorithm the expected digest was computed with.
	Algorithm string
	// Digest is the expected digest as a hex string.
	Digest string
}

// AddFlags adds expected digest flags to the cobra command.
func (o *ExpectedDigestFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", "sha256",
		"Hash algorithm the expected digest was computed with.")
	cmd.Flags().StringVarP(&o.Digest, "digest", "d", "",
		"Expected digest as a hex string. [required]")
	_ = cmd.MarkFlagRequired("digest")
}

// DataOptions holds the full set of flags for the data command.
type DataOptions struct {
	AlgorithmFlags
}

// AddFlags adds all data command flag groups to the cobra command.
func (o *DataOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags)
}

// FileOptions holds the full set of flags for the file command.
type FileOptions struct {
	AlgorithmFlags
	ChunkFlags
}

// AddFlags adds all file command flag groups to the cobra command.
func (o *FileOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.ChunkFlags)
}

// CheckOptions holds the full set of flags for the check command.
type CheckOptions struct {
	ExpectedDigestFlags
	ChunkFlags
}

// AddFlags adds all check command flag groups to the cobra command.
func (o *CheckOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.ExpectedDigestFlags, &o.ChunkFlags)
}

// AlgorithmsOptions holds flags for the algorithms command.
type AlgorithmsOptions struct {
	// Names prints the flat operation names instead of the algorithm summary.
	Names bool
}

// AddFlags adds algorithms command flags to the cobra command.
func (o *AlgorithmsOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Names, "names", false,
		"Print the flat data and file operation names, one per line.")
}
