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

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecochard/u-code/cmd/udigest/cli/options"
	"github.com/ecochard/u-code/pkg/digest"
	"github.com/ecochard/u-code/pkg/tracing"
	"github.com/ecochard/u-code/pkg/utils"
)

// File creates the file subcommand, which hashes file contents.
//
// Returns a *cobra.Command configured for hashing one or more files.
func File() *cobra.Command {
	o := &options.FileOptions{}

	long := `Print digests of files.

Hashes the contents of each FILE_PATH and prints one line per file and
algorithm. Files are streamed in fixed-size chunks, so arbitrarily large
files can be hashed without loading them into memory.

With a single --algorithm (the default is sha256), lines have the form
"DIGEST  FILE_PATH". With multiple algorithms the digest is prefixed with
the algorithm name.`

	cmd := &cobra.Command{
		Use:   "file [OPTIONS] FILE_PATH...",
		Short: "Print digests of files.",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd.Context(), o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runFile(ctx context.Context, o *options.FileOptions, paths []string) error {
	obs := ro.NewObservability()

	if err := validateAlgorithms(o.Algorithms); err != nil {
		return err
	}
	if o.ChunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", o.ChunkSize)
	}
	if err := utils.ValidateFilesExist("file path", paths); err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"udigest.algorithms": strings.Join(o.Algorithms, ","),
		"udigest.files":      len(paths),
		"udigest.chunk_size": o.ChunkSize,
	}
	return tracing.Run(ctx, "HashFiles", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, algorithm := range o.Algorithms {
				obs.Logger.Debug("hashing %s with %s (chunk size %d)", path, algorithm, o.ChunkSize)
				d, err := digest.HashFileChunked(algorithm, path, o.ChunkSize)
				if err != nil {
					return err
				}
				if len(o.Algorithms) == 1 {
					fmt.Printf("%s  %s\n", d.Hex(), path)
				} else {
					fmt.Printf("%s  %s\n", d.String(), path)
				}
			}
		}
		return nil
	})
}
