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

	"github.com/spf13/cobra"

	"github.com/ecochard/u-code/cmd/udigest/cli/options"
	"github.com/ecochard/u-code/pkg/digest"
	"github.com/ecochard/u-code/pkg/logging"
	"github.com/ecochard/u-code/pkg/tracing"
	"github.com/ecochard/u-code/pkg/utils"
)

// mismatchError reports a failed digest comparison.
type mismatchError struct {
	path     string
	expected string
	actual   string
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("digest mismatch for %s: expected %s, got %s", e.path, e.expected, e.actual)
}

// ExitCode returns the exit status for verification failures.
func (e *mismatchError) ExitCode() int {
	return 1
}

// Check creates the check subcommand, which recomputes a file digest and
// compares it against an expected value.
//
// Returns a *cobra.Command configured for digest verification.
func Check() *cobra.Command {
	o := &options.CheckOptions{}

	long := `Check a file against an expected digest.

Recomputes the digest of FILE_PATH with the given algorithm and compares
it to the expected value passed via --digest. The expected digest may use
uppercase hex; the comparison is done on the decoded bytes.

Exits with status 1 when the digests do not match.`

	cmd := &cobra.Command{
		Use:   "check [OPTIONS] FILE_PATH",
		Short: "Check a file against an expected digest.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), o, args[0])
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runCheck(ctx context.Context, o *options.CheckOptions, path string) error {
	obs := ro.NewObservability()

	if err := validateAlgorithms([]string{o.Algorithm}); err != nil {
		return err
	}
	if o.ChunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", o.ChunkSize)
	}
	if err := utils.ValidateFileExists("file path", path); err != nil {
		return err
	}

	expected, err := digest.ParseHex(o.Algorithm, o.Digest)
	if err != nil {
		return fmt.Errorf("invalid expected digest: %w", err)
	}

	attrs := map[string]interface{}{
		"udigest.algorithm":  o.Algorithm,
		"udigest.file_path":  path,
		"udigest.chunk_size": o.ChunkSize,
	}
	return tracing.Run(ctx, "Check", attrs, func(context.Context) error {
		obs.Logger.Debug("hashing %s with %s (chunk size %d)", path, o.Algorithm, o.ChunkSize)
		actual, err := digest.HashFileChunked(o.Algorithm, path, o.ChunkSize)
		if err != nil {
			return err
		}

		if !actual.Equal(expected) {
			if ro.GetLogLevel() < logging.LevelSilent {
				fmt.Printf("%s: FAILED\n", path)
			}
			return &mismatchError{path: path, expected: expected.Hex(), actual: actual.Hex()}
		}

		if ro.GetLogLevel() < logging.LevelSilent {
			fmt.Printf("%s: OK\n", path)
		}
		return nil
	})
}
