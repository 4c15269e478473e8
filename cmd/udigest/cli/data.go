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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecochard/u-code/cmd/udigest/cli/options"
	"github.com/ecochard/u-code/pkg/digest"
	"github.com/ecochard/u-code/pkg/tracing"
)

// Data creates the data subcommand, which hashes in-memory byte strings.
//
// Returns a *cobra.Command configured for hashing argument data or stdin.
func Data() *cobra.Command {
	o := &options.DataOptions{}

	long := `Print digests of data passed as arguments or on standard input.

Each DATA argument is hashed as a byte string and one line is printed per
argument and algorithm, in argument order. With no arguments, standard
input is read to the end and hashed as a single input.

With a single --algorithm (the default is sha256), each line holds the
digest in lowercase hex. With multiple algorithms, each line is prefixed
with the algorithm name.`

	cmd := &cobra.Command{
		Use:   "data [OPTIONS] [DATA...]",
		Short: "Print digests of argument data or stdin.",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runData(cmd.Context(), o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runData(ctx context.Context, o *options.DataOptions, args []string) error {
	obs := ro.NewObservability()

	if err := validateAlgorithms(o.Algorithms); err != nil {
		return err
	}

	var inputs [][]byte
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		inputs = append(inputs, data)
	} else {
		for _, arg := range args {
			inputs = append(inputs, []byte(arg))
		}
	}

	attrs := map[string]interface{}{
		"udigest.algorithms": strings.Join(o.Algorithms, ","),
		"udigest.inputs":     len(inputs),
	}
	return tracing.Run(ctx, "HashData", attrs, func(context.Context) error {
		for _, input := range inputs {
			for _, algorithm := range o.Algorithms {
				obs.Logger.Debug("hashing %d bytes with %s", len(input), algorithm)
				d, err := digest.HashData(algorithm, input)
				if err != nil {
					return err
				}
				if len(o.Algorithms) == 1 {
					fmt.Println(d.Hex())
				} else {
					fmt.Println(d.String())
				}
			}
		}
		return nil
	})
}
