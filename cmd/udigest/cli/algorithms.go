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
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ecochard/u-code/cmd/udigest/cli/options"
	"github.com/ecochard/u-code/pkg/digest"
)

// Algorithms creates the algorithms subcommand, which lists the hash
// algorithms available in this build.
func Algorithms() *cobra.Command {
	o := &options.AlgorithmsOptions{}

	long := `List the hash algorithms this build supports.

Prints one line per algorithm with its digest size. Builds with the
"extended" build tag additionally list md2, md4, sha384 and sha512.

With --names, prints the flat operation names instead, one per line.
Each algorithm contributes a data operation (e.g. sha256) and a file
operation (e.g. sha256_file).`

	cmd := &cobra.Command{
		Use:   "algorithms [OPTIONS]",
		Short: "List available hash algorithms.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runAlgorithms(o)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runAlgorithms(o *options.AlgorithmsOptions) error {
	if o.Names {
		funcs := digest.Functions()
		names := make([]string, 0, len(funcs))
		for name := range funcs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	for _, name := range digest.Algorithms() {
		d, ok := digest.Lookup(name)
		if !ok {
			return fmt.Errorf("algorithm %q missing from catalog", name)
		}
		fmt.Printf("%s (%d-bit)\n", name, d.Size()*8)
	}
	if digest.Extended() {
		fmt.Println("extended algorithms compiled in")
	}
	return nil
}
