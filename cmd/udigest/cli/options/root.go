// Copyright 2025 The u-code Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package options defines the command-line options and flags for the udigest CLI.
// It provides option structures for the root command and the digest subcommands.
package options

import (
	"fmt"
	"os"
	"time"

	"github.com/ecochard/u-code/pkg/logging"
	"github.com/spf13/cobra"
)

// EnvPrefix is the prefix used for environment variables that configure the CLI.
const EnvPrefix = "UDIGEST"

// RootOptions defines flags and options for the root CLI command.
// These options are available globally across all subcommands.
type RootOptions struct {
	// OutputFile specifies a file path to redirect output to instead of stdout.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// Timeout sets the maximum duration for command execution.
	Timeout time.Duration
}

// DefaultTimeout specifies the default timeout duration for commands.
const DefaultTimeout = 3 * time.Minute

// ValidLogLevels lists the valid log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

var outputExts = []string{"txt"}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags implements FlagAdder by adding root-level flags to the cobra command.
// This includes flags for output file redirection, log level/format, and command timeout.
// Log level and format default from the UDIGEST_LOG_LEVEL and UDIGEST_LOG_FORMAT
// environment variables when set.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write output to a file")
	_ = cmd.MarkFlagFilename("output-file", outputExts...)

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", envOr("LOG_LEVEL", "info"),
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", envOr("LOG_FORMAT", "text"),
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for commands")
}

// Validate checks that the root options hold recognized values.
func (o *RootOptions) Validate() error {
	if !contains(ValidLogLevels, o.LogLevel) {
		return fmt.Errorf("invalid log level %q (valid: %v)", o.LogLevel, ValidLogLevels)
	}
	if !contains(ValidLogFormats, o.LogFormat) {
		return fmt.Errorf("invalid log format %q (valid: %v)", o.LogFormat, ValidLogFormats)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", o.Timeout)
	}
	return nil
}

// GetLogLevel returns the effective log level based on the options.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the log format based on the options.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger creates a new logger based on the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.New(logging.Options{
		Level:  o.GetLogLevel(),
		Format: o.GetLogFormat(),
	})
}

// envOr returns the value of the EnvPrefix_name environment variable if set,
// else fallback.
func envOr(name, fallback string) string {
	if v := os.Getenv(EnvPrefix + "_" + name); v != "" {
		return v
	}
	return fallback
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
