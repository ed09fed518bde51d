// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqcmp.Option.
package config

// DefaultSeparator is the token placed between rendered elements when a sequence is joined into a
// single string. The BEL control character is unlikely to occur in real data.
const DefaultSeparator = "\x07"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Separator is the token used to join rendered elements for whole-sequence comparisons. It
	// must not occur inside any element's string form, or false equivalences can result.
	Separator string

	// Whitespace makes whitespace significant. When false, every run of whitespace characters
	// collapses to a single space before comparison.
	Whitespace bool

	// Case makes letter case significant. When false, string forms are lower-cased before
	// comparison.
	Case bool

	// DefaultFull selects the positional comparison as the target of the generic compare
	// operation instead of the joined-string comparison.
	DefaultFull bool

	// Skip maps positions to a flag; a position is excluded from comparison only when it is
	// present with a true value.
	Skip map[int]bool
}

// Default is the default configuration. Its Skip map is nil so that comparators never share skip
// state; FromOptions hands every comparator its own map.
var Default = Config{
	Separator:   DefaultSeparator,
	Whitespace:  true,
	Case:        true,
	DefaultFull: false,
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option) Config {
	cfg := Default
	cfg.Skip = make(map[int]bool)
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
