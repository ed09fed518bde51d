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

package seqcmp

import (
	"maps"

	"znkr.io/seqcmp/internal/config"
)

// Option configures the behavior of a [Comparator], either at construction in [New] or afterwards
// via [Comparator.Configure].
type Option = config.Option

// Separator sets the token used between rendered elements when a sequence is joined into a single
// string for [Comparator.SimpleCompare]. The default is the BEL control character ("\x07").
//
// The separator must not occur inside any element's string form: an element containing it can
// make two different sequences compare as equal. This is an accepted limitation and is not
// detected.
func Separator(sep string) Option {
	return func(cfg *config.Config) {
		cfg.Separator = sep
	}
}

// Whitespace sets whether whitespace is significant. When it is not, every run of whitespace
// characters collapses to a single space before comparison. The default is significant.
func Whitespace(significant bool) Option {
	return func(cfg *config.Config) {
		cfg.Whitespace = significant
	}
}

// Case sets whether letter case is significant. When it is not, string forms are lower-cased
// before comparison. The default is significant.
func Case(significant bool) Option {
	return func(cfg *config.Config) {
		cfg.Case = significant
	}
}

// DefaultFull selects the comparison [Comparator.Compare] delegates to: the positional full
// compare when true, the joined-string simple compare when false. The default is false.
func DefaultFull(full bool) Option {
	return func(cfg *config.Config) {
		cfg.DefaultFull = full
	}
}

// Skip marks positions as skipped. Skipped positions are excluded from
// [Comparator.SimpleCompare] and never reported by [Comparator.FullCompare]; [Comparator.Perm]
// ignores them. Positions accumulate across applications; use [Comparator.ResetSkip] or [SkipSet]
// to start over.
func Skip(positions ...int) Option {
	return func(cfg *config.Config) {
		for _, p := range positions {
			cfg.Skip[p] = true
		}
	}
}

// SkipSet replaces the skip set with a copy of set. A position is skipped only when it is present
// with a true value, so a present-but-false entry is expressible and has no effect.
func SkipSet(set map[int]bool) Option {
	return func(cfg *config.Config) {
		cfg.Skip = make(map[int]bool, len(set))
		maps.Copy(cfg.Skip, set)
	}
}
