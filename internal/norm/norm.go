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

// Package norm implements the string normalization applied before comparisons.
package norm

import (
	"regexp"
	"strings"

	"znkr.io/seqcmp/internal/config"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Collapse replaces every run of whitespace characters in s with a single space. Leading and
// trailing whitespace collapses too, but is not trimmed.
func Collapse(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// String normalizes s according to cfg: runs of whitespace collapse to a single space unless
// whitespace is significant, and the result is lower-cased unless case is significant.
func String(s string, cfg config.Config) string {
	if !cfg.Whitespace {
		s = Collapse(s)
	}
	if !cfg.Case {
		s = strings.ToLower(s)
	}
	return s
}
