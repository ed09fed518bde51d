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

package norm_test

import (
	"testing"

	"znkr.io/seqcmp/internal/config"
	"znkr.io/seqcmp/internal/norm"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "no-whitespace", in: "abc", want: "abc"},
		{name: "single-space-unchanged", in: "a b", want: "a b"},
		{name: "run-of-spaces", in: "a   b", want: "a b"},
		{name: "mixed-whitespace", in: "a \t\n b", want: "a b"},
		{name: "leading-and-trailing", in: "\t a b \n", want: " a b "},
		{name: "only-whitespace", in: " \t\n ", want: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := norm.Collapse(tt.in); got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name            string
		whitespace, cse bool
		in              string
		want            string
	}{
		{name: "all-significant", whitespace: true, cse: true, in: "A  B", want: "A  B"},
		{name: "collapse-only", whitespace: false, cse: true, in: "A  B", want: "A B"},
		{name: "fold-only", whitespace: true, cse: false, in: "A  B", want: "a  b"},
		{name: "collapse-and-fold", whitespace: false, cse: false, in: "A \t B", want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default
			cfg.Whitespace = tt.whitespace
			cfg.Case = tt.cse
			if got := norm.String(tt.in, cfg); got != tt.want {
				t.Errorf("String(%q, ...) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
