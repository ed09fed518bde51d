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
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the file-friendly form of a comparator configuration, for callers that keep
// comparison settings in configuration files. Fields left unset keep their defaults.
type Settings struct {
	Separator             *string `yaml:"separator"`
	WhitespaceSignificant *bool   `yaml:"whitespace_significant"`
	CaseSignificant       *bool   `yaml:"case_significant"`
	FullByDefault         *bool   `yaml:"full_by_default"`
	Skip                  []int   `yaml:"skip"`
}

// Options converts s into the equivalent option list for [New] or [Comparator.Configure].
func (s Settings) Options() []Option {
	var opts []Option
	if s.Separator != nil {
		opts = append(opts, Separator(*s.Separator))
	}
	if s.WhitespaceSignificant != nil {
		opts = append(opts, Whitespace(*s.WhitespaceSignificant))
	}
	if s.CaseSignificant != nil {
		opts = append(opts, Case(*s.CaseSignificant))
	}
	if s.FullByDefault != nil {
		opts = append(opts, DefaultFull(*s.FullByDefault))
	}
	if len(s.Skip) > 0 {
		opts = append(opts, Skip(s.Skip...))
	}
	return opts
}

// FromYAML builds a comparator from a YAML document of [Settings].
func FromYAML(data []byte) (*Comparator, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parsing comparator settings")
	}
	return New(s.Options()...), nil
}
