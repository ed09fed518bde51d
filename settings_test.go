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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/seqcmp/internal/config"
)

func TestFromYAML(t *testing.T) {
	c, err := FromYAML([]byte(`
separator: ","
whitespace_significant: false
case_significant: false
full_by_default: true
skip: [0, 3]
`))
	require.NoError(t, err)

	assert.Equal(t, ",", c.cfg.Separator)
	assert.False(t, c.cfg.Whitespace)
	assert.False(t, c.cfg.Case)
	assert.True(t, c.cfg.DefaultFull)
	assert.Equal(t, map[int]bool{0: true, 3: true}, c.cfg.Skip)
}

func TestFromYAMLDefaults(t *testing.T) {
	c, err := FromYAML([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, config.Default.Separator, c.cfg.Separator)
	assert.True(t, c.cfg.Whitespace)
	assert.True(t, c.cfg.Case)
	assert.False(t, c.cfg.DefaultFull)
	assert.Empty(t, c.cfg.Skip)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte(`separator: [not, a, string]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing comparator settings")
}

func TestSettingsOptions(t *testing.T) {
	significant := true
	s := Settings{WhitespaceSignificant: &significant}
	assert.Len(t, s.Options(), 1)
	assert.Empty(t, Settings{}.Options())
}
