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
	"slices"
	"strings"

	"znkr.io/seqcmp/internal/config"
	"znkr.io/seqcmp/internal/norm"
)

// Comparator compares two sequences under its configuration. The configuration is read at the
// start of every comparison call and may be changed between calls with [Comparator.Configure];
// the comparator provides no internal synchronization, so sharing one instance across goroutines
// requires external serialization.
type Comparator struct {
	cfg config.Config
}

// New creates a Comparator.
//
// The following options are supported: [Separator], [Whitespace], [Case], [DefaultFull], [Skip],
// [SkipSet]. Without options, the separator is the BEL control character, whitespace and case are
// significant, the generic compare delegates to the simple compare, and no positions are skipped.
func New(opts ...Option) *Comparator {
	return &Comparator{cfg: config.FromOptions(opts)}
}

// Configure applies opts to the comparator's configuration. It accepts the same options as [New].
func (c *Comparator) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&c.cfg)
	}
}

// ResetSkip clears the skip set so that no positions are skipped.
func (c *Comparator) ResetSkip() {
	c.cfg.Skip = make(map[int]bool)
}

// LengthsEqual reports whether x and y contain the same number of elements. Only the count
// matters; no normalization or skip filtering applies.
func (c *Comparator) LengthsEqual(x, y any) (bool, error) {
	xs, ys, err := sequences(x, y)
	if err != nil {
		return false, err
	}
	return len(xs) == len(ys), nil
}

// LengthsDiffer is the negation of [Comparator.LengthsEqual].
func (c *Comparator) LengthsDiffer(x, y any) (bool, error) {
	eq, err := c.LengthsEqual(x, y)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Compare reports whether x and y are equivalent under the comparator's configuration. It
// delegates to [Comparator.SimpleCompare], or when the comparator is configured with
// [DefaultFull] to [Comparator.FullCompareCount] with a zero count meaning equivalent.
func (c *Comparator) Compare(x, y any) (bool, error) {
	if c.cfg.DefaultFull {
		n, err := c.FullCompareCount(x, y)
		if err != nil {
			return false, err
		}
		return n == 0, nil
	}
	return c.SimpleCompare(x, y)
}

// SimpleCompare reports whether x and y are equivalent as a whole. Sequences of different lengths
// are never equivalent. Otherwise the elements at every non-skipped position are rendered to
// strings (absent elements render empty), joined with the configured separator, normalized
// according to the whitespace and case settings, and the two joined strings are compared.
//
// Reducing each sequence to one joined string lets a single string equality stand in for an
// element-wise loop. The accepted trade-off is that an element containing the separator token can
// produce a false equivalence; see [Separator].
func (c *Comparator) SimpleCompare(x, y any) (bool, error) {
	xs, ys, err := sequences(x, y)
	if err != nil {
		return false, err
	}
	return c.simple(xs, ys, false), nil
}

// simple implements the joined-string comparison. With ignoreSkip set the skip set does not
// apply: [Comparator.Perm] compares sorted copies, and positional skip indices are meaningless
// once sorting has scrambled the original alignment.
func (c *Comparator) simple(xs, ys []elem, ignoreSkip bool) bool {
	if len(xs) != len(ys) {
		return false
	}
	sx := make([]string, 0, len(xs))
	sy := make([]string, 0, len(ys))
	for i := range xs {
		if !ignoreSkip && c.cfg.Skip[i] {
			continue
		}
		sx = append(sx, xs[i].str)
		sy = append(sy, ys[i].str)
	}
	jx := norm.String(strings.Join(sx, c.cfg.Separator), c.cfg)
	jy := norm.String(strings.Join(sy, c.cfg.Separator), c.cfg)
	return jx == jy
}

// FullCompare compares x and y position by position and returns the 0-based positions at which
// they differ, ascending; the result is empty when the sequences are equivalent. Positions in the
// skip set are never reported. Normalization applies to each element's string form individually.
// Two absent elements match, an absent element differs from any present one.
//
// When x and y have different lengths, no per-position comparison is meaningful. The result is
// then every position that exists in the longer sequence but not in the shorter one, regardless
// of which argument is the longer.
func (c *Comparator) FullCompare(x, y any) ([]int, error) {
	xs, ys, err := sequences(x, y)
	if err != nil {
		return nil, err
	}
	return c.full(xs, ys), nil
}

// FullCompareCount is the count shape of [Comparator.FullCompare]: the number of differing
// positions, or the absolute length difference when the lengths differ. The count always equals
// the length of the list [Comparator.FullCompare] returns for the same inputs.
func (c *Comparator) FullCompareCount(x, y any) (int, error) {
	xs, ys, err := sequences(x, y)
	if err != nil {
		return 0, err
	}
	return len(c.full(xs, ys)), nil
}

func (c *Comparator) full(xs, ys []elem) []int {
	if len(xs) != len(ys) {
		lo, hi := min(len(xs), len(ys)), max(len(xs), len(ys))
		out := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			out = append(out, i)
		}
		return out
	}
	var out []int
	for i := range xs {
		if c.cfg.Skip[i] {
			continue
		}
		x, y := xs[i], ys[i]
		switch {
		case !x.ok && !y.ok:
			// Both absent, not a difference.
		case !x.ok || !y.ok:
			out = append(out, i)
		case norm.String(x.str, c.cfg) != norm.String(y.str, c.cfg):
			out = append(out, i)
		}
	}
	return out
}

// Perm reports whether y is a permutation of x, i.e. whether both sequences contain the same
// elements with the same multiplicities. Each sequence's elements are sorted by their string form
// ascending and the sorted copies are compared with the joined-string comparison, so the
// whitespace and case settings still apply. The skip set is ignored.
func (c *Comparator) Perm(x, y any) (bool, error) {
	xs, ys, err := sequences(x, y)
	if err != nil {
		return false, err
	}
	return c.simple(sorted(xs), sorted(ys), true), nil
}

func sorted(es []elem) []elem {
	out := slices.Clone(es)
	slices.SortFunc(out, func(a, b elem) int { return strings.Compare(a.str, b.str) })
	return out
}
