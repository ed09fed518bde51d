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

// Package textcmp compares text line by line using the positional comparison engine in
// [znkr.io/seqcmp].
//
// The comparison is strictly positional: line n of x is compared with line n of y, so an inserted
// line makes every following position differ. For an edit-based line diff that detects
// insertions and deletions, use a diff algorithm instead.
package textcmp

import (
	"fmt"
	"strings"

	"znkr.io/seqcmp"
)

// Op classifies the relationship between the lines at one position.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Same    Op = iota // The lines are equivalent under the configured comparison
	Changed           // Both lines exist but differ
	OnlyX             // The position exists only in x
	OnlyY             // The position exists only in y
)

// Line is the comparison verdict for a single line position.
type Line struct {
	N    int // 0-based line number
	Op   Op
	X, Y string // Line contents; X is empty for OnlyY, Y is empty for OnlyX
}

// Compare splits x and y into lines, compares them position by position, and returns one [Line]
// per position of the longer input. A trailing newline does not count as an extra empty line.
// Skipped positions report as [Same].
//
// When x and y have a different number of lines, lines within the common range are not compared:
// only the excess positions are reported, as [OnlyX] or [OnlyY]. This mirrors the engine's length
// mismatch handling.
//
// The following options are supported: [seqcmp.Separator], [seqcmp.Whitespace], [seqcmp.Case],
// [seqcmp.Skip], [seqcmp.SkipSet].
func Compare(x, y string, opts ...seqcmp.Option) ([]Line, error) {
	xlines := splitLines(x)
	ylines := splitLines(y)

	c := seqcmp.New(opts...)
	diffs, err := c.FullCompare(xlines, ylines)
	if err != nil {
		return nil, err
	}

	out := make([]Line, max(len(xlines), len(ylines)))
	for i := range out {
		out[i].N = i
		if i < len(xlines) {
			out[i].X = xlines[i]
		}
		if i < len(ylines) {
			out[i].Y = ylines[i]
		}
	}
	for _, i := range diffs {
		switch {
		case i >= len(xlines):
			out[i].Op = OnlyY
		case i >= len(ylines):
			out[i].Op = OnlyX
		default:
			out[i].Op = Changed
		}
	}
	return out, nil
}

// Format renders the differing lines of a comparison as a compact report with 1-based line
// numbers. Positions marked [Same] are omitted; the result is empty when there are none left.
func Format(lines []Line) string {
	var b strings.Builder
	for _, ln := range lines {
		switch ln.Op {
		case Changed:
			fmt.Fprintf(&b, "@@ %d @@\n-%s\n+%s\n", ln.N+1, ln.X, ln.Y)
		case OnlyX:
			fmt.Fprintf(&b, "@@ %d @@\n-%s\n", ln.N+1, ln.X)
		case OnlyY:
			fmt.Fprintf(&b, "@@ %d @@\n+%s\n", ln.N+1, ln.Y)
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
