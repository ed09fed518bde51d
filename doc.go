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

// Package seqcmp compares two ordered sequences of scalar values position by position under a
// configurable notion of equality.
//
// A [Comparator] holds the comparison configuration: the join separator, whether whitespace and
// case are significant, which positions to skip, and which comparison the generic [Comparator.Compare]
// delegates to. The main operations are [Comparator.SimpleCompare], which reduces each sequence to
// a single joined string and reports whether the two are identical, and [Comparator.FullCompare],
// which reports the positions at which the sequences differ ([Comparator.FullCompareCount] reports
// how many there are). [Comparator.Perm] reports whether one sequence is a permutation of the
// other.
//
// Sequences are passed as Go slices or arrays of scalar-like values; every element is rendered to
// its string form for comparison, and a nil element stands for an absent value and renders as the
// empty string. Comparisons are positional only: this package never detects insertions, deletions,
// or reorderings the way a diff algorithm would. For such diffs see [znkr.io/diff].
//
// Known limitation: an element whose string form contains the configured separator can make two
// different sequences compare as equal in [Comparator.SimpleCompare]. Choose a separator that
// cannot occur in the data; the default is the BEL control character.
//
// A Comparator assumes a single logical owner: configuration may be changed between calls via
// [Comparator.Configure], but concurrent use from multiple goroutines must be serialized by the
// caller.
//
// [znkr.io/diff]: https://pkg.go.dev/znkr.io/diff
package seqcmp
