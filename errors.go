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

import "strings"

// ArgumentError reports malformed comparison arguments: a missing argument or an argument that is
// not a sequence. Violations holds one message per violated rule, in argument order.
//
// It is the only error kind this package produces for comparison calls; differing sequences,
// length mismatches, and skipped positions are ordinary results, never errors.
type ArgumentError struct {
	Violations []string
}

func (e *ArgumentError) Error() string {
	return strings.Join(e.Violations, "\n")
}
