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

package textcmp_test

import (
	"fmt"

	"znkr.io/seqcmp"
	"znkr.io/seqcmp/textcmp"
)

func ExampleCompare() {
	x := `host = example.com
port = 8080
debug = false
`
	y := `host = example.com
port = 9090
debug = false
`

	lines, err := textcmp.Compare(x, y, seqcmp.Whitespace(false))
	if err != nil {
		panic(err)
	}
	fmt.Print(textcmp.Format(lines))
	// Output:
	// @@ 2 @@
	// -port = 8080
	// +port = 9090
}
