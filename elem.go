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
	"fmt"
	"reflect"
)

// elem is a sequence element prepared for comparison: its rendered string form and whether the
// element was present at all. An absent element has the zero value.
type elem struct {
	str string
	ok  bool
}

// elems renders v into comparison elements. v must be a slice or array; nil interface and nil
// pointer elements count as absent. The violations are non-empty iff v is not a sequence.
func elems(v any, arg string) ([]elem, []string) {
	if v == nil {
		return nil, []string{arg + " argument is missing"}
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, []string{arg + " argument is not a sequence"}
	}
	out := make([]elem, rv.Len())
	for i := range out {
		out[i] = render(rv.Index(i))
	}
	return out, nil
}

// render produces the string form of a single element. Interfaces and pointers are followed so
// that sequences like []any and []*int compare by value.
func render(v reflect.Value) elem {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return elem{}
		}
		v = v.Elem()
	}
	return elem{str: fmt.Sprint(v.Interface()), ok: true}
}

// sequences validates and renders both arguments. It collects one violation message per broken
// rule and reports them all at once as an [ArgumentError].
func sequences(x, y any) (xs, ys []elem, err error) {
	xs, violations := elems(x, "first")
	ys, more := elems(y, "second")
	violations = append(violations, more...)
	if len(violations) > 0 {
		return nil, nil, &ArgumentError{Violations: violations}
	}
	return xs, ys, nil
}
