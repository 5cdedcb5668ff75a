/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package field

import (
	"dirpx.dev/exemplar/apis"
)

// Nested is a relation to a sub-schema: a single nested object, or a
// many-relation (zero or more nested objects) when Many is set.
type Nested struct {
	// Schema is the nested serializer.
	Schema apis.Serializer
	// Many marks the relation as a sequence of nested objects.
	Many bool
}

// Kind returns apis.KindInvalid: relations have no primitive kind.
func (Nested) Kind() apis.Kind { return apis.KindInvalid }

// Render returns v unchanged; nested values are produced by recursion,
// not by formatting.
func (Nested) Render(v any) any { return v }

// Nested returns the sub-schema and whether the relation is "many".
func (n Nested) Nested() (apis.Serializer, bool) { return n.Schema, n.Many }

// List is a homogeneous sequence field, e.g. one backing a flat
// array-typed column. The example is a one-element sequence of the child
// field's sample.
type List struct {
	// Elem is the element field.
	Elem apis.Field
}

// Kind returns apis.KindInvalid: the sample is driven by the child field.
func (List) Kind() apis.Kind { return apis.KindInvalid }

// Render returns v unchanged; element formatting goes through Child.
func (List) Render(v any) any { return v }

// Child returns the element field.
func (l List) Child() apis.Field { return l.Elem }

// Compile-time contract checks.
var (
	_ apis.NestedField = Nested{}
	_ apis.ListField   = List{}
)
