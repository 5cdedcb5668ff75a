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

package apis

// Field describes one declared field of a serializer schema.
//
// Custom field types should report the primitive Kind they are based on;
// that is how the walker resolves their sample without knowing the
// concrete type. Render mirrors how the field would present a value at
// runtime (formatting, not validation) and must accept nil.
type Field interface {
	// Kind returns the primitive kind the field is based on.
	Kind() Kind
	// Render formats a raw sample value the way the field would present
	// it at runtime. A nil input renders as nil.
	Render(v any) any
}

// Serializer is a declarative schema: an ordered list of named fields.
// Computed fields are backed by accessor methods on the implementing type.
type Serializer interface {
	// Fields returns the schema's field definitions in declaration order.
	Fields() []FieldDef
}

// FieldDef is a single named field of a schema.
type FieldDef struct {
	// Name is the payload key for the field.
	Name string
	// Field describes the field's type and formatting.
	Field Field
}

// NestedField is a field holding a sub-schema: a single nested object, or
// a many-relation when Many reports true.
type NestedField interface {
	Field
	// Nested returns the nested schema and whether the relation is "many".
	Nested() (schema Serializer, many bool)
}

// ListField is a homogeneous sequence of a primitive child field, e.g. a
// field backing a flat array-typed column.
type ListField interface {
	Field
	// Child returns the element field.
	Child() Field
}

// MethodField is a computed field: its value comes from a named accessor
// method on the serializer rather than a declared kind.
type MethodField interface {
	Field
	// MethodName returns the explicit accessor name, or "" to derive one
	// from the field name and the configured method prefix.
	MethodName() string
}

// DocTyped is the optional explicit documentation-type annotation on a
// computed field. When present it takes priority over the accessor's
// declared return type.
type DocTyped interface {
	// DocType returns the annotation and whether one is set.
	DocType() (DocType, bool)
}
