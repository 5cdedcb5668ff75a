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

import "reflect"

// TypeMap is the layered association from a type identity to its sample
// value. Three key flavors exist: primitive field kinds, abstract doc
// types, and language-level types. Implementations must be safe for
// concurrent reads.
type TypeMap interface {
	// KindValue returns the sample for a primitive field kind.
	KindValue(k Kind) (any, bool)
	// TypeValue returns the sample for a language-level type.
	TypeValue(t reflect.Type) (any, bool)
	// DocValue returns the sample for an abstract doc type.
	DocValue(d DocType) (any, bool)

	// ReverseKind returns the field kind whose canonical sample equals v.
	// Used to re-render a computed field's value through that kind's own
	// formatting.
	ReverseKind(v any) (Kind, bool)

	// Register adds a process-scoped custom association. The key may be a
	// Kind, a DocType, or a reflect.Type. Idempotent for the same
	// (key, value) pair; a different value for a known key is a conflict.
	Register(key, value any) error

	// Derive returns a call-scoped view with overrides merged on top.
	// Keys follow the Register rules; the receiver is left untouched.
	Derive(overrides map[any]any) TypeMap

	// Entries returns a snapshot of custom registrations for
	// diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of custom registrations.
	Count() int
	// Reset clears all custom registrations.
	Reset()
}

// Entry is a single custom (key, value) association in a TypeMap snapshot.
type Entry struct {
	// Key is the registered identity (Kind, DocType, or reflect.Type).
	Key any
	// Value is the associated sample value.
	Value any
}
