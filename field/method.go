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

// Method is a computed field: its value comes from an accessor method on
// the serializer. The sample is resolved from the explicit Doc annotation
// when set, otherwise from the accessor's declared return type.
type Method struct {
	// Name is the accessor method name. Empty derives it from the field
	// name and the configured method prefix.
	Name string

	// Doc is the explicit documentation-type annotation; only read when
	// HasDoc is set.
	Doc apis.DocType
	// HasDoc reports whether Doc is set.
	HasDoc bool
}

// WithDoc returns a copy of the field annotated with an explicit doc type.
func (m Method) WithDoc(d apis.DocType) Method {
	m.Doc = d
	m.HasDoc = true
	return m
}

// Kind returns apis.KindInvalid: computed fields have no declared kind.
func (Method) Kind() apis.Kind { return apis.KindInvalid }

// Render returns v unchanged; formatting happens through the kind found in
// the reverse map, not through the method field itself.
func (Method) Render(v any) any { return v }

// MethodName returns the explicit accessor name, or "".
func (m Method) MethodName() string { return m.Name }

// DocType returns the explicit annotation and whether one is set.
func (m Method) DocType() (apis.DocType, bool) { return m.Doc, m.HasDoc }

// Compile-time contract checks.
var (
	_ apis.MethodField = Method{}
	_ apis.DocTyped    = Method{}
)
