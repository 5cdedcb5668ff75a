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

// Resolver coordinates strategies to resolve sample values for fields,
// language types, and doc-type annotations.
// Typical chain: KindStrategy -> TypeStrategy -> DocStrategy.
type Resolver interface {
	// ResolveField returns the sample for a declared field, or
	// (nil, false) if its kind is unknown.
	ResolveField(f Field, cfg Config) (any, bool)

	// ResolveType returns the sample for a language-level type, or
	// (nil, false) if none can be determined. A pointer type is unwrapped
	// one level before lookup.
	ResolveType(t reflect.Type, cfg Config) (any, bool)

	// ResolveDoc returns the sample for an explicit doc-type annotation,
	// or (nil, false) if the annotation is unknown.
	ResolveDoc(d DocType, cfg Config) (any, bool)
}
