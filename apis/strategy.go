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

// Strategy is a pluggable resolution step. A Resolver chains multiple
// strategies in order; each one handles the key flavors it understands and
// falls through on the rest.
type Strategy interface {
	// TryResolveField attempts to resolve a sample for a declared field.
	// It returns (value, true) if handled; otherwise (nil, false) to fall
	// through.
	TryResolveField(f Field, cfg Config) (value any, handled bool)

	// TryResolveType attempts to resolve a sample for a language-level
	// type.
	TryResolveType(t reflect.Type, cfg Config) (value any, handled bool)

	// TryResolveDoc attempts to resolve a sample for a doc-type
	// annotation.
	TryResolveDoc(d DocType, cfg Config) (value any, handled bool)
}
