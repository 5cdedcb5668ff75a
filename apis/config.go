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

// Config carries read-only dump knobs that influence field walking and
// value resolution. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// MaxDepth limits recursion into nested serializer schemas.
	// Acts as a safety guard against self-referential schemas; subtrees
	// beyond the limit resolve to null.
	MaxDepth int

	// MethodPrefix is the accessor-name prefix for computed fields whose
	// method name is not given explicitly (e.g. "Get" turns field "height"
	// into accessor "GetHeight").
	MethodPrefix string

	// WarnUnresolved controls whether unresolved types, kinds, and
	// annotations emit diagnostic log messages. Resolution outcome is the
	// same either way: a null placeholder.
	WarnUnresolved bool
}
