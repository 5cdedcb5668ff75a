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

// Builder composes TypeMap and Resolver from a Config and a Samples pair.
// Implementations may migrate state from previous instances (prev*), or
// ignore them.
type Builder interface {
	// BuildTypeMap constructs a TypeMap whose default layers embed the
	// given samples. May migrate custom registrations from the previous
	// map. ext is an optional extension context; its meaning is
	// implementation-defined.
	BuildTypeMap(cfg Config, s Samples, prev TypeMap, ext any) TypeMap

	// BuildResolver constructs a Resolver over the given TypeMap. May
	// reuse state from the previous resolver. ext is an optional
	// extension context; its meaning is implementation-defined.
	BuildResolver(cfg Config, tm TypeMap, prev Resolver, ext any) Resolver
}
