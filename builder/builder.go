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

package builder

import (
	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/resolver"
	"dirpx.dev/exemplar/strategy"
	"dirpx.dev/exemplar/typemap"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildTypeMap builds a new apis.TypeMap embedding the given samples. If a
// pre-existing map is provided, its custom registrations are copied into
// the new map.
func (b *builder) BuildTypeMap(cfg apis.Config, s apis.Samples, prev apis.TypeMap, _ any) apis.TypeMap {
	ntm := typemap.New(cfg, s)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = ntm.Register(e.Key, e.Value)
		}
	}
	return ntm
}

// BuildResolver builds a new apis.Resolver over the given type map. The
// chain resolves declared kinds first, then language-level types, then
// doc-type annotations.
func (b *builder) BuildResolver(cfg apis.Config, tm apis.TypeMap, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewKindStrategy(tm),
		strategy.NewTypeStrategy(tm),
		strategy.NewDocStrategy(tm),
	)
}
