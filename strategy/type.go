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

package strategy

import (
	"reflect"

	"dirpx.dev/exemplar/apis"
)

// NewTypeStrategy creates an apis.Strategy that resolves language-level
// types through a TypeMap, unwrapping one pointer level first (the
// optional-wrapping convention for accessor return types).
func NewTypeStrategy(tm apis.TypeMap) apis.Strategy {
	return &typeStrategy{tm: tm}
}

// typeStrategy resolves accessor return types and list-element types.
type typeStrategy struct {
	tm apis.TypeMap
}

// Ensure typeStrategy implements apis.Strategy.
var _ apis.Strategy = (*typeStrategy)(nil)

// TryResolveField always falls through: declared fields resolve by kind.
func (s *typeStrategy) TryResolveField(_ apis.Field, _ apis.Config) (any, bool) {
	return nil, false
}

// TryResolveType looks t up in the type map, unwrapping one pointer level.
func (s *typeStrategy) TryResolveType(t reflect.Type, _ apis.Config) (any, bool) {
	if t == nil || s.tm == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return s.tm.TypeValue(t)
}

// TryResolveDoc always falls through: handled by the doc strategy.
func (s *typeStrategy) TryResolveDoc(_ apis.DocType, _ apis.Config) (any, bool) {
	return nil, false
}
