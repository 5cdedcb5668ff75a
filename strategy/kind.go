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

// NewKindStrategy creates an apis.Strategy that resolves declared fields
// through a TypeMap's primitive-kind layer.
func NewKindStrategy(tm apis.TypeMap) apis.Strategy {
	return &kindStrategy{tm: tm}
}

// kindStrategy is the fast path for plain fields: look the field's kind up
// in the base sample layer and stop the chain.
type kindStrategy struct {
	tm apis.TypeMap
}

// Ensure kindStrategy implements apis.Strategy.
var _ apis.Strategy = (*kindStrategy)(nil)

// TryResolveField looks up the field's kind in the type map.
func (s *kindStrategy) TryResolveField(f apis.Field, _ apis.Config) (any, bool) {
	if f == nil || s.tm == nil {
		return nil, false
	}
	k := f.Kind()
	if k == apis.KindInvalid {
		return nil, false
	}
	return s.tm.KindValue(k)
}

// TryResolveType always falls through: kinds carry no language type.
func (s *kindStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (any, bool) {
	return nil, false
}

// TryResolveDoc always falls through: kinds carry no doc type.
func (s *kindStrategy) TryResolveDoc(_ apis.DocType, _ apis.Config) (any, bool) {
	return nil, false
}
