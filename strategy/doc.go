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

// NewDocStrategy creates an apis.Strategy that resolves explicit doc-type
// annotations through a TypeMap's doc layer.
func NewDocStrategy(tm apis.TypeMap) apis.Strategy {
	return &docStrategy{tm: tm}
}

// docStrategy resolves the abstract documentation-type identifiers that
// computed fields may carry as explicit annotations.
type docStrategy struct {
	tm apis.TypeMap
}

// Ensure docStrategy implements apis.Strategy.
var _ apis.Strategy = (*docStrategy)(nil)

// TryResolveField always falls through: declared fields resolve by kind.
func (s *docStrategy) TryResolveField(_ apis.Field, _ apis.Config) (any, bool) {
	return nil, false
}

// TryResolveType always falls through: handled by the type strategy.
func (s *docStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (any, bool) {
	return nil, false
}

// TryResolveDoc looks the annotation up in the type map.
func (s *docStrategy) TryResolveDoc(d apis.DocType, _ apis.Config) (any, bool) {
	if s.tm == nil {
		return nil, false
	}
	return s.tm.DocValue(d)
}
