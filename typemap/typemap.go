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

package typemap

import (
	"reflect"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/log"
)

var (
	// ErrNilKey is returned when a nil key is provided.
	ErrNilKey = errors.New("exemplar(typemap): nil key provided")
	// ErrUnsupportedKey is returned when a key is neither a Kind, a
	// DocType, nor a reflect.Type.
	ErrUnsupportedKey = errors.New("exemplar(typemap): unsupported key flavor")
	// ErrConflictingRegistration indicates an attempt to re-register a key
	// with a different value.
	ErrConflictingRegistration = errors.New("exemplar(typemap): conflicting registration")
)

// sampleDuration is the canonical time-span sample.
const sampleDuration = 5 * time.Second

// Language-level key types of the default layer.
var (
	stringType   = reflect.TypeOf("")
	floatType    = reflect.TypeOf(float64(0))
	boolType     = reflect.TypeOf(false)
	bytesType    = reflect.TypeOf([]byte(nil))
	intType      = reflect.TypeOf(int(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	objectType   = reflect.TypeOf(map[string]any(nil))
)

// New constructs a TypeMap whose default layers embed the given samples.
// The base layer covers primitive field kinds; the doc layer adds abstract
// doc types and language-level types on top of it. Lookup precedence is
// call-scoped overrides, then custom registrations, then defaults.
func New(cfg apis.Config, s apis.Samples) apis.TypeMap {
	kinds := map[apis.Kind]any{
		apis.KindChoice:   "string",
		apis.KindString:   "string",
		apis.KindFloat:    1.0,
		apis.KindBool:     false,
		apis.KindInteger:  1,
		apis.KindUUID:     s.UUID,
		apis.KindDateTime: s.Now,
		apis.KindDate:     s.Date(),
		apis.KindTime:     s.Clock(),
		apis.KindDuration: sampleDuration,
	}

	docs := map[apis.DocType]any{
		apis.DocStr:      "string",
		apis.DocDouble:   1.0,
		apis.DocBool:     false,
		apis.DocBinary:   []byte("string"),
		apis.DocInt:      1,
		apis.DocUUID:     s.UUID,
		apis.DocDateTime: s.Now,
		apis.DocDate:     s.Date(),
		apis.DocTime:     s.Clock(),
		apis.DocDuration: sampleDuration,
		apis.DocObject:   map[string]any{},
		apis.DocAny:      map[string]any{},
		apis.DocNone:     nil,
	}

	types := map[reflect.Type]any{
		stringType:   "string",
		floatType:    1.0,
		boolType:     false,
		bytesType:    []byte("string"),
		intType:      1,
		uuidType:     s.UUID,
		timeType:     s.Now,
		durationType: sampleDuration,
		objectType:   map[string]any{},
	}

	// Reverse map over the base layer only: sample value -> kind, later
	// kinds winning on collisions (so "string" reverses to KindString,
	// not KindChoice). Unhashable samples never occur in the base layer.
	reverse := make(map[any]apis.Kind, len(kinds))
	for _, k := range apis.Kinds() {
		reverse[kinds[k]] = k
	}

	return &typeMap{
		cfg:     cfg,
		kinds:   kinds,
		docs:    docs,
		types:   types,
		reverse: reverse,
		custom:  &customStore{},
	}
}

// typeMap is the layered TypeMap implementation. The default layers are
// immutable after construction; custom registrations live in a shared
// sync.Map so derived views observe them too; the over* maps exist only on
// call-scoped views produced by Derive.
type typeMap struct {
	cfg     apis.Config
	kinds   map[apis.Kind]any
	docs    map[apis.DocType]any
	types   map[reflect.Type]any
	reverse map[any]apis.Kind
	custom  *customStore

	overKinds map[apis.Kind]any
	overDocs  map[apis.DocType]any
	overTypes map[reflect.Type]any
}

// customStore holds process-scoped custom registrations.
type customStore struct {
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// m maps Kind/DocType/reflect.Type keys to values.
	m sync.Map
	// count tracks the number of registered entries.
	count int
}

// KindValue returns the sample for a primitive field kind.
// A nil sample reports false: null-valued entries resolve like absences.
func (tm *typeMap) KindValue(k apis.Kind) (any, bool) {
	if v, ok := tm.overKinds[k]; ok {
		return v, v != nil
	}
	if v, ok := tm.custom.m.Load(k); ok {
		return v, v != nil
	}
	v, ok := tm.kinds[k]
	return v, ok && v != nil
}

// TypeValue returns the sample for a language-level type.
func (tm *typeMap) TypeValue(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := tm.overTypes[t]; ok {
		return v, v != nil
	}
	if v, ok := tm.custom.m.Load(t); ok {
		return v, v != nil
	}
	v, ok := tm.types[t]
	return v, ok && v != nil
}

// DocValue returns the sample for an abstract doc type.
func (tm *typeMap) DocValue(d apis.DocType) (any, bool) {
	if v, ok := tm.overDocs[d]; ok {
		return v, v != nil
	}
	if v, ok := tm.custom.m.Load(d); ok {
		return v, v != nil
	}
	v, ok := tm.docs[d]
	return v, ok && v != nil
}

// ReverseKind returns the field kind whose canonical sample equals v.
// The reverse map is built from the default base layer and is deliberately
// untouched by overrides, mirroring how re-rendering picks a formatter.
func (tm *typeMap) ReverseKind(v any) (apis.Kind, bool) {
	if v == nil || !reflect.TypeOf(v).Comparable() {
		return apis.KindInvalid, false
	}
	k, ok := tm.reverse[v]
	return k, ok
}

// Register adds a process-scoped custom association.
// It is idempotent for the same (key, value) pair.
func (tm *typeMap) Register(key, value any) error {
	if key == nil {
		return ErrNilKey
	}
	switch key.(type) {
	case apis.Kind, apis.DocType, reflect.Type:
	default:
		return errors.Wrapf(ErrUnsupportedKey, "got %T", key)
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := tm.custom.m.Load(key); ok {
		if reflect.DeepEqual(old, value) {
			return nil
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep the counter consistent.
	tm.custom.mu.Lock()
	defer tm.custom.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := tm.custom.m.Load(key); ok {
		if reflect.DeepEqual(old, value) {
			return nil
		}
		return ErrConflictingRegistration
	}

	tm.custom.m.Store(key, value)
	tm.custom.count++
	return nil
}

// Derive returns a call-scoped view with overrides merged on top. The
// receiver is untouched; default layers, reverse map, and custom
// registrations stay shared. Unsupported key flavors are skipped with a
// diagnostic, never an error.
func (tm *typeMap) Derive(overrides map[any]any) apis.TypeMap {
	if len(overrides) == 0 {
		return tm
	}

	derived := &typeMap{
		cfg:       tm.cfg,
		kinds:     tm.kinds,
		docs:      tm.docs,
		types:     tm.types,
		reverse:   tm.reverse,
		custom:    tm.custom,
		overKinds: lo.Assign(tm.overKinds),
		overDocs:  lo.Assign(tm.overDocs),
		overTypes: lo.Assign(tm.overTypes),
	}
	for key, value := range overrides {
		switch k := key.(type) {
		case apis.Kind:
			derived.overKinds[k] = value
		case apis.DocType:
			derived.overDocs[k] = value
		case reflect.Type:
			derived.overTypes[k] = value
		case nil:
			log.Warn("skipping override with nil key")
		default:
			log.Warn("skipping override with unsupported key flavor",
				zap.String("key_type", reflect.TypeOf(key).String()),
			)
		}
	}
	return derived
}

// Entries returns a snapshot of custom registrations (order unspecified).
func (tm *typeMap) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, tm.Count())
	tm.custom.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{Key: key, Value: value})
		return true
	})
	return entries
}

// Count returns the number of custom registrations.
func (tm *typeMap) Count() int {
	tm.custom.mu.Lock()
	defer tm.custom.mu.Unlock()
	return tm.custom.count
}

// Reset clears all custom registrations.
func (tm *typeMap) Reset() {
	tm.custom.mu.Lock()
	defer tm.custom.mu.Unlock()
	tm.custom.m = sync.Map{}
	tm.custom.count = 0
}
