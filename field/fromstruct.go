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
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/log"
)

var (
	// ErrNotStruct is returned when FromStruct receives a non-struct model.
	ErrNotStruct = errors.New("field: model is not a struct")
	// ErrStructDepth is returned when a model's nesting exceeds the guard.
	ErrStructDepth = errors.New("field: model nesting too deep")
)

// maxStructDepth bounds model recursion; self-referential models would
// otherwise never terminate.
const maxStructDepth = 16

// Named scalar types recognized before primitive kind dispatch.
var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
)

// Schema is a Serializer assembled from explicit field definitions.
type Schema struct {
	defs []apis.FieldDef
}

// NewSchema builds a Schema from field definitions in the given order.
func NewSchema(defs ...apis.FieldDef) Schema {
	return Schema{defs: defs}
}

// Fields returns the schema's field definitions in declaration order.
func (s Schema) Fields() []apis.FieldDef { return s.defs }

// FromStruct derives a serializer schema from a model struct, the way a
// model-backed serializer would: exported fields in declaration order,
// payload names from the json tag (else snake_case of the Go name), field
// kinds from the Go types. Pointers unwrap one level; slices of structs
// become many-relations; slices of scalars become list fields; embedded
// structs flatten. Fields of unsupported types are skipped with a
// diagnostic.
func FromStruct(model any) (apis.Serializer, error) {
	if model == nil {
		return nil, ErrNotStruct
	}
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrNotStruct, "got %s", t.Kind())
	}
	defs, err := structDefs(t, 0)
	if err != nil {
		return nil, err
	}
	return Schema{defs: defs}, nil
}

// structDefs walks a struct type and produces its field definitions.
func structDefs(t reflect.Type, depth int) ([]apis.FieldDef, error) {
	if depth >= maxStructDepth {
		return nil, errors.Wrapf(ErrStructDepth, "at %s", t)
	}

	defs := make([]apis.FieldDef, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		// Embedded structs flatten into the parent schema.
		if sf.Anonymous && ft.Kind() == reflect.Struct && !isNamedScalar(ft) {
			sub, err := structDefs(ft, depth+1)
			if err != nil {
				return nil, err
			}
			defs = append(defs, sub...)
			continue
		}

		name, skip := payloadName(sf)
		if skip {
			continue
		}

		f, err := fieldForType(ft, depth)
		if err != nil {
			return nil, err
		}
		if f == nil {
			log.Warn("skipping model field of unsupported type",
				zap.String("field", name),
				zap.Stringer("type", ft),
			)
			continue
		}
		defs = append(defs, apis.FieldDef{Name: name, Field: f})
	}
	return defs, nil
}

// fieldForType maps a Go type to a field, or nil if unsupported.
func fieldForType(t reflect.Type, depth int) (apis.Field, error) {
	if f := scalarFieldFor(t); f != nil {
		return f, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		sub, err := structDefs(t, depth+1)
		if err != nil {
			return nil, err
		}
		return Nested{Schema: Schema{defs: sub}}, nil

	case reflect.Slice, reflect.Array:
		et := t.Elem()
		if et.Kind() == reflect.Pointer {
			et = et.Elem()
		}
		if f := scalarFieldFor(et); f != nil {
			return List{Elem: f}, nil
		}
		if et.Kind() == reflect.Struct {
			sub, err := structDefs(et, depth+1)
			if err != nil {
				return nil, err
			}
			return Nested{Schema: Schema{defs: sub}, Many: true}, nil
		}
		return nil, nil

	default:
		return nil, nil
	}
}

// scalarFieldFor maps a scalar Go type to its field, or nil.
func scalarFieldFor(t reflect.Type) apis.Field {
	switch t {
	case timeType:
		return DateTime{}
	case durationType:
		return Duration{}
	case uuidType:
		return UUID{}
	}

	switch t.Kind() {
	case reflect.String:
		return String{}
	case reflect.Bool:
		return Bool{}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer{}
	case reflect.Float32, reflect.Float64:
		return Float{}
	default:
		return nil
	}
}

// isNamedScalar reports whether t is one of the named scalar struct types
// (which must not be flattened when embedded).
func isNamedScalar(t reflect.Type) bool {
	return t == timeType || t == uuidType
}

// payloadName derives the payload key for a struct field from its json
// tag, falling back to snake_case of the Go name. skip is true for "-".
func payloadName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		if i := strings.IndexByte(tag, ','); i >= 0 {
			tag = tag[:i]
		}
		if tag != "" {
			return tag, false
		}
	}
	return snakeCase(sf.Name), false
}

// snakeCase converts an exported Go name to snake_case: "CarName" ->
// "car_name", "ID" -> "id", "HTTPCode" -> "http_code".
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + 2)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && !unicode.IsUpper(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
