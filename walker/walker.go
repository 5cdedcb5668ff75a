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

// Package walker produces the raw example mapping for a serializer
// schema: it walks the declared fields in order, classifies each one
// (nested relation, list, computed, plain), resolves sample values
// through the resolver chain, and recurses into sub-schemas.
//
// Unresolved types and unrecognized field shapes degrade to a null
// placeholder with a diagnostic; the only returned errors are a schema
// that is not a serializer and a computed field without its accessor.
package walker

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/field"
	"dirpx.dev/exemplar/log"
)

var (
	// ErrNilSchema is returned when a nil schema is provided.
	ErrNilSchema = errors.New("exemplar(walker): nil schema provided")
	// ErrNotSerializer is returned when the provided schema neither
	// implements apis.Serializer nor names a type that does.
	ErrNotSerializer = errors.New("exemplar(walker): schema is not a serializer")
	// ErrMissingAccessor indicates a computed field whose accessor method
	// does not exist on the serializer.
	ErrMissingAccessor = errors.New("exemplar(walker): missing accessor method")
)

// serializerType is the contract nested accessor return types must satisfy
// to trigger recursion.
var serializerType = reflect.TypeOf((*apis.Serializer)(nil)).Elem()

// New constructs a Walker over the given type map and resolver.
func New(cfg apis.Config, tm apis.TypeMap, res apis.Resolver) *Walker {
	return &Walker{cfg: cfg, tm: tm, res: res}
}

// Walker holds the per-dump resolution context. It is cheap to construct
// and not intended to be reused across dumps.
type Walker struct {
	cfg apis.Config
	tm  apis.TypeMap
	res apis.Resolver
}

// Walk produces the raw example mapping for schema. The schema may be an
// apis.Serializer value or a reflect.Type of one. Exclusion names match at
// every nesting depth encountered, not just the top level.
func (w *Walker) Walk(schema any, exclude []string) (map[string]any, error) {
	s, err := coerceSchema(schema)
	if err != nil {
		return nil, err
	}
	ex := lo.SliceToMap(exclude, func(name string) (string, struct{}) {
		return name, struct{}{}
	})
	return w.walk(s, ex, 0)
}

// walk builds the mapping for one schema level.
func (w *Walker) walk(s apis.Serializer, ex map[string]struct{}, depth int) (map[string]any, error) {
	defs := s.Fields()
	out := make(map[string]any, len(defs))

	for _, fd := range defs {
		if _, skip := ex[fd.Name]; skip {
			continue
		}

		switch f := fd.Field.(type) {
		case apis.NestedField:
			sub, many := f.Nested()
			if sub == nil {
				out[fd.Name] = nil
				w.warn("nested field has no schema, set to null",
					zap.String("field", fd.Name))
				continue
			}
			nested, err := w.descend(sub, ex, depth, fd.Name)
			if err != nil {
				return nil, err
			}
			if nested == nil {
				out[fd.Name] = nil
				continue
			}
			if many {
				out[fd.Name] = []any{nested}
			} else {
				out[fd.Name] = nested
			}

		case apis.ListField:
			child := f.Child()
			if child == nil {
				out[fd.Name] = nil
				w.warn("list field has no child, set to null",
					zap.String("field", fd.Name))
				continue
			}
			v, ok := w.res.ResolveField(child, w.cfg)
			if !ok {
				w.warn("unknown list child kind",
					zap.String("field", fd.Name),
					zap.Stringer("kind", child.Kind()))
			}
			out[fd.Name] = []any{child.Render(v)}

		case apis.MethodField:
			v, err := w.resolveMethod(s, fd.Name, f, ex, depth)
			if err != nil {
				return nil, err
			}
			out[fd.Name] = v

		default:
			if f == nil || f.Kind() == apis.KindInvalid {
				// Defensive fallback: a field shape none of the branches
				// recognize.
				out[fd.Name] = nil
				w.warn("unknown field shape, set to null",
					zap.String("field", fd.Name))
				log.Debug("unclassified field instance",
					zap.String("field", fd.Name),
					zap.String("instance", spew.Sdump(f)))
				continue
			}
			v, ok := w.res.ResolveField(f, w.cfg)
			if !ok {
				w.warn("unknown field kind, rendered from null",
					zap.String("field", fd.Name),
					zap.Stringer("kind", f.Kind()))
			}
			out[fd.Name] = f.Render(v)
		}
	}
	return out, nil
}

// descend recurses into a sub-schema, honoring the depth guard. A nil map
// with nil error means the guard was hit and the subtree is null.
func (w *Walker) descend(sub apis.Serializer, ex map[string]struct{}, depth int, name string) (map[string]any, error) {
	if depth+1 >= w.cfg.MaxDepth {
		w.warn("max nesting depth reached, subtree set to null",
			zap.String("field", name),
			zap.Int("max_depth", w.cfg.MaxDepth))
		return nil, nil
	}
	return w.walk(sub, ex, depth+1)
}

// resolveMethod resolves a computed field: explicit doc annotation first,
// then the accessor's declared return type, then nested-serializer
// recursion, then null.
func (w *Walker) resolveMethod(s apis.Serializer, name string, f apis.MethodField, ex map[string]struct{}, depth int) (any, error) {
	mname := f.MethodName()
	if mname == "" {
		mname = w.cfg.MethodPrefix + exportName(name)
	}

	st := reflect.TypeOf(s)
	m, ok := st.MethodByName(mname)
	if !ok && st.Kind() != reflect.Pointer {
		m, ok = reflect.PointerTo(st).MethodByName(mname)
	}
	if !ok {
		return nil, errors.Wrapf(ErrMissingAccessor, "%s.%s for field %q", st, mname, name)
	}

	var ret reflect.Type
	if m.Type.NumOut() > 0 {
		ret = m.Type.Out(0)
	}

	var (
		val   any
		found bool
	)
	if dt, hasDoc := docTypeOf(f); hasDoc {
		val, found = w.res.ResolveDoc(dt, w.cfg)
	}
	if !found && ret != nil {
		val, found = w.res.ResolveType(ret, w.cfg)
	}

	if found {
		// Re-render through the kind whose canonical sample this is, so
		// e.g. a resolved date value is formatted the same way a native
		// date field would format it.
		if k, match := w.tm.ReverseKind(val); match {
			if cf := field.ForKind(k); cf != nil {
				return cf.Render(val), nil
			}
		}
		w.warn("no field kind matches annotation value, kept raw",
			zap.String("field", name),
			zap.String("annotation", typeName(ret)))
		return val, nil
	}

	// Accessors may declare a nested serializer (or a sequence of them)
	// as their return type.
	if ret != nil {
		rt := ret
		if rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		if rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array {
			et := rt.Elem()
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if sub, isSchema := instantiate(et); isSchema {
				nested, err := w.descend(sub, ex, depth, name)
				if err != nil {
					return nil, err
				}
				if nested == nil {
					return nil, nil
				}
				return []any{nested}, nil
			}
		}
		if sub, isSchema := instantiate(rt); isSchema {
			nested, err := w.descend(sub, ex, depth, name)
			if err != nil {
				return nil, err
			}
			if nested == nil {
				return nil, nil
			}
			return nested, nil
		}
	}

	w.warn("unknown accessor annotation, field set to null",
		zap.String("field", name),
		zap.String("accessor", mname),
		zap.String("annotation", typeName(ret)))
	return nil, nil
}

// warn emits a diagnostic unless the configuration silences them.
func (w *Walker) warn(msg string, fields ...zap.Field) {
	if w.cfg.WarnUnresolved {
		log.Warn(msg, fields...)
	}
}

// coerceSchema turns the caller-supplied schema into an apis.Serializer.
func coerceSchema(schema any) (apis.Serializer, error) {
	switch s := schema.(type) {
	case nil:
		return nil, ErrNilSchema
	case apis.Serializer:
		return s, nil
	case reflect.Type:
		if sub, ok := instantiate(s); ok {
			return sub, nil
		}
		return nil, errors.Wrapf(ErrNotSerializer, "type %s", s)
	default:
		return nil, errors.Wrapf(ErrNotSerializer, "got %T", schema)
	}
}

// instantiate produces a zero serializer value from a type, if the type
// (or a pointer to it) satisfies the contract.
func instantiate(t reflect.Type) (apis.Serializer, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(serializerType) {
		s, ok := reflect.New(t).Elem().Interface().(apis.Serializer)
		return s, ok
	}
	if reflect.PointerTo(t).Implements(serializerType) {
		s, ok := reflect.New(t).Interface().(apis.Serializer)
		return s, ok
	}
	return nil, false
}

// docTypeOf extracts the optional explicit annotation from a field.
func docTypeOf(f apis.Field) (apis.DocType, bool) {
	if dt, ok := f.(apis.DocTyped); ok {
		return dt.DocType()
	}
	return apis.DocNone, false
}

// typeName is a nil-safe reflect.Type display name for diagnostics.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}

// exportName converts a payload field name to its exported Go spelling:
// "car_name" -> "CarName", "height" -> "Height".
func exportName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
