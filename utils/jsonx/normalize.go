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

// Package jsonx normalizes a recursively built example mapping into one
// composed only of JSON primitive values. It deliberately round-trips the
// mapping through JSON text instead of encoding per type: a small cost
// that stays correct for arbitrary extension values callers merge in via
// overrides.
package jsonx

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

// api decodes numbers as json.Number so integral samples survive the
// round trip as integers.
var api = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Normalize round-trips m through JSON text. Non-native leaves (binary
// data, durations, unserializable oddities) are coerced to their text
// representation first; integral numbers come back as int64, the rest as
// float64.
func Normalize(m map[string]any) (map[string]any, error) {
	data, err := api.Marshal(coerce(m))
	if err != nil {
		return nil, errors.Wrap(err, "exemplar(jsonx): marshal example mapping")
	}

	var decoded map[string]any
	if err := api.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(err, "exemplar(jsonx): unmarshal example mapping")
	}

	out, _ := fold(decoded).(map[string]any)
	return out, nil
}

// coerce rewrites leaves the JSON encoder would mangle or reject.
func coerce(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = coerce(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = coerce(e)
		}
		return out
	case []byte:
		// Text form, not base64.
		return string(t)
	case time.Duration:
		return t.String()
	default:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Chan, reflect.Func, reflect.UnsafePointer,
			reflect.Complex64, reflect.Complex128:
			// Best-effort text fallback for unserializable values.
			return fmt.Sprint(v)
		default:
			return v
		}
	}
}

// fold converts decoded json.Number leaves to int64 when integral,
// float64 otherwise.
func fold(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	case map[string]any:
		for k, e := range t {
			t[k] = fold(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fold(e)
		}
		return t
	default:
		return v
	}
}
