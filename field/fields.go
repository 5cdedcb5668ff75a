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

// Package field provides the declarative vocabulary for serializer
// schemas: primitive field kinds with their runtime formatting, computed
// method fields, nested relations, homogeneous lists, and struct-derived
// schemas.
//
// Custom field types embed a primitive field and inherit its Kind and
// Render; the walker only ever needs those two.
package field

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/exemplar/apis"
)

// Formats used by the date/time field renderers.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// String is a plain text field.
type String struct{}

// Kind returns apis.KindString.
func (String) Kind() apis.Kind { return apis.KindString }

// Render presents v as text.
func (String) Render(v any) any {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Integer is a whole-number field.
type Integer struct{}

// Kind returns apis.KindInteger.
func (Integer) Kind() apis.Kind { return apis.KindInteger }

// Render presents v as a whole number.
func (Integer) Render(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return v
	}
}

// Float is a floating-point number field.
type Float struct{}

// Kind returns apis.KindFloat.
func (Float) Kind() apis.Kind { return apis.KindFloat }

// Render presents v as a floating-point number.
func (Float) Render(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return v
	}
}

// Bool is a boolean field.
type Bool struct{}

// Kind returns apis.KindBool.
func (Bool) Kind() apis.Kind { return apis.KindBool }

// Render presents v as a boolean.
func (Bool) Render(v any) any {
	if v == nil {
		return nil
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return v
}

// UUID is a unique-identifier field.
type UUID struct{}

// Kind returns apis.KindUUID.
func (UUID) Kind() apis.Kind { return apis.KindUUID }

// Render presents v in canonical uuid text form.
func (UUID) Render(v any) any {
	switch u := v.(type) {
	case nil:
		return nil
	case uuid.UUID:
		return u.String()
	case string:
		return u
	default:
		return v
	}
}

// DateTime is a timestamp field.
type DateTime struct{}

// Kind returns apis.KindDateTime.
func (DateTime) Kind() apis.Kind { return apis.KindDateTime }

// Render presents v as an RFC 3339 timestamp in UTC.
func (DateTime) Render(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// Date is a calendar-date field.
type Date struct{}

// Kind returns apis.KindDate.
func (Date) Kind() apis.Kind { return apis.KindDate }

// Render presents v as a calendar date in UTC.
func (Date) Render(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Format(dateLayout)
	default:
		return v
	}
}

// Time is a time-of-day field.
type Time struct{}

// Kind returns apis.KindTime.
func (Time) Kind() apis.Kind { return apis.KindTime }

// Render presents v as a time of day in UTC.
func (Time) Render(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Format(timeLayout)
	default:
		return v
	}
}

// Duration is a time-span field.
type Duration struct{}

// Kind returns apis.KindDuration.
func (Duration) Kind() apis.Kind { return apis.KindDuration }

// Render presents v in Go duration text form, e.g. "5s".
func (Duration) Render(v any) any {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Duration:
		return d.String()
	default:
		return v
	}
}

// Choice is an enumerable text field. The choice set is documentation
// metadata only; rendering never requires it to be populated.
type Choice struct {
	// Choices enumerates the permitted values. May be empty.
	Choices []string
}

// Kind returns apis.KindChoice.
func (Choice) Kind() apis.Kind { return apis.KindChoice }

// Render presents v as text, same as String.
func (Choice) Render(v any) any { return String{}.Render(v) }

// ForKind returns the canonical field for a primitive kind, used to
// re-render reverse-mapped values through the kind's own formatting.
// Unknown kinds yield nil.
func ForKind(k apis.Kind) apis.Field {
	switch k {
	case apis.KindChoice:
		return Choice{}
	case apis.KindString:
		return String{}
	case apis.KindFloat:
		return Float{}
	case apis.KindBool:
		return Bool{}
	case apis.KindInteger:
		return Integer{}
	case apis.KindUUID:
		return UUID{}
	case apis.KindDateTime:
		return DateTime{}
	case apis.KindDate:
		return Date{}
	case apis.KindTime:
		return Time{}
	case apis.KindDuration:
		return Duration{}
	default:
		return nil
	}
}
