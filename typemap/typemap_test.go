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

package typemap_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/config"
	"dirpx.dev/exemplar/typemap"
)

// Fixed samples so lookups are deterministic.
func testSamples() apis.Samples {
	return apis.Samples{
		UUID: uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"),
		Now:  time.Date(2026, 2, 11, 9, 30, 15, 0, time.UTC),
	}
}

func TestDefaults_KindLayer(t *testing.T) {
	s := testSamples()
	tm := typemap.New(config.DefaultConfig(), s)

	cases := []struct {
		kind apis.Kind
		want any
	}{
		{apis.KindChoice, "string"},
		{apis.KindString, "string"},
		{apis.KindFloat, 1.0},
		{apis.KindBool, false},
		{apis.KindInteger, 1},
		{apis.KindUUID, s.UUID},
		{apis.KindDateTime, s.Now},
		{apis.KindDate, s.Date()},
		{apis.KindTime, s.Clock()},
		{apis.KindDuration, 5 * time.Second},
	}
	for _, c := range cases {
		got, ok := tm.KindValue(c.kind)
		if !ok {
			t.Fatalf("KindValue(%v): not found", c.kind)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("KindValue(%v) = %#v, want %#v", c.kind, got, c.want)
		}
	}

	if _, ok := tm.KindValue(apis.KindInvalid); ok {
		t.Fatalf("KindValue(KindInvalid): expected not found")
	}
}

func TestDefaults_TypeAndDocLayers(t *testing.T) {
	s := testSamples()
	tm := typemap.New(config.DefaultConfig(), s)

	if got, ok := tm.TypeValue(reflect.TypeOf("")); !ok || got != "string" {
		t.Fatalf("TypeValue(string) = (%#v,%v), want (string,true)", got, ok)
	}
	if got, ok := tm.TypeValue(reflect.TypeOf(0)); !ok || got != 1 {
		t.Fatalf("TypeValue(int) = (%#v,%v), want (1,true)", got, ok)
	}
	if got, ok := tm.TypeValue(reflect.TypeOf(time.Time{})); !ok || !got.(time.Time).Equal(s.Now) {
		t.Fatalf("TypeValue(time.Time) = (%#v,%v), want sample timestamp", got, ok)
	}
	if _, ok := tm.TypeValue(reflect.TypeOf(make(chan int))); ok {
		t.Fatalf("TypeValue(chan int): expected not found")
	}
	if _, ok := tm.TypeValue(nil); ok {
		t.Fatalf("TypeValue(nil): expected not found")
	}

	if got, ok := tm.DocValue(apis.DocInt); !ok || got != 1 {
		t.Fatalf("DocValue(DocInt) = (%#v,%v), want (1,true)", got, ok)
	}
	if got, ok := tm.DocValue(apis.DocBinary); !ok || string(got.([]byte)) != "string" {
		t.Fatalf("DocValue(DocBinary) = (%#v,%v), want ([]byte(string),true)", got, ok)
	}
	// DocNone maps to a null sample; null-valued entries resolve like
	// absences.
	if _, ok := tm.DocValue(apis.DocNone); ok {
		t.Fatalf("DocValue(DocNone): expected not found")
	}
}

func TestReverseKind(t *testing.T) {
	s := testSamples()
	tm := typemap.New(config.DefaultConfig(), s)

	cases := []struct {
		val  any
		want apis.Kind
	}{
		// "string" is shared by choice and string samples; the plain
		// string kind wins.
		{"string", apis.KindString},
		{1, apis.KindInteger},
		{1.0, apis.KindFloat},
		{false, apis.KindBool},
		{s.UUID, apis.KindUUID},
		{s.Now, apis.KindDateTime},
		{s.Date(), apis.KindDate},
		{s.Clock(), apis.KindTime},
		{5 * time.Second, apis.KindDuration},
	}
	for _, c := range cases {
		got, ok := tm.ReverseKind(c.val)
		if !ok || got != c.want {
			t.Fatalf("ReverseKind(%#v) = (%v,%v), want (%v,true)", c.val, got, ok, c.want)
		}
	}

	if _, ok := tm.ReverseKind("something else"); ok {
		t.Fatalf("ReverseKind(non-sample): expected no match")
	}
	if _, ok := tm.ReverseKind(nil); ok {
		t.Fatalf("ReverseKind(nil): expected no match")
	}
	// Uncomparable values must not panic.
	if _, ok := tm.ReverseKind([]byte("string")); ok {
		t.Fatalf("ReverseKind([]byte): expected no match")
	}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	type ip struct{ a, b, c, d byte }
	key := reflect.TypeOf(ip{})

	if err := tm.Register(key, "0.0.0.0"); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// idempotent re-register with the same value
	if err := tm.Register(key, "0.0.0.0"); err != nil {
		t.Fatalf("Register idempotent: unexpected error: %v", err)
	}

	if got, ok := tm.TypeValue(key); !ok || got != "0.0.0.0" {
		t.Fatalf("TypeValue(custom) = (%#v,%v), want (0.0.0.0,true)", got, ok)
	}
	if tm.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tm.Count())
	}

	// custom registrations shadow defaults
	if err := tm.Register(apis.KindInteger, 42); err != nil {
		t.Fatalf("Register(KindInteger): unexpected error: %v", err)
	}
	if got, ok := tm.KindValue(apis.KindInteger); !ok || got != 42 {
		t.Fatalf("KindValue(KindInteger) = (%#v,%v), want (42,true)", got, ok)
	}
}

func TestRegister_ConflictAndErrors(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	if err := tm.Register(apis.DocUUID, "u-u-i-d"); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if err := tm.Register(apis.DocUUID, "other"); err != typemap.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}

	if err := tm.Register(nil, "x"); err != typemap.ErrNilKey {
		t.Fatalf("nil key: want ErrNilKey, got %v", err)
	}
	if err := tm.Register("not a key", "x"); err == nil {
		t.Fatalf("string key: expected ErrUnsupportedKey wrap, got nil")
	}
}

func TestDerive_OverridePrecedence(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	// A process-scoped custom registration...
	if err := tm.Register(apis.KindString, "custom"); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	// ...loses to a call-scoped override.
	d := tm.Derive(map[any]any{
		apis.KindString:       "override",
		apis.DocInt:           7,
		reflect.TypeOf(false): true,
	})

	if got, ok := d.KindValue(apis.KindString); !ok || got != "override" {
		t.Fatalf("derived KindValue = (%#v,%v), want (override,true)", got, ok)
	}
	if got, ok := d.DocValue(apis.DocInt); !ok || got != 7 {
		t.Fatalf("derived DocValue = (%#v,%v), want (7,true)", got, ok)
	}
	if got, ok := d.TypeValue(reflect.TypeOf(false)); !ok || got != true {
		t.Fatalf("derived TypeValue = (%#v,%v), want (true,true)", got, ok)
	}

	// The receiver stays untouched.
	if got, _ := tm.KindValue(apis.KindString); got != "custom" {
		t.Fatalf("base KindValue = %#v, want custom", got)
	}
}

func TestDerive_NilValueMasks(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	d := tm.Derive(map[any]any{apis.KindInteger: nil})
	if _, ok := d.KindValue(apis.KindInteger); ok {
		t.Fatalf("masked kind: expected not found")
	}
	// Other kinds still resolve.
	if _, ok := d.KindValue(apis.KindString); !ok {
		t.Fatalf("unmasked kind: expected found")
	}
}

func TestDerive_SkipsBadKeysAndSharesCustom(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	// Unsupported and nil keys are skipped, never an error or panic.
	d := tm.Derive(map[any]any{
		42:              "ignored",
		nil:             "ignored",
		apis.KindString: "override",
	})
	if got, ok := d.KindValue(apis.KindString); !ok || got != "override" {
		t.Fatalf("derived KindValue = (%#v,%v), want (override,true)", got, ok)
	}

	// Custom registrations made after Derive are visible through the view.
	if err := tm.Register(apis.DocDouble, 2.5); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if got, ok := d.DocValue(apis.DocDouble); !ok || got != 2.5 {
		t.Fatalf("derived DocValue after Register = (%#v,%v), want (2.5,true)", got, ok)
	}

	// Deriving from a view stacks overrides.
	dd := d.Derive(map[any]any{apis.KindInteger: 9})
	if got, _ := dd.KindValue(apis.KindString); got != "override" {
		t.Fatalf("stacked derive lost parent override: got %#v", got)
	}
	if got, _ := dd.KindValue(apis.KindInteger); got != 9 {
		t.Fatalf("stacked derive: got %#v, want 9", got)
	}

	// Empty overrides return the receiver itself.
	if same := tm.Derive(nil); same != tm {
		t.Fatalf("Derive(nil) should return the receiver")
	}
}

func TestEntriesCountReset(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	if err := tm.Register(apis.KindBool, true); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if err := tm.Register(apis.DocStr, "s"); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	entries := tm.Entries()
	if len(entries) != 2 || tm.Count() != 2 {
		t.Fatalf("Entries/Count = %d/%d, want 2/2", len(entries), tm.Count())
	}

	tm.Reset()
	if tm.Count() != 0 || len(tm.Entries()) != 0 {
		t.Fatalf("after Reset: Count=%d Entries=%d, want 0/0", tm.Count(), len(tm.Entries()))
	}
	// Defaults survive a reset.
	if _, ok := tm.KindValue(apis.KindBool); !ok {
		t.Fatalf("defaults lost after Reset")
	}
}
