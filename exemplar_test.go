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

package exemplar_test

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dirpx.dev/exemplar"
	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/config"
	"dirpx.dev/exemplar/field"
	"dirpx.dev/exemplar/walker"
)

// resetGlobals restores a clean default snapshot between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	exemplar.TypeMap().Reset()
	exemplar.SetAll(nil, nil, nil, nil, nil)
	exemplar.SetConfig(config.DefaultConfig())
	t.Cleanup(func() {
		exemplar.TypeMap().Reset()
		exemplar.SetAll(nil, nil, nil, nil, nil)
		exemplar.SetConfig(config.DefaultConfig())
	})
}

type carSchema struct{}

func (carSchema) Fields() []apis.FieldDef {
	return []apis.FieldDef{
		{Name: "car_name", Field: field.String{}},
		{Name: "car_price", Field: field.Integer{}},
	}
}

type personSchema struct{}

func (personSchema) Fields() []apis.FieldDef {
	return []apis.FieldDef{
		{Name: "name", Field: field.String{}},
		{Name: "age", Field: field.Integer{}},
		{Name: "cars", Field: field.Nested{Schema: carSchema{}, Many: true}},
	}
}

func TestDump_NestedMany(t *testing.T) {
	resetGlobals(t)

	got, err := exemplar.Dump(personSchema{})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"name": "string",
		"age":  int64(1),
		"cars": []any{map[string]any{
			"car_name":  "string",
			"car_price": int64(1),
		}},
	}, got)
}

func TestDump_FromStructModel(t *testing.T) {
	resetGlobals(t)

	type contact struct {
		ID     int
		Name   string
		Phones []string
	}

	schema, err := field.FromStruct(contact{})
	require.NoError(t, err)

	got, err := exemplar.Dump(schema)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"id":     int64(1),
		"name":   "string",
		"phones": []any{"string"},
	}, got)
}

func TestDump_ExcludeFields(t *testing.T) {
	resetGlobals(t)

	got, err := exemplar.Dump(personSchema{}, exemplar.WithExcludeFields("age", "car_price"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"name": "string",
		"cars": []any{map[string]any{"car_name": "string"}},
	}, got)
}

func TestDump_SamplesAreStableUntilRenewed(t *testing.T) {
	resetGlobals(t)

	schema := field.NewSchema(
		apis.FieldDef{Name: "id", Field: field.UUID{}},
		apis.FieldDef{Name: "created_at", Field: field.DateTime{}},
	)

	first, err := exemplar.Dump(schema)
	require.NoError(t, err)
	second, err := exemplar.Dump(schema)
	require.NoError(t, err)
	require.Equal(t, first, second, "repeated dumps must reuse the cached samples")

	renewed, err := exemplar.Dump(schema, exemplar.WithRenewTypeValues())
	require.NoError(t, err)
	require.NotEqual(t, first["id"], renewed["id"], "renewal must produce a fresh identifier")

	// Renewal is global: a later dump without the option sees the new pair.
	after, err := exemplar.Dump(schema)
	require.NoError(t, err)
	require.Equal(t, renewed, after)
}

func TestDump_TypeValueOverridesAreCallScoped(t *testing.T) {
	resetGlobals(t)

	got, err := exemplar.Dump(personSchema{}, exemplar.WithTypeValues(map[any]any{
		apis.KindString:  "example",
		apis.KindInteger: 99,
	}))
	require.NoError(t, err)
	require.Equal(t, "example", got["name"])
	require.Equal(t, int64(99), got["age"])

	// The override never leaks into the global table.
	got, err = exemplar.Dump(personSchema{})
	require.NoError(t, err)
	require.Equal(t, "string", got["name"])
	require.Equal(t, int64(1), got["age"])
}

func TestDump_NilValueOverrideMasks(t *testing.T) {
	resetGlobals(t)

	got, err := exemplar.Dump(personSchema{}, exemplar.WithTypeValues(map[any]any{
		apis.KindInteger: nil,
	}))
	require.NoError(t, err)
	require.Nil(t, got["age"], "masked kinds must render null")
	require.Equal(t, "string", got["name"])
}

type badge struct{ Label string }

type badgeSchema struct{}

func (badgeSchema) Fields() []apis.FieldDef {
	return []apis.FieldDef{
		{Name: "badge", Field: field.Method{}},
	}
}

func (badgeSchema) GetBadge() badge { return badge{} }

func TestRegisterType_ProcessScoped(t *testing.T) {
	resetGlobals(t)

	// Without a registration the accessor's return type is opaque and the
	// field degrades to null.
	got, err := exemplar.Dump(badgeSchema{})
	require.NoError(t, err)
	require.Nil(t, got["badge"])

	require.NoError(t, exemplar.RegisterType(reflect.TypeOf(badge{}), "gold"))

	got, err = exemplar.Dump(badgeSchema{})
	require.NoError(t, err)
	require.Equal(t, "gold", got["badge"])
}

type brokenSchema struct{}

func (brokenSchema) Fields() []apis.FieldDef {
	return []apis.FieldDef{
		{Name: "ghost", Field: field.Method{}},
	}
}

func TestDump_MissingAccessor(t *testing.T) {
	resetGlobals(t)

	_, err := exemplar.Dump(brokenSchema{})
	require.True(t, errors.Is(err, walker.ErrMissingAccessor), "want ErrMissingAccessor, got: %v", err)

	_, err = exemplar.Dump(42)
	require.True(t, errors.Is(err, walker.ErrNotSerializer), "want ErrNotSerializer, got: %v", err)
}

type prefixedSchema struct{}

func (prefixedSchema) Fields() []apis.FieldDef {
	return []apis.FieldDef{
		{Name: "label", Field: field.Method{}},
	}
}

func (prefixedSchema) FetchLabel() string { return "" }

func TestSetConfig_MethodPrefix(t *testing.T) {
	resetGlobals(t)

	exemplar.SetConfig(config.NewConfig(config.WithMethodPrefix("Fetch")))

	got, err := exemplar.Dump(prefixedSchema{})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"label": "string"}, got)
}

func TestPinnedTypeMapSurvivesRenewal(t *testing.T) {
	resetGlobals(t)

	fixed := apis.Samples{
		UUID: uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"),
		Now:  time.Date(2026, 2, 11, 9, 30, 15, 0, time.UTC),
	}
	tm := exemplar.Builder().BuildTypeMap(exemplar.Config(), fixed, nil, nil)
	exemplar.SetTypeMap(tm)
	require.True(t, exemplar.IsTypeMapPinned())

	schema := field.NewSchema(apis.FieldDef{Name: "created_at", Field: field.DateTime{}})

	got, err := exemplar.Dump(schema)
	require.NoError(t, err)
	require.Equal(t, "2026-02-11T09:30:15Z", got["created_at"])

	// Renewal rebuilds nothing while the table is pinned.
	exemplar.RenewSamples()
	got, err = exemplar.Dump(schema)
	require.NoError(t, err)
	require.Equal(t, "2026-02-11T09:30:15Z", got["created_at"])

	// Unpinning re-enables rebuilds.
	exemplar.UnpinTypeMap()
	require.False(t, exemplar.IsTypeMapPinned())
	exemplar.RenewSamples()
	got, err = exemplar.Dump(schema)
	require.NoError(t, err)
	require.NotEqual(t, "2026-02-11T09:30:15Z", got["created_at"])
}

func TestSetExtAndExtAs(t *testing.T) {
	resetGlobals(t)

	exemplar.SetExt("policy-v2")
	if ext, ok := exemplar.ExtAs[string](); !ok || ext != "policy-v2" {
		t.Fatalf("ExtAs[string]() = (%q,%v), want (policy-v2,true)", ext, ok)
	}
	if _, ok := exemplar.ExtAs[int](); ok {
		t.Fatalf("ExtAs[int](): expected type mismatch")
	}
}

func TestSetResolver_Pins(t *testing.T) {
	resetGlobals(t)

	res := exemplar.Resolver()
	exemplar.SetResolver(res)
	require.True(t, exemplar.IsResolverPinned())

	exemplar.UnpinResolver()
	require.False(t, exemplar.IsResolverPinned())

	// Nil arguments are ignored, not stored.
	exemplar.SetResolver(nil)
	require.False(t, exemplar.IsResolverPinned())
	exemplar.SetTypeMap(nil)
	require.False(t, exemplar.IsTypeMapPinned())
}

func TestConcurrentDumps(t *testing.T) {
	resetGlobals(t)

	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := exemplar.Dump(personSchema{})
				if err != nil {
					t.Errorf("Dump: unexpected error: %v", err)
					return
				}
				if got["name"] != "string" {
					t.Errorf("Dump: name = %#v, want string", got["name"])
					return
				}
				if i == 0 && j%10 == 0 {
					exemplar.RenewSamples()
				}
			}
		}()
	}
	wg.Wait()
}
