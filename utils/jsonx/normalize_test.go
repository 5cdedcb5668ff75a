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

package jsonx_test

import (
	"reflect"
	"testing"
	"time"

	"dirpx.dev/exemplar/utils/jsonx"
)

func TestNormalize_NumbersFold(t *testing.T) {
	got, err := jsonx.Normalize(map[string]any{
		"count":    1,
		"big":      int64(1 << 40),
		"ratio":    1.5,
		"whole":    2.0, // integral floats fold to integers
		"negative": -3,
	})
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	want := map[string]any{
		"count":    int64(1),
		"big":      int64(1 << 40),
		"ratio":    1.5,
		"whole":    int64(2),
		"negative": int64(-3),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %#v, want %#v", got, want)
	}
}

func TestNormalize_CoercedLeaves(t *testing.T) {
	got, err := jsonx.Normalize(map[string]any{
		"binary": []byte("string"),
		"span":   5 * time.Second,
		"when":   time.Date(2026, 2, 11, 9, 30, 15, 0, time.UTC),
		"odd":    make(chan int),
		"null":   nil,
	})
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}

	if got["binary"] != "string" {
		t.Fatalf("binary = %#v, want text form, not base64", got["binary"])
	}
	if got["span"] != "5s" {
		t.Fatalf("span = %#v, want \"5s\"", got["span"])
	}
	if got["when"] != "2026-02-11T09:30:15Z" {
		t.Fatalf("when = %#v, want RFC 3339 text", got["when"])
	}
	if _, ok := got["odd"].(string); !ok {
		t.Fatalf("odd = %#v, want best-effort text", got["odd"])
	}
	if got["null"] != nil {
		t.Fatalf("null = %#v, want nil", got["null"])
	}
}

func TestNormalize_NestedShapes(t *testing.T) {
	got, err := jsonx.Normalize(map[string]any{
		"person": map[string]any{
			"age":  1,
			"cars": []any{map[string]any{"price": 1}},
		},
		"tags": []any{"a", 2, nil},
	})
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	want := map[string]any{
		"person": map[string]any{
			"age":  int64(1),
			"cars": []any{map[string]any{"price": int64(1)}},
		},
		"tags": []any{"a", int64(2), nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %#v, want %#v", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	got, err := jsonx.Normalize(map[string]any{})
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Normalize(empty) = %#v, want empty map", got)
	}
}
