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
	"sync"
	"testing"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/config"
	"dirpx.dev/exemplar/typemap"
)

// Concurrent registrations of the same association must collapse to a
// single entry; concurrent readers must never observe a torn state.
func TestConcurrent_RegisterAndLookup(t *testing.T) {
	tm := typemap.New(config.DefaultConfig(), testSamples())

	type netAddr struct{ host string }
	key := reflect.TypeOf(netAddr{})

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := tm.Register(key, "localhost"); err != nil {
					t.Errorf("Register: unexpected error: %v", err)
					return
				}
				if _, ok := tm.KindValue(apis.KindString); !ok {
					t.Errorf("KindValue(KindString): not found")
					return
				}
				d := tm.Derive(map[any]any{apis.KindInteger: j})
				if got, ok := d.KindValue(apis.KindInteger); !ok || got != j {
					t.Errorf("derived KindValue = (%#v,%v), want (%d,true)", got, ok, j)
					return
				}
			}
		}()
	}
	wg.Wait()

	if tm.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tm.Count())
	}
	if got, ok := tm.TypeValue(key); !ok || got != "localhost" {
		t.Fatalf("TypeValue = (%#v,%v), want (localhost,true)", got, ok)
	}
}
