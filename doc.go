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

// Package exemplar synthesizes representative example payloads from
// serializer schemas.
//
// exemplar is responsible for turning "a serializer schema" into a nested
// mapping of field names to plausible sample values. The mapping mirrors
// the structure a real serialized response would have and is meant to be
// embedded in auto-generated API documentation, so inspecting several
// hundred endpoint examples requires no hand-written fixtures:
//
//	{"id": 1, "name": "string", "created_at": "2026-02-11T09:30:00Z"}
//
// # Design
//
// The core of exemplar is a read-mostly global snapshot (state). The
// snapshot holds five things:
//
//   - Config: knobs that control how schemas are walked (recursion depth
//     limit, the prefix used to locate accessor methods for computed
//     fields, whether unresolved fields emit a diagnostic).
//
//   - Samples: the process-wide cached sample pair, one identifier and
//     one timestamp. Every identifier-valued or timestamp-valued field in
//     every dump renders the same pair until it is explicitly renewed, so
//     examples across a documentation build stay mutually consistent.
//
//   - TypeMap: the table that associates field kinds, documentation type
//     annotations, and Go types with their sample values. The defaults
//     cover the primitive field vocabulary; processes can Register
//     additional associations at runtime, and single calls can Derive a
//     call-scoped view with overrides layered on top.
//
//   - Resolver: a read-only object that answers "what is the sample value
//     for this field / type / annotation?". The resolver chains multiple
//     strategies in priority order:
//     1. The field's declared kind, looked up in the TypeMap.
//     2. The Go type (with one level of pointer unwrap), looked up in
//     the TypeMap.
//     3. The documentation type annotation, looked up in the TypeMap.
//     Resolver is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct TypeMap
//     and Resolver instances for a given Config, Samples, and optional
//     extension data. The Builder is also allowed to reuse/migrate state
//     from previous TypeMap/Resolver instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means dumps are lock-free on the hot path:
//
//	example, err := exemplar.Dump(mySchema)
//
// and concurrent callers always see a consistent snapshot.
//
// # Producing examples
//
// Dump walks the schema's declared fields recursively:
//
//   - Nested serializer fields recurse; many-valued ones wrap the nested
//     mapping in a single-element list.
//
//   - List fields resolve their child field and wrap the value in a
//     single-element list.
//
//   - Computed fields locate their accessor method on the schema type,
//     honor an explicit documentation type annotation first, then fall
//     back to the method's return type. Return types that are themselves
//     serializers (or lists of serializers) recurse.
//
//   - Plain fields resolve through their declared kind.
//
// A field that cannot be resolved never aborts the walk: it renders null
// and a diagnostic is logged. The only hard error is a computed field
// whose accessor method does not exist on the schema type.
//
// The finished mapping is pushed through a JSON round trip so only JSON
// primitive shapes remain, regardless of what the type table contained.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Dump(schema any, opts ...DumpOption) (map[string]any, error)
//     Samples() apis.Samples
//     TypeMap() apis.TypeMap
//     Resolver() apis.Resolver
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetTypeMap(tm apis.TypeMap)
//     SetResolver(res apis.Resolver)
//     RenewSamples()
//     RegisterType(key, value any)
//     UnpinTypeMap()
//     UnpinResolver()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing TypeMap / Resolver as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how schemas are walked. Calling SetConfig() may
//     trigger a rebuild of TypeMap and/or Resolver, unless they are
//     explicitly "pinned".
//
//     - RenewSamples() regenerates the sample pair and rebuilds the
//     non-pinned layers so the new identifier and timestamp flow into
//     subsequent dumps. Dump(..., WithRenewTypeValues()) does the same
//     renewal inline.
//
//     - Builder controls how TypeMap and Resolver are constructed.
//     Swapping the Builder lets you replace resolution logic
//     (different strategies, different sample policies) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     exemplar itself. It is simply passed down to the Builder so
//     custom builders (in other binaries) can carry extra policy.
//
//     - SetTypeMap() / SetResolver() directly overwrite the current
//     TypeMap / Resolver in the snapshot and "pin" them. Once a
//     layer is pinned, exemplar will stop rebuilding that layer
//     automatically until you call UnpinTypeMap()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, TypeMap, Resolver in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus TypeMap().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging or documentation.
//
// # Concurrency model
//
// Reads (Dump, Samples, TypeMap, Resolver) are wait-free: they load the
// current *state atomically and never take locks. The TypeMap and
// Resolver returned by that state must themselves be concurrency-safe
// for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetTypeMap, SetResolver,
// RenewSamples, etc.) take a short build mutex, assemble a brand-new
// state struct, and then publish it via an atomic pointer swap. This
// gives the calling binary a predictable "last write wins" behavior
// without forcing per-dump locking.
//
// # Pinning
//
// exemplar supports the concept of "pinning" a layer:
//
//   - When you call SetTypeMap(tm), that exact TypeMap becomes the
//     process-wide table and is considered pinned. Further calls to
//     SetConfig() or RenewSamples() will not attempt to rebuild a new
//     TypeMap until you explicitly UnpinTypeMap().
//
//   - When you call SetResolver(res), that Resolver is pinned and will
//     not be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom TypeMap with organization-wide example values
// but still allow the walker configuration to change.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque any value
// owned by the embedding binary. exemplar does not interpret ext. The
// active Builder receives ext on each rebuild, so out-of-tree builders
// can inject custom sample policies.
package exemplar
