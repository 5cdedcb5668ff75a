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

package exemplar

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"dirpx.dev/exemplar/apis"
	"dirpx.dev/exemplar/builder"
	"dirpx.dev/exemplar/config"
	"dirpx.dev/exemplar/utils/jsonx"
	"dirpx.dev/exemplar/walker"
)

// init initializes the global snapshot state.
func init() {
	// Initialize state with default cfg, fresh samples, and derived layers.
	s := &state{cfg: config.DefaultConfig(), samples: apis.NewSamples()}
	b := builder.New()
	s.tm = b.BuildTypeMap(s.cfg, s.samples, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.tm, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilTypeMap is returned when a builder returns a nil type map.
	ErrNilTypeMap = errors.New("exemplar: builder returned nil type map")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("exemplar: builder returned nil resolver")
)

// DumpOption adjusts a single Dump call.
type DumpOption func(*dumpOptions)

// dumpOptions collects the per-call knobs.
type dumpOptions struct {
	exclude   []string
	renew     bool
	overrides map[any]any
}

// WithExcludeFields excludes the named fields from the produced mapping.
// Names match at whatever nesting depth they are encountered.
func WithExcludeFields(names ...string) DumpOption {
	return func(o *dumpOptions) {
		o.exclude = append(o.exclude, names...)
	}
}

// WithRenewTypeValues regenerates the shared sample identifier and sample
// timestamp before resolving this call's fields. The renewal is global:
// subsequent dumps see the new samples too.
func WithRenewTypeValues() DumpOption {
	return func(o *dumpOptions) {
		o.renew = true
	}
}

// WithTypeValues merges overrides on top of the default type->example
// table for this call only. Keys may be an apis.Kind, an apis.DocType, or
// a reflect.Type; a nil value masks the entry.
func WithTypeValues(overrides map[any]any) DumpOption {
	return func(o *dumpOptions) {
		if o.overrides == nil {
			o.overrides = make(map[any]any, len(overrides))
		}
		for k, v := range overrides {
			o.overrides[k] = v
		}
	}
}

// Dump synthesizes the example mapping for a serializer schema: its
// declared fields walked recursively, each field resolved to a sample
// value, and the result normalized through a JSON round trip so only JSON
// primitive types remain.
//
// The schema may be an apis.Serializer value or a reflect.Type of one.
func Dump(schema any, opts ...DumpOption) (map[string]any, error) {
	var o dumpOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.renew {
		RenewSamples()
	}

	s := st.Load()
	tm := s.tm
	res := s.res
	if len(o.overrides) > 0 {
		// Call-scoped view; the global snapshot stays untouched.
		tm = tm.Derive(o.overrides)
		res = s.bld.BuildResolver(s.cfg, tm, s.res, s.ext)
		if res == nil {
			panic(ErrNilResolver)
		}
	}

	raw, err := walker.New(s.cfg, tm, res).Walk(schema, o.exclude)
	if err != nil {
		return nil, err
	}
	return jsonx.Normalize(raw)
}

// Samples returns the current process-wide sample pair.
func Samples() apis.Samples {
	return st.Load().samples
}

// RenewSamples regenerates the process-wide sample identifier and sample
// timestamp, rebuilding the non-pinned layers so the new values flow into
// subsequent resolutions. It returns the new pair.
func RenewSamples() apis.Samples {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld
	ns := apis.NewSamples()

	// Build new tm and res embedding the new samples.
	ntm := old.tm
	if !old.ptm {
		ntm = b.BuildTypeMap(old.cfg, ns, old.tm, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, ntm, old.res, old.ext)
	}

	// Ensure non-nil tm and res.
	if ntm == nil {
		panic(ErrNilTypeMap)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     old.cfg,
			samples: ns,
			ext:     old.ext,
			tm:      ntm,
			res:     nres,
			bld:     b,
			ptm:     old.ptm,
			pres:    old.pres,
		},
	)
	return ns
}

// RegisterType adds a process-scoped custom association to the global
// type map. The key may be an apis.Kind, an apis.DocType, or a
// reflect.Type. This is a convenience wrapper around the global tm.
func RegisterType(key, value any) error {
	return st.Load().tm.Register(key, value)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged, except for
// ext which is always replaced. This is mainly used by tests to get a
// clean deterministic state between cases.
func SetAll(cfg *apis.Config, ext any, tm apis.TypeMap, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// TypeMap
	ntm := tm
	nptm := false
	if ntm == nil {
		ntm = nbld.BuildTypeMap(ncfg, old.samples, old.tm, next)
	} else {
		nptm = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, ntm, old.res, next)
	} else {
		npres = true
	}

	// Ensure non-nil tm and res.
	if ntm == nil {
		panic(ErrNilTypeMap)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     ncfg,
			samples: old.samples,
			ext:     next,
			tm:      ntm,
			res:     nres,
			bld:     nbld,
			ptm:     nptm,
			pres:    npres,
		},
	)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the non-pinned tm and res layers using the new configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new tm and res based on the new cfg and old state.
	ntm := old.tm
	if !old.ptm {
		ntm = b.BuildTypeMap(cfg, old.samples, old.tm, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, ntm, old.res, old.ext)
	}

	// Ensure non-nil tm and res.
	if ntm == nil {
		panic(ErrNilTypeMap)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     cfg,
			samples: old.samples,
			ext:     old.ext,
			tm:      ntm,
			res:     nres,
			bld:     b,
			ptm:     old.ptm,
			pres:    old.pres,
		},
	)
}

// TypeMap returns the global type map.
func TypeMap() apis.TypeMap {
	return st.Load().tm
}

// SetTypeMap sets the global type map to tm and pins it.
// It rebuilds the non-pinned res over the new map.
func SetTypeMap(tm apis.TypeMap) {
	if tm == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new tm.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, tm, old.res, old.ext)
	}

	// Ensure non-nil res.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     old.cfg,
			samples: old.samples,
			ext:     old.ext,
			tm:      tm,
			res:     nres,
			bld:     b,
			ptm:     true,
			pres:    old.pres,
		},
	)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver to res and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     old.cfg,
			samples: old.samples,
			ext:     old.ext,
			tm:      old.tm,
			res:     res,
			bld:     old.bld,
			ptm:     old.ptm,
			pres:    true,
		},
	)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b.
// It rebuilds the non-pinned tm and res layers with the new builder.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new tm and res based on the new builder and old state.
	ntm := old.tm
	if !old.ptm {
		ntm = b.BuildTypeMap(old.cfg, old.samples, old.tm, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, ntm, old.res, old.ext)
	}

	// Ensure non-nil tm and res.
	if ntm == nil {
		panic(ErrNilTypeMap)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     old.cfg,
			samples: old.samples,
			ext:     old.ext,
			tm:      ntm,
			res:     nres,
			bld:     b,
			ptm:     old.ptm,
			pres:    old.pres,
		},
	)
}

// SetExt replaces the extension config and rebuilds non-pinned layers.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new tm and res based on the new ext and old state.
	ntm := old.tm
	if !old.ptm {
		ntm = b.BuildTypeMap(old.cfg, old.samples, old.tm, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, ntm, old.res, ext)
	}

	// Ensure non-nil tm and res.
	if ntm == nil {
		panic(ErrNilTypeMap)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:     old.cfg,
			samples: old.samples,
			ext:     ext,
			tm:      ntm,
			res:     nres,
			bld:     b,
			ptm:     old.ptm,
			pres:    old.pres,
		},
	)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsTypeMapPinned returns whether the global type map is pinned (immutable).
func IsTypeMapPinned() bool {
	return st.Load().ptm
}

// PinTypeMap makes the global type map immune to automatic rebuilds.
func PinTypeMap() {
	setPins(func(s *state) { s.ptm = true })
}

// UnpinTypeMap makes the global type map rebuildable again.
func UnpinTypeMap() {
	setPins(func(s *state) { s.ptm = false })
}

// IsResolverPinned returns whether the global resolver is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global resolver immune to automatic rebuilds.
func PinResolver() {
	setPins(func(s *state) { s.pres = true })
}

// UnpinResolver makes the global resolver rebuildable again.
func UnpinResolver() {
	setPins(func(s *state) { s.pres = false })
}

// setPins copies the current state, applies the pin mutation, and
// publishes the copy atomically.
func setPins(mut func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mut(&next)
	st.Store(&next)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate
// fields of a published state. Writers create a new state and swap it
// atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// samples is the process-wide cached sample pair.
	samples apis.Samples
	// ext is the global extension configuration.
	ext any
	// tm is the global type map.
	tm apis.TypeMap
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// ptm indicates whether the type map is pinned (immutable).
	ptm bool
	// pres indicates whether the resolver is pinned (immutable).
	pres bool
}
