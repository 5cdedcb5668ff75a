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

package config

import (
	"dirpx.dev/exemplar/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 16 is plenty for any sane schema graph while still
	// cutting off self-referential ones.
	DefaultMaxDepth = 16
	// DefaultMethodPrefix represents the default for MethodPrefix.
	// Computed field "height" maps to accessor "GetHeight".
	DefaultMethodPrefix = "Get"
	// DefaultWarnUnresolved represents the default for WarnUnresolved.
	// When true, unresolved types and fields are logged.
	DefaultWarnUnresolved = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth and MethodPrefix are valid.
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MethodPrefix == "" {
		cfg.MethodPrefix = DefaultMethodPrefix
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:       DefaultMaxDepth,
		MethodPrefix:   DefaultMethodPrefix,
		WarnUnresolved: DefaultWarnUnresolved,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}

// WithMethodPrefix sets the MethodPrefix option.
// An empty value resets to the default.
func WithMethodPrefix(prefix string) Option {
	return func(c *apis.Config) {
		if prefix == "" {
			c.MethodPrefix = DefaultMethodPrefix
			return
		}
		c.MethodPrefix = prefix
	}
}

// WithWarnUnresolved sets the WarnUnresolved option.
func WithWarnUnresolved(warn bool) Option {
	return func(c *apis.Config) {
		c.WarnUnresolved = warn
	}
}
