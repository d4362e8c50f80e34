// Copyright 2026 The Spellkern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spell

import (
	"strings"

	"github.com/tidwall/gjson"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// CaseFolder supplies the upper/lower transforms check uses for
// capitalization-variant lookup (§4.F step 3-4). The zero value
// (nil fields) falls back to strings.ToUpper/strings.ToLower, which
// is the locale-insensitive ASCII behavior §4.F describes; a
// Unicode-aware caller may substitute golang.org/x/text/cases
// transforms here instead (§9's "surface this as a configuration
// knob rather than a hard dependency").
type CaseFolder struct {
	Upper func(string) string
	Lower func(string) string
}

// config accumulates Option values before New builds the Dictionary.
type config struct {
	overrides   map[string]string
	maxDepth    int
	caseFolder  CaseFolder
	alphabet    string
}

// Option configures New. See §6 "Construction surface."
type Option func(*config)

// WithFlagOverrides supplies named-flag settings the caller wants to
// provide externally (e.g. FLAG). They are merged into the settings
// parsed from the affix spec, with affix-spec values taking
// precedence, per §6.
func WithFlagOverrides(overrides map[string]string) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[string]string)
		}
		for k, v := range overrides {
			c.overrides[k] = v
		}
	}
}

// WithFlagOverridesJSON decodes a flat JSON object of named-flag
// overrides (e.g. {"FLAG":"long","COMPOUNDMIN":"3"}) with gjson,
// since the override set is an open caller-defined bag of key/value
// pairs rather than a fixed struct — the same shape gjson's path
// queries are built for.
func WithFlagOverridesJSON(blob []byte) Option {
	return func(c *config) {
		if len(blob) == 0 {
			return
		}
		result := gjson.ParseBytes(blob)
		if !result.IsObject() {
			return
		}
		if c.overrides == nil {
			c.overrides = make(map[string]string)
		}
		result.ForEach(func(key, value gjson.Result) bool {
			c.overrides[key.String()] = value.String()
			return true
		})
	}
}

// WithMaxRecursionDepth bounds continuation-class recursion in the
// rule applier (§9; default 8).
func WithMaxRecursionDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithCaseFolder overrides the upper/lower folders used by check.
func WithCaseFolder(folder CaseFolder) Option {
	return func(c *config) {
		c.caseFolder = folder
	}
}

// WithSuggestionAlphabet overrides the fixed 26-letter alphabet the
// suggestion engine uses for replace/insert candidates (§9's "known
// limitation... may expand it from the dictionary's observed
// character set or accept a user-supplied alphabet").
func WithSuggestionAlphabet(alphabet string) Option {
	return func(c *config) {
		if alphabet != "" {
			c.alphabet = alphabet
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		maxDepth: defaultMaxRecursionDepth,
		alphabet: defaultAlphabet,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.caseFolder.Upper == nil {
		c.caseFolder.Upper = strings.ToUpper
	}
	if c.caseFolder.Lower == nil {
		c.caseFolder.Lower = strings.ToLower
	}
	return c
}
