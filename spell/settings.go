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
	"fmt"
	"strconv"
)

// settings holds the named-setting map parsed from the affix spec
// (§3 "Named flag settings"), plus any caller-supplied overrides
// merged in at construction with affix-spec values taking precedence
// (§6 "Construction surface").
type settings struct {
	values map[string]string
	scheme FlagScheme
}

func newSettings() *settings {
	return &settings{values: make(map[string]string)}
}

// merge copies overrides into s for any key s does not already hold,
// matching §6's "merged into settings parsed from the affix spec, with
// affix-spec values taking precedence."
func (s *settings) merge(overrides map[string]string) {
	for k, v := range overrides {
		if _, ok := s.values[k]; !ok {
			s.values[k] = v
		}
	}
}

func (s *settings) set(key, value string) {
	s.values[key] = value
}

func (s *settings) get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// flag looks up a named setting and tokenizes it as a single flag,
// returning the zero flagToken and false if unconfigured. Per §9's
// Open Question decision, this fail-open behavior (an unconfigured
// KEEPCASE/NOSUGGEST/NEEDAFFIX effectively disables that policy) is
// intentional and preserved.
func (s *settings) flag(key string) (flagToken, bool) {
	v, ok := s.values[key]
	if !ok || v == "" {
		return "", false
	}
	toks, err := tokenizeFlags(v, s.scheme)
	if err != nil || len(toks) == 0 {
		return "", false
	}
	return toks[0], true
}

// resolveScheme (re-)derives scheme from the current FLAG value, if
// any is set. Called after overrides are merged in, since FLAG may
// have been supplied only externally via WithFlagOverrides/
// WithFlagOverridesJSON rather than by the affix spec itself — merge
// never overwrites an affix-spec FLAG value, so calling this
// unconditionally after merge still leaves affix-spec values taking
// precedence (§6).
func (s *settings) resolveScheme() error {
	v, ok := s.values["FLAG"]
	if !ok {
		return nil
	}
	scheme, ok := parseFlagScheme(v)
	if !ok {
		return fmt.Errorf("unknown FLAG scheme %q", v)
	}
	s.scheme = scheme
	return nil
}

func (s *settings) compoundMin() int {
	v, ok := s.values["COMPOUNDMIN"]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
