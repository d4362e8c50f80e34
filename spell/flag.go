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
	"strings"
)

// flagToken is a short opaque code attached to a dictionary entry or
// affix rule. It is compared by equality, never interpreted.
type flagToken string

// FlagScheme selects how flag-code strings are decoded. The scheme is
// fixed for the lifetime of a Dictionary, chosen from the affix
// spec's FLAG setting.
type FlagScheme int

const (
	// SchemeSingleChar is the default: each flag is one character.
	SchemeSingleChar FlagScheme = iota
	// SchemeLong: each flag is two consecutive characters.
	SchemeLong
	// SchemeNumeric: flags are decimal integers separated by commas.
	SchemeNumeric
)

func parseFlagScheme(v string) (FlagScheme, bool) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "", "UTF-8":
		return SchemeSingleChar, true
	case "LONG":
		return SchemeLong, true
	case "NUM":
		return SchemeNumeric, true
	default:
		return SchemeSingleChar, false
	}
}

// tokenizeFlags decodes a flag-code string under scheme, preserving
// order of first appearance. Empty/absent input yields nil, not an
// error.
func tokenizeFlags(s string, scheme FlagScheme) ([]flagToken, error) {
	if s == "" {
		return nil, nil
	}
	switch scheme {
	case SchemeLong:
		if len(s)%2 != 0 {
			return nil, fmt.Errorf("long flag string %q has odd length", s)
		}
		tokens := make([]flagToken, 0, len(s)/2)
		for i := 0; i < len(s); i += 2 {
			tokens = append(tokens, flagToken(s[i:i+2]))
		}
		return tokens, nil
	case SchemeNumeric:
		parts := strings.Split(s, ",")
		tokens := make([]flagToken, 0, len(parts))
		for _, p := range parts {
			if p == "" {
				return nil, fmt.Errorf("numeric flag string %q has an empty segment", s)
			}
			tokens = append(tokens, flagToken(p))
		}
		return tokens, nil
	default: // SchemeSingleChar
		tokens := make([]flagToken, 0, len(s))
		for _, r := range s {
			tokens = append(tokens, flagToken(string(r)))
		}
		return tokens, nil
	}
}

// flagSet is a small set of flag tokens, kept as a slice in the order
// the flags were given rather than a map: dictionary entries carry only a handful of
// flags, and a slice keeps allocation and comparison cheap at the
// scale of hundreds of thousands of surface forms (§9's "avoid
// per-word object graphs" guidance).
type flagSet []flagToken

func (fs flagSet) has(t flagToken) bool {
	for _, f := range fs {
		if f == t {
			return true
		}
	}
	return false
}

func unionFlagSets(sets []flagSet) flagSet {
	var out flagSet
	for _, s := range sets {
		for _, f := range s {
			if !out.has(f) {
				out = append(out, f)
			}
		}
	}
	return out
}
