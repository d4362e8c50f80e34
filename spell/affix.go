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
	"regexp"
	"strconv"
	"strings"
)

type affixKind int

const (
	affixPrefix affixKind = iota
	affixSuffix
)

// affixEntry is one alternative within an affix rule (§3 "Affix entry").
type affixEntry struct {
	add                 string
	remove              string
	removeLen           int // len(remove), for slicing; 0 if remove is absent
	hasRemove           bool
	match               *regexp.Regexp // nil means "." (always applies)
	continuationClasses []flagToken
}

// affixRule is keyed by flag token in affixSpec.rules (§3 "Affix rule").
type affixRule struct {
	flag        flagToken
	kind        affixKind
	combineable bool
	entries     []affixEntry
}

// replacementPair is a REP entry (§3 "Replacement pair").
type replacementPair struct {
	from, to string
}

// affixSpec is the fully parsed affix-spec blob (§4.B output).
type affixSpec struct {
	settings            *settings
	rules               map[flagToken]*affixRule
	compoundRuleStrings []string
	replacements        []replacementPair
}

// parseAffix parses the raw affix-spec blob per §4.B.
func parseAffix(blob []byte) (*affixSpec, error) {
	spec := &affixSpec{
		settings: newSettings(),
		rules:    make(map[flagToken]*affixRule),
	}

	lines := splitLines(blob)
	lineno := 0
	// Single pass: FLAG may appear anywhere, but continuation classes in
	// PFX/SFX entries are tokenized under whichever scheme is in effect
	// when the entry is reached (hunspell dictionaries conventionally put
	// FLAG first).
	i := 0
	for i < len(lines) {
		lineno = i + 1
		pos := srcpos{source: "affix", line: lineno}
		line := prepAffixLine(lines[i])
		i++
		if len(line) == 0 {
			continue
		}
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}
		directive := fields[0]
		switch directive {
		case "PFX", "SFX":
			consumed, err := parseAffixHeader(spec, fields, lines, i, pos)
			if err != nil {
				return nil, err
			}
			i += consumed
		case "COMPOUNDRULE":
			if len(fields) < 2 {
				return nil, pos.errorf("COMPOUNDRULE missing count")
			}
			count, err := strconv.Atoi(fields[1])
			if err != nil || count < 0 {
				return nil, pos.errorf("COMPOUNDRULE malformed count %q", fields[1])
			}
			for n := 0; n < count; n++ {
				if i >= len(lines) {
					return nil, pos.errorf("COMPOUNDRULE declared %d entries, ran out of lines", count)
				}
				entryLine := prepAffixLine(lines[i])
				i++
				ef := splitFields(entryLine)
				if len(ef) < 2 {
					return nil, srcpos{source: "affix", line: lineno + n + 1}.errorf("malformed COMPOUNDRULE entry")
				}
				spec.compoundRuleStrings = append(spec.compoundRuleStrings, ef[1])
			}
		case "REP":
			if len(fields) == 2 {
				// Some dictionaries emit a "REP <count>" header before
				// their from/to lines; the count is advisory, like the
				// word list's leading count, and is not enforced.
				continue
			}
			if len(fields) < 3 {
				logTolerated("%s: malformed REP line, ignoring", pos)
				continue
			}
			spec.replacements = append(spec.replacements, replacementPair{from: fields[1], to: fields[2]})
		default:
			if len(fields) < 2 {
				logUnknownDirective(pos, directive)
				continue
			}
			spec.settings.set(directive, strings.Join(fields[1:], " "))
			if directive == "FLAG" {
				scheme, ok := parseFlagScheme(fields[1])
				if !ok {
					return nil, pos.errorf("unknown FLAG scheme %q", fields[1])
				}
				spec.settings.scheme = scheme
			}
		}
	}
	return spec, nil
}

// prepAffixLine strips comments and surrounding whitespace per §4.B's
// pre-processing step.
func prepAffixLine(line []byte) []byte {
	return trimSpaceBytes(removeComment(line))
}

// parseAffixHeader parses one "PFX|SFX flag combineable count" header
// and its declared count of entry lines, advancing exactly that many
// lines past the header — the parser "must not consume further lines"
// per §4.B.
func parseAffixHeader(spec *affixSpec, fields []string, lines [][]byte, start int, pos srcpos) (int, error) {
	if len(fields) != 4 {
		return 0, pos.errorf("malformed %s header: want 4 fields, got %d", fields[0], len(fields))
	}
	kind := affixPrefix
	if fields[0] == "SFX" {
		kind = affixSuffix
	}
	flag := flagToken(fields[1])
	combineable, err := parseYN(fields[2])
	if err != nil {
		return 0, pos.errorf("%s %s: %v", fields[0], flag, err)
	}
	count, err := strconv.Atoi(fields[3])
	if err != nil || count < 0 {
		return 0, pos.errorf("%s %s: malformed count %q", fields[0], flag, fields[3])
	}

	rule := &affixRule{flag: flag, kind: kind, combineable: combineable}
	consumed := 0
	for n := 0; n < count; n++ {
		idx := start + n
		if idx >= len(lines) {
			return 0, pos.errorf("%s %s declared %d entries, ran out of lines", fields[0], flag, count)
		}
		consumed++
		entryLine := prepAffixLine(lines[idx])
		if len(entryLine) == 0 {
			continue
		}
		ef := splitFields(entryLine)
		if len(ef) < 5 {
			return 0, srcpos{source: "affix", line: idx + 1}.errorf("malformed %s entry: want 5 fields, got %d", fields[0], len(ef))
		}
		entry, err := parseAffixEntry(kind, ef, spec.settings.scheme)
		if err != nil {
			return 0, srcpos{source: "affix", line: idx + 1}.errorf("%v", err)
		}
		rule.entries = append(rule.entries, entry)
	}
	spec.rules[flag] = rule
	return consumed, nil
}

func parseYN(s string) (bool, error) {
	switch s {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("expected Y or N, got %q", s)
	}
}

func parseAffixEntry(kind affixKind, fields []string, scheme FlagScheme) (affixEntry, error) {
	var e affixEntry

	strip := fields[2]
	if strip != "0" {
		e.remove = strip
		e.removeLen = len(strip)
		e.hasRemove = true
	}

	addSpec := fields[3]
	add, cont := addSpec, ""
	if idx := strings.IndexByte(addSpec, '/'); idx >= 0 {
		add, cont = addSpec[:idx], addSpec[idx+1:]
	}
	if add != "0" {
		e.add = add
	}
	if cont != "" {
		toks, err := tokenizeFlags(cont, scheme)
		if err != nil {
			return e, err
		}
		e.continuationClasses = toks
	}

	cond := fields[4]
	if cond != "." {
		pattern, err := compileCondition(cond, kind)
		if err != nil {
			return e, fmt.Errorf("condition %q: %v", cond, err)
		}
		e.match = pattern
	}
	return e, nil
}

// compileCondition translates a hunspell condition (character
// classes, '.', anchors implicit by position) into an anchored Go
// regexp: suffix conditions anchor at the end of the word, prefix
// conditions at the start. This is the one place the host regex
// engine's correctness is load-bearing, per §9.
func compileCondition(cond string, kind affixKind) (*regexp.Regexp, error) {
	var pat string
	if kind == affixSuffix {
		pat = cond + "$"
	} else {
		pat = "^" + cond
	}
	return regexp.Compile(pat)
}
