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

import "strings"

// compoundRuleMeta are the regex-like metacharacters a COMPOUNDRULE
// string may carry verbatim (§3 "expect metacharacters `* + ? ( )`");
// every other rune is a flag-token character naming a bucket.
const compoundRuleMeta = "*+?()"

// table is word -> list of flag sets (§3 "Lookup table"). Multiple
// entries arise when the same surface word is derived via different
// base entries; a word reached only via affix derivation (not itself
// a base entry) carries an empty flagSet.
type table map[string][]flagSet

func (t table) insert(word string, fs flagSet) {
	if word == "" {
		return
	}
	t[word] = append(t[word], fs)
}

// expandDict parses the word-list blob and populates table and the
// compound rule-code buckets, per §4.D.
func expandDict(blob []byte, spec *affixSpec, maxDepth int) (table, map[flagToken][]string, error) {
	tbl := make(table)
	bucketKeys := compoundBucketKeys(spec)
	buckets := make(map[flagToken][]string)

	lines := splitLines(blob)
	// Strip TAB-comment lines, trim, drop blanks; the surviving first
	// line is the advisory count (§4.D pre-processing).
	var surviving [][]byte
	survivingLineno := make([]int, 0, len(lines))
	for i, raw := range lines {
		if len(raw) > 0 && raw[0] == '\t' {
			continue
		}
		line := trimSpaceBytes(raw)
		if len(line) == 0 {
			continue
		}
		surviving = append(surviving, line)
		survivingLineno = append(survivingLineno, i+1)
	}
	if len(surviving) == 0 {
		return tbl, buckets, nil
	}
	// surviving[0] is the advisory count line; skip it regardless of
	// whether it actually parses as a number (§4.D: "advisory; not
	// enforced").
	for idx := 1; idx < len(surviving); idx++ {
		line := surviving[idx]
		pos := srcpos{source: "dict", line: survivingLineno[idx]}
		word, codeString, hasCode := splitWordEntry(string(line))
		word = strings.TrimSpace(word)
		if !hasCode {
			tbl.insert(word, nil)
			continue
		}
		codes, err := tokenizeFlags(codeString, spec.settings.scheme)
		if err != nil {
			return nil, nil, pos.errorf("malformed flag codes %q: %v", codeString, err)
		}

		needAffixFlag, needAffixConfigured := spec.settings.flag("NEEDAFFIX")
		bareSuppressed := needAffixConfigured && hasFlagToken(codes, needAffixFlag)
		if !bareSuppressed {
			tbl.insert(word, flagSet(codes))
		}

		for i, c := range codes {
			if rule, ok := spec.rules[c]; ok {
				derived := applyRule(word, rule, spec.rules, 0, maxDepth, pos)
				for _, d := range derived {
					tbl.insert(d, nil)
				}
				if rule.combineable {
					for _, c2 := range codes[i+1:] {
						rule2, ok := spec.rules[c2]
						if !ok || !rule2.combineable || rule2.kind == rule.kind {
							continue
						}
						for _, d := range derived {
							more := applyRule(d, rule2, spec.rules, 0, maxDepth, pos)
							for _, m := range more {
								tbl.insert(m, nil)
							}
						}
					}
				}
				continue
			}
			if bucketKeys[c] {
				buckets[c] = append(buckets[c], word)
			}
			// Unknown flag tokens are silently ignored (§3 invariant, §7).
		}
	}
	return tbl, buckets, nil
}

// splitWordEntry splits a word-list line on the first '/' per §4.D.
func splitWordEntry(line string) (word, codeString string, hasCode bool) {
	i := strings.IndexByte(line, '/')
	if i < 0 {
		return line, "", false
	}
	return line[:i], line[i+1:], true
}

func hasFlagToken(codes []flagToken, t flagToken) bool {
	if t == "" {
		return false
	}
	for _, c := range codes {
		if c == t {
			return true
		}
	}
	return false
}

// compoundBucketKeys collects the flag tokens that appear in any
// compound rule (plus ONLYINCOMPOUND, if configured) — the set §3
// calls "Compound rule-code buckets."
func compoundBucketKeys(spec *affixSpec) map[flagToken]bool {
	keys := make(map[flagToken]bool)
	for _, rs := range spec.compoundRuleStrings {
		for _, r := range rs {
			if strings.ContainsRune(compoundRuleMeta, r) {
				continue
			}
			keys[flagToken(string(r))] = true
		}
	}
	if t, ok := spec.settings.flag("ONLYINCOMPOUND"); ok {
		keys[t] = true
	}
	return keys
}
