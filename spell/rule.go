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

const defaultMaxRecursionDepth = 8

// applyOneEntry applies a single affix entry to word, returning the
// derived form and whether the entry's match condition was satisfied
// (step 1-3 of §4.C).
func applyOneEntry(word string, e affixEntry, kind affixKind) (string, bool) {
	if e.match != nil && !e.match.MatchString(word) {
		return "", false
	}
	stem := word
	if e.hasRemove {
		switch kind {
		case affixSuffix:
			if e.removeLen > len(stem) {
				return "", false
			}
			stem = stem[:len(stem)-e.removeLen]
		case affixPrefix:
			if e.removeLen > len(stem) {
				return "", false
			}
			stem = stem[e.removeLen:]
		}
	}
	var derived string
	switch kind {
	case affixSuffix:
		derived = stem + e.add
	case affixPrefix:
		derived = e.add + stem
	}
	return derived, true
}

// applyRule applies rule to word, emitting the direct derivation of
// each entry followed by the derivations of its continuation classes,
// recursively, per §4.C's emission order. rules resolves continuation
// flag tokens to rules; missing continuation rules are silently
// skipped (§7). depth bounds recursion (§3's termination invariant,
// §9's guidance to cap defensively).
func applyRule(word string, rule *affixRule, rules map[flagToken]*affixRule, depth, maxDepth int, pos srcpos) []string {
	var out []string
	for _, e := range rule.entries {
		derived, ok := applyOneEntry(word, e, rule.kind)
		if !ok {
			continue
		}
		out = append(out, derived)
		if len(e.continuationClasses) == 0 {
			continue
		}
		if depth >= maxDepth {
			logRecursionCapped(pos, rule.flag, maxDepth)
			continue
		}
		for _, cc := range e.continuationClasses {
			contRule, ok := rules[cc]
			if !ok {
				continue
			}
			out = append(out, applyRule(derived, contRule, rules, depth+1, maxDepth, pos)...)
		}
	}
	return out
}
