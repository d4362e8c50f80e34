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

// CheckExact answers membership without the capitalization fallbacks
// of Check: whether w, exactly as given, is a usable word — either a
// table entry with at least one flag set lacking ONLYINCOMPOUND, or,
// when w is not in the table at all, a compound-rule match, per §4.F.
func (d *Dictionary) CheckExact(w string) bool {
	sets, ok := d.table[w]
	if !ok {
		return d.checkCompound(w)
	}
	onlyInCompound, configured := d.settings.flag("ONLYINCOMPOUND")
	if !configured {
		return true
	}
	for _, fs := range sets {
		if !fs.has(onlyInCompound) {
			return true
		}
	}
	return false
}

func (d *Dictionary) checkCompound(w string) bool {
	min := d.settings.compoundMin()
	if min <= 0 || len(w) < min {
		return false
	}
	return matchesAnyCompoundRule(w, d.compoundRules)
}

// Check answers whether word is accepted, including compound fallback.
// All-caps input is also tried in its capitalized form and then in its
// lower-cased form, unless the form looked up carries KEEPCASE; input
// in any other casing is accepted only as given.
func (d *Dictionary) Check(word string) bool {
	w := strings.TrimSpace(word)
	if w == "" {
		return false
	}
	if d.CheckExact(w) {
		return true
	}
	if w != d.caseFolder.Upper(w) {
		return false
	}
	cap := capitalize(w, d.caseFolder)
	if d.hasFlagOn(cap, "KEEPCASE", nil) {
		return false
	}
	if d.CheckExact(cap) {
		return true
	}
	low := d.caseFolder.Lower(w)
	if low != w {
		if d.hasFlagOn(low, "KEEPCASE", nil) {
			return false
		}
		return d.CheckExact(low)
	}
	return false
}

func capitalize(w string, folder CaseFolder) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	head := folder.Upper(string(r[0]))
	tail := folder.Lower(string(r[1:]))
	return head + tail
}

// HasFlag reports whether w carries the named flag, either via an
// explicit flag set or (when explicit is nil) the union of all of w's
// flag sets in the table. An unconfigured flagName fails open (§9).
func (d *Dictionary) HasFlag(w, flagName string, explicit []string) bool {
	var fs flagSet
	if explicit != nil {
		fs = make(flagSet, len(explicit))
		for i, e := range explicit {
			fs[i] = flagToken(e)
		}
	}
	return d.hasFlagOn(w, flagName, fs)
}

func (d *Dictionary) hasFlagOn(w, flagName string, explicit flagSet) bool {
	token, configured := d.settings.flag(flagName)
	if !configured {
		return false
	}
	if explicit != nil {
		return explicit.has(token)
	}
	sets, ok := d.table[w]
	if !ok {
		return false
	}
	return unionFlagSets(sets).has(token)
}
