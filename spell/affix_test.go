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

import "testing"

func TestParseAffixSuffixRule(t *testing.T) {
	blob := []byte("SFX D Y 1\nSFX D 0 ed [^y]\n")
	spec, err := parseAffix(blob)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := spec.rules["D"]
	if !ok {
		t.Fatal("rule D not found")
	}
	if r.kind != affixSuffix {
		t.Errorf("kind = %v, want suffix", r.kind)
	}
	if !r.combineable {
		t.Error("combineable = false, want true")
	}
	if len(r.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(r.entries))
	}
	e := r.entries[0]
	if e.add != "ed" || e.hasRemove {
		t.Errorf("entry = %+v, want add=ed hasRemove=false", e)
	}
	if e.match == nil || !e.match.MatchString("walk") || e.match.MatchString("play") {
		t.Errorf("condition [^y]$ should accept walk and reject play")
	}
}

func TestParseAffixPrefixRule(t *testing.T) {
	blob := []byte("PFX A Y 1\nPFX A 0 re .\n")
	spec, err := parseAffix(blob)
	if err != nil {
		t.Fatal(err)
	}
	r := spec.rules["A"]
	if r.kind != affixPrefix {
		t.Errorf("kind = %v, want prefix", r.kind)
	}
	if r.entries[0].match != nil {
		t.Errorf("condition '.' should mean unconditional (nil match)")
	}
}

func TestParseAffixStopsAtDeclaredCount(t *testing.T) {
	blob := []byte("SFX D Y 1\nSFX D 0 ed [^y]\nSFX E Y 1\nSFX E 0 ing .\n")
	spec, err := parseAffix(blob)
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.rules) != 2 {
		t.Fatalf("rules = %d, want 2", len(spec.rules))
	}
	if _, ok := spec.rules["E"]; !ok {
		t.Error("rule E should have been parsed as its own header, not consumed by D's count")
	}
}

func TestParseAffixSettingsAndCompoundRule(t *testing.T) {
	blob := []byte("FLAG long\nONLYINCOMPOUND O\nCOMPOUNDMIN 3\nCOMPOUNDRULE 1\nCOMPOUNDRULE AB\n")
	spec, err := parseAffix(blob)
	if err != nil {
		t.Fatal(err)
	}
	if spec.settings.scheme != SchemeLong {
		t.Errorf("scheme = %v, want SchemeLong", spec.settings.scheme)
	}
	v, ok := spec.settings.get("ONLYINCOMPOUND")
	if !ok || v != "O" {
		t.Errorf("ONLYINCOMPOUND = %q, %v", v, ok)
	}
	if spec.settings.compoundMin() != 3 {
		t.Errorf("compoundMin = %d, want 3", spec.settings.compoundMin())
	}
	if len(spec.compoundRuleStrings) != 1 || spec.compoundRuleStrings[0] != "AB" {
		t.Errorf("compoundRuleStrings = %v", spec.compoundRuleStrings)
	}
}

func TestParseAffixReplacementPairs(t *testing.T) {
	spec, err := parseAffix([]byte("REP f ph\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.replacements) != 1 || spec.replacements[0] != (replacementPair{"f", "ph"}) {
		t.Errorf("replacements = %v", spec.replacements)
	}
}

func TestParseAffixUnknownDirectiveIsTolerated(t *testing.T) {
	spec, err := parseAffix([]byte("WORDCHARS abc\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := spec.settings.get("WORDCHARS")
	if !ok || v != "abc" {
		t.Errorf("unknown directive should be recorded as a setting, got %q %v", v, ok)
	}
}

func TestParseAffixCommentsAndBlankLines(t *testing.T) {
	blob := []byte("# a comment\n\nFLAG num # trailing comment\n\n")
	spec, err := parseAffix(blob)
	if err != nil {
		t.Fatal(err)
	}
	if spec.settings.scheme != SchemeNumeric {
		t.Errorf("scheme = %v, want SchemeNumeric", spec.settings.scheme)
	}
}

func TestParseAffixMalformedCountIsAnError(t *testing.T) {
	_, err := parseAffix([]byte("SFX D Y notanumber\nSFX D 0 ed .\n"))
	if err == nil {
		t.Fatal("expected a parse error for a malformed PFX/SFX count")
	}
}
