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
	"reflect"
	"sort"
	"testing"
)

func mustParseAffix(t *testing.T, blob string) *affixSpec {
	t.Helper()
	spec, err := parseAffix([]byte(blob))
	if err != nil {
		t.Fatalf("parseAffix: %v", err)
	}
	return spec
}

func TestApplyRuleSimpleSuffix(t *testing.T) {
	spec := mustParseAffix(t, "SFX D Y 1\nSFX D 0 ed [^y]\n")
	got := applyRule("walk", spec.rules["D"], spec.rules, 0, defaultMaxRecursionDepth, srcpos{})
	want := []string{"walked"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("applyRule = %v, want %v", got, want)
	}
}

func TestApplyRuleRemove(t *testing.T) {
	spec := mustParseAffix(t, "SFX Y Y 1\nSFX Y y ied y\n")
	got := applyRule("try", spec.rules["Y"], spec.rules, 0, defaultMaxRecursionDepth, srcpos{})
	want := []string{"tried"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("applyRule = %v, want %v", got, want)
	}
}

func TestApplyRuleRecursiveContinuation(t *testing.T) {
	spec := mustParseAffix(t, "SFX A Y 1\nSFX A 0 s/B .\nSFX B Y 1\nSFX B 0 !  .\n")
	got := applyRule("run", spec.rules["A"], spec.rules, 0, defaultMaxRecursionDepth, srcpos{})
	sort.Strings(got)
	// Direct derivation "runs" is emitted first, then continuation B
	// applied to "runs" emits "runs!".
	expect := sortedCopy([]string{"runs", "runs!"})
	if !reflect.DeepEqual(got, expect) {
		t.Errorf("applyRule recursive = %v, want %v", got, expect)
	}
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestApplyRuleMissingContinuationSkipped(t *testing.T) {
	spec := mustParseAffix(t, "SFX A Y 1\nSFX A 0 s/Z .\n")
	got := applyRule("run", spec.rules["A"], spec.rules, 0, defaultMaxRecursionDepth, srcpos{})
	want := []string{"runs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("applyRule with missing continuation Z = %v, want %v", got, want)
	}
}

func TestApplyRuleRecursionDepthCapped(t *testing.T) {
	// A rule whose single entry continues into itself would recurse
	// forever without a depth cap.
	spec := mustParseAffix(t, "SFX A Y 1\nSFX A 0 x/A .\n")
	got := applyRule("w", spec.rules["A"], spec.rules, 0, 3, srcpos{})
	// Depth-capped: the direct derivation plus 3 recursive levels, so
	// at most 4 "x"s appended, not infinite.
	if len(got) == 0 {
		t.Fatal("expected some derivations before the cap")
	}
	for _, g := range got {
		if len(g) > len("w")+4 {
			t.Errorf("derivation %q grew past the recursion cap", g)
		}
	}
}
