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

// Scenario S1 — basic suffix expansion.
func TestScenarioS1BasicSuffixExpansion(t *testing.T) {
	d, err := New([]byte("SFX D Y 1\nSFX D 0 ed [^y]\n"), []byte("1\nwalk/D\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Check("walk") {
		t.Error("walk should be accepted")
	}
	if !d.Check("walked") {
		t.Error("walked should be accepted")
	}
	if d.Check("walks") {
		t.Error("walks should not be accepted")
	}
}

// Scenario S2 — PFX + SFX combine.
func TestScenarioS2PrefixSuffixCombine(t *testing.T) {
	d, err := New(
		[]byte("PFX A Y 1\nPFX A 0 re .\nSFX B Y 1\nSFX B 0 ing .\n"),
		[]byte("1\ndo/AB\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"do", "redo", "doing", "redoing"} {
		if !d.Check(w) {
			t.Errorf("%q should be accepted", w)
		}
	}
}

// Scenario S3 — KEEPCASE.
func TestScenarioS3KeepCase(t *testing.T) {
	d, err := New([]byte("KEEPCASE K\n"), []byte("1\niPhone/K\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Check("iPhone") {
		t.Error("iPhone should be accepted")
	}
	if d.Check("iphone") {
		t.Error("iphone should be rejected (KEEPCASE)")
	}
	if d.Check("IPHONE") {
		t.Error("IPHONE should be rejected (KEEPCASE)")
	}
}

// Scenario S4 — ONLYINCOMPOUND with compound rule.
func TestScenarioS4OnlyInCompound(t *testing.T) {
	d, err := New(
		[]byte("ONLYINCOMPOUND O\nCOMPOUNDMIN 3\nCOMPOUNDRULE 1\nCOMPOUNDRULE AB\n"),
		[]byte("2\nfoo/A\nbar/BO\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if d.Check("bar") {
		t.Error("bar is ONLYINCOMPOUND and should be rejected standalone")
	}
	if !d.Check("foobar") {
		t.Error("foobar should be accepted via the compound rule")
	}
}

func TestCheckEmptyAfterTrim(t *testing.T) {
	d, err := New(nil, []byte("1\nhello\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Check("   ") {
		t.Error("whitespace-only input should be rejected")
	}
}

func TestCheckUppercaseVariantWithoutKeepcase(t *testing.T) {
	d, err := New(nil, []byte("1\nhello\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !d.Check("HELLO") {
		t.Error("all-caps variant should be accepted without KEEPCASE")
	}
	if !d.Check("hello") {
		t.Error("lowercase should be accepted")
	}
}

func TestCheckMixedCaseNotInTableIsRejected(t *testing.T) {
	d, err := New(nil, []byte("1\nhello\n"))
	if err != nil {
		t.Fatal(err)
	}
	// "Hello" is neither all-upper nor all-lower, so it takes neither
	// capitalization branch and is rejected unless present verbatim,
	// per §9's open question (kept as specified).
	if d.Check("Hello") {
		t.Error("mixed-case variant not in the table should be rejected")
	}
}

func TestHasFlagUnconfiguredFailsOpen(t *testing.T) {
	d, err := New(nil, []byte("1\nhello/X\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.HasFlag("hello", "NOSUGGEST", nil) {
		t.Error("an unconfigured flag name should fail open (return false)")
	}
}

func TestCheckExactFallsBackToCompound(t *testing.T) {
	d, err := New(
		[]byte("COMPOUNDMIN 3\nCOMPOUNDRULE 1\nCOMPOUNDRULE AB\n"),
		[]byte("2\nfoo/A\nbar/B\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if d.CheckExact("foobaz") {
		t.Error("foobaz should not match the compound rule")
	}
	if !d.CheckExact("foobar") {
		t.Error("foobar should match the compound rule")
	}
}
