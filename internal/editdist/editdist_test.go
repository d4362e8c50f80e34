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

package editdist

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNeighborsContainsDeleteTransposeReplaceInsert(t *testing.T) {
	got := Neighbors("cat", "abc")
	want := map[string]bool{
		"at":   true, // delete c
		"ct":   true, // delete a
		"ca":   true, // delete t
		"act":  true, // transpose c,a
		"cta":  true, // transpose a,t
		"aat":  true, // replace c->a
		"acat": true, // insert a at front
	}
	set := make(map[string]bool, len(got))
	for _, g := range got {
		set[g] = true
	}
	for w := range want {
		if !set[w] {
			t.Errorf("Neighbors(cat) missing expected candidate %q", w)
		}
	}
}

func TestNeighborsAllWithinEditDistanceOne(t *testing.T) {
	word := "speller"
	for _, n := range Neighbors(word, "abcdefghijklmnopqrstuvwxyz") {
		if d := Distance(word, n); d > 1 {
			t.Errorf("Distance(%q, %q) = %d, want <= 1", word, n, d)
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("speller", "spellerr")
	}
}
