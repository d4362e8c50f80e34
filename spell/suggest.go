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
	"sort"
	"strings"

	"github.com/spellkern/spellkern/internal/editdist"
)

const defaultSuggestLimit = 5

// Suggest returns up to limit (default 5) plausible corrections for
// word, or an empty slice if word is already accepted or no
// candidate qualifies. Suggest never returns an error (§4.G, §7).
func (d *Dictionary) Suggest(word string, limit ...int) []string {
	n := defaultSuggestLimit
	if len(limit) > 0 && limit[0] > 0 {
		n = limit[0]
	}
	if d.Check(word) {
		return nil
	}

	for _, rp := range d.replacements {
		i := strings.Index(word, rp.from)
		if i < 0 {
			continue
		}
		candidate := word[:i] + rp.to + word[i+len(rp.from):]
		if d.Check(candidate) {
			return []string{candidate}
		}
	}

	e1 := editdist.Neighbors(word, d.alphabet)
	counts := make(map[string]int, len(e1)*2)
	for _, c := range e1 {
		counts[c]++
	}
	for _, c := range e1 {
		for _, c2 := range editdist.Neighbors(c, d.alphabet) {
			counts[c2]++
		}
	}

	type candidate struct {
		word  string
		count int
		dist  int
	}
	var accepted []candidate
	seen := make(map[string]bool, len(counts))
	// Preserve the spec's "E1 first" concatenation order for ties by
	// walking e1 before the map's arbitrary iteration order for the
	// rest.
	for _, c := range e1 {
		if seen[c] {
			continue
		}
		seen[c] = true
		if !d.Check(c) || d.HasFlag(c, "NOSUGGEST", nil) {
			continue
		}
		accepted = append(accepted, candidate{c, counts[c], editdist.Distance(word, c)})
	}
	for c := range counts {
		if seen[c] {
			continue
		}
		seen[c] = true
		if !d.Check(c) || d.HasFlag(c, "NOSUGGEST", nil) {
			continue
		}
		accepted = append(accepted, candidate{c, counts[c], editdist.Distance(word, c)})
	}

	// Rank by multiplicity first (§4.G), then break ties by actual
	// edit distance from word so a true E1 candidate always outranks
	// an E2 candidate that happened to tie on count.
	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].count != accepted[j].count {
			return accepted[i].count > accepted[j].count
		}
		return accepted[i].dist < accepted[j].dist
	})

	if len(accepted) > n {
		accepted = accepted[:n]
	}
	out := make([]string, len(accepted))
	for i, c := range accepted {
		out[i] = c.word
	}
	return out
}
