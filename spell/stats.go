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

// Stats reports read-only counts over a constructed Dictionary, for
// CLI introspection (cmd/spellcheck's "stats" command). It is not a
// new query semantics, just a summary of what New already built.
type Stats struct {
	SurfaceForms   int
	AffixRules     int
	CompoundRules  int
	Replacements   int
	CompoundBucket int
}

// Stats summarizes the constructed Dictionary.
func (d *Dictionary) Stats() Stats {
	return Stats{
		SurfaceForms:   len(d.table),
		AffixRules:     len(d.rules),
		CompoundRules:  len(d.compoundRules),
		Replacements:   len(d.replacements),
		CompoundBucket: len(d.buckets),
	}
}

// Words yields every surface form in the table, for callers that want
// to build an external index (e.g. cmd/spellcheck's fuzzy-search
// corpus) without reaching into the Dictionary's internals.
func (d *Dictionary) Words(yield func(string) bool) {
	for w := range d.table {
		if !yield(w) {
			return
		}
	}
}

// WordCount returns the number of surface forms Words yields, without
// materializing a slice.
func (d *Dictionary) WordCount() int {
	return len(d.table)
}
