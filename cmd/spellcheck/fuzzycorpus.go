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

package main

import "github.com/spellkern/spellkern/spell"

// wordCorpus adapts a Dictionary's surface-form table to fuzzy.Source,
// the same shape git-spice's branch_select.go ranks branch names with.
type wordCorpus []string

func (c wordCorpus) String(i int) string { return c[i] }
func (c wordCorpus) Len() int            { return len(c) }

func newWordCorpus(d *spell.Dictionary) wordCorpus {
	words := make(wordCorpus, 0, d.WordCount())
	for w := range d.Words {
		words = append(words, w)
	}
	return words
}
