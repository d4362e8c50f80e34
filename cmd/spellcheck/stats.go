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

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/spellkern/spellkern/spell"
)

type statsCmd struct{}

func (cmd *statsCmd) Run(dict *spell.Dictionary, st *style) error {
	s := dict.Stats()
	fmt.Printf("%s surface forms\n", st.Bold.Render(humanize.Comma(int64(s.SurfaceForms))))
	fmt.Printf("%s affix rules\n", humanize.Comma(int64(s.AffixRules)))
	fmt.Printf("%s compound rules\n", humanize.Comma(int64(s.CompoundRules)))
	fmt.Printf("%s replacement pairs\n", humanize.Comma(int64(s.Replacements)))
	fmt.Printf("%s compound-bucket flags\n", humanize.Comma(int64(s.CompoundBucket)))
	return nil
}
