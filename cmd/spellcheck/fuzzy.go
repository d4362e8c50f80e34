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

	"github.com/sahilm/fuzzy"

	"github.com/spellkern/spellkern/spell"
)

type fuzzyCmd struct {
	Query string `arg:"" help:"Fuzzy search term"`
	Limit int    `name:"limit" short:"n" default:"10" help:"Maximum number of matches to print"`
}

func (cmd *fuzzyCmd) Run(dict *spell.Dictionary, st *style) error {
	corpus := newWordCorpus(dict)
	matches := fuzzy.FindFrom(cmd.Query, corpus)
	if len(matches) == 0 {
		fmt.Println(st.Dim.Render("no matches"))
		return nil
	}
	for i, m := range matches {
		if i >= cmd.Limit {
			break
		}
		fmt.Println(m.Str)
	}
	return nil
}
