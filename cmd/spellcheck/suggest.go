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

	"github.com/spellkern/spellkern/spell"
)

type suggestCmd struct {
	Word  string `arg:"" help:"Misspelled word to suggest corrections for"`
	Limit int    `name:"limit" short:"n" default:"5" help:"Maximum number of suggestions to print"`
}

func (cmd *suggestCmd) Run(dict *spell.Dictionary, st *style) error {
	suggestions := dict.Suggest(cmd.Word, cmd.Limit)
	if len(suggestions) == 0 {
		fmt.Println(st.Dim.Render("no suggestions"))
		return nil
	}
	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}
