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

type checkCmd struct {
	Word string `arg:"" help:"Word to check"`
}

func (cmd *checkCmd) Run(dict *spell.Dictionary, st *style) error {
	if dict.Check(cmd.Word) {
		fmt.Println(st.OK.Render("ok") + "  " + cmd.Word)
		return nil
	}
	fmt.Println(st.Bad.Render("bad") + " " + cmd.Word)
	return nil
}
