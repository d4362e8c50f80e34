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
	"bufio"
	"fmt"
	"os"

	"github.com/buildkite/shellwords"

	"github.com/spellkern/spellkern/spell"
)

// batchCmd reads lines from stdin, splits each one the way a shell would
// (so quoted phrases stay together), and checks every resulting word.
type batchCmd struct{}

func (cmd *batchCmd) Run(dict *spell.Dictionary, st *style) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		words, err := shellwords.SplitPosix(line)
		if err != nil {
			words = []string{line}
		}
		for _, w := range words {
			if w == "" {
				continue
			}
			if dict.Check(w) {
				fmt.Println(st.OK.Render("ok") + "  " + w)
			} else {
				fmt.Println(st.Bad.Render("bad") + " " + w)
			}
		}
	}
	return scanner.Err()
}
