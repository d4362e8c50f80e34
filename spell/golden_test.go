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
	"testing"

	"github.com/hexops/autogold/v2"
)

// TestGoldenFullExpansion freezes the complete surface-form expansion
// of a small but representative affix+dictionary pair, so a change to
// the affix parser or rule applier that silently shifts the expanded
// set is caught even if no single table-driven case happens to cover
// it.
func TestGoldenFullExpansion(t *testing.T) {
	affix := []byte(
		"FLAG long\n" +
			"PFX RE Y 1\n" +
			"PFX RE 0 re .\n" +
			"SFX NG Y 1\n" +
			"SFX NG 0 ing .\n" +
			"SFX ED Y 1\n" +
			"SFX ED 0 ed [^y]\n",
	)
	dict := []byte(
		"3\n" +
			"bake/RENG\n" +
			"walk/NGED\n" +
			"play\n",
	)
	d, err := New(affix, dict)
	if err != nil {
		t.Fatal(err)
	}
	var words []string
	for w := range d.Words {
		words = append(words, w)
	}
	sort.Strings(words)
	autogold.Expect([]string{
		"bake", "bakeing", "play", "rebake", "rebakeing", "walk", "walked", "walking",
	}).Equal(t, words)
}
