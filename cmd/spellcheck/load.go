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
	"os"

	"github.com/spellkern/spellkern/spell"
)

// loadDictionary reads the affix and dictionary files named by opts and
// builds a spell.Dictionary from them, applying any JSON flag-override
// sidecar the caller named.
func loadDictionary(opts globalOptions) (*spell.Dictionary, error) {
	affBlob, err := os.ReadFile(opts.Aff)
	if err != nil {
		return nil, fmt.Errorf("read affix file: %w", err)
	}
	dicBlob, err := os.ReadFile(opts.Dic)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}

	var dictOpts []spell.Option
	if opts.FlagOverrides != "" {
		overrideBlob, err := os.ReadFile(opts.FlagOverrides)
		if err != nil {
			return nil, fmt.Errorf("read flag overrides: %w", err)
		}
		dictOpts = append(dictOpts, spell.WithFlagOverridesJSON(overrideBlob))
	}
	if opts.MaxDepth > 0 {
		dictOpts = append(dictOpts, spell.WithMaxRecursionDepth(opts.MaxDepth))
	}

	dict, err := spell.New(affBlob, dicBlob, dictOpts...)
	if err != nil {
		return nil, fmt.Errorf("build dictionary: %w", err)
	}
	return dict, nil
}
