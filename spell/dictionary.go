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

// Package spell implements a hunspell-compatible spellchecking core: it
// ingests an affix specification and a flag-annotated word list, expands
// the word list under the affix rules, and answers whether an arbitrary
// word is valid and, if not, what corrections are plausible.
//
// The package consumes two already-decoded text blobs and exposes pure
// query functions; resource loading, charset decoding, and any CLI or
// editor integration are the caller's responsibility.
package spell

import (
	"regexp"
)

// Dictionary is the immutable, constructed-once spellchecking core
// (§5 "Construction is the only mutating phase; all fields are frozen
// thereafter"). A Dictionary may be shared by multiple read-only
// callers.
type Dictionary struct {
	settings      *settings
	rules         map[flagToken]*affixRule
	table         table
	buckets       map[flagToken][]string
	compoundRules []*regexp.Regexp
	replacements  []replacementPair
	caseFolder    CaseFolder
	alphabet      string
	maxDepth      int
}

// New parses affixBlob and dictBlob and builds the expanded lookup
// table (§3 "Lifecycle": both blobs are consumed exactly once at
// construction).
func New(affixBlob, dictBlob []byte, opts ...Option) (*Dictionary, error) {
	cfg := newConfig(opts)

	spec, err := parseAffix(affixBlob)
	if err != nil {
		return nil, err
	}
	spec.settings.merge(cfg.overrides)
	if err := spec.settings.resolveScheme(); err != nil {
		return nil, err
	}

	tbl, buckets, err := expandDict(dictBlob, spec, cfg.maxDepth)
	if err != nil {
		return nil, err
	}

	compoundRules := compileCompoundRules(spec.compoundRuleStrings, buckets)

	return &Dictionary{
		settings:      spec.settings,
		rules:         spec.rules,
		table:         tbl,
		buckets:       buckets,
		compoundRules: compoundRules,
		replacements:  spec.replacements,
		caseFolder:    cfg.caseFolder,
		alphabet:      cfg.alphabet,
		maxDepth:      cfg.maxDepth,
	}, nil
}
