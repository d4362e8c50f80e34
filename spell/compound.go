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
	"regexp"
	"strings"
)

// compileCompoundRules compiles each compound-rule string into a
// case-insensitive regexp matched against the whole candidate string,
// substituting each flag-token rune with an alternation over its
// bucket's words, per §4.E. Rules with an empty bucket for some flag
// are dropped, since they could never match.
func compileCompoundRules(ruleStrings []string, buckets map[flagToken][]string) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, rs := range ruleStrings {
		pat, ok := buildCompoundPattern(rs, buckets)
		if !ok {
			continue
		}
		re, err := regexp.Compile("(?i)^(?:" + pat + ")$")
		if err != nil {
			logTolerated("compound rule %q produced invalid pattern, skipping", rs)
			continue
		}
		out = append(out, re)
	}
	return out
}

func buildCompoundPattern(rs string, buckets map[flagToken][]string) (string, bool) {
	var b strings.Builder
	for _, r := range rs {
		if strings.ContainsRune(compoundRuleMeta, r) {
			b.WriteRune(r)
			continue
		}
		words := buckets[flagToken(string(r))]
		if len(words) == 0 {
			return "", false
		}
		b.WriteString("(?:")
		for i, w := range words {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(regexp.QuoteMeta(w))
		}
		b.WriteString(")")
	}
	return b.String(), true
}

func matchesAnyCompoundRule(s string, rules []*regexp.Regexp) bool {
	for _, re := range rules {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
