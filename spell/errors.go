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

import "fmt"

// srcpos identifies a line within one of the two input blobs, used to
// annotate parse errors the way the teacher's srcpos annotates
// Makefile parse errors with filename:lineno.
type srcpos struct {
	source string // "affix" or "dict"
	line   int    // 1-based
}

func (p srcpos) String() string {
	return fmt.Sprintf("%s:%d", p.source, p.line)
}

// ParseError reports a structurally unusable affix-spec or word-list
// line (§7's "parse errors" category). Tolerated anomalies never
// produce a ParseError; they are logged and skipped.
type ParseError struct {
	pos   srcpos
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.pos, e.cause)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

func (p srcpos) errorf(format string, args ...interface{}) error {
	return &ParseError{pos: p, cause: fmt.Errorf(format, args...)}
}
