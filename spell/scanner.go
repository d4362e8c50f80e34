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

// wordScanner splits a line into whitespace-separated fields without
// allocating a []string up front, the same incremental-scan shape as
// the teacher's wordScanner over Makefile tokens.
type wordScanner struct {
	in []byte
	s  int // word start
	i  int // current pos
}

func newWordScanner(in []byte) *wordScanner {
	return &wordScanner{in: in}
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (ws *wordScanner) next() bool {
	for ws.s = ws.i; ws.s < len(ws.in); ws.s++ {
		if !isWS(ws.in[ws.s]) {
			break
		}
	}
	return ws.s < len(ws.in)
}

func (ws *wordScanner) Scan() bool {
	if !ws.next() {
		return false
	}
	for ws.i = ws.s; ws.i < len(ws.in); ws.i++ {
		if isWS(ws.in[ws.i]) {
			break
		}
	}
	return true
}

func (ws *wordScanner) Bytes() []byte {
	return ws.in[ws.s:ws.i]
}

func (ws *wordScanner) Text() string {
	return string(ws.Bytes())
}

// Remain returns everything from the start of the next field onward,
// including its trailing fields, unconsumed.
func (ws *wordScanner) Remain() []byte {
	if !ws.next() {
		return nil
	}
	return ws.in[ws.s:]
}

func splitFields(line []byte) []string {
	var out []string
	ws := newWordScanner(line)
	for ws.Scan() {
		out = append(out, ws.Text())
	}
	return out
}

func trimLeftSpaceBytes(s []byte) []byte {
	for i := 0; i < len(s); i++ {
		if !isWS(s[i]) {
			return s[i:]
		}
	}
	return nil
}

func trimRightSpaceBytes(s []byte) []byte {
	for i := len(s) - 1; i >= 0; i-- {
		if !isWS(s[i]) {
			return s[:i+1]
		}
	}
	return nil
}

func trimSpaceBytes(s []byte) []byte {
	return trimRightSpaceBytes(trimLeftSpaceBytes(s))
}

// removeComment strips a '#'-to-end-of-line comment, per the affix
// spec's comment convention (no backslash-escaping of '#', unlike the
// teacher's Makefile removeComment which has to respect shell escaping).
func removeComment(line []byte) []byte {
	i := indexByte(line, '#')
	if i < 0 {
		return line
	}
	return line[:i]
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// splitLines splits a blob into raw lines without the trailing
// newline, tolerating both "\n" and "\r\n".
func splitLines(blob []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(blob); i++ {
		if blob[i] == '\n' {
			line := blob[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(blob) {
		lines = append(lines, blob[start:])
	}
	return lines
}
