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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// style holds the output styles used by the CLI's non-interactive commands.
// Colors are disabled outright when stdout isn't a terminal, or when the
// caller passed --no-color.
type style struct {
	OK   lipgloss.Style
	Bad  lipgloss.Style
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

func newStyle(w io.Writer, noColor bool) *style {
	isTTY := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		isTTY = isatty.IsTerminal(f.Fd())
	}

	if noColor || !isTTY {
		return &style{
			OK:   lipgloss.NewStyle(),
			Bad:  lipgloss.NewStyle(),
			Dim:  lipgloss.NewStyle(),
			Bold: lipgloss.NewStyle(),
		}
	}

	return &style{
		OK:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Bad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}
