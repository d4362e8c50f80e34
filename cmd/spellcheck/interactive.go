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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spellkern/spellkern/spell"
)

type interactiveCmd struct{}

func (cmd *interactiveCmd) Run(dict *spell.Dictionary) error {
	_, err := tea.NewProgram(newInteractiveModel(dict)).Run()
	return err
}

type interactiveModel struct {
	dict        *spell.Dictionary
	input       textinput.Model
	lastWord    string
	accepted    bool
	suggestions []string

	okStyle  lipgloss.Style
	badStyle lipgloss.Style
	dimStyle lipgloss.Style
}

func newInteractiveModel(dict *spell.Dictionary) interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type a word, enter to check, ctrl+c to quit"
	ti.Focus()
	return interactiveModel{
		dict:     dict,
		input:    ti,
		okStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		badStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dimStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			word := strings.TrimSpace(m.input.Value())
			if word == "" {
				return m, nil
			}
			m.lastWord = word
			m.accepted = m.dict.Check(word)
			if m.accepted {
				m.suggestions = nil
			} else {
				m.suggestions = m.dict.Suggest(word)
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.lastWord != "" {
		if m.accepted {
			fmt.Fprintf(&b, "%s %s\n", m.okStyle.Render("ok"), m.lastWord)
		} else {
			fmt.Fprintf(&b, "%s %s\n", m.badStyle.Render("bad"), m.lastWord)
			if len(m.suggestions) > 0 {
				b.WriteString(m.dimStyle.Render("did you mean: " + strings.Join(m.suggestions, ", ")))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
