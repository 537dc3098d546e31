package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noodlebox/celestial/bodies"
)

type bodyItem struct {
	body bodies.Body
}

func (i bodyItem) Title() string       { return i.body.Name }
func (i bodyItem) Description() string { return "day length " + i.body.NewClock().BodyMaximums() }
func (i bodyItem) FilterValue() string { return i.body.Name }

// BodyModel lets the user pick one body from a table.
type BodyModel struct {
	list     list.Model
	selected *bodies.Body
	quitting bool
}

func NewBodyList(table *bodies.Table) BodyModel {
	items := make([]list.Item, len(table.Bodies))
	for i, b := range table.Bodies {
		items[i] = bodyItem{body: b}
	}

	l := newList(items, list.NewDefaultDelegate(), "Choose a planet")
	l.SetHeight(3*len(items) + 8)
	return BodyModel{list: l}
}

func (m BodyModel) Init() tea.Cmd {
	return nil
}

func (m BodyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(bodyItem); ok {
				m.selected = &i.body
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BodyModel) View() string {
	if m.selected != nil || m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}

// Selected returns the chosen body. It reports false if the list was quit.
func (m BodyModel) Selected() (bodies.Body, bool) {
	if m.selected == nil {
		return bodies.Body{}, false
	}
	return *m.selected, true
}
