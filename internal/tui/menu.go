package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Menu choices.
const (
	ChoicePlanet = "planet"
	ChoiceOrrery = "orrery"
	ChoiceGalaxy = "galaxy"
	ChoiceExit   = "exit"
)

type menuItem struct {
	title  string
	action string
}

func (i menuItem) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.title)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// MenuModel lets the user pick a scenario to display.
type MenuModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func NewMenu() MenuModel {
	items := []list.Item{
		menuItem{title: "Display a planet clock", action: ChoicePlanet},
		menuItem{title: "Display an orrery timepiece", action: ChoiceOrrery},
		menuItem{title: "Display a galactic timepiece", action: ChoiceGalaxy},
		menuItem{title: "Exit", action: ChoiceExit},
	}
	return MenuModel{list: newList(items, itemDelegate{}, "Celestial Day Clock")}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(menuItem); ok {
				m.choice = i.action
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.choice != "" {
		return ""
	}
	if m.quitting {
		return "Goodbye!\n"
	}
	return "\n" + m.list.View()
}

// Choice returns the chosen action, or "" if the menu was quit.
func (m MenuModel) Choice() string {
	return m.choice
}
