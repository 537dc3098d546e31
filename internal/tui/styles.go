package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)

	liveTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).MarginLeft(2)
	timeStyle      = lipgloss.NewStyle().PaddingLeft(4)
	errorStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("9"))
	hintStyle      = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241"))
)

const defaultWidth = 40

func newList(items []list.Item, delegate list.ItemDelegate, title string) list.Model {
	l := list.New(items, delegate, defaultWidth, 15)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	return l
}
