package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noodlebox/celestial"
)

type tickMsg time.Time

// Controllable is a time source that can be paused and rescaled while a
// view is running, such as a relativetime.Clock.
type Controllable interface {
	celestial.Source
	Start()
	Stop()
	Active() bool
	Scale() float64
	SetScale(scale float64)
}

// Limits for the speed keys.
const (
	minScale = 1.0 / 64
	maxScale = 4096
)

// LiveModel shows a timepiece's times and ticks it once per interval of its
// source. When the source is Controllable, p pauses and resumes, and + and -
// double and halve the speed.
type LiveModel struct {
	title    string
	tp       celestial.Timepiece
	times    func() []string
	src      celestial.Source
	interval time.Duration
	next     time.Time
	err      error
	quitting bool
}

// NewLive returns a live view of tp paced by src. The interval must be
// positive.
func NewLive(title string, tp celestial.Timepiece, src celestial.Source, interval time.Duration) LiveModel {
	if interval <= 0 {
		panic("non-positive interval for tui.NewLive")
	}
	return LiveModel{
		title:    title,
		tp:       tp,
		times:    tp.Times,
		src:      src,
		interval: interval,
		next:     src.Now().Add(interval),
	}
}

// Military switches the view to military times when tp provides them.
func (m LiveModel) Military() LiveModel {
	switch mt := m.tp.(type) {
	case interface{ MilitaryTimes() []string }:
		m.times = mt.MilitaryTimes
	case interface{ MilitaryTime() string }:
		m.times = func() []string { return []string{mt.MilitaryTime()} }
	}
	return m
}

// wait arms a timer on the source for the next deadline and returns a
// command that delivers it.
func (m LiveModel) wait() tea.Cmd {
	ch := m.src.After(m.next.Sub(m.src.Now()))
	return func() tea.Msg {
		return tickMsg(<-ch)
	}
}

func (m LiveModel) Init() tea.Cmd {
	return m.wait()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		if ctl, ok := m.src.(Controllable); ok {
			control(ctl, msg.String())
		}

	case tickMsg:
		if err := m.tp.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.next = m.next.Add(m.interval)
		return m, m.wait()
	}
	return m, nil
}

func control(ctl Controllable, key string) {
	switch key {
	case "p", " ":
		if ctl.Active() {
			ctl.Stop()
		} else {
			ctl.Start()
		}
	case "+", "=":
		ctl.SetScale(min(ctl.Scale()*2, maxScale))
	case "-":
		ctl.SetScale(max(ctl.Scale()/2, minScale))
	}
}

func (m LiveModel) View() string {
	var b strings.Builder
	b.WriteString("\n" + liveTitleStyle.Render(m.title) + "\n\n")
	for _, t := range m.times() {
		b.WriteString(timeStyle.Render(t) + "\n")
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
		return b.String()
	}
	if m.quitting {
		return b.String()
	}
	if ctl, ok := m.src.(Controllable); ok {
		status := fmt.Sprintf("speed x%g", ctl.Scale())
		if !ctl.Active() {
			status = "paused"
		}
		b.WriteString(hintStyle.Render(status+" | p: pause  +/-: speed  q: back") + "\n")
	} else {
		b.WriteString(hintStyle.Render("q: back") + "\n")
	}
	return b.String()
}

// Err returns the tick error that ended the view, if any.
func (m LiveModel) Err() error {
	return m.err
}
