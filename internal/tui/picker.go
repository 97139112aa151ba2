package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerScreen is a single-choice list. onSelect turns the chosen index into
// the message delivered after the picker closes.
type PickerScreen struct {
	title    string
	items    []string
	cursor   int
	onSelect func(i int) tea.Msg
	keys     *KeyRegistry
}

func NewPickerScreen(title string, items []string, selected int, onSelect func(i int) tea.Msg) *PickerScreen {
	return &PickerScreen{
		title:    title,
		items:    items,
		cursor:   max(0, min(selected, len(items)-1)),
		onSelect: onSelect,
		keys:     defaultKeys,
	}
}

func (p *PickerScreen) useKeys(r *KeyRegistry) { p.keys = r }

func (p *PickerScreen) Title() string { return p.title }
func (p *PickerScreen) Scope() string { return scopePicker }

func (p *PickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}
	switch {
	case p.keys.IsAction(km, "close", scopePicker):
		return p, nil, true
	case p.keys.IsAction(km, "up", scopePicker):
		p.cursor = max(0, p.cursor-1)
	case p.keys.IsAction(km, "down", scopePicker):
		p.cursor = max(0, min(len(p.items)-1, p.cursor+1))
	case p.keys.IsAction(km, "select", scopePicker):
		if len(p.items) == 0 || p.onSelect == nil {
			return p, nil, true
		}
		i := p.cursor
		return p, func() tea.Msg { return p.onSelect(i) }, true
	}
	return p, nil, false
}

func (p *PickerScreen) View(width, height int) string {
	lines := []string{titleStyle.Render(p.title), ""}
	for i, item := range p.items {
		if i == p.cursor {
			lines = append(lines, selectedStyle.Render("▶ "+item))
			continue
		}
		lines = append(lines, "  "+item)
	}
	lines = append(lines, "", mutedStyle.Render("enter: select  j/k: move  esc/q: close"))
	return strings.Join(lines, "\n")
}
