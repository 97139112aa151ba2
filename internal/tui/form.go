package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/servihogar/internal/domain"
)

type fieldKind int

const (
	textField fieldKind = iota
	secretField
	choiceField
	multiField
	listField
)

// FormField describes one editor row. Choice and multi fields pick from
// Options; list fields hold Values built by NewItem.
type FormField struct {
	Key     string
	Label   string
	Kind    fieldKind
	Value   string
	Options []string
	Values  []string
	NewItem func(FormValues) string
}

// FormValues is the submitted snapshot of a form.
type FormValues struct {
	text  map[string]string
	lists map[string][]string
}

func (v FormValues) Text(key string) string { return v.text[key] }

// List is never nil for a multi or list field, even when every item was
// removed, so callers can tell "cleared" from "not on this form".
func (v FormValues) List(key string) []string { return v.lists[key] }

// FormScreen edits a set of fields. Submit returns the toast text shown on
// success; an error keeps the form open with its values.
type FormScreen struct {
	title     string
	scope     string
	fields    []FormField
	inputs    []textinput.Model
	cursors   []int
	focus     int
	submitted bool
	lastErr   string
	submit    func(FormValues) (string, error)
	keys      *KeyRegistry
}

func NewFormScreen(title string, fields []FormField, submit func(FormValues) (string, error)) *FormScreen {
	s := &FormScreen{
		title:   title,
		scope:   scopeForm,
		fields:  fields,
		inputs:  make([]textinput.Model, len(fields)),
		cursors: make([]int, len(fields)),
		submit:  submit,
		keys:    defaultKeys,
	}
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = ""
		inp.SetValue(f.Value)
		if f.Kind == secretField {
			inp.EchoMode = textinput.EchoPassword
		}
		s.inputs[i] = inp
		if f.Kind == choiceField {
			s.cursors[i] = indexOf(f.Options, f.Value)
		}
	}
	s.setFocus(0)
	return s
}

func (s *FormScreen) useKeys(r *KeyRegistry) { s.keys = r }

func (s *FormScreen) Title() string   { return s.title }
func (s *FormScreen) Scope() string   { return s.scope }
func (s *FormScreen) Submitted() bool { return s.submitted }

func (s *FormScreen) Values() FormValues {
	v := FormValues{text: map[string]string{}, lists: map[string][]string{}}
	for i, f := range s.fields {
		switch f.Kind {
		case textField, secretField:
			v.text[f.Key] = strings.TrimSpace(s.inputs[i].Value())
		case choiceField:
			v.text[f.Key] = f.Value
		case multiField, listField:
			v.lists[f.Key] = append([]string{}, f.Values...)
		}
	}
	return v
}

func (s *FormScreen) setFocus(i int) {
	if len(s.fields) == 0 {
		return
	}
	s.inputs[s.focus].Blur()
	s.focus = (i + len(s.fields)) % len(s.fields)
	if k := s.fields[s.focus].Kind; k == textField || k == secretField {
		s.inputs[s.focus].Focus()
	}
}

func (s *FormScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(s.fields) == 0 {
		return s, nil, false
	}
	is := func(action string) bool { return s.keys.IsAction(km, action, s.scope) }
	switch {
	case is("close"):
		return s, nil, true
	case is("next-field"):
		s.setFocus(s.focus + 1)
		return s, nil, false
	case is("prev-field"):
		s.setFocus(s.focus - 1)
		return s, nil, false
	case is("submit"):
		if s.submit == nil {
			return s, nil, true
		}
		text, err := s.submit(s.Values())
		if err != nil {
			s.lastErr = err.Error()
			return s, errorCmd(err), false
		}
		s.submitted = true
		if text == "" {
			return s, nil, true
		}
		return s, toastCmd(text), true
	}

	f := &s.fields[s.focus]
	cur := &s.cursors[s.focus]
	switch f.Kind {
	case choiceField:
		n := len(f.Options)
		if n == 0 {
			return s, nil, false
		}
		switch {
		case is("prev-option"):
			*cur = (max(*cur, 0) - 1 + n) % n
		case is("next-option"), is("toggle"):
			*cur = (*cur + 1) % n
		default:
			return s, nil, false
		}
		f.Value = f.Options[*cur]
		return s, nil, false
	case multiField:
		switch {
		case is("prev-option"):
			*cur = max(0, *cur-1)
		case is("next-option"):
			*cur = max(0, min(len(f.Options)-1, *cur+1))
		case is("toggle"):
			if *cur < len(f.Options) {
				f.Values = domain.Toggle(f.Values, f.Options[*cur])
			}
		}
		return s, nil, false
	case listField:
		switch {
		case is("prev-option"):
			*cur = max(0, *cur-1)
		case is("next-option"):
			*cur = max(0, min(len(f.Values)-1, *cur+1))
		case is("add-item"):
			if f.NewItem != nil {
				f.Values = append(f.Values, f.NewItem(s.Values()))
				*cur = len(f.Values) - 1
			}
		case is("remove-item"):
			if *cur < len(f.Values) {
				f.Values = append(f.Values[:*cur:*cur], f.Values[*cur+1:]...)
				*cur = max(0, min(*cur, len(f.Values)-1))
			}
		}
		return s, nil, false
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd, false
}

func (s *FormScreen) View(width, height int) string {
	lines := []string{titleStyle.Render(s.title), ""}
	wrap := lipgloss.NewStyle().Width(max(10, width-4))
	for i, f := range s.fields {
		marker := "  "
		label := mutedStyle.Render(f.Label + ":")
		if i == s.focus {
			marker = selectedStyle.Render("› ")
			label = selectedStyle.Render(f.Label + ":")
		}
		var value string
		switch f.Kind {
		case textField, secretField:
			value = s.inputs[i].View()
		case choiceField:
			value = "‹ " + f.Value + " ›"
		case multiField:
			value = wrap.Render(s.renderOptions(i))
		case listField:
			value = s.renderItems(i)
		}
		lines = append(lines, marker+label+" "+value)
	}
	if s.lastErr != "" {
		lines = append(lines, "", statusErrBarStyle.Render(s.lastErr))
	}
	lines = append(lines, "", mutedStyle.Render(s.help()))
	return strings.Join(lines, "\n")
}

func (s *FormScreen) renderOptions(i int) string {
	f := s.fields[i]
	parts := make([]string, len(f.Options))
	for j, opt := range f.Options {
		box := "[ ]"
		if domain.Contains(f.Values, opt) {
			box = "[x]"
		}
		item := box + " " + opt
		if i == s.focus && j == s.cursors[i] {
			item = selectedStyle.Render(item)
		}
		parts[j] = item
	}
	return strings.Join(parts, "  ")
}

func (s *FormScreen) renderItems(i int) string {
	f := s.fields[i]
	if len(f.Values) == 0 {
		return mutedStyle.Render("(none)")
	}
	parts := make([]string, len(f.Values))
	for j := range f.Values {
		item := fmt.Sprintf("#%d", j+1)
		if i == s.focus && j == s.cursors[i] {
			item = selectedStyle.Render(item)
		}
		parts[j] = item
	}
	return strings.Join(parts, " ")
}

func (s *FormScreen) help() string {
	base := "enter: save  esc: cancel  tab: next field"
	switch s.fields[s.focus].Kind {
	case choiceField:
		return base + "  ←/→: change"
	case multiField:
		return base + "  ←/→: move  space: toggle"
	case listField:
		return base + "  a: add image  x: remove"
	}
	return base
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
