package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendForm(s Screen, keys ...string) (Screen, tea.Cmd, bool) {
	var (
		cmd tea.Cmd
		pop bool
	)
	for _, k := range keys {
		s, cmd, pop = s.Update(key(k))
	}
	return s, cmd, pop
}

func TestFormCollectsEveryFieldKind(t *testing.T) {
	var got FormValues
	form := NewFormScreen("Test", []FormField{
		{Key: "name", Label: "Name", Value: "  Ana  "},
		{Key: "kind", Label: "Kind", Kind: choiceField, Options: []string{"a", "b", "c"}},
		{Key: "tags", Label: "Tags", Kind: multiField, Options: []string{"x", "y", "z"}, Values: []string{"x"}},
		{Key: "images", Label: "Images", Kind: listField, NewItem: func(v FormValues) string { return "img-" + v.Text("kind") }},
	}, func(v FormValues) (string, error) {
		got = v
		return "saved", nil
	})

	sendForm(form, "tab", "left")
	sendForm(form, "tab", " ", "right", " ", "right", " ")
	sendForm(form, "tab", "a", "a", "left", "x")
	_, cmd, pop := sendForm(form, "enter")

	require.True(t, pop)
	require.NotNil(t, cmd)
	assert.Equal(t, toastMsg{Text: "saved"}, cmd())
	assert.True(t, form.Submitted())
	assert.Equal(t, "Ana", got.Text("name"))
	assert.Equal(t, "c", got.Text("kind"))
	assert.Equal(t, []string{"y", "z"}, got.List("tags"))
	assert.Equal(t, []string{"img-c"}, got.List("images"))
}

func TestFormErrorKeepsFormOpen(t *testing.T) {
	calls := 0
	form := NewFormScreen("Test", []FormField{{Key: "name", Label: "Name"}}, func(FormValues) (string, error) {
		calls++
		return "", errors.New("name: missing required fields: name")
	})
	_, cmd, pop := sendForm(form, "enter")
	assert.False(t, pop)
	assert.False(t, form.Submitted())
	assert.Equal(t, 1, calls)
	assert.Equal(t, toastMsg{Text: "name: missing required fields: name", IsErr: true}, cmd())
	assert.Contains(t, form.View(40, 10), "missing required fields")

	_, _, pop = sendForm(form, "esc")
	assert.True(t, pop)
	assert.Equal(t, 1, calls, "esc does not submit")
}

func TestFormFocusWraps(t *testing.T) {
	form := NewFormScreen("Test", []FormField{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}}, nil)
	sendForm(form, "shift+tab")
	assert.Equal(t, 1, form.focus)
	sendForm(form, "tab")
	assert.Equal(t, 0, form.focus)
	_, cmd, pop := sendForm(form, "enter")
	assert.True(t, pop)
	assert.Nil(t, cmd)
}

func TestPickerSelects(t *testing.T) {
	p := NewPickerScreen("Pick", []string{"one", "two", "three"}, 5, func(i int) tea.Msg { return i })
	assert.Equal(t, 2, p.cursor, "selection is clamped")
	_, cmd, pop := sendForm(p, "up", "up", "up", "enter")
	require.True(t, pop)
	assert.Equal(t, 0, cmd())

	_, cmd, pop = sendForm(NewPickerScreen("Pick", nil, 0, nil), "enter")
	assert.True(t, pop)
	assert.Nil(t, cmd)
}

func TestScreensUseStackRegistry(t *testing.T) {
	bindings := DefaultKeyBindings()
	for i, b := range bindings {
		switch b.Action {
		case "submit":
			bindings[i].Keys = []string{"ctrl+s"}
		case "select":
			bindings[i].Keys = []string{"l"}
		}
	}
	stack := newScreenStack(NewKeyRegistry(bindings))

	submitted := false
	form := NewFormScreen("Test", []FormField{{Key: "name", Label: "Name"}}, func(FormValues) (string, error) {
		submitted = true
		return "", nil
	})
	stack.Push(form)
	_, _, pop := sendForm(stack.Top(), "enter")
	assert.False(t, pop)
	assert.False(t, submitted, "enter is no longer bound to submit")
	_, _, pop = sendForm(stack.Top(), "ctrl+s")
	assert.True(t, pop)
	assert.True(t, submitted)

	picker := NewPickerScreen("Pick", []string{"one", "two"}, 0, func(i int) tea.Msg { return i })
	stack.Push(picker)
	_, cmd, pop := sendForm(stack.Top(), "j", "l")
	require.True(t, pop)
	assert.Equal(t, 1, cmd())
}

func TestPickerClosesOnQ(t *testing.T) {
	p := NewPickerScreen("Pick", []string{"one"}, 0, func(i int) tea.Msg { return i })
	_, cmd, pop := sendForm(p, "q")
	assert.True(t, pop)
	assert.Nil(t, cmd)
}

func TestClearedMultiFieldIsNotNil(t *testing.T) {
	form := NewFormScreen("Test", []FormField{
		{Key: "tags", Label: "Tags", Kind: multiField, Options: []string{"x"}, Values: []string{"x"}},
		{Key: "images", Label: "Images", Kind: listField},
	}, nil)
	sendForm(form, "space")
	v := form.Values()
	require.NotNil(t, v.List("tags"))
	assert.Empty(t, v.List("tags"))
	require.NotNil(t, v.List("images"))
	assert.Nil(t, v.List("missing"))
}
