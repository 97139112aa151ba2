package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is a modal layer drawn over the active view. Update reports pop=true
// when the screen should be closed.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// keyAware screens resolve their keys through the registry of the stack
// they are pushed on.
type keyAware interface {
	useKeys(*KeyRegistry)
}

// ScreenStack holds the open modal layers; only the top one receives keys.
type ScreenStack struct {
	items []Screen
	keys  *KeyRegistry
}

func newScreenStack(keys *KeyRegistry) ScreenStack {
	return ScreenStack{keys: keys}
}

func (s *ScreenStack) bind(screen Screen) {
	if k, ok := screen.(keyAware); ok && s.keys != nil {
		k.useKeys(s.keys)
	}
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.bind(screen)
	s.items = append(s.items, screen)
}

// Pop removes and returns the top screen, or nil when the stack is empty.
func (s *ScreenStack) Pop() Screen {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	top := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return top
}

// Replace swaps the top screen for the value its Update returned.
func (s *ScreenStack) Replace(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.bind(screen)
	s.items[len(s.items)-1] = screen
}

// Reset closes every screen. The key registry stays bound.
func (s *ScreenStack) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s *ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *ScreenStack) Len() int { return len(s.items) }
