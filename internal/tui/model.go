// Package tui is the terminal front end. Model routes key events to the modal
// screen stack or the active view and renders the console around it.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/config"
	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
	"github.com/jask/servihogar/internal/state"
)

type Model struct {
	ctl      *state.App
	cfg      config.UIConfig
	log      *zap.Logger
	keys     *KeyRegistry
	screens  ScreenStack
	width    int
	height   int
	toast    string
	toastErr bool
	toastSeq int
	quitting bool

	onboarding *onboardingFlow
	market     marketState
	cursors    map[nav.View]int
	requestTab int
}

type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

func WithKeys(r *KeyRegistry) Option {
	return func(m *Model) {
		if r != nil {
			m.keys = r
		}
	}
}

func New(ctl *state.App, cfg config.UIConfig, opts ...Option) *Model {
	m := &Model{
		ctl:     ctl,
		cfg:     cfg,
		log:     zap.NewNop(),
		keys:    NewKeyRegistry(DefaultKeyBindings()),
		width:   80,
		height:  24,
		market:  newMarketState(),
		cursors: map[nav.View]int{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.screens = newScreenStack(m.keys)
	m.onboarding = newOnboardingFlow(ctl.OnboardingDefaults())
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// ActiveScope is the key scope of the top screen, or of the active view.
func (m *Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return viewScope(m.ctl.View())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case toastMsg:
		m.toastSeq++
		m.toast, m.toastErr = msg.Text, msg.IsErr
		if msg.Text == "" {
			return m, nil
		}
		return m, expireToast(m.cfg.ToastTTL, m.toastSeq)
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast, m.toastErr = "", false
		}
		return m, nil
	case navigateMsg:
		return m, m.navigate(msg.View)
	case logoutMsg:
		return m, m.logout()
	case pushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case categoryFilterMsg:
		m.market.category = msg.Category
		m.cursors[nav.Marketplace] = 0
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
		} else {
			m.screens.Replace(next)
		}
		return cmd
	}

	view := m.ctl.View()
	if view == nav.Onboarding {
		return m.updateOnboarding(msg)
	}
	if view == nav.Marketplace && m.market.searching {
		return m.updateSearch(msg)
	}

	scope := viewScope(view)
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, "back", scope):
		m.back()
		return nil
	case m.keys.IsAction(msg, "menu", scope):
		m.screens.Push(m.menuScreen())
		return nil
	}
	for i, v := range bottomNav {
		if m.keys.IsAction(msg, fmt.Sprintf("nav-%d", i+1), scope) {
			return m.navigate(v)
		}
	}

	switch view {
	case nav.Marketplace:
		return m.updateMarketplace(msg, scope)
	case nav.Dashboard:
		return m.updateDashboard(msg, scope)
	case nav.Profile:
		return m.updateProfile(msg, scope)
	case nav.Services:
		return m.updateServices(msg, scope)
	case nav.Requests:
		return m.updateRequests(msg, scope)
	case nav.Calendar:
		return m.updateCalendar(msg, scope)
	case nav.Payments:
		return m.updatePayments(msg, scope)
	case nav.Reviews:
		return m.updateReviews(msg, scope)
	}
	return nil
}

func (m *Model) navigate(v nav.View) tea.Cmd {
	if err := m.ctl.Navigate(v); err != nil {
		m.log.Error("navigate", zap.String("view", string(v)), zap.Error(err))
		return errorCmd(err)
	}
	return nil
}

// back is the esc gesture. On the marketplace it clears an active search
// instead, since the navigator does not intercept it there.
func (m *Model) back() {
	if m.ctl.Back() {
		return
	}
	if m.ctl.View() == nav.Marketplace {
		m.market.clearSearch()
		m.cursors[nav.Marketplace] = 0
	}
}

func (m *Model) logout() tea.Cmd {
	m.ctl.Logout()
	m.screens.Reset()
	m.onboarding = newOnboardingFlow(m.ctl.OnboardingDefaults())
	m.market = newMarketState()
	m.cursors = map[nav.View]int{}
	m.requestTab = 0
	return toastCmd("Signed out")
}

// menuViews is the order of the side menu; logout is appended last.
var menuViews = []nav.View{nav.Marketplace, nav.Dashboard, nav.Profile, nav.Services, nav.Requests, nav.Calendar, nav.Payments, nav.Reviews}

func (m *Model) menuScreen() Screen {
	items := make([]string, 0, len(menuViews)+1)
	selected := 0
	for i, v := range menuViews {
		items = append(items, v.Title())
		if v == m.ctl.View() {
			selected = i
		}
	}
	items = append(items, "Log out")
	return NewPickerScreen("Menu", items, selected, func(i int) tea.Msg {
		if i >= len(menuViews) {
			return logoutMsg{}
		}
		return navigateMsg{View: menuViews[i]}
	})
}

func (m *Model) cursor(v nav.View, n int) int {
	c := m.cursors[v]
	if c >= n {
		c = max(0, n-1)
		m.cursors[v] = c
	}
	return c
}

func (m *Model) moveCursor(v nav.View, delta, n int) {
	if n == 0 {
		m.cursors[v] = 0
		return
	}
	m.cursors[v] = max(0, min(n-1, m.cursors[v]+delta))
}

// moveKeys applies up/down to the cursor of v and reports whether msg was one.
func (m *Model) moveKeys(msg tea.KeyMsg, scope string, v nav.View, n int) bool {
	switch {
	case m.keys.IsAction(msg, "up", scope):
		m.moveCursor(v, -1, n)
		return true
	case m.keys.IsAction(msg, "down", scope):
		m.moveCursor(v, 1, n)
		return true
	}
	return false
}

// report turns an operation result into a toast.
func (m *Model) report(err error, success string) tea.Cmd {
	if err != nil && !domain.IsValidation(err) {
		m.log.Warn("operation failed", zap.Error(err))
	}
	return result(err, success)
}
