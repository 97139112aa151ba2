package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
	"github.com/jask/servihogar/internal/state"
)

var requestTabs = []domain.RequestStatus{domain.RequestPending, domain.RequestAccepted, domain.RequestCompleted}

func (m *Model) tabRequests() []domain.Request {
	return m.ctl.Requests(requestTabs[m.requestTab])
}

func (m *Model) updateRequests(msg tea.KeyMsg, scope string) tea.Cmd {
	switch {
	case m.keys.IsAction(msg, "prev-tab", scope):
		m.requestTab = (m.requestTab - 1 + len(requestTabs)) % len(requestTabs)
		m.cursors[nav.Requests] = 0
		return nil
	case m.keys.IsAction(msg, "next-tab", scope):
		m.requestTab = (m.requestTab + 1) % len(requestTabs)
		m.cursors[nav.Requests] = 0
		return nil
	}
	list := m.tabRequests()
	if m.moveKeys(msg, scope, nav.Requests, len(list)) || len(list) == 0 {
		return nil
	}
	r := list[m.cursor(nav.Requests, len(list))]
	switch {
	case m.keys.IsAction(msg, "open", scope):
		m.screens.Push(newRequestScreen(m.ctl, r.ID, m.keys))
	case m.keys.IsAction(msg, "accept", scope) && r.Status == domain.RequestPending:
		return m.report(m.ctl.AcceptRequest(r.ID), "Request accepted")
	case m.keys.IsAction(msg, "reject", scope) && r.Status == domain.RequestPending:
		return m.report(m.ctl.RejectRequest(r.ID), "Request rejected")
	}
	return nil
}

func (m *Model) renderRequests(width, height int) string {
	tabs := make([]string, len(requestTabs))
	for i, st := range requestTabs {
		label := fmt.Sprintf("%s (%d)", tabLabel(st), len(m.ctl.Requests(st)))
		if i == m.requestTab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	lines := []string{titleStyle.Render("Requests"), strings.Join(tabs, " "), ""}
	list := m.tabRequests()
	if len(list) == 0 {
		lines = append(lines, mutedStyle.Render("No requests here."))
		return strings.Join(lines, "\n")
	}
	cur := m.cursor(nav.Requests, len(list))
	start, end := visibleRange(cur, len(list), max(1, (height-len(lines))/3))
	for i := start; i < end; i++ {
		r := list[i]
		lines = append(lines,
			cursorLine(i == cur, r.ClientName+"  "+statusBadge(string(r.Status))),
			"    "+mutedStyle.Render(r.Service+" · "+r.Date),
			"    "+truncate(r.Description, width-4),
		)
	}
	return strings.Join(lines, "\n")
}

func tabLabel(st domain.RequestStatus) string {
	switch st {
	case domain.RequestPending:
		return "New"
	case domain.RequestAccepted:
		return "Accepted"
	case domain.RequestCompleted:
		return "Completed"
	}
	return string(st)
}

// requestScreen is the detail and chat dialog of one request. It reads the
// request from the controller on every render so status changes show at once.
type requestScreen struct {
	ctl   *state.App
	id    string
	keys  *KeyRegistry
	input textinput.Model
}

func newRequestScreen(ctl *state.App, id string, keys *KeyRegistry) *requestScreen {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Write a message"
	in.Focus()
	return &requestScreen{ctl: ctl, id: id, keys: keys, input: in}
}

func (s *requestScreen) useKeys(r *KeyRegistry) { s.keys = r }

func (s *requestScreen) Title() string { return "Request" }
func (s *requestScreen) Scope() string { return scopeRequest }

func (s *requestScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	scope := s.Scope()
	switch {
	case s.keys.IsAction(km, "close", scope):
		return s, nil, true
	case s.keys.IsAction(km, "send", scope):
		_, sent, err := s.ctl.SendMessage(s.id, s.input.Value())
		if err != nil {
			return s, errorCmd(err), false
		}
		if sent {
			s.input.SetValue("")
		}
		return s, nil, false
	case s.keys.IsAction(km, "accept", scope):
		return s, result(s.ctl.AcceptRequest(s.id), "Request accepted"), false
	case s.keys.IsAction(km, "reject", scope):
		return s, result(s.ctl.RejectRequest(s.id), "Request rejected"), false
	case s.keys.IsAction(km, "postpone", scope):
		return s, result(s.ctl.PostponeRequest(s.id), "Client notified you will reply later"), false
	case s.keys.IsAction(km, "complete", scope):
		return s, result(s.ctl.CompleteRequest(s.id), "Job marked as completed"), false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *requestScreen) View(width, height int) string {
	r, err := s.ctl.Request(s.id)
	if err != nil {
		return err.Error()
	}
	lines := []string{
		titleStyle.Render(r.ClientName) + "  " + statusBadge(string(r.Status)),
		mutedStyle.Render(r.Service + " · " + r.Date),
		wrapText(r.Description, width),
		"",
	}
	thread := make([]string, 0, len(r.Messages))
	for _, msg := range r.Messages {
		who := mutedStyle.Render("Client")
		if msg.Sender == domain.SenderProfessional {
			who = selectedStyle.Render("You")
		}
		thread = append(thread, fmt.Sprintf("%s %s  %s", who, mutedStyle.Render(msg.Timestamp.Format("15:04")), msg.Text))
	}
	if keep := max(1, height-len(lines)-4); len(thread) > keep {
		thread = thread[len(thread)-keep:]
	}
	lines = append(lines, thread...)
	hint := "enter: send  ctrl+p: postpone  esc: close"
	switch r.Status {
	case domain.RequestPending:
		hint = "enter: send  ctrl+a: accept  ctrl+r: reject  ctrl+p: postpone  esc: close"
	case domain.RequestAccepted:
		hint = "enter: send  ctrl+d: mark done  esc: close"
	}
	lines = append(lines, "", s.input.View(), mutedStyle.Render(hint))
	return strings.Join(lines, "\n")
}

func result(err error, success string) tea.Cmd {
	if err != nil {
		return errorCmd(err)
	}
	return toastCmd(success)
}
