package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
)

func TestBottomNavAndBack(t *testing.T) {
	m := signedIn(t)
	tests := []struct {
		key  string
		want nav.View
	}{
		{"2", nav.Dashboard},
		{"3", nav.Services},
		{"4", nav.Calendar},
		{"5", nav.Requests},
	}
	for _, tt := range tests {
		press(m, tt.key)
		assert.Equal(t, tt.want, m.ctl.View(), "key %s", tt.key)
		press(m, "esc")
		assert.Equal(t, nav.Marketplace, m.ctl.View(), "back from %s", tt.want)
	}

	cmd := press(m, "esc")
	assert.Nil(t, cmd)
	assert.Equal(t, nav.Marketplace, m.ctl.View())
	assert.False(t, m.quitting)
}

func TestMenuNavigatesAndLogsOut(t *testing.T) {
	m := signedIn(t)
	press(m, "m")
	require.Equal(t, 1, m.screens.Len())
	assert.Equal(t, "screen:picker", m.ActiveScope())

	deliver(m, press(m, "down", "down", "enter"))
	assert.Equal(t, nav.Profile, m.ctl.View())
	assert.Zero(t, m.screens.Len())

	press(m, "m")
	for range menuViews {
		press(m, "down")
	}
	deliver(m, press(m, "enter"))
	assert.Equal(t, nav.Onboarding, m.ctl.View())
	_, ok := m.ctl.Professional()
	assert.False(t, ok)
	assert.Equal(t, "Signed out", m.toast)
	assert.Zero(t, m.ctl.HistoryDepth())
}

func TestDashboardShortcuts(t *testing.T) {
	m := signedIn(t)
	press(m, "2")
	assert.Contains(t, m.View(), "Hello, Jorge!")
	press(m, "y")
	assert.Equal(t, nav.Payments, m.ctl.View())
	press(m, "esc", "2", "v")
	assert.Equal(t, nav.Reviews, m.ctl.View())
}

func TestPublishServiceRejectsEmptyTitle(t *testing.T) {
	m := signedIn(t)
	press(m, "3", "n")
	form := topForm(t, m)

	deliver(m, press(m, "enter"))
	assert.True(t, m.toastErr)
	assert.Contains(t, m.toast, "title")
	assert.Same(t, form, m.screens.Top(), "form stays open")
	p, _ := m.ctl.Professional()
	assert.Empty(t, p.Services)
	assert.Equal(t, nav.Services, m.ctl.View())

	typeText(m, "Tableros")
	press(m, "tab", "right", "right", "tab")
	typeText(m, "Armado de tableros")
	press(m, "tab")
	typeText(m, "$9,000")
	press(m, "tab", "a")
	deliver(m, press(m, "enter"))

	assert.Zero(t, m.screens.Len())
	assert.Equal(t, "Service published", m.toast)
	p, _ = m.ctl.Professional()
	require.Len(t, p.Services, 1)
	svc := p.Services[0]
	assert.Equal(t, "Tableros", svc.Title)
	assert.Equal(t, "Electricidad", svc.Category)
	assert.Equal(t, []string{domain.PlaceholderImage("Electricidad")}, svc.Images)

	press(m, "e")
	form = topForm(t, m)
	assert.Equal(t, "Edit service", form.Title())
	press(m, "esc", "enter")
	assert.Equal(t, "Edit service", topForm(t, m).Title(), "enter edits too")
	press(m, "esc")
	deliver(m, press(m, "d"))
	p, _ = m.ctl.Professional()
	assert.Empty(t, p.Services)
}

func TestRequestsInbox(t *testing.T) {
	m := signedIn(t)
	press(m, "5")
	require.Len(t, m.tabRequests(), 2)

	deliver(m, press(m, "a"))
	assert.Equal(t, "Request accepted", m.toast)
	assert.Len(t, m.tabRequests(), 1)

	press(m, "enter")
	_, ok := m.screens.Top().(*requestScreen)
	require.True(t, ok)
	typeText(m, "Voy el jueves")
	press(m, "enter")
	r, err := m.ctl.Request("2")
	require.NoError(t, err)
	require.Len(t, r.Messages, 2)
	assert.Equal(t, "Voy el jueves", r.Messages[1].Text)

	press(m, "enter")
	r, _ = m.ctl.Request("2")
	assert.Len(t, r.Messages, 2, "blank message ignored")

	deliver(m, press(m, "ctrl+p"))
	assert.Equal(t, domain.RequestPending, r.Status)
	deliver(m, press(m, "ctrl+r"))
	r, _ = m.ctl.Request("2")
	assert.Equal(t, domain.RequestRejected, r.Status)
	press(m, "esc")
	assert.Zero(t, m.screens.Len())

	press(m, "right")
	assert.Equal(t, 1, m.requestTab)
	assert.Len(t, m.tabRequests(), 2)

	press(m, "3", "5")
	r, _ = m.ctl.Request("1")
	assert.Equal(t, domain.RequestAccepted, r.Status, "status survives view switches")
}

func TestRequestScreenKeepsClosedJobs(t *testing.T) {
	m := signedIn(t)
	press(m, "5")
	m.screens.Push(newRequestScreen(m.ctl, "4", m.keys))

	deliver(m, press(m, "ctrl+a"))
	assert.True(t, m.toastErr)
	r, _ := m.ctl.Request("4")
	assert.Equal(t, domain.RequestCompleted, r.Status)

	press(m, "esc")
	m.screens.Push(newRequestScreen(m.ctl, "3", m.keys))
	deliver(m, press(m, "ctrl+r"))
	assert.True(t, m.toastErr)
	r, _ = m.ctl.Request("3")
	assert.Equal(t, domain.RequestAccepted, r.Status)
	require.Equal(t, 1, m.screens.Len(), "a refused action keeps the conversation open")
}

func TestMarketplaceSearchAndFilter(t *testing.T) {
	m := signedIn(t)
	press(m, "/")
	require.True(t, m.market.searching)
	typeText(m, "pintura")
	offers := m.offers()
	require.NotEmpty(t, offers)
	assert.Equal(t, "2", offers[0].ID)

	press(m, "q")
	assert.False(t, m.quitting, "q is text while searching")
	press(m, "esc")
	assert.False(t, m.market.searching)
	assert.Len(t, m.offers(), 4)

	press(m, "f")
	deliver(m, press(m, "down", "enter"))
	assert.Equal(t, "Electricidad", m.market.category)
	offers = m.offers()
	require.Len(t, offers, 1)
	assert.Equal(t, "Electricidad", offers[0].Category)
}

func TestHireShowsConfirmation(t *testing.T) {
	m := signedIn(t)
	press(m, "down", "enter")
	_, ok := m.screens.Top().(*offerScreen)
	require.True(t, ok)
	deliver(m, press(m, "h"))
	assert.Zero(t, m.screens.Len())
	assert.Equal(t, "Request sent to María González", m.toast)
}

func TestCalendarDefaultsToToday(t *testing.T) {
	m := signedIn(t)
	press(m, "4", "n")
	form := topForm(t, m)
	assert.Equal(t, "2025-10-21", form.Values().Text("date"))
	press(m, "esc", "enter")
	assert.Equal(t, "Edit appointment", topForm(t, m).Title())
	press(m, "esc")

	deliver(m, press(m, "c"))
	assert.Equal(t, "Appointment completed", m.toast)
	assert.Len(t, m.ctl.Scheduled(), 2)
}

func TestPaymentsSetDefault(t *testing.T) {
	m := signedIn(t)
	require.NoError(t, m.ctl.Navigate(nav.Payments))
	deliver(m, press(m, "down", "s"))
	for _, acc := range m.ctl.PaymentAccounts() {
		assert.Equal(t, acc.ID == "2", acc.IsDefault, acc.Name)
	}
	assert.Contains(t, m.View(), "default")
}

func TestProfileEditAndRemovePhoto(t *testing.T) {
	m := signedIn(t)
	require.NoError(t, m.ctl.Navigate(nav.Profile))
	press(m, "e")
	topForm(t, m)
	press(m, "tab", "tab", "tab")
	typeText(m, "foto.jpg")
	deliver(m, press(m, "enter"))
	assert.Equal(t, "Profile updated", m.toast)
	p, _ := m.ctl.Professional()
	assert.Equal(t, "foto.jpg", p.Photo)
	assert.Equal(t, "Jorge González", p.Name)

	deliver(m, press(m, "x"))
	p, _ = m.ctl.Professional()
	assert.Empty(t, p.Photo)
}

func TestProfileRejectsClearedSpecialties(t *testing.T) {
	m := signedIn(t)
	require.NoError(t, m.ctl.Navigate(nav.Profile))
	press(m, "e")
	form := topForm(t, m)
	press(m, "tab", "tab", "tab", "tab", "tab", "space")
	assert.Equal(t, []string{"Plomería"}, form.Values().List("specialty"))
	form.fields[5].Values = nil

	deliver(m, press(m, "enter"))
	assert.True(t, m.toastErr)
	assert.Contains(t, m.toast, "specialty")
	assert.Equal(t, 1, m.screens.Len(), "form stays open")
	p, _ := m.ctl.Professional()
	assert.Equal(t, []string{"Electricidad", "Plomería"}, p.Specialty)

	form.fields[5].Values = []string{"Plomería"}
	deliver(m, press(m, "enter"))
	assert.Equal(t, "Profile updated", m.toast)
	p, _ = m.ctl.Professional()
	assert.Equal(t, []string{"Plomería"}, p.Specialty)
}

func TestEveryViewRenders(t *testing.T) {
	m := signedIn(t)
	for _, v := range nav.AllViews() {
		if v == nav.Onboarding {
			continue
		}
		require.NoError(t, m.ctl.Navigate(v))
		out := m.View()
		assert.NotEmpty(t, out, string(v))
		assert.Contains(t, out, "SERVIHOGAR", string(v))
	}
}

func TestToastExpiry(t *testing.T) {
	m := signedIn(t)
	m.Update(toastMsg{Text: "first"})
	stale := m.toastSeq
	m.Update(toastMsg{Text: "second"})

	m.Update(toastExpiredMsg{seq: stale})
	assert.Equal(t, "second", m.toast)
	m.Update(toastExpiredMsg{seq: m.toastSeq})
	assert.Empty(t, m.toast)
}
