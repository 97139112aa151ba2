package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
)

type marketState struct {
	category  string
	search    textinput.Model
	searching bool
}

type categoryFilterMsg struct {
	Category string
}

func newMarketState() marketState {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "Search services"
	return marketState{category: domain.AllCategories, search: in}
}

func (s *marketState) clearSearch() {
	s.search.SetValue("")
	s.search.Blur()
	s.searching = false
}

func (m *Model) offers() []domain.Offer {
	return m.ctl.Offers(m.market.category, m.market.search.Value())
}

func (m *Model) updateMarketplace(msg tea.KeyMsg, scope string) tea.Cmd {
	offers := m.offers()
	if m.moveKeys(msg, scope, nav.Marketplace, len(offers)) {
		return nil
	}
	switch {
	case m.keys.IsAction(msg, "search", scope):
		m.market.searching = true
		return m.market.search.Focus()
	case m.keys.IsAction(msg, "filter", scope):
		m.screens.Push(m.categoryPicker())
		return nil
	}
	if len(offers) == 0 {
		return nil
	}
	o := offers[m.cursor(nav.Marketplace, len(offers))]
	switch {
	case m.keys.IsAction(msg, "open", scope):
		m.screens.Push(newOfferScreen(o, m.cfg.CurrencySymbol, func() tea.Cmd { return m.hire(o) }))
	case m.keys.IsAction(msg, "hire", scope):
		return m.hire(o)
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.market.clearSearch()
		m.cursors[nav.Marketplace] = 0
		return nil
	case "enter":
		m.market.searching = false
		m.market.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.market.search, cmd = m.market.search.Update(msg)
	m.cursors[nav.Marketplace] = 0
	return cmd
}

func (m *Model) categoryPicker() Screen {
	cats := m.ctl.OfferCategories()
	items := append([]string{"All"}, cats...)
	selected := indexOf(cats, m.market.category) + 1
	return NewPickerScreen("Category", items, selected, func(i int) tea.Msg {
		if i == 0 {
			return categoryFilterMsg{Category: domain.AllCategories}
		}
		return categoryFilterMsg{Category: cats[i-1]}
	})
}

func (m *Model) hire(o domain.Offer) tea.Cmd {
	_, err := m.ctl.Hire(o.ID)
	return m.report(err, "Request sent to "+o.ProfessionalName)
}

func (m *Model) renderMarketplace(width, height int) string {
	var lines []string
	if p, ok := m.ctl.Professional(); ok {
		lines = append(lines, titleStyle.Render("Hi, "+p.FirstName()+"!"), mutedStyle.Render("What do you need today?"))
	}
	lines = append(lines, m.market.search.View())

	chips := []string{"All"}
	chips = append(chips, m.ctl.OfferCategories()...)
	for i, c := range chips {
		active := (i == 0 && m.market.category == domain.AllCategories) || c == m.market.category
		if active {
			chips[i] = selectedStyle.Render("[" + c + "]")
		} else {
			chips[i] = mutedStyle.Render(c)
		}
	}
	lines = append(lines, strings.Join(chips, " "), "")

	offers := m.offers()
	if len(offers) == 0 {
		lines = append(lines, mutedStyle.Render("No services match your search."))
		return strings.Join(lines, "\n")
	}
	cur := m.cursor(nav.Marketplace, len(offers))
	rows := max(1, (height-len(lines))/3)
	start, end := visibleRange(cur, len(offers), rows)
	for i := start; i < end; i++ {
		o := offers[i]
		lines = append(lines,
			cursorLine(i == cur, o.Title+"  "+selectedStyle.Render(o.Price)),
			"    "+mutedStyle.Render(o.ProfessionalName+" · "+o.Category)+"  "+stars(o.Rating)+mutedStyle.Render(fmt.Sprintf(" %.1f (%d)", o.Rating, o.ReviewsCount)),
			"",
		)
	}
	return strings.Join(lines, "\n")
}

type offerScreen struct {
	offer    domain.Offer
	currency string
	hire     func() tea.Cmd
	keys     *KeyRegistry
}

func newOfferScreen(o domain.Offer, currency string, hire func() tea.Cmd) *offerScreen {
	return &offerScreen{offer: o, currency: currency, hire: hire, keys: defaultKeys}
}

func (s *offerScreen) useKeys(r *KeyRegistry) { s.keys = r }

func (s *offerScreen) Title() string { return s.offer.Title }
func (s *offerScreen) Scope() string { return scopeOffer }

func (s *offerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(km, "close", scopeOffer):
		return s, nil, true
	case s.keys.IsAction(km, "hire", scopeOffer):
		return s, s.hire(), true
	}
	return s, nil, false
}

func (s *offerScreen) View(width, height int) string {
	o := s.offer
	return strings.Join([]string{
		titleStyle.Render(o.Title),
		mutedStyle.Render(o.Category) + "  " + stars(o.Rating) + mutedStyle.Render(fmt.Sprintf(" %.1f · %d reviews", o.Rating, o.ReviewsCount)),
		"",
		wrapText(o.Description, width),
		"",
		mutedStyle.Render("Professional: ") + o.ProfessionalName,
		mutedStyle.Render("Zone: ") + o.Zone,
		mutedStyle.Render("Availability: ") + o.Availability,
		mutedStyle.Render("From: ") + selectedStyle.Render(o.Price),
		"",
		mutedStyle.Render("h: hire  esc: close"),
	}, "\n")
}
