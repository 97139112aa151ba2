package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/nav"
)

// KeyBinding maps keys to one action within a set of scopes. Scopes are
// "view:<name>" for top-level views and "screen:<kind>" for modal layers.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// normalizeKey maps bubbletea's " " to "space" and lowercases named keys.
// A single uppercase rune stays distinct from its lowercase form.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if len(k) == 1 {
		return k
	}
	return strings.ToLower(k)
}

var defaultKeys = NewKeyRegistry(DefaultKeyBindings())

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

const (
	scopeForm    = "screen:form"
	scopePicker  = "screen:picker"
	scopeRequest = "screen:request"
	scopeOffer   = "screen:offer"
)

func viewScope(v nav.View) string { return "view:" + string(v) }

// signedInScopes are the scopes of every view reachable after onboarding.
func signedInScopes() []string {
	var out []string
	for _, v := range nav.AllViews() {
		if v != nav.Onboarding {
			out = append(out, viewScope(v))
		}
	}
	return out
}

// bottomNav is the fixed tab bar, bound to the number keys in order.
var bottomNav = []nav.View{nav.Marketplace, nav.Dashboard, nav.Services, nav.Calendar, nav.Requests}

func DefaultKeyBindings() []KeyBinding {
	global := signedInScopes()
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: global},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: global},
		{Keys: []string{"m"}, Action: "menu", Description: "menu", Scopes: global},
	}
	for i, v := range bottomNav {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprint(i + 1)},
			Action:      fmt.Sprintf("nav-%d", i+1),
			Description: strings.ToLower(shortTitle(v)),
			Scopes:      global,
		})
	}
	market := []string{viewScope(nav.Marketplace)}
	list := []string{viewScope(nav.Services), viewScope(nav.Requests), viewScope(nav.Calendar), viewScope(nav.Payments), viewScope(nav.Reviews), viewScope(nav.Marketplace)}
	crud := []string{viewScope(nav.Services), viewScope(nav.Calendar), viewScope(nav.Payments)}
	return append(bindings,
		KeyBinding{Keys: []string{"k", "up"}, Action: "up", Description: "up", Scopes: append(slices.Clone(list), scopePicker)},
		KeyBinding{Keys: []string{"j", "down"}, Action: "down", Description: "down", Scopes: append(slices.Clone(list), scopePicker)},
		KeyBinding{Keys: []string{"/"}, Action: "search", Description: "search", Scopes: market},
		KeyBinding{Keys: []string{"f"}, Action: "filter", Description: "category", Scopes: market},
		KeyBinding{Keys: []string{"enter"}, Action: "open", Description: "details", Scopes: []string{viewScope(nav.Marketplace), viewScope(nav.Requests)}},
		KeyBinding{Keys: []string{"h"}, Action: "hire", Description: "hire", Scopes: market},
		KeyBinding{Keys: []string{"h", "enter"}, Action: "hire", Description: "hire", Scopes: []string{scopeOffer}},
		KeyBinding{Keys: []string{"n"}, Action: "new", Description: "new", Scopes: crud},
		KeyBinding{Keys: []string{"e", "enter"}, Action: "edit", Description: "edit", Scopes: append(slices.Clone(crud), viewScope(nav.Profile))},
		KeyBinding{Keys: []string{"d"}, Action: "delete", Description: "delete", Scopes: crud},
		KeyBinding{Keys: []string{"x"}, Action: "remove-photo", Description: "remove photo", Scopes: []string{viewScope(nav.Profile)}},
		KeyBinding{Keys: []string{"c"}, Action: "complete", Description: "complete", Scopes: []string{viewScope(nav.Calendar)}},
		KeyBinding{Keys: []string{"x"}, Action: "cancel", Description: "cancel", Scopes: []string{viewScope(nav.Calendar)}},
		KeyBinding{Keys: []string{"s"}, Action: "set-default", Description: "make default", Scopes: []string{viewScope(nav.Payments)}},
		KeyBinding{Keys: []string{"left", "shift+tab"}, Action: "prev-tab", Description: "prev tab", Scopes: []string{viewScope(nav.Requests)}},
		KeyBinding{Keys: []string{"right", "tab"}, Action: "next-tab", Description: "next tab", Scopes: []string{viewScope(nav.Requests)}},
		KeyBinding{Keys: []string{"a"}, Action: "accept", Description: "accept", Scopes: []string{viewScope(nav.Requests)}},
		KeyBinding{Keys: []string{"r"}, Action: "reject", Description: "reject", Scopes: []string{viewScope(nav.Requests)}},
		KeyBinding{Keys: []string{"r"}, Action: "go-requests", Description: "requests", Scopes: []string{viewScope(nav.Dashboard)}},
		KeyBinding{Keys: []string{"c"}, Action: "go-calendar", Description: "calendar", Scopes: []string{viewScope(nav.Dashboard)}},
		KeyBinding{Keys: []string{"s"}, Action: "go-services", Description: "services", Scopes: []string{viewScope(nav.Dashboard)}},
		KeyBinding{Keys: []string{"p"}, Action: "go-profile", Description: "profile", Scopes: []string{viewScope(nav.Dashboard)}},
		KeyBinding{Keys: []string{"y"}, Action: "go-payments", Description: "payments", Scopes: []string{viewScope(nav.Dashboard)}},
		KeyBinding{Keys: []string{"v"}, Action: "go-reviews", Description: "reviews", Scopes: []string{viewScope(nav.Dashboard)}},

		KeyBinding{Keys: []string{"enter"}, Action: "send", Description: "send", Scopes: []string{scopeRequest}},
		KeyBinding{Keys: []string{"ctrl+a"}, Action: "accept", Description: "accept", Scopes: []string{scopeRequest}},
		KeyBinding{Keys: []string{"ctrl+r"}, Action: "reject", Description: "reject", Scopes: []string{scopeRequest}},
		KeyBinding{Keys: []string{"ctrl+p"}, Action: "postpone", Description: "postpone", Scopes: []string{scopeRequest}},
		KeyBinding{Keys: []string{"ctrl+d"}, Action: "complete", Description: "mark done", Scopes: []string{scopeRequest}},

		KeyBinding{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{scopePicker}},
		KeyBinding{Keys: []string{"esc", "q"}, Action: "close", Description: "close", Scopes: []string{scopePicker, scopeOffer}},

		KeyBinding{Keys: []string{"enter"}, Action: "submit", Description: "save", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"tab", "down"}, Action: "next-field", Description: "next field", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"shift+tab", "up"}, Action: "prev-field", Description: "prev field", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"left"}, Action: "prev-option", Description: "prev option", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"right"}, Action: "next-option", Description: "next option", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"space"}, Action: "toggle", Description: "toggle", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"a", "+"}, Action: "add-item", Description: "add image", Scopes: []string{scopeForm}},
		KeyBinding{Keys: []string{"x", "delete", "backspace"}, Action: "remove-item", Description: "remove image", Scopes: []string{scopeForm}},

		KeyBinding{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{scopeForm, scopeRequest}},
	)
}
