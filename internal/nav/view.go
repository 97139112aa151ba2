package nav

import (
	"errors"
	"fmt"
)

// View is one of the mutually exclusive top-level screens.
type View string

const (
	Onboarding  View = "onboarding"
	Marketplace View = "marketplace"
	Dashboard   View = "dashboard"
	Profile     View = "profile"
	Services    View = "services"
	Requests    View = "requests"
	Calendar    View = "calendar"
	Payments    View = "payments"
	Reviews     View = "reviews"
)

var ErrUnknownView = errors.New("nav: unknown view")

var allViews = []View{Onboarding, Marketplace, Dashboard, Profile, Services, Requests, Calendar, Payments, Reviews}

// AllViews returns the closed set of views in menu order.
func AllViews() []View {
	return append([]View(nil), allViews...)
}

func (v View) Valid() bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}

// Title is the header caption shown while the view is active.
func (v View) Title() string {
	switch v {
	case Onboarding:
		return "Welcome"
	case Marketplace:
		return "Explore services"
	case Dashboard:
		return "My jobs"
	case Profile:
		return "My profile"
	case Services:
		return "My services"
	case Requests:
		return "Requests"
	case Calendar:
		return "My schedule"
	case Payments:
		return "Payments"
	case Reviews:
		return "Reviews"
	}
	return string(v)
}

func Parse(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}
