package nav

import "fmt"

// Navigator holds the current view and keeps it in step with History.
//
// It starts locked on Onboarding. Unlock moves to Marketplace once a
// profile exists; only Lock (logout) brings Onboarding back.
// A Navigator is not safe for concurrent use.
type Navigator struct {
	current  View
	unlocked bool
	history  *History
}

func NewNavigator(h *History) *Navigator {
	if h == nil {
		h = &History{}
	}
	n := &Navigator{current: Onboarding, history: h}
	h.OnBack(n.handleBack)
	return n
}

// Current is the view to render. It is always Onboarding while locked.
func (n *Navigator) Current() View {
	if !n.unlocked {
		return Onboarding
	}
	return n.current
}

// Rendered resolves the view to show for the given profile presence.
func (n *Navigator) Rendered(hasProfile bool) View {
	if !hasProfile {
		return Onboarding
	}
	return n.Current()
}

func (n *Navigator) Unlocked() bool { return n.unlocked }

func (n *Navigator) History() *History { return n.history }

// Navigate switches to v. Entering any view other than Marketplace pushes a
// history entry. Requests made while locked, and requests for Onboarding
// once unlocked, leave the state unchanged.
func (n *Navigator) Navigate(v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	if !n.unlocked || v == Onboarding || v == n.current {
		return nil
	}
	n.current = v
	if v != Marketplace {
		n.history.Push(Entry{View: v})
	}
	return nil
}

// Back handles the back gesture and reports whether it was intercepted.
// On Marketplace (and while locked) it is not.
func (n *Navigator) Back() bool {
	if !n.unlocked || n.current == Marketplace {
		return false
	}
	n.history.Back()
	return true
}

func (n *Navigator) handleBack(Entry) {
	if n.unlocked && n.current != Marketplace {
		n.current = Marketplace
	}
}

// Unlock is called when onboarding completes.
func (n *Navigator) Unlock() {
	n.unlocked = true
	n.current = Marketplace
	n.history.Reset()
}

// Lock is called on logout.
func (n *Navigator) Lock() {
	n.unlocked = false
	n.current = Onboarding
	n.history.Reset()
}
