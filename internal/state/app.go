// Package state owns the console's in-memory application state: the current
// professional, the view navigator and the session working sets. Views read
// snapshots and request every change through App methods.
package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
	"github.com/jask/servihogar/internal/nav"
	"github.com/jask/servihogar/internal/seed"
)

// App is the single controller. It is not safe for concurrent use; the UI
// calls it from its update loop only.
type App struct {
	seed  seed.Data
	nav   *nav.Navigator
	pro   *domain.Professional
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	// session state, reset on onboarding and logout
	requests     []domain.Request
	appointments []domain.Appointment
	accounts     []domain.PaymentAccount
}

// Option customizes App construction for tests and alternate runtimes.
type Option func(*App)

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(a *App) {
		if gen != nil {
			a.newID = gen
		}
	}
}

func New(data seed.Data, opts ...Option) *App {
	a := &App{
		seed:  data,
		nav:   nav.NewNavigator(nil),
		log:   zap.NewNop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// View is the view to render right now.
func (a *App) View() nav.View {
	return a.nav.Rendered(a.pro != nil)
}

// Navigate is the onNavigate callback shared by every view.
func (a *App) Navigate(v nav.View) error {
	from := a.View()
	if err := a.nav.Navigate(v); err != nil {
		return err
	}
	if to := a.View(); to != from {
		a.log.Debug("view changed", zap.String("from", string(from)), zap.String("to", string(to)),
			zap.Int("history", a.nav.History().Len()))
	}
	return nil
}

// Back handles the back gesture and reports whether it was intercepted.
func (a *App) Back() bool {
	from := a.View()
	if !a.nav.Back() {
		return false
	}
	a.log.Debug("back", zap.String("from", string(from)), zap.String("to", string(a.View())))
	return true
}

// HistoryDepth is the number of entries on the navigation stack.
func (a *App) HistoryDepth() int {
	return a.nav.History().Len()
}

// Professional returns a copy of the current record.
func (a *App) Professional() (domain.Professional, bool) {
	if a.pro == nil {
		return domain.Professional{}, false
	}
	return a.pro.Clone(), true
}

func (a *App) Catalog() domain.Catalog { return a.seed.Catalog }

// OnboardingDefaults pre-fills the registration and onboarding forms.
func (a *App) OnboardingDefaults() domain.OnboardingData { return a.seed.OnboardingDefaults }

// CompleteOnboarding creates the professional and forces the marketplace view.
func (a *App) CompleteOnboarding(d domain.OnboardingData) (domain.Professional, error) {
	if err := domain.ValidateOnboarding(d); err != nil {
		a.log.Warn("onboarding rejected", zap.Error(err))
		return domain.Professional{}, err
	}
	p := domain.Professional{
		ID:             a.newID(),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialty:      append([]string(nil), d.Specialty...),
		Experience:     d.Experience,
		Certifications: d.Certifications,
		WorkZone:       append([]string(nil), d.WorkZone...),
		PaymentMethods: append([]string(nil), d.PaymentMethods...),
		Availability:   d.Availability,
		Services:       []domain.Service{},
		Rating:         0,
		ReviewsCount:   0,
	}
	a.pro = &p
	a.resetSession()
	a.nav.Unlock()
	a.log.Info("onboarding completed", zap.String("professional", p.ID))
	return p.Clone(), nil
}

// Login signs in with the demo account from the seed.
func (a *App) Login() (domain.Professional, error) {
	return a.CompleteOnboarding(a.seed.DemoProfile)
}

// Logout discards the professional and returns to onboarding from any view.
func (a *App) Logout() {
	if a.pro != nil {
		a.log.Info("logout", zap.String("professional", a.pro.ID))
	}
	a.pro = nil
	a.requests, a.appointments, a.accounts = nil, nil, nil
	a.nav.Lock()
}

func (a *App) resetSession() {
	a.requests = make([]domain.Request, len(a.seed.Requests))
	for i, r := range a.seed.Requests {
		a.requests[i] = r.Clone()
	}
	a.appointments = append([]domain.Appointment(nil), a.seed.Appointments...)
	a.accounts = append([]domain.PaymentAccount(nil), a.seed.PaymentAccounts...)
}

func (a *App) requireProfile(op string) error {
	if a.pro == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNoProfile)
	}
	return nil
}

func (a *App) rejected(op string, err error) error {
	a.log.Warn("submission rejected", zap.String("op", op), zap.Error(err))
	return err
}
