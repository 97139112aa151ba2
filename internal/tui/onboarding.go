package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/servihogar/internal/domain"
)

type onboardingStage int

const (
	stageWelcome onboardingStage = iota
	stageLogin
	stageRegister
	stageProfile
	stageSuccess
)

// onboardingFlow walks welcome -> login | register -> profile steps -> success.
// The collected data only becomes a Professional on completion.
type onboardingFlow struct {
	stage onboardingStage
	step  int
	data  domain.OnboardingData
	form  *FormScreen
}

func newOnboardingFlow(defaults domain.OnboardingData) *onboardingFlow {
	return &onboardingFlow{stage: stageWelcome, data: defaults}
}

func (m *Model) updateOnboarding(msg tea.KeyMsg) tea.Cmd {
	f := m.onboarding
	switch f.stage {
	case stageWelcome:
		switch msg.String() {
		case "l", "enter":
			f.stage, f.form = stageLogin, m.loginForm()
		case "r":
			f.stage, f.form = stageRegister, m.registerForm()
		case "q":
			m.quitting = true
			return tea.Quit
		}
		return nil
	case stageSuccess:
		switch msg.String() {
		case "enter":
			return m.finishOnboarding()
		case "esc":
			f.stage, f.step = stageProfile, domain.OnboardingSteps
			f.form = m.stepForm(f.step)
		}
		return nil
	}
	form := f.form
	if form == nil {
		f.stage = stageWelcome
		return nil
	}
	form.useKeys(m.keys)
	_, cmd, pop := form.Update(msg)
	if pop && !form.Submitted() {
		m.onboardingBack()
	}
	return cmd
}

func (m *Model) onboardingBack() {
	f := m.onboarding
	switch {
	case f.stage == stageProfile && f.step > 1:
		f.step--
		f.form = m.stepForm(f.step)
	case f.stage == stageProfile:
		f.stage, f.form = stageRegister, m.registerForm()
	default:
		f.stage, f.form = stageWelcome, nil
	}
}

func (m *Model) loginForm() *FormScreen {
	fields := []FormField{
		{Key: "email", Label: "Email"},
		{Key: "password", Label: "Password", Kind: secretField},
	}
	return NewFormScreen("Log in", fields, func(FormValues) (string, error) {
		p, err := m.ctl.Login()
		if err != nil {
			return "", err
		}
		m.onboarding = newOnboardingFlow(m.ctl.OnboardingDefaults())
		return "Welcome back, " + p.FirstName() + "!", nil
	})
}

func (m *Model) registerForm() *FormScreen {
	d := m.onboarding.data
	fields := []FormField{
		{Key: "name", Label: "Full name", Value: d.Name},
		{Key: "email", Label: "Email", Value: d.Email},
		{Key: "phone", Label: "Phone", Value: d.Phone},
		{Key: "password", Label: "Password", Kind: secretField},
	}
	return NewFormScreen("Create account", fields, func(v FormValues) (string, error) {
		reg := domain.Registration{
			Name:     v.Text("name"),
			Email:    v.Text("email"),
			Phone:    v.Text("phone"),
			Password: v.Text("password"),
		}
		if err := domain.ValidateRegistration(reg); err != nil {
			return "", err
		}
		f := m.onboarding
		f.data.Name, f.data.Email, f.data.Phone = reg.Name, reg.Email, reg.Phone
		f.stage, f.step = stageProfile, 1
		f.form = m.stepForm(1)
		return "", nil
	})
}

func (m *Model) stepForm(step int) *FormScreen {
	d := m.onboarding.data
	catalog := m.ctl.Catalog()
	var fields []FormField
	switch step {
	case 1:
		fields = []FormField{
			{Key: "specialty", Label: "Specialties", Kind: multiField, Options: catalog.Specialties, Values: d.Specialty},
			{Key: "experience", Label: "Experience", Value: d.Experience},
			{Key: "certifications", Label: "Certifications", Value: d.Certifications},
		}
	case 2:
		fields = []FormField{
			{Key: "work_zone", Label: "Work zones", Kind: multiField, Options: catalog.Zones, Values: d.WorkZone},
			{Key: "availability", Label: "Availability", Value: d.Availability},
		}
	default:
		fields = []FormField{
			{Key: "payment_methods", Label: "Payment methods", Kind: multiField, Options: catalog.PaymentOptions, Values: d.PaymentMethods},
		}
	}
	title := fmt.Sprintf("Step %d of %d", step, domain.OnboardingSteps)
	return NewFormScreen(title, fields, func(v FormValues) (string, error) {
		f := m.onboarding
		next := f.data
		switch step {
		case 1:
			next.Specialty = v.List("specialty")
			next.Experience = v.Text("experience")
			next.Certifications = v.Text("certifications")
		case 2:
			next.WorkZone = v.List("work_zone")
			next.Availability = v.Text("availability")
		default:
			next.PaymentMethods = v.List("payment_methods")
		}
		if err := domain.ValidateOnboardingStep(step, next); err != nil {
			return "", err
		}
		f.data = next
		if step < domain.OnboardingSteps {
			f.step = step + 1
			f.form = m.stepForm(f.step)
			return "", nil
		}
		f.stage, f.form = stageSuccess, nil
		return "", nil
	})
}

func (m *Model) finishOnboarding() tea.Cmd {
	p, err := m.ctl.CompleteOnboarding(m.onboarding.data)
	if err != nil {
		return m.report(err, "")
	}
	m.onboarding = newOnboardingFlow(m.ctl.OnboardingDefaults())
	return toastCmd("Profile created. Welcome, " + p.FirstName() + "!")
}

func (m *Model) renderOnboarding(width, height int) string {
	f := m.onboarding
	switch f.stage {
	case stageWelcome:
		return strings.Join([]string{
			"",
			titleStyle.Render("SERVIHOGAR"),
			"",
			"Reach clients who need your services.",
			mutedStyle.Render("Publish what you do, manage requests and get paid."),
			"",
			selectedStyle.Render("[l]") + " Log in",
			selectedStyle.Render("[r]") + " Create account",
			mutedStyle.Render("[q]") + " Quit",
		}, "\n")
	case stageSuccess:
		d := f.data
		return strings.Join([]string{
			"",
			titleStyle.Render("Your profile is ready!"),
			"",
			d.Name + " · " + d.Email,
			mutedStyle.Render("Specialties: ") + strings.Join(d.Specialty, ", "),
			mutedStyle.Render("Work zones: ") + strings.Join(d.WorkZone, ", "),
			mutedStyle.Render("Payments: ") + strings.Join(d.PaymentMethods, ", "),
			"",
			selectedStyle.Render("[enter]") + " Start",
		}, "\n")
	}
	var lines []string
	if f.stage == stageProfile {
		lines = append(lines, progressBar(f.step, domain.OnboardingSteps, max(10, width-4)), "")
	}
	if f.form != nil {
		lines = append(lines, f.form.View(width, height))
	}
	return strings.Join(lines, "\n")
}

func progressBar(step, total, width int) string {
	filled := width * step / max(1, total)
	return selectedStyle.Render(strings.Repeat("━", filled)) + mutedStyle.Render(strings.Repeat("━", width-filled))
}

func onboardingHint(m *Model) string {
	switch m.onboarding.stage {
	case stageWelcome:
		return "l log in  r create account  q quit"
	case stageSuccess:
		return "enter start  esc previous step"
	}
	return "enter continue  esc back  tab next field"
}
