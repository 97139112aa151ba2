package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/servihogar/internal/nav"
)

func TestRegisterThroughAllSteps(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, nav.Onboarding, m.ctl.View())

	press(m, "r")
	require.Equal(t, stageRegister, m.onboarding.stage)

	msg := deliver(m, press(m, "enter"))
	require.IsType(t, toastMsg{}, msg)
	assert.True(t, m.toastErr, "password is required")
	assert.Equal(t, stageRegister, m.onboarding.stage)

	press(m, "tab", "tab", "tab")
	typeText(m, "secreto")
	press(m, "enter")
	require.Equal(t, stageProfile, m.onboarding.stage)
	require.Equal(t, 1, m.onboarding.step)

	press(m, " ")
	press(m, "tab")
	typeText(m, "3 años")
	press(m, "enter")
	require.Equal(t, 2, m.onboarding.step)

	press(m, " ", "enter")
	require.Equal(t, 3, m.onboarding.step)

	press(m, " ", "enter")
	require.Equal(t, stageSuccess, m.onboarding.stage)
	assert.Contains(t, m.View(), "Your profile is ready!")

	deliver(m, press(m, "enter"))
	assert.Equal(t, nav.Marketplace, m.ctl.View())
	p, ok := m.ctl.Professional()
	require.True(t, ok)
	assert.Equal(t, "Usuario Demo", p.Name)
	assert.Equal(t, []string{"Albañilería"}, p.Specialty)
	assert.Equal(t, "3 años", p.Experience)
	assert.Equal(t, []string{"Zona Norte"}, p.WorkZone)
	assert.Equal(t, []string{"Efectivo"}, p.PaymentMethods)
	assert.Empty(t, p.Services)
	assert.Zero(t, p.Rating)
	assert.Contains(t, m.toast, "Welcome, Usuario")
}

func TestStepValidationKeepsStep(t *testing.T) {
	m := newTestModel(t)
	press(m, "r", "tab", "tab", "tab")
	typeText(m, "pw")
	press(m, "enter")
	require.Equal(t, 1, m.onboarding.step)

	deliver(m, press(m, "enter"))
	assert.Equal(t, 1, m.onboarding.step)
	assert.True(t, m.toastErr)
	assert.Contains(t, m.toast, "specialty")
	_, ok := m.ctl.Professional()
	assert.False(t, ok)
}

func TestEscWalksBackThroughOnboarding(t *testing.T) {
	m := newTestModel(t)
	press(m, "r", "tab", "tab", "tab")
	typeText(m, "pw")
	press(m, "enter", " ", "tab")
	typeText(m, "2 años")
	press(m, "enter")
	require.Equal(t, 2, m.onboarding.step)

	press(m, "esc")
	assert.Equal(t, 1, m.onboarding.step)
	assert.Equal(t, []string{"Albañilería"}, m.onboarding.data.Specialty, "step data survives going back")

	press(m, "esc")
	assert.Equal(t, stageRegister, m.onboarding.stage)
	press(m, "esc")
	assert.Equal(t, stageWelcome, m.onboarding.stage)
	assert.Equal(t, nav.Onboarding, m.ctl.View())
}

func TestLoginUsesDemoAccount(t *testing.T) {
	m := newTestModel(t)
	press(m, "l")
	require.Equal(t, stageLogin, m.onboarding.stage)
	typeText(m, "jorge@ejemplo.com")
	deliver(m, press(m, "enter"))

	assert.Equal(t, nav.Marketplace, m.ctl.View())
	assert.Equal(t, "Welcome back, Jorge!", m.toast)
	assert.Equal(t, stageWelcome, m.onboarding.stage)
}

func TestQuitFromWelcome(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Goodbye\n", m.View())
}
