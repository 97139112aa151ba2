// Package seed loads the mock marketplace data the console starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jask/servihogar/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the full seed document.
type Data struct {
	Catalog            domain.Catalog          `yaml:"catalog"`
	OnboardingDefaults domain.OnboardingData   `yaml:"onboarding_defaults"`
	DemoProfile        domain.OnboardingData   `yaml:"demo_profile"`
	Offers             []domain.Offer          `yaml:"offers"`
	Requests           []domain.Request        `yaml:"requests"`
	Appointments       []domain.Appointment    `yaml:"appointments"`
	PaymentAccounts    []domain.PaymentAccount `yaml:"payment_accounts"`
	PaymentRecords     []domain.PaymentRecord  `yaml:"payment_records"`
	PaymentStats       domain.PaymentStats     `yaml:"payment_stats"`
	Dashboard          domain.DashboardStats   `yaml:"dashboard"`
	Reviews            []domain.Review         `yaml:"reviews"`
}

// Default decodes the embedded seed document.
func Default() (Data, error) {
	return Decode(defaultSeed)
}

// Load reads the seed at path, or the embedded default when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed: %w", err)
	}
	d, err := Decode(raw)
	if err != nil {
		return Data{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return d, nil
}

// Decode parses a seed document, rejecting unknown keys.
func Decode(raw []byte) (Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var d Data
	if err := dec.Decode(&d); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

// Encode renders d as YAML.
func Encode(d Data) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	return buf.Bytes(), nil
}

func (d Data) validate() error {
	if len(d.Catalog.Specialties) == 0 || len(d.Catalog.Zones) == 0 || len(d.Catalog.PaymentOptions) == 0 {
		return fmt.Errorf("seed: catalog needs specialties, zones and payment options")
	}
	if err := domain.ValidateOnboarding(d.DemoProfile); err != nil {
		return fmt.Errorf("seed: demo profile: %w", err)
	}
	for _, r := range d.Requests {
		switch r.Status {
		case domain.RequestPending, domain.RequestAccepted, domain.RequestRejected, domain.RequestCompleted:
		default:
			return fmt.Errorf("seed: request %s: unknown status %q", r.ID, r.Status)
		}
	}
	for _, a := range d.Appointments {
		switch a.Status {
		case domain.AppointmentScheduled, domain.AppointmentCompleted, domain.AppointmentCancelled:
		default:
			return fmt.Errorf("seed: appointment %s: unknown status %q", a.ID, a.Status)
		}
	}
	return nil
}
