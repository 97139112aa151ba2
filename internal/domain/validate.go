package domain

import "strings"

// requiredFields collects the names of blank values, in the order given.
type requiredFields struct {
	form    string
	missing []string
}

func (r *requiredFields) text(name, value string) {
	if strings.TrimSpace(value) == "" {
		r.missing = append(r.missing, name)
	}
}

func (r *requiredFields) list(name string, values []string) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return
		}
	}
	r.missing = append(r.missing, name)
}

func (r *requiredFields) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return &ValidationError{Form: r.form, Fields: r.missing}
}

// Registration is the account form shown before the onboarding steps.
type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func ValidateRegistration(r Registration) error {
	req := requiredFields{form: "registration"}
	req.text("name", r.Name)
	req.text("email", r.Email)
	req.text("phone", r.Phone)
	req.text("password", r.Password)
	return req.err()
}

// OnboardingSteps is the number of profile steps after registration.
const OnboardingSteps = 3

// ValidateOnboardingStep checks one onboarding step:
// 1 specialty and experience, 2 work zone, 3 payment methods.
func ValidateOnboardingStep(step int, d OnboardingData) error {
	req := requiredFields{form: "onboarding"}
	switch step {
	case 1:
		req.list("specialty", d.Specialty)
		req.text("experience", d.Experience)
	case 2:
		req.list("work zone", d.WorkZone)
	case 3:
		req.list("payment methods", d.PaymentMethods)
	}
	return req.err()
}

// ValidateOnboarding checks the identity fields and every step.
func ValidateOnboarding(d OnboardingData) error {
	req := requiredFields{form: "onboarding"}
	req.text("name", d.Name)
	req.text("email", d.Email)
	req.text("phone", d.Phone)
	req.list("specialty", d.Specialty)
	req.text("experience", d.Experience)
	req.list("work zone", d.WorkZone)
	req.list("payment methods", d.PaymentMethods)
	return req.err()
}

// ValidateProfileUpdate rejects updates that blank out contact fields or
// clear a list the onboarding steps require. Nil fields are not checked.
func ValidateProfileUpdate(u ProfileUpdate) error {
	req := requiredFields{form: "profile"}
	if u.Name != nil {
		req.text("name", *u.Name)
	}
	if u.Email != nil {
		req.text("email", *u.Email)
	}
	if u.Phone != nil {
		req.text("phone", *u.Phone)
	}
	if u.Specialty != nil {
		req.list("specialty", u.Specialty)
	}
	if u.WorkZone != nil {
		req.list("work zone", u.WorkZone)
	}
	if u.PaymentMethods != nil {
		req.list("payment methods", u.PaymentMethods)
	}
	return req.err()
}

func ValidateService(in ServiceInput) error {
	req := requiredFields{form: "service"}
	req.text("title", in.Title)
	req.text("category", in.Category)
	req.text("description", in.Description)
	req.text("price", in.Price)
	return req.err()
}

func ValidateAppointment(in AppointmentInput) error {
	req := requiredFields{form: "appointment"}
	req.text("date", in.Date)
	req.text("time", in.Time)
	req.text("client", in.ClientName)
	req.text("service", in.Service)
	return req.err()
}

func ValidateAccount(in AccountInput) error {
	req := requiredFields{form: "payment account"}
	req.text("type", in.Type)
	req.text("name", in.Name)
	req.text("account info", in.AccountInfo)
	return req.err()
}

// Toggle adds item when absent and removes it when present.
func Toggle(items []string, item string) []string {
	for i, v := range items {
		if v == item {
			out := make([]string, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...)
		}
	}
	return append(cloneStrings(items), item)
}

// Contains reports whether items holds item.
func Contains(items []string, item string) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}
