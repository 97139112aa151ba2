package domain

import "time"

// Professional is the service-provider account record.
type Professional struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Email          string    `json:"email" yaml:"email"`
	Phone          string    `json:"phone" yaml:"phone"`
	Specialty      []string  `json:"specialty" yaml:"specialty"`
	Experience     string    `json:"experience" yaml:"experience"`
	Certifications string    `json:"certifications" yaml:"certifications"`
	WorkZone       []string  `json:"work_zone" yaml:"work_zone"`
	PaymentMethods []string  `json:"payment_methods" yaml:"payment_methods"`
	Photo          string    `json:"photo,omitempty" yaml:"photo,omitempty"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	Services       []Service `json:"services" yaml:"services"`
	Availability   string    `json:"availability" yaml:"availability"`
	Rating         float64   `json:"rating" yaml:"rating"`
	ReviewsCount   int       `json:"reviews_count" yaml:"reviews_count"`
}

// FirstName returns the first word of the name, used for greetings.
func (p Professional) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}

// Clone returns a deep copy so callers cannot mutate owned slices.
func (p Professional) Clone() Professional {
	out := p
	out.Specialty = cloneStrings(p.Specialty)
	out.WorkZone = cloneStrings(p.WorkZone)
	out.PaymentMethods = cloneStrings(p.PaymentMethods)
	out.Services = make([]Service, len(p.Services))
	for i, s := range p.Services {
		out.Services[i] = s.Clone()
	}
	return out
}

// OnboardingData is everything collected before a Professional exists.
type OnboardingData struct {
	Name           string   `json:"name" yaml:"name"`
	Email          string   `json:"email" yaml:"email"`
	Phone          string   `json:"phone" yaml:"phone"`
	Specialty      []string `json:"specialty" yaml:"specialty"`
	Experience     string   `json:"experience" yaml:"experience"`
	Certifications string   `json:"certifications" yaml:"certifications"`
	WorkZone       []string `json:"work_zone" yaml:"work_zone"`
	PaymentMethods []string `json:"payment_methods" yaml:"payment_methods"`
	Availability   string   `json:"availability" yaml:"availability"`
}

// ProfileUpdate is a shallow merge: nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Photo          *string
	Description    *string
	Specialty      []string
	Experience     *string
	Certifications *string
	WorkZone       []string
	Availability   *string
	PaymentMethods []string
}

// Service is a single offering published by a Professional.
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Images      []string `json:"images" yaml:"images"`
}

func (s Service) Clone() Service {
	s.Images = cloneStrings(s.Images)
	return s
}

// ServiceInput is the publisher form payload.
type ServiceInput struct {
	Title       string
	Category    string
	Description string
	Price       string
	Images      []string
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

// Request is a client-initiated job inquiry with its message thread.
type Request struct {
	ID          string        `json:"id" yaml:"id"`
	ClientName  string        `json:"client_name" yaml:"client_name"`
	ClientPhoto string        `json:"client_photo,omitempty" yaml:"client_photo,omitempty"`
	Service     string        `json:"service" yaml:"service"`
	Description string        `json:"description" yaml:"description"`
	Date        string        `json:"date" yaml:"date"`
	Status      RequestStatus `json:"status" yaml:"status"`
	Messages    []Message     `json:"messages" yaml:"messages"`
}

func (r Request) Clone() Request {
	r.Messages = append([]Message(nil), r.Messages...)
	return r
}

type Sender string

const (
	SenderClient       Sender = "client"
	SenderProfessional Sender = "professional"
)

type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Sender    Sender    `json:"sender" yaml:"sender"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a calendar entry. Date is YYYY-MM-DD and Time is HH:MM.
type Appointment struct {
	ID         string            `json:"id" yaml:"id"`
	Date       string            `json:"date" yaml:"date"`
	Time       string            `json:"time" yaml:"time"`
	Duration   string            `json:"duration" yaml:"duration"`
	ClientName string            `json:"client_name" yaml:"client_name"`
	Service    string            `json:"service" yaml:"service"`
	Location   string            `json:"location" yaml:"location"`
	Notes      string            `json:"notes" yaml:"notes"`
	Status     AppointmentStatus `json:"status" yaml:"status"`
}

type AppointmentInput struct {
	Date       string
	Time       string
	Duration   string
	ClientName string
	Service    string
	Location   string
	Notes      string
}

type AccountType string

const (
	AccountBank        AccountType = "bank"
	AccountMercadoPago AccountType = "mercadopago"
	AccountPayPal      AccountType = "paypal"
	AccountOther       AccountType = "other"
)

// AccountTypes lists the selectable payout account kinds in display order.
func AccountTypes() []AccountType {
	return []AccountType{AccountBank, AccountMercadoPago, AccountPayPal, AccountOther}
}

func (t AccountType) Label() string {
	switch t {
	case AccountBank:
		return "Bank account"
	case AccountMercadoPago:
		return "Mercado Pago"
	case AccountPayPal:
		return "PayPal"
	case AccountOther:
		return "Other"
	}
	return string(t)
}

type PaymentAccount struct {
	ID          string      `json:"id" yaml:"id"`
	Type        AccountType `json:"type" yaml:"type"`
	Name        string      `json:"name" yaml:"name"`
	AccountInfo string      `json:"account_info" yaml:"account_info"`
	IsDefault   bool        `json:"is_default" yaml:"is_default"`
}

type AccountInput struct {
	Type        string
	Name        string
	AccountInfo string
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type PaymentRecord struct {
	ID         string        `json:"id" yaml:"id"`
	Date       string        `json:"date" yaml:"date"`
	ClientName string        `json:"client_name" yaml:"client_name"`
	Service    string        `json:"service" yaml:"service"`
	Amount     int64         `json:"amount" yaml:"amount"`
	Method     string        `json:"method" yaml:"method"`
	Status     PaymentStatus `json:"status" yaml:"status"`
}

type PaymentStats struct {
	MonthlyEarnings   int64 `json:"monthly_earnings" yaml:"monthly_earnings"`
	PendingPayments   int64 `json:"pending_payments" yaml:"pending_payments"`
	CompletedPayments int   `json:"completed_payments" yaml:"completed_payments"`
}

type Review struct {
	ID          string `json:"id" yaml:"id"`
	ClientName  string `json:"client_name" yaml:"client_name"`
	ClientPhoto string `json:"client_photo,omitempty" yaml:"client_photo,omitempty"`
	Rating      int    `json:"rating" yaml:"rating"`
	Service     string `json:"service" yaml:"service"`
	Comment     string `json:"comment" yaml:"comment"`
	Date        string `json:"date" yaml:"date"`
	Helpful     int    `json:"helpful" yaml:"helpful"`
}

// Offer is a marketplace listing from another professional.
type Offer struct {
	ID               string  `json:"id" yaml:"id"`
	ProfessionalName string  `json:"professional_name" yaml:"professional_name"`
	Title            string  `json:"title" yaml:"title"`
	Category         string  `json:"category" yaml:"category"`
	Description      string  `json:"description" yaml:"description"`
	Price            string  `json:"price" yaml:"price"`
	Rating           float64 `json:"rating" yaml:"rating"`
	ReviewsCount     int     `json:"reviews_count" yaml:"reviews_count"`
	Zone             string  `json:"zone" yaml:"zone"`
	Availability     string  `json:"availability" yaml:"availability"`
}

// Catalog holds the option lists shared by onboarding, profile and publisher.
type Catalog struct {
	Specialties    []string `json:"specialties" yaml:"specialties"`
	Zones          []string `json:"zones" yaml:"zones"`
	PaymentOptions []string `json:"payment_options" yaml:"payment_options"`
}

type DashboardStats struct {
	CompletedJobs   int   `json:"completed_jobs" yaml:"completed_jobs"`
	MonthlyEarnings int64 `json:"monthly_earnings" yaml:"monthly_earnings"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
