package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

// Offers lists marketplace listings for a category filter and search query.
func (a *App) Offers(category, query string) []domain.Offer {
	return domain.FilterOffers(a.seed.Offers, category, query)
}

func (a *App) OfferCategories() []string {
	return domain.OfferCategories(a.seed.Offers)
}

// Hire sends a job request to the offer's professional.
func (a *App) Hire(offerID string) (domain.Offer, error) {
	if err := a.requireProfile("hire"); err != nil {
		return domain.Offer{}, err
	}
	for _, o := range a.seed.Offers {
		if o.ID == offerID {
			a.log.Info("hire requested", zap.String("offer", o.ID), zap.String("professional_name", o.ProfessionalName))
			return o, nil
		}
	}
	return domain.Offer{}, fmt.Errorf("hire %s: %w", offerID, domain.ErrOfferNotFound)
}

func (a *App) Reviews() []domain.Review {
	return append([]domain.Review(nil), a.seed.Reviews...)
}

func (a *App) ReviewSummary() domain.ReviewSummary {
	return domain.SummarizeReviews(a.seed.Reviews)
}

// DashboardSummary combines the live inbox and calendar with seeded totals.
type DashboardSummary struct {
	TotalRequests   int
	PendingRequests int
	CompletedJobs   int
	MonthlyEarnings int64
	Rating          float64
	Recent          []domain.Request
	Upcoming        []domain.Appointment
}

const dashboardListLimit = 3

func (a *App) Dashboard() DashboardSummary {
	s := DashboardSummary{
		TotalRequests:   len(a.requests),
		CompletedJobs:   a.seed.Dashboard.CompletedJobs,
		MonthlyEarnings: a.seed.Dashboard.MonthlyEarnings,
	}
	if a.pro != nil {
		s.Rating = a.pro.Rating
	}
	for _, r := range a.requests {
		if r.Status == domain.RequestPending {
			s.PendingRequests++
		}
		if r.Status != domain.RequestRejected && len(s.Recent) < dashboardListLimit {
			s.Recent = append(s.Recent, r.Clone())
		}
	}
	upcoming := a.Scheduled()
	if len(upcoming) > dashboardListLimit {
		upcoming = upcoming[:dashboardListLimit]
	}
	s.Upcoming = upcoming
	return s
}
