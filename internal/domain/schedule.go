package domain

import (
	"sort"
	"time"
)

const appointmentLayout = "2006-01-02 15:04"

// ScheduledAppointments returns the scheduled entries ordered by date and time.
// Entries whose date or time do not parse sort after the rest by raw text.
func ScheduledAppointments(all []Appointment) []Appointment {
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if a.Status == AppointmentScheduled {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := appointmentTime(out[i])
		tj, okJ := appointmentTime(out[j])
		switch {
		case okI && okJ:
			return ti.Before(tj)
		case okI != okJ:
			return okI
		}
		return out[i].Date+" "+out[i].Time < out[j].Date+" "+out[j].Time
	})
	return out
}

// AppointmentsWithStatus keeps entries with the given status, in stored order.
func AppointmentsWithStatus(all []Appointment, status AppointmentStatus) []Appointment {
	var out []Appointment
	for _, a := range all {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

func appointmentTime(a Appointment) (time.Time, bool) {
	t, err := time.Parse(appointmentLayout, a.Date+" "+a.Time)
	return t, err == nil
}

// RatingBucket is one row of the star distribution.
type RatingBucket struct {
	Stars      int
	Count      int
	Percentage int
}

// ReviewSummary aggregates client reviews.
type ReviewSummary struct {
	Average      float64
	Total        int
	Distribution []RatingBucket
}

// SummarizeReviews computes the average and a 5..1 star distribution.
func SummarizeReviews(reviews []Review) ReviewSummary {
	counts := make([]int, 6)
	sum := 0
	for _, r := range reviews {
		stars := min(max(r.Rating, 1), 5)
		counts[stars]++
		sum += stars
	}
	s := ReviewSummary{Total: len(reviews)}
	if s.Total > 0 {
		s.Average = float64(sum) / float64(s.Total)
	}
	for stars := 5; stars >= 1; stars-- {
		b := RatingBucket{Stars: stars, Count: counts[stars]}
		if s.Total > 0 {
			b.Percentage = counts[stars] * 100 / s.Total
		}
		s.Distribution = append(s.Distribution, b)
	}
	return s
}
