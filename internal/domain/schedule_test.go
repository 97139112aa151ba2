package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduledAppointmentsSortedByDateThenTime(t *testing.T) {
	all := []Appointment{
		{ID: "late", Date: "2025-10-25", Time: "09:00", Status: AppointmentScheduled},
		{ID: "done", Date: "2025-10-20", Time: "08:00", Status: AppointmentCompleted},
		{ID: "afternoon", Date: "2025-10-22", Time: "14:00", Status: AppointmentScheduled},
		{ID: "bad", Date: "soon", Time: "", Status: AppointmentScheduled},
		{ID: "morning", Date: "2025-10-22", Time: "10:00", Status: AppointmentScheduled},
	}
	got := ScheduledAppointments(all)
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"morning", "afternoon", "late", "bad"}, ids)
	assert.Len(t, AppointmentsWithStatus(all, AppointmentCompleted), 1)
}

func TestSummarizeReviews(t *testing.T) {
	s := SummarizeReviews([]Review{{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 9}})
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 4.75, s.Average, 0.001)
	assert.Equal(t, RatingBucket{Stars: 5, Count: 3, Percentage: 75}, s.Distribution[0])
	assert.Equal(t, RatingBucket{Stars: 4, Count: 1, Percentage: 25}, s.Distribution[1])
	assert.Len(t, s.Distribution, 5)

	empty := SummarizeReviews(nil)
	assert.Zero(t, empty.Average)
	assert.Equal(t, 0, empty.Distribution[0].Percentage)
}
