package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_ContainsHalfOpen(t *testing.T) {
	a := &Appointment{StartTime: "14:00:00", EndTime: "15:00:00", Status: StatusConfirmed}

	assert.False(t, a.Contains(13*60+30))
	assert.True(t, a.Contains(14*60))
	assert.True(t, a.Contains(14*60+30))
	assert.False(t, a.Contains(15*60))
	assert.Equal(t, 60, a.DurationMinutes())
}

func TestAppointment_Overlaps(t *testing.T) {
	a := &Appointment{StartTime: "11:15:00", EndTime: "11:45:00"}

	assert.True(t, a.Overlaps(11*60, 11*60+30))
	assert.True(t, a.Overlaps(11*60+20, 11*60+25))
	assert.False(t, a.Overlaps(11*60+45, 12*60))
	assert.False(t, a.Overlaps(10*60+45, 11*60+15))
}

func TestAppointment_Validate(t *testing.T) {
	assert.NoError(t, (&Appointment{StartTime: "16:00:00", EndTime: "17:00:00"}).Validate())
	assert.ErrorIs(t, (&Appointment{StartTime: "17:00:00", EndTime: "17:00:00"}).Validate(), ErrInvalidAppointment)
	assert.ErrorIs(t, (&Appointment{StartTime: "23:30:00", EndTime: "00:30:00"}).Validate(), ErrInvalidAppointment)
	assert.ErrorIs(t, (&Appointment{StartTime: "16:00", EndTime: "17:00:00"}).Validate(), ErrInvalidAppointment)
}

func TestAppointment_Statuses(t *testing.T) {
	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())

	completed := &Appointment{Status: StatusCompleted}
	assert.True(t, completed.IsActive())
	assert.False(t, completed.CanBeCancelled())

	pending := &Appointment{Status: StatusPending}
	assert.True(t, pending.CanBeCancelled())
}

func TestWeekday(t *testing.T) {
	w, err := ParseWeekday("sunday")
	assert.NoError(t, err)
	assert.Equal(t, Sunday, w)

	_, err = ParseWeekday("Sunday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}
