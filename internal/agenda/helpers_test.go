package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func at(t *testing.T, day, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	require.NoError(t, err)
	return ts
}

func slot(start string) domain.TimeSlot {
	s := types.MustTimeString(start)
	end, _ := s.AddMinutes(domain.SlotDurationMinutes)
	return domain.TimeSlot{Start: s, End: end, Display: s.Display()}
}

func defaultBarber(id int64) *domain.Barber {
	return &domain.Barber{ID: id, Name: "barber", IsActive: true, Schedule: domain.DefaultSchedule()}
}

func appt(id, barberID int64, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		BarberID:  barberID,
		StartTime: types.ClockTime(start),
		EndTime:   types.ClockTime(end),
		Status:    status,
	}
}
