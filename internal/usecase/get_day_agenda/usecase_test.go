package get_day_agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentsModels "github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

type mockBarberRepo struct{ mock.Mock }

func (m *mockBarberRepo) GetActive(ctx context.Context) ([]*domain.Barber, error) {
	args := m.Called(ctx)
	barbers, _ := args.Get(0).([]*domain.Barber)
	return barbers, args.Error(1)
}

type mockAppointments struct{ mock.Mock }

func (m *mockAppointments) GetDay(ctx context.Context, date time.Time) (*appointmentsModels.DayAppointments, error) {
	args := m.Called(ctx, date)
	day, _ := args.Get(0).(*appointmentsModels.DayAppointments)
	return day, args.Error(1)
}

type recordingMetrics struct {
	sources  []string
	verdicts map[string]int
}

func (m *recordingMetrics) ObserveAgendaBuild(source string, _ time.Duration) {
	m.sources = append(m.sources, source)
}

func (m *recordingMetrics) IncVerdict(verdict string, n int) {
	if m.verdicts == nil {
		m.verdicts = make(map[string]int)
	}
	m.verdicts[verdict] += n
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingLogger struct{ warns int }

func (l *countingLogger) Info(string, ...interface{})  {}
func (l *countingLogger) Warn(string, ...interface{})  { l.warns++ }
func (l *countingLogger) Error(string, ...interface{}) {}

var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func newUseCase(barbers *mockBarberRepo, appts *mockAppointments, m *recordingMetrics, log Logger, now time.Time) *UseCase {
	uc := NewUseCase(barbers, appts, agenda.DefaultShopHours(), time.UTC, m, log)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute_ReferenceMonday(t *testing.T) {
	barbers := &mockBarberRepo{}
	appts := &mockAppointments{}
	m := &recordingMetrics{}

	barber := &domain.Barber{ID: 1, Name: "Luis", IsActive: true, Schedule: domain.DefaultSchedule()}
	booked := &domain.Appointment{
		ID: 10, BarberID: 1, Date: monday,
		StartTime: "15:00:00", EndTime: "16:00:00", Status: domain.StatusConfirmed,
	}

	barbers.On("GetActive", mock.Anything).Return([]*domain.Barber{barber}, nil)
	appts.On("GetDay", mock.Anything, monday).Return(&appointmentsModels.DayAppointments{
		Appointments: []*domain.Appointment{booked},
		Source:       appointmentsModels.SourceDatabase,
	}, nil)

	uc := newUseCase(barbers, appts, m, &countingLogger{}, monday.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: monday.Add(15 * time.Hour)})

	require.NoError(t, err)
	assert.Equal(t, appointmentsModels.SourceDatabase, resp.Source)
	require.Len(t, resp.Agenda.Slots, 21)
	require.Len(t, resp.Agenda.Columns, 1)

	summary := resp.Agenda.Columns[0].Summary
	assert.Equal(t, 19, summary.CandidateSlotCount)
	assert.Equal(t, 17, summary.FreeSlotCount)
	assert.Equal(t, 2, summary.BookedCount)
	assert.Equal(t, domain.LabelAvailable, summary.Label)

	assert.Equal(t, []string{appointmentsModels.SourceDatabase}, m.sources)
	assert.Equal(t, 2, m.verdicts[domain.VerdictOccupied.String()])
	assert.Equal(t, 2, m.verdicts[domain.VerdictLunchBreak.String()])
	assert.Equal(t, 17, m.verdicts[domain.VerdictAvailable.String()])
	for _, verdict := range domain.AllVerdicts {
		assert.Contains(t, m.verdicts, verdict.String())
	}
}

func TestUseCase_Execute_TodayDropsPastSlots(t *testing.T) {
	barbers := &mockBarberRepo{}
	appts := &mockAppointments{}

	barbers.On("GetActive", mock.Anything).Return([]*domain.Barber{}, nil)
	appts.On("GetDay", mock.Anything, monday).Return(&appointmentsModels.DayAppointments{
		Source: appointmentsModels.SourceCache,
	}, nil)

	now := monday.Add(18*time.Hour + 10*time.Minute)
	uc := newUseCase(barbers, appts, &recordingMetrics{}, &countingLogger{}, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	require.Len(t, resp.Agenda.Slots, 6)
	assert.Equal(t, "18:30", resp.Agenda.Slots[0].Start.String())
	assert.Empty(t, resp.Agenda.Columns)
}

func TestUseCase_Execute_WarnsOnDefaultSchedule(t *testing.T) {
	barbers := &mockBarberRepo{}
	appts := &mockAppointments{}
	log := &countingLogger{}

	fallback := &domain.Barber{ID: 2, IsActive: true}
	fallback.UseDefaultSchedule("invalid working_days json")

	barbers.On("GetActive", mock.Anything).Return([]*domain.Barber{fallback}, nil)
	appts.On("GetDay", mock.Anything, monday).Return(&appointmentsModels.DayAppointments{}, nil)

	uc := newUseCase(barbers, appts, &recordingMetrics{}, log, monday.AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.Equal(t, 1, log.warns)
	assert.True(t, resp.Agenda.Columns[0].Summary.IsAvailable)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		uc := newUseCase(&mockBarberRepo{}, &mockAppointments{}, &recordingMetrics{}, &countingLogger{}, monday)
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("barbers failure", func(t *testing.T) {
		barbers := &mockBarberRepo{}
		barbers.On("GetActive", mock.Anything).Return(nil, errors.New("db down"))

		uc := newUseCase(barbers, &mockAppointments{}, &recordingMetrics{}, &countingLogger{}, monday)
		_, err := uc.Execute(context.Background(), &Request{Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("appointments failure", func(t *testing.T) {
		barbers := &mockBarberRepo{}
		appts := &mockAppointments{}
		barbers.On("GetActive", mock.Anything).Return([]*domain.Barber{}, nil)
		appts.On("GetDay", mock.Anything, monday).Return(nil, errors.New("db down"))

		uc := newUseCase(barbers, appts, &recordingMetrics{}, &countingLogger{}, monday)
		_, err := uc.Execute(context.Background(), &Request{Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
