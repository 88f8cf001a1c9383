package appointments

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentsCache "github.com/m04kA/SMC-BarberAgenda/internal/infra/cache/appointments"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	appt, _ := args.Get(0).(*domain.Appointment)
	return appt, args.Error(1)
}

func (m *mockRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, date)
	appts, _ := args.Get(0).([]*domain.Appointment)
	return appts, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Lookup(ctx context.Context, date time.Time) (*appointmentsCache.Snapshot, error) {
	args := m.Called(ctx, date)
	snapshot, _ := args.Get(0).(*appointmentsCache.Snapshot)
	return snapshot, args.Error(1)
}

func (m *mockCache) Store(ctx context.Context, date time.Time, version int64, appts []*domain.Appointment) error {
	return m.Called(ctx, date, version, appts).Error(0)
}

func (m *mockCache) Bump(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingMetrics struct {
	cache        []string
	appointments []string
}

func (m *recordingMetrics) IncCache(result string) {
	m.cache = append(m.cache, result)
}

func (m *recordingMetrics) IncAppointment(action, outcome string) {
	m.appointments = append(m.appointments, action+":"+outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
