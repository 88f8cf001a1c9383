package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentsCache "github.com/m04kA/SMC-BarberAgenda/internal/infra/cache/appointments"
	appointmentRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

var day = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func sampleAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		BarberID:    1,
		ClientName:  "Ana",
		ServiceName: "Corte",
		Date:        day,
		StartTime:   "15:00:00",
		EndTime:     "16:00:00",
		Status:      status,
	}
}

func TestService_GetDay_CacheHit(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	m := &recordingMetrics{}
	appts := []*domain.Appointment{sampleAppointment(1, domain.StatusConfirmed)}

	cache.On("Lookup", mock.Anything, day).
		Return(&appointmentsCache.Snapshot{Version: 2, Hit: true, Appointments: appts}, nil)

	svc := NewService(repo, cache, passThroughTx{}, m, nopLogger{})
	got, err := svc.GetDay(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, models.SourceCache, got.Source)
	assert.Equal(t, appts, got.Appointments)
	assert.Equal(t, []string{"hit"}, m.cache)
	repo.AssertNotCalled(t, "GetActiveByDate", mock.Anything, mock.Anything)
}

func TestService_GetDay_MissStoresUnderReadVersion(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	m := &recordingMetrics{}
	appts := []*domain.Appointment{sampleAppointment(1, domain.StatusConfirmed)}

	cache.On("Lookup", mock.Anything, day).Return(&appointmentsCache.Snapshot{Version: 5}, nil)
	repo.On("GetActiveByDate", mock.Anything, day).Return(appts, nil)
	cache.On("Store", mock.Anything, day, int64(5), appts).Return(nil)

	svc := NewService(repo, cache, passThroughTx{}, m, nopLogger{})
	got, err := svc.GetDay(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, models.SourceDatabase, got.Source)
	assert.Equal(t, appts, got.Appointments)
	assert.Equal(t, []string{"miss"}, m.cache)
	cache.AssertExpectations(t)
}

func TestService_GetDay_CacheErrorFallsBackToDatabase(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	m := &recordingMetrics{}

	cache.On("Lookup", mock.Anything, day).Return(nil, appointmentsCache.ErrCache)
	repo.On("GetActiveByDate", mock.Anything, day).Return([]*domain.Appointment{}, nil)

	svc := NewService(repo, cache, passThroughTx{}, m, nopLogger{})
	got, err := svc.GetDay(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, models.SourceDatabase, got.Source)
	assert.Empty(t, got.Appointments)
	assert.Equal(t, []string{"error"}, m.cache)
	cache.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetDay_StoreErrorIgnored(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}

	cache.On("Lookup", mock.Anything, day).Return(&appointmentsCache.Snapshot{}, nil)
	repo.On("GetActiveByDate", mock.Anything, day).Return([]*domain.Appointment{}, nil)
	cache.On("Store", mock.Anything, day, int64(0), mock.Anything).Return(appointmentsCache.ErrCache)

	svc := NewService(repo, cache, passThroughTx{}, &recordingMetrics{}, nopLogger{})
	_, err := svc.GetDay(context.Background(), day)

	require.NoError(t, err)
}

func TestService_GetDay_WithoutCache(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetActiveByDate", mock.Anything, day).Return([]*domain.Appointment{}, nil)

	svc := NewService(repo, nil, passThroughTx{}, &recordingMetrics{}, nopLogger{})
	got, err := svc.GetDay(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, models.SourceDatabase, got.Source)
}

func TestService_GetDay_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetActiveByDate", mock.Anything, day).Return(nil, appointmentRepo.ErrExecQuery)

	svc := NewService(repo, nil, passThroughTx{}, &recordingMetrics{}, nopLogger{})
	_, err := svc.GetDay(context.Background(), day)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Cancel(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	m := &recordingMetrics{}

	repo.On("GetByID", mock.Anything, int64(7)).Return(sampleAppointment(7, domain.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(7), domain.StatusCancelled).Return(nil)
	cache.On("Bump", mock.Anything, day).Return(int64(1), nil)

	svc := NewService(repo, cache, passThroughTx{}, m, nopLogger{})
	got, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{UserID: 1, AppointmentID: 7})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.Equal(t, []string{"cancel:ok"}, m.appointments)
	cache.AssertExpectations(t)
}

func TestService_Cancel_Errors(t *testing.T) {
	tests := []struct {
		name    string
		appt    *domain.Appointment
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: appointmentRepo.ErrAppointmentNotFound, wantErr: ErrAppointmentNotFound},
		{name: "completed", appt: sampleAppointment(7, domain.StatusCompleted), wantErr: ErrCannotCancel},
		{name: "already cancelled", appt: sampleAppointment(7, domain.StatusCancelled), wantErr: ErrCannotCancel},
		{name: "repository failure", repoErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			cache := &mockCache{}
			repo.On("GetByID", mock.Anything, int64(7)).Return(tt.appt, tt.repoErr)

			svc := NewService(repo, cache, passThroughTx{}, &recordingMetrics{}, nopLogger{})
			_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{UserID: 1, AppointmentID: 7})

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			cache.AssertNotCalled(t, "Bump", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Cancel_BumpFailureStillSucceeds(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}

	repo.On("GetByID", mock.Anything, int64(7)).Return(sampleAppointment(7, domain.StatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, int64(7), domain.StatusCancelled).Return(nil)
	cache.On("Bump", mock.Anything, day).Return(int64(0), appointmentsCache.ErrCache)

	svc := NewService(repo, cache, passThroughTx{}, &recordingMetrics{}, nopLogger{})
	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{AppointmentID: 7})

	require.NoError(t, err)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(3)).Return(sampleAppointment(3, domain.StatusConfirmed), nil)
	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	svc := NewService(repo, nil, passThroughTx{}, &recordingMetrics{}, nopLogger{})

	got, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "15:00:00", got.StartTime)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, "2024-06-10", got.Date)

	_, err = svc.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
