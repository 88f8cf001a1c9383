package get_day_agenda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	getDayAgenda "github.com/m04kA/SMC-BarberAgenda/internal/usecase/get_day_agenda"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getDayAgenda.Request) (*getDayAgenda.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getDayAgenda.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func referenceAgenda() *agenda.DayAgenda {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, Name: "Luis", IsActive: true, Schedule: domain.DefaultSchedule()}
	appt := &domain.Appointment{
		ID: 10, BarberID: 1, ClientName: "Ana", ServiceName: "Corte", Date: monday,
		StartTime: "15:00:00", EndTime: "16:00:00", Status: domain.StatusConfirmed,
	}
	return agenda.BuildDay(monday, monday.AddDate(0, 0, -1), agenda.DefaultShopHours(),
		[]*domain.Barber{barber}, []*domain.Appointment{appt})
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getDayAgenda.Request) bool {
		return req.Date.Format(domain.DateFormat) == "2024-06-10" && req.UserID == 5
	})).Return(&getDayAgenda.Response{Agenda: referenceAgenda(), Source: "cache"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2024-06-10", nil)
	req.Header.Set("X-User-ID", "5")
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body DayAgendaResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, "cache", body.Source)
	require.Len(t, body.Slots, 21)
	assert.Equal(t, "11:00", body.Slots[0].Start)
	assert.Equal(t, "11:00 am", body.Slots[0].Display)

	require.Len(t, body.Barbers, 1)
	column := body.Barbers[0]
	assert.Equal(t, domain.LabelAvailable, column.Summary.Label)
	assert.Equal(t, 17, column.Summary.FreeSlotCount)
	assert.Equal(t, 2, body.VerdictCounts["occupied"])

	// 15:00 и 15:30 - слоты 8 и 9 (от 11:00)
	first, second := column.Cells[8], column.Cells[9]
	assert.Equal(t, "15:00", first.Start)
	assert.Equal(t, "occupied", first.Verdict)
	require.NotNil(t, first.Appointment)
	assert.Equal(t, "Ana", first.Appointment.ClientName)
	assert.True(t, first.IsFirstSlot)

	assert.Nil(t, second.Appointment)
	require.NotNil(t, second.AppointmentID)
	assert.Equal(t, int64(10), *second.AppointmentID)
	assert.True(t, second.IsContinuation)
	assert.True(t, second.IsLastSlot)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/agenda"},
		{name: "unpadded date", url: "/api/v1/agenda?date=2024-6-10"},
		{name: "garbage date", url: "/api/v1/agenda?date=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := httptest.NewRecorder()

			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getDayAgenda.ErrInternal)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2024-06-10", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
