package update_barber_schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

type mockService struct{ mock.Mock }

func (m *mockService) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ScheduleResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"workingDays": {
		"monday": {"active": true, "allowedHours": ["10:00", "10:30"]},
		"sunday": {"active": false}
	},
	"lunchBreak": {"active": true, "start": "14:00", "end": "15:00"},
	"exceptions": [{"date": "2024-06-16", "active": true}]
}`

func serve(svc *mockService, body string, withUser bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/barbers/{barberId}/schedule", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/barbers/2/schedule", strings.NewReader(body))
	if withUser {
		req.Header.Set(middleware.UserIDHeader, "7")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateScheduleRequest) bool {
		monday := req.Schedule.WorkingDays[domain.Monday]
		return req.UserID == 7 &&
			req.BarberID == 2 &&
			monday.Active &&
			len(monday.AllowedHours) == 2 &&
			req.Schedule.LunchBreak != nil &&
			req.Schedule.LunchBreak.Start == types.TimeString("14:00") &&
			len(req.Schedule.Exceptions) == 1
	})).Return(&models.ScheduleResponse{BarberID: 2}, nil)

	rec := serve(svc, validBody, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Unauthorized(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHandler_Handle_BadBody(t *testing.T) {
	bodies := []string{
		`{"workingDays":`,
		`{"workingDays": {}}`,
		`{"workingDays": {"monday": {"active": true}}, "unknown": 1}`,
	}

	for _, body := range bodies {
		svc := &mockService{}
		rec := serve(svc, body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	}
}

func TestHandler_Handle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "malformed allowed hour",
			err:    fmt.Errorf("%w: %w", schedule.ErrInvalidSchedule, types.ErrInvalidTimeFormat),
			status: http.StatusBadRequest,
		},
		{name: "not found", err: schedule.ErrBarberNotFound, status: http.StatusNotFound},
		{name: "internal", err: schedule.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, validBody, true)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
