package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AppointmentResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/appointments/{appointmentId}/cancel", NewHandler(svc, nopLogger{}).Handle).
		Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, url, nil)
	req.Header.Set(middleware.UserIDHeader, "5")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Cancelled(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, &models.CancelAppointmentRequest{UserID: 5, AppointmentID: 12}).
		Return(&models.AppointmentResponse{ID: 12, Status: "Cancelada"}, nil)

	rec := serve(svc, "/appointments/12/cancel")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Cancelada", body.Status)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "already completed", err: appointments.ErrCannotCancel, status: http.StatusConflict},
		{name: "internal", err: appointments.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "/appointments/12/cancel")

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("bad id", func(t *testing.T) {
		svc := &mockService{}

		rec := serve(svc, "/appointments/-3/cancel")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})
}
