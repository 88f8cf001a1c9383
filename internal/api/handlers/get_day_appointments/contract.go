package get_day_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDay(ctx context.Context, date time.Time) (*models.DayAppointments, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
