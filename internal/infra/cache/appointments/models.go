package appointments

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Snapshot результат чтения кэша. Version - значение счетчика обновлений даты на момент чтения;
// его нужно передать в Store после загрузки записей из БД.
type Snapshot struct {
	Version      int64
	Hit          bool
	Appointments []*domain.Appointment
}

type cachedAppointment struct {
	ID          int64                    `json:"id"`
	BarberID    int64                    `json:"barberId"`
	ClientName  string                   `json:"clientName"`
	ServiceName string                   `json:"serviceName"`
	Date        string                   `json:"date"`
	StartTime   types.ClockTime          `json:"startTime"`
	EndTime     types.ClockTime          `json:"endTime"`
	Status      domain.AppointmentStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func toCached(a *domain.Appointment) cachedAppointment {
	return cachedAppointment{
		ID:          a.ID,
		BarberID:    a.BarberID,
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		Date:        a.Date.Format(domain.DateFormat),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func fromCached(c cachedAppointment, loc *time.Location) (*domain.Appointment, error) {
	date, err := time.ParseInLocation(domain.DateFormat, c.Date, loc)
	if err != nil {
		return nil, err
	}
	return &domain.Appointment{
		ID:          c.ID,
		BarberID:    c.BarberID,
		ClientName:  c.ClientName,
		ServiceName: c.ServiceName,
		Date:        date,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}
