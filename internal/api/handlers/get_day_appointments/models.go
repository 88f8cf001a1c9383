package get_day_appointments

import (
	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

// DayAppointmentsResponse HTTP response model
type DayAppointmentsResponse struct {
	Date         string                        `json:"date"`
	Source       string                        `json:"source"`
	Appointments []*models.AppointmentResponse `json:"appointments"`
	Total        int                           `json:"total"`
}

// FromServiceResponse конвертирует записи дня в HTTP response.
// barberID = 0 означает записи всех барберов
func FromServiceResponse(date string, barberID int64, day *models.DayAppointments) *DayAppointmentsResponse {
	items := make([]*models.AppointmentResponse, 0, len(day.Appointments))
	for _, a := range day.Appointments {
		if barberID != 0 && a.BarberID != barberID {
			continue
		}
		items = append(items, models.FromDomainAppointment(a))
	}

	return &DayAppointmentsResponse{
		Date:         date,
		Source:       day.Source,
		Appointments: items,
		Total:        len(items),
	}
}
