package check_availability

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	checkAvailability "github.com/m04kA/SMC-BarberAgenda/internal/usecase/check_availability"
	"github.com/m04kA/SMC-BarberAgenda/pkg/ptr"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BarberID      int64  `json:"barberId"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Display       string `json:"display"`
	Verdict       string `json:"verdict"`
	IsAvailable   bool   `json:"isAvailable"`
	InGrid        bool   `json:"inGrid"`
	AppointmentID *int64 `json:"appointmentId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query.
// Формат времени проверяется в use case.
func ToUseCaseRequest(userID, barberID int64, dateStr, timeStr string) (*checkAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		UserID:   userID,
		BarberID: barberID,
		Date:     date,
		Time:     types.TimeString(timeStr),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		BarberID:    resp.BarberID,
		Date:        resp.Date.Format(domain.DateFormat),
		Start:       resp.Slot.Start.String(),
		End:         resp.Slot.End.String(),
		Display:     resp.Slot.Display,
		Verdict:     resp.Verdict.String(),
		IsAvailable: resp.IsAvailable,
		InGrid:      resp.InGrid,
	}
	if resp.Appointment != nil {
		result.AppointmentID = ptr.Ptr(resp.Appointment.ID)
	}
	return result
}
