package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// errParseDate ошибка разбора даты записи
var errParseDate = errors.New("parsing appointment date")

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID        int64  `json:"barberId"`
	ClientName      string `json:"clientName"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`      // "2024-06-10"
	StartTime       string `json:"startTime"` // "15:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	BarberID        int64  `json:"barberId"`
	ClientName      string `json:"clientName"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"` // "15:00:00"
	EndTime         string `json:"endTime"`   // "16:00:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Ошибка разбора времени оборачивает types.ErrInvalidTimeFormat, ошибка даты - errParseDate
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:          userID,
		BarberID:        r.BarberID,
		ClientName:      r.ClientName,
		ServiceName:     r.ServiceName,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		BarberID:        resp.BarberID,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
