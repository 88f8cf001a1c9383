package models

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// Источники записей дня
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID        int64 `json:"userId"`
	AppointmentID int64 `json:"appointmentId"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	BarberID        int64     `json:"barberId"`
	ClientName      string    `json:"clientName"`
	ServiceName     string    `json:"serviceName"`
	Date            string    `json:"date"`      // "2024-06-10"
	StartTime       string    `json:"startTime"` // "10:00:00"
	EndTime         string    `json:"endTime"`   // "11:00:00"
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DayAppointments неотмененные записи дня и источник, из которого они получены
type DayAppointments struct {
	Appointments []*domain.Appointment
	Source       string
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		BarberID:        a.BarberID,
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
