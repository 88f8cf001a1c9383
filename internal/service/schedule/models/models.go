package models

import (
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/ptr"
)

// Request модели

// UpdateScheduleRequest запрос на замену расписания барбера целиком
type UpdateScheduleRequest struct {
	UserID   int64                 `json:"userId"`
	BarberID int64                 `json:"barberId"`
	Schedule domain.BarberSchedule `json:"schedule"`
}

// Response модели

// ScheduleResponse действующее расписание барбера.
// IsDefault = true, если сохраненное расписание отсутствует или повреждено.
type ScheduleResponse struct {
	BarberID   int64                 `json:"barberId"`
	BarberName string                `json:"barberName"`
	Schedule   domain.BarberSchedule `json:"schedule"`
	IsDefault  bool                  `json:"isDefault"`
	Issue      *string               `json:"issue,omitempty"`
}

// Методы конвертации

// FromDomainBarber конвертирует барбера в DTO расписания
func FromDomainBarber(b *domain.Barber) *ScheduleResponse {
	if b == nil {
		return nil
	}

	resp := &ScheduleResponse{
		BarberID:   b.ID,
		BarberName: b.Name,
		Schedule:   b.Schedule,
		IsDefault:  b.ScheduleIsDefault,
	}
	if b.ScheduleIssue != "" {
		resp.Issue = ptr.Ptr(b.ScheduleIssue)
	}

	return resp
}
