package update_barber_schedule

import (
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule/models"
)

// UpdateBarberScheduleRequest HTTP request model; расписание заменяется целиком
type UpdateBarberScheduleRequest struct {
	WorkingDays map[domain.Weekday]domain.WorkingDay `json:"workingDays"`
	LunchBreak  *domain.LunchBreak                   `json:"lunchBreak,omitempty"`
	Exceptions  []domain.ScheduleException           `json:"exceptions,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBarberScheduleRequest) ToServiceRequest(userID, barberID int64) *models.UpdateScheduleRequest {
	exceptions := r.Exceptions
	if exceptions == nil {
		exceptions = []domain.ScheduleException{}
	}

	return &models.UpdateScheduleRequest{
		UserID:   userID,
		BarberID: barberID,
		Schedule: domain.BarberSchedule{
			WorkingDays: r.WorkingDays,
			LunchBreak:  r.LunchBreak,
			Exceptions:  exceptions,
		},
	}
}
