package agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Resolve возвращает вердикт для пары (барбер, слот). Решает первое сработавшее правило:
//  1. исключение на дату с active=false -> outside_exception; active=true отменяет только правило 2
//  2. день недели неактивен -> non_working_day
//  3. непустой allowedHours без начала слота -> outside_allowed_hours
//  4. обед (13:00-14:00 по умолчанию) содержит начало слота -> lunch_break
//  5. активная запись барбера содержит начало слота -> occupied
//  6. иначе available
func Resolve(barber *domain.Barber, date time.Time, slotStart types.TimeString, index *OccupancyIndex) domain.Verdict {
	schedule := barber.Schedule

	exception := schedule.ExceptionFor(date)
	if exception != nil && !exception.Active {
		return domain.VerdictOutsideException
	}

	day := schedule.DayFor(date)
	if exception == nil && !day.Active {
		return domain.VerdictNonWorkingDay
	}

	if day.HasAllowedHours() && !day.Allows(slotStart) {
		return domain.VerdictOutsideAllowedHours
	}

	lunch := schedule.EffectiveLunch()
	if lunch.Active && lunch.Contains(slotStart) {
		return domain.VerdictLunchBreak
	}

	if index.ownerAt(barber.ID, slotStart.Minutes()) != nil {
		return domain.VerdictOccupied
	}

	return domain.VerdictAvailable
}

// IsAvailable true, если вердикт available
func IsAvailable(barber *domain.Barber, date time.Time, slotStart types.TimeString, index *OccupancyIndex) bool {
	return Resolve(barber, date, slotStart, index).IsAvailable()
}
