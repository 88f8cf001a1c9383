package barber

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

const (
	issueMissing = "schedule is missing"
	issueEmpty   = "working_days is empty"
)

// decodeSchedule собирает расписание из jsonb колонок barber_schedules.
// Ошибка декодирования или валидации означает, что барбер работает по расписанию по умолчанию.
func decodeSchedule(workingDays, lunchBreak, exceptions []byte) (domain.BarberSchedule, error) {
	var schedule domain.BarberSchedule

	if err := json.Unmarshal(workingDays, &schedule.WorkingDays); err != nil {
		return domain.BarberSchedule{}, fmt.Errorf("working_days: %w", err)
	}
	if len(schedule.WorkingDays) == 0 {
		return domain.BarberSchedule{}, errors.New(issueEmpty)
	}

	if len(lunchBreak) > 0 && string(lunchBreak) != "null" {
		var lunch domain.LunchBreak
		if err := json.Unmarshal(lunchBreak, &lunch); err != nil {
			return domain.BarberSchedule{}, fmt.Errorf("lunch_break: %w", err)
		}
		schedule.LunchBreak = &lunch
	}

	if len(exceptions) > 0 {
		if err := json.Unmarshal(exceptions, &schedule.Exceptions); err != nil {
			return domain.BarberSchedule{}, fmt.Errorf("exceptions: %w", err)
		}
	}

	if err := schedule.Validate(); err != nil {
		return domain.BarberSchedule{}, err
	}

	return schedule, nil
}

// encodeSchedule сериализует расписание в значения для jsonb колонок
func encodeSchedule(schedule domain.BarberSchedule) (workingDays string, lunchBreak *string, exceptions string, err error) {
	wd, err := json.Marshal(schedule.WorkingDays)
	if err != nil {
		return "", nil, "", fmt.Errorf("%w: working_days: %v", ErrEncodeSchedule, err)
	}

	if schedule.LunchBreak != nil {
		lb, err := json.Marshal(schedule.LunchBreak)
		if err != nil {
			return "", nil, "", fmt.Errorf("%w: lunch_break: %v", ErrEncodeSchedule, err)
		}
		s := string(lb)
		lunchBreak = &s
	}

	excs := schedule.Exceptions
	if excs == nil {
		excs = []domain.ScheduleException{}
	}
	ex, err := json.Marshal(excs)
	if err != nil {
		return "", nil, "", fmt.Errorf("%w: exceptions: %v", ErrEncodeSchedule, err)
	}

	return string(wd), lunchBreak, string(ex), nil
}

// applySchedule декодирует расписание барбера или подставляет расписание по умолчанию
func applySchedule(b *domain.Barber, workingDays, lunchBreak, exceptions []byte) {
	if workingDays == nil {
		b.UseDefaultSchedule(issueMissing)
		return
	}

	schedule, err := decodeSchedule(workingDays, lunchBreak, exceptions)
	if err != nil {
		b.UseDefaultSchedule(err.Error())
		return
	}

	b.Schedule = schedule
}
