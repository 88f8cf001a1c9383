package agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// DaySummary статус барбера на день для заголовка колонки
type DaySummary struct {
	BarberID        int64
	IsWorkingDay    bool
	HasException    bool
	ExceptionClosed bool
	IsAvailable     bool

	CandidateSlotCount int // слоты, прошедшие правила 1-4
	FreeSlotCount      int // кандидаты без записи
	BookedCount        int // кандидаты, занятые записью; обеденные слоты сюда не входят
	AppointmentCount   int // различные записи, занимающие хотя бы один кандидат

	Label string
}

// Summarize агрегирует вердикты барбера по сетке слотов
func Summarize(barber *domain.Barber, date time.Time, slots []domain.TimeSlot, index *OccupancyIndex) DaySummary {
	verdicts := make([]domain.Verdict, len(slots))
	for i, slot := range slots {
		verdicts[i] = Resolve(barber, date, slot.Start, index)
	}
	return summarizeVerdicts(barber, date, slots, verdicts, index)
}

func summarizeVerdicts(
	barber *domain.Barber,
	date time.Time,
	slots []domain.TimeSlot,
	verdicts []domain.Verdict,
	index *OccupancyIndex,
) DaySummary {
	summary := DaySummary{
		BarberID:     barber.ID,
		IsWorkingDay: barber.Schedule.IsWorkingDay(date),
	}

	if exception := barber.Schedule.ExceptionFor(date); exception != nil {
		summary.HasException = true
		summary.ExceptionClosed = !exception.Active
	}

	owners := make(map[int64]struct{})
	for i, verdict := range verdicts {
		if !verdict.IsCandidate() {
			continue
		}
		summary.CandidateSlotCount++

		if verdict == domain.VerdictAvailable {
			summary.FreeSlotCount++
			continue
		}

		summary.BookedCount++
		if owner := index.OwnerOf(barber.ID, slots[i]); owner != nil {
			owners[owner.ID] = struct{}{}
		}
	}
	summary.AppointmentCount = len(owners)

	summary.IsAvailable = summary.IsWorkingDay &&
		!summary.ExceptionClosed &&
		summary.CandidateSlotCount > 0 &&
		summary.FreeSlotCount > 0

	summary.Label = domain.LabelUnavailable
	if summary.IsAvailable {
		summary.Label = domain.LabelAvailable
	}

	return summary
}
