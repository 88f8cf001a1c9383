package agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// Cell ячейка сетки (слот x барбер)
type Cell struct {
	Verdict domain.Verdict

	// Appointment заполняется только для занятых слотов
	Appointment    *domain.Appointment
	IsFirstSlot    bool // ячейка, в которой показываются клиент и услуга
	IsContinuation bool
	IsLastSlot     bool
}

// Column колонка барбера: ячейки в порядке Slots и сводка дня
type Column struct {
	Barber  *domain.Barber
	Cells   []Cell
	Summary DaySummary
}

// DayAgenda полностью пересчитанное состояние дня
type DayAgenda struct {
	Date          time.Time
	Slots         []domain.TimeSlot
	Columns       []Column
	VerdictCounts map[domain.Verdict]int
}

// BuildDay пересчитывает день целиком: сетка и индекс строятся один раз,
// затем вердикт для каждой пары (слот, барбер) и сводка по каждому барберу.
// Вызывается при смене даты, смене списка барберов и после изменения записей.
func BuildDay(
	date time.Time,
	now time.Time,
	hours ShopHours,
	barbers []*domain.Barber,
	appointments []*domain.Appointment,
) *DayAgenda {
	slots := GenerateSlots(date, now, hours)
	index := NewOccupancyIndex(appointments)

	day := &DayAgenda{
		Date:          date,
		Slots:         slots,
		Columns:       make([]Column, 0, len(barbers)),
		VerdictCounts: make(map[domain.Verdict]int),
	}

	for _, barber := range barbers {
		if barber == nil {
			continue
		}

		cells := make([]Cell, len(slots))
		verdicts := make([]domain.Verdict, len(slots))

		for i, slot := range slots {
			verdict := Resolve(barber, date, slot.Start, index)
			verdicts[i] = verdict
			day.VerdictCounts[verdict]++

			cell := Cell{Verdict: verdict}
			if verdict == domain.VerdictOccupied {
				var next *domain.TimeSlot
				if i+1 < len(slots) {
					next = &slots[i+1]
				}

				owner := index.OwnerOf(barber.ID, slot)
				cell.Appointment = owner
				cell.IsFirstSlot = index.IsFirstSlotOf(owner, slot)
				cell.IsContinuation = !cell.IsFirstSlot
				cell.IsLastSlot = index.IsLastSlotOf(owner, slot, next)
			}
			cells[i] = cell
		}

		day.Columns = append(day.Columns, Column{
			Barber:  barber,
			Cells:   cells,
			Summary: summarizeVerdicts(barber, date, slots, verdicts, index),
		})
	}

	return day
}

// Summaries сводки всех барберов в порядке колонок
func (d *DayAgenda) Summaries() []DaySummary {
	result := make([]DaySummary, len(d.Columns))
	for i, c := range d.Columns {
		result[i] = c.Summary
	}
	return result
}
