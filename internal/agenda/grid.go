package agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// GenerateSlots генерирует упорядоченную сетку 30-минутных слотов на дату.
// Для сегодняшней даты (по календарю date) отбрасываются слоты, начало которых строго раньше now
// с точностью до минуты. Для других дат фильтр не применяется.
func GenerateSlots(date, now time.Time, hours ShopHours) []domain.TimeSlot {
	window, ok := hours.WindowFor(date.Weekday())
	if !ok {
		return []domain.TimeSlot{}
	}

	open, closing := window.Open.Minutes(), window.Close.Minutes()
	if open < 0 || closing < 0 {
		return []domain.TimeSlot{}
	}

	now = now.In(date.Location())
	today := IsSameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]domain.TimeSlot, 0, (closing-open)/domain.SlotDurationMinutes)
	for start := open; start+domain.SlotDurationMinutes <= closing; start += domain.SlotDurationMinutes {
		if today && start < nowMinutes {
			continue
		}

		startTS, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		endTS, err := types.NewTimeStringFromMinutes(start + domain.SlotDurationMinutes)
		if err != nil {
			break
		}

		slots = append(slots, domain.TimeSlot{
			Start:   startTS,
			End:     endTS,
			Display: startTS.Display(),
		})
	}

	return slots
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
