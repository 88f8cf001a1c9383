package agenda

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Window операционное окно салона [Open, Close)
type Window struct {
	Open  types.TimeString
	Close types.TimeString
}

// ShopHours окна работы салона по дням недели.
// День без окна считается закрытым: сетка слотов для него пустая.
type ShopHours struct {
	windows map[time.Weekday]Window
}

// DefaultShopHours понедельник-среда 11:00-21:30 (последний слот 21:00),
// остальные дни 09:00-22:00 (последний слот 21:30)
func DefaultShopHours() ShopHours {
	short := Window{Open: "11:00", Close: "21:30"}
	long := Window{Open: "09:00", Close: "22:00"}

	return ShopHours{windows: map[time.Weekday]Window{
		time.Monday:    short,
		time.Tuesday:   short,
		time.Wednesday: short,
		time.Thursday:  long,
		time.Friday:    long,
		time.Saturday:  long,
		time.Sunday:    long,
	}}
}

// NewShopHours проверяет окна: валидный HH:MM, Open < Close, границы кратны длительности слота
func NewShopHours(windows map[time.Weekday]Window) (ShopHours, error) {
	result := make(map[time.Weekday]Window, len(windows))
	for day, w := range windows {
		if err := w.Open.Validate(); err != nil {
			return ShopHours{}, fmt.Errorf("%w: %s open: %w", ErrInvalidWindow, day, err)
		}
		if err := w.Close.Validate(); err != nil {
			return ShopHours{}, fmt.Errorf("%w: %s close: %w", ErrInvalidWindow, day, err)
		}
		if !w.Open.IsBefore(w.Close) {
			return ShopHours{}, fmt.Errorf("%w: %s open %s must be before close %s", ErrInvalidWindow, day, w.Open, w.Close)
		}
		if w.Open.Minutes()%domain.SlotDurationMinutes != 0 || w.Close.Minutes()%domain.SlotDurationMinutes != 0 {
			return ShopHours{}, fmt.Errorf("%w: %s window %s-%s is not aligned to %d minutes",
				ErrInvalidWindow, day, w.Open, w.Close, domain.SlotDurationMinutes)
		}
		result[day] = w
	}
	return ShopHours{windows: result}, nil
}

// WindowFor возвращает окно для дня недели
func (h ShopHours) WindowFor(day time.Weekday) (Window, bool) {
	w, ok := h.windows[day]
	return w, ok
}
