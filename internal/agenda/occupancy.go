package agenda

import (
	"sort"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

// OccupancyIndex записи дня, сгруппированные по барберу и отсортированные по началу.
// Отмененные записи в индекс не попадают. Пересечения записей одного барбера не проверяются:
// при пересечении владельцем слота считается запись, начавшаяся раньше.
type OccupancyIndex struct {
	byBarber map[int64][]*domain.Appointment
	total    int
}

// NewOccupancyIndex строит индекс по записям дня
func NewOccupancyIndex(appointments []*domain.Appointment) *OccupancyIndex {
	idx := &OccupancyIndex{byBarber: make(map[int64][]*domain.Appointment)}

	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}
		idx.byBarber[a.BarberID] = append(idx.byBarber[a.BarberID], a)
		idx.total++
	}

	for _, list := range idx.byBarber {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StartMinutes() < list[j].StartMinutes()
		})
	}

	return idx
}

// Len количество записей в индексе
func (i *OccupancyIndex) Len() int {
	if i == nil {
		return 0
	}
	return i.total
}

// AppointmentsOf записи барбера в порядке начала
func (i *OccupancyIndex) AppointmentsOf(barberID int64) []*domain.Appointment {
	if i == nil {
		return nil
	}
	return i.byBarber[barberID]
}

// FirstOverlapping первая по началу запись барбера, пересекающая [start, end) в минутах суток.
// Ловит и записи вне 30-минутной сетки (например 11:15-11:45)
func (i *OccupancyIndex) FirstOverlapping(barberID int64, start, end int) *domain.Appointment {
	for _, a := range i.AppointmentsOf(barberID) {
		if a.StartMinutes() >= end {
			break
		}
		if a.Overlaps(start, end) {
			return a
		}
	}
	return nil
}

// OwnerOf возвращает запись барбера, интервал [start, end) которой содержит начало слота
func (i *OccupancyIndex) OwnerOf(barberID int64, slot domain.TimeSlot) *domain.Appointment {
	return i.ownerAt(barberID, slot.StartMinutes())
}

func (i *OccupancyIndex) ownerAt(barberID int64, minute int) *domain.Appointment {
	if i == nil || minute < 0 {
		return nil
	}
	for _, a := range i.byBarber[barberID] {
		if a.StartMinutes() > minute {
			break
		}
		if a.Contains(minute) {
			return a
		}
	}
	return nil
}

// IsFirstSlotOf true, если запись начинается ровно в начале слота (с точностью до минуты)
func (i *OccupancyIndex) IsFirstSlotOf(appt *domain.Appointment, slot domain.TimeSlot) bool {
	if appt == nil {
		return false
	}
	return appt.StartMinutes() == slot.StartMinutes()
}

// IsLastSlotOf true, если следующий слот существует и не занят той же записью.
// Используется только для отрисовки нижней границы многослотовой записи.
func (i *OccupancyIndex) IsLastSlotOf(appt *domain.Appointment, _ domain.TimeSlot, next *domain.TimeSlot) bool {
	if appt == nil || next == nil {
		return false
	}
	owner := i.OwnerOf(appt.BarberID, *next)
	return owner == nil || owner.ID != appt.ID
}
