package get_day_agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	getDayAgenda "github.com/m04kA/SMC-BarberAgenda/internal/usecase/get_day_agenda"
	"github.com/m04kA/SMC-BarberAgenda/pkg/ptr"
)

// DayAgendaResponse HTTP response model
type DayAgendaResponse struct {
	Date          string         `json:"date"`
	Source        string         `json:"source"`
	Slots         []Slot         `json:"slots"`
	Barbers       []BarberColumn `json:"barbers"`
	VerdictCounts map[string]int `json:"verdictCounts"`
}

// Slot 30-минутный слот сетки
type Slot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

// BarberColumn колонка барбера: сводка дня и ячейки в порядке slots
type BarberColumn struct {
	BarberID          int64   `json:"barberId"`
	Name              string  `json:"name"`
	ScheduleIsDefault bool    `json:"scheduleIsDefault"`
	Summary           Summary `json:"summary"`
	Cells             []Cell  `json:"cells"`
}

// Summary сводка дня барбера
type Summary struct {
	IsWorkingDay       bool   `json:"isWorkingDay"`
	HasException       bool   `json:"hasException"`
	IsAvailable        bool   `json:"isAvailable"`
	CandidateSlotCount int    `json:"candidateSlotCount"`
	FreeSlotCount      int    `json:"freeSlotCount"`
	BookedCount        int    `json:"bookedCount"`
	AppointmentCount   int    `json:"appointmentCount"`
	Label              string `json:"label"`
}

// Cell ячейка сетки. Данные записи отдаются только в первом слоте записи.
type Cell struct {
	Start          string       `json:"start"`
	Verdict        string       `json:"verdict"`
	AppointmentID  *int64       `json:"appointmentId,omitempty"`
	Appointment    *Appointment `json:"appointment,omitempty"`
	IsFirstSlot    bool         `json:"isFirstSlot,omitempty"`
	IsContinuation bool         `json:"isContinuation,omitempty"`
	IsLastSlot     bool         `json:"isLastSlot,omitempty"`
}

// Appointment запись, занимающая слоты
type Appointment struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, dateStr string) (*getDayAgenda.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayAgenda.Request{
		UserID: userID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAgenda.Response) *DayAgendaResponse {
	day := resp.Agenda

	slots := make([]Slot, len(day.Slots))
	for i, s := range day.Slots {
		slots[i] = Slot{Start: s.Start.String(), End: s.End.String(), Display: s.Display}
	}

	barbers := make([]BarberColumn, len(day.Columns))
	for i, col := range day.Columns {
		barbers[i] = fromColumn(col, day.Slots)
	}

	counts := make(map[string]int, len(day.VerdictCounts))
	for verdict, n := range day.VerdictCounts {
		counts[verdict.String()] = n
	}

	return &DayAgendaResponse{
		Date:          day.Date.Format(domain.DateFormat),
		Source:        resp.Source,
		Slots:         slots,
		Barbers:       barbers,
		VerdictCounts: counts,
	}
}

func fromColumn(col agenda.Column, slots []domain.TimeSlot) BarberColumn {
	cells := make([]Cell, len(col.Cells))
	for i, c := range col.Cells {
		cell := Cell{
			Start:          slots[i].Start.String(),
			Verdict:        c.Verdict.String(),
			IsFirstSlot:    c.IsFirstSlot,
			IsContinuation: c.IsContinuation,
			IsLastSlot:     c.IsLastSlot,
		}
		if c.Appointment != nil {
			cell.AppointmentID = ptr.Ptr(c.Appointment.ID)
			if c.IsFirstSlot {
				cell.Appointment = fromAppointment(c.Appointment)
			}
		}
		cells[i] = cell
	}

	s := col.Summary
	return BarberColumn{
		BarberID:          col.Barber.ID,
		Name:              col.Barber.Name,
		ScheduleIsDefault: col.Barber.ScheduleIsDefault,
		Summary: Summary{
			IsWorkingDay:       s.IsWorkingDay,
			HasException:       s.HasException,
			IsAvailable:        s.IsAvailable,
			CandidateSlotCount: s.CandidateSlotCount,
			FreeSlotCount:      s.FreeSlotCount,
			BookedCount:        s.BookedCount,
			AppointmentCount:   s.AppointmentCount,
			Label:              s.Label,
		},
		Cells: cells,
	}
}

func fromAppointment(a *domain.Appointment) *Appointment {
	return &Appointment{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		StartTime:   a.StartTime.String(),
		EndTime:     a.EndTime.String(),
		Status:      string(a.Status),
	}
}
