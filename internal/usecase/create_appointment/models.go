package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID          int64            // ID пользователя, создающего запись
	BarberID        int64            // ID барбера
	ClientName      string           // Имя клиента
	ServiceName     string           // Название услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала, "HH:MM"
	DurationMinutes int              // Длительность, кратна 30 минутам
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	BarberID        int64
	ClientName      string
	ServiceName     string
	Date            time.Time
	StartTime       types.ClockTime // "HH:MM:SS"
	EndTime         types.ClockTime // "HH:MM:SS"
	DurationMinutes int
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}
