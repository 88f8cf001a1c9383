package get_day_agenda

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
)

// Request модель запроса агенды дня
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	Date   time.Time // Дата агенды (без времени, в часовом поясе барбершопа)
}

// Response полностью пересчитанная агенда дня
type Response struct {
	Agenda *agenda.DayAgenda
	Source string // откуда получены записи: cache или database
}
