package check_availability

import (
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Request модель запроса проверки одного слота барбера
type Request struct {
	UserID   int64            // ID пользователя (для логирования)
	BarberID int64            // ID барбера
	Date     time.Time        // Дата (без времени)
	Time     types.TimeString // Начало слота, "HH:MM"
}

// Response вердикт по слоту
type Response struct {
	BarberID    int64
	Date        time.Time
	Slot        domain.TimeSlot
	Verdict     domain.Verdict
	IsAvailable bool

	// InGrid = false, если слот не входит в сетку дня (вне окна работы или уже прошел)
	InGrid bool

	// Appointment заполняется для вердикта occupied
	Appointment *domain.Appointment
}
