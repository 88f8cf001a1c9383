package get_barber_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgBarberNotFound  = "барбер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/schedule
// Публичный endpoint - без авторизации.
// Если расписание отсутствует или повреждено, возвращается расписание по умолчанию с isDefault=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем barberId из URL
	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /barbers/{id}/schedule - Invalid barber ID: %q", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.Get(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/schedule - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		default:
			h.logger.Error("GET /barbers/{id}/schedule - Failed to get schedule: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/schedule - Schedule retrieved successfully: barber_id=%d, default=%t",
		barberID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
