package update_barber_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/schedule"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingWorkingDays = "рабочие дни обязательны"
	msgInvalidSchedule    = "некорректное расписание"
	msgBarberNotFound     = "барбер не найден"
	msgUnauthorized       = "требуется авторизация"
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

// Handle PUT /api/v1/barbers/{barberId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbers/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем barberId из URL
	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid barber ID: %q", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Декодируем body
	var req UpdateBarberScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(req.WorkingDays) == 0 {
		h.logger.Warn("PUT /barbers/{id}/schedule - Empty working days: barber_id=%d", barberID)
		handlers.RespondBadRequest(w, msgMissingWorkingDays)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, barberID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid schedule: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule+": "+err.Error())

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("PUT /barbers/{id}/schedule - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("PUT /barbers/{id}/schedule - Failed to update schedule: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id}/schedule - Schedule updated successfully: barber_id=%d, user_id=%d",
		barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
