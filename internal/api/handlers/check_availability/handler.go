package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	checkAvailability "github.com/m04kA/SMC-BarberAgenda/internal/usecase/check_availability"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgMissingDate     = "дата обязательна"
	msgMissingTime     = "время обязательно"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeSlot = "время не совпадает с началом 30-минутного слота"
	msgBarberNotFound  = "барбер не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/availability
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем barberId из URL
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	query := r.URL.Query()
	dateStr, timeStr := query.Get("date"), query.Get("time")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if timeStr == "" {
		h.logger.Warn("GET /barbers/{id}/availability - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(middleware.OptionalUserID(r), barberID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidTimeFormat):
			h.logger.Warn("GET /barbers/{id}/availability - Invalid time: barber_id=%d, time=%q", barberID, timeStr)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, checkAvailability.ErrInvalidTimeSlot):
			h.logger.Warn("GET /barbers/{id}/availability - Invalid time slot: barber_id=%d, time=%q", barberID, timeStr)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, checkAvailability.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/availability - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/availability - Failed to check slot: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/availability - barber_id=%d, date=%s, time=%s, verdict=%s",
		barberID, dateStr, timeStr, result.Verdict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
