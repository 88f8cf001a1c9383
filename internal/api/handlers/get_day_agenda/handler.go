package get_day_agenda

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	getDayAgenda "github.com/m04kA/SMC-BarberAgenda/internal/usecase/get_day_agenda"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(middleware.OptionalUserID(r), dateStr)
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayAgenda.ErrInvalidInput):
			h.logger.Warn("GET /agenda - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /agenda - Failed to build agenda: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /agenda - Agenda built successfully: date=%s, slots=%d, barbers=%d, source=%s",
		dateStr, len(response.Slots), len(response.Barbers), result.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
