package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-BarberAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput         = "некорректные данные записи"
	msgBarberNotFound       = "барбер не найден"
	msgInvalidAppointmentDt = "дата записи в прошлом"
	msgTooLateToBook        = "слишком поздно для записи на этот слот"
	msgInvalidTimeSlot      = "время записи не совпадает с сеткой слотов"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgConcurrentUpdate     = "слот изменился параллельно, повторите запрос"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user_id=%d, barber_id=%d, date=%s, start=%s",
				userID, req.BarberID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrConcurrentUpdate):
			h.logger.Warn("POST /appointments - Concurrent update: user_id=%d, barber_id=%d, date=%s",
				userID, req.BarberID, req.Date)
			handlers.RespondRetryable(w, http.StatusConflict, msgConcurrentUpdate)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidAppointmentDt)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: user_id=%d, date=%s, start=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: user_id=%d, start=%s, duration=%d",
				userID, req.StartTime, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, barber_id=%d, error=%v",
				userID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, barber_id=%d",
		result.ID, userID, result.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
