package get_day_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBarberID = "некорректный ID барбера"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (required, YYYY-MM-DD), barberId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var barberID int64
	if raw := query.Get("barberId"); raw != "" {
		barberID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || barberID <= 0 {
			h.logger.Warn("GET /appointments - Invalid barber ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
	}

	day, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to get appointments: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromServiceResponse(dateStr, barberID, day)

	h.logger.Info("GET /appointments - Appointments retrieved successfully: date=%s, barber_id=%d, total=%d, source=%s",
		dateStr, barberID, response.Total, response.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
