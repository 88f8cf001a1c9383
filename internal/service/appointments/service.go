package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberAgenda/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberAgenda/internal/service/appointments/models"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"

	actionCancel = "cancel"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	cache           AppointmentCache // nil, если Redis отключен
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей.
// cache может быть nil: тогда записи всегда читаются из БД.
func NewService(
	appointmentRepo AppointmentRepository,
	cache AppointmentCache,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetDay возвращает неотмененные записи на дату.
// Сначала читается снимок из кэша, при промахе записи загружаются из БД и кэшируются.
// Ошибки кэша не прерывают запрос: записи читаются из БД напрямую.
func (s *Service) GetDay(ctx context.Context, date time.Time) (*models.DayAppointments, error) {
	var version int64
	cacheUsable := s.cache != nil

	// 1. Пытаемся прочитать снимок из кэша
	if cacheUsable {
		snapshot, err := s.cache.Lookup(ctx, date)
		switch {
		case err != nil:
			s.metrics.IncCache(cacheError)
			s.logger.Warn("GetDay: cache lookup failed for date=%s, falling back to database: %v",
				date.Format(domain.DateFormat), err)
			cacheUsable = false
		case snapshot.Hit:
			s.metrics.IncCache(cacheHit)
			return &models.DayAppointments{Appointments: snapshot.Appointments, Source: models.SourceCache}, nil
		default:
			s.metrics.IncCache(cacheMiss)
			version = snapshot.Version
		}
	}

	// 2. Читаем записи из БД
	appts, err := s.appointmentRepo.GetActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDay: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	// 3. Сохраняем снимок под версией, прочитанной до запроса в БД
	if cacheUsable {
		if err := s.cache.Store(ctx, date, version, appts); err != nil {
			s.logger.Warn("GetDay: failed to store snapshot for date=%s: %v", date.Format(domain.DateFormat), err)
		}
	}

	return &models.DayAppointments{Appointments: appts, Source: models.SourceDatabase}, nil
}

// InvalidateDay сбрасывает снимок записей даты. Ошибка кэша только логируется:
// снимок в любом случае истечет по TTL.
func (s *Service) InvalidateDay(ctx context.Context, date time.Time) {
	if s.cache == nil {
		return
	}

	version, err := s.cache.Bump(ctx, date)
	if err != nil {
		s.logger.Warn("InvalidateDay: failed to bump refresh counter for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return
	}

	s.logger.Info("InvalidateDay: date=%s refresh counter=%d", date.Format(domain.DateFormat), version)
}

// Cancel отменяет запись. Отменить можно только запись в статусе Pendiente или Confirmada.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", req.AppointmentID, req.UserID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	var cancelled *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем запись с блокировкой строки
		appt, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// 2. Проверяем, можно ли отменить запись
		if !appt.CanBeCancelled() {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, appt.Status)
		}

		// 3. Меняем статус
		if err := s.appointmentRepo.UpdateStatus(ctx, appt.ID, domain.StatusCancelled); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusCancelled
		cancelled = appt
		return nil
	})
	if err != nil {
		s.metrics.IncAppointment(actionCancel, outcomeOf(err))
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: appointment id=%d: %v", req.AppointmentID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("Cancel: appointment id=%d: %v", req.AppointmentID, err)
			return nil, err
		default:
			s.logger.Error("Cancel: transaction failed for appointment id=%d: %v", req.AppointmentID, err)
			return nil, fmt.Errorf("%w: Cancel - transaction error: %v", ErrInternal, err)
		}
	}

	// 4. После коммита сбрасываем снимок дня
	s.InvalidateDay(ctx, cancelled.Date)
	s.metrics.IncAppointment(actionCancel, "ok")

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", cancelled.ID)
	return models.FromDomainAppointment(cancelled), nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		return "not_found"
	case errors.Is(err, ErrCannotCancel):
		return "rejected"
	default:
		return "error"
	}
}
