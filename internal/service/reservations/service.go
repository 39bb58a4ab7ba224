package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований.
// Переходы с побочными эффектами на номерах (confirm, check-in,
// check-out) живут в отдельных use case-ах.
type Service struct {
	reservationRepo         ReservationRepository
	assignmentRepo          AssignmentRepository
	txManager               TransactionManager
	timeProvider            TimeProvider
	cancellationCutoffHours int
	logger                  Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	cancellationCutoffHours int,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:         reservationRepo,
		assignmentRepo:          assignmentRepo,
		txManager:               txManager,
		timeProvider:            &RealTimeProvider{},
		cancellationCutoffHours: cancellationCutoffHours,
		logger:                  logger,
	}
}

// GetByID получает бронирование вместе с назначениями номеров
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.ListByReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list assignments for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list assignments: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, assignments), nil
}

// GetByNumber получает бронирование по человекочитаемому номеру
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByNumber: reservation number=%s not found", number)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		s.logger.Error("GetByNumber: failed to list assignments for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: GetByNumber - list assignments: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, assignments), nil
}

// Cancel отменяет бронирование с обязательной причиной.
//
// Отмена возможна только из pending и confirmed: заселённого гостя
// отменить нельзя ни при каких условиях. Политика cutoff дополнительно
// запрещает отмену, когда до полуночи даты заезда осталось меньше
// настроенного числа часов.
//
// Назначения номеров сохраняются для аудита; удержание снимается
// сменой статуса, отдельного освобождения не требуется.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	if req.Reason == "" {
		s.logger.Warn("Cancel: missing reason for reservation id=%d", reservationID)
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for reservation id=%d", reservationID)
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	if req.Actor == "" {
		s.logger.Warn("Cancel: missing actor for reservation id=%d", reservationID)
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	// Статус и отмена фиксируются атомарно: строка бронирования
	// блокируется на время транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, res.Status)
			return ErrCannotCancel
		}

		if err := s.checkCancellationWindow(res, now); err != nil {
			return err
		}

		if err := s.reservationRepo.Cancel(txCtx, reservationID, req.Reason, req.Actor); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrCannotCancel) ||
			errors.Is(err, ErrCancellationWindowClosed) {
			return nil, err
		}
		s.logger.Error("Cancel: transaction failed for reservation id=%d: %v", reservationID, err)
		return nil, err
	}

	s.logger.Info("Cancel: reservation id=%d cancelled by actor=%s", reservationID, req.Actor)

	return s.GetByID(ctx, reservationID)
}

// checkCancellationWindow проверяет политику cutoff: отмена запрещена,
// когда до полуночи даты заезда осталось меньше cutoff-окна
func (s *Service) checkCancellationWindow(res *domain.Reservation, now time.Time) error {
	if s.cancellationCutoffHours <= 0 {
		return nil
	}

	checkIn, err := res.CheckInDate.Time()
	if err != nil {
		return fmt.Errorf("%w: invalid check-in date %q: %v", ErrInternal, res.CheckInDate, err)
	}

	cutoff := checkIn.Add(-time.Duration(s.cancellationCutoffHours) * time.Hour)
	if !now.Before(cutoff) {
		s.logger.Warn("Cancel: cancellation window closed for reservation id=%d (check-in=%s, cutoff=%dh)",
			res.ID, res.CheckInDate, s.cancellationCutoffHours)
		return ErrCancellationWindowClosed
	}

	return nil
}
