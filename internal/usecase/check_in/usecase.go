package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// UseCase use case заселения гостя.
//
// Заселение переводит бронирование confirmed → checked_in и помечает
// закреплённые номера операционным статусом occupied. Оба изменения
// атомарны: бронирование в статусе checked_in без занятых номеров
// существовать не должно.
type UseCase struct {
	reservationRepo ReservationRepository
	assignmentRepo  AssignmentRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	timeProvider    TimeProvider

	// allowEarlyCheckIn разрешает заселение раньше даты заезда
	allowEarlyCheckIn bool

	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	allowEarlyCheckIn bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		assignmentRepo:    assignmentRepo,
		roomRepo:          roomRepo,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		allowEarlyCheckIn: allowEarlyCheckIn,
		logger:            logger,
	}
}

// Execute выполняет use case заселения гостя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: id=%d, actor=%s", req.ReservationID, req.Actor)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	today := types.NewDateString(uc.timeProvider.Now())

	var (
		checkedIn   *domain.Reservation
		assignments []*domain.RoomAssignment
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем бронирование с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Переход допустим только из confirmed
		if !res.CanBeCheckedIn() {
			uc.logger.Warn("CheckIn: id=%d in status %s, cannot check in", res.ID, res.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, res.Status)
		}

		// 3. Политика раннего заезда
		if today.IsBefore(res.CheckInDate) && !uc.allowEarlyCheckIn {
			uc.logger.Warn("CheckIn: id=%d check-in date is %s, today is %s", res.ID, res.CheckInDate, today)
			return fmt.Errorf("%w: check-in date %s", ErrTooEarly, res.CheckInDate)
		}

		// 4. Назначения обязаны существовать с момента подтверждения
		assignments, err = uc.assignmentRepo.ListByReservation(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
		}
		if len(assignments) == 0 {
			uc.logger.Error("CheckIn: confirmed reservation id=%d has no assignments", res.ID)
			return ErrNoRoomsAssigned
		}

		// 5. Помечаем номера занятыми
		for _, a := range assignments {
			if err := uc.roomRepo.UpdateStatus(txCtx, a.RoomID, domain.RoomStatusOccupied); err != nil {
				return fmt.Errorf("%w: failed to mark room id=%d occupied: %v", ErrInternal, a.RoomID, err)
			}
		}

		// 6. Переход confirmed → checked_in
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusCheckedIn); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		res.Status = domain.StatusCheckedIn
		checkedIn = res
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrInvalidTransition) ||
			errors.Is(err, ErrTooEarly) || errors.Is(err, ErrNoRoomsAssigned) {
			return nil, err
		}
		uc.logger.Error("CheckIn: transaction failed for id=%d: %v", req.ReservationID, err)
		return nil, err
	}

	uc.logger.Info("CheckIn: id=%d checked in by actor=%s, rooms=%d", checkedIn.ID, req.Actor, len(assignments))

	return &Response{
		Reservation: models.FromDomainReservation(checkedIn, assignments),
	}, nil
}
