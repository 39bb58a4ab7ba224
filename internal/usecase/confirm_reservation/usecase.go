package confirm_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// UseCase use case подтверждения бронирования.
//
// Подтверждение — момент, когда бронирование начинает удерживать номера:
// с этого перехода пересекающиеся запросы доступности видят их занятыми.
// Если номера не были выбраны при создании, здесь автоматически
// закрепляется самый дешёвый подходящий по вместимости номер.
// Вся проверка и переход выполняются в сериализуемой транзакции:
// два конкурирующих подтверждения на один номер не могут пройти оба.
type UseCase struct {
	reservationRepo ReservationRepository
	assignmentRepo  AssignmentRepository
	roomRepo        RoomRepository
	txManager       TransactionManager

	// pendingBlocksAvailability учитывать ли чужие pending-брони
	// как удерживающие номер
	pendingBlocksAvailability bool

	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	pendingBlocksAvailability bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:           reservationRepo,
		assignmentRepo:            assignmentRepo,
		roomRepo:                  roomRepo,
		txManager:                 txManager,
		pendingBlocksAvailability: pendingBlocksAvailability,
		logger:                    logger,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmReservation: id=%d, actor=%s", req.ReservationID, req.Actor)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var (
		confirmed   *domain.Reservation
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

		// 2. Переход допустим только из pending
		if !res.CanBeConfirmed() {
			uc.logger.Warn("ConfirmReservation: id=%d in status %s, cannot confirm", res.ID, res.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, res.Status)
		}

		// 3. Назначения: проверяем существующие или подбираем номер
		assignments, err = uc.assignmentRepo.ListByReservation(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
		}

		if len(assignments) > 0 {
			if err := uc.verifyAssignedRoomsFree(txCtx, res, assignments); err != nil {
				return err
			}
		} else {
			a, err := uc.autoAssignRoom(txCtx, res)
			if err != nil {
				return err
			}
			assignments = append(assignments, a)
		}

		// 4. Переход pending → confirmed
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		res.Status = domain.StatusConfirmed
		confirmed = res
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrInvalidTransition) ||
			errors.Is(err, ErrRoomUnavailable) {
			return nil, err
		}
		uc.logger.Error("ConfirmReservation: transaction failed for id=%d: %v", req.ReservationID, err)
		return nil, err
	}

	uc.logger.Info("ConfirmReservation: id=%d confirmed by actor=%s, rooms=%d",
		confirmed.ID, req.Actor, len(assignments))

	return &Response{
		Reservation: models.FromDomainReservation(confirmed, assignments),
	}, nil
}

// verifyAssignedRoomsFree перепроверяет, что закреплённые при создании
// номера не были заняты другим бронированием, пока это было pending
func (uc *UseCase) verifyAssignedRoomsFree(ctx context.Context, res *domain.Reservation, assignments []*domain.RoomAssignment) error {
	roomIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		roomIDs = append(roomIDs, a.RoomID)
	}

	holds, err := uc.assignmentRepo.ListHolds(ctx, domain.HoldFilter{
		CheckIn:  res.CheckInDate,
		CheckOut: res.CheckOutDate,
		Statuses: uc.holdingStatuses(),
		RoomIDs:  roomIDs,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	for _, h := range holds {
		// Собственные назначения бронирования конфликтом не считаются
		if h.ReservationID == res.ID {
			continue
		}
		if h.Overlaps(res.CheckInDate, res.CheckOutDate) {
			uc.logger.Warn("ConfirmReservation: room id=%d taken by reservation id=%d while id=%d was pending",
				h.RoomID, h.ReservationID, res.ID)
			return fmt.Errorf("%w: room id=%d", ErrRoomUnavailable, h.RoomID)
		}
	}

	return nil
}

// autoAssignRoom подбирает самый дешёвый свободный номер, вмещающий
// всех гостей, и закрепляет его с текущим тарифом типа
func (uc *UseCase) autoAssignRoom(ctx context.Context, res *domain.Reservation) (*domain.RoomAssignment, error) {
	// ListBookable возвращает кандидатов по возрастанию цены
	candidates, err := uc.roomRepo.ListBookable(ctx, res.Guests())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bookable rooms: %v", ErrInternal, err)
	}
	if len(candidates) == 0 {
		uc.logger.Warn("ConfirmReservation: no bookable rooms for %d guest(s)", res.Guests())
		return nil, ErrRoomUnavailable
	}

	holds, err := uc.assignmentRepo.ListHolds(ctx, domain.HoldFilter{
		CheckIn:  res.CheckInDate,
		CheckOut: res.CheckOutDate,
		Statuses: uc.holdingStatuses(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	held := make(map[int64]struct{}, len(holds))
	for _, h := range holds {
		if h.ReservationID == res.ID {
			continue
		}
		if h.Overlaps(res.CheckInDate, res.CheckOutDate) {
			held[h.RoomID] = struct{}{}
		}
	}

	for _, c := range candidates {
		if _, taken := held[c.Room.ID]; taken {
			continue
		}

		a, err := uc.assignmentRepo.Create(ctx, &domain.RoomAssignment{
			ReservationID: res.ID,
			RoomID:        c.Room.ID,
			Rate:          c.NightlyRate(),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		uc.logger.Info("ConfirmReservation: auto-assigned room %s (id=%d) to reservation id=%d at rate=%d",
			c.Room.Number, c.Room.ID, res.ID, c.NightlyRate())
		return a, nil
	}

	uc.logger.Warn("ConfirmReservation: all %d candidate rooms held for [%s, %s)",
		len(candidates), res.CheckInDate, res.CheckOutDate)
	return nil, ErrRoomUnavailable
}

// holdingStatuses возвращает статусы, удерживающие номер, с учётом
// политики pending_blocks_availability
func (uc *UseCase) holdingStatuses() []domain.ReservationStatus {
	statuses := make([]domain.ReservationStatus, 0, len(domain.HoldingStatuses)+1)
	statuses = append(statuses, domain.HoldingStatuses...)
	if uc.pendingBlocksAvailability {
		statuses = append(statuses, domain.StatusPending)
	}
	return statuses
}
