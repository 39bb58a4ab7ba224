package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/integrations/guestregistry"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// maxNumberRetries число попыток при коллизии номера бронирования
const maxNumberRetries = 3

// UseCase use case создания бронирования.
//
// Бронирование создаётся в статусе pending. Номера можно выбрать сразу
// (walk-in, телефон) — тогда тариф фиксируется в момент создания, а
// доступность перепроверяется в сериализуемой транзакции. Без выбора
// номеров назначение откладывается до подтверждения.
type UseCase struct {
	reservationRepo ReservationRepository
	assignmentRepo  AssignmentRepository
	roomRepo        RoomRepository
	guestClient     GuestRegistryClient
	txManager       TransactionManager
	timeProvider    TimeProvider

	// pendingBlocksAvailability учитывать ли чужие pending-брони
	// как удерживающие номер при проверке доступности
	pendingBlocksAvailability bool

	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	roomRepo RoomRepository,
	guestClient GuestRegistryClient,
	txManager TransactionManager,
	pendingBlocksAvailability bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:           reservationRepo,
		assignmentRepo:            assignmentRepo,
		roomRepo:                  roomRepo,
		guestClient:               guestClient,
		txManager:                 txManager,
		timeProvider:              &RealTimeProvider{},
		pendingBlocksAvailability: pendingBlocksAvailability,
		logger:                    logger,
	}
}

// Execute выполняет use case создания бронирования.
// Работа с БД идёт в сериализуемой транзакции для предотвращения гонки данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: guest=%d, checkIn=%s, checkOut=%s, adults=%d, children=%d, rooms=%v",
		req.GuestID, req.CheckIn, req.CheckOut, req.Adults, req.Children, req.RoomIDs)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Профиль гостя из внешнего реестра (graceful degradation:
	// недоступность реестра не блокирует создание бронирования)
	guestDegraded := false
	guest, err := uc.guestClient.GetGuestWithGracefulDegradation(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guestregistry.ErrGuestNotFound) {
			uc.logger.Warn("CreateReservation: guest id=%d not found in registry", req.GuestID)
			return nil, ErrGuestNotFound
		}
		guestDegraded = true
	} else {
		uc.logger.Info("CreateReservation: guest id=%d verified, vip=%t", req.GuestID, guest.IsVIP)
	}

	var (
		created     *domain.Reservation
		assignments []*domain.RoomAssignment
	)

	// 3. Создание бронирования и назначений в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		assignments = assignments[:0]

		// 3.1. Предвыбранные номера: проверяем пригодность, вместимость
		// и доступность с блокировкой пересекающихся бронирований
		var rates map[int64]int64
		if len(req.RoomIDs) > 0 {
			var err error
			rates, err = uc.validateSelectedRooms(txCtx, req)
			if err != nil {
				return err
			}
		}

		// 3.2. Создаем бронирование, при коллизии номера пробуем еще раз
		res, err := uc.createWithFreshNumber(txCtx, req)
		if err != nil {
			return err
		}

		// 3.3. Фиксируем назначения с тарифом на момент создания
		for _, roomID := range req.RoomIDs {
			a, err := uc.assignmentRepo.Create(txCtx, &domain.RoomAssignment{
				ReservationID: res.ID,
				RoomID:        roomID,
				Rate:          rates[roomID],
			})
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create assignment for room id=%d: %v", roomID, err)
				return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
			}
			assignments = append(assignments, a)
		}

		created = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d number=%s",
		created.ID, created.ReservationNumber)

	return &Response{
		Reservation:   models.FromDomainReservation(created, assignments),
		GuestDegraded: guestDegraded,
	}, nil
}

// validateSelectedRooms проверяет предвыбранные номера и возвращает
// карту roomID → тариф за ночь. Вызывается внутри транзакции:
// пересекающиеся бронирования блокируются FOR UPDATE.
func (uc *UseCase) validateSelectedRooms(ctx context.Context, req *Request) (map[int64]int64, error) {
	rates := make(map[int64]int64, len(req.RoomIDs))
	totalCapacity := 0

	for _, roomID := range req.RoomIDs {
		room, err := uc.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%d not found", roomID)
				return nil, fmt.Errorf("%w: room id=%d", ErrRoomNotFound, roomID)
			}
			uc.logger.Error("CreateReservation: failed to get room id=%d: %v", roomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsActive || !room.Status.IsBookable() {
			uc.logger.Warn("CreateReservation: room id=%d is not bookable (active=%t, status=%s)",
				roomID, room.IsActive, room.Status)
			return nil, fmt.Errorf("%w: room %s", ErrRoomNotBookable, room.Number)
		}

		roomType, err := uc.roomRepo.GetTypeByID(ctx, room.RoomTypeID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get room type id=%d: %v", room.RoomTypeID, err)
			return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
		}

		rates[roomID] = roomType.BasePrice
		totalCapacity += roomType.MaxOccupancy
	}

	if err := validateCapacity(totalCapacity, req.Adults+req.Children); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	// Проверка удержаний по выбранным номерам
	holds, err := uc.assignmentRepo.ListHolds(ctx, domain.HoldFilter{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Statuses: uc.holdingStatuses(),
		RoomIDs:  req.RoomIDs,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	for _, h := range holds {
		if h.Overlaps(req.CheckIn, req.CheckOut) {
			uc.logger.Warn("CreateReservation: room id=%d held by reservation id=%d for [%s, %s)",
				h.RoomID, h.ReservationID, h.CheckInDate, h.CheckOutDate)
			return nil, fmt.Errorf("%w: room id=%d", ErrRoomUnavailable, h.RoomID)
		}
	}

	return rates, nil
}

// createWithFreshNumber создает бронирование, перегенерируя номер
// при коллизии уникального ограничения
func (uc *UseCase) createWithFreshNumber(ctx context.Context, req *Request) (*domain.Reservation, error) {
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		number, err := generateReservationNumber(uc.timeProvider.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		res, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
			ReservationNumber: number,
			GuestID:           req.GuestID,
			CheckInDate:       req.CheckIn,
			CheckOutDate:      req.CheckOut,
			Adults:            req.Adults,
			Children:          req.Children,
			Status:            domain.StatusPending,
			BookingSource:     req.BookingSource,
			SpecialRequests:   req.SpecialRequests,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicateNumber) {
				uc.logger.Warn("CreateReservation: reservation number %s collided, retrying", number)
				continue
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return res, nil
	}

	uc.logger.Error("CreateReservation: exhausted %d attempts to generate unique number", maxNumberRetries)
	return nil, fmt.Errorf("%w: failed to generate unique reservation number", ErrInternal)
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
