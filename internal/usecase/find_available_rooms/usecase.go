package find_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// UseCase use case подбора доступных номеров на интервал проживания.
//
// Номер доступен, когда он активен, операционно пригоден (available) и
// ни одно удерживающее бронирование не пересекается с запрошенным
// полуоткрытым интервалом [checkIn, checkOut). Сужение интервала
// никогда не уменьшает результат: каждый номер, доступный на большом
// интервале, доступен и на любом его подинтервале.
type UseCase struct {
	roomRepo                  RoomRepository
	assignmentRepo            AssignmentRepository
	timeProvider              TimeProvider
	pendingBlocksAvailability bool
	logger                    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	assignmentRepo AssignmentRepository,
	pendingBlocksAvailability bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:                  roomRepo,
		assignmentRepo:            assignmentRepo,
		timeProvider:              &RealTimeProvider{},
		pendingBlocksAvailability: pendingBlocksAvailability,
		logger:                    logger,
	}
}

// Execute выполняет подбор доступных номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: checkIn=%s, checkOut=%s, guests=%d",
		req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	nights, err := req.CheckIn.DaysUntil(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute nights: %v", ErrInternal, err)
	}

	// 2. Пул кандидатов: активные номера в пригодном статусе
	// с достаточной вместимостью
	candidates, err := uc.roomRepo.ListBookable(ctx, req.Guests)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list bookable rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookable rooms: %v", ErrInternal, err)
	}

	// 3. Удержания, пересекающиеся с запрошенным интервалом
	holds, err := uc.assignmentRepo.ListHolds(ctx, domain.HoldFilter{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Statuses: uc.holdingStatuses(),
	})
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	heldRooms := heldRoomIDs(holds, req.CheckIn, req.CheckOut)

	// 4. Исключаем занятые номера из пула
	rooms := make([]*AvailableRoom, 0, len(candidates))
	for _, c := range candidates {
		if _, held := heldRooms[c.Room.ID]; held {
			continue
		}
		rooms = append(rooms, toAvailableRoom(c, nights))
	}

	uc.logger.Info("FindAvailableRooms: %d of %d candidate rooms available for [%s, %s)",
		len(rooms), len(candidates), req.CheckIn, req.CheckOut)

	return &Response{
		CheckIn:  req.CheckIn.String(),
		CheckOut: req.CheckOut.String(),
		Nights:   nights,
		Rooms:    rooms,
	}, nil
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

// heldRoomIDs собирает множество номеров, удерживаемых хотя бы одним
// пересекающимся бронированием. Пересечение перепроверяется в памяти,
// хотя фильтр в запросе уже отсёк непересекающиеся удержания.
func heldRoomIDs(holds []*domain.RoomHold, checkIn, checkOut types.DateString) map[int64]struct{} {
	held := make(map[int64]struct{}, len(holds))
	for _, h := range holds {
		if h.Overlaps(checkIn, checkOut) {
			held[h.RoomID] = struct{}{}
		}
	}
	return held
}

// toAvailableRoom конвертирует кандидата в элемент ответа
func toAvailableRoom(c *domain.BookableRoom, nights int) *AvailableRoom {
	return &AvailableRoom{
		RoomID:           c.Room.ID,
		Number:           c.Room.Number,
		Floor:            c.Room.Floor,
		RoomTypeID:       c.Type.ID,
		RoomTypeName:     c.Type.Name,
		MaxOccupancy:     c.Type.MaxOccupancy,
		SizeSqm:          c.Type.SizeSqm,
		Amenities:        c.Type.Amenities,
		BedConfiguration: c.Type.BedConfiguration,
		NightlyRate:      c.NightlyRate(),
		StayTotal:        c.NightlyRate() * int64(nights),
	}
}
