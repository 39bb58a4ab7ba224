package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

// Service сервис инвентаря номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetByID получает номер вместе с данными типа
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	roomType, err := s.roomRepo.GetTypeByID(ctx, room.RoomTypeID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomTypeNotFound) {
			// Номер без типа — повреждение данных, но сам номер вернуть можно
			s.logger.Error("GetByID: room id=%d references missing room type id=%d", id, room.RoomTypeID)
			return models.FromDomainRoom(room), nil
		}
		s.logger.Error("GetByID: failed to get room type id=%d: %v", room.RoomTypeID, err)
		return nil, fmt.Errorf("%w: GetByID - room type error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomWithType(room, roomType), nil
}

// SetOperationalStatus меняет операционный статус номера.
//
// Единственный легальный способ вывести номер из пула бронирования вне
// жизненного цикла бронирований (уборка, ремонт, блокировка).
//
// Занятый номер (occupied) переводится в cleaning/maintenance только с
// явным force: подтверждение валидируется и аудируется на сервере,
// а не диалогом в интерфейсе.
func (s *Service) SetOperationalStatus(ctx context.Context, roomID int64, req *models.SetStatusRequest) (*models.RoomResponse, error) {
	if req.Actor == "" {
		s.logger.Warn("SetOperationalStatus: missing actor for room id=%d", roomID)
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	newStatus, err := domain.ParseRoomStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetOperationalStatus: invalid status=%q for room id=%d", req.Status, roomID)
		return nil, ErrInvalidStatus
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("SetOperationalStatus: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetOperationalStatus: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: SetOperationalStatus - repository error: %v", ErrInternal, err)
	}

	if requiresForce(room.Status, newStatus) && !req.Force {
		s.logger.Warn("SetOperationalStatus: room id=%d is occupied, refusing %s without force (actor=%s)",
			roomID, newStatus, req.Actor)
		return nil, ErrRoomOccupied
	}

	if err := s.roomRepo.UpdateStatus(ctx, roomID, newStatus); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetOperationalStatus: failed to update room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: SetOperationalStatus - update error: %v", ErrInternal, err)
	}

	// Аудитный след смены статуса: кто, что, с force или без
	s.logger.Info("SetOperationalStatus: room id=%d (%s) status %s -> %s by actor=%s force=%t",
		roomID, room.Number, room.Status, newStatus, req.Actor, req.Force)

	room.Status = newStatus
	return models.FromDomainRoom(room), nil
}

// requiresForce возвращает true для переходов, требующих явного подтверждения:
// у занятого номера живёт гость, уборка и ремонт в этот момент — осознанное решение
func requiresForce(current, next domain.RoomStatus) bool {
	if current != domain.RoomStatusOccupied {
		return false
	}
	return next == domain.RoomStatusMaintenance || next == domain.RoomStatusCleaning
}
