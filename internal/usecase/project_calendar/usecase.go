package project_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// UseCase use case проекции календаря занятости.
//
// Календарь — чтение без блокировок: он отражает снимок данных на момент
// запроса и не участвует в предотвращении двойных бронирований. Pending-брони
// в календарь не попадают никогда, независимо от политики доступности.
type UseCase struct {
	roomRepo       RoomRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, assignmentRepo AssignmentRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:       roomRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute выполняет проекцию календаря занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProjectCalendar: from=%s, to=%s, room=%v", req.From, req.To, req.RoomNumber)

	// 1. Валидация окна
	days, err := validateWindow(req)
	if err != nil {
		uc.logger.Warn("ProjectCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Строки календаря: активные номера, опционально один конкретный
	rooms, err := uc.roomRepo.ListActive(ctx, req.RoomNumber)
	if err != nil {
		uc.logger.Error("ProjectCalendar: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}
	if req.RoomNumber != nil && len(rooms) == 0 {
		uc.logger.Warn("ProjectCalendar: room number=%s not found", *req.RoomNumber)
		return nil, ErrRoomNotFound
	}

	// 3. Удержания окна: только confirmed и checked_in
	roomIDs := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}

	holds, err := uc.assignmentRepo.ListHolds(ctx, domain.HoldFilter{
		CheckIn:  req.From,
		CheckOut: req.To,
		Statuses: domain.HoldingStatuses,
		RoomIDs:  roomIDs,
	})
	if err != nil {
		uc.logger.Error("ProjectCalendar: failed to list holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	holdsByRoom := groupHoldsByRoom(holds)

	// 4. Построение полос по каждому номеру
	result := make([]*RoomCalendar, 0, len(rooms))
	for _, room := range rooms {
		spans, conflicts, err := buildRoomSpans(room.Number, days, req.From, holdsByRoom[room.ID])
		if err != nil {
			uc.logger.Error("ProjectCalendar: failed to build spans for room %s: %v", room.Number, err)
			return nil, fmt.Errorf("%w: failed to build spans: %v", ErrInternal, err)
		}

		// Конфликт занятости — ошибка данных, о которой нельзя молчать
		for _, c := range conflicts {
			uc.logger.Error("ProjectCalendar: occupancy conflict room=%s offset=%d winner=%d loser=%d",
				c.RoomNumber, c.DateOffset, c.WinnerID, c.LoserID)
		}

		result = append(result, toRoomCalendar(room, spans))
	}

	return &Response{
		From:  req.From.String(),
		To:    req.To.String(),
		Days:  days,
		Rooms: result,
	}, nil
}

// validateWindow проверяет окно календаря и возвращает его длину в днях
func validateWindow(req *Request) (int, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return 0, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if err := req.From.Validate(); err != nil {
		return 0, fmt.Errorf("%w: invalid from format: %v", ErrInvalidInput, err)
	}
	if err := req.To.Validate(); err != nil {
		return 0, fmt.Errorf("%w: invalid to format: %v", ErrInvalidInput, err)
	}

	if !req.From.IsBefore(req.To) {
		return 0, fmt.Errorf("%w: to must be after from", ErrInvalidDateRange)
	}

	days, err := req.From.DaysUntil(req.To)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if days > maxWindowDays {
		return 0, fmt.Errorf("%w: %d days, limit %d", ErrWindowTooLarge, days, maxWindowDays)
	}

	return days, nil
}

// toRoomCalendar конвертирует полосы в строку календаря
func toRoomCalendar(room *domain.Room, spans []domain.CalendarSpan) *RoomCalendar {
	rc := &RoomCalendar{
		RoomID: room.ID,
		Number: room.Number,
		Floor:  room.Floor,
		Spans:  make([]SpanResponse, 0, len(spans)),
	}

	for _, s := range spans {
		rc.Spans = append(rc.Spans, SpanResponse{
			StartOffset:   s.StartOffset,
			EndOffset:     s.EndOffset,
			Nights:        s.Nights(),
			ReservationID: s.ReservationID,
			Status:        string(s.Status),
		})
	}

	return rc
}
