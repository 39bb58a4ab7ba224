package find_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRoomRepo struct {
	rooms []*domain.BookableRoom
}

func (f *fakeRoomRepo) ListBookable(_ context.Context, minOccupancy int) ([]*domain.BookableRoom, error) {
	result := make([]*domain.BookableRoom, 0)
	for _, r := range f.rooms {
		if r.Type.MaxOccupancy >= minOccupancy {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeAssignmentRepo struct {
	holds []*domain.RoomHold
}

func (f *fakeAssignmentRepo) ListHolds(_ context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error) {
	statuses := make(map[domain.ReservationStatus]struct{}, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = struct{}{}
	}

	result := make([]*domain.RoomHold, 0)
	for _, h := range f.holds {
		if _, ok := statuses[h.Status]; !ok {
			continue
		}
		if h.Overlaps(filter.CheckIn, filter.CheckOut) {
			result = append(result, h)
		}
	}
	return result, nil
}

func bookable(id int64, number string, price int64, occupancy int) *domain.BookableRoom {
	return &domain.BookableRoom{
		Room: domain.Room{ID: id, Number: number, RoomTypeID: 1, Status: domain.RoomStatusAvailable, IsActive: true},
		Type: domain.RoomType{ID: 1, Name: "Standard", BasePrice: price, MaxOccupancy: occupancy},
	}
}

func hold(roomID, reservationID int64, status domain.ReservationStatus, checkIn, checkOut string) *domain.RoomHold {
	return &domain.RoomHold{
		ReservationID: reservationID,
		RoomID:        roomID,
		Status:        status,
		CheckInDate:   types.DateString(checkIn),
		CheckOutDate:  types.DateString(checkOut),
	}
}

func newTestUseCase(rooms *fakeRoomRepo, holds *fakeAssignmentRepo, pendingBlocks bool) *UseCase {
	uc := NewUseCase(rooms, holds, pendingBlocks, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

// Номер 101 занят подтверждённым бронированием на [2025-08-26, 2025-08-29)
func TestExecute_ConfirmedHoldExcludesRoom(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.BookableRoom{bookable(101, "101", 2_250_000, 2)}}
	holds := &fakeAssignmentRepo{holds: []*domain.RoomHold{
		hold(101, 1, domain.StatusConfirmed, "2025-08-26", "2025-08-29"),
	}}
	uc := newTestUseCase(rooms, holds, false)

	// Пересечение по ночам 27 и 28 — номер занят
	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-08-27"),
		CheckOut: types.DateString("2025-08-30"),
		Guests:   2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)

	// Заезд в день чужого выезда — номер свободен
	resp, err = uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-08-29"),
		CheckOut: types.DateString("2025-08-31"),
		Guests:   2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "101", resp.Rooms[0].Number)
	assert.Equal(t, int64(2_250_000), resp.Rooms[0].NightlyRate)
	assert.Equal(t, int64(4_500_000), resp.Rooms[0].StayTotal)
}

func TestExecute_PendingHoldRespectsPolicy(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.BookableRoom{bookable(101, "101", 2_250_000, 2)}}
	holds := &fakeAssignmentRepo{holds: []*domain.RoomHold{
		hold(101, 1, domain.StatusPending, "2025-08-26", "2025-08-29"),
	}}

	req := &Request{
		CheckIn:  types.DateString("2025-08-26"),
		CheckOut: types.DateString("2025-08-29"),
		Guests:   2,
	}

	// По умолчанию pending номер не удерживает
	uc := newTestUseCase(rooms, holds, false)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 1)

	// С включённой политикой — удерживает
	uc = newTestUseCase(rooms, holds, true)
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_TerminalStatusesDoNotHold(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.BookableRoom{bookable(101, "101", 2_250_000, 2)}}
	holds := &fakeAssignmentRepo{holds: []*domain.RoomHold{
		hold(101, 1, domain.StatusCancelled, "2025-08-26", "2025-08-29"),
		hold(101, 2, domain.StatusCheckedOut, "2025-08-26", "2025-08-29"),
	}}
	uc := newTestUseCase(rooms, holds, false)

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-08-26"),
		CheckOut: types.DateString("2025-08-29"),
		Guests:   2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 1)
}

// Сужение интервала никогда не уменьшает множество доступных номеров
func TestExecute_NarrowingIsMonotone(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.BookableRoom{
		bookable(101, "101", 2_250_000, 2),
		bookable(102, "102", 1_500_000, 2),
	}}
	holds := &fakeAssignmentRepo{holds: []*domain.RoomHold{
		hold(102, 7, domain.StatusCheckedIn, "2025-09-03", "2025-09-05"),
	}}
	uc := newTestUseCase(rooms, holds, false)

	wide, err := uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-09-01"),
		CheckOut: types.DateString("2025-09-10"),
		Guests:   2,
	})
	require.NoError(t, err)

	narrow, err := uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-09-05"),
		CheckOut: types.DateString("2025-09-07"),
		Guests:   2,
	})
	require.NoError(t, err)

	wideNumbers := make(map[string]struct{})
	for _, r := range wide.Rooms {
		wideNumbers[r.Number] = struct{}{}
	}
	for number := range wideNumbers {
		found := false
		for _, r := range narrow.Rooms {
			if r.Number == number {
				found = true
				break
			}
		}
		assert.True(t, found, "room %s available on wide interval must stay available on its subinterval", number)
	}
}

func TestExecute_OccupancyFilter(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.BookableRoom{
		bookable(101, "101", 2_250_000, 2),
		bookable(201, "201", 4_000_000, 4),
	}}
	uc := newTestUseCase(rooms, &fakeAssignmentRepo{}, false)

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  types.DateString("2025-08-26"),
		CheckOut: types.DateString("2025-08-29"),
		Guests:   3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "201", resp.Rooms[0].Number)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeAssignmentRepo{}, false)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "checkout before checkin",
			req:     &Request{CheckIn: "2025-08-29", CheckOut: "2025-08-26", Guests: 1},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "zero nights",
			req:     &Request{CheckIn: "2025-08-26", CheckOut: "2025-08-26", Guests: 1},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "check-in in the past",
			req:     &Request{CheckIn: "2025-07-20", CheckOut: "2025-07-22", Guests: 1},
			wantErr: ErrDateInPast,
		},
		{
			name:    "zero guests",
			req:     &Request{CheckIn: "2025-08-26", CheckOut: "2025-08-29", Guests: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed date",
			req:     &Request{CheckIn: "26.08.2025", CheckOut: "2025-08-29", Guests: 1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
