package confirm_reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updated      map[int64]domain.ReservationStatus
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{
		reservations: make(map[int64]*domain.Reservation),
		updated:      make(map[int64]domain.ReservationStatus),
	}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.updated[id] = status
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[int64][]*domain.RoomAssignment
	holds       []*domain.RoomHold
	created     []*domain.RoomAssignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *domain.RoomAssignment) (*domain.RoomAssignment, error) {
	created := *a
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeAssignmentRepo) ListByReservation(_ context.Context, reservationID int64) ([]*domain.RoomAssignment, error) {
	return f.assignments[reservationID], nil
}

func (f *fakeAssignmentRepo) ListHolds(_ context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error) {
	statuses := make(map[domain.ReservationStatus]struct{}, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = struct{}{}
	}
	roomIDs := make(map[int64]struct{}, len(filter.RoomIDs))
	for _, id := range filter.RoomIDs {
		roomIDs[id] = struct{}{}
	}

	result := make([]*domain.RoomHold, 0)
	for _, h := range f.holds {
		if _, ok := statuses[h.Status]; !ok {
			continue
		}
		if len(roomIDs) > 0 {
			if _, ok := roomIDs[h.RoomID]; !ok {
				continue
			}
		}
		if h.Overlaps(filter.CheckIn, filter.CheckOut) {
			result = append(result, h)
		}
	}
	return result, nil
}

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

func pendingReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:                id,
		ReservationNumber: "RSV-20250826-TEST",
		GuestID:           1,
		CheckInDate:       types.DateString("2025-08-26"),
		CheckOutDate:      types.DateString("2025-08-29"),
		Adults:            2,
		Status:            domain.StatusPending,
		BookingSource:     "phone",
	}
}

func bookable(id int64, number string, price int64, occupancy int) *domain.BookableRoom {
	return &domain.BookableRoom{
		Room: domain.Room{ID: id, Number: number, RoomTypeID: 1, Status: domain.RoomStatusAvailable, IsActive: true},
		Type: domain.RoomType{ID: 1, Name: "Standard", BasePrice: price, MaxOccupancy: occupancy},
	}
}

func TestExecute_AutoAssignPicksCheapestFreeRoom(t *testing.T) {
	res := pendingReservation(10)
	resRepo := newFakeReservationRepo(res)
	// Кандидаты по возрастанию цены; самый дешёвый занят чужой бронью
	assignRepo := &fakeAssignmentRepo{
		assignments: map[int64][]*domain.RoomAssignment{},
		holds: []*domain.RoomHold{
			{ReservationID: 99, RoomID: 1, Status: domain.StatusConfirmed,
				CheckInDate: "2025-08-25", CheckOutDate: "2025-08-30"},
		},
	}
	roomRepo := &fakeRoomRepo{rooms: []*domain.BookableRoom{
		bookable(1, "101", 1_500_000, 2),
		bookable(2, "102", 2_250_000, 2),
		bookable(3, "201", 4_000_000, 4),
	}}

	uc := NewUseCase(resRepo, assignRepo, roomRepo, fakeTxManager{}, false, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	require.Len(t, assignRepo.created, 1)
	assert.Equal(t, int64(2), assignRepo.created[0].RoomID, "cheapest free room wins")
	assert.Equal(t, int64(2_250_000), assignRepo.created[0].Rate, "rate captured at assignment time")
	assert.Equal(t, domain.StatusConfirmed, resRepo.updated[10])
}

func TestExecute_AllRoomsHeld(t *testing.T) {
	res := pendingReservation(10)
	resRepo := newFakeReservationRepo(res)
	assignRepo := &fakeAssignmentRepo{
		assignments: map[int64][]*domain.RoomAssignment{},
		holds: []*domain.RoomHold{
			{ReservationID: 99, RoomID: 1, Status: domain.StatusCheckedIn,
				CheckInDate: "2025-08-26", CheckOutDate: "2025-08-29"},
		},
	}
	roomRepo := &fakeRoomRepo{rooms: []*domain.BookableRoom{bookable(1, "101", 1_500_000, 2)}}

	uc := NewUseCase(resRepo, assignRepo, roomRepo, fakeTxManager{}, false, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, assignRepo.created)
	assert.Empty(t, resRepo.updated)
}

func TestExecute_PreAssignedRoomTakenWhilePending(t *testing.T) {
	res := pendingReservation(10)
	resRepo := newFakeReservationRepo(res)
	assignRepo := &fakeAssignmentRepo{
		assignments: map[int64][]*domain.RoomAssignment{
			10: {{ID: 1, ReservationID: 10, RoomID: 1, Rate: 2_250_000}},
		},
		holds: []*domain.RoomHold{
			// Чужая бронь успела занять номер, пока наша была pending
			{ReservationID: 99, RoomID: 1, Status: domain.StatusConfirmed,
				CheckInDate: "2025-08-27", CheckOutDate: "2025-08-30"},
		},
	}

	uc := NewUseCase(resRepo, assignRepo, &fakeRoomRepo{}, fakeTxManager{}, false, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, resRepo.updated)
}

func TestExecute_OwnHoldsAreSkipped(t *testing.T) {
	res := pendingReservation(10)
	resRepo := newFakeReservationRepo(res)
	assignRepo := &fakeAssignmentRepo{
		assignments: map[int64][]*domain.RoomAssignment{
			10: {{ID: 1, ReservationID: 10, RoomID: 1, Rate: 2_250_000}},
		},
		holds: []*domain.RoomHold{
			// Единственное пересекающееся удержание — собственное назначение
			{ReservationID: 10, RoomID: 1, Status: domain.StatusConfirmed,
				CheckInDate: "2025-08-26", CheckOutDate: "2025-08-29"},
		},
	}

	uc := NewUseCase(resRepo, assignRepo, &fakeRoomRepo{}, fakeTxManager{}, false, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, domain.StatusConfirmed, resRepo.updated[10])
}

func TestExecute_InvalidTransition(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := pendingReservation(10)
			res.Status = status
			resRepo := newFakeReservationRepo(res)
			uc := NewUseCase(resRepo, &fakeAssignmentRepo{}, &fakeRoomRepo{}, fakeTxManager{}, false, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(newFakeReservationRepo(), &fakeAssignmentRepo{}, &fakeRoomRepo{}, fakeTxManager{}, false, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404, Actor: "42"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(newFakeReservationRepo(), &fakeAssignmentRepo{}, &fakeRoomRepo{}, fakeTxManager{}, false, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 0, Actor: "42"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: 1, Actor: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
