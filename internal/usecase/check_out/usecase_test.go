package check_out

import (
	"context"
	"errors"
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
}

func (f *fakeAssignmentRepo) ListByReservation(_ context.Context, reservationID int64) ([]*domain.RoomAssignment, error) {
	return f.assignments[reservationID], nil
}

type fakeRoomRepo struct {
	statuses map[int64]domain.RoomStatus
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[int64]domain.RoomStatus)
	}
	f.statuses[id] = status
	return nil
}

type fakePricingService struct {
	quote *domain.ReservationPricing
}

func (f *fakePricingService) QuoteByReservationID(_ context.Context, _ int64) (*domain.ReservationPricing, error) {
	return f.quote, nil
}

func checkedInReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:                id,
		ReservationNumber: "RSV-20250826-TEST",
		GuestID:           1,
		CheckInDate:       types.DateString("2025-08-26"),
		CheckOutDate:      types.DateString("2025-08-29"),
		Adults:            2,
		Status:            domain.StatusCheckedIn,
		BookingSource:     "phone",
	}
}

// Три ночи по 2 250 000 с налогом 11%: итог 7 492 500,
// оплачено 7 000 000 — долг 492 500 блокирует выселение
func TestExecute_BalanceDueBlocksCheckOut(t *testing.T) {
	resRepo := newFakeReservationRepo(checkedInReservation(10))
	roomRepo := &fakeRoomRepo{}
	pricing := &fakePricingService{quote: &domain.ReservationPricing{
		Subtotal:    6_750_000,
		Tax:         742_500,
		GrandTotal:  7_492_500,
		TotalPaid:   7_000_000,
		BalanceDue:  492_500,
		IsFullyPaid: false,
	}}

	uc := NewUseCase(resRepo, &fakeAssignmentRepo{}, roomRepo, pricing, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrPaymentRequired)

	var paymentErr *PaymentRequiredError
	require.True(t, errors.As(err, &paymentErr))
	assert.Equal(t, "RSV-20250826-TEST", paymentErr.ReservationNumber)
	assert.Equal(t, int64(492_500), paymentErr.BalanceDue)

	assert.Empty(t, resRepo.updated, "status must not change on rejected check-out")
	assert.Empty(t, roomRepo.statuses, "rooms must not be released on rejected check-out")
}

func TestExecute_FullyPaidChecksOut(t *testing.T) {
	resRepo := newFakeReservationRepo(checkedInReservation(10))
	assignRepo := &fakeAssignmentRepo{assignments: map[int64][]*domain.RoomAssignment{
		10: {
			{ID: 1, ReservationID: 10, RoomID: 1, Rate: 2_250_000},
			{ID: 2, ReservationID: 10, RoomID: 2, Rate: 1_500_000},
		},
	}}
	roomRepo := &fakeRoomRepo{}
	pricing := &fakePricingService{quote: &domain.ReservationPricing{
		Subtotal:    6_750_000,
		Tax:         742_500,
		GrandTotal:  7_492_500,
		TotalPaid:   7_492_500,
		BalanceDue:  0,
		IsFullyPaid: true,
	}}

	uc := NewUseCase(resRepo, assignRepo, roomRepo, pricing, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	assert.Equal(t, domain.StatusCheckedOut, resRepo.updated[10])
	assert.Equal(t, domain.RoomStatusAvailable, roomRepo.statuses[1])
	assert.Equal(t, domain.RoomStatusAvailable, roomRepo.statuses[2])

	assert.Equal(t, int64(6_750_000), resp.Pricing.Subtotal)
	assert.Equal(t, int64(742_500), resp.Pricing.Tax)
	assert.Equal(t, int64(7_492_500), resp.Pricing.GrandTotal)
	assert.Equal(t, int64(7_492_500), resp.Pricing.TotalPaid)
}

// Переплата не мешает выселению
func TestExecute_OverpaidChecksOut(t *testing.T) {
	resRepo := newFakeReservationRepo(checkedInReservation(10))
	pricing := &fakePricingService{quote: &domain.ReservationPricing{
		Subtotal:    6_750_000,
		Tax:         742_500,
		GrandTotal:  7_492_500,
		TotalPaid:   8_000_000,
		BalanceDue:  0,
		IsFullyPaid: true,
	}}

	uc := NewUseCase(resRepo, &fakeAssignmentRepo{}, &fakeRoomRepo{}, pricing, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, resRepo.updated[10])
}

func TestExecute_InvalidTransition(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := checkedInReservation(10)
			res.Status = status
			resRepo := newFakeReservationRepo(res)
			uc := NewUseCase(resRepo, &fakeAssignmentRepo{}, &fakeRoomRepo{}, &fakePricingService{}, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{ReservationID: 10, Actor: "42"})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(newFakeReservationRepo(), &fakeAssignmentRepo{}, &fakeRoomRepo{}, &fakePricingService{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404, Actor: "42"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
