package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/payments/models"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	return r, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) Record(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	recorded := *payment
	recorded.ID = int64(len(f.payments) + 1)
	f.payments = append(f.payments, &recorded)
	return &recorded, nil
}

func (f *fakePaymentRepo) ListByReservation(_ context.Context, reservationID int64) ([]*domain.Payment, error) {
	result := make([]*domain.Payment, 0)
	for _, p := range f.payments {
		if p.ReservationID == reservationID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) TotalPaid(_ context.Context, reservationID int64) (int64, error) {
	var total int64
	for _, p := range f.payments {
		if p.ReservationID == reservationID {
			total += p.Amount
		}
	}
	return total, nil
}

func reservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:                id,
		ReservationNumber: "RSV-20250826-TEST",
		GuestID:           1,
		CheckInDate:       types.DateString("2025-08-26"),
		CheckOutDate:      types.DateString("2025-08-29"),
		Adults:            2,
		Status:            status,
		BookingSource:     "phone",
	}
}

func newTestService(status domain.ReservationStatus) (*Service, *fakePaymentRepo) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		10: reservation(10, status),
	}}
	paymentRepo := &fakePaymentRepo{}
	return NewService(resRepo, paymentRepo, nopLogger{}), paymentRepo
}

func TestRecord_Success(t *testing.T) {
	s, repo := newTestService(domain.StatusCheckedIn)
	paidAt := time.Date(2025, 8, 27, 15, 30, 0, 0, time.UTC)

	resp, err := s.Record(context.Background(), 10, &models.RecordPaymentRequest{
		Amount:    7_000_000,
		Method:    "card",
		Reference: "txn-123",
		PaidAt:    &paidAt,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.ReservationID)
	assert.Equal(t, int64(7_000_000), resp.Amount)
	assert.Equal(t, "card", resp.Method)
	assert.Equal(t, paidAt, resp.PaidAt)

	require.Len(t, repo.payments, 1)
}

// PaidAt по умолчанию — момент регистрации
func TestRecord_DefaultPaidAt(t *testing.T) {
	s, _ := newTestService(domain.StatusConfirmed)
	before := time.Now()

	resp, err := s.Record(context.Background(), 10, &models.RecordPaymentRequest{
		Amount: 500_000,
		Method: "cash",
	})
	require.NoError(t, err)
	assert.False(t, resp.PaidAt.Before(before))
}

// Доплата после выезда допустима: мини-бар, поздний выезд
func TestRecord_AfterCheckOut(t *testing.T) {
	s, _ := newTestService(domain.StatusCheckedOut)

	_, err := s.Record(context.Background(), 10, &models.RecordPaymentRequest{
		Amount: 150_000,
		Method: "card",
	})
	require.NoError(t, err)
}

func TestRecord_CancelledReservation(t *testing.T) {
	s, repo := newTestService(domain.StatusCancelled)

	_, err := s.Record(context.Background(), 10, &models.RecordPaymentRequest{
		Amount: 500_000,
		Method: "cash",
	})
	assert.ErrorIs(t, err, ErrReservationClosed)
	assert.Empty(t, repo.payments)
}

func TestRecord_Validation(t *testing.T) {
	s, repo := newTestService(domain.StatusConfirmed)

	tests := []struct {
		name string
		req  *models.RecordPaymentRequest
	}{
		{name: "zero amount", req: &models.RecordPaymentRequest{Amount: 0, Method: "cash"}},
		{name: "negative amount", req: &models.RecordPaymentRequest{Amount: -100, Method: "cash"}},
		{name: "unknown method", req: &models.RecordPaymentRequest{Amount: 100, Method: "crypto"}},
		{name: "empty method", req: &models.RecordPaymentRequest{Amount: 100, Method: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Record(context.Background(), 10, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.payments)
}

func TestRecord_ReservationNotFound(t *testing.T) {
	s, _ := newTestService(domain.StatusConfirmed)

	_, err := s.Record(context.Background(), 404, &models.RecordPaymentRequest{
		Amount: 100,
		Method: "cash",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList(t *testing.T) {
	s, repo := newTestService(domain.StatusCheckedIn)
	repo.payments = []*domain.Payment{
		{ID: 1, ReservationID: 10, Amount: 3_000_000, Method: "card"},
		{ID: 2, ReservationID: 10, Amount: 4_000_000, Method: "cash"},
		{ID: 3, ReservationID: 99, Amount: 1_000_000, Method: "card"},
	}

	list, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3_000_000), list[0].Amount)
	assert.Equal(t, int64(4_000_000), list[1].Amount)

	_, err = s.List(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
