package create_reservation

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomStorage "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/integrations/guestregistry"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	nextID     int64
	created    []*domain.Reservation
	duplicates int // Число первых попыток Create, завершающихся коллизией номера
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.duplicates > 0 {
		f.duplicates--
		return nil, reservationStorage.ErrDuplicateNumber
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeAssignmentRepo struct {
	holds   []*domain.RoomHold
	created []*domain.RoomAssignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *domain.RoomAssignment) (*domain.RoomAssignment, error) {
	created := *a
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
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
	rooms map[int64]*domain.Room
	types map[int64]*domain.RoomType
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomStorage.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeRoomRepo) GetTypeByID(_ context.Context, id int64) (*domain.RoomType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, roomStorage.ErrRoomTypeNotFound
	}
	return t, nil
}

type fakeGuestClient struct {
	guests   map[int64]*guestregistry.Guest
	degraded bool
}

func (f *fakeGuestClient) GetGuestWithGracefulDegradation(_ context.Context, guestID int64) (*guestregistry.Guest, error) {
	if f.degraded {
		return nil, guestregistry.ErrServiceDegraded
	}
	g, ok := f.guests[guestID]
	if !ok {
		return nil, guestregistry.ErrGuestNotFound
	}
	return g, nil
}

func validRequest() *Request {
	return &Request{
		GuestID:       1,
		CheckIn:       types.DateString("2025-08-26"),
		CheckOut:      types.DateString("2025-08-29"),
		Adults:        2,
		BookingSource: "phone",
	}
}

type fixture struct {
	resRepo    *fakeReservationRepo
	assignRepo *fakeAssignmentRepo
	roomRepo   *fakeRoomRepo
	guests     *fakeGuestClient
}

func newFixture() *fixture {
	return &fixture{
		resRepo:    &fakeReservationRepo{},
		assignRepo: &fakeAssignmentRepo{},
		roomRepo: &fakeRoomRepo{
			rooms: map[int64]*domain.Room{
				1: {ID: 1, Number: "101", RoomTypeID: 1, Status: domain.RoomStatusAvailable, IsActive: true},
				2: {ID: 2, Number: "102", RoomTypeID: 1, Status: domain.RoomStatusAvailable, IsActive: true},
			},
			types: map[int64]*domain.RoomType{
				1: {ID: 1, Name: "Standard", BasePrice: 2_250_000, MaxOccupancy: 2},
			},
		},
		guests: &fakeGuestClient{guests: map[int64]*guestregistry.Guest{
			1: {ID: 1, FirstName: "Иван", LastName: "Иванов"},
		}},
	}
}

func (f *fixture) useCase(pendingBlocks bool) *UseCase {
	uc := NewUseCase(f.resRepo, f.assignRepo, f.roomRepo, f.guests, fakeTxManager{}, pendingBlocks, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_WithoutRoomSelection(t *testing.T) {
	f := newFixture()
	uc := f.useCase(false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	assert.Equal(t, string(domain.StatusPending), resp.Reservation.Status)
	assert.False(t, resp.GuestDegraded)
	assert.Empty(t, f.assignRepo.created, "assignment deferred until confirmation")

	require.Len(t, f.resRepo.created, 1)
	number := f.resRepo.created[0].ReservationNumber
	assert.Regexp(t, regexp.MustCompile(`^RSV-20250820-[2-9A-HJ-NP-Z]{4}$`), number)
	assert.NotContains(t, number[len(number)-4:], "0")
	assert.NotContains(t, number[len(number)-4:], "O")
}

func TestExecute_WithSelectedRoomsCapturesRate(t *testing.T) {
	f := newFixture()
	uc := f.useCase(false)

	req := validRequest()
	req.Adults = 2
	req.Children = 1
	req.RoomIDs = []int64{1, 2}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	require.Len(t, f.assignRepo.created, 2)
	for _, a := range f.assignRepo.created {
		assert.Equal(t, int64(2_250_000), a.Rate, "rate captured at creation time")
	}
}

func TestExecute_SelectedRoomHeld(t *testing.T) {
	f := newFixture()
	f.assignRepo.holds = []*domain.RoomHold{
		{ReservationID: 99, RoomID: 1, Status: domain.StatusConfirmed,
			CheckInDate: "2025-08-27", CheckOutDate: "2025-08-30"},
	}
	uc := f.useCase(false)

	req := validRequest()
	req.RoomIDs = []int64{1}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, f.resRepo.created)
}

// Заезд в день чужого выезда допустим
func TestExecute_BackToBackStayAllowed(t *testing.T) {
	f := newFixture()
	f.assignRepo.holds = []*domain.RoomHold{
		{ReservationID: 99, RoomID: 1, Status: domain.StatusConfirmed,
			CheckInDate: "2025-08-23", CheckOutDate: "2025-08-26"},
	}
	uc := f.useCase(false)

	req := validRequest()
	req.RoomIDs = []int64{1}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_PendingHoldRespectsPolicy(t *testing.T) {
	holds := []*domain.RoomHold{
		{ReservationID: 99, RoomID: 1, Status: domain.StatusPending,
			CheckInDate: "2025-08-26", CheckOutDate: "2025-08-29"},
	}

	f := newFixture()
	f.assignRepo.holds = holds
	req := validRequest()
	req.RoomIDs = []int64{1}

	_, err := f.useCase(false).Execute(context.Background(), req)
	require.NoError(t, err, "pending does not hold by default")

	f = newFixture()
	f.assignRepo.holds = holds
	_, err = f.useCase(true).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_RoomNotBookable(t *testing.T) {
	f := newFixture()
	f.roomRepo.rooms[1].Status = domain.RoomStatusMaintenance
	uc := f.useCase(false)

	req := validRequest()
	req.RoomIDs = []int64{1}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_InactiveRoomNotBookable(t *testing.T) {
	f := newFixture()
	f.roomRepo.rooms[1].IsActive = false
	uc := f.useCase(false)

	req := validRequest()
	req.RoomIDs = []int64{1}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_InsufficientCapacity(t *testing.T) {
	f := newFixture()
	uc := f.useCase(false)

	req := validRequest()
	req.Adults = 2
	req.Children = 1
	req.RoomIDs = []int64{1} // Вместимость 2, гостей 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestExecute_GuestNotFound(t *testing.T) {
	f := newFixture()
	uc := f.useCase(false)

	req := validRequest()
	req.GuestID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuestNotFound)
	assert.Empty(t, f.resRepo.created)
}

// Недоступность реестра гостей не блокирует создание бронирования
func TestExecute_GuestRegistryDegraded(t *testing.T) {
	f := newFixture()
	f.guests.degraded = true
	uc := f.useCase(false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.GuestDegraded)
	require.Len(t, f.resRepo.created, 1)
}

func TestExecute_NumberCollisionRetries(t *testing.T) {
	f := newFixture()
	f.resRepo.duplicates = 2 // Две коллизии, третья попытка проходит
	uc := f.useCase(false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)
	require.Len(t, f.resRepo.created, 1)
}

func TestExecute_NumberCollisionExhausted(t *testing.T) {
	f := newFixture()
	f.resRepo.duplicates = maxNumberRetries
	uc := f.useCase(false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	longRequests := strings.Repeat("x", domain.MaxSpecialRequestsLength+1)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero guest id",
			mutate:  func(r *Request) { r.GuestID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no adults",
			mutate:  func(r *Request) { r.Adults = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative children",
			mutate:  func(r *Request) { r.Children = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown booking source",
			mutate:  func(r *Request) { r.BookingSource = "fax" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "special requests too long",
			mutate:  func(r *Request) { r.SpecialRequests = &longRequests },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate room ids",
			mutate:  func(r *Request) { r.RoomIDs = []int64{1, 1} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "checkout before checkin",
			mutate:  func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "zero nights",
			mutate:  func(r *Request) { r.CheckOut = r.CheckIn },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "check-in in the past",
			mutate:  func(r *Request) { r.CheckIn = "2025-08-10"; r.CheckOut = "2025-08-12" },
			wantErr: ErrDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := f.useCase(false)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.resRepo.created)
		})
	}
}

func TestGenerateReservationNumber(t *testing.T) {
	now := time.Date(2025, 8, 26, 10, 0, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		number, err := generateReservationNumber(now)
		require.NoError(t, err)
		assert.Regexp(t, `^RSV-20250826-[2-9A-HJ-NP-Z]{4}$`, number)
		seen[number] = struct{}{}
	}
	// Коллизии на 100 генерациях из алфавита 32^4 крайне маловероятны
	assert.Greater(t, len(seen), 95)
}
