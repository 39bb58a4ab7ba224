package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReservationStatus(t *testing.T) {
	for _, valid := range ValidReservationStatuses {
		status, err := ParseReservationStatus(string(valid))
		require.NoError(t, err)
		assert.Equal(t, valid, status)
	}

	// Статусы канонические, нормализации регистра нет
	_, err := ParseReservationStatus("CONFIRMED")
	assert.ErrorIs(t, err, ErrUnknownReservationStatus)

	_, err = ParseReservationStatus("unknown")
	assert.ErrorIs(t, err, ErrUnknownReservationStatus)
}

func TestReservationStatus_IsHolding(t *testing.T) {
	assert.False(t, StatusPending.IsHolding())
	assert.True(t, StatusConfirmed.IsHolding())
	assert.True(t, StatusCheckedIn.IsHolding())
	assert.False(t, StatusCheckedOut.IsHolding())
	assert.False(t, StatusCancelled.IsHolding())
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

// Каждый статус имеет полностью определённый набор допустимых переходов
func TestReservation_TransitionGuards(t *testing.T) {
	tests := []struct {
		status       ReservationStatus
		canConfirm   bool
		canCheckIn   bool
		canCheckOut  bool
		canCancel    bool
	}{
		{StatusPending, true, false, false, true},
		{StatusConfirmed, false, true, false, true},
		{StatusCheckedIn, false, false, true, false},
		{StatusCheckedOut, false, false, false, false},
		{StatusCancelled, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.canConfirm, r.CanBeConfirmed())
			assert.Equal(t, tt.canCheckIn, r.CanBeCheckedIn())
			assert.Equal(t, tt.canCheckOut, r.CanBeCheckedOut())
			assert.Equal(t, tt.canCancel, r.CanBeCancelled())
		})
	}
}

func TestParseRoomStatus(t *testing.T) {
	for _, valid := range ValidRoomStatuses {
		status, err := ParseRoomStatus(string(valid))
		require.NoError(t, err)
		assert.Equal(t, valid, status)
	}

	_, err := ParseRoomStatus("renovation")
	assert.ErrorIs(t, err, ErrUnknownRoomStatus)
}

func TestRoomStatus_IsBookable(t *testing.T) {
	assert.True(t, RoomStatusAvailable.IsBookable())

	for _, status := range []RoomStatus{
		RoomStatusOccupied,
		RoomStatusCleaning,
		RoomStatusMaintenance,
		RoomStatusOutOfOrder,
		RoomStatusBlocked,
	} {
		assert.False(t, status.IsBookable(), "status %s must not be bookable", status)
	}
}
