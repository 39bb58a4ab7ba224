package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Удержание номера 101 на [2025-08-26, 2025-08-29): интервалы полуоткрытые,
// день выезда проживанием не считается
func TestRoomHold_Overlaps(t *testing.T) {
	hold := &RoomHold{
		RoomID:       101,
		Status:       StatusConfirmed,
		CheckInDate:  types.DateString("2025-08-26"),
		CheckOutDate: types.DateString("2025-08-29"),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{name: "identical interval", checkIn: "2025-08-26", checkOut: "2025-08-29", want: true},
		{name: "overlap from the right", checkIn: "2025-08-27", checkOut: "2025-08-30", want: true},
		{name: "overlap from the left", checkIn: "2025-08-24", checkOut: "2025-08-27", want: true},
		{name: "contained inside", checkIn: "2025-08-27", checkOut: "2025-08-28", want: true},
		{name: "contains the hold", checkIn: "2025-08-20", checkOut: "2025-09-05", want: true},
		{name: "starts on checkout day", checkIn: "2025-08-29", checkOut: "2025-08-31", want: false},
		{name: "ends on checkin day", checkIn: "2025-08-24", checkOut: "2025-08-26", want: false},
		{name: "fully before", checkIn: "2025-08-10", checkOut: "2025-08-12", want: false},
		{name: "fully after", checkIn: "2025-09-10", checkOut: "2025-09-12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hold.Overlaps(types.DateString(tt.checkIn), types.DateString(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservation_Nights(t *testing.T) {
	r := &Reservation{
		CheckInDate:  types.DateString("2025-08-26"),
		CheckOutDate: types.DateString("2025-08-29"),
	}

	nights, err := r.Nights()
	assert.NoError(t, err)
	assert.Equal(t, 3, nights)
}

func TestReservation_Guests(t *testing.T) {
	r := &Reservation{Adults: 2, Children: 1}
	assert.Equal(t, 3, r.Guests())
}
