package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2025-08-26", wantErr: false},
		{name: "leap day", input: "2024-02-29", wantErr: false},
		{name: "invalid format", input: "26.08.2025", wantErr: true},
		{name: "not a date", input: "2025-13-45", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "date with time", input: "2025-08-26T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateString_Comparison(t *testing.T) {
	a := DateString("2025-08-26")
	b := DateString("2025-08-29")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(DateString("2025-08-26")))
	assert.False(t, a.Equal(b))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-08-30")

	next, err := d.AddDays(3)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-02", next.String())

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-31", prev.String())
}

func TestDateString_DaysUntil(t *testing.T) {
	checkIn := DateString("2025-08-26")
	checkOut := DateString("2025-08-29")

	nights, err := checkIn.DaysUntil(checkOut)
	require.NoError(t, err)
	assert.Equal(t, 3, nights)

	// Обратное направление даёт отрицательное число
	back, err := checkOut.DaysUntil(checkIn)
	require.NoError(t, err)
	assert.Equal(t, -3, back)
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2025, 8, 26, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-08-26", d.String())
}
