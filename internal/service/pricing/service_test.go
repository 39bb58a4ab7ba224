package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

func TestCalculate_SingleRoom(t *testing.T) {
	// Тариф 2 250 000 за ночь, 3 ночи, НДС 11%
	assignments := []*domain.RoomAssignment{
		{Rate: 2_250_000},
	}

	quote := Calculate(3, assignments, 0, 1100)

	assert.Equal(t, int64(6_750_000), quote.Subtotal)
	assert.Equal(t, int64(742_500), quote.Tax)
	assert.Equal(t, int64(7_492_500), quote.GrandTotal)
	assert.Equal(t, int64(7_492_500), quote.BalanceDue)
	assert.False(t, quote.IsFullyPaid)
}

func TestCalculate_PartialPayment(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 2_250_000},
	}

	// Оплачено 7 000 000 из 7 492 500: недоплата есть недоплата
	quote := Calculate(3, assignments, 7_000_000, 1100)

	assert.Equal(t, int64(492_500), quote.BalanceDue)
	assert.False(t, quote.IsFullyPaid)
}

func TestCalculate_ExactPayment(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 2_250_000},
	}

	quote := Calculate(3, assignments, 7_492_500, 1100)

	assert.Equal(t, int64(0), quote.BalanceDue)
	assert.True(t, quote.IsFullyPaid)
}

func TestCalculate_OverpaymentClampsToZero(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 1_000_000},
	}

	quote := Calculate(1, assignments, 5_000_000, 1100)

	assert.Equal(t, int64(0), quote.BalanceDue)
	assert.True(t, quote.IsFullyPaid)
}

func TestCalculate_OneMinorUnitShort(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 2_250_000},
	}

	quote := Calculate(3, assignments, 7_492_499, 1100)

	assert.Equal(t, int64(1), quote.BalanceDue)
	assert.False(t, quote.IsFullyPaid)
}

func TestCalculate_DiscountAndExtraCharges(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 1_000_000, DiscountAmount: 300_000, ExtraCharges: 150_000},
	}

	// 2 ночи: 2 000 000 − 300 000 + 150 000 = 1 850 000
	quote := Calculate(2, assignments, 0, 1100)

	assert.Equal(t, int64(1_850_000), quote.Subtotal)
	assert.Equal(t, int64(203_500), quote.Tax)
	assert.Equal(t, int64(2_053_500), quote.GrandTotal)
}

func TestCalculate_MultipleRooms(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 1_000_000},
		{Rate: 1_500_000},
	}

	quote := Calculate(2, assignments, 0, 1100)

	assert.Equal(t, int64(5_000_000), quote.Subtotal)
	assert.Equal(t, int64(550_000), quote.Tax)
	assert.Equal(t, int64(5_550_000), quote.GrandTotal)
}

func TestCalculate_NoAssignments(t *testing.T) {
	quote := Calculate(3, nil, 0, 1100)

	assert.Equal(t, int64(0), quote.Subtotal)
	assert.Equal(t, int64(0), quote.GrandTotal)
	assert.True(t, quote.IsFullyPaid)
}

func TestCalculate_TaxTruncates(t *testing.T) {
	// 101 × 11% = 11.11: целочисленное деление отбрасывает дробь
	assignments := []*domain.RoomAssignment{
		{Rate: 101},
	}

	quote := Calculate(1, assignments, 0, 1100)

	assert.Equal(t, int64(11), quote.Tax)
}

func TestCalculate_ZeroTaxRate(t *testing.T) {
	assignments := []*domain.RoomAssignment{
		{Rate: 1_000_000},
	}

	quote := Calculate(1, assignments, 0, 0)

	assert.Equal(t, int64(0), quote.Tax)
	assert.Equal(t, quote.Subtotal, quote.GrandTotal)
}
