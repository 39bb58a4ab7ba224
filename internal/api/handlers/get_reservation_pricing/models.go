package get_reservation_pricing

import (
	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// PricingResponse HTTP response model: все суммы в минорных единицах
type PricingResponse struct {
	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	GrandTotal  int64 `json:"grandTotal"`
	TotalPaid   int64 `json:"totalPaid"`
	BalanceDue  int64 `json:"balanceDue"`
	IsFullyPaid bool  `json:"isFullyPaid"`
}

// FromDomainPricing конвертирует domain модель в DTO
func FromDomainPricing(p *domain.ReservationPricing) *PricingResponse {
	return &PricingResponse{
		Subtotal:    p.Subtotal,
		Tax:         p.Tax,
		GrandTotal:  p.GrandTotal,
		TotalPaid:   p.TotalPaid,
		BalanceDue:  p.BalanceDue,
		IsFullyPaid: p.IsFullyPaid,
	}
}
