package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
)

// Service калькулятор стоимости бронирования.
// Вся арифметика в целых минорных единицах валюты: исходная система
// считала налог на float-рупиях, что давало расхождения на копейках;
// здесь это исправлено намеренно.
type Service struct {
	reservationRepo    ReservationRepository
	assignmentRepo     AssignmentRepository
	paymentRepo        PaymentRepository
	taxRateBasisPoints int
	logger             Logger
}

// NewService создает новый экземпляр калькулятора стоимости.
// Ставка налога передается в базисных пунктах (1100 = 11%).
func NewService(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	paymentRepo PaymentRepository,
	taxRateBasisPoints int,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:    reservationRepo,
		assignmentRepo:     assignmentRepo,
		paymentRepo:        paymentRepo,
		taxRateBasisPoints: taxRateBasisPoints,
		logger:             logger,
	}
}

// QuoteByReservationID рассчитывает стоимость бронирования по его ID.
// Функция чистая по отношению к данным: повторный вызов без изменения
// назначений и платежей возвращает идентичный результат.
func (s *Service) QuoteByReservationID(ctx context.Context, reservationID int64) (*domain.ReservationPricing, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("QuoteByReservationID: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("QuoteByReservationID: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: QuoteByReservationID - repository error: %v", ErrInternal, err)
	}

	nights, err := res.Nights()
	if err != nil || nights < domain.MinNights {
		s.logger.Error("QuoteByReservationID: invalid stay interval for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: reservation id=%d", ErrInvalidStay, reservationID)
	}

	assignments, err := s.assignmentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("QuoteByReservationID: failed to list assignments for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: QuoteByReservationID - list assignments: %v", ErrInternal, err)
	}

	totalPaid, err := s.paymentRepo.TotalPaid(ctx, reservationID)
	if err != nil {
		s.logger.Error("QuoteByReservationID: failed to sum payments for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: QuoteByReservationID - total paid: %v", ErrInternal, err)
	}

	quote := Calculate(nights, assignments, totalPaid, s.taxRateBasisPoints)

	s.logger.Info("QuoteByReservationID: reservation id=%d nights=%d subtotal=%d grand_total=%d balance_due=%d",
		reservationID, nights, quote.Subtotal, quote.GrandTotal, quote.BalanceDue)

	return &quote, nil
}

// Calculate рассчитывает стоимость по назначениям, числу ночей и сумме платежей.
// Чистая функция без обращений к хранилищу:
//
//	Subtotal   = Σ (rate × nights − discount + extraCharges)
//	Tax        = Subtotal × ставка(б.п.) / 10000, целочисленно с отбрасыванием
//	GrandTotal = Subtotal + Tax
//	BalanceDue = max(0, GrandTotal − totalPaid)
//
// IsFullyPaid строго BalanceDue == 0: недоплата в одну минорную единицу —
// это всё ещё недоплата, никаких эпсилон-допусков.
func Calculate(nights int, assignments []*domain.RoomAssignment, totalPaid int64, taxRateBasisPoints int) domain.ReservationPricing {
	var subtotal int64
	for _, a := range assignments {
		subtotal += a.Rate*int64(nights) - a.DiscountAmount + a.ExtraCharges
	}

	tax := subtotal * int64(taxRateBasisPoints) / domain.BasisPointsDivisor
	grandTotal := subtotal + tax

	balanceDue := grandTotal - totalPaid
	if balanceDue < 0 {
		balanceDue = 0
	}

	return domain.ReservationPricing{
		Subtotal:    subtotal,
		Tax:         tax,
		GrandTotal:  grandTotal,
		TotalPaid:   totalPaid,
		BalanceDue:  balanceDue,
		IsFullyPaid: balanceDue == 0,
	}
}
