package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// UseCase use case выселения гостя.
//
// Выселение — финансовые ворота: переход checked_in → checked_out
// возможен только при полностью оплаченном бронировании. При долге
// возвращается PaymentRequiredError с остатком к оплате, статус
// не меняется. Номера возвращаются в пул доступных.
type UseCase struct {
	reservationRepo ReservationRepository
	assignmentRepo  AssignmentRepository
	roomRepo        RoomRepository
	pricingService  PricingService
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	roomRepo RoomRepository,
	pricingService PricingService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		assignmentRepo:  assignmentRepo,
		roomRepo:        roomRepo,
		pricingService:  pricingService,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case выселения гостя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: id=%d, actor=%s", req.ReservationID, req.Actor)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Actor == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var (
		checkedOut  *domain.Reservation
		assignments []*domain.RoomAssignment
		quote       *domain.ReservationPricing
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем бронирование с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Переход допустим только из checked_in
		if !res.CanBeCheckedOut() {
			uc.logger.Warn("CheckOut: id=%d in status %s, cannot check out", res.ID, res.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, res.Status)
		}

		// 3. Финансовые ворота: расчёт в той же транзакции, чтобы
		// платёж, записанный параллельно, не прошёл мимо проверки
		quote, err = uc.pricingService.QuoteByReservationID(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to quote reservation: %v", ErrInternal, err)
		}

		if !quote.IsFullyPaid {
			uc.logger.Warn("CheckOut: id=%d has balance due %d, check-out rejected", res.ID, quote.BalanceDue)
			return &PaymentRequiredError{
				ReservationNumber: res.ReservationNumber,
				BalanceDue:        quote.BalanceDue,
			}
		}

		// 4. Возвращаем номера в пул доступных
		assignments, err = uc.assignmentRepo.ListByReservation(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
		}
		for _, a := range assignments {
			if err := uc.roomRepo.UpdateStatus(txCtx, a.RoomID, domain.RoomStatusAvailable); err != nil {
				return fmt.Errorf("%w: failed to release room id=%d: %v", ErrInternal, a.RoomID, err)
			}
		}

		// 5. Переход checked_in → checked_out
		if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusCheckedOut); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		res.Status = domain.StatusCheckedOut
		checkedOut = res
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrInvalidTransition) ||
			errors.Is(err, ErrPaymentRequired) {
			return nil, err
		}
		uc.logger.Error("CheckOut: transaction failed for id=%d: %v", req.ReservationID, err)
		return nil, err
	}

	uc.logger.Info("CheckOut: id=%d checked out by actor=%s, grand_total=%d",
		checkedOut.ID, req.Actor, quote.GrandTotal)

	return &Response{
		Reservation: models.FromDomainReservation(checkedOut, assignments),
		Pricing: PricingSummary{
			Subtotal:   quote.Subtotal,
			Tax:        quote.Tax,
			GrandTotal: quote.GrandTotal,
			TotalPaid:  quote.TotalPaid,
		},
	}, nil
}
