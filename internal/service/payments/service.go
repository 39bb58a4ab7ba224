package payments

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/payments/models"
)

// Service журнал платежей бронирования. Записи только добавляются:
// возвраты и спорные транзакции решает платёжный процессор на своей
// стороне, сюда приходят уже подтверждённые суммы.
type Service struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(reservationRepo ReservationRepository, paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
	}
}

// Record регистрирует подтверждённый платёж по бронированию
func (s *Service) Record(ctx context.Context, reservationID int64, req *models.RecordPaymentRequest) (*models.PaymentResponse, error) {
	if req.Amount <= 0 {
		s.logger.Warn("Record: non-positive amount=%d for reservation id=%d", req.Amount, reservationID)
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if !slices.Contains(domain.PaymentMethods, req.Method) {
		s.logger.Warn("Record: unknown payment method=%s for reservation id=%d", req.Method, reservationID)
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Record: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Record: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	// Платежи по отменённым бронированиям не принимаются, но доплата
	// после выезда допустима (мини-бар, поздний выезд)
	if res.Status == domain.StatusCancelled {
		s.logger.Warn("Record: reservation id=%d is cancelled, payment rejected", reservationID)
		return nil, ErrReservationClosed
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment, err := s.paymentRepo.Record(ctx, &domain.Payment{
		ReservationID: reservationID,
		Amount:        req.Amount,
		Method:        req.Method,
		Reference:     req.Reference,
		PaidAt:        paidAt,
	})
	if err != nil {
		s.logger.Error("Record: failed to record payment for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Record: payment id=%d amount=%d method=%s recorded for reservation id=%d",
		payment.ID, payment.Amount, payment.Method, reservationID)

	return models.FromDomainPayment(payment), nil
}

// List возвращает журнал платежей бронирования
func (s *Service) List(ctx context.Context, reservationID int64) ([]*models.PaymentResponse, error) {
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("List: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	paymentsList, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("List: failed to list payments for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayments(paymentsList), nil
}
