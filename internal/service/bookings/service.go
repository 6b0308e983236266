package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
//
// Переходы статусов выполняются внешним управлением жизненного цикла
// (подтверждение оплаты, отмена, очистка). Ядро приема записи не трогает:
// оно только читает активные и вставляет новые.
type Service struct {
	bookingRepo BookingRepository
	variantRepo VariantRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, variantRepo VariantRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

// GetBooking получает бронирование по ID
func (s *Service) GetBooking(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(record)
	return &resp, nil
}

// ConfirmBooking переводит бронирование pending -> confirmed
func (s *Service) ConfirmBooking(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !record.CanBeConfirmed() {
		s.logger.Warn("ConfirmBooking: booking id=%d in status %s cannot be confirmed", id, record.Status)
		return ErrCannotConfirm
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("ConfirmBooking: failed to update status for id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("ConfirmBooking: booking id=%d confirmed", id)
	return nil
}

// CancelBooking отменяет бронирование с указанием причины
// Отмена исключает запись из подсчета спроса; освободившиеся единицы
// сразу видны калькулятору занятости
func (s *Service) CancelBooking(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: failed to get booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !record.CanBeCancelled() {
		s.logger.Warn("CancelBooking: booking id=%d in status %s cannot be cancelled", id, record.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: booking id=%d cancelled", id)
	return nil
}

// RemoveBooking переводит бронирование в терминальный статус removed
// Физического удаления не происходит — история сохраняется
func (s *Service) RemoveBooking(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("RemoveBooking: failed to get booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if record.IsRemoved() {
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusRemoved); err != nil {
		s.logger.Error("RemoveBooking: failed to update status for id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBooking: booking id=%d removed", id)
	return nil
}

// GetVariantBookings получает бронирования варианта с фильтрацией
func (s *Service) GetVariantBookings(ctx context.Context, req *models.GetVariantBookingsRequest) (*models.BookingListResponse, error) {
	if req.VariantID <= 0 {
		return nil, fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}

	// Проверяем существование варианта
	if _, err := s.variantRepo.GetByID(ctx, req.VariantID); err != nil {
		if errors.Is(err, variantRepo.ErrVariantNotFound) {
			return nil, ErrVariantNotFound
		}
		s.logger.Error("GetVariantBookings: failed to get variant id=%d: %v", req.VariantID, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			return nil, ErrInvalidStatus
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	records, err := s.bookingRepo.GetByVariantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVariantBookings: failed to get bookings for variant=%d: %v", req.VariantID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, len(records)),
		Total:    len(records),
	}
	for i, record := range records {
		resp.Bookings[i] = models.FromDomainBooking(record)
	}

	return resp, nil
}
