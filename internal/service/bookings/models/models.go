package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetVariantBookingsRequest запрос на получение бронирований варианта
type GetVariantBookingsRequest struct {
	VariantID       int64   `json:"variantId"`
	StartDate       *string `json:"startDate,omitempty"` // "2025-10-01" (опционально)
	EndDate         *string `json:"endDate,omitempty"`   // "2025-10-31" (опционально)
	Status          *string `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetVariantBookingsRequest) ToDomainFilter() (domain.VariantBookingsFilter, error) {
	filter := domain.VariantBookingsFilter{
		VariantID:       r.VariantID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil {
		start, err := types.NewDateStringFromString(*r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &end
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в доменный статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusRemoved:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variantId"`
	StartDate string `json:"startDate"` // "2025-10-15"
	EndDate   string `json:"endDate"`   // "2025-10-18"
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.BookingRecord) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		VariantID:          b.VariantID,
		StartDate:          b.StartDate.String(),
		EndDate:            b.EndDate.String(),
		Quantity:           b.Quantity,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
