package domain

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// BookingStatus represents the status of a booking record
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRemoved   BookingStatus = "removed"
)

// BookingRecord represents a committed reservation of variant units over a date range
type BookingRecord struct {
	ID        int64
	VariantID int64
	StartDate types.DateString // Включительно
	EndDate   types.DateString // Включительно
	Quantity  int
	Status    BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the booked date range
func (b *BookingRecord) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// IsActive returns true if the record counts towards demand
// Активный спрос — только pending и confirmed
func (b *BookingRecord) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeConfirmed returns true if the record can transition to confirmed
func (b *BookingRecord) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the record can be cancelled
func (b *BookingRecord) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the record has been cancelled
func (b *BookingRecord) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsRemoved returns true if the record is in the terminal removed state
func (b *BookingRecord) IsRemoved() bool {
	return b.Status == StatusRemoved
}

// VariantBookingsFilter фильтр для получения бронирований варианта
type VariantBookingsFilter struct {
	VariantID       int64             // Обязательный параметр
	StartDate       *types.DateString // Начало периода (опционально)
	EndDate         *types.DateString // Конец периода (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отмененные и удаленные записи
}
