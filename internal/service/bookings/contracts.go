package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
	GetByVariantWithFilter(ctx context.Context, filter domain.VariantBookingsFilter) ([]*domain.BookingRecord, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// VariantRepository интерфейс каталога вариантов
type VariantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Variant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
