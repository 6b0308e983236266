package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	QueryOverlapping(ctx context.Context, variantID int64, rng domain.DateRange) ([]*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
