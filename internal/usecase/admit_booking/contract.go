package admit_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// VariantRepository интерфейс каталога вариантов
type VariantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Variant, error)
}

// AvailabilityCalculator интерфейс калькулятора занятости
type AvailabilityCalculator interface {
	ExistingDemand(ctx context.Context, variantID int64, rng domain.DateRange) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// VariantLocker взаимоисключающая блокировка по id варианта
// Ожидание захвата ограничено контекстом вызывающего
type VariantLocker interface {
	Lock(ctx context.Context, key int64) error
	Unlock(key int64)
}

// MetricsObserver счетчик решений по бронированию (опционально)
type MetricsObserver interface {
	ObserveAdmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
