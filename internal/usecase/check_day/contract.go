package check_day

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
)

// VariantRepository интерфейс каталога вариантов
type VariantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Variant, error)
}

// AvailabilityCalculator интерфейс калькулятора занятости
// Должен быть тем же алгоритмом, что и у приема бронирований:
// календарь и решения о приеме не могут расходиться
type AvailabilityCalculator interface {
	ExistingDemand(ctx context.Context, variantID int64, rng domain.DateRange) (int, error)
	DailyDemand(ctx context.Context, variantID int64, rng domain.DateRange) ([]availability.DayDemand, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
