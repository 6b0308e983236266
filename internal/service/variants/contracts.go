package variants

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// VariantRepository интерфейс каталога вариантов
type VariantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Variant, error)
	ListByProduct(ctx context.Context, productID int64) ([]*domain.Variant, error)
	UpdateCapacity(ctx context.Context, id int64, capacity *int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
