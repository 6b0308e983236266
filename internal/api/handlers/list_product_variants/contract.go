package list_product_variants

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type VariantsService interface {
	ListProductVariants(ctx context.Context, productID int64) ([]*domain.Variant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
