package get_variant

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type VariantsService interface {
	GetVariant(ctx context.Context, id int64) (*domain.Variant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
