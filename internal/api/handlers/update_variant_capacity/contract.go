package update_variant_capacity

import "context"

type VariantsService interface {
	UpdateCapacity(ctx context.Context, id int64, capacity *int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
