package check_availability

import (
	"context"

	checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"
)

type CheckDayUseCase interface {
	IsBookable(ctx context.Context, req *checkDay.DayRequest) (*checkDay.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
