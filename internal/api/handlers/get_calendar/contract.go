package get_calendar

import (
	"context"

	checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"
)

type CheckDayUseCase interface {
	Calendar(ctx context.Context, req *checkDay.CalendarRequest) (*checkDay.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
