package domain

import "errors"

// Business validation constants
const (
	MinQuantity = 1
	MaxQuantity = 100

	MinCapacity = 1
	MaxCapacity = 10000

	// MaxRangeDays ограничение длины диапазона одного бронирования
	MaxRangeDays = 366

	MaxCancellationReasonLength = 500
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ErrInvalidDateRange возвращается, когда конец диапазона раньше начала
var ErrInvalidDateRange = errors.New("domain: end date is before start date")

// InactiveStatuses список статусов, исключаемых из подсчета спроса
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRemoved,
}

// ActiveStatuses список статусов, учитываемых при подсчете спроса
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
