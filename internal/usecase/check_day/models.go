package check_day

import "github.com/m04kA/SMC-HotelBookingService/pkg/types"

// DayRequest запрос проверки доступности одного дня
type DayRequest struct {
	VariantID int64
	Date      types.DateString
	Quantity  int // Сколько единиц нужно в этот день
}

// DayResponse результат проверки одного дня
type DayResponse struct {
	Date     types.DateString
	Bookable bool
	// Available свободные единицы на день; nil для вариантов без лимита
	Available *int
}

// CalendarRequest запрос календарной проекции по диапазону дат
type CalendarRequest struct {
	VariantID int64
	StartDate types.DateString
	EndDate   types.DateString
	Quantity  int
}

// CalendarDay доступность одного дня календаря
type CalendarDay struct {
	Date      types.DateString
	Bookable  bool
	Available *int
}

// CalendarResponse календарная проекция доступности
type CalendarResponse struct {
	VariantID int64
	Quantity  int
	Days      []CalendarDay
}
