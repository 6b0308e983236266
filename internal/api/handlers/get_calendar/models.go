package get_calendar

import checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"

// CalendarDayResponse доступность одного дня
type CalendarDayResponse struct {
	Date      string `json:"date"`
	Bookable  bool   `json:"bookable"`
	Available *int   `json:"available,omitempty"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	VariantID int64                 `json:"variantId"`
	Quantity  int                   `json:"quantity"`
	Days      []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDay.CalendarResponse) *CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, CalendarDayResponse{
			Date:      d.Date.String(),
			Bookable:  d.Bookable,
			Available: d.Available,
		})
	}

	return &CalendarResponse{
		VariantID: resp.VariantID,
		Quantity:  resp.Quantity,
		Days:      days,
	}
}
