package check_availability

import checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VariantID int64  `json:"variantId"`
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
	Bookable  bool   `json:"bookable"`
	Available *int   `json:"available,omitempty"` // Отсутствует у вариантов без лимита
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(variantID int64, quantity int, resp *checkDay.DayResponse) *AvailabilityResponse {
	return &AvailabilityResponse{
		VariantID: variantID,
		Date:      resp.Date.String(),
		Quantity:  quantity,
		Bookable:  resp.Bookable,
		Available: resp.Available,
	}
}
