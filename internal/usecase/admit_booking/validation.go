package admit_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все нарушения отклоняются до какого-либо обращения к журналу
func validateRequest(req *Request) error {
	if req.VariantID <= 0 {
		return fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}

	if req.Quantity < domain.MinQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
	}
	if req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxQuantity)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	nights, err := rng.Start.DaysUntil(rng.End)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if nights+1 > domain.MaxRangeDays {
		return fmt.Errorf("%w: date range must not exceed %d days", ErrInvalidInput, domain.MaxRangeDays)
	}

	for i, entry := range req.SessionPending {
		if entry.VariantID <= 0 {
			return fmt.Errorf("%w: sessionPending[%d]: variantID must be positive", ErrInvalidInput, i)
		}
		if entry.Quantity < domain.MinQuantity {
			return fmt.Errorf("%w: sessionPending[%d]: quantity must be at least %d", ErrInvalidInput, i, domain.MinQuantity)
		}
		if _, err := domain.NewDateRange(entry.StartDate, entry.EndDate); err != nil {
			return fmt.Errorf("%w: sessionPending[%d]: %v", ErrInvalidInput, i, err)
		}
	}

	return nil
}
