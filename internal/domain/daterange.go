package domain

import "github.com/m04kA/SMC-HotelBookingService/pkg/types"

// DateRange represents an inclusive calendar-day range [Start, End]
type DateRange struct {
	Start types.DateString
	End   types.DateString
}

// NewDateRange создает диапазон дат с проверкой Start <= End
func NewDateRange(start, end types.DateString) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// SingleDay создает диапазон из одного дня
func SingleDay(day types.DateString) DateRange {
	return DateRange{Start: day, End: day}
}

// Validate проверяет корректность диапазона
func (r DateRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return err
	}
	if err := r.End.Validate(); err != nil {
		return err
	}
	if r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Contains returns true if the day falls within the range (inclusive)
func (r DateRange) Contains(day types.DateString) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Overlaps returns true if the two ranges share at least one calendar day
// Диапазоны включительные: [1,3] и [3,5] пересекаются по дню 3
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Days returns every calendar day of the range in order
func (r DateRange) Days() ([]types.DateString, error) {
	n, err := r.Start.DaysUntil(r.End)
	if err != nil {
		return nil, err
	}

	days := make([]types.DateString, 0, n+1)
	day := r.Start
	for i := 0; i <= n; i++ {
		days = append(days, day)
		if i < n {
			day, err = day.AddDays(1)
			if err != nil {
				return nil, err
			}
		}
	}
	return days, nil
}

// Nights returns the number of nights in the range (days - 1, minimum 0)
func (r DateRange) Nights() (int, error) {
	return r.Start.DaysUntil(r.End)
}
