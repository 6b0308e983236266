package admit_booking

import "github.com/m04kA/SMC-HotelBookingService/internal/domain"

// totalRequested суммирует запрошенное количество с незакоммиченным спросом
// сессии на тот же вариант
//
// В режиме по умолчанию учитываются только позиции с пересекающимся диапазоном
// дат: еще одна позиция корзины на тот же вариант, но на другие даты,
// не должна искусственно съедать доступность.
//
// legacyMode воспроизводит историческое поведение корзины: суммируются все
// позиции варианта независимо от дат
func totalRequested(req *Request, legacyMode bool) int {
	reqRange := domain.DateRange{Start: req.StartDate, End: req.EndDate}

	total := req.Quantity
	for _, entry := range req.SessionPending {
		if entry.VariantID != req.VariantID {
			continue
		}
		if !legacyMode && !reqRange.Overlaps(entry.Range()) {
			continue
		}
		total += entry.Quantity
	}

	return total
}
