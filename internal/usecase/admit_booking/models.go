package admit_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// ReasonInsufficientAvailability причина отказа: не хватает свободных единиц
const ReasonInsufficientAvailability = "insufficient_availability"

// PendingEntry незакоммиченная позиция из сессии пользователя (корзина)
type PendingEntry struct {
	VariantID int64
	StartDate types.DateString
	EndDate   types.DateString
	Quantity  int
}

// Range возвращает диапазон дат позиции
func (e *PendingEntry) Range() domain.DateRange {
	return domain.DateRange{Start: e.StartDate, End: e.EndDate}
}

// Request модель запроса на прием бронирования
type Request struct {
	VariantID int64            // ID варианта
	StartDate types.DateString // Первый день диапазона (включительно)
	EndDate   types.DateString // Последний день диапазона (включительно)
	Quantity  int              // Запрошенное количество единиц (>= 1)

	// SessionPending незакоммиченный спрос той же сессии (позиции корзины);
	// учитывается при проверке доступности, но не записывается в журнал
	SessionPending []PendingEntry
}

// Response результат решения о приеме
// Отказ по доступности — ожидаемый бизнес-исход, а не ошибка
type Response struct {
	Admitted  bool
	Reason    *string // Причина отказа (только при Admitted=false)
	Available *int    // Сколько единиц осталось доступно (только при отказе)
	Booking   *BookingInfo
}

// BookingInfo данные записанного бронирования
type BookingInfo struct {
	ID        int64
	VariantID int64
	StartDate types.DateString
	EndDate   types.DateString
	Quantity  int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
