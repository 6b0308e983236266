package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// Service калькулятор занятости варианта по журналу бронирований
//
// Один и тот же алгоритм обслуживает и решение о приеме бронирования,
// и календарную проекцию по дням — расхождение между ними невозможно.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// DayDemand активный спрос на один календарный день
type DayDemand struct {
	Date   types.DateString
	Demand int
}

// ExistingDemand возвращает занятость варианта на диапазоне дат:
// максимум по дням диапазона от суммы quantity активных бронирований,
// покрывающих день. Многодневный запрос блокируется самым занятым днем,
// а не суммой по всем дням.
//
// Если вызов идет внутри транзакции, чтение журнала блокирует строки (FOR UPDATE)
func (s *Service) ExistingDemand(ctx context.Context, variantID int64, rng domain.DateRange) (int, error) {
	daily, err := s.DailyDemand(ctx, variantID, rng)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, d := range daily {
		if d.Demand > max {
			max = d.Demand
		}
	}
	return max, nil
}

// DailyDemand возвращает активный спрос на каждый день диапазона
// Журнал читается одним запросом по пересечению диапазонов,
// суммы по дням считаются в памяти
func (s *Service) DailyDemand(ctx context.Context, variantID int64, rng domain.DateRange) ([]DayDemand, error) {
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	records, err := s.bookingRepo.QueryOverlapping(ctx, variantID, rng)
	if err != nil {
		s.logger.Error("DailyDemand: failed to query ledger for variant=%d: %v", variantID, err)
		return nil, fmt.Errorf("%w: failed to query ledger: %v", ErrInternal, err)
	}

	days, err := rng.Days()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	daily := make([]DayDemand, len(days))
	for i, day := range days {
		daily[i] = DayDemand{
			Date:   day,
			Demand: sumDemandForDay(day, records),
		}
	}

	return daily, nil
}

// sumDemandForDay суммирует quantity активных бронирований, покрывающих день
// Репозиторий уже отфильтровал неактивные статусы; проверка IsActive
// оставлена для вызовов с заранее загруженными записями
func sumDemandForDay(day types.DateString, records []*domain.BookingRecord) int {
	sum := 0
	for _, rec := range records {
		if !rec.IsActive() {
			continue
		}
		if rec.Range().Contains(day) {
			sum += rec.Quantity
		}
	}
	return sum
}
