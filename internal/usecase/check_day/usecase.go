package check_day

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// UseCase use case проверки доступности дня и календарной проекции
//
// Проекция читающая: блокировок не берет, результат верен на момент чтения.
// Повторные вызовы без приемов между ними возвращают тот же результат.
type UseCase struct {
	variantRepo  VariantRepository
	availability AvailabilityCalculator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	variantRepo VariantRepository,
	availability AvailabilityCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		variantRepo:  variantRepo,
		availability: availability,
		logger:       logger,
	}
}

// IsBookable проверяет, поместится ли quantity единиц варианта в указанный день:
// занятость дня + quantity <= вместимость
func (uc *UseCase) IsBookable(ctx context.Context, req *DayRequest) (*DayResponse, error) {
	if err := validateDay(req); err != nil {
		uc.logger.Warn("IsBookable: validation failed: %v", err)
		return nil, err
	}

	variant, err := uc.getVariant(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	// Вариант без лимита доступен всегда
	if variant.IsUnlimited() {
		return &DayResponse{Date: req.Date, Bookable: true}, nil
	}

	existing, err := uc.availability.ExistingDemand(ctx, req.VariantID, domain.SingleDay(req.Date))
	if err != nil {
		uc.logger.Error("IsBookable: failed to calculate demand for variant=%d: %v", req.VariantID, err)
		return nil, fmt.Errorf("%w: failed to calculate demand: %v", ErrInternal, err)
	}

	capacity := *variant.Capacity
	available := capacity - existing
	if available < 0 {
		available = 0
	}

	return &DayResponse{
		Date:      req.Date,
		Bookable:  existing+req.Quantity <= capacity,
		Available: ptr.Ptr(available),
	}, nil
}

// Calendar возвращает по-дневную доступность варианта на диапазоне дат
// Используется внешним рендерингом календаря для затенения занятых дней
func (uc *UseCase) Calendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error) {
	if err := validateCalendar(req); err != nil {
		uc.logger.Warn("Calendar: validation failed: %v", err)
		return nil, err
	}

	variant, err := uc.getVariant(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	rng := domain.DateRange{Start: req.StartDate, End: req.EndDate}

	if variant.IsUnlimited() {
		days, err := rng.Days()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		calendarDays := make([]CalendarDay, len(days))
		for i, day := range days {
			calendarDays[i] = CalendarDay{Date: day, Bookable: true}
		}
		return &CalendarResponse{VariantID: req.VariantID, Quantity: req.Quantity, Days: calendarDays}, nil
	}

	daily, err := uc.availability.DailyDemand(ctx, req.VariantID, rng)
	if err != nil {
		uc.logger.Error("Calendar: failed to calculate demand for variant=%d: %v", req.VariantID, err)
		return nil, fmt.Errorf("%w: failed to calculate demand: %v", ErrInternal, err)
	}

	capacity := *variant.Capacity
	calendarDays := make([]CalendarDay, len(daily))
	for i, d := range daily {
		available := capacity - d.Demand
		if available < 0 {
			available = 0
		}
		calendarDays[i] = CalendarDay{
			Date:      d.Date,
			Bookable:  d.Demand+req.Quantity <= capacity,
			Available: ptr.Ptr(available),
		}
	}

	uc.logger.Info("Calendar: variant=%d, range=[%s, %s], days=%d",
		req.VariantID, req.StartDate, req.EndDate, len(calendarDays))

	return &CalendarResponse{VariantID: req.VariantID, Quantity: req.Quantity, Days: calendarDays}, nil
}

func (uc *UseCase) getVariant(ctx context.Context, id int64) (*domain.Variant, error) {
	variant, err := uc.variantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, variantRepo.ErrVariantNotFound) {
			uc.logger.Warn("check_day: variant id=%d not found", id)
			return nil, ErrVariantNotFound
		}
		uc.logger.Error("check_day: failed to get variant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}
	return variant, nil
}

func validateDay(req *DayRequest) error {
	if req.VariantID <= 0 {
		return fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}
	if req.Quantity < domain.MinQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateCalendar(req *CalendarRequest) error {
	if req.VariantID <= 0 {
		return fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}
	if req.Quantity < domain.MinQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
	}
	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Маршрут публичный: без ограничения длины один запрос разворачивает
	// произвольно большой диапазон в пообъектный ответ
	nights, err := rng.Start.DaysUntil(rng.End)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if nights+1 > domain.MaxRangeDays {
		return fmt.Errorf("%w: date range must not exceed %d days", ErrInvalidInput, domain.MaxRangeDays)
	}

	return nil
}
