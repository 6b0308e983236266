package admit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// UseCase use case приема бронирования (admission control)
//
// Гарантия: для варианта с конечной вместимостью C и любого календарного дня
// сумма quantity активных бронирований, покрывающих день, никогда не превышает C.
// Прием — все или ничего: меньшее количество вместо запрошенного не выдается.
type UseCase struct {
	bookingRepo  BookingRepository
	variantRepo  VariantRepository
	availability AvailabilityCalculator
	txManager    TransactionManager
	locker       VariantLocker
	metrics      MetricsObserver
	logger       Logger

	// legacyCartAggregation включает историческое поведение корзины:
	// суммировать все позиции варианта независимо от пересечения дат
	legacyCartAggregation bool
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик отключен
func NewUseCase(
	bookingRepo BookingRepository,
	variantRepo VariantRepository,
	availability AvailabilityCalculator,
	txManager TransactionManager,
	locker VariantLocker,
	metrics MetricsObserver,
	legacyCartAggregation bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:           bookingRepo,
		variantRepo:           variantRepo,
		availability:          availability,
		txManager:             txManager,
		locker:                locker,
		metrics:               metrics,
		legacyCartAggregation: legacyCartAggregation,
		logger:                logger,
	}
}

// Execute принимает решение о приеме бронирования
//
// Чтение занятости и запись новой записи для одного варианта атомарны
// относительно других приемов того же варианта: критическая секция на
// id варианта плюс SERIALIZABLE транзакция с FOR UPDATE на читаемых строках.
// Приемы разных вариантов идут параллельно и не упорядочены между собой.
// Внутри критической секции ровно одно чтение и, при успехе, одна запись;
// повторов и откатов по таймауту ядро не делает — это забота вызывающего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: variant=%d, range=[%s, %s], quantity=%d, pending=%d",
		req.VariantID, req.StartDate, req.EndDate, req.Quantity, len(req.SessionPending))

	// 1. Валидация входных данных (до обращений к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	rng := domain.DateRange{Start: req.StartDate, End: req.EndDate}

	// 2. Получаем вариант и его вместимость из каталога
	variant, err := uc.variantRepo.GetByID(ctx, req.VariantID)
	if err != nil {
		if errors.Is(err, variantRepo.ErrVariantNotFound) {
			uc.logger.Warn("AdmitBooking: variant id=%d not found", req.VariantID)
			return nil, ErrVariantNotFound
		}
		uc.logger.Error("AdmitBooking: failed to get variant id=%d: %v", req.VariantID, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	// 3. Неограниченная вместимость: прием без блокировки, запись в журнал
	// остается для учета
	if variant.IsUnlimited() {
		created, err := uc.writeRecord(ctx, req)
		if err != nil {
			uc.observe("error")
			return nil, err
		}
		uc.logger.Info("AdmitBooking: admitted without capacity check (unlimited), booking id=%d", created.ID)
		uc.observe("admitted")
		return admittedResponse(created), nil
	}

	capacity := *variant.Capacity

	// 4. Критическая секция на id варианта; ожидание ограничено
	// дедлайном вызывающего
	if err := uc.locker.Lock(ctx, req.VariantID); err != nil {
		uc.logger.Warn("AdmitBooking: lock not acquired for variant=%d: %v", req.VariantID, err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: %v", ErrLockTimeout, err)
	}
	defer uc.locker.Unlock(req.VariantID)

	var (
		created   *domain.BookingRecord
		rejected  bool
		available int
	)

	// 5. Чтение занятости и запись — в одной SERIALIZABLE транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.availability.ExistingDemand(txCtx, req.VariantID, rng)
		if err != nil {
			return fmt.Errorf("%w: failed to calculate existing demand: %v", ErrInternal, err)
		}

		// Общий спрос = занятость по журналу + запрошенное количество
		// + незакоммиченный спрос сессии на пересекающиеся даты
		total := existing + totalRequested(req, uc.legacyCartAggregation)

		if total > capacity {
			rejected = true
			available = capacity - existing
			if available < 0 {
				available = 0
			}
			// Записи нет — транзакция фиксируется пустой
			return nil
		}

		record := &domain.BookingRecord{
			VariantID: req.VariantID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Quantity:  req.Quantity,
			Status:    domain.StatusPending,
		}

		created, err = uc.bookingRepo.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("%w: failed to write booking record: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("AdmitBooking: admission failed for variant=%d: %v", req.VariantID, err)
		uc.observe("error")
		return nil, err
	}

	if rejected {
		uc.logger.Info("AdmitBooking: rejected for variant=%d, available=%d, requested=%d",
			req.VariantID, available, req.Quantity)
		uc.observe("rejected")
		return &Response{
			Admitted:  false,
			Reason:    ptr.Ptr(ReasonInsufficientAvailability),
			Available: ptr.Ptr(available),
		}, nil
	}

	uc.logger.Info("AdmitBooking: admitted booking id=%d for variant=%d", created.ID, req.VariantID)
	uc.observe("admitted")
	return admittedResponse(created), nil
}

// writeRecord пишет запись вне критической секции (вариант без лимита)
func (uc *UseCase) writeRecord(ctx context.Context, req *Request) (*domain.BookingRecord, error) {
	record := &domain.BookingRecord{
		VariantID: req.VariantID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Quantity:  req.Quantity,
		Status:    domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("AdmitBooking: failed to write booking record: %v", err)
		return nil, fmt.Errorf("%w: failed to write booking record: %v", ErrInternal, err)
	}
	return created, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAdmission(outcome)
	}
}

func admittedResponse(record *domain.BookingRecord) *Response {
	return &Response{
		Admitted: true,
		Booking: &BookingInfo{
			ID:        record.ID,
			VariantID: record.VariantID,
			StartDate: record.StartDate,
			EndDate:   record.EndDate,
			Quantity:  record.Quantity,
			Status:    string(record.Status),
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		},
	}
}
