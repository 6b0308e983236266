package variants

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
)

// Service сервис каталога вариантов
type Service struct {
	variantRepo VariantRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(variantRepo VariantRepository, logger Logger) *Service {
	return &Service{
		variantRepo: variantRepo,
		logger:      logger,
	}
}

// GetVariant получает вариант по ID
func (s *Service) GetVariant(ctx context.Context, id int64) (*domain.Variant, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}

	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, variantRepo.ErrVariantNotFound) {
			return nil, ErrVariantNotFound
		}
		s.logger.Error("GetVariant: failed to get variant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	return variant, nil
}

// ListProductVariants получает все варианты товара
func (s *Service) ListProductVariants(ctx context.Context, productID int64) ([]*domain.Variant, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	variants, err := s.variantRepo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("ListProductVariants: failed to list variants for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: failed to list variants: %v", ErrInternal, err)
	}

	return variants, nil
}

// UpdateCapacity обновляет вместимость варианта
// capacity = nil снимает ограничение. Изменение не пересматривает уже
// записанные бронирования: при уменьшении вместимости новые запросы
// будут отклоняться, пока занятость не опустится ниже нового лимита
func (s *Service) UpdateCapacity(ctx context.Context, id int64, capacity *int) error {
	if id <= 0 {
		return fmt.Errorf("%w: variantID must be positive", ErrInvalidInput)
	}

	if capacity != nil {
		if *capacity < domain.MinCapacity || *capacity > domain.MaxCapacity {
			return fmt.Errorf("%w: capacity must be between %d and %d",
				ErrInvalidCapacity, domain.MinCapacity, domain.MaxCapacity)
		}
	}

	if err := s.variantRepo.UpdateCapacity(ctx, id, capacity); err != nil {
		if errors.Is(err, variantRepo.ErrVariantNotFound) {
			return ErrVariantNotFound
		}
		s.logger.Error("UpdateCapacity: failed to update variant id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to update capacity: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCapacity: variant id=%d capacity updated", id)
	return nil
}
