package get_variant

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// VariantResponse HTTP response model
type VariantResponse struct {
	ID         int64             `json:"id"`
	ProductID  int64             `json:"productId"`
	Name       string            `json:"name"`
	Capacity   *int              `json:"capacity,omitempty"` // Отсутствует у вариантов без лимита
	Unlimited  bool              `json:"unlimited"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// FromDomainVariant конвертирует доменную модель в response
func FromDomainVariant(v *domain.Variant) *VariantResponse {
	return &VariantResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		Name:       v.Name,
		Capacity:   v.Capacity,
		Unlimited:  v.IsUnlimited(),
		Attributes: v.Attributes,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
