package list_product_variants

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// VariantResponse один вариант в списке
type VariantResponse struct {
	ID         int64             `json:"id"`
	ProductID  int64             `json:"productId"`
	Name       string            `json:"name"`
	Capacity   *int              `json:"capacity,omitempty"`
	Unlimited  bool              `json:"unlimited"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// VariantListResponse HTTP response model
type VariantListResponse struct {
	Variants []VariantResponse `json:"variants"`
	Total    int               `json:"total"`
}

// FromDomainVariants конвертирует доменные модели в response
func FromDomainVariants(variants []*domain.Variant) *VariantListResponse {
	out := &VariantListResponse{
		Variants: make([]VariantResponse, len(variants)),
		Total:    len(variants),
	}
	for i, v := range variants {
		out.Variants[i] = VariantResponse{
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
	return out
}
