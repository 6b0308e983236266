package domain

import "time"

// Variant represents a bookable unit type (room category) of a product,
// drawn from a shared per-day capacity pool
type Variant struct {
	ID         int64
	ProductID  int64
	Name       string
	Capacity   *int              // nil = неограниченная вместимость
	Attributes map[string]string // Непрозрачные атрибуты (этаж, вид из окна и т.п.), ядром не интерпретируются

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnlimited returns true if the variant has no capacity limit
func (v *Variant) IsUnlimited() bool {
	return v.Capacity == nil
}

// CapacityOrZero returns the capacity, or 0 for unlimited variants
// Для неограниченных вариантов значение не имеет смысла — проверяйте IsUnlimited
func (v *Variant) CapacityOrZero() int {
	if v.Capacity == nil {
		return 0
	}
	return *v.Capacity
}
