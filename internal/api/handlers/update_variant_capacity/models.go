package update_variant_capacity

// UpdateCapacityRequest запрос на изменение вместимости
//
// Capacity = null снимает лимит (безлимитный вариант)
type UpdateCapacityRequest struct {
	Capacity *int `json:"capacity"`
}
