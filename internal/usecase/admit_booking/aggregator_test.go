package admit_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalRequested(t *testing.T) {
	req := &Request{
		VariantID: 1,
		StartDate: "2026-03-15",
		EndDate:   "2026-03-18",
		Quantity:  2,
		SessionPending: []PendingEntry{
			{VariantID: 1, StartDate: "2026-03-17", EndDate: "2026-03-20", Quantity: 3}, // пересекается
			{VariantID: 1, StartDate: "2026-04-01", EndDate: "2026-04-03", Quantity: 4}, // не пересекается
			{VariantID: 2, StartDate: "2026-03-15", EndDate: "2026-03-18", Quantity: 5}, // другой вариант
		},
	}

	assert.Equal(t, 5, totalRequested(req, false), "учитываются только пересекающиеся позиции того же варианта")
	assert.Equal(t, 9, totalRequested(req, true), "legacy: все позиции варианта независимо от дат")
}

func TestTotalRequested_EmptySession(t *testing.T) {
	req := &Request{VariantID: 1, StartDate: "2026-03-15", EndDate: "2026-03-18", Quantity: 2}

	assert.Equal(t, 2, totalRequested(req, false))
	assert.Equal(t, 2, totalRequested(req, true))
}

func TestTotalRequested_TouchingRangesOverlap(t *testing.T) {
	// Диапазоны включительные: общий день считается пересечением
	req := &Request{
		VariantID: 1,
		StartDate: "2026-03-15",
		EndDate:   "2026-03-18",
		Quantity:  1,
		SessionPending: []PendingEntry{
			{VariantID: 1, StartDate: "2026-03-18", EndDate: "2026-03-21", Quantity: 1},
		},
	}

	assert.Equal(t, 2, totalRequested(req, false))
}
