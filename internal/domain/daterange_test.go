package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange("2026-03-15", "2026-03-18")
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2026-03-15"), r.Start)
	assert.Equal(t, types.DateString("2026-03-18"), r.End)

	// Один день — валидный диапазон
	_, err = NewDateRange("2026-03-15", "2026-03-15")
	assert.NoError(t, err)

	// Конец раньше начала
	_, err = NewDateRange("2026-03-18", "2026-03-15")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange("garbage", "2026-03-15")
	assert.Error(t, err)
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: "2026-03-15", End: "2026-03-18"}

	assert.True(t, r.Contains("2026-03-15"), "граница начала включается")
	assert.True(t, r.Contains("2026-03-16"))
	assert.True(t, r.Contains("2026-03-18"), "граница конца включается")
	assert.False(t, r.Contains("2026-03-14"))
	assert.False(t, r.Contains("2026-03-19"))
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: "2026-03-10", End: "2026-03-15"}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"полностью внутри", DateRange{Start: "2026-03-11", End: "2026-03-14"}, true},
		{"касание по последнему дню", DateRange{Start: "2026-03-15", End: "2026-03-20"}, true},
		{"касание по первому дню", DateRange{Start: "2026-03-05", End: "2026-03-10"}, true},
		{"полностью накрывает", DateRange{Start: "2026-03-01", End: "2026-03-31"}, true},
		{"строго до", DateRange{Start: "2026-03-01", End: "2026-03-09"}, false},
		{"строго после", DateRange{Start: "2026-03-16", End: "2026-03-20"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	r := DateRange{Start: "2026-03-30", End: "2026-04-02"}

	days, err := r.Days()
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2026-03-30", "2026-03-31", "2026-04-01", "2026-04-02"}, days)

	single := SingleDay("2026-03-15")
	days, err = single.Days()
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2026-03-15"}, days)
}

func TestDateRange_Nights(t *testing.T) {
	r := DateRange{Start: "2026-03-15", End: "2026-03-18"}
	nights, err := r.Nights()
	require.NoError(t, err)
	assert.Equal(t, 3, nights)

	nights, err = SingleDay("2026-03-15").Nights()
	require.NoError(t, err)
	assert.Equal(t, 0, nights)
}

func TestBookingRecord_StatusPredicates(t *testing.T) {
	pending := &BookingRecord{Status: StatusPending}
	confirmed := &BookingRecord{Status: StatusConfirmed}
	cancelled := &BookingRecord{Status: StatusCancelled}
	removed := &BookingRecord{Status: StatusRemoved}

	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, cancelled.IsActive())
	assert.False(t, removed.IsActive())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, removed.CanBeCancelled())
}
