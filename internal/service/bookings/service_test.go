package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type memLedger struct {
	records map[int64]*domain.BookingRecord
}

func (l *memLedger) GetByID(_ context.Context, id int64) (*domain.BookingRecord, error) {
	r, ok := l.records[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r, nil
}

func (l *memLedger) GetByVariantWithFilter(_ context.Context, filter domain.VariantBookingsFilter) ([]*domain.BookingRecord, error) {
	var out []*domain.BookingRecord
	for _, r := range l.records {
		if r.VariantID != filter.VariantID {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (l *memLedger) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r, ok := l.records[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.Status = status
	return nil
}

func (l *memLedger) Cancel(_ context.Context, id int64, reason string) error {
	r, ok := l.records[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	r.Status = domain.StatusCancelled
	r.CancellationReason = &reason
	r.CancelledAt = &now
	return nil
}

type memCatalog struct {
	variants map[int64]*domain.Variant
}

func (c *memCatalog) GetByID(_ context.Context, id int64) (*domain.Variant, error) {
	v, ok := c.variants[id]
	if !ok {
		return nil, variantRepo.ErrVariantNotFound
	}
	return v, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(records ...*domain.BookingRecord) (*Service, *memLedger) {
	ledger := &memLedger{records: map[int64]*domain.BookingRecord{}}
	for _, r := range records {
		ledger.records[r.ID] = r
	}
	catalog := &memCatalog{variants: map[int64]*domain.Variant{
		1: {ID: 1, ProductID: 100, Name: "Standard double", Capacity: ptr.Ptr(5)},
	}}
	return NewService(ledger, catalog, nopLogger{}), ledger
}

func pendingRecord(id int64) *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:        id,
		VariantID: 1,
		StartDate: "2026-03-15",
		EndDate:   "2026-03-18",
		Quantity:  2,
		Status:    domain.StatusPending,
	}
}

func TestGetBooking(t *testing.T) {
	svc, _ := newTestService(pendingRecord(10))

	resp, err := svc.GetBooking(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2026-03-15", resp.StartDate)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetBooking(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetBooking(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirmBooking(t *testing.T) {
	svc, ledger := newTestService(pendingRecord(10))

	require.NoError(t, svc.ConfirmBooking(context.Background(), 10))
	assert.Equal(t, domain.StatusConfirmed, ledger.records[10].Status)

	// Повторное подтверждение отклоняется: confirmed не pending
	assert.ErrorIs(t, svc.ConfirmBooking(context.Background(), 10), ErrCannotConfirm)

	assert.ErrorIs(t, svc.ConfirmBooking(context.Background(), 99), ErrBookingNotFound)
}

func TestConfirmBooking_CancelledRejected(t *testing.T) {
	record := pendingRecord(10)
	record.Status = domain.StatusCancelled
	svc, _ := newTestService(record)

	assert.ErrorIs(t, svc.ConfirmBooking(context.Background(), 10), ErrCannotConfirm)
}

func TestCancelBooking(t *testing.T) {
	svc, ledger := newTestService(pendingRecord(10))

	require.NoError(t, svc.CancelBooking(context.Background(), 10, "guest request"))

	cancelled := ledger.records[10]
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "guest request", *cancelled.CancellationReason)
	assert.NotNil(t, cancelled.CancelledAt)

	// Вторая отмена отклоняется
	assert.ErrorIs(t, svc.CancelBooking(context.Background(), 10, "again"), ErrCannotCancel)
}

func TestCancelBooking_ConfirmedCanBeCancelled(t *testing.T) {
	record := pendingRecord(10)
	record.Status = domain.StatusConfirmed
	svc, ledger := newTestService(record)

	require.NoError(t, svc.CancelBooking(context.Background(), 10, ""))
	assert.Equal(t, domain.StatusCancelled, ledger.records[10].Status)
}

func TestCancelBooking_ReasonTooLong(t *testing.T) {
	svc, _ := newTestService(pendingRecord(10))

	reason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range reason {
		reason[i] = 'a'
	}

	assert.ErrorIs(t, svc.CancelBooking(context.Background(), 10, string(reason)), ErrInvalidInput)
}

func TestRemoveBooking(t *testing.T) {
	svc, ledger := newTestService(pendingRecord(10))

	require.NoError(t, svc.RemoveBooking(context.Background(), 10))
	assert.Equal(t, domain.StatusRemoved, ledger.records[10].Status)

	// Повторное удаление идемпотентно
	assert.NoError(t, svc.RemoveBooking(context.Background(), 10))

	assert.ErrorIs(t, svc.RemoveBooking(context.Background(), 99), ErrBookingNotFound)
}

func TestGetVariantBookings(t *testing.T) {
	active := pendingRecord(10)
	cancelled := pendingRecord(11)
	cancelled.Status = domain.StatusCancelled
	svc, _ := newTestService(active, cancelled)

	// По умолчанию только активные
	resp, err := svc.GetVariantBookings(context.Background(), &models.GetVariantBookingsRequest{VariantID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	// С неактивными
	resp, err = svc.GetVariantBookings(context.Background(), &models.GetVariantBookingsRequest{
		VariantID:       1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetVariantBookings_Errors(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetVariantBookings(context.Background(), &models.GetVariantBookingsRequest{VariantID: 42})
	assert.ErrorIs(t, err, ErrVariantNotFound)

	badStatus := "unknown"
	_, err = svc.GetVariantBookings(context.Background(), &models.GetVariantBookingsRequest{
		VariantID: 1,
		Status:    &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.GetVariantBookings(context.Background(), &models.GetVariantBookingsRequest{VariantID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
