package admit_booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	variantRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/variant"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/keymutex"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// memLedger журнал в памяти; обслуживает и запись use case,
// и чтение калькулятора занятости
type memLedger struct {
	mu      sync.Mutex
	nextID  int64
	records []*domain.BookingRecord
}

func (l *memLedger) Create(_ context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	created := *record
	created.ID = l.nextID
	l.records = append(l.records, &created)
	return &created, nil
}

func (l *memLedger) QueryOverlapping(_ context.Context, variantID int64, rng domain.DateRange) ([]*domain.BookingRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []*domain.BookingRecord
	for _, r := range l.records {
		if r.VariantID == variantID && r.IsActive() && r.Range().Overlaps(rng) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *memLedger) add(variantID int64, start, end types.DateString, qty int, status domain.BookingStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.records = append(l.records, &domain.BookingRecord{
		ID:        l.nextID,
		VariantID: variantID,
		StartDate: start,
		EndDate:   end,
		Quantity:  qty,
		Status:    status,
	})
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

// passTxManager выполняет функцию без реальной транзакции
type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *countingMetrics) ObserveAdmission(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[string]int{}
	}
	m.outcomes[outcome]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(ledger *memLedger, catalog *memCatalog, legacy bool) (*UseCase, *countingMetrics) {
	m := &countingMetrics{}
	uc := NewUseCase(
		ledger,
		catalog,
		availability.NewService(ledger, nopLogger{}),
		passTxManager{},
		keymutex.New(),
		m,
		legacy,
		nopLogger{},
	)
	return uc, m
}

func limitedCatalog(variantID int64, capacity int) *memCatalog {
	return &memCatalog{variants: map[int64]*domain.Variant{
		variantID: {ID: variantID, ProductID: 100, Name: "Standard double", Capacity: ptr.Ptr(capacity)},
	}}
}

func request(variantID int64, start, end types.DateString, qty int) *Request {
	return &Request{VariantID: variantID, StartDate: start, EndDate: end, Quantity: qty}
}

func TestExecute_AdmitsIntoEmptyLedger(t *testing.T) {
	ledger := &memLedger{}
	uc, m := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 2))
	require.NoError(t, err)

	assert.True(t, resp.Admitted)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Booking.Status)
	assert.Nil(t, resp.Reason)
	assert.Equal(t, 1, m.outcomes["admitted"])
}

func TestExecute_AdmitsExactlyToCapacity(t *testing.T) {
	// Граница: existing + requested == capacity принимается
	ledger := &memLedger{}
	ledger.add(1, "2026-03-15", "2026-03-18", 3, domain.StatusConfirmed)
	uc, _ := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 2))
	require.NoError(t, err)
	assert.True(t, resp.Admitted)
}

func TestExecute_RejectsOverCapacity(t *testing.T) {
	ledger := &memLedger{}
	ledger.add(1, "2026-03-15", "2026-03-18", 4, domain.StatusConfirmed)
	uc, m := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 2))
	require.NoError(t, err, "отказ по доступности не является ошибкой")

	assert.False(t, resp.Admitted)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, ReasonInsufficientAvailability, *resp.Reason)
	require.NotNil(t, resp.Available)
	assert.Equal(t, 1, *resp.Available)
	assert.Nil(t, resp.Booking)
	assert.Equal(t, 1, m.outcomes["rejected"])

	// Запись в журнал не попала
	records, _ := ledger.QueryOverlapping(context.Background(), 1, domain.DateRange{Start: "2026-03-15", End: "2026-03-18"})
	assert.Len(t, records, 1)
}

func TestExecute_RejectedByBottleneckDay(t *testing.T) {
	// Запрос на три дня упирается в один перегруженный день в середине
	ledger := &memLedger{}
	ledger.add(1, "2026-03-16", "2026-03-16", 5, domain.StatusConfirmed)
	uc, _ := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-17", 1))
	require.NoError(t, err)
	assert.False(t, resp.Admitted)
	assert.Equal(t, 0, *resp.Available)
}

func TestExecute_CancelledRecordsFreeCapacity(t *testing.T) {
	ledger := &memLedger{}
	ledger.add(1, "2026-03-15", "2026-03-18", 5, domain.StatusCancelled)
	uc, _ := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 5))
	require.NoError(t, err)
	assert.True(t, resp.Admitted, "отмененная запись не занимает вместимость")
}

func TestExecute_AvailableClampedAtZero(t *testing.T) {
	// Перепроданный журнал (вместимость уменьшили после приема записей):
	// available не уходит в минус
	ledger := &memLedger{}
	ledger.add(1, "2026-03-15", "2026-03-18", 7, domain.StatusConfirmed)
	uc, _ := newTestUseCase(ledger, limitedCatalog(1, 5), false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 1))
	require.NoError(t, err)
	assert.False(t, resp.Admitted)
	assert.Equal(t, 0, *resp.Available)
}

func TestExecute_UnlimitedVariant(t *testing.T) {
	ledger := &memLedger{}
	ledger.add(1, "2026-03-15", "2026-03-18", 1000, domain.StatusConfirmed)
	catalog := &memCatalog{variants: map[int64]*domain.Variant{
		1: {ID: 1, ProductID: 100, Name: "Unlimited suite", Capacity: nil},
	}}
	uc, m := newTestUseCase(ledger, catalog, false)

	resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 50))
	require.NoError(t, err)
	assert.True(t, resp.Admitted)
	require.NotNil(t, resp.Booking, "учетная запись пишется и для безлимитного варианта")
	assert.Equal(t, 1, m.outcomes["admitted"])
}

func TestExecute_VariantNotFound(t *testing.T) {
	uc, _ := newTestUseCase(&memLedger{}, &memCatalog{variants: map[int64]*domain.Variant{}}, false)

	_, err := uc.Execute(context.Background(), request(42, "2026-03-15", "2026-03-18", 1))
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&memLedger{}, limitedCatalog(1, 5), false)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой variantID", request(0, "2026-03-15", "2026-03-18", 1)},
		{"нулевое количество", request(1, "2026-03-15", "2026-03-18", 0)},
		{"отрицательное количество", request(1, "2026-03-15", "2026-03-18", -3)},
		{"количество выше лимита", request(1, "2026-03-15", "2026-03-18", domain.MaxQuantity+1)},
		{"пустая дата начала", request(1, "", "2026-03-18", 1)},
		{"пустая дата конца", request(1, "2026-03-15", "", 1)},
		{"конец раньше начала", request(1, "2026-03-18", "2026-03-15", 1)},
		{"мусор вместо даты", request(1, "tomorrow", "2026-03-18", 1)},
		{"диапазон длиннее года", request(1, "2026-01-01", "2027-06-01", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SessionPendingCountsOverlapping(t *testing.T) {
	// В корзине уже лежат 3 единицы на пересекающиеся даты:
	// 3 (корзина) + 3 (запрос) > 5
	uc, _ := newTestUseCase(&memLedger{}, limitedCatalog(1, 5), false)

	req := request(1, "2026-03-15", "2026-03-18", 3)
	req.SessionPending = []PendingEntry{
		{VariantID: 1, StartDate: "2026-03-17", EndDate: "2026-03-20", Quantity: 3},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Admitted)
}

func TestExecute_SessionPendingDisjointIgnored(t *testing.T) {
	// Позиция корзины на другие даты доступность не съедает
	uc, _ := newTestUseCase(&memLedger{}, limitedCatalog(1, 5), false)

	req := request(1, "2026-03-15", "2026-03-18", 3)
	req.SessionPending = []PendingEntry{
		{VariantID: 1, StartDate: "2026-04-01", EndDate: "2026-04-05", Quantity: 3},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Admitted)
}

func TestExecute_SessionPendingLegacyMode(t *testing.T) {
	// В историческом режиме суммируются все позиции варианта,
	// даже без пересечения дат
	uc, _ := newTestUseCase(&memLedger{}, limitedCatalog(1, 5), true)

	req := request(1, "2026-03-15", "2026-03-18", 3)
	req.SessionPending = []PendingEntry{
		{VariantID: 1, StartDate: "2026-04-01", EndDate: "2026-04-05", Quantity: 3},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Admitted)
}

func TestExecute_SessionPendingOtherVariantIgnored(t *testing.T) {
	uc, _ := newTestUseCase(&memLedger{}, limitedCatalog(1, 5), false)

	req := request(1, "2026-03-15", "2026-03-18", 3)
	req.SessionPending = []PendingEntry{
		{VariantID: 2, StartDate: "2026-03-15", EndDate: "2026-03-18", Quantity: 100},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Admitted)
}

func TestExecute_ConcurrentAdmissionsNeverOversell(t *testing.T) {
	// N конкурентных запросов по 1 единице при вместимости C < N:
	// принято ровно C, остальные отклонены, перепродажи нет
	const capacity = 5
	const workers = 12

	ledger := &memLedger{}
	uc, m := newTestUseCase(ledger, limitedCatalog(1, capacity), false)

	var wg sync.WaitGroup
	results := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.Execute(context.Background(), request(1, "2026-03-15", "2026-03-18", 1))
			if !assert.NoError(t, err) {
				results <- false
				return
			}
			results <- resp.Admitted
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for ok := range results {
		if ok {
			admitted++
		}
	}
	assert.Equal(t, capacity, admitted)
	assert.Equal(t, capacity, m.outcomes["admitted"])
	assert.Equal(t, workers-capacity, m.outcomes["rejected"])

	// Итоговая занятость не превышает вместимость
	svc := availability.NewService(ledger, nopLogger{})
	demand, err := svc.ExistingDemand(context.Background(), 1, domain.DateRange{Start: "2026-03-15", End: "2026-03-18"})
	require.NoError(t, err)
	assert.Equal(t, capacity, demand)
}
