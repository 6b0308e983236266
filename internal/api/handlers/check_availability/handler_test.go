package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type fakeUseCase struct {
	resp *checkDay.DayResponse
	err  error
}

func (f *fakeUseCase) IsBookable(_ context.Context, _ *checkDay.DayRequest) (*checkDay.DayResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CheckDayUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/variants/{variantId}/availability", NewHandler(uc, nopLogger{}).Handle)
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandle_Bookable(t *testing.T) {
	uc := &fakeUseCase{resp: &checkDay.DayResponse{
		Date:      "2026-03-15",
		Bookable:  true,
		Available: ptr.Ptr(3),
	}}

	rr := doRequest(t, uc, "/api/v1/variants/1/availability?date=2026-03-15&quantity=2")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Bookable)
	require.NotNil(t, resp.Available)
	assert.Equal(t, 3, *resp.Available)
}

func TestHandle_UseCaseInvalidInput(t *testing.T) {
	// Ошибка валидации из use case не должна маскироваться под
	// сообщение про количество: параметры могут быть любыми
	rr := doRequest(t, &fakeUseCase{err: checkDay.ErrInvalidInput}, "/api/v1/variants/1/availability?date=2026-03-15&quantity=5")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidParams, resp.Error)
}

func TestHandle_VariantNotFound(t *testing.T) {
	rr := doRequest(t, &fakeUseCase{err: checkDay.ErrVariantNotFound}, "/api/v1/variants/99/availability?date=2026-03-15")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandle_InvalidQueryParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"bad variant id", "/api/v1/variants/abc/availability?date=2026-03-15", msgInvalidVariantID},
		{"bad date", "/api/v1/variants/1/availability?date=15.03.2026", msgInvalidDate},
		{"bad quantity", "/api/v1/variants/1/availability?date=2026-03-15&quantity=two", msgInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, &fakeUseCase{}, tt.target)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
