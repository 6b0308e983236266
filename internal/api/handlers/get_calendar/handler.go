package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	checkDay "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_day"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

const (
	msgInvalidVariantID = "некорректный ID варианта"
	msgInvalidDates     = "некорректный диапазон дат, ожидается start и end в формате YYYY-MM-DD"
	msgInvalidQuantity  = "некорректное количество"
	msgVariantNotFound  = "вариант не найден"
)

type Handler struct {
	useCase CheckDayUseCase
	logger  Logger
}

func NewHandler(useCase CheckDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/variants/{variantId}/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD&quantity=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	variantID, err := strconv.ParseInt(vars["variantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /variants/{id}/calendar - Invalid variant ID: %s", vars["variantId"])
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	start, err := types.NewDateStringFromString(r.URL.Query().Get("start"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	end, err := types.NewDateStringFromString(r.URL.Query().Get("end"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuantity)
			return
		}
	}

	result, err := h.useCase.Calendar(r.Context(), &checkDay.CalendarRequest{
		VariantID: variantID,
		StartDate: start,
		EndDate:   end,
		Quantity:  quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkDay.ErrVariantNotFound):
			h.logger.Warn("GET /variants/{id}/calendar - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, checkDay.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /variants/{id}/calendar - Failed: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
