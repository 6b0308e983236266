package check_availability

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
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidQuantity  = "некорректное количество"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/variants/{variantId}/availability?date=YYYY-MM-DD&quantity=N
// quantity по умолчанию 1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	variantID, err := strconv.ParseInt(vars["variantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /variants/{id}/availability - Invalid variant ID: %s", vars["variantId"])
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	date, err := types.NewDateStringFromString(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /variants/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			h.logger.Warn("GET /variants/{id}/availability - Invalid quantity: %s", q)
			handlers.RespondBadRequest(w, msgInvalidQuantity)
			return
		}
	}

	result, err := h.useCase.IsBookable(r.Context(), &checkDay.DayRequest{
		VariantID: variantID,
		Date:      date,
		Quantity:  quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkDay.ErrVariantNotFound):
			h.logger.Warn("GET /variants/{id}/availability - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, checkDay.ErrInvalidInput):
			h.logger.Warn("GET /variants/{id}/availability - Invalid input: variant_id=%d, error=%v", variantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /variants/{id}/availability - Failed: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(variantID, quantity, result))
}
