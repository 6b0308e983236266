package get_variant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

const (
	msgInvalidVariantID = "некорректный ID варианта"
	msgInvalidFilter    = "некорректные параметры фильтра"
	msgVariantNotFound  = "вариант не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/variants/{variantId}/bookings?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	variantID, err := strconv.ParseInt(vars["variantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /variants/{id}/bookings - Invalid variant ID: %s", vars["variantId"])
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	req := &models.GetVariantBookingsRequest{VariantID: variantID}

	query := r.URL.Query()
	if v := query.Get("startDate"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeInactive = includeInactive
	}

	result, err := h.service.GetVariantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrVariantNotFound):
			h.logger.Warn("GET /variants/{id}/bookings - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput), errors.Is(err, bookingsService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /variants/{id}/bookings - Failed: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
