package update_variant_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	variantsService "github.com/m04kA/SMC-HotelBookingService/internal/service/variants"
)

const (
	msgInvalidVariantID = "некорректный ID варианта"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidCapacity  = "недопустимая вместимость"
	msgVariantNotFound  = "вариант не найден"
)

type Handler struct {
	service VariantsService
	logger  Logger
}

func NewHandler(service VariantsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/variants/{variantId}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	variantID, err := strconv.ParseInt(vars["variantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /variants/{id}/capacity - Invalid variant ID: %s", vars["variantId"])
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	var req UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /variants/{id}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateCapacity(r.Context(), variantID, req.Capacity); err != nil {
		switch {
		case errors.Is(err, variantsService.ErrVariantNotFound):
			h.logger.Warn("PUT /variants/{id}/capacity - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, variantsService.ErrInvalidCapacity):
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, variantsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVariantID)

		default:
			h.logger.Error("PUT /variants/{id}/capacity - Failed: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /variants/{id}/capacity - Capacity updated: variant_id=%d", variantID)
	w.WriteHeader(http.StatusNoContent)
}
