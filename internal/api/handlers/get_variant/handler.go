package get_variant

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

// Handle GET /api/v1/variants/{variantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	variantID, err := strconv.ParseInt(vars["variantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /variants/{id} - Invalid variant ID: %s", vars["variantId"])
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	variant, err := h.service.GetVariant(r.Context(), variantID)
	if err != nil {
		switch {
		case errors.Is(err, variantsService.ErrVariantNotFound):
			h.logger.Warn("GET /variants/{id} - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, variantsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVariantID)

		default:
			h.logger.Error("GET /variants/{id} - Failed to get variant: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainVariant(variant))
}
