package list_product_variants

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	variantsService "github.com/m04kA/SMC-HotelBookingService/internal/service/variants"
)

const msgInvalidProductID = "некорректный ID товара"

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

// Handle GET /api/v1/products/{productId}/variants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/variants - Invalid product ID: %s", vars["productId"])
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	variants, err := h.service.ListProductVariants(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, variantsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProductID)

		default:
			h.logger.Error("GET /products/{id}/variants - Failed: product_id=%d, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainVariants(variants))
}
