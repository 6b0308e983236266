package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	admitBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVariantNotFound    = "вариант не найден"
	msgInvalidInput       = "некорректные данные бронирования"
	msgLockTimeout        = "не удалось обработать запрос вовремя, повторите попытку"
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitBooking.ErrVariantNotFound):
			h.logger.Warn("POST /bookings - Variant not found: variant_id=%d", req.VariantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: variant_id=%d, error=%v", req.VariantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrLockTimeout):
			h.logger.Warn("POST /bookings - Lock timeout: variant_id=%d", req.VariantID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLockTimeout)

		default:
			h.logger.Error("POST /bookings - Failed to admit booking: variant_id=%d, error=%v",
				req.VariantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Отказ по доступности — ожидаемый исход, отдаем 409 с количеством
	// оставшихся единиц для сообщения пользователю
	if !result.Admitted {
		h.logger.Info("POST /bookings - Rejected: variant_id=%d, available=%v",
			req.VariantID, result.Available)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	h.logger.Info("POST /bookings - Booking admitted: booking_id=%d, variant_id=%d",
		result.Booking.ID, req.VariantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
