package create_booking

import (
	"time"

	admitBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/admit_booking"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// PendingEntry незакоммиченная позиция сессии (корзины) в HTTP запросе
type PendingEntry struct {
	VariantID int64  `json:"variantId"`
	StartDate string `json:"startDate"` // "2025-10-15"
	EndDate   string `json:"endDate"`   // "2025-10-18"
	Quantity  int    `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VariantID      int64          `json:"variantId"`
	StartDate      string         `json:"startDate"` // "2025-10-15"
	EndDate        string         `json:"endDate"`   // "2025-10-18"
	Quantity       int            `json:"quantity"`
	SessionPending []PendingEntry `json:"sessionPending,omitempty"`
}

// BookingInfo данные записанного бронирования в HTTP ответе
type BookingInfo struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variantId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AdmissionResponse HTTP response model
// При отказе admitted=false, reason и available заполнены, booking отсутствует
type AdmissionResponse struct {
	Admitted  bool         `json:"admitted"`
	Reason    *string      `json:"reason,omitempty"`
	Available *int         `json:"available,omitempty"`
	Booking   *BookingInfo `json:"booking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*admitBooking.Request, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := types.NewDateStringFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	pending := make([]admitBooking.PendingEntry, 0, len(r.SessionPending))
	for _, e := range r.SessionPending {
		entryStart, err := types.NewDateStringFromString(e.StartDate)
		if err != nil {
			return nil, err
		}
		entryEnd, err := types.NewDateStringFromString(e.EndDate)
		if err != nil {
			return nil, err
		}
		pending = append(pending, admitBooking.PendingEntry{
			VariantID: e.VariantID,
			StartDate: entryStart,
			EndDate:   entryEnd,
			Quantity:  e.Quantity,
		})
	}

	return &admitBooking.Request{
		VariantID:      r.VariantID,
		StartDate:      startDate,
		EndDate:        endDate,
		Quantity:       r.Quantity,
		SessionPending: pending,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitBooking.Response) *AdmissionResponse {
	out := &AdmissionResponse{
		Admitted:  resp.Admitted,
		Reason:    resp.Reason,
		Available: resp.Available,
	}

	if resp.Booking != nil {
		out.Booking = &BookingInfo{
			ID:        resp.Booking.ID,
			VariantID: resp.Booking.VariantID,
			StartDate: resp.Booking.StartDate.String(),
			EndDate:   resp.Booking.EndDate.String(),
			Quantity:  resp.Booking.Quantity,
			Status:    resp.Booking.Status,
			CreatedAt: resp.Booking.CreatedAt.Format(time.RFC3339),
			UpdatedAt: resp.Booking.UpdatedAt.Format(time.RFC3339),
		}
	}

	return out
}
