package create_booking

import (
	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	createBooking "github.com/m04kA/RIZZA-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/RIZZA-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceType   string  `json:"serviceType"` // "WASH_FULL" | "REVIEW"
	MakeID        int64   `json:"makeId"`
	ModelID       int64   `json:"modelId"`
	VehicleYear   *int    `json:"vehicleYear,omitempty"`
	Date          string  `json:"date"` // "2026-09-15"
	Time          string  `json:"time"` // "14:30"
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	Plate         *string `json:"plate,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата и время передаются сырыми строками: вся валидация, включая
// порядок проверок, живет в use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceType:   domain.ServiceType(r.ServiceType),
		MakeID:        r.MakeID,
		ModelID:       r.ModelID,
		VehicleYear:   r.VehicleYear,
		Date:          r.Date,
		StartTime:     types.TimeString(r.Time),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Plate:         r.Plate,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		BookingID: resp.BookingID,
		Status:    resp.Status,
	}
}
