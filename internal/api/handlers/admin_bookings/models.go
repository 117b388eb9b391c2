package admin_bookings

import (
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP model бронирования в административном списке
type BookingResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	ServiceType   string  `json:"serviceType"`
	ServiceLabel  string  `json:"serviceLabel"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	VehicleYear   *int    `json:"vehicleYear,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	Plate         *string `json:"plate,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	ConfirmedAt   *string `json:"confirmedAt,omitempty"`
}

// BookingsListResponse HTTP response model административного списка
type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceRecord конвертирует запись сервиса в HTTP model
func FromServiceRecord(rec *models.BookingRecord) *BookingResponse {
	resp := &BookingResponse{
		ID:            rec.ID,
		Date:          rec.Date.Format(domain.DateFormat),
		Time:          rec.Time,
		Status:        rec.Status,
		ServiceType:   rec.ServiceType,
		ServiceLabel:  rec.ServiceLabel,
		Make:          rec.MakeName,
		Model:         rec.ModelName,
		VehicleYear:   rec.VehicleYear,
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		CustomerEmail: rec.CustomerEmail,
		Plate:         rec.Plate,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}

	if rec.ConfirmedAt != nil {
		confirmedAt := rec.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedAt
	}

	return resp
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingsListResponse {
	bookings := make([]BookingResponse, len(resp.Bookings))
	for i := range resp.Bookings {
		bookings[i] = *FromServiceRecord(&resp.Bookings[i])
	}
	return &BookingsListResponse{Bookings: bookings}
}
