package models

import (
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
)

// ListRequest параметры административной выборки бронирований
type ListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *string
}

// BookingRecord запись бронирования для административного просмотра и экспорта
type BookingRecord struct {
	ID            string
	Date          time.Time
	Time          string
	Status        string
	ServiceType   string
	ServiceLabel  string
	MakeName      string
	ModelName     string
	VehicleYear   *int
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Plate         *string
	Notes         *string
	CreatedAt     time.Time
	ConfirmedAt   *time.Time
}

// BookingListResponse список записей бронирований
type BookingListResponse struct {
	Bookings []BookingRecord
}

// ToDomainStatus конвертирует строковый статус в доменный
func ToDomainStatus(s string) (domain.BookingStatus, bool) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(s), true
	default:
		return "", false
	}
}

// FromDomainBooking конвертирует доменное бронирование в запись
func FromDomainBooking(b *domain.Booking) BookingRecord {
	return BookingRecord{
		ID:            b.ID,
		Date:          b.Date,
		Time:          b.StartTime.String(),
		Status:        string(b.Status),
		ServiceType:   string(b.ServiceType),
		ServiceLabel:  b.ServiceType.Label(),
		MakeName:      b.MakeName,
		ModelName:     b.ModelName,
		VehicleYear:   b.VehicleYear,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Plate:         b.Plate,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		ConfirmedAt:   b.ConfirmedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	records := make([]BookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: records}
}
