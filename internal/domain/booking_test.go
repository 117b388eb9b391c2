package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Occupies(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	testCases := []struct {
		name     string
		booking  Booking
		expected bool
	}{
		{
			name:     "Confirmed always occupies",
			booking:  Booking{Status: StatusConfirmed, CreatedAt: now.Add(-24 * time.Hour)},
			expected: true,
		},
		{
			name:     "Fresh pending occupies",
			booking:  Booking{Status: StatusPending, CreatedAt: now.Add(-10 * time.Minute)},
			expected: true,
		},
		{
			name:     "Pending created exactly window ago still occupies",
			booking:  Booking{Status: StatusPending, CreatedAt: now.Add(-window)},
			expected: true,
		},
		{
			name:     "Expired pending does not occupy",
			booking:  Booking{Status: StatusPending, CreatedAt: now.Add(-window - time.Second)},
			expected: false,
		},
		{
			name:     "Cancelled never occupies",
			booking:  Booking{Status: StatusCancelled, CreatedAt: now},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.booking.Occupies(now, window))
		})
	}
}

func TestBooking_VehicleLabel(t *testing.T) {
	year := 2020
	withYear := Booking{MakeName: "BMW", ModelName: "Série 3", VehicleYear: &year}
	withoutYear := Booking{MakeName: "BMW", ModelName: "Série 3"}

	assert.Equal(t, "BMW Série 3 2020", withYear.VehicleLabel())
	assert.Equal(t, "BMW Série 3", withoutYear.VehicleLabel())
}

func TestServiceType(t *testing.T) {
	assert.True(t, ServiceWashFull.IsValid())
	assert.True(t, ServiceReview.IsValid())
	assert.False(t, ServiceType("DETAILING").IsValid())

	assert.Equal(t, "Lavagem Completa", ServiceWashFull.Label())
	assert.Equal(t, "Revisão", ServiceReview.Label())
	assert.Equal(t, "DETAILING", ServiceType("DETAILING").Label())
}
