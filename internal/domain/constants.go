package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinVehicleYear         = 1950
	MinCustomerNameLength  = 2
	MinCustomerPhoneLength = 6
	MinConfirmTokenLength  = 10
	MaxNotesLength         = 500
)

// Default booking configuration values
const (
	DefaultConfirmTokenMinutes = 30
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "18:00"
	DefaultSlotDurationMinutes = 30
)
