package mailer

// ConfirmationEmail данные письма со ссылкой подтверждения бронирования
type ConfirmationEmail struct {
	To           string
	CustomerName string
	ServiceLabel string
	VehicleLabel string
	DateLabel    string // DD-MM-YYYY
	Time         string // HH:MM
	Notes        *string
	ConfirmURL   string
}
