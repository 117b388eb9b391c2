package confirm_booking

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Token string `json:"token"`
}

// ConfirmBookingResponse HTTP response model успешного подтверждения
type ConfirmBookingResponse struct {
	Ok     bool   `json:"ok"`
	Status string `json:"status"`
}

// ConfirmBookingFailure HTTP response model отказа в подтверждении
type ConfirmBookingFailure struct {
	Ok     bool   `json:"ok"`
	Reason string `json:"reason"`
}
