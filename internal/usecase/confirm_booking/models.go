package confirm_booking

// Request модель запроса на подтверждение бронирования
type Request struct {
	Token string
}

// Response модель ответа подтверждения
type Response struct {
	Status string // Всегда CONFIRMED
}
