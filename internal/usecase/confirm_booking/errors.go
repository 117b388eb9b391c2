package confirm_booking

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не найден
	// Клиенту это говорит "битая ссылка"
	ErrInvalidToken = errors.New("confirm_booking: invalid token")

	// ErrTokenExpired возвращается, когда окно подтверждения истекло
	// Клиенту это говорит "сделай новое бронирование"
	ErrTokenExpired = errors.New("confirm_booking: token expired")

	// ErrValidation возвращается при структурно некорректном токене
	ErrValidation = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
