package create_booking

import "errors"

var (
	// ErrValidation возвращается при структурно некорректных входных данных
	ErrValidation = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда структурно корректная дата
	// не является реальным календарным днем (например, 30 февраля)
	ErrInvalidDate = errors.New("create_booking: invalid calendar date")

	// ErrPastDate возвращается, когда дата бронирования раньше сегодняшнего дня
	ErrPastDate = errors.New("create_booking: booking date is in the past")

	// ErrInvalidVehicle возвращается, когда пара (makeId, modelId) не найдена
	// или модель не принадлежит марке
	ErrInvalidVehicle = errors.New("create_booking: invalid vehicle")

	// ErrSlotTaken возвращается, когда слот занят подтвержденным
	// или непросроченным PENDING-бронированием
	ErrSlotTaken = errors.New("create_booking: slot is taken")

	// ErrMailerNotConfigured возвращается, когда SMTP-канал не настроен.
	// Бронирование при этом уже сохранено: осиротевшая PENDING-запись
	// протухнет сама и перестанет блокировать слот
	ErrMailerNotConfigured = errors.New("create_booking: mail channel is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
