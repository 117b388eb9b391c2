package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда SMTP-канал не настроен (пустой host)
	// Создание бронирования в этом случае обязано завершиться явной ошибкой,
	// а не тихо пропустить отправку письма
	ErrNotConfigured = errors.New("mailer: smtp is not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send email")
)
