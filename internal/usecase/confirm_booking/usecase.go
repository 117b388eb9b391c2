package confirm_booking

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/booking"
)

// UseCase use case подтверждения бронирования по токену из письма
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подтверждение бронирования.
// Операция идемпотентна: повторное нажатие на ссылку из письма после успешного
// подтверждения возвращает успех без изменений. Занятость слота при подтверждении
// повторно НЕ проверяется (см. DESIGN.md, открытый вопрос).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Token) < domain.MinConfirmTokenLength {
		uc.logger.Warn("ConfirmBooking: token too short")
		return nil, fmt.Errorf("%w: token is too short", ErrValidation)
	}

	now := uc.timeProvider.Now()

	// 1. Ищем бронирование по токену
	booking, err := uc.bookingRepo.GetByConfirmToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: unknown token")
			return nil, ErrInvalidToken
		}
		uc.logger.Error("ConfirmBooking: failed to look up token: %v", err)
		return nil, fmt.Errorf("%w: failed to look up token: %v", ErrInternal, err)
	}

	// Токен уникально проиндексирован, но сравниваем за константное время:
	// токен играет роль аутентификатора
	if subtle.ConstantTimeCompare([]byte(booking.ConfirmToken), []byte(req.Token)) != 1 {
		uc.logger.Warn("ConfirmBooking: token mismatch for booking id=%s", booking.ID)
		return nil, ErrInvalidToken
	}

	// 2. Повторное подтверждение - успех без изменений
	if booking.IsConfirmed() {
		uc.logger.Info("ConfirmBooking: booking id=%s already confirmed", booking.ID)
		return &Response{Status: string(domain.StatusConfirmed)}, nil
	}

	// 3. Окно подтверждения: токен, истекающий ровно сейчас, уже просрочен
	if booking.TokenExpires == nil || !now.Before(*booking.TokenExpires) {
		uc.logger.Warn("ConfirmBooking: token expired for booking id=%s", booking.ID)
		return nil, ErrTokenExpired
	}

	// 4. Подтверждаем: статус CONFIRMED, фиксируем момент, окно очищается
	if err := uc.bookingRepo.Confirm(ctx, booking.ID, now); err != nil {
		uc.logger.Error("ConfirmBooking: failed to confirm booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%s confirmed", booking.ID)
	return &Response{Status: string(domain.StatusConfirmed)}, nil
}
