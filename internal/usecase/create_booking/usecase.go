package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RIZZA-BookingService/internal/integrations/mailer"
)

// dateLabelFormat формат даты в письме клиенту (DD-MM-YYYY)
const dateLabelFormat = "02-01-2006"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	vehicleRepo   VehicleRepository
	mailer        Mailer
	txManager     TransactionManager
	confirmWindow time.Duration
	ladder        SlotLadder
	frontendURL   string
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	mail Mailer,
	txManager TransactionManager,
	confirmWindow time.Duration,
	ladder SlotLadder,
	frontendURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		vehicleRepo:   vehicleRepo,
		mailer:        mail,
		txManager:     txManager,
		confirmWindow: confirmWindow,
		ladder:        ladder,
		frontendURL:   frontendURL,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются одной сериализуемой транзакцией
// с блокировкой строк дня (FOR UPDATE) — два конкурентных запроса на один слот
// не могут оба пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, make=%d, model=%d, date=%s, time=%s",
		req.ServiceType, req.MakeID, req.ModelID, req.Date, req.StartTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Структурная валидация входных данных (первая ошибка выигрывает)
	if err := validateRequest(req, now, uc.ladder); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Структурно корректная дата должна быть реальным календарным днем
	bookingDate, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: impossible calendar date %q", req.Date)
		return nil, ErrInvalidDate
	}

	// 4. Дата не должна быть в прошлом
	if isDateInPast(bookingDate, now) {
		uc.logger.Warn("CreateBooking: past date %s", req.Date)
		return nil, ErrPastDate
	}

	// 5. Пара (makeId, modelId) должна существовать, модель - принадлежать марке
	vehicle, err := uc.vehicleRepo.GetModelWithMake(ctx, req.MakeID, req.ModelID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrModelNotFound) {
			uc.logger.Warn("CreateBooking: vehicle make=%d model=%d not found", req.MakeID, req.ModelID)
			return nil, ErrInvalidVehicle
		}
		uc.logger.Error("CreateBooking: failed to resolve vehicle make=%d model=%d: %v", req.MakeID, req.ModelID, err)
		return nil, fmt.Errorf("%w: failed to resolve vehicle: %v", ErrInternal, err)
	}

	// 6. Генерируем токен подтверждения до транзакции
	token, err := generateConfirmToken()
	if err != nil {
		uc.logger.Error("CreateBooking: token generation failed: %v", err)
		return nil, err
	}

	tokenExpires := now.Add(uc.confirmWindow)
	var result *domain.Booking

	// 7. Проверка занятости + вставка одной атомарной единицей
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Берем занимающие слоты бронирования дня с блокировкой FOR UPDATE.
		// Просроченные PENDING в выборку не попадают и слот не блокируют.
		pendingSince := now.Add(-uc.confirmWindow)
		occupying, err := uc.bookingRepo.GetOccupyingByDate(txCtx, bookingDate, pendingSince)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get occupying bookings: %v", err)
			return fmt.Errorf("%w: failed to get occupying bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем занятость слота единым предикатом
		if conflict := findSlotConflict(occupying, req.StartTime, now, uc.confirmWindow); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s %s taken by booking id=%s (status=%s)",
				req.Date, req.StartTime, conflict.ID, conflict.Status)
			return ErrSlotTaken
		}

		// 7.3. Сохраняем бронирование как PENDING с токеном и окном подтверждения
		booking := &domain.Booking{
			ID:          uuid.NewString(),
			ServiceType: req.ServiceType,
			MakeID:      req.MakeID,
			ModelID:     req.ModelID,
			VehicleYear: req.VehicleYear,
			Date:        bookingDate,
			StartTime:   req.StartTime,

			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Plate:         req.Plate,
			Notes:         req.Notes,

			Status: domain.StatusPending,

			// Денормализация данных автомобиля для истории и экспорта
			MakeName:  vehicle.Make.Name,
			ModelName: vehicle.Model.Name,

			ConfirmToken: token,
			TokenExpires: &tokenExpires,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
				// Страховочный частичный уникальный индекс сработал раньше нас
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s (PENDING until %s)",
		result.ID, tokenExpires.Format(time.RFC3339))

	// 8. Почтовый канал обязан быть настроен. Если нет - громкая ошибка:
	// бронирование уже сохранено и протухнет само, но клиент узнает о проблеме
	if !uc.mailer.Configured() {
		uc.logger.Error("CreateBooking: mail channel is not configured, booking id=%s left pending", result.ID)
		return nil, ErrMailerNotConfigured
	}

	// 9. Отправляем письмо со ссылкой подтверждения
	// Ошибка отправки пробрасывается наверх, сохраненная запись не откатывается
	email := mailer.ConfirmationEmail{
		To:           req.CustomerEmail,
		CustomerName: req.CustomerName,
		ServiceLabel: req.ServiceType.Label(),
		VehicleLabel: result.VehicleLabel(),
		DateLabel:    bookingDate.Format(dateLabelFormat),
		Time:         req.StartTime.String(),
		Notes:        req.Notes,
		ConfirmURL:   fmt.Sprintf("%s/confirm?token=%s", uc.frontendURL, token),
	}

	if err := uc.mailer.SendConfirmation(ctx, email); err != nil {
		uc.logger.Error("CreateBooking: failed to send confirmation email for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to send confirmation email: %v", ErrInternal, err)
	}

	return &Response{
		BookingID: result.ID,
		Status:    string(domain.StatusPending),
	}, nil
}
