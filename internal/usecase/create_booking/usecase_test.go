package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RIZZA-BookingService/internal/integrations/mailer"
	"github.com/m04kA/RIZZA-BookingService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		// Эхо: репозиторий возвращает сохраненную запись
		return booking, nil
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetOccupyingByDate(ctx context.Context, date time.Time, pendingSince time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, date, pendingSince)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetModelWithMake(ctx context.Context, makeID, modelID int64) (*domain.VehicleModelWithMake, error) {
	args := m.Called(ctx, makeID, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleModelWithMake), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailer) SendConfirmation(ctx context.Context, email mailer.ConfirmationEmail) error {
	return m.Called(ctx, email).Error(0)
}

// fakeTxManager выполняет функцию напрямую, без настоящей транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает заранее заданный момент времени
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func testLadder() SlotLadder {
	return SlotLadder{OpenTime: "08:00", CloseTime: "18:00", StepMinutes: 30}
}

func testVehicle() *domain.VehicleModelWithMake {
	return &domain.VehicleModelWithMake{
		Make:  domain.VehicleMake{ID: 2, Name: "BMW"},
		Model: domain.VehicleModel{ID: 5, MakeID: 2, Name: "Série 3", ImageKey: "bmw_serie3"},
	}
}

// testBookingDate календарный день, соответствующий дате из testRequest
func testBookingDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func testRequest() *Request {
	return &Request{
		ServiceType:   domain.ServiceWashFull,
		MakeID:        2,
		ModelID:       5,
		VehicleYear:   ptr.Ptr(2020),
		Date:          "2026-09-15",
		StartTime:     "14:30",
		CustomerName:  "João Silva",
		CustomerPhone: "912345678",
		CustomerEmail: "joao@example.com",
	}
}

func newTestUseCase(bookings *MockBookingRepository, vehicles *MockVehicleRepository, mail *MockMailer, now time.Time) *UseCase {
	return &UseCase{
		bookingRepo:   bookings,
		vehicleRepo:   vehicles,
		mailer:        mail,
		txManager:     &fakeTxManager{},
		confirmWindow: 30 * time.Minute,
		ladder:        testLadder(),
		frontendURL:   "http://localhost:4200",
		timeProvider:  &fixedTimeProvider{now: now},
		logger:        stubLogger{},
	}
}

// Успешное создание: PENDING, токен с окном, письмо со ссылкой подтверждения
func TestCreateBooking_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(testVehicle(), nil).Once()
	mockBookings.On("GetOccupyingByDate", mock.Anything, testBookingDate(), now.Add(-30*time.Minute)).
		Return([]*domain.Booking{}, nil).Once()

	var created *domain.Booking
	mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Booking)
		}).
		Return(nil, nil).Once()

	mockMail.On("Configured").Return(true).Once()

	var sentEmail mailer.ConfirmationEmail
	mockMail.On("SendConfirmation", mock.Anything, mock.AnythingOfType("mailer.ConfirmationEmail")).
		Run(func(args mock.Arguments) {
			sentEmail = args.Get(1).(mailer.ConfirmationEmail)
		}).
		Return(nil).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, created.ID, resp.BookingID)

	// Токен: 24 байта энтропии в hex, окно подтверждения 30 минут
	assert.Len(t, created.ConfirmToken, 48)
	assert.Equal(t, now.Add(30*time.Minute), *created.TokenExpires)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "BMW", created.MakeName)
	assert.Equal(t, "Série 3", created.ModelName)

	// Письмо уходит на адрес клиента со ссылкой на фронтенд
	assert.Equal(t, "joao@example.com", sentEmail.To)
	assert.Equal(t, "http://localhost:4200/confirm?token="+created.ConfirmToken, sentEmail.ConfirmURL)
	assert.Equal(t, "15-09-2026", sentEmail.DateLabel)

	mockBookings.AssertExpectations(t)
	mockVehicles.AssertExpectations(t)
	mockMail.AssertExpectations(t)
}

// Слот занят непросроченным PENDING-бронированием
func TestCreateBooking_SlotTakenByPending(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()

	occupying := []*domain.Booking{{
		ID:        "existing",
		StartTime: "14:30",
		Status:    domain.StatusPending,
		CreatedAt: now.Add(-10 * time.Minute),
	}}

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(testVehicle(), nil).Once()
	mockBookings.On("GetOccupyingByDate", mock.Anything, testBookingDate(), mock.Anything).
		Return(occupying, nil).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Просроченное PENDING-бронирование не блокирует слот
func TestCreateBooking_ExpiredPendingReleasesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()

	// Создано 31 минуту назад при окне в 30 минут
	occupying := []*domain.Booking{{
		ID:        "stale",
		StartTime: "14:30",
		Status:    domain.StatusPending,
		CreatedAt: now.Add(-31 * time.Minute),
	}}

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(testVehicle(), nil).Once()
	mockBookings.On("GetOccupyingByDate", mock.Anything, testBookingDate(), mock.Anything).
		Return(occupying, nil).Once()
	mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(nil, nil).Once()
	mockMail.On("Configured").Return(true).Once()
	mockMail.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	mockBookings.AssertExpectations(t)
}

// Страховочный уникальный индекс: дубликат на вставке превращается в ErrSlotTaken
func TestCreateBooking_DuplicateSlotOnInsert(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(testVehicle(), nil).Once()
	mockBookings.On("GetOccupyingByDate", mock.Anything, testBookingDate(), mock.Anything).
		Return([]*domain.Booking{}, nil).Once()
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrDuplicateSlot).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

// Неизвестная пара марка/модель
func TestCreateBooking_InvalidVehicle(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(nil, vehicleRepo.ErrModelNotFound).Once()

	resp, err := uc.Execute(context.Background(), testRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidVehicle)
	mockBookings.AssertNotCalled(t, "GetOccupyingByDate", mock.Anything, mock.Anything, mock.Anything)
}

// Дата в прошлом отклоняется до обращения к справочнику
func TestCreateBooking_PastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()
	req.Date = "2026-08-31"

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPastDate)
	mockVehicles.AssertNotCalled(t, "GetModelWithMake", mock.Anything, mock.Anything, mock.Anything)
}

// Структурно корректная дата, которой нет в календаре
func TestCreateBooking_ImpossibleCalendarDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()
	req.Date = "2026-02-30"

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidDate)
	mockVehicles.AssertNotCalled(t, "GetModelWithMake", mock.Anything, mock.Anything, mock.Anything)
}

// Порядок проверок: структурная ошибка в имени выигрывает у несуществующей даты
func TestCreateBooking_StructuralErrorBeatsBadDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	req := testRequest()
	req.CustomerName = "A"
	req.Date = "2026-02-30"

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrInvalidDate)
}

// Почтовый канал не настроен: бронирование сохранено, но клиент получает ошибку
func TestCreateBooking_MailerNotConfigured(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockBookings := &MockBookingRepository{}
	mockVehicles := &MockVehicleRepository{}
	mockMail := &MockMailer{}
	uc := newTestUseCase(mockBookings, mockVehicles, mockMail, now)

	mockVehicles.On("GetModelWithMake", mock.Anything, int64(2), int64(5)).
		Return(testVehicle(), nil).Once()
	mockBookings.On("GetOccupyingByDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil).Once()
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	mockMail.On("Configured").Return(false).Once()

	resp, err := uc.Execute(context.Background(), testRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrMailerNotConfigured)

	// Вставка произошла, письмо не отправлялось
	mockBookings.AssertExpectations(t)
	mockMail.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}
