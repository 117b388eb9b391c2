package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RIZZA-BookingService/internal/infra/storage/booking"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByConfirmToken(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Confirm(ctx context.Context, id string, confirmedAt time.Time) error {
	return m.Called(ctx, id, confirmedAt).Error(0)
}

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

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestUseCase(repo *MockBookingRepository, now time.Time) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		timeProvider: &fixedTimeProvider{now: now},
		logger:       stubLogger{},
	}
}

func pendingBooking(now time.Time, expiresIn time.Duration) *domain.Booking {
	expires := now.Add(expiresIn)
	return &domain.Booking{
		ID:           "booking-1",
		Status:       domain.StatusPending,
		ConfirmToken: testToken,
		TokenExpires: &expires,
	}
}

// Успешное подтверждение внутри окна
func TestConfirmBooking_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	repo.On("GetByConfirmToken", mock.Anything, testToken).
		Return(pendingBooking(now, 10*time.Minute), nil).Once()
	repo.On("Confirm", mock.Anything, "booking-1", now).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	repo.AssertExpectations(t)
}

// Повторное подтверждение - успех без изменений
func TestConfirmBooking_Idempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	confirmedAt := now.Add(-time.Hour)
	booking := &domain.Booking{
		ID:           "booking-1",
		Status:       domain.StatusConfirmed,
		ConfirmToken: testToken,
		ConfirmedAt:  &confirmedAt,
	}

	repo.On("GetByConfirmToken", mock.Anything, testToken).Return(booking, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	repo.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

// Токен, истекающий ровно сейчас, уже просрочен
func TestConfirmBooking_ExpiresExactlyNow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	repo.On("GetByConfirmToken", mock.Anything, testToken).
		Return(pendingBooking(now, 0), nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTokenExpired)
	repo.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

// Просроченный токен
func TestConfirmBooking_Expired(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	repo.On("GetByConfirmToken", mock.Anything, testToken).
		Return(pendingBooking(now, -time.Second), nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

// Секунда до истечения - еще успеваем
func TestConfirmBooking_OneSecondBeforeExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	repo.On("GetByConfirmToken", mock.Anything, testToken).
		Return(pendingBooking(now, time.Second), nil).Once()
	repo.On("Confirm", mock.Anything, "booking-1", now).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

// Неизвестный токен
func TestConfirmBooking_UnknownToken(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	repo.On("GetByConfirmToken", mock.Anything, testToken).
		Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Слишком короткий токен отклоняется до обращения к репозиторию
func TestConfirmBooking_TokenTooShort(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{Token: "short"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "GetByConfirmToken", mock.Anything, mock.Anything)
}

// PENDING без записанного окна подтверждения считается просроченным
func TestConfirmBooking_NoExpiryRecorded(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, now)

	booking := &domain.Booking{
		ID:           "booking-1",
		Status:       domain.StatusPending,
		ConfirmToken: testToken,
		TokenExpires: nil,
	}

	repo.On("GetByConfirmToken", mock.Anything, testToken).Return(booking, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Token: testToken})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
