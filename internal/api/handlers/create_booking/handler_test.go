package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/RIZZA-BookingService/internal/usecase/create_booking"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

const validBody = `{
	"serviceType": "WASH_FULL",
	"makeId": 2,
	"modelId": 5,
	"date": "2026-09-15",
	"time": "14:30",
	"customerName": "João Silva",
	"customerPhone": "912345678",
	"customerEmail": "joao@example.com"
}`

func doCreate(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, stubLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestCreateBookingHandler_Success(t *testing.T) {
	uc := &MockUseCase{}

	var received *createBooking.Request
	uc.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Run(func(args mock.Arguments) {
			received = args.Get(1).(*createBooking.Request)
		}).
		Return(&createBooking.Response{BookingID: "11111111-2222-3333-4444-555555555555", Status: "PENDING"}, nil).Once()

	rec := doCreate(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", resp.BookingID)
	assert.Equal(t, "PENDING", resp.Status)

	// Дата и время уходят в use case сырыми строками
	require.NotNil(t, received)
	assert.Equal(t, "2026-09-15", received.Date)
	assert.Equal(t, "14:30", received.StartTime.String())
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	uc := &MockUseCase{}

	rec := doCreate(t, uc, `{"serviceType":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		usecaseErr error
		wantStatus int
		wantCode   string
	}{
		{"Validation error", createBooking.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"Impossible calendar date", createBooking.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{"Past date", createBooking.ErrPastDate, http.StatusBadRequest, "PAST_DATE"},
		{"Unknown vehicle", createBooking.ErrInvalidVehicle, http.StatusBadRequest, "INVALID_VEHICLE"},
		{"Slot taken", createBooking.ErrSlotTaken, http.StatusConflict, "SLOT_TAKEN"},
		{"Mail channel not configured", createBooking.ErrMailerNotConfigured, http.StatusInternalServerError, "CONFIG_ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.usecaseErr).Once()

			rec := doCreate(t, uc, validBody)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestCreateBookingHandler_InternalError(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, createBooking.ErrInternal).Once()

	rec := doCreate(t, uc, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
