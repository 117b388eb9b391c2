package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	getAvailability "github.com/m04kA/RIZZA-BookingService/internal/usecase/get_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

// Отсутствующая дата - пустой список без подстановки сегодняшнего дня
func TestGetAvailabilityHandler_MissingDate(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, stubLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Date)
	assert.Empty(t, resp.Slots)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestGetAvailabilityHandler_MalformedDate(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, stubLogger{})

	for _, raw := range []string{"15-09-2026", "2026/09/15", "abc", "2026-02-30"} {
		req := httptest.NewRequest(http.MethodGet, "/api/availability?date="+raw, nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestGetAvailabilityHandler_Success(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, stubLogger{})

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, &getAvailability.Request{Date: date}).
		Return(&getAvailability.Response{
			Date: date,
			Slots: []domain.Slot{
				{Time: "08:00", Available: true},
				{Time: "08:30", Available: false},
			},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-15", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-15", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)

	uc.AssertExpectations(t)
}
