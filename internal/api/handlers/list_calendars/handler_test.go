package list_calendars

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TableBooking/internal/service/calendars"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) (*models.CalendarListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.CalendarListResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListCalendars(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return(&models.CalendarListResponse{
		Calendars: []models.CalendarResponse{{ID: 1, Name: "Snooker 1"}, {ID: 2, Name: "Pool 1"}},
	}, nil).Once()
	svc.On("List", mock.Anything).Return(nil, calendars.ErrInternal).Once()
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Pool 1"`)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
