package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TableBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestGetBooking(t *testing.T) {
	start := time.Date(2030, 3, 10, 16, 0, 0, 0, time.UTC)

	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(1)).Return(&models.BookingResponse{
		ID: 1, CalendarID: 2, Start: start, End: start.Add(time.Hour),
	}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, bookings.ErrBookingNotFound)
	svc.On("GetByID", mock.Anything, int64(3)).Return(nil, bookings.ErrInternal)
	h := NewHandler(svc, nopLogger{})

	rec := get(h, "1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start":"2030-03-10T16:00:00Z"`)
	assert.NotContains(t, rec.Body.String(), "customerNotes")

	assert.Equal(t, http.StatusNotFound, get(h, "2").Code)
	assert.Equal(t, http.StatusInternalServerError, get(h, "3").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "one").Code)
}
