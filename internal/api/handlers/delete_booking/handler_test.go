package delete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TableBooking/internal/service/bookings"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func del(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestDeleteBooking(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	svc.On("Delete", mock.Anything, int64(1)).Return(bookings.ErrBookingNotFound).Once()
	svc.On("Delete", mock.Anything, int64(5)).Return(bookings.ErrInternal)
	h := NewHandler(svc, nopLogger{})

	assert.Equal(t, http.StatusNoContent, del(h, "1").Code)
	assert.Equal(t, http.StatusNotFound, del(h, "1").Code, "second delete reports not found")
	assert.Equal(t, http.StatusInternalServerError, del(h, "5").Code)
	assert.Equal(t, http.StatusBadRequest, del(h, "0").Code)
	svc.AssertExpectations(t)
}
