package update_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TableBooking/internal/service/calendars"
	"github.com/m04kA/SMC-TableBooking/internal/service/calendars/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.CalendarResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/resources/"+id, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestUpdateCalendar(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(r *models.UpdateCalendarRequest) bool {
		return r.Active != nil && !*r.Active && r.Name == nil
	})).Return(&models.CalendarResponse{ID: 3, Name: "Pool 2"}, nil)

	rec := patch(NewHandler(svc, nopLogger{}), "3", `{"active": false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateCalendarErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no fields", calendars.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{"invalid", calendars.ErrInvalidInput, http.StatusBadRequest},
		{"not found", calendars.ErrCalendarNotFound, http.StatusNotFound},
		{"rename collision", calendars.ErrNameTaken, http.StatusConflict},
		{"internal", calendars.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, int64(3), mock.Anything).Return(nil, tt.err)

			rec := patch(NewHandler(svc, nopLogger{}), "3", `{}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestUpdateCalendarBadID(t *testing.T) {
	svc := &mockService{}
	for _, id := range []string{"abc", "0", "-1"} {
		rec := patch(NewHandler(svc, nopLogger{}), id, `{"name": "x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
