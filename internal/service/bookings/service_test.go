package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
)

// memStore хранилище в памяти, повторяет контракт репозиториев
type memStore struct {
	mu        sync.Mutex
	calendars map[int64]*domain.Calendar
	bookings  map[int64]*domain.Booking
	failWith  error
}

func newMemStore() *memStore {
	return &memStore{
		calendars: map[int64]*domain.Calendar{},
		bookings:  map[int64]*domain.Booking{},
	}
}

func (s *memStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (s *memStore) ListByCalendar(_ context.Context, calendarID int64) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.CalendarID == calendarID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

type memCalendars struct{ store *memStore }

func (c memCalendars) GetByID(_ context.Context, id int64) (*domain.Calendar, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	cal, ok := c.store.calendars[id]
	if !ok {
		return nil, calendarRepo.ErrCalendarNotFound
	}
	return cal, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup() (*Service, *memStore) {
	store := newMemStore()
	store.calendars[1] = &domain.Calendar{ID: 1, Name: "Snooker 1", Active: true}

	start := time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC)
	store.bookings[10] = &domain.Booking{ID: 10, CalendarID: 1, Start: start, End: start.Add(time.Hour), CustomerName: "A"}
	store.bookings[11] = &domain.Booking{ID: 11, CalendarID: 1, Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), CustomerName: "B"}

	return NewService(store, memCalendars{store: store}, nopLogger{}), store
}

func TestListByCalendar(t *testing.T) {
	svc, _ := setup()

	resp, err := svc.ListByCalendar(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestListByCalendarUnknownCalendar(t *testing.T) {
	svc, _ := setup()

	_, err := svc.ListByCalendar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestListByCalendarRepositoryError(t *testing.T) {
	svc, store := setup()
	store.failWith = errors.New("db down")

	_, err := svc.ListByCalendar(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDeleteReadBack(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 10))

	_, err := svc.GetByID(ctx, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	resp, err := svc.ListByCalendar(ctx, 1)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(11), resp.Bookings[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, 10), ErrBookingNotFound, "second delete reports not found")
}

func TestGetByID(t *testing.T) {
	svc, _ := setup()

	resp, err := svc.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "B", resp.CustomerName)
	assert.Equal(t, time.Hour, resp.End.Sub(resp.Start))
}
