package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	calendarRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/calendar"
)

type fakeBookings struct {
	list []*domain.Booking
	err  error
}

func (f *fakeBookings) ListByCalendar(context.Context, int64) ([]*domain.Booking, error) {
	return f.list, f.err
}

type fakeCalendars struct {
	calendar *domain.Calendar
	err      error
}

func (f *fakeCalendars) GetByID(context.Context, int64) (*domain.Calendar, error) {
	return f.calendar, f.err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var venue = time.FixedZone("venue", 2*60*60)

func at(hour, minute int) time.Time {
	return time.Date(2030, 3, 10, hour, minute, 0, 0, venue)
}

func booking(start, end time.Time) *domain.Booking {
	return &domain.Booking{Start: start.UTC(), End: end.UTC()}
}

func newUseCase(bookings *fakeBookings, calendars *fakeCalendars, now time.Time) *UseCase {
	uc := NewUseCase(bookings, calendars, 2*time.Hour, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func TestFreeSlots(t *testing.T) {
	from, to := at(10, 0), at(14, 0)

	tests := []struct {
		name     string
		now      time.Time
		bookings []*domain.Booking
		want     [][2]time.Time
	}{
		{
			name: "empty day",
			now:  at(0, 0),
			want: [][2]time.Time{{from, to}},
		},
		{
			name:     "boundaries stay free",
			now:      at(0, 0),
			bookings: []*domain.Booking{booking(at(11, 0), at(12, 0))},
			want:     [][2]time.Time{{at(10, 0), at(11, 0)}, {at(12, 0), at(14, 0)}},
		},
		{
			name:     "short gaps dropped",
			now:      at(0, 0),
			bookings: []*domain.Booking{booking(at(10, 30), at(12, 0)), booking(at(12, 45), at(14, 0))},
			want:     [][2]time.Time{},
		},
		{
			name:     "unsorted and outside window",
			now:      at(0, 0),
			bookings: []*domain.Booking{booking(at(13, 0), at(15, 0)), booking(at(8, 0), at(11, 0))},
			want:     [][2]time.Time{{at(11, 0), at(13, 0)}},
		},
		{
			name: "past part cut",
			now:  at(12, 30),
			want: [][2]time.Time{{at(12, 30), at(14, 0)}},
		},
		{
			name: "window already over",
			now:  at(15, 0),
			want: [][2]time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := freeSlots(from, to, tt.now, tt.bookings)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.True(t, got[i].Start.Equal(w[0]), "start %d: %s", i, got[i].Start)
				assert.True(t, got[i].End.Equal(w[1]), "end %d: %s", i, got[i].End)
				assert.Equal(t, int(w[1].Sub(w[0])/time.Minute), got[i].DurationMinutes)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	calendars := &fakeCalendars{calendar: &domain.Calendar{ID: 1, Name: "Snooker 1", Active: true}}
	bookings := &fakeBookings{list: []*domain.Booking{booking(at(18, 0), at(20, 0))}}
	uc := newUseCase(bookings, calendars, at(0, 0).AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{
		CalendarID: 1,
		Date:       time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Date.Equal(at(0, 0)))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 18, resp.Slots[0].End.Hour(), "slots are in venue time")
	assert.Equal(t, 20, resp.Slots[1].Start.Hour())
	assert.True(t, resp.Slots[1].End.Equal(at(0, 0).AddDate(0, 0, 1)))
}

func TestInactiveCalendarHasNoSlots(t *testing.T) {
	calendars := &fakeCalendars{calendar: &domain.Calendar{ID: 3, Active: false}}
	uc := newUseCase(&fakeBookings{err: errors.New("must not be called")}, calendars, at(0, 0))

	resp, err := uc.Execute(context.Background(), &Request{CalendarID: 3, Date: at(0, 0)})
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Empty(t, resp.Slots)
}

func TestExecuteErrors(t *testing.T) {
	date := at(0, 0)

	uc := newUseCase(&fakeBookings{}, &fakeCalendars{err: calendarRepo.ErrCalendarNotFound}, date)
	_, err := uc.Execute(context.Background(), &Request{CalendarID: 9, Date: date})
	assert.ErrorIs(t, err, ErrCalendarNotFound)

	uc = newUseCase(&fakeBookings{}, &fakeCalendars{err: errors.New("db down")}, date)
	_, err = uc.Execute(context.Background(), &Request{CalendarID: 9, Date: date})
	assert.ErrorIs(t, err, ErrInternal)

	uc = newUseCase(&fakeBookings{err: errors.New("db down")}, &fakeCalendars{calendar: &domain.Calendar{ID: 1, Active: true}}, date)
	_, err = uc.Execute(context.Background(), &Request{CalendarID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{CalendarID: 0, Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
