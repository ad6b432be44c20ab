package daily_overview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/ptr"
)

type fakeBookings struct {
	mu       sync.Mutex
	list     []*domain.Booking
	err      error
	from, to time.Time
}

func (f *fakeBookings) ListByPeriod(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.from, f.to = from, to
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.list {
		if b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCalendars struct {
	list  []*domain.Calendar
	err   error
	calls int32
	delay time.Duration
}

func (f *fakeCalendars) List(context.Context) ([]*domain.Calendar, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.list, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var venue = Venue{UTCOffset: 2 * time.Hour, PoolSynonyms: []string{"biljardi", "Kaisa"}}

var day = time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)

// local время заведения (UTC+2) в указанный час дня отчёта
func local(hour int) time.Time {
	return time.Date(2030, 3, 10, hour, 0, 0, 0, time.UTC).Add(-2 * time.Hour)
}

func booking(id, calendarID int64, startHour, hours int) *domain.Booking {
	start := local(startHour)
	return &domain.Booking{
		ID:           id,
		CalendarID:   calendarID,
		Start:        start,
		End:          start.Add(time.Duration(hours) * time.Hour),
		CustomerName: "Customer",
	}
}

func TestEmptyDay(t *testing.T) {
	cals := &fakeCalendars{}
	uc := NewUseCase(&fakeBookings{}, cals, venue, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalBookings)
	assert.Equal(t, int64(0), report.TotalRevenueCents)
	assert.Equal(t, 0, report.TablesUsed)
	assert.Equal(t, 0.0, report.UtilizationPercentage)
	assert.Empty(t, report.Bookings)
	assert.Zero(t, cals.calls, "calendars are not fetched for an empty day")
}

func TestWindowUsesVenueOffset(t *testing.T) {
	bookings := &fakeBookings{}
	uc := NewUseCase(bookings, &fakeCalendars{}, venue, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.True(t, bookings.from.Equal(time.Date(2030, 3, 9, 22, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, bookings.to.Sub(bookings.from))
}

func TestRevenueExample(t *testing.T) {
	bookings := &fakeBookings{list: []*domain.Booking{booking(1, 1, 18, 2)}}
	cals := &fakeCalendars{list: []*domain.Calendar{
		{ID: 1, Name: "Snooker 1", Active: true, HourlyPriceCents: ptr.Ptr(int64(3000))},
	}}
	uc := NewUseCase(bookings, cals, venue, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, int64(6000), report.TotalRevenueCents)
	require.Len(t, report.Bookings, 1)
	row := report.Bookings[0]
	assert.Equal(t, 2.0, row.DurationHours)
	assert.Equal(t, domain.TableTypeSnooker, row.TableType)
	assert.Equal(t, 18, row.LocalStart.Hour())
	assert.Equal(t, 20, row.LocalEnd.Hour())
}

func TestAggregates(t *testing.T) {
	bookings := &fakeBookings{list: []*domain.Booking{
		booking(1, 1, 10, 1),
		booking(2, 1, 12, 1),
		booking(3, 2, 14, 2),
		booking(4, 9, 16, 1), // ресурс уже удалён
		// вне дня отчёта
		booking(5, 3, 30, 1),
	}}
	cals := &fakeCalendars{list: []*domain.Calendar{
		{ID: 1, Name: "Snooker 1", Active: true, HourlyPriceCents: ptr.Ptr(int64(2000))},
		{ID: 2, Name: "Biljardi #2", Active: true},
		{ID: 3, Name: "Kaisa table", Active: true, HourlyPriceCents: ptr.Ptr(int64(1000))},
		{ID: 4, Name: "Old", Active: false},
	}}
	uc := NewUseCase(bookings, cals, venue, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalBookings)
	assert.Equal(t, int64(4000), report.TotalRevenueCents, "unpriced and unknown calendars add nothing")
	assert.Equal(t, 3, report.TablesUsed)
	assert.Equal(t, 2, report.ActiveTablesUsed, "unknown calendar is not counted in utilization")
	assert.Equal(t, 3, report.TotalTables)
	assert.Equal(t, 66.67, report.UtilizationPercentage)
	assert.Equal(t, utilization(report.ActiveTablesUsed, report.TotalTables), report.UtilizationPercentage)

	assert.Equal(t, domain.TableTypePool, report.Bookings[2].TableType)
	assert.Nil(t, report.Bookings[2].PriceCents)

	unknown := report.Bookings[3]
	assert.Equal(t, domain.UnknownCalendarName, unknown.CalendarName)
	assert.Equal(t, domain.TableTypeTable, unknown.TableType)
	assert.Nil(t, unknown.PriceCents)
}

func TestTableType(t *testing.T) {
	uc := NewUseCase(&fakeBookings{}, &fakeCalendars{}, venue, nopLogger{})

	tests := map[string]string{
		"Snooker 1":      domain.TableTypeSnooker,
		"SNOOKER-Pro":    domain.TableTypeSnooker,
		"pool 3":         domain.TableTypePool,
		"Biljardi":       domain.TableTypePool,
		"kaisa #1":       domain.TableTypePool,
		"VIP snooker":    domain.TableTypeTable,
		"Carom":          domain.TableTypeTable,
		"":               domain.TableTypeTable,
		"  Pool  corner": domain.TableTypePool,
	}

	for name, want := range tests {
		assert.Equal(t, want, uc.tableType(name), name)
	}
}

func TestBookingPriceRounding(t *testing.T) {
	assert.Equal(t, int64(6000), bookingPrice(3000, 120))
	assert.Equal(t, int64(4500), bookingPrice(3000, 90))
	assert.Equal(t, int64(1667), bookingPrice(1000, 100))
}

func TestUtilizationWithoutActiveCalendars(t *testing.T) {
	bookings := &fakeBookings{list: []*domain.Booking{booking(1, 4, 10, 1)}}
	cals := &fakeCalendars{list: []*domain.Calendar{{ID: 4, Name: "Old", Active: false}}}
	uc := NewUseCase(bookings, cals, venue, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.UtilizationPercentage)
	assert.Equal(t, 1, report.TablesUsed)
	assert.Equal(t, 0, report.ActiveTablesUsed)
}

func TestErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookings{err: errors.New("db down")}, &fakeCalendars{}, venue, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewUseCase(
		&fakeBookings{list: []*domain.Booking{booking(1, 1, 10, 1)}},
		&fakeCalendars{err: errors.New("db down")},
		venue, nopLogger{},
	)
	_, err = uc.Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestConcurrentReportsShareCalendarFetch(t *testing.T) {
	bookings := &fakeBookings{list: []*domain.Booking{booking(1, 1, 10, 1)}}
	cals := &fakeCalendars{
		list:  []*domain.Calendar{{ID: 1, Name: "Pool 1", Active: true}},
		delay: 50 * time.Millisecond,
	}
	uc := NewUseCase(bookings, cals, venue, nopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := uc.Execute(context.Background(), &Request{Date: day})
			assert.NoError(t, err)
			assert.Equal(t, 100.0, report.UtilizationPercentage)
		}()
	}
	wg.Wait()

	assert.Less(t, atomic.LoadInt32(&cals.calls), int32(8))
}

// blockingCalendars держит List до release и уважает отмену своего ctx
type blockingCalendars struct {
	list    []*domain.Calendar
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingCalendars) List(ctx context.Context) ([]*domain.Calendar, error) {
	b.once.Do(func() { close(b.entered) })
	select {
	case <-b.release:
		return b.list, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestCancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	bookings := &fakeBookings{list: []*domain.Booking{booking(1, 1, 10, 1)}}
	cals := &blockingCalendars{
		list:    []*domain.Calendar{{ID: 1, Name: "Pool 1", Active: true}},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	uc := NewUseCase(bookings, cals, venue, nopLogger{})

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctxA, &Request{Date: day})
		errA <- err
	}()
	<-cals.entered

	type result struct {
		report *domain.DailyOverview
		err    error
	}
	resB := make(chan result, 1)
	go func() {
		report, err := uc.Execute(context.Background(), &Request{Date: day})
		resB <- result{report, err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancelA()
	assert.Error(t, <-errA, "cancelled caller returns promptly")

	close(cals.release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, 100.0, b.report.UtilizationPercentage)
}
