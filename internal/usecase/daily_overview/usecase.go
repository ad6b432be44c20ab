package daily_overview

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	calendarsKey          = "calendars"
	calendarsFetchTimeout = 10 * time.Second
)

// UseCase агрегирует брони за день: выручка, занятость столов
type UseCase struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	location     *time.Location
	poolWords    map[string]struct{}
	group        singleflight.Group
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	venue Venue,
	logger Logger,
) *UseCase {
	poolWords := make(map[string]struct{}, len(venue.PoolSynonyms)+1)
	poolWords["pool"] = struct{}{}
	for _, w := range venue.PoolSynonyms {
		poolWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		location:     time.FixedZone("venue", int(venue.UTCOffset.Seconds())),
		poolWords:    poolWords,
		logger:       logger,
	}
}

// Execute строит отчёт за день req.Date в часовом поясе заведения
// День без броней даёт нулевой отчёт, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.DailyOverview, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	y, m, d := req.Date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	to := from.AddDate(0, 0, 1)

	uc.logger.Info("DailyOverview: date=%s, window=[%s, %s)",
		from.Format(domain.DateFormat), from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))

	bookings, err := uc.bookingRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		uc.logger.Error("DailyOverview: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	report := &domain.DailyOverview{
		Date:     from,
		Bookings: make([]domain.OverviewBooking, 0, len(bookings)),
	}
	if len(bookings) == 0 {
		return report, nil
	}

	calendars, err := uc.listCalendars(ctx)
	if err != nil {
		uc.logger.Error("DailyOverview: failed to get calendars: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendars: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Calendar, len(calendars))
	for _, c := range calendars {
		byID[c.ID] = c
		if c.Active {
			report.TotalTables++
		}
	}

	used := make(map[int64]struct{})
	usedActive := make(map[int64]struct{})

	for _, b := range bookings {
		row := uc.buildRow(b, byID[b.CalendarID])
		if row.PriceCents != nil {
			report.TotalRevenueCents += *row.PriceCents
		}

		used[b.CalendarID] = struct{}{}
		if c, ok := byID[b.CalendarID]; ok && c.Active {
			usedActive[b.CalendarID] = struct{}{}
		}

		report.Bookings = append(report.Bookings, row)
	}

	report.TotalBookings = len(report.Bookings)
	report.TablesUsed = len(used)
	report.ActiveTablesUsed = len(usedActive)
	report.UtilizationPercentage = utilization(report.ActiveTablesUsed, report.TotalTables)

	uc.logger.Info("DailyOverview: date=%s, bookings=%d, revenue=%d, tables=%d/%d",
		from.Format(domain.DateFormat), report.TotalBookings, report.TotalRevenueCents,
		report.TablesUsed, report.TotalTables)

	return report, nil
}

// listCalendars схлопывает одновременные запросы отчёта в одно чтение ресурсов
// Общее чтение не зависит от отмены первого вызвавшего, каждый ждёт по своему ctx
func (uc *UseCase) listCalendars(ctx context.Context) ([]*domain.Calendar, error) {
	ch := uc.group.DoChan(calendarsKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), calendarsFetchTimeout)
		defer cancel()
		return uc.calendarRepo.List(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*domain.Calendar), nil
	}
}

func (uc *UseCase) buildRow(b *domain.Booking, calendar *domain.Calendar) domain.OverviewBooking {
	minutes := int64(b.Duration() / time.Minute)

	row := domain.OverviewBooking{
		ID:            b.ID,
		CalendarID:    b.CalendarID,
		CalendarName:  domain.UnknownCalendarName,
		TableType:     domain.TableTypeTable,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		CustomerNotes: b.CustomerNotes,
		Start:         b.Start.UTC(),
		End:           b.End.UTC(),
		LocalStart:    b.Start.In(uc.location),
		LocalEnd:      b.End.In(uc.location),
		DurationHours: float64(minutes) / 60.0,
	}

	if calendar == nil {
		return row
	}

	row.CalendarName = calendar.Name
	row.TableType = uc.tableType(calendar.Name)
	if calendar.HasPrice() {
		price := bookingPrice(*calendar.HourlyPriceCents, minutes)
		row.PriceCents = &price
	}

	return row
}

// tableType грубая метка типа стола по первому слову имени
func (uc *UseCase) tableType(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return !unicode.IsLetter(r) })
	if len(words) == 0 {
		return domain.TableTypeTable
	}

	first := strings.ToLower(words[0])
	if first == "snooker" {
		return domain.TableTypeSnooker
	}
	if _, ok := uc.poolWords[first]; ok {
		return domain.TableTypePool
	}
	return domain.TableTypeTable
}

// bookingPrice цена брони в центах, округление до ближайшего цента
func bookingPrice(hourlyCents, minutes int64) int64 {
	return int64(math.Round(float64(hourlyCents*minutes) / 60.0))
}

func utilization(used, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(used)/float64(total)*10000) / 100
}
