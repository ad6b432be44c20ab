package get_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// freeSlots вычисляет промежутки между бронями внутри окна [from, to)
// Промежутки короче минимальной длительности брони не возвращаются,
// уже прошедшая часть окна отрезается по now
//
// Примеры для окна 10:00-14:00, бронь 11:00-12:00:
// - 10:00-11:00 и 12:00-14:00 свободны (граница брони не занята)
// - при now=10:30 первый промежуток 10:30-11:00 короче часа и отбрасывается
func freeSlots(from, to, now time.Time, bookings []*domain.Booking) []FreeSlot {
	if now.After(from) {
		from = now
	}
	if !from.Before(to) {
		return []FreeSlot{}
	}

	busy := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Overlaps(from, to) {
			busy = append(busy, b)
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	result := make([]FreeSlot, 0, len(busy)+1)
	cursor := from
	for _, b := range busy {
		if b.Start.After(cursor) {
			result = appendSlot(result, cursor, b.Start)
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(to) {
		result = appendSlot(result, cursor, to)
	}

	return result
}

func appendSlot(slots []FreeSlot, start, end time.Time) []FreeSlot {
	d := end.Sub(start)
	if d < domain.MinBookingDuration {
		return slots
	}
	return append(slots, FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: int(d / time.Minute),
	})
}
