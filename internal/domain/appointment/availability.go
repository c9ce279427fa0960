package appointment

import "time"

// Business hours: one slot per hour, the first starting at FirstHour and
// the last at LastHour.
const (
	FirstHour   = 8
	LastHour    = 17
	SlotsPerDay = LastHour - FirstHour + 1
)

type DayAvailability struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

func WithinBusinessHours(t time.Time) bool {
	h := t.Hour()
	return h >= FirstHour && h <= LastHour
}

// DaySlots reports each business hour of day (a local midnight) as
// available when it is not booked and starts after now.
func DaySlots(day time.Time, booked []time.Time, now time.Time) []HourAvailability {
	taken := make(map[int]bool, len(booked))
	for _, b := range booked {
		b = b.In(day.Location())
		if sameDay(b, day) {
			taken[b.Hour()] = true
		}
	}

	out := make([]HourAvailability, 0, SlotsPerDay)
	for h := FirstHour; h <= LastHour; h++ {
		slot := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
		out = append(out, HourAvailability{
			Hour:      h,
			Available: !taken[h] && slot.After(now),
		})
	}
	return out
}

// MonthSlots reports each day of the month starting at first (local
// midnight of day 1) as available when the day has not ended before now
// and some business hour is still unbooked.
func MonthSlots(first time.Time, booked []time.Time, now time.Time) []DayAvailability {
	perDay := map[int]int{}
	for _, b := range booked {
		b = b.In(first.Location())
		if b.Year() == first.Year() && b.Month() == first.Month() && WithinBusinessHours(b) {
			perDay[b.Day()]++
		}
	}

	days := first.AddDate(0, 1, -1).Day()
	out := make([]DayAvailability, 0, days)
	for d := 1; d <= days; d++ {
		endOfDay := time.Date(first.Year(), first.Month(), d, 23, 59, 59, 0, first.Location())
		out = append(out, DayAvailability{
			Day:       d,
			Available: endOfDay.After(now) && perDay[d] < SlotsPerDay,
		})
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
