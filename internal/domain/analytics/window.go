package analytics

import (
	"time"
)

// Window is a half-open time range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

func (w Window) MonthName() string {
	return w.From.Month().String()
}

func (w Window) Year() int {
	return w.From.Year()
}

// MonthStart returns midnight on the first day of t's month in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// MonthWindow returns the full calendar month that starts offset months
// after the month containing t. time.Date normalizes month overflow, so
// offset -1 in January lands in December of the previous year.
func MonthWindow(t time.Time, offset int, loc *time.Location) Window {
	start := MonthStart(t, loc)
	from := time.Date(start.Year(), start.Month()+time.Month(offset), 1, 0, 0, 0, 0, start.Location())
	return Window{From: from, To: from.AddDate(0, 1, 0)}
}

// CurrentAndPrevious returns the month-to-date window ending at now and the
// full previous calendar month.
func CurrentAndPrevious(now time.Time, loc *time.Location) (current, previous Window) {
	start := MonthStart(now, loc)
	current = Window{From: start, To: now.In(start.Location())}
	previous = MonthWindow(now, -1, loc)
	return current, previous
}

// TrailingMonths returns n full-month windows ending with the month that
// contains now, oldest first.
func TrailingMonths(now time.Time, n int, loc *time.Location) []Window {
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		windows = append(windows, MonthWindow(now, -i, loc))
	}
	return windows
}

// YearToDate returns the window from January 1 of now's year up to the
// start of next month.
func YearToDate(now time.Time, loc *time.Location) Window {
	start := MonthStart(now, loc)
	return Window{
		From: time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, start.Location()),
		To:   start.AddDate(0, 1, 0),
	}
}
