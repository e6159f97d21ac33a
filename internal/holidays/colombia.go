// Package holidays computes Colombian public holidays (Ley 51 de 1983)
// and derives the business-day adjustments used to schedule hospital
// rounds. All results are pure functions of the input date; the
// per-year cache only avoids recomputation.
package holidays

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Supported year range. The Gregorian computus is defined from 1583
// onward; callers are expected to stay within 1900-2100.
const (
	MinYear = 1583
	MaxYear = 9999
)

// Forward scan limit for NextBusinessDay. The Colombian calendar never
// chains more than a few non-business days in a row.
const maxBusinessDayScan = 30

var (
	ErrYearOutOfRange = errors.New("year_out_of_range")
	ErrScanExceeded   = errors.New("business_day_scan_exceeded")
)

type monthDay struct {
	month time.Month
	day   int
}

// Festivos fijos: celebrated on the literal date regardless of weekday.
var fixedHolidays = []monthDay{
	{time.January, 1},   // Año Nuevo
	{time.May, 1},       // Día del Trabajo
	{time.July, 20},     // Día de la Independencia
	{time.August, 7},    // Batalla de Boyacá
	{time.December, 8},  // Inmaculada Concepción
	{time.December, 25}, // Navidad
}

// Festivos trasladables: moved to the following Monday unless the
// literal date already is one (Ley de puentes).
var mondayHolidays = []monthDay{
	{time.January, 6},   // Reyes Magos
	{time.March, 19},    // San José
	{time.June, 29},     // San Pedro y San Pablo
	{time.August, 15},   // Asunción de la Virgen
	{time.October, 12},  // Día de la Raza
	{time.November, 1},  // Todos los Santos
	{time.November, 11}, // Independencia de Cartagena
}

// Easter-relative offsets in days. Jueves y Viernes Santo are observed
// literally; the other three shift to Monday after the offset.
var easterHolidays = []struct {
	offset   int
	toMonday bool
}{
	{-3, false}, // Jueves Santo
	{-2, false}, // Viernes Santo
	{39, true},  // Ascensión del Señor
	{60, true},  // Corpus Christi
	{68, true},  // Sagrado Corazón de Jesús
}

// Calendar caches the holiday set per year. Safe for concurrent use.
type Calendar struct {
	mu     sync.RWMutex
	byYear map[int][]time.Time
}

func NewCalendar() *Calendar {
	return &Calendar{byYear: map[int][]time.Time{}}
}

// Colombia is the shared calendar used across the service.
var Colombia = NewCalendar()

// isoWeekday maps time.Weekday to Monday=0 .. Sunday=6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// atMidnightUTC strips the clock and location so holiday membership
// only depends on the calendar date.
func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}

// EasterSunday returns Easter Sunday for the given year using the
// Gauss computus for the Gregorian calendar. The result is always a
// Sunday in March or April. Integer divisions below are floor
// divisions; every operand stays non-negative so Go's truncating
// division matches.
func EasterSunday(year int) (time.Time, error) {
	if err := validateYear(year); err != nil {
		return time.Time{}, err
	}

	a := year % 19 // position in the 19-year Metonic cycle
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30 // epact
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := (h + l - 7*m + 114) / 31 // month
	p := (h + l - 7*m + 114) % 31 // day - 1

	return time.Date(year, time.Month(n), p+1, 0, 0, 0, 0, time.UTC), nil
}

// shiftToMonday applies the "siguiente lunes" rule: a literal Monday
// stays put, any other weekday moves forward to the next Monday. The
// (7 - weekday) % 7 distance can only be zero for a Monday, which the
// branch above already returned, but a zero result is still coerced to
// a full week so the observance never collapses onto the source date.
func shiftToMonday(t time.Time) time.Time {
	wd := isoWeekday(t)
	if wd == 0 {
		return t
	}
	delta := (7 - wd) % 7
	if delta == 0 {
		delta = 7
	}
	return t.AddDate(0, 0, delta)
}

func computeYear(year int) ([]time.Time, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(fixedHolidays)+len(mondayHolidays)+len(easterHolidays))

	for _, h := range fixedHolidays {
		dates = append(dates, time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC))
	}
	for _, h := range mondayHolidays {
		literal := time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC)
		dates = append(dates, shiftToMonday(literal))
	}
	for _, h := range easterHolidays {
		d := easter.AddDate(0, 0, h.offset)
		if h.toMonday {
			// The Monday rule applies to the already-offset date,
			// never to Easter Sunday itself.
			d = shiftToMonday(d)
		}
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// ForYear returns the full holiday set for a year, chronologically
// sorted: 6 fixed + 7 Monday-shifted + 5 Easter-relative = 18 dates.
func (c *Calendar) ForYear(year int) ([]time.Time, error) {
	c.mu.RLock()
	cached, ok := c.byYear[year]
	c.mu.RUnlock()
	if !ok {
		computed, err := computeYear(year)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byYear[year] = computed
		c.mu.Unlock()
		cached = computed
	}

	out := make([]time.Time, len(cached))
	copy(out, cached)
	return out, nil
}

// ForMonth filters ForYear down to a single month.
func (c *Calendar) ForMonth(year int, month time.Month) ([]time.Time, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d", month)
	}
	all, err := c.ForYear(year)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, 4)
	for _, d := range all {
		if d.Month() == month {
			out = append(out, d)
		}
	}
	return out, nil
}

// IsHoliday reports whether the date is a Colombian public holiday.
func (c *Calendar) IsHoliday(t time.Time) (bool, error) {
	day := atMidnightUTC(t)
	set, err := c.ForYear(day.Year())
	if err != nil {
		return false, err
	}
	for _, h := range set {
		if h.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

// NextBusinessDay scans forward from the day after t until it lands on
// a Monday-Friday date that is not a holiday.
func (c *Calendar) NextBusinessDay(t time.Time) (time.Time, error) {
	day := atMidnightUTC(t)
	if err := validateYear(day.Year()); err != nil {
		return time.Time{}, err
	}

	for i := 0; i < maxBusinessDayScan; i++ {
		day = day.AddDate(0, 0, 1)
		if isoWeekday(day) >= 5 {
			continue
		}
		holiday, err := c.IsHoliday(day)
		if err != nil {
			return time.Time{}, err
		}
		if !holiday {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: no business day within %d days of %s",
		ErrScanExceeded, maxBusinessDayScan, day.Format("2006-01-02"))
}

// AdjustRoundDate decides when rounds must actually happen. A date on
// a holiday or weekend moves to the next business day (shifted=true);
// a regular weekday stays put.
func (c *Calendar) AdjustRoundDate(t time.Time) (time.Time, bool, error) {
	day := atMidnightUTC(t)
	holiday, err := c.IsHoliday(day)
	if err != nil {
		return time.Time{}, false, err
	}
	if holiday || isoWeekday(day) >= 5 {
		next, err := c.NextBusinessDay(day)
		if err != nil {
			return time.Time{}, false, err
		}
		return next, true, nil
	}
	return day, false, nil
}

// Package-level helpers on the shared Colombia calendar.

func ForYear(year int) ([]time.Time, error) { return Colombia.ForYear(year) }

func ForMonth(year int, month time.Month) ([]time.Time, error) {
	return Colombia.ForMonth(year, month)
}

func IsHoliday(t time.Time) (bool, error) { return Colombia.IsHoliday(t) }

func NextBusinessDay(t time.Time) (time.Time, error) { return Colombia.NextBusinessDay(t) }

func AdjustRoundDate(t time.Time) (time.Time, bool, error) { return Colombia.AdjustRoundDate(t) }
