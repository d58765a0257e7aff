package itinerary

import (
	"errors"
	"fmt"
	"time"
)

var ErrSpanTooLong = errors.New("itinerary spans too many days")

// DisplayDateLayout renders a day as "Mon, Jan 5".
const DisplayDateLayout = "Mon, Jan 2"

// Calculator turns an itinerary's date range and the current date into day indices.
// The zero value uses time.Now in time.Local and puts no limit on a trip's length.
type Calculator struct {
	Now      func() time.Time
	Location *time.Location
	// MaxDays caps DayRange in CheckSpan; zero disables the cap.
	MaxDays int
}

func NewCalculator(loc *time.Location) *Calculator {
	return &Calculator{Now: time.Now, Location: loc}
}

// Today is the calendar date of "now" in the calculator's location.
func (c *Calculator) Today() Date {
	now := time.Now
	if c != nil && c.Now != nil {
		now = c.Now
	}
	loc := time.Local
	if c != nil && c.Location != nil {
		loc = c.Location
	}
	return DateOf(now().In(loc))
}

// DayRange is the inclusive number of days the itinerary spans. Both ends are
// civil dates, so the difference is already a whole number of days.
func (c *Calculator) DayRange(it Itinerary) int {
	return it.EndDate.DaysSince(it.StartDate) + 1
}

// CheckSpan reports ErrSpanTooLong when the itinerary covers more than MaxDays.
func (c *Calculator) CheckSpan(it Itinerary) error {
	if c == nil || c.MaxDays <= 0 {
		return nil
	}
	if days := c.DayRange(it); days > c.MaxDays {
		return fmt.Errorf("%w: %d days, limit is %d", ErrSpanTooLong, days, c.MaxDays)
	}
	return nil
}

// DateForDay formats the calendar date of a 1-based day number. Day numbers
// outside the itinerary's range are computed all the same.
func (c *Calculator) DateForDay(it Itinerary, dayNumber int) string {
	return it.StartDate.AddDays(dayNumber - 1).Time().Format(DisplayDateLayout)
}

// CurrentDay is today's 1-based day number within the trip, never less than 1.
// It is not capped at DayRange once the trip is over.
func (c *Calculator) CurrentDay(it Itinerary) int {
	day := c.Today().DaysSince(it.StartDate) + 1
	if day < 1 {
		return 1
	}
	return day
}
