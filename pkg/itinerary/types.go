package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClock = errors.New("invalid clock time")
	ErrInvalidCoord = errors.New("invalid coordinate")
)

const dateLayout = "2006-01-02"

// Itinerary is a trip with an inclusive date range and its scheduled items.
type Itinerary struct {
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Items     []Item `json:"items"`
}

// Item is a single scheduled activity. Name and Description are opaque here.
type Item struct {
	ID                   string   `json:"id,omitempty"`
	Name                 string   `json:"name,omitempty"`
	Description          string   `json:"description,omitempty"`
	DayNumber            int      `json:"day_number"`
	StartTime            Clock    `json:"start_time"`
	EndTime              Clock    `json:"end_time"`
	DestinationLatitude  *Degrees `json:"destination_latitude,omitempty"`
	DestinationLongitude *Degrees `json:"destination_longitude,omitempty"`
}

// Location returns the item's destination when both coordinates are present.
func (i Item) Location() (LatLng, bool) {
	if i.DestinationLatitude == nil || i.DestinationLongitude == nil {
		return LatLng{}, false
	}
	return LatLng{Lat: float64(*i.DestinationLatitude), Lng: float64(*i.DestinationLongitude)}, true
}

// Date is a calendar day without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate accepts "2006-01-02" or a full RFC3339 timestamp.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight UTC of d, which keeps day arithmetic free of DST shifts.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

const secondsPerDay = 24 * 60 * 60

// epochDay counts days from 1970-01-01. Time is midnight UTC, so the division is exact.
func (d Date) epochDay() int64 { return d.Time().Unix() / secondsPerDay }

// DaysSince returns d - other in whole days. It counts civil days rather than
// a time.Duration, which saturates after about 292 years.
func (d Date) DaysSince(other Date) int {
	return int(d.epochDay() - other.epochDay())
}

func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }

func (d Date) String() string { return d.Time().Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a local time of day in minutes since midnight.
type Clock int

func NewClock(hour, minute int) Clock { return Clock(hour*60 + minute) }

// ParseClock accepts 24-hour "HH:MM"; a trailing ":SS" is tolerated and dropped.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	return NewClock(h, m), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Sub returns c - other in minutes; negative when other is later in the day.
func (c Clock) Sub(other Clock) int { return int(c) - int(other) }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

func (c Clock) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClock, b)
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Degrees is a decimal-degree coordinate. The API may send it as a number or a numeric string.
type Degrees float64

func DegreesPtr(v float64) *Degrees {
	d := Degrees(v)
	return &d
}

func (d *Degrees) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCoord, b)
		}
		b = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCoord, b)
	}
	*d = Degrees(v)
	return nil
}
