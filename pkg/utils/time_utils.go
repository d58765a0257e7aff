// utils/timeutil.go
package utils

import "time"

// Vietnam time location (ICT, +07:00)
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// LoadLocation resolves an IANA zone name, falling back to a fixed ICT zone
// when the tz database is unavailable.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in **seconds** to loc.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64, loc *time.Location) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(loc)
}

func FormatRFC3339(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339) // e.g. 2025-09-24T15:12:00+07:00
}
