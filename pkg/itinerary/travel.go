package itinerary

import (
	"fmt"
	"math"
)

const (
	EarthRadiusKm = 6371.0

	// AssumedAverageSpeedKmh is the flat ground speed used for every leg.
	// Road networks, traffic and transport mode are ignored.
	AssumedAverageSpeedKmh = 30.0
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GapCheck is the verdict for two consecutive items.
type GapCheck struct {
	Sufficient bool   `json:"sufficient"`
	Message    string `json:"message"`
}

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(a, b LatLng) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// MinutesForDistance converts kilometers to whole minutes at AssumedAverageSpeedKmh.
func MinutesForDistance(km float64) int {
	return int(math.Round(km / AssumedAverageSpeedKmh * 60))
}

// EstimateTravelMinutes gives the straight-line travel time from a to b.
// ok is false when either item is missing a coordinate.
func EstimateTravelMinutes(a, b Item) (minutes int, ok bool) {
	from, okA := a.Location()
	to, okB := b.Location()
	if !okA || !okB {
		return 0, false
	}
	return MinutesForDistance(HaversineKm(from, to)), true
}

// GapMinutes is the time between a ending and b starting, on the same day.
func GapMinutes(a, b Item) int {
	return b.StartTime.Sub(a.EndTime)
}

// CheckSufficientGap reports whether the gap between a and b covers the travel
// estimate. Without coordinates there is nothing to judge and the gap passes.
func CheckSufficientGap(a, b Item) GapCheck {
	travel, ok := EstimateTravelMinutes(a, b)
	if !ok {
		return GapCheck{Sufficient: true}
	}

	gap := GapMinutes(a, b)
	if gap < travel {
		return GapCheck{
			Sufficient: false,
			Message:    fmt.Sprintf("Only %d min gap, ~%d min travel time", gap, travel),
		}
	}
	return GapCheck{
		Sufficient: true,
		Message:    fmt.Sprintf("~%d min travel", travel),
	}
}
