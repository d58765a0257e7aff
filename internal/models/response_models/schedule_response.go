package response_models

import "vivu/pkg/itinerary"

// Top-level schedule view returned to FE
type ScheduleResponse struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalDays  int    `json:"total_days"`
	CurrentDay int    `json:"current_day"`
	// Set once today is past the last day; CurrentDay is then beyond TotalDays.
	IsPastEnd bool `json:"is_past_end"`

	TotalItems    int `json:"total_items"`
	ConflictCount int `json:"conflict_count"`

	Days []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	DayNumber  int              `json:"day_number"`
	Date       string           `json:"date"` // "Mon, Jan 5"
	IsToday    bool             `json:"is_today"`
	OutOfRange bool             `json:"out_of_range,omitempty"`
	Items      []itinerary.Item `json:"items"`
	Legs       []ScheduleLeg    `json:"legs"`
}

// A leg sits between Items[FromIndex] and Items[FromIndex+1] of the same day.
type ScheduleLeg struct {
	FromIndex          int    `json:"from_index"`
	FromID             string `json:"from_id,omitempty"`
	ToID               string `json:"to_id,omitempty"`
	GapMinutes         int    `json:"gap_minutes"`
	TravelMinutes      *int   `json:"travel_minutes,omitempty"`
	RoadDistanceMeters *int   `json:"road_distance_meters,omitempty"`
	Sufficient         bool   `json:"sufficient"`
	Overlap            bool   `json:"overlap"`
	Message            string `json:"message,omitempty"`
}

type GapCheckResponse struct {
	itinerary.GapCheck
	GapMinutes    int  `json:"gap_minutes"`
	TravelMinutes *int `json:"travel_minutes,omitempty"`
	Overlap       bool `json:"overlap"`
}
