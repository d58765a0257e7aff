package request_models

import "vivu/pkg/itinerary"

// Dates are "YYYY-MM-DD" (RFC3339 accepted); times are 24-hour "HH:MM".
type CreateItineraryRequest struct {
	Title     string                 `json:"title" binding:"required,max=200"`
	StartDate string                 `json:"start_date" binding:"required"`
	EndDate   string                 `json:"end_date" binding:"required"`
	Items     []ItineraryItemRequest `json:"items" binding:"dive"`
}

type ItineraryItemRequest struct {
	Name                 string             `json:"name" binding:"required,max=200"`
	Description          string             `json:"description"`
	DayNumber            int                `json:"day_number" binding:"required,min=1"`
	StartTime            string             `json:"start_time" binding:"required"`
	EndTime              string             `json:"end_time" binding:"required"`
	DestinationLatitude  *itinerary.Degrees `json:"destination_latitude" binding:"omitempty,latitude"`
	DestinationLongitude *itinerary.Degrees `json:"destination_longitude" binding:"omitempty,longitude"`
}

// GapCheckRequest carries two consecutive items, From ending before To starts.
type GapCheckRequest struct {
	From GapCheckItem `json:"from"`
	To   GapCheckItem `json:"to"`
}

// GapCheckItem needs both times; an absent time is not midnight.
type GapCheckItem struct {
	ID                   string             `json:"id"`
	StartTime            *itinerary.Clock   `json:"start_time" binding:"required"`
	EndTime              *itinerary.Clock   `json:"end_time" binding:"required"`
	DestinationLatitude  *itinerary.Degrees `json:"destination_latitude" binding:"omitempty,latitude"`
	DestinationLongitude *itinerary.Degrees `json:"destination_longitude" binding:"omitempty,longitude"`
}

// Item assumes the request passed binding, so both times are set.
func (g GapCheckItem) Item() itinerary.Item {
	return itinerary.Item{
		ID:                   g.ID,
		StartTime:            *g.StartTime,
		EndTime:              *g.EndTime,
		DestinationLatitude:  g.DestinationLatitude,
		DestinationLongitude: g.DestinationLongitude,
	}
}
