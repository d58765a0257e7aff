package response_models

type ItineraryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
	CreatedAt string `json:"created_at,omitempty"`
}

type ItineraryDetailResponse struct {
	ItineraryResponse
	Items []ItineraryItemResponse `json:"items"`
}

type ItineraryItemResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	DayNumber            int      `json:"day_number"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	DestinationLatitude  *float64 `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64 `json:"destination_longitude,omitempty"`
}
