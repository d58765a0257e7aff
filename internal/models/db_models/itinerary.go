package db_models

import (
	"time"

	"github.com/google/uuid"
	"vivu/pkg/itinerary"
)

type Itinerary struct {
	BaseModel
	Title     string
	StartDate time.Time `gorm:"type:date"`
	EndDate   time.Time `gorm:"type:date"`

	Items []ItineraryItem `gorm:"constraint:OnDelete:CASCADE"`
}

type ItineraryItem struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	DayNumber   int       `gorm:"index"`
	// Insertion position, preserved so grouping keeps the caller's order.
	Position    int
	Name        string
	Description string
	// "HH:MM", local to the item's day.
	StartTime            string `gorm:"size:5"`
	EndTime              string `gorm:"size:5"`
	DestinationLatitude  *float64
	DestinationLongitude *float64
}

// ToDomain converts the stored trip into the scheduling view's input.
func (i *Itinerary) ToDomain() (itinerary.Itinerary, error) {
	out := itinerary.Itinerary{
		StartDate: itinerary.DateOf(i.StartDate),
		EndDate:   itinerary.DateOf(i.EndDate),
		Items:     make([]itinerary.Item, 0, len(i.Items)),
	}
	for _, it := range i.Items {
		item, err := it.ToDomain()
		if err != nil {
			return itinerary.Itinerary{}, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (it *ItineraryItem) ToDomain() (itinerary.Item, error) {
	start, err := itinerary.ParseClock(it.StartTime)
	if err != nil {
		return itinerary.Item{}, err
	}
	end, err := itinerary.ParseClock(it.EndTime)
	if err != nil {
		return itinerary.Item{}, err
	}

	item := itinerary.Item{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		DayNumber:   it.DayNumber,
		StartTime:   start,
		EndTime:     end,
	}
	if it.DestinationLatitude != nil {
		item.DestinationLatitude = itinerary.DegreesPtr(*it.DestinationLatitude)
	}
	if it.DestinationLongitude != nil {
		item.DestinationLongitude = itinerary.DegreesPtr(*it.DestinationLongitude)
	}
	return item, nil
}
