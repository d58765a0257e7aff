package utils

import "errors"

var (
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrInvalidInput      = errors.New("invalid input")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrItemNotFound      = errors.New("itinerary item not found")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrDayOutOfRange     = errors.New("day number outside itinerary range")
	ErrTripTooLong       = errors.New("itinerary spans too many days")
)
