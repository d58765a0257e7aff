package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"vivu/internal/models/db_models"
	"vivu/internal/models/request_models"
	"vivu/internal/models/response_models"
	"vivu/internal/repositories"
	"vivu/pkg/itinerary"
	"vivu/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetItineraryById(ctx context.Context, itineraryId string) (*response_models.ItineraryDetailResponse, error)
	ListItineraries(ctx context.Context, page int, pageSize int) ([]response_models.ItineraryResponse, error)
	AddItem(ctx context.Context, itineraryId string, req request_models.ItineraryItemRequest) (*response_models.ItineraryItemResponse, error)
	RemoveItem(ctx context.Context, itineraryId string, itemId string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	calculator    *itinerary.Calculator
	validate      *validator.Validate
	loc           *time.Location
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	calculator *itinerary.Calculator,
	loc *time.Location,
) ItineraryServiceInterface {
	v := validator.New()
	// share the tags gin binds with
	v.SetTagName("binding")
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		calculator:    calculator,
		validate:      v,
		loc:           loc,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	start, err := itinerary.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", utils.ErrInvalidInput, err)
	}
	end, err := itinerary.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date: %v", utils.ErrInvalidInput, err)
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}
	span := itinerary.Itinerary{StartDate: start, EndDate: end}
	if err := s.calculator.CheckSpan(span); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrTripTooLong, err)
	}

	totalDays := s.calculator.DayRange(span)

	model := &db_models.Itinerary{
		Title:     req.Title,
		StartDate: start.Time(),
		EndDate:   end.Time(),
		Items:     make([]db_models.ItineraryItem, 0, len(req.Items)),
	}
	for i, itemReq := range req.Items {
		item, err := buildItem(itemReq, totalDays)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		model.Items = append(model.Items, *item)
	}

	if err := s.itineraryRepo.CreateItinerary(ctx, model); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return s.toDetailResponse(model), nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, itineraryId string) (*response_models.ItineraryDetailResponse, error) {
	id, err := parseID(itineraryId)
	if err != nil {
		return nil, err
	}

	model, err := s.itineraryRepo.GetItineraryById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if model == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return s.toDetailResponse(model), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, page int, pageSize int) ([]response_models.ItineraryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	models, err := s.itineraryRepo.ListItineraries(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ItineraryResponse, 0, len(models))
	for i := range models {
		out = append(out, s.toResponse(&models[i]))
	}
	return out, nil
}

func (s *ItineraryService) AddItem(ctx context.Context, itineraryId string, req request_models.ItineraryItemRequest) (*response_models.ItineraryItemResponse, error) {
	id, err := parseID(itineraryId)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	model, err := s.itineraryRepo.GetItineraryById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if model == nil {
		return nil, utils.ErrItineraryNotFound
	}

	totalDays := s.calculator.DayRange(itinerary.Itinerary{
		StartDate: itinerary.DateOf(model.StartDate),
		EndDate:   itinerary.DateOf(model.EndDate),
	})
	item, err := buildItem(req, totalDays)
	if err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.AddItem(ctx, id, item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := toItemResponse(item)
	return &out, nil
}

func (s *ItineraryService) RemoveItem(ctx context.Context, itineraryId string, itemId string) error {
	id, err := parseID(itineraryId)
	if err != nil {
		return err
	}
	itemUUID, err := parseID(itemId)
	if err != nil {
		return err
	}

	if err := s.itineraryRepo.RemoveItem(ctx, id, itemUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrItemNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// buildItem checks an item against the trip length and the HH:MM clock format.
func buildItem(req request_models.ItineraryItemRequest, totalDays int) (*db_models.ItineraryItem, error) {
	if req.DayNumber < 1 || req.DayNumber > totalDays {
		return nil, fmt.Errorf("%w: day %d of %d", utils.ErrDayOutOfRange, req.DayNumber, totalDays)
	}
	start, err := itinerary.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", utils.ErrInvalidInput, err)
	}
	end, err := itinerary.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", utils.ErrInvalidInput, err)
	}
	if (req.DestinationLatitude == nil) != (req.DestinationLongitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be given together", utils.ErrInvalidInput)
	}

	item := &db_models.ItineraryItem{
		DayNumber:   req.DayNumber,
		Name:        req.Name,
		Description: req.Description,
		StartTime:   start.String(),
		EndTime:     end.String(),
	}
	if req.DestinationLatitude != nil {
		lat, lng := float64(*req.DestinationLatitude), float64(*req.DestinationLongitude)
		item.DestinationLatitude = &lat
		item.DestinationLongitude = &lng
	}
	return item, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id %q", utils.ErrInvalidInput, raw)
	}
	return id, nil
}

func (s *ItineraryService) toResponse(m *db_models.Itinerary) response_models.ItineraryResponse {
	start, end := itinerary.DateOf(m.StartDate), itinerary.DateOf(m.EndDate)
	return response_models.ItineraryResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		StartDate: start.String(),
		EndDate:   end.String(),
		TotalDays: s.calculator.DayRange(itinerary.Itinerary{StartDate: start, EndDate: end}),
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(m.CreatedAt, s.loc), s.loc),
	}
}

func (s *ItineraryService) toDetailResponse(m *db_models.Itinerary) *response_models.ItineraryDetailResponse {
	out := &response_models.ItineraryDetailResponse{
		ItineraryResponse: s.toResponse(m),
		Items:             make([]response_models.ItineraryItemResponse, 0, len(m.Items)),
	}
	for i := range m.Items {
		out.Items = append(out.Items, toItemResponse(&m.Items[i]))
	}
	return out
}

func toItemResponse(m *db_models.ItineraryItem) response_models.ItineraryItemResponse {
	return response_models.ItineraryItemResponse{
		ID:                   m.ID.String(),
		Name:                 m.Name,
		Description:          m.Description,
		DayNumber:            m.DayNumber,
		StartTime:            m.StartTime,
		EndTime:              m.EndTime,
		DestinationLatitude:  m.DestinationLatitude,
		DestinationLongitude: m.DestinationLongitude,
	}
}
