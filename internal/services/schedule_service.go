package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"vivu/internal/models/response_models"
	"vivu/internal/repositories"
	"vivu/pkg/itinerary"
	"vivu/pkg/utils"
)

type ScheduleServiceInterface interface {
	BuildSchedule(ctx context.Context, it itinerary.Itinerary) (*response_models.ScheduleResponse, error)
	GetScheduleForItinerary(ctx context.Context, itineraryId string) (*response_models.ScheduleResponse, error)
	CheckGap(ctx context.Context, from, to itinerary.Item) response_models.GapCheckResponse
}

type ScheduleService struct {
	itineraryRepo repositories.ItineraryRepository
	calculator    *itinerary.Calculator
	matrix        DistanceMatrixService
	log           *zap.Logger
}

func NewScheduleService(
	itineraryRepo repositories.ItineraryRepository,
	calculator *itinerary.Calculator,
	matrix DistanceMatrixService,
	log *zap.Logger,
) ScheduleServiceInterface {
	if matrix == nil {
		matrix = NewNoopMatrix()
	}
	return &ScheduleService{
		itineraryRepo: itineraryRepo,
		calculator:    calculator,
		matrix:        matrix,
		log:           log,
	}
}

func (s *ScheduleService) GetScheduleForItinerary(ctx context.Context, itineraryId string) (*response_models.ScheduleResponse, error) {
	id, err := uuid.Parse(itineraryId)
	if err != nil {
		return nil, fmt.Errorf("%w: itinerary id %q", utils.ErrInvalidInput, itineraryId)
	}

	stored, err := s.itineraryRepo.GetItineraryById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if stored == nil {
		return nil, utils.ErrItineraryNotFound
	}

	it, err := stored.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: stored itinerary %s: %v", utils.ErrDatabaseError, id, err)
	}

	return s.BuildSchedule(ctx, it)
}

// BuildSchedule groups items by day, orders each day by start time and
// annotates every consecutive pair with its travel diagnostics. Days are
// annotated concurrently.
func (s *ScheduleService) BuildSchedule(ctx context.Context, it itinerary.Itinerary) (*response_models.ScheduleResponse, error) {
	if it.EndDate.Before(it.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if err := s.calculator.CheckSpan(it); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrTripTooLong, err)
	}

	totalDays := s.calculator.DayRange(it)
	currentDay := s.calculator.CurrentDay(it)

	groups := itinerary.GroupByDay(it.Items)
	dayNumbers := scheduleDayNumbers(groups, totalDays)

	out := &response_models.ScheduleResponse{
		StartDate:  it.StartDate.String(),
		EndDate:    it.EndDate.String(),
		TotalDays:  totalDays,
		CurrentDay: currentDay,
		IsPastEnd:  s.calculator.Today().DaysSince(it.StartDate)+1 > totalDays,
		TotalItems: len(it.Items),
		Days:       make([]response_models.ScheduleDay, len(dayNumbers)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, day := range dayNumbers {
		eg.Go(func() error {
			scheduled, err := s.buildDay(egCtx, it, day, groups[day], totalDays)
			if err != nil {
				return err
			}
			out.Days[i] = scheduled
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, day := range out.Days {
		for _, leg := range day.Legs {
			if !leg.Sufficient {
				out.ConflictCount++
			}
		}
	}

	return out, nil
}

func (s *ScheduleService) buildDay(
	ctx context.Context,
	it itinerary.Itinerary,
	day int,
	items []itinerary.Item,
	totalDays int,
) (response_models.ScheduleDay, error) {
	if err := ctx.Err(); err != nil {
		return response_models.ScheduleDay{}, err
	}

	sorted := itinerary.SortByStartTime(items)
	out := response_models.ScheduleDay{
		DayNumber:  day,
		Date:       s.calculator.DateForDay(it, day),
		IsToday:    s.calculator.Today() == it.StartDate.AddDays(day-1),
		OutOfRange: day < 1 || day > totalDays,
		Items:      sorted,
		Legs:       make([]response_models.ScheduleLeg, 0, max(len(sorted)-1, 0)),
	}

	roads := s.roadDistances(ctx, sorted)

	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		leg := legFor(a, b)
		leg.FromIndex = i
		if edge, ok := roads[a.ID][b.ID]; ok && a.ID != "" && b.ID != "" {
			meters := edge.DistanceMeters
			leg.RoadDistanceMeters = &meters
		}
		out.Legs = append(out.Legs, leg)
	}
	return out, nil
}

// roadDistances is best effort: a failing provider only loses the road figures.
func (s *ScheduleService) roadDistances(ctx context.Context, items []itinerary.Item) DistanceMatrix {
	if !s.matrix.Enabled() || len(items) < 2 {
		return nil
	}

	points := make([]MatrixPoint, 0, len(items))
	for _, item := range items {
		loc, ok := item.Location()
		if !ok || item.ID == "" {
			continue
		}
		points = append(points, MatrixPoint{ID: item.ID, Lat: loc.Lat, Lng: loc.Lng})
	}
	if len(points) < 2 {
		return nil
	}

	mat, err := s.matrix.ComputeDistances(ctx, points)
	if err != nil {
		s.log.Warn("road distances unavailable", zap.Error(err), zap.Int("points", len(points)))
		return nil
	}
	return mat
}

func (s *ScheduleService) CheckGap(ctx context.Context, from, to itinerary.Item) response_models.GapCheckResponse {
	leg := legFor(from, to)
	return response_models.GapCheckResponse{
		GapCheck:      itinerary.GapCheck{Sufficient: leg.Sufficient, Message: leg.Message},
		GapMinutes:    leg.GapMinutes,
		TravelMinutes: leg.TravelMinutes,
		Overlap:       leg.Overlap,
	}
}

func legFor(a, b itinerary.Item) response_models.ScheduleLeg {
	check := itinerary.CheckSufficientGap(a, b)
	leg := response_models.ScheduleLeg{
		FromID:     a.ID,
		ToID:       b.ID,
		GapMinutes: itinerary.GapMinutes(a, b),
		Sufficient: check.Sufficient,
		Message:    check.Message,
	}
	leg.Overlap = leg.GapMinutes < 0
	if minutes, ok := itinerary.EstimateTravelMinutes(a, b); ok {
		leg.TravelMinutes = &minutes
	}
	return leg
}

// scheduleDayNumbers lists 1..totalDays, with any other day numbers the items
// use placed before or after according to their value.
func scheduleDayNumbers(groups map[int][]itinerary.Item, totalDays int) []int {
	var before, after []int
	for _, d := range itinerary.Days(groups) {
		switch {
		case d < 1:
			before = append(before, d)
		case d > totalDays:
			after = append(after, d)
		}
	}

	days := make([]int, 0, len(before)+totalDays+len(after))
	days = append(days, before...)
	for d := 1; d <= totalDays; d++ {
		days = append(days, d)
	}
	return append(days, after...)
}
