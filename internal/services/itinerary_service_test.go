package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vivu/internal/models/request_models"
	"vivu/pkg/itinerary"
	"vivu/pkg/utils"
)

func newItineraryService(repo *fakeItineraryRepo) ItineraryServiceInterface {
	return NewItineraryService(repo, fixedCalculator(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)), time.UTC)
}

func validCreateRequest() request_models.CreateItineraryRequest {
	return request_models.CreateItineraryRequest{
		Title:     "Saigon weekend",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-03",
		Items: []request_models.ItineraryItemRequest{
			{
				Name:                 "Ben Thanh market",
				DayNumber:            1,
				StartTime:            "09:00",
				EndTime:              "10:30",
				DestinationLatitude:  itinerary.DegreesPtr(10.7725),
				DestinationLongitude: itinerary.DegreesPtr(106.6980),
			},
			{
				Name:      "Cu Chi tunnels",
				DayNumber: 2,
				StartTime: "8:00",
				EndTime:   "12:00",
			},
		},
	}
}

func TestItineraryService_CreateAndGet(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newItineraryService(repo)

	created, err := svc.CreateItinerary(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Saigon weekend", created.Title)
	assert.Equal(t, "2025-01-01", created.StartDate)
	assert.Equal(t, 3, created.TotalDays)
	assert.Equal(t, "2025-01-01T00:00:00Z", created.CreatedAt)
	require.Len(t, created.Items, 2)
	assert.Equal(t, "08:00", created.Items[1].StartTime, "clock is normalised")
	require.NotNil(t, created.Items[0].DestinationLatitude)
	assert.InDelta(t, 10.7725, *created.Items[0].DestinationLatitude, 1e-9)

	got, err := svc.GetItineraryById(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Items, 2)
}

func TestItineraryService_CreateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *request_models.CreateItineraryRequest)
		wantErr error
	}{
		{
			name:    "missing title",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.Title = "" },
			wantErr: utils.ErrInvalidInput,
		},
		{
			name:    "end before start",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.EndDate = "2024-12-31" },
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:    "bad date",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.StartDate = "01/01/2025" },
			wantErr: utils.ErrInvalidInput,
		},
		{
			name:    "day beyond trip",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.Items[1].DayNumber = 4 },
			wantErr: utils.ErrDayOutOfRange,
		},
		{
			name:    "bad clock",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.Items[0].EndTime = "25:00" },
			wantErr: utils.ErrInvalidInput,
		},
		{
			name:    "latitude out of bounds",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.Items[0].DestinationLatitude = itinerary.DegreesPtr(91) },
			wantErr: utils.ErrInvalidInput,
		},
		{
			name:    "half a coordinate",
			mutate:  func(r *request_models.CreateItineraryRequest) { r.Items[0].DestinationLongitude = nil },
			wantErr: utils.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItineraryRepo()
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := newItineraryService(repo).CreateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.store)
		})
	}
}

func TestItineraryService_CreateRejectsLongTrip(t *testing.T) {
	repo := newFakeItineraryRepo()
	calc := fixedCalculator(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	calc.MaxDays = 30
	svc := NewItineraryService(repo, calc, time.UTC)

	req := validCreateRequest()
	req.EndDate = "2200-01-01"
	_, err := svc.CreateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrTripTooLong)
	assert.Empty(t, repo.store)

	req.EndDate = "2025-01-30"
	_, err = svc.CreateItinerary(context.Background(), req)
	require.NoError(t, err)
}

func TestItineraryService_DatabaseErrors(t *testing.T) {
	repo := newFakeItineraryRepo()
	repo.err = errBoom
	svc := newItineraryService(repo)

	_, err := svc.CreateItinerary(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.GetItineraryById(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.ListItineraries(context.Background(), 1, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestItineraryService_GetNotFound(t *testing.T) {
	svc := newItineraryService(newFakeItineraryRepo())

	_, err := svc.GetItineraryById(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)

	_, err = svc.GetItineraryById(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestItineraryService_ListPaging(t *testing.T) {
	svc := newItineraryService(newFakeItineraryRepo())

	_, err := svc.ListItineraries(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListItineraries(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	out, err := svc.ListItineraries(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestItineraryService_AddAndRemoveItem(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newItineraryService(repo)

	created, err := svc.CreateItinerary(context.Background(), validCreateRequest())
	require.NoError(t, err)

	added, err := svc.AddItem(context.Background(), created.ID, request_models.ItineraryItemRequest{
		Name:      "Night market",
		DayNumber: 3,
		StartTime: "19:00",
		EndTime:   "21:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added.DayNumber)

	_, err = svc.AddItem(context.Background(), created.ID, request_models.ItineraryItemRequest{
		Name:      "Too late",
		DayNumber: 9,
		StartTime: "19:00",
		EndTime:   "21:00",
	})
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)

	_, err = svc.AddItem(context.Background(), uuid.NewString(), request_models.ItineraryItemRequest{
		Name:      "Nowhere",
		DayNumber: 1,
		StartTime: "19:00",
		EndTime:   "21:00",
	})
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)

	require.NoError(t, svc.RemoveItem(context.Background(), created.ID, added.ID))
	assert.ErrorIs(t, svc.RemoveItem(context.Background(), created.ID, added.ID), utils.ErrItemNotFound)
	assert.ErrorIs(t, svc.RemoveItem(context.Background(), created.ID, "x"), utils.ErrInvalidInput)

	got, err := svc.GetItineraryById(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}
