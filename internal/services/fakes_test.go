package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "vivu/internal/models/db_models"
	"vivu/pkg/itinerary"
)

var errBoom = errors.New("boom")

type fakeItineraryRepo struct {
	mu    sync.Mutex
	store map[uuid.UUID]*dbm.Itinerary
	err   error
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{store: make(map[uuid.UUID]*dbm.Itinerary)}
}

func (f *fakeItineraryRepo) CreateItinerary(ctx context.Context, it *dbm.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	it.ID = uuid.New()
	it.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	for i := range it.Items {
		it.Items[i].ID = uuid.New()
		it.Items[i].ItineraryID = it.ID
		it.Items[i].Position = i
	}
	f.store[it.ID] = it
	return nil
}

func (f *fakeItineraryRepo) GetItineraryById(ctx context.Context, id uuid.UUID) (*dbm.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}

func (f *fakeItineraryRepo) ListItineraries(ctx context.Context, page int, pageSize int) ([]dbm.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]dbm.Itinerary, 0, len(f.store))
	for _, it := range f.store {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItineraryRepo) AddItem(ctx context.Context, id uuid.UUID, item *dbm.ItineraryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	it, ok := f.store[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.ID = uuid.New()
	item.ItineraryID = id
	item.Position = len(it.Items)
	it.Items = append(it.Items, *item)
	return nil
}

func (f *fakeItineraryRepo) RemoveItem(ctx context.Context, id uuid.UUID, itemId uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	it, ok := f.store[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range it.Items {
		if it.Items[i].ID == itemId {
			it.Items = append(it.Items[:i], it.Items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMatrix struct {
	mu      sync.Mutex
	calls   int
	err     error
	perLeg  int
	enabled bool
}

func (f *fakeMatrix) Enabled() bool { return f.enabled }

func (f *fakeMatrix) ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	mat := make(DistanceMatrix, len(points))
	for _, a := range points {
		mat[a.ID] = make(map[string]MatrixEdge, len(points))
		for _, b := range points {
			if a.ID != b.ID {
				mat[a.ID][b.ID] = MatrixEdge{DistanceMeters: f.perLeg}
			}
		}
	}
	return mat, nil
}

func fixedCalculator(now time.Time) *itinerary.Calculator {
	return &itinerary.Calculator{Now: func() time.Time { return now }, Location: time.UTC}
}
