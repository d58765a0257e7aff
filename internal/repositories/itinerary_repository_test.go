package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"vivu/internal/infra"
	dbm "vivu/internal/models/db_models"
)

func newTestRepo(t *testing.T) ItineraryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return NewItineraryRepository(db)
}

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func newItinerary(title string, start int, names ...string) *dbm.Itinerary {
	it := &dbm.Itinerary{Title: title, StartDate: day(start), EndDate: day(start + 2)}
	for _, name := range names {
		it.Items = append(it.Items, dbm.ItineraryItem{Name: name, DayNumber: 1, StartTime: "09:00", EndTime: "10:00"})
	}
	return it
}

func itemNames(items []dbm.ItineraryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestItineraryRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	it := newItinerary("Hoi An", 1, "lantern walk", "tailor", "beach")
	require.NoError(t, repo.CreateItinerary(ctx, it))
	require.NotEqual(t, uuid.Nil, it.ID)

	got, err := repo.GetItineraryById(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hoi An", got.Title)
	assert.True(t, got.StartDate.Equal(day(1)))
	assert.Equal(t, []string{"lantern walk", "tailor", "beach"}, itemNames(got.Items))
	for i, item := range got.Items {
		assert.Equal(t, i, item.Position)
		assert.Equal(t, it.ID, item.ItineraryID)
	}

	missing, err := repo.GetItineraryById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItineraryRepository_AddItemAppendsAfterLastPosition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	empty := newItinerary("Empty", 1)
	require.NoError(t, repo.CreateItinerary(ctx, empty))

	first := &dbm.ItineraryItem{Name: "first", DayNumber: 1, StartTime: "08:00", EndTime: "09:00"}
	require.NoError(t, repo.AddItem(ctx, empty.ID, first))
	assert.Equal(t, 0, first.Position)

	it := newItinerary("Hue", 1, "citadel", "tombs")
	require.NoError(t, repo.CreateItinerary(ctx, it))

	// removing an item leaves a hole; new items still go last
	require.NoError(t, repo.RemoveItem(ctx, it.ID, it.Items[0].ID))

	later := &dbm.ItineraryItem{Name: "dinner", DayNumber: 1, StartTime: "07:00", EndTime: "08:00"}
	require.NoError(t, repo.AddItem(ctx, it.ID, later))
	assert.Equal(t, 2, later.Position)
	assert.Equal(t, it.ID, later.ItineraryID)

	got, err := repo.GetItineraryById(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tombs", "dinner"}, itemNames(got.Items), "reload keeps insertion order, not start time")

	err = repo.AddItem(ctx, uuid.New(), &dbm.ItineraryItem{Name: "orphan"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItineraryRepository_RemoveItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	it := newItinerary("Da Nang", 1, "bridge")
	other := newItinerary("Ha Long", 5, "cruise")
	require.NoError(t, repo.CreateItinerary(ctx, it))
	require.NoError(t, repo.CreateItinerary(ctx, other))
	itemID := it.Items[0].ID

	// an item is only removable through its own itinerary
	assert.ErrorIs(t, repo.RemoveItem(ctx, other.ID, itemID), gorm.ErrRecordNotFound)

	require.NoError(t, repo.RemoveItem(ctx, it.ID, itemID))
	assert.ErrorIs(t, repo.RemoveItem(ctx, it.ID, itemID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.RemoveItem(ctx, it.ID, uuid.New()), gorm.ErrRecordNotFound)

	got, err := repo.GetItineraryById(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestItineraryRepository_ListItineraries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateItinerary(ctx, newItinerary(title, 1+i*5)))
	}

	page1, err := repo.ListItineraries(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "third", page1[0].Title)
	assert.Equal(t, "second", page1[1].Title)

	page2, err := repo.ListItineraries(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "first", page2[0].Title)
}
