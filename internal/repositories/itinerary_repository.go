package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "vivu/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error
	GetItineraryById(ctx context.Context, itineraryId uuid.UUID) (*dbm.Itinerary, error)
	ListItineraries(ctx context.Context, page int, pageSize int) ([]dbm.Itinerary, error)
	AddItem(ctx context.Context, itineraryId uuid.UUID, item *dbm.ItineraryItem) error
	RemoveItem(ctx context.Context, itineraryId uuid.UUID, itemId uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	for i := range itinerary.Items {
		itinerary.Items[i].Position = i
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(itinerary).Error
	})
}

// GetItineraryById returns nil, nil when the itinerary does not exist.
func (r *itineraryRepository) GetItineraryById(ctx context.Context, itineraryId uuid.UUID) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryId).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) ListItineraries(ctx context.Context, page int, pageSize int) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("start_date DESC").Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// AddItem appends the item after the itinerary's current last position.
func (r *itineraryRepository) AddItem(ctx context.Context, itineraryId uuid.UUID, item *dbm.ItineraryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&dbm.Itinerary{}).Where("id = ?", itineraryId).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}

		var last struct{ Max *int }
		if err := tx.Model(&dbm.ItineraryItem{}).
			Select("MAX(position) AS max").
			Where("itinerary_id = ?", itineraryId).
			Scan(&last).Error; err != nil {
			return err
		}

		item.ItineraryID = itineraryId
		item.Position = 0
		if last.Max != nil {
			item.Position = *last.Max + 1
		}
		return tx.Create(item).Error
	})
}

func (r *itineraryRepository) RemoveItem(ctx context.Context, itineraryId uuid.UUID, itemId uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND itinerary_id = ?", itemId, itineraryId).
		Delete(&dbm.ItineraryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
