package itinerary_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"vivu/internal/repositories"
	"vivu/internal/services"
	"vivu/pkg/itinerary"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(repo repositories.ItineraryRepository, calculator *itinerary.Calculator, loc *time.Location) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, calculator, loc)
}
