package schedule_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"vivu/internal/repositories"
	"vivu/internal/services"
	"vivu/pkg/itinerary"
)

var Module = fx.Provide(provideScheduleService)

func provideScheduleService(
	repo repositories.ItineraryRepository,
	calculator *itinerary.Calculator,
	matrix services.DistanceMatrixService,
	log *zap.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(repo, calculator, matrix, log.Named("schedule"))
}
