package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"vivu/cmd/fx/config_fx"
	"vivu/cmd/fx/controllers_fx"
	"vivu/cmd/fx/db_fx"
	"vivu/cmd/fx/distance_matrix_fx"
	"vivu/cmd/fx/itinerary_fx"
	"vivu/cmd/fx/schedule_fx"
	"vivu/internal/api"
	"vivu/internal/api/controllers"
	"vivu/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		distance_matrix_fx.Module,
		itinerary_fx.Module,
		schedule_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SetMaxProcs),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SetMaxProcs(log *zap.Logger) error {
	_, err := maxprocs.Set(maxprocs.Logger(log.Sugar().Infof))
	return err
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	itineraryController *controllers.ItineraryController,
	scheduleController *controllers.ScheduleController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	return api.NewRouter(log.Named("http"), itineraryController, scheduleController)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
