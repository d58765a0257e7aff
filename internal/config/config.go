package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`
	PostgresURL string `env:"POSTGRES_URL,required"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Zone used to decide which calendar day "today" is.
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	// Longest trip accepted for storage or scheduling; 0 disables the limit.
	MaxTripDays int `env:"MAX_TRIP_DAYS" envDefault:"366"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	MapboxAccessToken string        `env:"MAPBOX_ACCESS_TOKEN"`
	MapboxProfile     string        `env:"MAPBOX_PROFILE" envDefault:"driving"`
	MatrixCacheTTL    time.Duration `env:"MATRIX_CACHE_TTL" envDefault:"168h"`
	MatrixTimeout     time.Duration `env:"MATRIX_TIMEOUT" envDefault:"15s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment variables: %w", err)
	}
	return cfg, nil
}

func (c *Config) MatrixEnabled() bool {
	return c.MapboxAccessToken != ""
}
