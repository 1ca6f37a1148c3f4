package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	JWT      JWT
	Kafka    Kafka
	SMTP     SMTP
	Uploads  Uploads
	Jobs     Jobs
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type JWT struct {
	Secret     string `env:"JWT_SECRET"`
	TTLMinutes int    `env:"JWT_TTL_MINUTES" envDefault:"480"`
}

type Kafka struct {
	Enabled          bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	FleetEventsTopic string   `env:"KAFKA_FLEET_EVENTS_TOPIC" envDefault:"fleet.events"`
}

type SMTP struct {
	Enabled  bool   `env:"SMTP_ENABLED" envDefault:"false"`
	Host     string `env:"SMTP_HOST" envDefault:"localhost"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME" envDefault:""`
	Password string `env:"SMTP_PASSWORD" envDefault:""`
	From     string `env:"SMTP_FROM" envDefault:"alerts@busmanager.local"`
}

type Uploads struct {
	Dir     string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	MaxSize int64  `env:"UPLOADS_MAX_SIZE_BYTES" envDefault:"10485760"`
}

type Jobs struct {
	Enabled           bool `env:"JOBS_ENABLED" envDefault:"true"`
	IntervalMinutes   int  `env:"JOBS_INTERVAL_MINUTES" envDefault:"60"`
	TaxAlertDaysAhead int  `env:"JOBS_TAX_ALERT_DAYS_AHEAD" envDefault:"7"`
	TripGenDaysAhead  int  `env:"JOBS_TRIP_GEN_DAYS_AHEAD" envDefault:"7"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
