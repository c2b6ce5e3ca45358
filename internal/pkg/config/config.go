package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, operator account)
// - default: Facility parameters with sensible production defaults (spot
//   counts, rates); override per deployment
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Lot    LotConfig
	Rates  RatesConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Staff  StaffConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// LotConfig is the physical layout of the facility, read once at construction.
type LotConfig struct {
	RegularSpots    int `envconfig:"LOT_REGULAR_SPOTS" default:"100"`
	AccessibleSpots int `envconfig:"LOT_ACCESSIBLE_SPOTS" default:"20"`
}

// RatesConfig carries the hourly rate table, the free grace period and the
// subscription tier discount multipliers.
type RatesConfig struct {
	CarHourly            float64 `envconfig:"RATE_CAR_HOURLY" default:"18.0"`
	CarAccessible        float64 `envconfig:"RATE_CAR_ACCESSIBLE" default:"8.0"`
	MotorcycleHourly     float64 `envconfig:"RATE_MOTORCYCLE_HOURLY" default:"12.0"`
	MotorcycleAccessible float64 `envconfig:"RATE_MOTORCYCLE_ACCESSIBLE" default:"8.0"`
	FreeHours            float64 `envconfig:"RATE_FREE_HOURS" default:"2.0"`

	StandardMultiplier float64 `envconfig:"SUBSCRIPTION_STANDARD_MULTIPLIER" default:"0.8"`
	PremiumMultiplier  float64 `envconfig:"SUBSCRIPTION_PREMIUM_MULTIPLIER" default:"0.7"`
	VIPMultiplier      float64 `envconfig:"SUBSCRIPTION_VIP_MULTIPLIER" default:"0.6"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// StaffConfig is the single operator account allowed to call the staff
// endpoints (reports, session listings, facility reset).
type StaffConfig struct {
	OperatorName         string `envconfig:"STAFF_OPERATOR_NAME" default:"operator"`
	OperatorPasswordHash string `envconfig:"STAFF_OPERATOR_PASSWORD_HASH" required:"true"`
}

func (c LotConfig) TotalSpots() int {
	return c.RegularSpots + c.AccessibleSpots
}

func (c LotConfig) validate() error {
	if c.RegularSpots < 0 || c.AccessibleSpots < 0 {
		return fmt.Errorf("spot counts cannot be negative: regular=%d accessible=%d", c.RegularSpots, c.AccessibleSpots)
	}
	if c.RegularSpots+c.AccessibleSpots == 0 {
		return fmt.Errorf("facility must have at least one spot")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Lot.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid lot config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Lot: LotConfig{
			RegularSpots:    10,
			AccessibleSpots: 2,
		},
		Rates: RatesConfig{
			CarHourly:            18.0,
			CarAccessible:        8.0,
			MotorcycleHourly:     12.0,
			MotorcycleAccessible: 8.0,
			FreeHours:            2.0,
			StandardMultiplier:   0.8,
			PremiumMultiplier:    0.7,
			VIPMultiplier:        0.6,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Staff: StaffConfig{
			OperatorName: "operator",
			// bcrypt hash of "test-operator-password"
			OperatorPasswordHash: "$2a$10$hJ0SOlmekzRlLOsoHbJbM.jcJXtn2l8ZiTT1cLkHNIJfHMGDVVVVS",
		},
	}
}
