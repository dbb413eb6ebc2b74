package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FLOORDESK_APP_ENV" default:"dev"`
	Port         string `envconfig:"FLOORDESK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FLOORDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FLOORDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type DBConfig struct {
	Driver string `envconfig:"FLOORDESK_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"FLOORDESK_DB_DSN" default:"floordesk.db"`

	MaxOpenConns    int           `envconfig:"FLOORDESK_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"FLOORDESK_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"FLOORDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FLOORDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q (want %s or %s)", db.Driver, DBDriverSQLite, DBDriverPostgres)
	}
	if db.DSN == "" {
		return fmt.Errorf("FLOORDESK_DB_DSN is required")
	}
	return nil
}

type JWTConfig struct {
	Secret            string `envconfig:"FLOORDESK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FLOORDESK_JWT_ISSUER" default:"floordesk"`
	ExpirationMinutes int    `envconfig:"FLOORDESK_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FLOORDESK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FLOORDESK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FLOORDESK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FLOORDESK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FLOORDESK_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"FLOORDESK_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate  bool `envconfig:"FLOORDESK_AUTO_MIGRATE" default:"true"`
	SeedDefaults bool `envconfig:"FLOORDESK_SEED_DEFAULTS" default:"true"`
}
