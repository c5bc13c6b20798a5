package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Routing  RoutingConfig
	Detour   DetourConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DetourCacheTTL time.Duration
	StatsCacheTTL  time.Duration
}

type LogConfig struct {
	Level string
}

// RoutingConfig - OSRM compatible routing service
type RoutingConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout time.Duration
	MaxCoordinates int
}

type DetourConfig struct {
	DefaultCap int
	// MaxConcurrency bounds the routing queries issued in parallel for one evaluation.
	MaxConcurrency int
	// MinPairSeparation in meters; closer stop pairs are skipped as degenerate.
	MinPairSeparation float64
	// MaxStops is the longest line that can be evaluated. It never exceeds Routing.MaxCoordinates.
	MaxStops int
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			ReadTimeout:  time.Duration(viper.GetInt("API_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("API_WRITE_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DetourCacheTTL: time.Duration(viper.GetInt("DETOUR_CACHE_TTL")) * time.Second,
			StatsCacheTTL:  time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			Profile:        viper.GetString("ROUTING_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("ROUTING_REQUEST_TIMEOUT")) * time.Second,
			MaxCoordinates: viper.GetInt("ROUTING_MAX_COORDINATES"),
		},
		Detour: DetourConfig{
			DefaultCap:        viper.GetInt("DETOUR_DEFAULT_CAP"),
			MaxConcurrency:    viper.GetInt("DETOUR_MAX_CONCURRENCY"),
			MinPairSeparation: viper.GetFloat64("DETOUR_MIN_PAIR_SEPARATION"),
			MaxStops:          viper.GetInt("DETOUR_MAX_STOPS"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 2 * time.Minute
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.DetourCacheTTL == 0 {
		c.Cache.DetourCacheTTL = time.Hour
	}
	if c.Cache.StatsCacheTTL == 0 {
		c.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if c.Routing.BaseURL == "" {
		c.Routing.BaseURL = "https://router.project-osrm.org"
	}
	if c.Routing.Profile == "" {
		c.Routing.Profile = "driving"
	}
	if c.Routing.RequestTimeout == 0 {
		c.Routing.RequestTimeout = 10 * time.Second
	}
	if c.Routing.MaxCoordinates == 0 {
		c.Routing.MaxCoordinates = 100
	}
	if c.Detour.MaxStops <= 0 || c.Detour.MaxStops > c.Routing.MaxCoordinates {
		c.Detour.MaxStops = c.Routing.MaxCoordinates
	}
	if c.Detour.MaxConcurrency <= 0 {
		c.Detour.MaxConcurrency = 8
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "detour-evaluation-workers"
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
	if c.Worker.MaxRetries == 0 {
		c.Worker.MaxRetries = 3
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
