package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Routing  RoutingConfig
	Mapbox   MapboxConfig
	ORS      ORSConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
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
	MatrixCacheTTL  time.Duration
	GeocodeCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	EventTimeout    time.Duration // предел на обработку одного события
	ShutdownTimeout time.Duration
	MaxRetries      int           // попытки публикации результата
	ClaimMinIdle    time.Duration // через сколько сообщение без ACK забирает любой consumer группы
}

// MaxRouteLocations - жесткий предел точек в запросе, совпадает с валидацией dto.OptimizeRouteRequest
const MaxRouteLocations = 25

// RoutingConfig - выбор провайдера матрицы и ограничения запроса
type RoutingConfig struct {
	Provider        string // mapbox | ors | geodesic
	MaxLocations    int
	GeodesicSpeedKm float64 // средняя скорость для оценочного провайдера, км/ч
	DetourFactor    float64 // коэффициент удлинения дороги относительно прямой
}

type MapboxConfig struct {
	AccessToken     string
	BaseURL         string
	DrivingProfile  string
	MaxMatrixPoints int
	RequestTimeout  int // секунды
	RateLimitPerMin int
}

type ORSConfig struct {
	APIKey         string
	BaseURL        string
	Profile        string
	RequestTimeout int // секунды
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного файла и окружения.
// Отсутствие файла не ошибка: в контейнере все приходит через окружение.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MatrixCacheTTL:  time.Duration(v.GetInt("MATRIX_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL: time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   v.GetString("WORKER_CONSUMER_GROUP"),
			EventTimeout:    time.Duration(v.GetInt("WORKER_EVENT_TIMEOUT")) * time.Second,
			ShutdownTimeout: time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
			MaxRetries:      v.GetInt("WORKER_MAX_RETRIES"),
			ClaimMinIdle:    time.Duration(v.GetInt("WORKER_CLAIM_MIN_IDLE")) * time.Second,
		},
		Routing: RoutingConfig{
			Provider:        strings.ToLower(strings.TrimSpace(v.GetString("ROUTING_PROVIDER"))),
			MaxLocations:    v.GetInt("ROUTING_MAX_LOCATIONS"),
			GeodesicSpeedKm: v.GetFloat64("ROUTING_GEODESIC_SPEED_KMH"),
			DetourFactor:    v.GetFloat64("ROUTING_DETOUR_FACTOR"),
		},
		Mapbox: MapboxConfig{
			AccessToken:     v.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:         v.GetString("MAPBOX_BASE_URL"),
			DrivingProfile:  v.GetString("MAPBOX_DRIVING_PROFILE"),
			MaxMatrixPoints: v.GetInt("MAPBOX_MAX_MATRIX_POINTS"),
			RequestTimeout:  v.GetInt("MAPBOX_REQUEST_TIMEOUT"),
			RateLimitPerMin: v.GetInt("MAPBOX_RATE_LIMIT_PER_MIN"),
		},
		ORS: ORSConfig{
			APIKey:         v.GetString("ORS_API_KEY"),
			BaseURL:        v.GetString("ORS_BASE_URL"),
			Profile:        v.GetString("ORS_PROFILE"),
			RequestTimeout: v.GetInt("ORS_REQUEST_TIMEOUT"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.MatrixCacheTTL == 0 {
		cfg.Cache.MatrixCacheTTL = 6 * time.Hour
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 30 * 24 * time.Hour
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-optimize-workers"
	}
	if cfg.Worker.EventTimeout == 0 {
		cfg.Worker.EventTimeout = 30 * time.Second
	}
	if cfg.Worker.ShutdownTimeout == 0 {
		cfg.Worker.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.ClaimMinIdle == 0 {
		cfg.Worker.ClaimMinIdle = time.Minute
	}
	if cfg.Routing.Provider == "" {
		cfg.Routing.Provider = "mapbox"
	}
	if cfg.Routing.MaxLocations == 0 {
		cfg.Routing.MaxLocations = MaxRouteLocations
	}
	if cfg.Routing.GeodesicSpeedKm == 0 {
		cfg.Routing.GeodesicSpeedKm = 40
	}
	if cfg.Routing.DetourFactor == 0 {
		cfg.Routing.DetourFactor = 1.3
	}
	if cfg.Mapbox.BaseURL == "" {
		cfg.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if cfg.Mapbox.DrivingProfile == "" {
		cfg.Mapbox.DrivingProfile = "mapbox/driving"
	}
	if cfg.Mapbox.MaxMatrixPoints == 0 {
		cfg.Mapbox.MaxMatrixPoints = 25
	}
	if cfg.Mapbox.RequestTimeout == 0 {
		cfg.Mapbox.RequestTimeout = 10
	}
	if cfg.Mapbox.RateLimitPerMin == 0 {
		cfg.Mapbox.RateLimitPerMin = 60
	}
	if cfg.ORS.BaseURL == "" {
		cfg.ORS.BaseURL = "https://api.openrouteservice.org"
	}
	if cfg.ORS.Profile == "" {
		cfg.ORS.Profile = "driving-car"
	}
	if cfg.ORS.RequestTimeout == 0 {
		cfg.ORS.RequestTimeout = 10
	}
}

func (c *Config) validate() error {
	switch c.Routing.Provider {
	case "mapbox":
		if c.Mapbox.AccessToken == "" {
			return fmt.Errorf("MAPBOX_ACCESS_TOKEN is required for routing provider %q", c.Routing.Provider)
		}
	case "ors":
		if c.ORS.APIKey == "" {
			return fmt.Errorf("ORS_API_KEY is required for routing provider %q", c.Routing.Provider)
		}
	case "geodesic":
	default:
		return fmt.Errorf("unknown routing provider %q", c.Routing.Provider)
	}

	if c.Routing.MaxLocations < 2 || c.Routing.MaxLocations > MaxRouteLocations {
		return fmt.Errorf("ROUTING_MAX_LOCATIONS must be between 2 and %d, got %d", MaxRouteLocations, c.Routing.MaxLocations)
	}
	return nil
}

// CORSOriginList возвращает разрешенные origin списком
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.Server.CORSOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения для драйвера pgx
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
