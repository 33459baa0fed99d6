package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Google    GoogleConfig
	Anthropic AnthropicConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
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
	FeedCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GoogleConfig - настройки клиента Google Places и политика агрегации фида
type GoogleConfig struct {
	APIKey          string
	BaseURL         string
	PhotoBaseURL    string
	MaxPhotoWidth   int
	RequestTimeout  int
	RequestsPerSec  float64
	SearchRadius    int
	PopularRating   float64
	MaxAiCandidates int
	DetailWorkers   int
}

type AnthropicConfig struct {
	APIKey         string
	Model          string
	MaxTokens      int
	RequestTimeout time.Duration
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// WorkerConfig - настройки воркера прогрева кеша фида
type WorkerConfig struct {
	Enabled       bool
	WarmInterval  time.Duration
	WarmInterests []string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
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
			FeedCacheTTL: time.Duration(viper.GetInt("FEED_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Google: GoogleConfig{
			APIKey:          viper.GetString("GOOGLE_API_KEY"),
			BaseURL:         viper.GetString("GOOGLE_PLACES_BASE_URL"),
			PhotoBaseURL:    viper.GetString("GOOGLE_PLACES_PHOTO_URL"),
			MaxPhotoWidth:   viper.GetInt("GOOGLE_PLACES_MAX_PHOTO_WIDTH"),
			RequestTimeout:  viper.GetInt("GOOGLE_PLACES_REQUEST_TIMEOUT"),
			RequestsPerSec:  viper.GetFloat64("GOOGLE_PLACES_REQUESTS_PER_SEC"),
			SearchRadius:    viper.GetInt("FEED_SEARCH_RADIUS"),
			PopularRating:   viper.GetFloat64("FEED_POPULAR_RATING"),
			MaxAiCandidates: viper.GetInt("FEED_MAX_AI_CANDIDATES"),
			DetailWorkers:   viper.GetInt("FEED_DETAIL_WORKERS"),
		},
		Anthropic: AnthropicConfig{
			APIKey:         viper.GetString("ANTHROPIC_API_KEY"),
			Model:          viper.GetString("ANTHROPIC_MODEL"),
			MaxTokens:      viper.GetInt("ANTHROPIC_MAX_TOKENS"),
			RequestTimeout: time.Duration(viper.GetInt("ANTHROPIC_REQUEST_TIMEOUT")) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("JWT_SECRET"),
			AccessTTL:  time.Duration(viper.GetInt("JWT_ACCESS_TTL")) * time.Minute,
			RefreshTTL: time.Duration(viper.GetInt("JWT_REFRESH_TTL")) * time.Minute,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			WarmInterval:  time.Duration(viper.GetInt("WORKER_WARM_INTERVAL")) * time.Second,
			WarmInterests: parseInterests(viper.GetString("WORKER_WARM_INTERESTS")),
		},
	}

	// Set default values if not provided
	if cfg.Google.BaseURL == "" {
		cfg.Google.BaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if cfg.Google.PhotoBaseURL == "" {
		cfg.Google.PhotoBaseURL = "https://maps.googleapis.com/maps/api/place/photo"
	}
	if cfg.Google.MaxPhotoWidth == 0 {
		cfg.Google.MaxPhotoWidth = 400
	}
	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 30
	}
	if cfg.Google.RequestsPerSec == 0 {
		cfg.Google.RequestsPerSec = 10
	}
	if cfg.Google.SearchRadius == 0 {
		cfg.Google.SearchRadius = 5000
	}
	if cfg.Google.PopularRating == 0 {
		cfg.Google.PopularRating = 4.5
	}
	if cfg.Google.MaxAiCandidates == 0 {
		cfg.Google.MaxAiCandidates = 5
	}
	if cfg.Google.DetailWorkers == 0 {
		cfg.Google.DetailWorkers = 3
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = "claude-sonnet-4-20250514"
	}
	if cfg.Anthropic.MaxTokens == 0 {
		cfg.Anthropic.MaxTokens = 2048
	}
	if cfg.Anthropic.RequestTimeout == 0 {
		cfg.Anthropic.RequestTimeout = 60 * time.Second
	}
	if cfg.JWT.AccessTTL == 0 {
		cfg.JWT.AccessTTL = 60 * time.Minute
	}
	if cfg.JWT.RefreshTTL == 0 {
		cfg.JWT.RefreshTTL = 30 * 24 * time.Hour
	}
	if cfg.Cache.FeedCacheTTL == 0 {
		cfg.Cache.FeedCacheTTL = 15 * time.Minute
	}
	if cfg.Worker.WarmInterval == 0 {
		cfg.Worker.WarmInterval = 30 * time.Minute
	}
	if len(cfg.Worker.WarmInterests) == 0 {
		cfg.Worker.WarmInterests = []string{"museum", "restaurant", "nature", "nightlife"}
	}

	return cfg, nil
}

func parseInterests(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
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
