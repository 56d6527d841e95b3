package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AuthKey   string        `yaml:"auth_key" json:"auth_key" jsonschema:"required,description=HMAC secret used to verify bearer tokens"`
		ImagesDir string        `yaml:"images_dir" json:"images_dir" jsonschema:"default=images,description=Directory holding recipe images"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		Driver          string `yaml:"driver" json:"driver" jsonschema:"default=sqlite,enum=sqlite,enum=pgx,description=Database driver"`
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:recipescope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Ephemeral cache configuration"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation engine configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for the cooking assistant"`
}

// CacheConfig holds ephemeral cache settings
type CacheConfig struct {
	Backend  string        `yaml:"backend" json:"backend" jsonschema:"default=redis,enum=redis,enum=badger,description=Cache backend"`
	Addr     string        `yaml:"addr" json:"addr" jsonschema:"default=localhost:6379,description=Redis address"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=Redis password"`
	DB       int           `yaml:"db" json:"db" jsonschema:"default=0,description=Redis database number"`
	Path     string        `yaml:"path" json:"path" jsonschema:"description=Badger data directory, empty for in-memory"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2s,description=Cache dial and io timeout"`
}

// BreakerConfig holds circuit breaker settings for upstream calls
type BreakerConfig struct {
	FailureThreshold uint32        `yaml:"failure_threshold" json:"failure_threshold" jsonschema:"default=5,minimum=1,description=Consecutive failures before the breaker opens"`
	OpenTimeout      time.Duration `yaml:"open_timeout" json:"open_timeout" jsonschema:"default=30s,description=Time the breaker stays open before probing"`
	MaxRequests      uint32        `yaml:"max_requests" json:"max_requests" jsonschema:"default=1,description=Probe requests allowed while half-open"`
}

// RecommendConfig holds quota and selection settings
type RecommendConfig struct {
	DailyLimit       int64         `yaml:"daily_limit" json:"daily_limit" jsonschema:"default=50,minimum=1,description=Recommendations per day for non-subscribers"`
	QuotaTTL         time.Duration `yaml:"quota_ttl" json:"quota_ttl" jsonschema:"default=24h,description=Lifetime of a daily quota counter"`
	ExclusionTTL     time.Duration `yaml:"exclusion_ttl" json:"exclusion_ttl" jsonschema:"default=24h,description=Sliding lifetime of the already-shown set"`
	CookingTolerance int           `yaml:"cooking_tolerance" json:"cooking_tolerance" jsonschema:"default=10,minimum=0,description=Cooking time tolerance in minutes"`
	Timezone         string        `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=Timezone defining the quota calendar day"`
	CallTimeout      time.Duration `yaml:"call_timeout" json:"call_timeout" jsonschema:"default=2s,description=Timeout of a single cache or store call"`
	Breaker          BreakerConfig `yaml:"breaker" json:"breaker" jsonschema:"description=Circuit breaker for cache and store calls"`
}

// LLMConfig holds LLM configuration for the cooking assistant
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint, empty disables the assistant"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.ImagesDir == "" {
		cfg.Server.ImagesDir = "images"
	}

	// database
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file:recipescope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// cache
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "redis"
	}
	if cfg.Cache.Addr == "" && cfg.Cache.Backend == "redis" {
		cfg.Cache.Addr = "localhost:6379"
	}
	if cfg.Cache.Timeout == 0 {
		cfg.Cache.Timeout = 2 * time.Second
	}

	// recommendations
	if cfg.Recommend.DailyLimit == 0 {
		cfg.Recommend.DailyLimit = 50
	}
	if cfg.Recommend.QuotaTTL == 0 {
		cfg.Recommend.QuotaTTL = 24 * time.Hour
	}
	if cfg.Recommend.ExclusionTTL == 0 {
		cfg.Recommend.ExclusionTTL = 24 * time.Hour
	}
	if cfg.Recommend.CookingTolerance == 0 {
		cfg.Recommend.CookingTolerance = 10
	}
	if cfg.Recommend.Timezone == "" {
		cfg.Recommend.Timezone = "UTC"
	}
	if cfg.Recommend.CallTimeout == 0 {
		cfg.Recommend.CallTimeout = 2 * time.Second
	}
	if cfg.Recommend.Breaker.FailureThreshold == 0 {
		cfg.Recommend.Breaker.FailureThreshold = 5
	}
	if cfg.Recommend.Breaker.OpenTimeout == 0 {
		cfg.Recommend.Breaker.OpenTimeout = 30 * time.Second
	}
	if cfg.Recommend.Breaker.MaxRequests == 0 {
		cfg.Recommend.Breaker.MaxRequests = 1
	}

	// llm
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.AuthKey == "" {
		return fmt.Errorf("server.auth_key is required")
	}

	// validate database config
	switch cfg.Database.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("unsupported database.driver: %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for driver %s", cfg.Database.Driver)
	}

	// validate cache config
	switch cfg.Cache.Backend {
	case "redis":
		if cfg.Cache.Addr == "" {
			return fmt.Errorf("cache.addr is required for redis backend")
		}
	case "badger":
	default:
		return fmt.Errorf("unsupported cache.backend: %s", cfg.Cache.Backend)
	}

	// validate recommendation config
	if cfg.Recommend.DailyLimit < 1 {
		return fmt.Errorf("recommend.daily_limit must be at least 1")
	}
	if cfg.Recommend.CookingTolerance < 0 {
		return fmt.Errorf("recommend.cooking_tolerance must be non-negative")
	}
	if cfg.Recommend.QuotaTTL < time.Minute || cfg.Recommend.ExclusionTTL < time.Minute {
		return fmt.Errorf("recommend ttl values must be at least 1 minute")
	}
	if _, err := time.LoadLocation(cfg.Recommend.Timezone); err != nil {
		return fmt.Errorf("recommend.timezone is invalid: %w", err)
	}

	// validate LLM config, only when the assistant is enabled
	if cfg.LLM.Endpoint != "" {
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm.endpoint is set")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRecommendConfig returns recommendation engine configuration
func (c *Config) GetRecommendConfig() RecommendConfig {
	return c.Recommend
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// Location returns the timezone defining the quota calendar day, UTC if unset or invalid
func (r RecommendConfig) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetAuthKey returns the HMAC secret used to verify bearer tokens
func (c *Config) GetAuthKey() string {
	return c.Server.AuthKey
}

// GetImagesDir returns directory holding recipe images
func (c *Config) GetImagesDir() string {
	return c.Server.ImagesDir
}
