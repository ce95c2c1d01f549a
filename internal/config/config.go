package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// defaultUserAgents is the pool of browser User-Agent strings rotated across
// catalog requests. Kept to current desktop releases so the served markup
// matches one of the two result layouts the parsers understand.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:147.0) Gecko/20100101 Firefox/147.0",
}

type Config struct {
	CSFDBaseURL   string   `mapstructure:"csfd_base_url"`
	IMDBBaseURL   string   `mapstructure:"imdb_base_url"`
	ClientTimeout string   `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgents    []string `mapstructure:"user_agents"`    // Overrides the built-in pool when non-empty
	LogLevel      string   `mapstructure:"log_level"`
	SentryDSN     string   `mapstructure:"sentry_dsn"`

	TMDB struct {
		BaseURL      string `mapstructure:"base_url"`
		APIKey       string `mapstructure:"api_key"`
		ImageBaseURL string `mapstructure:"image_base_url"`
	} `mapstructure:"tmdb"`

	Search struct {
		DelayMin      string `mapstructure:"delay_min"`       // Lower bound of the randomized pre-request delay
		DelayMax      string `mapstructure:"delay_max"`       // Upper bound of the randomized pre-request delay
		SoftBlockWait string `mapstructure:"soft_block_wait"` // Wait before the single retry after a 202 soft block
	} `mapstructure:"search"`

	Resolver struct {
		YearToleranceValidate   int `mapstructure:"year_tolerance_validate"`   // Candidate acceptance, regional release offsets
		YearTolerancePrioritize int `mapstructure:"year_tolerance_prioritize"` // Secondary-candidate partitioning
	} `mapstructure:"resolver"`

	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`

	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"metrics"`

	Cache struct {
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`     // Maximum number of entries in the LRU cache
		TTL      string `mapstructure:"ttl"`      // Go duration string like "1h", "24h", etc.
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	// Parse and set log level from config
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	// Update logger with the configured level
	logger = logger.Level(level)

	globalConfig = config
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	// Defaults. Integer knobs go through viper so that an explicit zero in the
	// config file is preserved rather than re-defaulted after unmarshalling.
	viper.SetDefault("csfd_base_url", "https://www.csfd.cz")
	viper.SetDefault("imdb_base_url", "https://www.imdb.com")
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/original")
	viper.SetDefault("search.delay_min", "1s")
	viper.SetDefault("search.delay_max", "3s")
	viper.SetDefault("search.soft_block_wait", "2s")
	viper.SetDefault("resolver.year_tolerance_validate", 1)
	viper.SetDefault("resolver.year_tolerance_prioritize", 2)
	viper.SetDefault("store.path", "kinograb.db")
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("cache.provider", "memory")
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", "24h")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if len(config.UserAgents) == 0 {
		config.UserAgents = defaultUserAgents
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

// GetUserAgents returns the configured User-Agent pool, falling back to the
// built-in pool when no override is set.
func GetUserAgents() []string {
	if globalConfig != nil && len(globalConfig.UserAgents) > 0 {
		return globalConfig.UserAgents
	}

	return defaultUserAgents
}

func GetLogger() zerolog.Logger {
	return logger
}

// DurationOr parses a duration value from the configuration, falling back
// when the value is empty or malformed.
func DurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Msg("Invalid duration in configuration, using default")
		return fallback
	}
	return d
}
