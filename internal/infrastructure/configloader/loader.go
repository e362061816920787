package configloader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/config.yml"

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                   string   `yaml:"port"`
	ReadTimeoutSeconds     int      `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds    int      `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds     int      `yaml:"idleTimeoutSeconds"`
	ShutdownTimeoutSeconds int      `yaml:"shutdownTimeoutSeconds"`
	CORSAllowedOrigins     []string `yaml:"corsAllowedOrigins"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error; case-insensitive, stored lowercase
}

// EnvConfig lists the dotenv files read before the process environment.
type EnvConfig struct {
	Files []string `yaml:"files"`
}

// ProxyConfig holds the Reservoir proxy settings.
type ProxyConfig struct {
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	Burst                int     `yaml:"burst"`
}

// CoinGeckoConfig holds CoinGecko API specific configurations.
type CoinGeckoConfig struct {
	APIKey               string `yaml:"apiKey"`
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	VsCurrency           string `yaml:"vsCurrency"`
	CacheTTLMinutes      int    `yaml:"cacheTTLMinutes"`
	CleanupIntervalMins  int    `yaml:"cleanupIntervalMinutes"`
}

// VerifierConfig holds the RPC verifier settings.
type VerifierConfig struct {
	MaxConcurrentRoutines int   `yaml:"maxConcurrentRoutines"`
	RPCCallTimeoutSeconds int   `yaml:"rpcCallTimeoutSeconds"`
	Attempts              uint  `yaml:"attempts"`
	RetryDelayMillis      int64 `yaml:"retryDelayMillis"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Env       EnvConfig       `yaml:"env"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	CoinGecko CoinGeckoConfig `yaml:"coinGecko"`
	Verifier  VerifierConfig  `yaml:"verifier"`
	Swagger   SwaggerConfig   `yaml:"swagger"`
}

// Load reads the YAML configuration file from the given path, unmarshals it
// and applies defaults for everything left unset.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns the configuration used when every field is left unset.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 30
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 5
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if len(cfg.Env.Files) == 0 {
		cfg.Env.Files = []string{".env.local", ".env"}
	}

	if cfg.Proxy.RequestTimeoutMillis <= 0 {
		cfg.Proxy.RequestTimeoutMillis = 20000
	}
	if cfg.Proxy.RateLimitPerSecond <= 0 {
		cfg.Proxy.RateLimitPerSecond = 10
		logrus.Infof("Proxy.RateLimitPerSecond not set, defaulting to %.0f", cfg.Proxy.RateLimitPerSecond)
	}
	if cfg.Proxy.Burst <= 0 {
		cfg.Proxy.Burst = 20
	}

	if cfg.CoinGecko.BaseURL == "" {
		cfg.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
		logrus.Infof("CoinGecko.BaseURL not set, defaulting to %s", cfg.CoinGecko.BaseURL)
	}
	if cfg.CoinGecko.RequestTimeoutMillis <= 0 {
		cfg.CoinGecko.RequestTimeoutMillis = 10000
	}
	if cfg.CoinGecko.VsCurrency == "" {
		cfg.CoinGecko.VsCurrency = "usd"
	}
	if cfg.CoinGecko.CacheTTLMinutes <= 0 {
		cfg.CoinGecko.CacheTTLMinutes = 5
	}
	if cfg.CoinGecko.CleanupIntervalMins <= 0 {
		cfg.CoinGecko.CleanupIntervalMins = 10
	}

	if cfg.Verifier.MaxConcurrentRoutines <= 0 {
		cfg.Verifier.MaxConcurrentRoutines = 4
	}
	if cfg.Verifier.RPCCallTimeoutSeconds <= 0 {
		cfg.Verifier.RPCCallTimeoutSeconds = 10
	}
	if cfg.Verifier.Attempts == 0 {
		cfg.Verifier.Attempts = 3
	}
	if cfg.Verifier.RetryDelayMillis <= 0 {
		cfg.Verifier.RetryDelayMillis = 500
	}

	if cfg.Swagger.Path == "" {
		cfg.Swagger.Path = "./docs/swagger.yaml"
	}
}

func validate(cfg *Config) error {
	level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if level == "warning" {
		level = "warn"
	}
	switch level {
	case "debug", "info", "warn", "error":
		cfg.Logging.Level = level
	default:
		return fmt.Errorf("unknown logging level %q", cfg.Logging.Level)
	}
	if cfg.CoinGecko.APIKey == "" {
		logrus.Warn("CoinGecko.APIKey is empty, using the public rate-limited API")
	}
	return nil
}

// ReadTimeout returns the server read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the keep-alive idle timeout.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// ShutdownTimeout bounds graceful shutdown.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request upstream timeout.
func (c ProxyConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}

// RequestTimeout returns the per-request upstream timeout.
func (c CoinGeckoConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}

// CacheTTL is how long a fetched price stays fresh.
func (c CoinGeckoConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// CleanupInterval is how often expired prices are purged.
func (c CoinGeckoConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMins) * time.Minute
}

// RPCCallTimeout bounds one dial plus eth_chainId round trip.
func (c VerifierConfig) RPCCallTimeout() time.Duration {
	return time.Duration(c.RPCCallTimeoutSeconds) * time.Second
}

// RetryDelay is the pause between attempts against one endpoint.
func (c VerifierConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMillis) * time.Millisecond
}
