package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrCookieKeysRequired = errors.New("COOKIE_HASH_KEY and COOKIE_BLOCK_KEY must be set in production environment")

type Config struct {
	Port           string
	Host           string
	Env            string
	LogLevel       string
	LogFormat      string
	LogFile        string
	RateLimitRPS   float64
	RateLimitBurst int
	HistorySize    int
	CookieHashKey  string
	CookieBlockKey string
}

// Addr is the listen address built from Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("HISTORY_SIZE", 10)
	v.SetDefault("COOKIE_HASH_KEY", "")
	v.SetDefault("COOKIE_BLOCK_KEY", "")
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from v and checks it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:           v.GetString("PORT"),
		Host:           v.GetString("HOST"),
		Env:            v.GetString("ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		LogFile:        v.GetString("LOG_FILE"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		HistorySize:    v.GetInt("HISTORY_SIZE"),
		CookieHashKey:  v.GetString("COOKIE_HASH_KEY"),
		CookieBlockKey: v.GetString("COOKIE_BLOCK_KEY"),
	}

	if cfg.HistorySize <= 0 {
		return cfg, fmt.Errorf("HISTORY_SIZE must be positive, got %d", cfg.HistorySize)
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		return cfg, fmt.Errorf("rate limit must not be negative")
	}
	// A zero burst with a positive rate would reject every request.
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return cfg, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set, got %d", cfg.RateLimitBurst)
	}
	return cfg, nil
}

// CheckCookieKeys reports ErrCookieKeysRequired when running in production
// without fixed cookie keys. Only the HTTP server needs them.
func (c Config) CheckCookieKeys() error {
	if c.Production() && (c.CookieHashKey == "" || c.CookieBlockKey == "") {
		return ErrCookieKeysRequired
	}
	return nil
}
