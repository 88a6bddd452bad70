// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/danielhkuo/idolboard/cache"
	"github.com/danielhkuo/idolboard/carousel"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/upstream"
)

// DefaultSQLiteURL keeps the cache in memory, shared by the pool
const DefaultSQLiteURL = "file::memory:?cache=shared"

type Config struct {
	Port          int
	APIBaseURL    string
	CacheType     string
	CacheURL      string
	CacheTTL      time.Duration
	DefaultLocale locale.Locale

	CarouselPageSize int
	CarouselInterval time.Duration
	CarouselFade     time.Duration
}

// Carousel returns the engine settings
func (c Config) Carousel() carousel.Config {
	return carousel.Config{
		PageSize: c.CarouselPageSize,
		Interval: c.CarouselInterval,
		Fade:     c.CarouselFade,
	}
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var defaultLocale string

	fs := flag.NewFlagSet("idolboard", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIBaseURL, "api", "", "Upstream API base URL")

	// Response cache
	fs.StringVar(&cfg.CacheType, "t", "", "Cache type (sqlite or postgres)")
	fs.StringVar(&cfg.CacheURL, "d", "", "Cache database URL")
	fs.DurationVar(&cfg.CacheTTL, "ttl", 0, "Cache revalidation window")

	fs.StringVar(&defaultLocale, "locale", "", "Locale when Accept-Language matches nothing (ko or en)")

	// Carousel
	fs.IntVar(&cfg.CarouselPageSize, "page-size", 0, "Carousel page size")
	fs.DurationVar(&cfg.CarouselInterval, "interval", 0, "Carousel rotation interval")
	fs.DurationVar(&cfg.CarouselFade, "fade", 0, "Carousel fade duration")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("FASTAPI_URL")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("upstream API URL required (use -api or FASTAPI_URL env)")
	}

	if cfg.CacheType == "" {
		cfg.CacheType = envString("CACHE_TYPE", cache.DriverSQLite)
	}
	switch cfg.CacheType {
	case cache.DriverSQLite, cache.DriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown cache type %q (use sqlite or postgres)", cfg.CacheType)
	}

	if cfg.CacheURL == "" {
		cfg.CacheURL = os.Getenv("CACHE_URL")
	}
	if cfg.CacheURL == "" {
		if cfg.CacheType == cache.DriverPostgres {
			return Config{}, errors.New("cache URL required for postgres (use -d or CACHE_URL env)")
		}
		cfg.CacheURL = DefaultSQLiteURL
	}

	if cfg.CacheTTL == 0 {
		ttl, err := envDuration("CACHE_TTL", upstream.DefaultTTL)
		if err != nil {
			return Config{}, err
		}
		cfg.CacheTTL = ttl
	}

	if defaultLocale == "" {
		defaultLocale = envString("DEFAULT_LOCALE", string(locale.Korean))
	}
	loc, err := locale.Parse(defaultLocale)
	if err != nil {
		return Config{}, fmt.Errorf("invalid default locale: %w", err)
	}
	cfg.DefaultLocale = loc

	if cfg.CarouselPageSize == 0 {
		if cfg.CarouselPageSize, err = envInt("CAROUSEL_PAGE_SIZE", carousel.DefaultPageSize); err != nil {
			return Config{}, err
		}
	}
	if cfg.CarouselInterval == 0 {
		if cfg.CarouselInterval, err = envDuration("CAROUSEL_INTERVAL", carousel.DefaultInterval); err != nil {
			return Config{}, err
		}
	}
	if cfg.CarouselFade == 0 {
		if cfg.CarouselFade, err = envDuration("CAROUSEL_FADE", carousel.DefaultFade); err != nil {
			return Config{}, err
		}
	}

	if cfg.CacheTTL < 0 || cfg.CarouselPageSize < 0 || cfg.CarouselInterval < 0 || cfg.CarouselFade < 0 {
		return Config{}, errors.New("sizes and durations must not be negative")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
