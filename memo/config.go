package memo

import (
	"errors"
	"time"

	"github.com/adwski/bcount/internal/logger"
	"github.com/adwski/bcount/internal/logger/noop"
	zaplogger "github.com/adwski/bcount/internal/logger/zap"
	zerologger "github.com/adwski/bcount/internal/logger/zerolog"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

var (
	ErrInvalidTTL             = errors.New("ttl must be positive")
	ErrInvalidCleanupInterval = errors.New("cleanup interval must be positive")
)

type (
	Config struct {
		logger logger.Logger

		ttl             time.Duration
		cleanupInterval time.Duration
	}
	Option func(*Config) error
)

func (cfg *Config) setDefaults() {
	cfg.logger = logger.New(noop.NewLogger())
	cfg.ttl = defaultTTL
	cfg.cleanupInterval = defaultCleanupInterval
}

func WithLogger(log logger.Logger) Option {
	return func(cfg *Config) error {
		cfg.logger = log
		return nil
	}
}

func WithZeroLogger(log zerolog.Logger, level string) Option {
	return func(cfg *Config) error {
		lg, err := logger.NewWithLevel(zerologger.NewLogger(log), level)
		if err != nil {
			return err
		}
		cfg.logger = lg

		return nil
	}
}

func WithZapLogger(log *zap.Logger, level string) Option {
	return func(cfg *Config) error {
		lg, err := logger.NewWithLevel(zaplogger.NewLogger(log), level)
		if err != nil {
			return err
		}
		cfg.logger = lg

		return nil
	}
}

// WithTTL sets result entry lifetime in keyed caches. It has no effect on
// single-function memoizers.
func WithTTL(ttl time.Duration) Option {
	return func(cfg *Config) error {
		if ttl <= 0 {
			return ErrInvalidTTL
		}
		cfg.ttl = ttl

		return nil
	}
}

// WithCleanupInterval sets how often expired entries are purged from keyed
// caches.
func WithCleanupInterval(interval time.Duration) Option {
	return func(cfg *Config) error {
		if interval <= 0 {
			return ErrInvalidCleanupInterval
		}
		cfg.cleanupInterval = interval

		return nil
	}
}
