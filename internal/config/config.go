package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Transport string

const (
	TransportMemory   Transport = "memory"
	TransportChannels Transport = "channels"
	TransportRedis    Transport = "redis"
	TransportKafka    Transport = "kafka"
)

var (
	ErrInvalidTransport = errors.New("invalid transport")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrMissingValue     = errors.New("missing value")
)

const envPrefix = "AIRLINE_"

type Config struct {
	AppName         string
	LogLevel        string
	Transport       Transport
	HTTPAddr        string
	RedisAddr       string
	KafkaBrokers    []string
	ConsumerGroup   string
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		AppName:         "airline",
		LogLevel:        "info",
		Transport:       TransportMemory,
		HTTPAddr:        ":8080",
		RedisAddr:       "localhost:6379",
		KafkaBrokers:    []string{"localhost:9092"},
		ConsumerGroup:   "airline",
		ShutdownTimeout: 5 * time.Second,
	}
}

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// FromEnv applies AIRLINE_* variables on top of Default.
func FromEnv(lookup LookupEnv) (Config, error) {
	cfg := Default()

	if v, ok := lookup(envPrefix + "APP_NAME"); ok {
		cfg.AppName = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "TRANSPORT"); ok {
		cfg.Transport = Transport(strings.ToLower(v))
	}
	if v, ok := lookup(envPrefix + "HTTP_ADDR"); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup(envPrefix + "REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup(envPrefix + "KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = SplitList(v)
	}
	if v, ok := lookup(envPrefix + "CONSUMER_GROUP"); ok {
		cfg.ConsumerGroup = v
	}
	if v, ok := lookup(envPrefix + "SHUTDOWN_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
		}
		cfg.ShutdownTimeout = timeout
	}

	return cfg, nil
}

// SplitList splits a comma separated value and drops empty items.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (c Config) Validate() error {
	var errs error

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	switch c.Transport {
	case TransportMemory, TransportChannels:
	case TransportRedis:
		if c.RedisAddr == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: redis address", ErrMissingValue))
		}
		if c.ConsumerGroup == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: consumer group", ErrMissingValue))
		}
	case TransportKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: kafka brokers", ErrMissingValue))
		}
		if c.ConsumerGroup == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: consumer group", ErrMissingValue))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalidTransport, c.Transport))
	}

	if c.ShutdownTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: shutdown timeout must be positive", ErrMissingValue))
	}

	return errs
}
