package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mateusmacedo/go-airline/internal/airline"
	airlineInfra "github.com/mateusmacedo/go-airline/internal/airline/infrastructure"
	"github.com/mateusmacedo/go-airline/internal/config"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	pkgInfra "github.com/mateusmacedo/go-airline/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

// LoggerFactory builds the application logger once the config is known.
type LoggerFactory func(cfg config.Config) (pkgApp.AppLogger, error)

type deps struct {
	stdout    io.Writer
	lookupEnv config.LookupEnv
	newLogger LoggerFactory
}

func Execute() {
	cmd := newRootCmd(deps{
		stdout:    os.Stdout,
		lookupEnv: os.LookupEnv,
		newLogger: stderrLogger,
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// stderrLogger keeps stdout for the booking transcript.
func stderrLogger(cfg config.Config) (pkgApp.AppLogger, error) {
	return zapAdapter.NewZapAppLogger(zapAdapter.Config{
		AppName:          cfg.AppName,
		Level:            cfg.LogLevel,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

type flagValues struct {
	logLevel        string
	transport       string
	httpAddr        string
	redisAddr       string
	kafkaBrokers    string
	consumerGroup   string
	shutdownTimeout time.Duration
}

// app is the state shared by the subcommands once PersistentPreRunE ran.
type app struct {
	deps   deps
	cfg    config.Config
	logger pkgApp.AppLogger
}

func newRootCmd(d deps) *cobra.Command {
	var (
		flags flagValues
		a     = &app{deps: d}
	)

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:          "airline",
		Short:        "Airline ticket booking",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, d.lookupEnv, flags)
			if err != nil {
				return err
			}

			logger, err := d.newLogger(cfg)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&flags.transport, "transport", string(defaults.Transport), "event transport (memory, channels, redis, kafka)")
	pf.StringVar(&flags.httpAddr, "http-addr", defaults.HTTPAddr, "HTTP listen address for serve")
	pf.StringVar(&flags.redisAddr, "redis-addr", defaults.RedisAddr, "redis address for the redis transport")
	pf.StringVar(&flags.kafkaBrokers, "kafka-brokers", strings.Join(defaults.KafkaBrokers, ","), "comma separated kafka brokers")
	pf.StringVar(&flags.consumerGroup, "consumer-group", defaults.ConsumerGroup, "consumer group for broker transports")
	pf.DurationVar(&flags.shutdownTimeout, "shutdown-timeout", defaults.ShutdownTimeout, "graceful shutdown timeout for serve")

	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}

// loadConfig layers explicitly set flags over the environment.
func loadConfig(cmd *cobra.Command, lookup config.LookupEnv, flags flagValues) (config.Config, error) {
	cfg, err := config.FromEnv(lookup)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("transport") {
		cfg.Transport = config.Transport(strings.ToLower(flags.transport))
	}
	if changed("http-addr") {
		cfg.HTTPAddr = flags.httpAddr
	}
	if changed("redis-addr") {
		cfg.RedisAddr = flags.redisAddr
	}
	if changed("kafka-brokers") {
		cfg.KafkaBrokers = config.SplitList(flags.kafkaBrokers)
	}
	if changed("consumer-group") {
		cfg.ConsumerGroup = flags.consumerGroup
	}
	if changed("shutdown-timeout") {
		cfg.ShutdownTimeout = flags.shutdownTimeout
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSlice wires the airline slice on the configured transport. The returned
// buses must be closed by the caller.
func (a *app) newSlice() (*airline.AirlineSlice, *buses, error) {
	b, err := newBuses(a.cfg, a.logger)
	if err != nil {
		return nil, nil, err
	}

	slice := airline.NewAirlineSlice(
		b.commandBus,
		b.queryBus,
		b.eventBus,
		airlineInfra.NewWriterConsole(a.deps.stdout, a.logger),
		pkgInfra.NewUUIDGenerator(),
		a.logger,
	)
	return slice, b, nil
}
