package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-airline/internal/config"
	pkgApp "github.com/mateusmacedo/go-airline/pkg/application"
	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

const transcript = "Booking Economy Class Ticket\n" +
	"Legacy system reserved an economy ticket.\n" +
	"Booking Business Class Ticket\n" +
	"Booking Economy Class Ticket\n" +
	"Legacy system reserved an economy ticket.\n"

func testDeps(out *bytes.Buffer, env map[string]string) deps {
	return deps{
		stdout: out,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		newLogger: func(config.Config) (pkgApp.AppLogger, error) {
			return zapAdapter.NewNopAppLogger(), nil
		},
	}
}

func observedDeps(out *bytes.Buffer, env map[string]string) (deps, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := testDeps(out, env)
	d.newLogger = func(config.Config) (pkgApp.AppLogger, error) {
		return zapAdapter.NewFromZap(zap.New(core)), nil
	}
	return d, logs
}

func run(t *testing.T, d deps, args ...string) error {
	t.Helper()
	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRootRunsDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(t, testDeps(&out, nil)))
	assert.Equal(t, transcript, out.String())
}

func TestDemoSubcommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(t, testDeps(&out, nil), "demo"))
	assert.Equal(t, transcript, out.String())
}

func TestDemoOverChannelsTransport(t *testing.T) {
	var out bytes.Buffer
	d, logs := observedDeps(&out, nil)

	require.NoError(t, run(t, d, "demo", "--transport", "channels"))

	assert.Equal(t, transcript, out.String())
	assert.Eventually(t, func() bool {
		return logs.FilterMessage("ticket booked event received").Len() >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	var out bytes.Buffer
	d, logs := observedDeps(&out, map[string]string{"AIRLINE_TRANSPORT": "pigeon"})

	require.NoError(t, run(t, d, "--transport", "memory"))

	assert.Equal(t, transcript, out.String())
	entries := logs.FilterMessage("running demo").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "memory", entries[0].ContextMap()["transport"])
}

func TestInvalidConfigurationFails(t *testing.T) {
	cases := map[string]struct {
		env  map[string]string
		args []string
		want error
	}{
		"transport from env":  {env: map[string]string{"AIRLINE_TRANSPORT": "pigeon"}, want: config.ErrInvalidTransport},
		"transport from flag": {args: []string{"--transport", "pigeon"}, want: config.ErrInvalidTransport},
		"log level":           {args: []string{"--log-level", "loud"}, want: config.ErrInvalidLogLevel},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(t, testDeps(&out, c.env), c.args...)
			assert.ErrorIs(t, err, c.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestUnknownSubcommandFails(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(t, testDeps(&out, nil), "fly"))
	assert.Empty(t, out.String())
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	a := &app{deps: testDeps(&out, nil), cfg: cfg, logger: zapAdapter.NewNopAppLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not stop")
	}
	assert.Empty(t, out.String())
}

func TestNewBusesRejectsUnknownTransport(t *testing.T) {
	cfg := config.Default()
	cfg.Transport = "pigeon"

	_, err := newBuses(cfg, zapAdapter.NewNopAppLogger())
	assert.ErrorIs(t, err, config.ErrInvalidTransport)
}

func TestNewBusesKafkaWithoutBrokers(t *testing.T) {
	cfg := config.Default()
	cfg.Transport = config.TransportKafka
	cfg.KafkaBrokers = nil

	_, err := newBuses(cfg, zapAdapter.NewNopAppLogger())
	assert.Error(t, err)
}
