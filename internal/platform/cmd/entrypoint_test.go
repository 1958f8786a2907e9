package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agendaFlags struct {
	Port        int    `env:"AGENDA_CMD_TEST_PORT" envDefault:"50051"`
	MetricsAddr string `env:"AGENDA_CMD_TEST_METRICS_ADDR"`
}

func parseAgendaFlags(t *testing.T, args []string) (agendaFlags, error) {
	t.Helper()
	var cfg agendaFlags
	if err := ParseConfig(&cfg); err != nil {
		return agendaFlags{}, err
	}
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "metrics address")
	err := ParseArgs(fs, args)
	return cfg, err
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("AGENDA_CMD_TEST_PORT", "6000")
	t.Setenv("AGENDA_CMD_TEST_METRICS_ADDR", "env:9100")

	cfg, err := parseAgendaFlags(t, []string{"-metrics-addr", "flag:9200"})
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "flag:9200", cfg.MetricsAddr)
}

func TestEnvDefaultsApplyWithoutFlags(t *testing.T) {
	cfg, err := parseAgendaFlags(t, nil)
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.Port)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestUnknownFlagIsAnError(t *testing.T) {
	_, err := parseAgendaFlags(t, []string{"-bogus"})
	assert.Error(t, err)
}

func TestParseInputsRequired(t *testing.T) {
	assert.Error(t, ParseArgs(nil, nil))
	assert.Error(t, ParseConfig[agendaFlags](nil))
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	noop := func(context.Context, *slog.Logger) error { return nil }
	assert.Error(t, RunWithTelemetry(context.Background(), " ", noop))
	assert.Error(t, RunWithTelemetry(context.Background(), ServiceAgenda, nil))
}

func TestRunWithTelemetryTagsLoggerWithService(t *testing.T) {
	t.Setenv("AGENDA_OTEL_ENABLED", "false")

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	err := RunWithTelemetryAndOptions(context.Background(), ServiceAgenda, RunOptions{Logger: base}, func(_ context.Context, logger *slog.Logger) error {
		logger.Info("started")
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "service=agenda")
	assert.Contains(t, buf.String(), "msg=started")
}

func TestRunWithTelemetryBuildsLoggerFromEnv(t *testing.T) {
	t.Setenv("AGENDA_OTEL_ENABLED", "false")
	t.Setenv("AGENDA_LOG_LEVEL", "error")

	called := false
	err := RunWithTelemetry(context.Background(), ServiceAgenda, func(_ context.Context, logger *slog.Logger) error {
		called = true
		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("AGENDA_OTEL_ENABLED", "false")

	runErr := errors.New("listen: address in use")
	err := RunWithTelemetryAndOptions(context.Background(), ServiceAgenda, RunOptions{Logger: slog.Default()}, func(context.Context, *slog.Logger) error {
		return runErr
	})
	assert.ErrorIs(t, err, runErr)
}
