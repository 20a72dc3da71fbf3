package logger_test

import (
	"context"
	"log/slog"
	"testing"
	"uuid62/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// setup should not panic
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			// get a logger from context to verify setup worked
			ctx := context.Background()
			l := logger.Get(ctx)
			require.NotNil(t, l)
		})
	}
}

func TestGet(t *testing.T) {
	// setup logger
	logger.Setup(logger.DevelopmentEnvironment)

	// test with empty context
	ctx := context.Background()
	l := logger.Get(ctx)
	require.NotNil(t, l, "Should return default logger when context has no logger")

	// test with logger in context
	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	l = logger.Get(ctxWithLogger)
	require.Equal(t, customLogger, l, "Should return logger from context")
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	customLogger, _ := zap.NewDevelopment()

	// add logger to context
	ctxWithLogger := logger.WithLogger(ctx, customLogger)

	// verify logger is in context
	l := logger.Get(ctxWithLogger)
	require.Equal(t, customLogger, l, "Logger in context should match the one we added")
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(t)

	ctx = logger.WithFields(ctx,
		zap.String("key1", "value1"),
		zap.Int("key2", 42),
	)
	logger.Info(ctx, "with fields")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "value1", fields["key1"])
	require.EqualValues(t, 42, fields["key2"])
}

func TestUUIDField(t *testing.T) {
	ctx, logs := observed(t)

	id := uuid.MustParse("86559453-e224-4921-baee-6fb5c0252e85")
	logger.Info(ctx, "entry stored", logger.UUID("id", id))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "45u546Dsoz0Tm4GxDxj9qZ", logs.All()[0].ContextMap()["id"])
}

func TestSlogBridge(t *testing.T) {
	ctx, logs := observed(t)

	logger.Slog(ctx).Warn("from slog", slog.String("component", "storage"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
	require.Equal(t, "from slog", entry.Message)
	require.Equal(t, "storage", entry.ContextMap()["component"])
}

func TestSetup_InstallsSlogDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	require.NotPanics(t, func() {
		slog.Info("routed through zap")
	})
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug),
		"development logger should accept debug records through slog")
}

func TestIsDebug(t *testing.T) {
	// setup development logger (which should be at debug level)
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	// test debug level detection
	require.True(t, logger.IsDebug(ctx), "Development logger should be at debug level")

	// create a custom logger at info level
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()

	// add to context and test
	ctxWithInfoLogger := logger.WithLogger(ctx, infoLogger)
	require.False(t, logger.IsDebug(ctxWithInfoLogger), "Info level logger should not be at debug level")
}

func TestLoggingFunctions(t *testing.T) {
	// setup
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	// test that logging functions don't panic
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Info(ctx, "info message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
