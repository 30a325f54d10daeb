package base

import (
	"bytes"
	"context"
	"errors"
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(buffer *bytes.Buffer, debug bool) *Logger {
	logger := NewLogger()
	logger.InitWithWriter(buffer, debug, false)
	return logger
}

func TestLoggerLevels(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := newTestLogger(buffer, false)

	logger.Debug("hidden debug")
	logger.InfoF("flight %s scheduled", "NY123")
	logger.Warn("pilot conflict", "pilot_id", 3)
	logger.FatalF("database unreachable: %v", errors.New("boom"))

	output := buffer.String()
	assert.NotContains(t, output, "hidden debug")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "flight NY123 scheduled")
	assert.Contains(t, output, "pilot_id=3")
	assert.Contains(t, output, "level=FATAL")

	buffer.Reset()
	logger = newTestLogger(buffer, true)
	logger.DebugF("visible %d", 1)
	assert.Contains(t, buffer.String(), "visible 1")
}

func TestLoggerShutdownClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fms.log")
	previous := *global.LogFilePath
	*global.LogFilePath = path
	defer func() { *global.LogFilePath = previous }()

	logger := NewLogger()
	logger.Init(false)
	logger.Info("written to file")
	require.NoError(t, logger.ShutdownCallback().Invoke(context.Background()))
	require.NoError(t, logger.ShutdownCallback().Invoke(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestCleanerRunsInReverseOrder(t *testing.T) {
	buffer := &bytes.Buffer{}
	cleaner := NewCleaner(newTestLogger(buffer, true))
	exitCode := -1
	cleaner.exit = func(code int) { exitCode = code }

	var order []string
	for _, name := range []string{"database", "console"} {
		cleaner.Add(global.CallableFunc(func(_ context.Context) error {
			order = append(order, name)
			return nil
		}))
	}
	cleaner.Clean()
	cleaner.Clean()

	assert.Equal(t, []string{"console", "database"}, order)
	assert.Equal(t, 0, exitCode)

	cleaner.Add(global.CallableFunc(func(_ context.Context) error { return nil }))
	assert.Len(t, cleaner.callbacks, 2)
}

func TestCleanerReportsFailure(t *testing.T) {
	cleaner := NewCleaner(newTestLogger(&bytes.Buffer{}, false))
	exitCode := -1
	cleaner.exit = func(code int) { exitCode = code }
	cleaner.Add(global.CallableFunc(func(_ context.Context) error { return errors.New("close failed") }))
	cleaner.Clean()
	assert.Equal(t, 1, exitCode)
}

func TestManagerCreatesDefaultConfig(t *testing.T) {
	logger := newTestLogger(&bytes.Buffer{}, false)
	for _, name := range []string{"config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			_, result := readConfig(path, logger)
			require.True(t, result.IsFail())
			assert.Contains(t, result.Error().Error(), "has been created")

			cfg, result := readConfig(path, logger)
			require.False(t, result.IsFail(), "default config should validate: %v", result.Error())
			assert.Equal(t, config.SQLite, cfg.Database.DBType)
			assert.Equal(t, config.ReconcileOnStartup, cfg.Schedule.ReconcileMode)
			assert.Equal(t, 8, len(cfg.Schedule.AirlineCodes))
		})
	}
}

func TestManagerReadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fms.yml")
	content := strings.Join([]string{
		"config_version: 1.0.0",
		"database:",
		"  type: sqlite",
		"  database: fms.db",
		"  connect_idle_timeout: 1h",
		"  query_timeout: 3s",
		"  server_max_connections: 4",
		"schedule:",
		"  airline_codes: [\"ab\"]",
		"  flight_number_attempts: 10",
		"  max_duration: 12h",
		"  strict_overlap: true",
		"  cancelled_blocks_pilot: true",
		"  reconcile_mode: lazy",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), global.DefaultFilePermissions))

	manager := NewManagerWithPath(newTestLogger(&bytes.Buffer{}, false), path)
	cfg := manager.Config()
	assert.Equal(t, config.PureSQLite, cfg.Database.DBType)
	assert.Equal(t, []string{"AB"}, cfg.Schedule.AirlineCodes)
	assert.True(t, cfg.Schedule.StrictOverlap)
	assert.True(t, cfg.Schedule.CancelledBlocksPilot)
	assert.Equal(t, config.ReconcileLazy, cfg.Schedule.ReconcileMode)
	assert.Equal(t, "12h0m0s", cfg.Schedule.MaxFlightDuration.String())
	require.NotNil(t, cfg.Console)
	assert.Equal(t, 20, cfg.Console.PageSize)
	require.NoError(t, manager.SaveConfig())
}

func TestManagerRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config_version":"1.0.0","database":{"type":"oracle"}}`), global.DefaultFilePermissions))
	_, result := readConfig(path, newTestLogger(&bytes.Buffer{}, false))
	require.True(t, result.IsFail())
	assert.Contains(t, result.Error().Error(), "oracle")

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), global.DefaultFilePermissions))
	_, result = readConfig(path, newTestLogger(&bytes.Buffer{}, false))
	require.True(t, result.IsFail())
	assert.Contains(t, result.Error().Error(), "valid JSON")
}

func TestStaticManager(t *testing.T) {
	cfg := config.DefaultConfig()
	manager := NewStaticManager(newTestLogger(&bytes.Buffer{}, false), cfg)
	assert.Same(t, cfg, manager.Config())
	assert.Error(t, manager.SaveConfig())
}
