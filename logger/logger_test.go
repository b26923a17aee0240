package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:           "info",
				Encoding:        "console",
				StacktraceLevel: "error",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:           "info",
				Encoding:        "json",
				StacktraceLevel: "error",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level:           "debug",
				Encoding:        "console",
				StacktraceLevel: "error",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				Level:           "info",
				Encoding:        "console",
				StacktraceLevel: "error",
				DisableCaller:   true,
			},
			expectRx: `INFO\tinfo\n` +
				`WARN\twarn\n`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "test.log")
			tt.cfg.OutputPaths = []string{logPath}

			log, err := NewRootLogger(tt.cfg)
			require.NoError(t, err)

			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			require.NoError(t, log.Sync())

			content, err := os.ReadFile(logPath)
			require.NoError(t, err)
			require.Regexp(t, tt.expectRx, string(content))
		})
	}
}

func TestNewRootLogger_InvalidLevel(t *testing.T) {
	cfg := DefaultCfg
	cfg.Level = "everything"

	_, err := NewRootLogger(cfg)
	require.Error(t, err)
}

func TestNewRootLogger_InvalidStacktraceLevel(t *testing.T) {
	cfg := DefaultCfg
	cfg.StacktraceLevel = "sometimes"

	_, err := NewRootLogger(cfg)
	require.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	log, err := NewRootLogger(Config{
		Level:           "info",
		Encoding:        "console",
		StacktraceLevel: "panic",
		OutputPaths:     []string{filepath.Join(t.TempDir(), "test.log")},
	})
	require.NoError(t, err)

	require.NoError(t, SetGlobalLogger(log))
	require.ErrorIs(t, SetGlobalLogger(log), ErrGlobalLoggerAlreadyInitialized)

	named := NewLogger("viewport")
	require.NotNil(t, named)
}
