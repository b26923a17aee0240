package logger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inviewkit/inview.go/syncutils"
)

// Logger instances are used to log messages; they are named and support structured, leveled logging.
type Logger = zap.SugaredLogger

// ErrGlobalLoggerAlreadyInitialized is returned when the global logger was already initialized.
var ErrGlobalLoggerAlreadyInitialized = errors.New("global logger already initialized")

var (
	root              *Logger
	rootInitialized   bool
	globalLoggerMutex syncutils.Mutex
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	stacktraceLevel, err := zapcore.ParseLevel(cfg.StacktraceLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid stacktrace level: %w", err)
	}

	encoderConfig := defaultEncoderConfig
	if timeEncoder, exists := timeEncoders[cfg.EncodeTime]; exists {
		encoderConfig.EncodeTime = timeEncoder
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build(zap.AddStacktrace(stacktraceLevel))
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// SetGlobalLogger sets the provided logger as the global logger. It can only be called once;
// subsequent calls return ErrGlobalLoggerAlreadyInitialized.
func SetGlobalLogger(logger *Logger) error {
	globalLoggerMutex.Lock()
	defer globalLoggerMutex.Unlock()

	if rootInitialized {
		return ErrGlobalLoggerAlreadyInitialized
	}

	root = logger
	rootInitialized = true

	return nil
}

// NewLogger returns a new named child of the global root logger.
func NewLogger(name string) *Logger {
	globalLoggerMutex.Lock()
	defer globalLoggerMutex.Unlock()

	if !rootInitialized {
		panic("global logger not initialized")
	}

	return root.Named(name)
}

// NewExampleLogger returns a new logger that writes to stdout with debug level, intended for
// examples and tests.
func NewExampleLogger(name string) *Logger {
	return zap.NewExample().Sugar().Named(name)
}

// NewNopLogger returns a new logger that discards everything.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}
