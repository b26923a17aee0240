package logger

import "go.uber.org/zap/zapcore"

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `default:"info" usage:"the minimum enabled logging level" json:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, logs are annotated.
	DisableCaller bool `default:"false" usage:"stops annotating logs with the calling function's file name and line number" json:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `default:"false" usage:"disables automatic stacktrace capturing" json:"disableStacktrace"`
	// StacktraceLevel is the level stacktraces are captured and above.
	// The default is "panic".
	StacktraceLevel string `default:"panic" usage:"the level stacktraces are captured and above" json:"stacktraceLevel"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `default:"console" usage:"the logger's encoding (options: \"json\", \"console\")" json:"encoding"`
	// EncodeTime sets the logger's timestamp encoding. Valid values are "nanos", "millis", "iso8601", "rfc3339" and "rfc3339nano".
	// The default is "rfc3339".
	EncodeTime string `default:"rfc3339" usage:"sets the logger's timestamp encoding. (options: \"nanos\", \"millis\", \"iso8601\", \"rfc3339\" and \"rfc3339nano\")" json:"timeEncoder"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stdout"].
	OutputPaths []string `default:"stdout" usage:"a list of URLs, file paths or stdout/stderr to write logging output to" json:"outputPaths"`
}

// DefaultCfg holds the default settings of a root logger instance.
var DefaultCfg = Config{
	Level:             "info",
	DisableCaller:     false,
	DisableStacktrace: false,
	StacktraceLevel:   "panic",
	Encoding:          "console",
	EncodeTime:        "rfc3339",
	OutputPaths:       []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}

// timeEncoders maps the config value to the corresponding zapcore encoder.
var timeEncoders = map[string]zapcore.TimeEncoder{
	"nanos":       zapcore.EpochNanosTimeEncoder,
	"millis":      zapcore.EpochMillisTimeEncoder,
	"iso8601":     zapcore.ISO8601TimeEncoder,
	"rfc3339":     zapcore.RFC3339TimeEncoder,
	"rfc3339nano": zapcore.RFC3339NanoTimeEncoder,
}
