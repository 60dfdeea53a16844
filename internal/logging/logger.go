// Package logging builds the zap logger shared by the HTTP server and CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type Options struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output io.Writer
	// Logstash is enabled when Addr is set.
	Logstash LogstashConfig
}

// New returns the logger and a cleanup func that flushes it and closes the
// Logstash connection, if any.
func New(opts Options) (*zap.Logger, func(), error) {
	level := ParseLevel(opts.Level)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(opts.Format), zapcore.AddSync(out), level),
	}

	var sink *LogstashSink
	if strings.TrimSpace(opts.Logstash.Addr) != "" {
		var err error
		sink, err = NewLogstashSink(opts.Logstash)
		if err != nil {
			return nil, nil, err
		}
		// Logstash always receives JSON regardless of the console format.
		cores = append(cores, zapcore.NewCore(newEncoder("json"), sink, level))
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if sink != nil {
		shipLog := logger.Named("logstash")
		sink.OnRecover(func(dropped uint64) {
			shipLog.Warn("logstash connection restored", zap.Uint64("dropped_entries", dropped))
		})
	}
	cleanup := func() {
		_ = logger.Sync()
		if sink != nil {
			_ = sink.Close()
		}
	}
	return logger, cleanup, nil
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if strings.EqualFold(format, "console") {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}
