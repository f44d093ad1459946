package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level string
	// Encoding is "json" or "console". Anything else falls back to json.
	Encoding string
}

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger writes to fileSyncer and stderr. A nil fileSyncer logs to stderr only.
func NewLogger(cfg Config, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionConfig()
	encodeConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encodeConfig.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encodeConfig.EncoderConfig)
	}

	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if fileSyncer != nil {
		sink = zapcore.NewMultiWriteSyncer(fileSyncer, sink)
	}

	core := zapcore.NewCore(encoder, sink, parseLevel(cfg.Level))
	return zap.New(core, zap.AddCaller())
}
