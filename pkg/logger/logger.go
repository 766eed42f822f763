package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"club-portal/backend/config"
)

const serviceName = "club-portal"

// NewLogger 根据配置构建日志器
// Error 及以上级别写入 stderr，其余写入 stdout，便于容器日志按流区分告警
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return build(cfg, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
}

func build(cfg *config.LogConfig, out, errOut zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	errLevel := zapcore.ErrorLevel
	if level > errLevel {
		errLevel = level
	}
	normal := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.ErrorLevel
	})
	severe := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= errLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, out, normal),
		zapcore.NewCore(encoder, errOut, severe),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", "json":
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "time"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec), nil
	case "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		return zapcore.NewConsoleEncoder(ec), nil
	default:
		return nil, fmt.Errorf("不支持的日志格式 %q（可选 json、console）", format)
	}
}
