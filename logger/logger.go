// Package logger holds the process-wide zap logger used by every pojomatic
// package. It is configured from the environment on first use and can be
// replaced by the host application with SetLogger.
package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/natefinch/lumberjack"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const loggerName = "pojomatic"

// Config is the environment-driven logger configuration.
//
//	POJOMATIC_LOG_LEVEL  zap level name, info by default
//	POJOMATIC_LOG_FILE   rotate logs into this file instead of stderr
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// LoadConfig reads Config from the environment.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("pojomatic")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 10)
	v.SetDefault("log_max_backups", 3)
	return Config{
		Level:      v.GetString("log_level"),
		File:       v.GetString("log_file"),
		MaxSizeMB:  v.GetInt("log_max_size"),
		MaxBackups: v.GetInt("log_max_backups"),
	}
}

func (c Config) level() zapcore.Level {
	if c.Level == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func (c Config) writer() io.Writer {
	if c.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    max(1, c.MaxSizeMB),
		MaxBackups: max(0, c.MaxBackups),
	}
}

// New builds a console logger for cfg.
func New(cfg Config) *zap.Logger {
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			TimeKey:        "ts",
			MessageKey:     "msg",
			LevelKey:       "level",
			NameKey:        "logger",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}), zapcore.AddSync(cfg.writer()), cfg.level())).Named(loggerName)
}

var (
	current  atomic.Pointer[zap.Logger]
	initOnce sync.Once
)

// L returns the current logger, building it from the environment on first call.
func L() *zap.Logger {
	initOnce.Do(func() {
		if current.Load() == nil {
			current.CompareAndSwap(nil, New(LoadConfig()))
		}
	})
	return current.Load()
}

// SetLogger replaces the package logger. A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	initOnce.Do(func() {})
	current.Store(l.Named(loggerName))
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}
