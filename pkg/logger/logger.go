package logger

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	atom = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	if err := SetFormat("json"); err != nil {
		panic(err)
	}
}

// SetFormat rebuilds the global logger with the given encoding ("json" or "console").
// The current level is kept.
func SetFormat(format string) error {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case "json", "":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	case "console":
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		return errors.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atom)
	log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

func SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return errors.Wrapf(err, "unknown log level %q", level)
	}
	atom.SetLevel(l)
	return nil
}

func SetDebug() {
	atom.SetLevel(zapcore.DebugLevel)
}

func IsDebug() bool {
	return atom.Enabled(zapcore.DebugLevel)
}

// Set replaces the global logger. Used by tests to observe output.
func Set(l *zap.Logger) {
	log = l.WithOptions(zap.AddCallerSkip(1))
}

func Error(err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	log.Error(err.Error(), fields...)
}

func Errorf(template string, args ...interface{}) {
	log.Error(fmt.Sprintf(template, args...))
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Infof(template string, args ...interface{}) {
	log.Info(fmt.Sprintf(template, args...))
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	log.Debug(fmt.Sprintf(template, args...))
}

func Warnf(template string, args ...interface{}) {
	log.Warn(fmt.Sprintf(template, args...))
}

func Sync() {
	_ = log.Sync()
}
