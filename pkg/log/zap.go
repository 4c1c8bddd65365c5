package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level.SetLevel(parsed)
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	Replace(zap.New(core,
		zap.AddCaller(),
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCallerSkip(1)))
}

// Replace swaps the package logger, e.g. for zap.NewNop() in tests.
func Replace(l *zap.Logger) {
	logger = l
	Logger = l.Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel with typed fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs a message at InfoLevel with loosely typed key-value pairs.
func Infow(message string, keysAndValues ...any) {
	Logger.Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...any) {
	Logger.Infof(message, args...)
}

// Debug logs a message at DebugLevel with typed fields.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

func Debugf(message string, args ...any) {
	Logger.Debugf(message, args...)
}

// Warn logs a message at WarnLevel with typed fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

func Warnf(message string, args ...any) {
	Logger.Warnf(message, args...)
}

// Error logs a message at ErrorLevel with typed fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

func Errorf(message string, args ...any) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel and exits the process.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}
