package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.Logger
	sugared *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	)

	logger = zap.New(core, zap.AddCallerSkip(1))
	sugared = logger.Sugar()
}

// Info logs a message at InfoLevel with optional structured fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infof formats the message and logs it at InfoLevel.
func Infof(format string, args ...interface{}) {
	sugared.Infof(format, args...)
}

// Warn logs a message at WarnLevel with optional structured fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Warnf formats the message and logs it at WarnLevel.
func Warnf(format string, args ...interface{}) {
	sugared.Warnf(format, args...)
}

// Error logs a message at ErrorLevel with optional structured fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorf formats the message and logs it at ErrorLevel.
func Errorf(format string, args ...interface{}) {
	sugared.Errorf(format, args...)
}

// Fatalf formats the message, logs it at FatalLevel and exits.
func Fatalf(format string, args ...interface{}) {
	sugared.Fatalf(format, args...)
}
