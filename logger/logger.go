package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a colored development logger in dev mode & a json production logger otherwise.
// An empty level keeps the default for the mode i.e. 'debug' for dev & 'info' for production
func NewLogger(devMode bool, level string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	if devMode {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		var zapLevel zapcore.Level
		if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
			log.Panic(err)
		}
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	logger, err := config.Build()
	if err != nil {
		log.Panic(err)
	}

	// flushes buffer, if any
	defer logger.Sync()

	return logger.Sugar()
}
