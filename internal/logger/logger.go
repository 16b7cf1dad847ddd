package logger

import (
	"log"

	"github.com/credcat-ai/credcat/internal/env"
	"github.com/sakirsensoy/genv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func getConfig() zap.Config {
	var config zap.Config

	if env.IsLocal() {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(
		genv.Key("LOG_LEVEL").Default("info").String(),
	)
	if err == nil {
		config.Level = level
	}

	return config
}

// Logger factory function. Returns a new instance of zap sugared logger.
// An explicit level, when given, overrides LOG_LEVEL.
func Make(level ...zap.AtomicLevel) *zap.SugaredLogger {
	c := getConfig()

	if len(level) > 0 {
		c.Level = level[0]
	}

	l, err := c.Build()

	if err != nil {
		log.Printf("Got error during logger initialization: %s", err)
		panic(err)
	}

	return l.Sugar()
}

// ForModule returns a logger named after one of the library's packages.
func ForModule(module string) *zap.SugaredLogger {
	return Make().Named("credcat").Named(module)
}
