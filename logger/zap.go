package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZap adapts a zap logger; the sugared logger already has
// the printf-style methods Logger needs.
func NewZap(l *zap.Logger) Logger {
	if l == nil {
		return Noop{}
	}
	return l.Sugar()
}

// NewZapFor builds a zap logger for the given environment:
// JSON production config for "production", colored development config otherwise.
func NewZapFor(environment string) (Logger, error) {
	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return NewZap(l), nil
}
