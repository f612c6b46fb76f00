package di

import (
	"context"
	"time"

	"applicant_review_system/configs"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	var logger *zap.Logger
	if config.URL == "" {
		logger = zap.Must(zapConfig.Build())
	} else {
		lokiConfig := zaploki.Config{
			Url:          config.URL,
			BatchMaxSize: 1000,
			BatchMaxWait: 10 * time.Second,
			Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
		}
		logger = zap.Must(zaploki.New(context.Background(), lokiConfig).WithCreateLogger(zapConfig))
	}

	if config.File != "" {
		fileCore := newFileCore(config.File, zapConfig.Level)
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	return logger.Sugar()
}

func newFileCore(path string, level zapcore.LevelEnabler) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxAge:     30,
		MaxBackups: 5,
		Compress:   true,
	}

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		level,
	)
}
