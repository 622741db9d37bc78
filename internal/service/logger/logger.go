package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger = zap.NewNop()
	DBLogger     *zap.Logger = zap.NewNop()
)

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// InitLoggers replaces the no-op loggers with file-backed ones.
func InitLoggers(accessPath, dbPath string) error {
	access, err := newFileLogger(accessPath)
	if err != nil {
		return err
	}

	db, err := newFileLogger(dbPath)
	if err != nil {
		return err
	}

	AccessLogger = access
	DBLogger = db
	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
