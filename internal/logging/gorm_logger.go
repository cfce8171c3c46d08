package logging

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// GormLogger adapts zerolog to GORM's logger interface so database traces
// land in the same stream as the rest of the application logs.
type GormLogger struct {
	logger   zerolog.Logger
	logLevel gormlogger.LogLevel
}

func NewGormLogger(logger zerolog.Logger) *GormLogger {
	return &GormLogger{logger: logger, logLevel: gormlogger.Warn}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.logger.Info().Msgf(msg, data...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.Warn().Msgf(msg, data...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.logger.Error().Msgf(msg, data...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.logLevel >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case elapsed > slowQueryThreshold && l.logLevel >= gormlogger.Warn:
		l.logger.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.logLevel >= gormlogger.Info:
		l.logger.Info().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
