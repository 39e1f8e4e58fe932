package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's query log through zap. Queries are logged at
// debug so production logs stay readable; failures and slow queries are
// promoted to their own levels. ErrRecordNotFound is never logged since
// the repository layer turns it into a domain error.
type GormLogger struct {
	log       *zap.Logger
	level     gormlogger.LogLevel
	slowAfter time.Duration
}

// GormLoggerOption adjusts a GormLogger at construction.
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold overrides the default 200ms slow query threshold.
// A zero threshold disables slow query warnings.
func WithSlowThreshold(d time.Duration) GormLoggerOption {
	return func(gl *GormLogger) { gl.slowAfter = d }
}

// NewGormLogger wraps log for use as a gorm logger at the given level.
func NewGormLogger(log *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	gl := &GormLogger{
		log:       log.Named("gorm"),
		level:     level,
		slowAfter: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// LogMode implements gormlogger.Interface.
func (gl *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *gl
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (gl *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if gl.level >= gormlogger.Info {
		gl.log.Sugar().Infof(msg, args...)
	}
}

// Warn implements gormlogger.Interface.
func (gl *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if gl.level >= gormlogger.Warn {
		gl.log.Sugar().Warnf(msg, args...)
	}
}

// Error implements gormlogger.Interface.
func (gl *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if gl.level >= gormlogger.Error {
		gl.log.Sugar().Errorf(msg, args...)
	}
}

// Trace implements gormlogger.Interface. The request id placed in ctx by
// the HTTP middleware is attached so SQL lines correlate with requests.
func (gl *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if gl.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	switch {
	case err != nil && gl.level >= gormlogger.Error:
		if errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		gl.log.Error("SQL Error", append(fields, zap.Error(err))...)

	case gl.slowAfter > 0 && elapsed > gl.slowAfter && gl.level >= gormlogger.Warn:
		gl.log.Warn("Slow SQL", append(fields, zap.Duration("threshold", gl.slowAfter))...)

	case gl.level >= gormlogger.Info:
		gl.log.Debug("SQL Query", fields...)
	}
}

// MapGormLogLevel translates the service log level into the matching
// gorm level so one config knob drives both loggers.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
