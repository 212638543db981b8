package logger

import (
	"context"

	"github.com/Gunvolt24/foodbot/pkg/ctxmeta"
	"go.uber.org/zap"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := newZapLogger(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (тесты, zaptest/observer).
func NewFromZap(base *zap.Logger) *ZapLogger {
	return newZapLogger(base, false)
}

func newZapLogger(base *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{
		base:   base,
		sugar:  base.Sugar(),
		isProd: isProd,
	}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

// withContext — поля request_id / session_id / trace_id из контекста.
func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	fields := ctxFields(ctx)
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func ctxFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	if sid, ok := ctxmeta.SessionIDFromContext(ctx); ok {
		fields = append(fields, zap.String("session_id", sid))
	}
	if ids, ok := ctxmeta.TraceFromContext(ctx); ok {
		fields = append(fields, zap.String("trace_id", ids.TraceID))
	}
	return fields
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
