package logger

import (
	"context"

	"github.com/agrovision/cropadvisor/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// Init replaces the process logger, e.g. with a development config.
func Init(l *zap.Logger) {
	global = l.WithOptions(zap.AddCallerSkip(2)).Sugar()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	l := global
	if ctx == nil {
		return l
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		l = l.With("request_id", reqID)
	}
	if sessionID, ok := ctx.Value(constants.CtxKeySessionID).(string); ok && sessionID != "" {
		l = l.With("session_id", sessionID)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromCtx(ctx).Error(msg)
}

func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err.Error())
}
