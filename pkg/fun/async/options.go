package async

import (
	"context"

	"github.com/ib-77/fun/pkg/fun/report"
	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	SinkOptionKey   OptionKey = "sink_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type SinkOptions struct {
	Sink report.Sink
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// WithSink makes Flow report every value its body or catch produces.
func WithSink(ctx context.Context, sink report.Sink) context.Context {
	return context.WithValue(ctx, SinkOptionKey, SinkOptions{Sink: sink})
}

func GetLogger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func GetSink(ctx context.Context, defaultSink report.Sink) report.Sink {
	options, ok := ctx.Value(SinkOptionKey).(SinkOptions)
	if ok && options.Sink != nil {
		return options.Sink
	}
	return defaultSink
}
