// Package report defines the write-only sink finished values are handed to
// for observation. The library never depends on what a sink does with them.
package report

import (
	"context"
	"fmt"

	"github.com/ib-77/fun/pkg/fun"
	"go.uber.org/zap"
)

type Sink interface {
	Report(ctx context.Context, label string, value any)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, label string, value any)

func (f SinkFunc) Report(ctx context.Context, label string, value any) {
	f(ctx, label, value)
}

type nopSink struct{}

func (nopSink) Report(context.Context, string, any) {}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return nopSink{}
}

// ZapSink writes every reported value as an Info entry.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Report(_ context.Context, label string, value any) {
	fields := []zap.Field{zap.String("label", label)}

	switch v := value.(type) {
	case fun.Variant:
		fields = append(fields, zap.String("tag", v.Tag()), zap.Stringer("value", v))
	case fmt.Stringer:
		fields = append(fields, zap.Stringer("value", v))
	case error:
		fields = append(fields, zap.Error(v))
	default:
		fields = append(fields, zap.Any("value", v))
	}

	s.logger.Info("report", fields...)
}
