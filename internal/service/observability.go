package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Observer receives timing and outcome telemetry for service operations.
// The zero value of opFields is fine for operations with nothing to report.
type Observer interface {
	ObserveOp(ctx context.Context, op string, took time.Duration, err error, fields opFields)
}

type opFields map[string]any

type noopObserver struct{}

func (noopObserver) ObserveOp(context.Context, string, time.Duration, error, opFields) {}

type slogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver logs each observed operation as a structured line on w.
func NewSlogObserver(w io.Writer) Observer {
	if w == nil {
		return noopObserver{}
	}
	return &slogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *slogObserver) ObserveOp(ctx context.Context, op string, took time.Duration, err error, fields opFields) {
	attrs := make([]any, 0, 6+len(fields)*2)
	attrs = append(attrs, "op", op, "duration_ms", took.Milliseconds())
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
		o.logger.ErrorContext(ctx, "operation failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "operation completed", attrs...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return noopObserver{}
}
