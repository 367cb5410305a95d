package audit

import (
	"context"
	"errors"
	"log/slog"
)

// LogSink writes events to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit",
		"action", event.Action,
		"category", string(event.Category),
		"user_id", int64(event.UserID),
		"subject_type", event.SubjectType,
		"subject_id", event.SubjectID,
		"request_id", event.RequestID,
		"client_ip", event.ClientIP,
		"client", event.Client,
	)
	return nil
}

// Fanout delivers every event to all sinks and joins their errors.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, event Event) error {
	var errs []error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Append(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
