package log

import (
	"log/slog"
)

// SlogAdapter forwards events to a log/slog logger for human-readable
// development output.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger. A nil logger
// uses slog.Default.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Log renders the event as one slog record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []any{
		slog.String("conn", event.ConnectionID),
		slog.String("dir", event.Direction.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	switch {
	case event.Command != nil:
		attrs = append(attrs, slog.String("line", event.Command.Line))
		a.logger.Info("command", attrs...)
	case event.Response != nil:
		attrs = append(attrs, slog.String("line", event.Response.Line))
		if event.Response.Command != "" {
			attrs = append(attrs, slog.String("command", event.Response.Command))
		}
		if event.Response.Latency > 0 {
			attrs = append(attrs, slog.Duration("latency", event.Response.Latency))
		}
		a.logger.Info("response", attrs...)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old", event.StateChange.OldState),
			slog.String("new", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
		a.logger.Info("state change", attrs...)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("context", event.Error.Context))
		}
		a.logger.Error("session error", attrs...)
	default:
		a.logger.Info("event", attrs...)
	}
}

var _ Logger = (*SlogAdapter)(nil)
