package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// AuditLoggerImpl implements domain.AuditLogger on top of zerolog
type AuditLoggerImpl struct {
	log zerolog.Logger
}

// NewAuditLogger creates an audit logger writing to log
func NewAuditLogger(log zerolog.Logger) domain.AuditLogger {
	return &AuditLoggerImpl{log: log.With().Str("stream", "audit").Logger()}
}

// LogEvent implements domain.AuditLogger
func (a *AuditLoggerImpl) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if event.RequestID == "" {
		event.WithClientContext(domain.ClientContextFrom(ctx))
	}

	e := a.log.Info()
	if !event.Success {
		e = a.log.Warn()
	}

	e = e.Str("event", string(event.EventType)).
		Time("at", event.Timestamp).
		Bool("success", event.Success)
	if event.AccountID != 0 {
		e = e.Uint("account_id", event.AccountID)
	}
	if event.Email != "" {
		e = e.Str("email", event.Email)
	}
	if event.RequestID != "" {
		e = e.Str("request_id", event.RequestID)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", event.UserAgent)
	}
	if event.ErrorMsg != "" {
		e = e.Str("error", event.ErrorMsg)
	}
	if len(event.Metadata) > 0 {
		e = e.Interface("metadata", event.Metadata)
	}

	e.Msg("audit")
	return nil
}
