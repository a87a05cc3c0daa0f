package notifications

import (
	"context"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type emailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Notifier implements domain.NotificationService by routing SMS and email to
// their transports
type Notifier struct {
	sms   smsSender
	email emailSender
}

// NewNotifier combines an SMS and an email transport
func NewNotifier(sms smsSender, email emailSender) domain.NotificationService {
	return &Notifier{sms: sms, email: email}
}

// SendSMS implements domain.NotificationService
func (n *Notifier) SendSMS(ctx context.Context, to, message string) error {
	return n.sms.SendSMS(ctx, to, message)
}

// SendEmail implements domain.NotificationService
func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) error {
	return n.email.SendEmail(ctx, to, subject, body)
}
