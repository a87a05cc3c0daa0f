package mocks

import (
	"context"
	"sync"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// SentEmail is an email captured by MockNotificationService
type SentEmail struct {
	To, Subject, Body string
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(ctx context.Context, to, message string) error
	SendEmailFunc func(ctx context.Context, to, subject, body string) error

	mu     sync.Mutex
	Emails []SentEmail
	SMS    []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(ctx context.Context, to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(ctx, to, message)
	}
	m.mu.Lock()
	m.SMS = append(m.SMS, to+": "+message)
	m.mu.Unlock()
	return nil
}

// SendEmail sends an email message
func (m *MockNotificationService) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, to, subject, body)
	}
	m.mu.Lock()
	m.Emails = append(m.Emails, SentEmail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	return nil
}

// LastEmail returns the most recent captured email
func (m *MockNotificationService) LastEmail() (SentEmail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Emails) == 0 {
		return SentEmail{}, false
	}
	return m.Emails[len(m.Emails)-1], true
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
