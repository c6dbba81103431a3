package service

import (
	"context"
)

// OtpEmailEvent asks the mail worker to deliver a one-time code.
type OtpEmailEvent struct {
	RequestID        string `json:"request_id,omitempty"` // For distributed tracing
	EventID          string `json:"event_id"`
	Email            string `json:"email"`
	Code             string `json:"code"`
	Purpose          string `json:"purpose"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOtpEmailEvent publishes a mail delivery request for async processing
	PublishOtpEmailEvent(ctx context.Context, event *OtpEmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
